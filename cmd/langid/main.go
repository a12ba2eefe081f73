// Command langid detects the language of text.
//
// Text is taken from the command line, or else read from stdin line by line.
// Every input yields one output line: language code, script, confidence and
// reliability, or a JSON object with -json.
//
//	echo "Ĉu vi ne volas eklerni Esperanton?" | langid -json
//	langid -allow eng,rus "There is no reason not to learn Esperanto."
//
// Settings may also be given as environment variables LANGID_ALLOW,
// LANGID_DENY, LANGID_TRACE, LANGID_LOG_FORMAT, LANGID_JSON and
// LANGID_PROFILES (a profile file in the text format of langid.ReadProfiles).
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/langid"
	"github.com/npillmayer/schuko/tracing"
)

const scannerBufSize = 1 << 20

func main() {
	cfg, err := loadConfig(os.Environ())
	if err != nil {
		fmt.Fprintf(os.Stderr, "langid: %v\n", err)
		os.Exit(2)
	}
	allow := flag.String("allow", strings.Join(cfg.Allow, ","), "comma separated languages to consider exclusively")
	deny := flag.String("deny", strings.Join(cfg.Deny, ","), "comma separated languages never to report")
	flag.BoolVar(&cfg.JSON, "json", cfg.JSON, "print results as JSON")
	flag.StringVar(&cfg.Trace, "trace", cfg.Trace, "trace level: error, info or debug")
	flag.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "trace format: console or json")
	flag.StringVar(&cfg.Profiles, "profiles", cfg.Profiles, "file with custom trigram profiles")
	flag.Parse()
	cfg.Allow = strings.Split(*allow, ",")
	cfg.Deny = strings.Split(*deny, ",")

	if err := cfg.setupTracing(); err != nil {
		fmt.Fprintf(os.Stderr, "langid: %v\n", err)
		os.Exit(2)
	}
	d, err := cfg.detector()
	if err != nil {
		fmt.Fprintf(os.Stderr, "langid: %v\n", err)
		os.Exit(2)
	}
	tracing.Select("langid").Infof("detector filter is %s", d.Filter())

	if flag.NArg() > 0 {
		if err := printResult(os.Stdout, d, strings.Join(flag.Args(), " "), cfg.JSON); err != nil {
			fmt.Fprintf(os.Stderr, "langid: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := run(os.Stdin, os.Stdout, d, cfg.JSON); err != nil {
		fmt.Fprintf(os.Stderr, "langid: %v\n", err)
		os.Exit(1)
	}
}

// run detects the language of every non-blank line of r. Results written
// before an error are flushed to w.
func run(r io.Reader, w io.Writer, d *langid.Detector, asJSON bool) (err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), scannerBufSize)
	out := bufio.NewWriter(w)
	defer func() {
		if ferr := out.Flush(); err == nil {
			err = ferr
		}
	}()
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := printResult(out, d, line, asJSON); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func printResult(w io.Writer, d *langid.Detector, text string, asJSON bool) error {
	info, ok := d.Detect(text)
	if asJSON {
		if !ok {
			_, err := fmt.Fprintln(w, "null")
			return err
		}
		data, err := json.Marshal(info)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	}
	if !ok {
		_, err := fmt.Fprintln(w, "-")
		return err
	}
	reliable := "unreliable"
	if info.IsReliable() {
		reliable = "reliable"
	}
	_, err := fmt.Fprintf(w, "%s\t%s\t%.3f\t%s\n", info.Lang.Code(), info.Script, info.Confidence, reliable)
	return err
}
