package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/npillmayer/langid"
	"github.com/npillmayer/langid/internal/ztrace"
	"github.com/npillmayer/schuko/tracing"
)

// config is read from LANGID_* environment variables; flags override it.
type config struct {
	Allow     []string `env:"ALLOW" envSeparator:","`
	Deny      []string `env:"DENY" envSeparator:","`
	Trace     string   `env:"TRACE" envDefault:"error"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"console"`
	Profiles  string   `env:"PROFILES"`
	JSON      bool     `env:"JSON" envDefault:"false"`
}

const envPrefix = "LANGID_"

// loadConfig parses environ, a list of KEY=value pairs as returned by
// os.Environ.
func loadConfig(environ []string) (config, error) {
	var cfg config
	err := env.ParseWithOptions(&cfg, env.Options{
		Environment: env.ToMap(environ),
		Prefix:      envPrefix,
	})
	if err != nil {
		return cfg, fmt.Errorf("reading environment: %w", err)
	}
	return cfg, nil
}

func parseLanguages(codes []string) ([]langid.Language, error) {
	var ll []langid.Language
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		l, ok := langid.ParseLanguage(c)
		if !ok {
			return nil, unknownLanguage(c)
		}
		ll = append(ll, l)
	}
	return ll, nil
}

// unknownLanguage reports name, listing languages whose code or name start
// like it.
func unknownLanguage(name string) error {
	prefix := []rune(strings.ToLower(name))
	var matches []langid.Language
	for n := len(prefix); n >= 2 && len(matches) == 0; n-- {
		matches = langid.LanguagesWithPrefix(string(prefix[:n]))
	}
	if len(matches) == 0 {
		return fmt.Errorf("unknown language %q", name)
	}
	hints := make([]string, len(matches))
	for i, l := range matches {
		hints[i] = l.Code() + " (" + l.Name() + ")"
	}
	return fmt.Errorf("unknown language %q, did you mean %s?", name, strings.Join(hints, ", "))
}

// filter builds the language filter. Allow and deny lists are mutually
// exclusive.
func (cfg config) filter() (langid.Filter, error) {
	allow, err := parseLanguages(cfg.Allow)
	if err != nil {
		return langid.Filter{}, err
	}
	deny, err := parseLanguages(cfg.Deny)
	if err != nil {
		return langid.Filter{}, err
	}
	switch {
	case len(allow) > 0 && len(deny) > 0:
		return langid.Filter{}, fmt.Errorf("allow and deny lists are mutually exclusive")
	case len(allow) > 0:
		return langid.AllowList(allow...), nil
	case len(deny) > 0:
		return langid.DenyList(deny...), nil
	}
	return langid.Filter{}, nil
}

// detector creates a detector, loading custom profiles if configured.
func (cfg config) detector() (*langid.Detector, error) {
	f, err := cfg.filter()
	if err != nil {
		return nil, err
	}
	if cfg.Profiles == "" {
		return langid.NewDetectorWithFilter(f), nil
	}
	file, err := os.Open(cfg.Profiles)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	ps, err := langid.ReadProfiles(cfg.Profiles, file)
	if err != nil {
		return nil, err
	}
	return langid.NewDetectorWithProfiles(ps, f), nil
}

// setupTracing routes all traces to stderr.
func (cfg config) setupTracing() error {
	format, err := ztrace.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	level := tracing.TraceLevelFromString(cfg.Trace)
	tracing.SetTraceSelector(ztrace.NewSelector(os.Stderr, format, level))
	return nil
}
