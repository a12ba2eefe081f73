/*
Package profiles holds the reference trigram profiles of package langid and
a streaming reader for the profile text format.

The format is line oriented:

	# a comment
	@Latin
	eng _th the he_ ...

A line starting with '@' opens the section for a script. Every other
non-empty line holds an ISO 639-3 language code followed by the language's
trigrams, most frequent first, separated by blanks. Within trigrams, '_'
stands for a word boundary.

The embedded profiles are derived from the Universal Declaration of Human
Rights corpus as published with github.com/abadojack/whatlanggo (MIT License).
*/
package profiles

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed trigrams.txt
var trigramsTxt []byte

// Boundary is the character standing for a word boundary in profile files.
const Boundary = '_'

// Reader streams profiles from the text format.
type Reader struct {
	scanner  *bufio.Scanner
	script   string
	line     int
	trigrams []string
}

// Open returns a reader over the embedded reference profiles.
func Open() *Reader {
	return NewReader(bytes.NewReader(trigramsTxt))
}

// NewReader creates a reader for profiles in text format.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner:  bufio.NewScanner(reader),
		trigrams: make([]string, 0, 300),
	}
}

// Next returns the next profile as (script, language code, trigrams).
// Word boundaries in trigrams are returned as ' '.
// It returns io.EOF when exhausted.
// The returned trigram slice is reused by subsequent calls.
func (r *Reader) Next() (string, string, []string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "@") {
			r.script = strings.TrimSpace(line[1:])
			if r.script == "" {
				return "", "", nil, fmt.Errorf("line %d: empty script section header", r.line)
			}
			continue
		}
		if r.script == "" {
			return "", "", nil, fmt.Errorf("line %d: profile outside of a script section", r.line)
		}
		fields := strings.Fields(line)
		r.trigrams = r.trigrams[:0]
		for _, f := range fields[1:] {
			r.trigrams = append(r.trigrams, strings.ReplaceAll(f, string(Boundary), " "))
		}
		return r.script, fields[0], r.trigrams, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", nil, err
	}
	return "", "", nil, io.EOF
}
