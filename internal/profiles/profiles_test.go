package profiles

import (
	"errors"
	"io"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestReaderSections(t *testing.T) {
	src := `# comment
@Latin
eng _th the he_
deu en_ er_

@Cyrillic
rus _по ст_
`
	r := NewReader(strings.NewReader(src))
	want := []struct {
		script, code string
		first        string
		n            int
	}{
		{"Latin", "eng", " th", 3},
		{"Latin", "deu", "en ", 2},
		{"Cyrillic", "rus", " по", 2},
	}
	for _, w := range want {
		script, code, trigrams, err := r.Next()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if script != w.script || code != w.code {
			t.Fatalf("expected %s/%s, have %s/%s", w.script, w.code, script, code)
		}
		if len(trigrams) != w.n || trigrams[0] != w.first {
			t.Fatalf("unexpected trigrams for %s: %q", code, trigrams)
		}
	}
	if _, _, _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, have %v", err)
	}
}

func TestReaderRejectsProfileOutsideSection(t *testing.T) {
	r := NewReader(strings.NewReader("eng _th the\n"))
	_, _, _, err := r.Next()
	if err == nil || errors.Is(err, io.EOF) {
		t.Fatalf("expected a format error, have %v", err)
	}
}

func TestEmbeddedProfiles(t *testing.T) {
	r := Open()
	count := 0
	scripts := make(map[string]int)
	for {
		script, code, trigrams, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		count++
		scripts[script]++
		if len(trigrams) != 300 {
			t.Errorf("profile %s/%s has %d trigrams", script, code, len(trigrams))
		}
		for _, tri := range trigrams {
			if utf8.RuneCountInString(tri) != 3 {
				t.Fatalf("profile %s/%s has malformed trigram %q", script, code, tri)
			}
		}
	}
	if count != 70 {
		t.Fatalf("expected 70 embedded profiles, have %d", count)
	}
	if scripts["Latin"] != 48 || scripts["Cyrillic"] != 8 {
		t.Fatalf("unexpected section sizes: %v", scripts)
	}
}
