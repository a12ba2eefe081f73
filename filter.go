package langid

import (
	"math/bits"
	"strings"
)

// FilterMode tells how a Filter treats its languages.
type FilterMode int

// Filter modes. The zero value lets every language pass.
const (
	FilterNone FilterMode = iota
	FilterAllow
	FilterDeny
)

func (m FilterMode) String() string {
	switch m {
	case FilterAllow:
		return "allow"
	case FilterDeny:
		return "deny"
	}
	return "none"
}

type languageSet [(numLanguages + 63) / 64]uint64

func (s *languageSet) add(l Language) {
	if l.valid() {
		s[l/64] |= 1 << (uint(l) % 64)
	}
}

func (s *languageSet) has(l Language) bool {
	return l.valid() && s[l/64]&(1<<(uint(l)%64)) != 0
}

func (s *languageSet) len() (n int) {
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return
}

// Filter restricts the languages a Detector may return. Filters are values
// and immutable; the zero Filter allows every language.
type Filter struct {
	mode  FilterMode
	langs languageSet
}

// AllowList creates a filter passing only langs.
func AllowList(langs ...Language) Filter {
	f := Filter{mode: FilterAllow}
	for _, l := range langs {
		f.langs.add(l)
	}
	return f
}

// DenyList creates a filter passing every language except langs.
func DenyList(langs ...Language) Filter {
	f := Filter{mode: FilterDeny}
	for _, l := range langs {
		f.langs.add(l)
	}
	return f
}

// Mode returns the filter mode.
func (f Filter) Mode() FilterMode {
	return f.mode
}

// Languages returns the languages of the filter in declaration order.
func (f Filter) Languages() []Language {
	ll := make([]Language, 0, f.langs.len())
	for l := Unknown + 1; l < numLanguages; l++ {
		if f.langs.has(l) {
			ll = append(ll, l)
		}
	}
	return ll
}

// Allows reports whether l passes the filter.
func (f Filter) Allows(l Language) bool {
	switch f.mode {
	case FilterAllow:
		return f.langs.has(l)
	case FilterDeny:
		return l.valid() && !f.langs.has(l)
	}
	return l.valid()
}

// apply returns the languages of cands passing the filter, keeping their
// order. cands is returned as is if the filter is the zero filter.
func (f Filter) apply(cands []Language) []Language {
	if f.mode == FilterNone {
		return cands
	}
	passed := make([]Language, 0, len(cands))
	for _, l := range cands {
		if f.Allows(l) {
			passed = append(passed, l)
		}
	}
	return passed
}

func (f Filter) String() string {
	if f.mode == FilterNone {
		return "none"
	}
	codes := make([]string, 0, f.langs.len())
	for _, l := range f.Languages() {
		codes = append(codes, l.Code())
	}
	return f.mode.String() + "[" + strings.Join(codes, ",") + "]"
}
