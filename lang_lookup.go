package langid

import (
	"slices"
	"strings"
	"sync"

	"github.com/derekparker/trie"
)

var (
	languageTrieOnce sync.Once
	languageTrie     *trie.Trie
)

// languageKeys returns a trie over every lowercase code and name of every
// language. Node meta data is the Language.
func languageKeys() *trie.Trie {
	languageTrieOnce.Do(func() {
		t := trie.New()
		for l := Unknown + 1; l < numLanguages; l++ {
			info := languages[l]
			for _, key := range []string{info.code, info.iso1, strings.ToLower(info.name)} {
				if key == "" {
					continue
				}
				if _, exists := t.Find(key); exists {
					continue
				}
				t.Add(key, l)
			}
		}
		languageTrie = t
	})
	return languageTrie
}

// ParseLanguage finds a language by ISO 639-3 code, ISO 639-1 code or English
// name. Matching is case-insensitive.
func ParseLanguage(s string) (Language, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return Unknown, false
	}
	node, ok := languageKeys().Find(key)
	if !ok {
		return Unknown, false
	}
	l, ok := node.Meta().(Language)
	return l, ok
}

// LanguagesWithPrefix returns all languages having a code or name starting
// with prefix, in declaration order. Front ends use it to suggest languages.
func LanguagesWithPrefix(prefix string) []Language {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	keys := languageKeys().PrefixSearch(prefix)
	var result []Language
	for _, key := range keys {
		if l, ok := ParseLanguage(key); ok && !slices.Contains(result, l) {
			result = append(result, l)
		}
	}
	slices.Sort(result)
	return result
}
