package langid

import (
	"fmt"
	"io"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/langid/internal/profiles"
)

// ProfileReader yields trigram rank profiles one-by-one: the name of a
// script, the ISO 639-3 code of a language and the language's trigrams in
// that script, most frequent first. Word boundaries within trigrams are
// blanks.
// It should return io.EOF when the stream is exhausted.
type ProfileReader interface {
	Next() (script string, code string, trigrams []string, err error)
}

// Profiles is a frozen set of reference profiles, indexed per script.
// It is safe for concurrent use.
type Profiles struct {
	scripts    [numScripts]*scriptIndex
	Identifier string // Identifies the profile set
}

// scriptIndex holds the trigram profiles of all languages of one script.
// Languages occupy slots in load order; the trie maps a trigram to a state,
// and the rank store lists the (slot, rank) pairs for that state.
type scriptIndex struct {
	script    Script
	langs     []Language
	slots     map[Language]int
	sizes     []int
	alphabets []*alphabetProfile
	trie      trigramIndex
	ranks     *rankStore
}

func (ix *scriptIndex) alphabet(l Language) *alphabetProfile {
	if s, ok := ix.slots[l]; ok {
		return ix.alphabets[s]
	}
	return nil
}

// LoadProfiles compiles profiles from a streaming, format-agnostic source.
//
// File format parsing is outside the base package. The embedded reference
// data is parsed by package internal/profiles.
func LoadProfiles(name string, reader ProfileReader) (*Profiles, error) {
	type pendingRank struct {
		pos   int
		entry rankEntry
	}
	ps := &Profiles{Identifier: fmt.Sprintf("profiles: %s", name)}
	pending := make(map[Script][]pendingRank)
	for {
		scriptName, code, trigrams, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		script, ok := ParseScript(scriptName)
		if !ok {
			return nil, fmt.Errorf("profile %s/%s: unknown script", scriptName, code)
		}
		lang, ok := ParseLanguage(code)
		if !ok {
			return nil, fmt.Errorf("profile %s/%s: unknown language", scriptName, code)
		}
		if !slices.Contains(script.Languages(), lang) {
			return nil, fmt.Errorf("profile %s/%s: %s is not written in %s", scriptName, code, lang, script)
		}
		if len(trigrams) == 0 || len(trigrams) > trigramCap {
			return nil, fmt.Errorf("profile %s/%s: need 1..%d trigrams, have %d", scriptName, code,
				trigramCap, len(trigrams))
		}
		ix := ps.scripts[script]
		if ix == nil {
			ix = &scriptIndex{
				script: script,
				slots:  make(map[Language]int),
				trie:   mustNewDATBackend(),
			}
			ps.scripts[script] = ix
		}
		if _, dup := ix.slots[lang]; dup {
			return nil, fmt.Errorf("profile %s/%s: duplicate profile", scriptName, code)
		}
		slot := len(ix.langs)
		assert(slot < maxRankSlots, "too many languages for one script")
		seen := make(map[string]struct{}, len(trigrams))
		for rank, t := range trigrams {
			if utf8.RuneCountInString(t) != 3 {
				return nil, fmt.Errorf("profile %s/%s: malformed trigram %q", scriptName, code, t)
			}
			if _, dup := seen[t]; dup {
				return nil, fmt.Errorf("profile %s/%s: duplicate trigram %q", scriptName, code, t)
			}
			seen[t] = struct{}{}
			key, ok := ix.trie.EncodeKey([]rune(t))
			if !ok {
				return nil, fmt.Errorf("profile %s/%s: cannot encode trigram %q", scriptName, code, t)
			}
			pos := ix.trie.AllocPositionForWord(key)
			if pos == 0 {
				return nil, fmt.Errorf("could not allocate trie position for trigram %q", t)
			}
			pending[script] = append(pending[script], pendingRank{pos: pos, entry: rankEntry{Slot: slot, Rank: rank}})
		}
		ix.langs = append(ix.langs, lang)
		ix.slots[lang] = slot
		ix.sizes = append(ix.sizes, len(trigrams))
		ix.alphabets = append(ix.alphabets, deriveAlphabet(trigrams))
	}
	for _, ix := range ps.scripts {
		if ix == nil {
			continue
		}
		ix.trie.Freeze()
		byState := make(map[int][]rankEntry)
		for _, p := range pending[ix.script] {
			state := ix.trie.ResolvePosition(p.pos)
			if state == 0 {
				return nil, fmt.Errorf("could not resolve trie position after freeze for temporary position %d", p.pos)
			}
			byState[state] = append(byState[state], p.entry)
		}
		states := make([]int, 0, len(byState))
		for state := range byState {
			states = append(states, state)
		}
		slices.Sort(states)
		stats := ix.trie.Stats()
		ix.ranks = newRankStore(stats.TotalSlots)
		for _, state := range states {
			if err := ix.ranks.Put(state, byState[state]); err != nil {
				return nil, err
			}
		}
		tracer().Infof("trigram index script=%s languages=%d trigrams=%d used=%d total=%d fill=%.2f maxStateID=%d",
			ix.script, len(ix.langs), len(states), stats.UsedSlots, stats.TotalSlots, stats.FillRatio(),
			stats.MaxStateID)
	}
	return ps, nil
}

// Languages returns the languages having a profile for script, in load order.
func (ps *Profiles) Languages(script Script) []Language {
	ix := ps.index(script)
	if ix == nil {
		return nil
	}
	return slices.Clone(ix.langs)
}

// Stats reports density metrics for the trigram trie of a script.
func (ps *Profiles) Stats(script Script) (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	ix := ps.index(script)
	if ix == nil {
		return "", 0, 0, 0, 0
	}
	stats := ix.trie.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}

func (ps *Profiles) index(script Script) *scriptIndex {
	if ps == nil || script <= NoScript || script >= numScripts {
		return nil
	}
	return ps.scripts[script]
}

var defaultProfiles = sync.OnceValue(func() *Profiles {
	ps, err := LoadProfiles("embedded", profiles.Open())
	if err != nil {
		panic(fmt.Sprintf("langid: embedded reference profiles are broken: %v", err))
	}
	return ps
})

// DefaultProfiles returns the embedded reference profiles. They are loaded
// on first use and shared by all detectors.
func DefaultProfiles() *Profiles {
	return defaultProfiles()
}

// ReadProfiles loads profiles in the text format of the embedded reference
// data:
//
//	# comment
//	@Latin
//	eng _th the he_ ...
//
// A line starting with '@' opens a script section, every other line holds a
// language code followed by its trigrams, most frequent first. '_' stands for
// a word boundary.
func ReadProfiles(name string, reader io.Reader) (*Profiles, error) {
	return LoadProfiles(name, profiles.NewReader(reader))
}
