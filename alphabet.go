package langid

import (
	"cmp"
	"slices"
	"unicode"
)

const (
	minAlphabetLetters      = 2   // fewer letters carry no signal
	absentLetterPenalty     = 1.0 // subtracted for letters a profile does not know
	confidentAlphabetMargin = 0.5 // relative score margin mapping to confidence 1
)

// classWeight weighs all runes of a character class.
type classWeight struct {
	table  *unicode.RangeTable
	weight float64
}

// alphabetProfile weighs the characters a language uses, between 0 and 1.
// Single runes take precedence over character classes.
type alphabetProfile struct {
	weights map[rune]float64
	classes []classWeight
}

func (p *alphabetProfile) weight(r rune) (float64, bool) {
	if w, ok := p.weights[r]; ok {
		return w, true
	}
	for _, c := range p.classes {
		if unicode.Is(c.table, r) {
			return c.weight, true
		}
	}
	return 0, false
}

// hanAlphabets tell Mandarin from Japanese by the share of kana among the
// letters of a Han-dominated text.
var hanAlphabets = map[Language]*alphabetProfile{
	Mandarin: {classes: []classWeight{{unicode.Han, 1}}},
	Japanese: {classes: []classWeight{{kanaTable, 1}, {unicode.Han, 0.5}}},
}

// deriveAlphabet builds an alphabet profile from a trigram rank profile.
// Every occurrence of a rune in a trigram of rank i adds len(trigrams)-i to
// the rune's weight; weights are then scaled to a maximum of 1.
func deriveAlphabet(trigrams []string) *alphabetProfile {
	p := &alphabetProfile{weights: make(map[rune]float64)}
	n := len(trigrams)
	for rank, t := range trigrams {
		for _, r := range t {
			if r == boundary {
				continue
			}
			p.weights[r] += float64(n - rank)
		}
	}
	var top float64
	for _, w := range p.weights {
		top = max(top, w)
	}
	if top > 0 {
		for r, w := range p.weights {
			p.weights[r] = w / top
		}
	}
	return p
}

// alphabetScore is the mean weight of letters, where letters unknown to p
// count as -absentLetterPenalty.
func alphabetScore(ll []rune, p *alphabetProfile) float64 {
	if len(ll) == 0 {
		return 0
	}
	var sum float64
	for _, r := range ll {
		if w, ok := p.weight(r); ok {
			sum += w
		} else {
			sum -= absentLetterPenalty
		}
	}
	return sum / float64(len(ll))
}

// matchAlphabets ranks candidates by alphabet score, best first. Candidates
// without a profile or with a score ≤ 0 are left out. It reports false if
// there are too few letters or no candidate is left.
func matchAlphabets(ll []rune, cands []Language, profile func(Language) *alphabetProfile) ([]candidate, bool) {
	if len(ll) < minAlphabetLetters {
		return nil, false
	}
	ranked := make([]candidate, 0, len(cands))
	for _, l := range cands {
		p := profile(l)
		if p == nil {
			continue
		}
		if s := alphabetScore(ll, p); s > 0 {
			ranked = append(ranked, candidate{lang: l, score: s})
		}
	}
	slices.SortFunc(ranked, func(a, b candidate) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.lang, b.lang)
	})
	return ranked, len(ranked) > 0
}

// alphabetConfidence maps the relative margin between the two best scores
// to [0,1].
func alphabetConfidence(ranked []candidate) float64 {
	switch len(ranked) {
	case 0:
		return 0
	case 1:
		return 1
	}
	s1, s2 := ranked[0].score, ranked[1].score
	if s1 <= s2 {
		return 0
	}
	return min(1, (s1-s2)/s1/confidentAlphabetMargin)
}
