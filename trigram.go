package langid

import (
	"cmp"
	"slices"
)

const (
	trigramCap        = 300   // max trigrams per reference and sample profile
	minSampleTrigrams = 5     // fewer distinct trigrams carry no signal
	tieBreakEpsilon   = 0.005 // relative distance within which alphabets decide
)

// Trigram confidence reaches 1 when the relative distance margin between the
// two best candidates reaches confidentRateScale/n + confidentRateFloor for a
// sample of n trigrams.
const (
	confidentRateScale = 3.0
	confidentRateFloor = 0.015
)

type trigram [3]rune

func (t trigram) String() string {
	return string(t[:])
}

// candidate is a language with a matcher-specific score: a distance for
// trigram matching, a weight for alphabet matching.
type candidate struct {
	lang     Language
	score    float64
	tiebreak float64
}

// sampleTrigrams returns the most frequent trigrams of normalized text, at
// most trigramCap of them. Ties in frequency are broken by comparing the
// trigrams rune by rune.
func sampleTrigrams(normalized []rune) []trigram {
	if len(normalized) < 3 {
		return nil
	}
	counts := make(map[trigram]int)
	for i := 0; i+3 <= len(normalized); i++ {
		counts[trigram{normalized[i], normalized[i+1], normalized[i+2]}]++
	}
	sample := make([]trigram, 0, len(counts))
	for t := range counts {
		sample = append(sample, t)
	}
	slices.SortFunc(sample, func(a, b trigram) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return slices.Compare(a[:], b[:])
	})
	if len(sample) > trigramCap {
		sample = sample[:trigramCap]
	}
	return sample
}

// distances computes the out-of-place distance of sample to the profile in
// every given slot. Sample trigrams missing from a profile add the profile's
// length. The result is indexed by slot.
func (ix *scriptIndex) distances(sample []trigram, slots []int) []int {
	dist := make([]int, len(ix.langs))
	wanted := make([]bool, len(ix.langs))
	for _, s := range slots {
		wanted[s] = true
		dist[s] = len(sample) * ix.sizes[s]
	}
	for i, t := range sample {
		key, ok := ix.trie.EncodeKey(t[:])
		if !ok {
			continue
		}
		packed, ok := ix.ranks.Packed(ix.trie.Lookup(key))
		if !ok {
			continue
		}
		for _, p := range packed {
			slot, rank := unpackRank(p)
			if wanted[slot] {
				dist[slot] += abs(i-rank) - ix.sizes[slot]
			}
		}
	}
	return dist
}

// matchTrigrams ranks candidates by ascending out-of-place distance; equal
// distances keep declaration order. Candidates without a profile are left out.
func (ix *scriptIndex) matchTrigrams(sample []trigram, cands []Language) []candidate {
	slots := make([]int, 0, len(cands))
	langs := make([]Language, 0, len(cands))
	for _, l := range cands {
		if s, ok := ix.slots[l]; ok {
			slots = append(slots, s)
			langs = append(langs, l)
		}
	}
	dist := ix.distances(sample, slots)
	ranked := make([]candidate, len(slots))
	for i, s := range slots {
		ranked[i] = candidate{lang: langs[i], score: float64(dist[s])}
	}
	slices.SortFunc(ranked, func(a, b candidate) int {
		if c := cmp.Compare(a.score, b.score); c != 0 {
			return c
		}
		return cmp.Compare(a.lang, b.lang)
	})
	return ranked
}

// breakTies re-orders the leading candidates whose distance lies within
// tieBreakEpsilon of the best one by descending alphabet score.
func (ix *scriptIndex) breakTies(ranked []candidate, ll []rune) {
	if len(ranked) < 2 {
		return
	}
	limit := ranked[0].score * (1 + tieBreakEpsilon)
	k := 1
	for k < len(ranked) && ranked[k].score <= limit {
		k++
	}
	if k == 1 {
		return
	}
	group := ranked[:k]
	for i := range group {
		if p := ix.alphabet(group[i].lang); p != nil {
			group[i].tiebreak = alphabetScore(ll, p)
		}
	}
	slices.SortStableFunc(group, func(a, b candidate) int {
		if c := cmp.Compare(b.tiebreak, a.tiebreak); c != 0 {
			return c
		}
		if c := cmp.Compare(a.score, b.score); c != 0 {
			return c
		}
		return cmp.Compare(a.lang, b.lang)
	})
	tracer().P("tied", k).Debugf("alphabet tie-break chose %s", group[0].lang)
}

// trigramConfidence maps the two best distances for a sample of n trigrams
// to [0,1].
func trigramConfidence(d1, d2 float64, n int) float64 {
	switch {
	case d1 == d2:
		return 0
	case d1 == 0:
		return 1
	case n == 0:
		return 0
	}
	rate := (d2 - d1) / d1
	confidentRate := confidentRateScale/float64(n) + confidentRateFloor
	return max(0, min(1, rate/confidentRate))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
