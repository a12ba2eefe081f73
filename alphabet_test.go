package langid

import (
	"math"
	"testing"
)

func TestDeriveAlphabet(t *testing.T) {
	p := deriveAlphabet([]string{" ab", "abc"})
	// a and b: 2+1, c: 1
	for r, want := range map[rune]float64{'a': 1, 'b': 1, 'c': 1.0 / 3} {
		w, ok := p.weight(r)
		if !ok || math.Abs(w-want) > 1e-9 {
			t.Errorf("weight of %q should be %.3f, is %.3f/%v", r, want, w, ok)
		}
	}
	if _, ok := p.weight(' '); ok {
		t.Errorf("boundary must not be part of an alphabet")
	}
	if s := alphabetScore([]rune("abz"), p); math.Abs(s-1.0/3) > 1e-9 {
		t.Errorf("score of abz should be 1/3, is %f", s)
	}
}

func TestHanAlphabets(t *testing.T) {
	han := func(l Language) *alphabetProfile { return hanAlphabets[l] }
	cands := []Language{Mandarin, Japanese}
	ranked, ok := matchAlphabets([]rune("你好世界"), cands, han)
	if !ok || ranked[0].lang != Mandarin {
		t.Fatalf("expected Mandarin, have %v", ranked)
	}
	if c := alphabetConfidence(ranked); c != 1 {
		t.Errorf("Han-only text should be confidently Mandarin, is %f", c)
	}
	ranked, ok = matchAlphabets([]rune("ひらがな日本"), cands, han)
	if !ok || len(ranked) != 1 || ranked[0].lang != Japanese {
		t.Fatalf("expected Japanese only, have %v", ranked)
	}
	if _, ok := matchAlphabets([]rune("你"), cands, han); ok {
		t.Fatalf("a single letter must not be matched")
	}
	if _, ok := matchAlphabets([]rune("abc"), cands, han); ok {
		t.Fatalf("foreign letters must not match any Han profile")
	}
}

func TestAlphabetConfidence(t *testing.T) {
	tests := []struct {
		scores []float64
		want   float64
	}{
		{nil, 0},
		{[]float64{0.3}, 1},
		{[]float64{1, 0.75}, 0.5},
		{[]float64{0.4, 0.4}, 0},
		{[]float64{0.9, 0.1}, 1},
	}
	for _, tt := range tests {
		ranked := make([]candidate, len(tt.scores))
		for i, s := range tt.scores {
			ranked[i].score = s
		}
		if c := alphabetConfidence(ranked); math.Abs(c-tt.want) > 1e-9 {
			t.Errorf("confidence for %v should be %f, is %f", tt.scores, tt.want, c)
		}
	}
}
