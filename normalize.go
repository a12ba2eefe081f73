package langid

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// boundary marks a word boundary in normalized text. Reference trigrams use
// the same marker.
const boundary = ' '

// foldRune lowercases letters and marks and turns everything else into a
// boundary.
func foldRune(r rune) rune {
	if isLetterOrMark(r) {
		return unicode.ToLower(r)
	}
	return boundary
}

var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(width.Fold, runes.Map(foldRune))
	},
}

// normalize folds text to lowercase letters and marks. Every run of other
// characters becomes a single boundary, and the result is padded by a
// boundary at each end. Text without letters normalizes to a lone boundary.
func normalize(text string) []rune {
	t := foldPool.Get().(transform.Transformer)
	defer foldPool.Put(t)
	t.Reset()
	folded, _, err := transform.String(t, text)
	if err != nil {
		tracer().Debugf("width folding failed, mapping runes only: %v", err)
		folded = strings.Map(foldRune, text)
	}
	out := make([]rune, 1, len(folded)+2)
	out[0] = boundary
	for _, r := range folded {
		if r == boundary && out[len(out)-1] == boundary {
			continue
		}
		out = append(out, r)
	}
	if out[len(out)-1] != boundary {
		out = append(out, boundary)
	}
	return out
}

// letters returns the letters and marks of normalized text.
func letters(normalized []rune) []rune {
	ll := make([]rune, 0, len(normalized))
	for _, r := range normalized {
		if r != boundary {
			ll = append(ll, r)
		}
	}
	return ll
}
