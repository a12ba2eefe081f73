package langid

import (
	"encoding/json"
	"testing"

	tassert "github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLanguageTable(t *testing.T) {
	all := Languages()
	require.Len(t, all, 84)
	codes := make(map[string]Language)
	iso1 := make(map[string]Language)
	for i, l := range all {
		if i > 0 {
			tassert.Less(t, all[i-1].Code(), l.Code(), "languages must be ordered by ISO 639-3 code")
		}
		tassert.Len(t, l.Code(), 3, "code of %s", l)
		tassert.NotEmpty(t, l.Name())
		_, dup := codes[l.Code()]
		tassert.False(t, dup, "duplicate code %s", l.Code())
		codes[l.Code()] = l
		if c := l.Iso6391(); c != "" {
			_, dup := iso1[c]
			tassert.False(t, dup, "duplicate ISO 639-1 code %s", c)
			iso1[c] = l
		}
	}
	tassert.Equal(t, "und", Unknown.Code())
	tassert.Equal(t, "", Unknown.Iso6391())
	tassert.Equal(t, "Language(999)", Language(999).String())
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
		ok    bool
	}{
		{"eng", English, true},
		{"EN", English, true},
		{"english", English, true},
		{" Esperanto ", Esperanto, true},
		{"haitian creole", HaitianCreole, true},
		{"cmn", Mandarin, true},
		{"zh", Mandarin, true},
		{"nb", Bokmal, true},
		{"ydd", Yiddish, true},
		{"", Unknown, false},
		{"und", Unknown, false},
		{"klingon", Unknown, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			l, ok := ParseLanguage(tt.input)
			tassert.Equal(t, tt.ok, ok)
			tassert.Equal(t, tt.want, l)
		})
	}
}

func TestLanguagesWithPrefix(t *testing.T) {
	got := LanguagesWithPrefix("ma")
	want := []Language{Mandarin, Maithili, Malayalam, Marathi, Macedonian, Malagasy}
	tassert.Equal(t, want, got)
	tassert.Empty(t, LanguagesWithPrefix("xq"))
	tassert.Len(t, LanguagesWithPrefix(""), 84)
}

func TestLanguageTags(t *testing.T) {
	tassert.Equal(t, language.English, English.Tag())
	tassert.Equal(t, language.German, German.Tag())
	tassert.Equal(t, language.Und, Unknown.Tag())
	tests := []struct {
		tag  language.Tag
		want Language
	}{
		{language.English, English},
		{language.MustParse("de-AT"), German},
		{language.BrazilianPortuguese, Portuguese},
		{language.Chinese, Mandarin},
		{language.Russian, Russian},
	}
	for _, tt := range tests {
		l, ok := LanguageFromTag(tt.tag)
		tassert.True(t, ok, "tag %s", tt.tag)
		tassert.Equal(t, tt.want, l, "tag %s", tt.tag)
	}
	_, ok := LanguageFromTag(language.Und)
	tassert.False(t, ok)
}

func TestLanguageJSON(t *testing.T) {
	data, err := json.Marshal([]Language{English, Esperanto})
	require.NoError(t, err)
	tassert.Equal(t, `["eng","epo"]`, string(data))
	var ll []Language
	require.NoError(t, json.Unmarshal([]byte(`["rus","German"]`), &ll))
	tassert.Equal(t, []Language{Russian, German}, ll)
	tassert.Error(t, json.Unmarshal([]byte(`["xxx"]`), &ll))
	_, err = json.Marshal(Unknown)
	tassert.Error(t, err)
}
