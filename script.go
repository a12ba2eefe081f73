package langid

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Script is a writing system.
//
// The declaration order is the priority order used to break ties between
// scripts with equal character counts.
type Script int

// Supported scripts. NoScript means no character of a text belongs to any
// supported writing system.
const (
	NoScript Script = iota
	ScriptLatin
	ScriptCyrillic
	ScriptArabic
	ScriptDevanagari
	ScriptHiragana
	ScriptKatakana
	ScriptEthiopic
	ScriptHebrew
	ScriptBengali
	ScriptGeorgian
	ScriptHan
	ScriptHangul
	ScriptGreek
	ScriptKannada
	ScriptTamil
	ScriptThai
	ScriptGujarati
	ScriptGurmukhi
	ScriptTelugu
	ScriptMalayalam
	ScriptOriya
	ScriptMyanmar
	ScriptSinhala
	ScriptKhmer
	numScripts
)

var scriptNames = [numScripts]string{
	NoScript:         "None",
	ScriptLatin:      "Latin",
	ScriptCyrillic:   "Cyrillic",
	ScriptArabic:     "Arabic",
	ScriptDevanagari: "Devanagari",
	ScriptHiragana:   "Hiragana",
	ScriptKatakana:   "Katakana",
	ScriptEthiopic:   "Ethiopic",
	ScriptHebrew:     "Hebrew",
	ScriptBengali:    "Bengali",
	ScriptGeorgian:   "Georgian",
	ScriptHan:        "Han",
	ScriptHangul:     "Hangul",
	ScriptGreek:      "Greek",
	ScriptKannada:    "Kannada",
	ScriptTamil:      "Tamil",
	ScriptThai:       "Thai",
	ScriptGujarati:   "Gujarati",
	ScriptGurmukhi:   "Gurmukhi",
	ScriptTelugu:     "Telugu",
	ScriptMalayalam:  "Malayalam",
	ScriptOriya:      "Oriya",
	ScriptMyanmar:    "Myanmar",
	ScriptSinhala:    "Sinhala",
	ScriptKhmer:      "Khmer",
}

func (s Script) String() string {
	if s < 0 || s >= numScripts {
		return fmt.Sprintf("Script(%d)", int(s))
	}
	return scriptNames[s]
}

// ParseScript finds a script by name, case-insensitively.
func ParseScript(name string) (Script, bool) {
	for s := ScriptLatin; s < numScripts; s++ {
		if strings.EqualFold(scriptNames[s], name) {
			return s, true
		}
	}
	return NoScript, false
}

// MarshalJSON encodes s as its name.
func (s Script) MarshalJSON() ([]byte, error) {
	if s <= NoScript || s >= numScripts {
		return nil, fmt.Errorf("cannot marshal invalid script %d", int(s))
	}
	return json.Marshal(scriptNames[s])
}

// UnmarshalJSON decodes a script name.
func (s *Script) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	script, ok := ParseScript(name)
	if !ok {
		return fmt.Errorf("unknown script %q", name)
	}
	*s = script
	return nil
}

// Languages returns the candidate languages written in s, in declaration
// order.
func (s Script) Languages() []Language {
	if s <= NoScript || s >= numScripts {
		return nil
	}
	return scriptLanguages[s]
}

var scriptLanguages = [numScripts][]Language{
	ScriptLatin: {
		Afrikaans, Akan, Azerbaijani, Cebuano, Czech, Danish, German, English,
		Esperanto, Estonian, Finnish, French, HaitianCreole, Hausa, Croatian,
		Hungarian, Igbo, Ilocano, Indonesian, Italian, Javanese, Kinyarwanda,
		Kurdish, Latvian, Lithuanian, Malagasy, Dutch, Nynorsk, Bokmal, Chewa,
		Oromo, Polish, Portuguese, Romanian, Rundi, Slovene, Shona, Somali,
		Spanish, Swedish, Tagalog, Turkmen, Turkish, Uyghur, Uzbek, Vietnamese,
		Yoruba, Zulu,
	},
	ScriptCyrillic: {
		Azerbaijani, Belarusian, Bulgarian, Macedonian, Russian, Serbian,
		Turkmen, Ukrainian,
	},
	ScriptArabic:     {Arabic, Persian, Saraiki, Uyghur, Urdu},
	ScriptDevanagari: {Bhojpuri, Hindi, Maithili, Marathi, Nepali},
	ScriptHiragana:   {Japanese},
	ScriptKatakana:   {Japanese},
	ScriptEthiopic:   {Amharic, Tigrinya},
	ScriptHebrew:     {Hebrew, Yiddish},
	ScriptBengali:    {Bengali},
	ScriptGeorgian:   {Georgian},
	ScriptHan:        {Mandarin, Japanese},
	ScriptHangul:     {Korean},
	ScriptGreek:      {Greek},
	ScriptKannada:    {Kannada},
	ScriptTamil:      {Tamil},
	ScriptThai:       {Thai},
	ScriptGujarati:   {Gujarati},
	ScriptGurmukhi:   {Punjabi},
	ScriptTelugu:     {Telugu},
	ScriptMalayalam:  {Malayalam},
	ScriptOriya:      {Oriya},
	ScriptMyanmar:    {Burmese},
	ScriptSinhala:    {Sinhalese},
	ScriptKhmer:      {Khmer},
}

// --- Script profiles -------------------------------------------------------

// Kana tables include the combining voiced sound marks and the prolonged
// sound mark, which Unicode assigns to no single kana script.
var (
	hiraganaTable = rangetable.Merge(unicode.Hiragana, rangetable.New(0x3099, 0x309A))
	katakanaTable = rangetable.Merge(unicode.Katakana, rangetable.New(0x30FC))
	kanaTable     = rangetable.Merge(hiraganaTable, katakanaTable)
)

type scriptProfile struct {
	script Script
	table  *unicode.RangeTable
}

// scriptProfiles is ordered by Script declaration order; the first profile
// containing a rune wins.
var scriptProfiles = []scriptProfile{
	{ScriptLatin, unicode.Latin},
	{ScriptCyrillic, unicode.Cyrillic},
	{ScriptArabic, unicode.Arabic},
	{ScriptDevanagari, unicode.Devanagari},
	{ScriptHiragana, hiraganaTable},
	{ScriptKatakana, katakanaTable},
	{ScriptEthiopic, unicode.Ethiopic},
	{ScriptHebrew, unicode.Hebrew},
	{ScriptBengali, unicode.Bengali},
	{ScriptGeorgian, unicode.Georgian},
	{ScriptHan, unicode.Han},
	{ScriptHangul, unicode.Hangul},
	{ScriptGreek, unicode.Greek},
	{ScriptKannada, unicode.Kannada},
	{ScriptTamil, unicode.Tamil},
	{ScriptThai, unicode.Thai},
	{ScriptGujarati, unicode.Gujarati},
	{ScriptGurmukhi, unicode.Gurmukhi},
	{ScriptTelugu, unicode.Telugu},
	{ScriptMalayalam, unicode.Malayalam},
	{ScriptOriya, unicode.Oriya},
	{ScriptMyanmar, unicode.Myanmar},
	{ScriptSinhala, unicode.Sinhala},
	{ScriptKhmer, unicode.Khmer},
}

// isLetterOrMark reports whether r carries linguistic signal. Everything
// else (digits, punctuation, symbols, spaces, controls) is a boundary.
func isLetterOrMark(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r)
}

// scriptOf returns the script r belongs to, or NoScript.
func scriptOf(r rune) Script {
	if !isLetterOrMark(r) {
		return NoScript
	}
	for _, p := range scriptProfiles {
		if unicode.Is(p.table, r) {
			return p.script
		}
	}
	return NoScript
}

// scriptTally counts letters and marks per script.
type scriptTally [numScripts]int

func tallyScripts(text string) (tally scriptTally) {
	for _, r := range text {
		tally[scriptOf(r)]++
	}
	return
}

// dominant returns the script with the highest count. Ties go to the script
// declared first. If no rune was classified, dominant returns NoScript.
func (tally *scriptTally) dominant() Script {
	best, bestCount := NoScript, 0
	for s := ScriptLatin; s < numScripts; s++ {
		if tally[s] > bestCount {
			best, bestCount = s, tally[s]
		}
	}
	return best
}

// classifyScript finds the dominant script of text.
func classifyScript(text string) (Script, bool) {
	tally := tallyScripts(text)
	s := tally.dominant()
	return s, s != NoScript
}
