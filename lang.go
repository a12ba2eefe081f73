package langid

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

// Language is a natural language known to the detector.
//
// Languages are declared in ascending order of their ISO 639-3 code. This
// order is the fixed tie-break order between equally scoring languages.
type Language int

// Supported languages.
const (
	Unknown Language = iota // no language
	Afrikaans
	Akan
	Amharic
	Arabic
	Azerbaijani
	Belarusian
	Bengali
	Bhojpuri
	Bulgarian
	Cebuano
	Czech
	Mandarin
	Danish
	German
	Greek
	English
	Esperanto
	Estonian
	Finnish
	French
	Gujarati
	HaitianCreole
	Hausa
	Hebrew
	Hindi
	Croatian
	Hungarian
	Igbo
	Ilocano
	Indonesian
	Italian
	Javanese
	Japanese
	Kannada
	Georgian
	Khmer
	Kinyarwanda
	Korean
	Kurdish
	Latvian
	Lithuanian
	Maithili
	Malayalam
	Marathi
	Macedonian
	Malagasy
	Burmese
	Nepali
	Dutch
	Nynorsk
	Bokmal
	Chewa
	Oriya
	Oromo
	Punjabi
	Persian
	Polish
	Portuguese
	Romanian
	Rundi
	Russian
	Sinhalese
	Saraiki
	Slovene
	Shona
	Somali
	Spanish
	Serbian
	Swedish
	Tamil
	Telugu
	Tagalog
	Thai
	Tigrinya
	Turkmen
	Turkish
	Uyghur
	Ukrainian
	Urdu
	Uzbek
	Vietnamese
	Yiddish
	Yoruba
	Zulu
	numLanguages
)

type langInfo struct {
	code string // ISO 639-3
	iso1 string // ISO 639-1, may be empty
	name string // English name
}

var languages = [numLanguages]langInfo{
	Unknown:       {"und", "", "Unknown"},
	Afrikaans:     {"afr", "af", "Afrikaans"},
	Akan:          {"aka", "ak", "Akan"},
	Amharic:       {"amh", "am", "Amharic"},
	Arabic:        {"arb", "ar", "Arabic"},
	Azerbaijani:   {"azj", "az", "Azerbaijani"},
	Belarusian:    {"bel", "be", "Belarusian"},
	Bengali:       {"ben", "bn", "Bengali"},
	Bhojpuri:      {"bho", "bh", "Bhojpuri"},
	Bulgarian:     {"bul", "bg", "Bulgarian"},
	Cebuano:       {"ceb", "", "Cebuano"},
	Czech:         {"ces", "cs", "Czech"},
	Mandarin:      {"cmn", "zh", "Mandarin"},
	Danish:        {"dan", "da", "Danish"},
	German:        {"deu", "de", "German"},
	Greek:         {"ell", "el", "Greek"},
	English:       {"eng", "en", "English"},
	Esperanto:     {"epo", "eo", "Esperanto"},
	Estonian:      {"est", "et", "Estonian"},
	Finnish:       {"fin", "fi", "Finnish"},
	French:        {"fra", "fr", "French"},
	Gujarati:      {"guj", "gu", "Gujarati"},
	HaitianCreole: {"hat", "ht", "Haitian Creole"},
	Hausa:         {"hau", "ha", "Hausa"},
	Hebrew:        {"heb", "he", "Hebrew"},
	Hindi:         {"hin", "hi", "Hindi"},
	Croatian:      {"hrv", "hr", "Croatian"},
	Hungarian:     {"hun", "hu", "Hungarian"},
	Igbo:          {"ibo", "ig", "Igbo"},
	Ilocano:       {"ilo", "", "Ilocano"},
	Indonesian:    {"ind", "id", "Indonesian"},
	Italian:       {"ita", "it", "Italian"},
	Javanese:      {"jav", "jv", "Javanese"},
	Japanese:      {"jpn", "ja", "Japanese"},
	Kannada:       {"kan", "kn", "Kannada"},
	Georgian:      {"kat", "ka", "Georgian"},
	Khmer:         {"khm", "km", "Khmer"},
	Kinyarwanda:   {"kin", "rw", "Kinyarwanda"},
	Korean:        {"kor", "ko", "Korean"},
	Kurdish:       {"kur", "ku", "Kurdish"},
	Latvian:       {"lav", "lv", "Latvian"},
	Lithuanian:    {"lit", "lt", "Lithuanian"},
	Maithili:      {"mai", "", "Maithili"},
	Malayalam:     {"mal", "ml", "Malayalam"},
	Marathi:       {"mar", "mr", "Marathi"},
	Macedonian:    {"mkd", "mk", "Macedonian"},
	Malagasy:      {"mlg", "mg", "Malagasy"},
	Burmese:       {"mya", "my", "Burmese"},
	Nepali:        {"nep", "ne", "Nepali"},
	Dutch:         {"nld", "nl", "Dutch"},
	Nynorsk:       {"nno", "nn", "Nynorsk"},
	Bokmal:        {"nob", "nb", "Bokmal"},
	Chewa:         {"nya", "ny", "Chewa"},
	Oriya:         {"ori", "or", "Oriya"},
	Oromo:         {"orm", "om", "Oromo"},
	Punjabi:       {"pan", "pa", "Punjabi"},
	Persian:       {"pes", "fa", "Persian"},
	Polish:        {"pol", "pl", "Polish"},
	Portuguese:    {"por", "pt", "Portuguese"},
	Romanian:      {"ron", "ro", "Romanian"},
	Rundi:         {"run", "rn", "Rundi"},
	Russian:       {"rus", "ru", "Russian"},
	Sinhalese:     {"sin", "si", "Sinhalese"},
	Saraiki:       {"skr", "", "Saraiki"},
	Slovene:       {"slv", "sl", "Slovene"},
	Shona:         {"sna", "sn", "Shona"},
	Somali:        {"som", "so", "Somali"},
	Spanish:       {"spa", "es", "Spanish"},
	Serbian:       {"srp", "sr", "Serbian"},
	Swedish:       {"swe", "sv", "Swedish"},
	Tamil:         {"tam", "ta", "Tamil"},
	Telugu:        {"tel", "te", "Telugu"},
	Tagalog:       {"tgl", "tl", "Tagalog"},
	Thai:          {"tha", "th", "Thai"},
	Tigrinya:      {"tir", "ti", "Tigrinya"},
	Turkmen:       {"tuk", "tk", "Turkmen"},
	Turkish:       {"tur", "tr", "Turkish"},
	Uyghur:        {"uig", "ug", "Uyghur"},
	Ukrainian:     {"ukr", "uk", "Ukrainian"},
	Urdu:          {"urd", "ur", "Urdu"},
	Uzbek:         {"uzb", "uz", "Uzbek"},
	Vietnamese:    {"vie", "vi", "Vietnamese"},
	Yiddish:       {"ydd", "yi", "Yiddish"},
	Yoruba:        {"yor", "yo", "Yoruba"},
	Zulu:          {"zul", "zu", "Zulu"},
}

// Languages returns all supported languages in declaration order.
func Languages() []Language {
	ll := make([]Language, 0, numLanguages-1)
	for l := Unknown + 1; l < numLanguages; l++ {
		ll = append(ll, l)
	}
	return ll
}

func (l Language) valid() bool {
	return l > Unknown && l < numLanguages
}

// Code returns the ISO 639-3 code of l, e.g. "eng".
func (l Language) Code() string {
	if l < 0 || l >= numLanguages {
		return languages[Unknown].code
	}
	return languages[l].code
}

// Iso6391 returns the two-letter ISO 639-1 code of l, or "" if l has none.
func (l Language) Iso6391() string {
	if !l.valid() {
		return ""
	}
	return languages[l].iso1
}

// Name returns the English name of l.
func (l Language) Name() string {
	if l < 0 || l >= numLanguages {
		return fmt.Sprintf("Language(%d)", int(l))
	}
	return languages[l].name
}

func (l Language) String() string {
	return l.Name()
}

// Tag returns a BCP 47 tag for l. Languages with an ISO 639-1 code use it,
// all others use their ISO 639-3 code.
func (l Language) Tag() language.Tag {
	if !l.valid() {
		return language.Und
	}
	if iso1 := languages[l].iso1; iso1 != "" {
		return language.Make(iso1)
	}
	return language.Make(languages[l].code)
}

// LanguageFromTag finds the language for the base language of tag.
// Region and script subtags are ignored.
func LanguageFromTag(tag language.Tag) (Language, bool) {
	if tag == language.Und {
		return Unknown, false
	}
	base, conf := tag.Base()
	if conf == language.No {
		return Unknown, false
	}
	if l, ok := ParseLanguage(base.String()); ok {
		return l, true
	}
	return ParseLanguage(base.ISO3())
}

// MarshalJSON encodes l as its ISO 639-3 code.
func (l Language) MarshalJSON() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("cannot marshal invalid language %d", int(l))
	}
	return json.Marshal(languages[l].code)
}

// UnmarshalJSON accepts everything ParseLanguage accepts.
func (l *Language) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	lang, ok := ParseLanguage(s)
	if !ok {
		return fmt.Errorf("unknown language %q", s)
	}
	*l = lang
	return nil
}
