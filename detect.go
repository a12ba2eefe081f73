package langid

import (
	"encoding/json"
	"sync"
)

// ReliableConfidenceThreshold is the confidence a detection has to exceed to
// be considered reliable.
const ReliableConfidenceThreshold = 0.8

// Info is the result of a detection.
type Info struct {
	Lang       Language
	Script     Script
	Confidence float64 // in [0,1]
}

// IsReliable reports whether the confidence exceeds
// ReliableConfidenceThreshold.
func (info Info) IsReliable() bool {
	return info.Confidence > ReliableConfidenceThreshold
}

// MarshalJSON encodes info as an object with fields lang, script,
// confidence and reliable.
func (info Info) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Lang       Language `json:"lang"`
		Script     Script   `json:"script"`
		Confidence float64  `json:"confidence"`
		Reliable   bool     `json:"reliable"`
	}{info.Lang, info.Script, info.Confidence, info.IsReliable()})
}

// matchMethod selects the matcher deciding between the languages of a script.
type matchMethod int

const (
	byNone matchMethod = iota // script has a single language
	byTrigrams
	byAlphabet
)

var scriptMatchers = [numScripts]matchMethod{
	ScriptLatin:      byTrigrams,
	ScriptCyrillic:   byTrigrams,
	ScriptArabic:     byTrigrams,
	ScriptDevanagari: byTrigrams,
	ScriptEthiopic:   byTrigrams,
	ScriptHebrew:     byAlphabet,
	ScriptHan:        byAlphabet,
}

// Detector identifies languages, optionally restricted by a Filter.
// A Detector is immutable and may be shared between goroutines.
type Detector struct {
	filter   Filter
	profiles *Profiles
}

// NewDetector creates a detector considering all languages.
func NewDetector() *Detector {
	return NewDetectorWithFilter(Filter{})
}

// WithAllowlist creates a detector which returns only languages in langs.
func WithAllowlist(langs ...Language) *Detector {
	return NewDetectorWithFilter(AllowList(langs...))
}

// WithDenylist creates a detector which never returns languages in langs.
func WithDenylist(langs ...Language) *Detector {
	return NewDetectorWithFilter(DenyList(langs...))
}

// NewDetectorWithFilter creates a detector using the embedded reference
// profiles.
func NewDetectorWithFilter(filter Filter) *Detector {
	return NewDetectorWithProfiles(DefaultProfiles(), filter)
}

// NewDetectorWithProfiles creates a detector using custom reference profiles.
// Trigram-matched languages without a profile are never detected.
func NewDetectorWithProfiles(profiles *Profiles, filter Filter) *Detector {
	assert(profiles != nil, "detector needs reference profiles")
	return &Detector{filter: filter, profiles: profiles}
}

// Filter returns the language filter of d.
func (d *Detector) Filter() Filter {
	return d.filter
}

// DetectScript finds the dominant script of text. It returns false if text
// contains no letters of any supported script.
func (d *Detector) DetectScript(text string) (Script, bool) {
	return classifyScript(text)
}

// DetectLang finds the language of text.
func (d *Detector) DetectLang(text string) (Language, bool) {
	info, ok := d.Detect(text)
	return info.Lang, ok
}

// Detect finds the language and script of text together with a confidence.
//
// It returns false if text has no letters of a supported script, if the
// filter excludes every language of the script, or if text is too short to
// tell the remaining languages apart. Two indistinguishable best candidates
// still produce a result, with confidence 0.
func (d *Detector) Detect(text string) (Info, bool) {
	script, ok := classifyScript(text)
	if !ok {
		tracer().Debugf("no script detected")
		return Info{}, false
	}
	all := script.Languages()
	assert(len(all) > 0, "script without languages: "+script.String())
	cands := d.filter.apply(all)
	trace := tracer().P("script", script)
	switch len(cands) {
	case 0:
		trace.Debugf("filter %s excludes all languages", d.filter)
		return Info{}, false
	case 1:
		return Info{Lang: cands[0], Script: script, Confidence: 1}, true
	}
	var lang Language
	var confidence float64
	switch scriptMatchers[script] {
	case byTrigrams:
		lang, confidence, ok = d.detectByTrigrams(script, text, cands)
	case byAlphabet:
		lang, confidence, ok = d.detectByAlphabet(script, text, cands)
	default:
		assert(false, "no matcher for ambiguous script "+script.String())
	}
	if !ok {
		trace.Debugf("insufficient signal")
		return Info{}, false
	}
	trace.Debugf("detected %s with confidence %.3f", lang, confidence)
	return Info{Lang: lang, Script: script, Confidence: confidence}, true
}

func (d *Detector) detectByTrigrams(script Script, text string, cands []Language) (Language, float64, bool) {
	ix := d.profiles.index(script)
	if ix == nil {
		return Unknown, 0, false
	}
	normalized := normalize(text)
	sample := sampleTrigrams(normalized)
	if len(sample) < minSampleTrigrams {
		return Unknown, 0, false
	}
	ranked := ix.matchTrigrams(sample, cands)
	switch len(ranked) {
	case 0:
		return Unknown, 0, false
	case 1:
		return ranked[0].lang, 1, true
	}
	confidence := trigramConfidence(ranked[0].score, ranked[1].score, len(sample))
	ix.breakTies(ranked, letters(normalized))
	return ranked[0].lang, confidence, true
}

func (d *Detector) detectByAlphabet(script Script, text string, cands []Language) (Language, float64, bool) {
	profile := func(l Language) *alphabetProfile {
		if script == ScriptHan {
			return hanAlphabets[l]
		}
		if ix := d.profiles.index(script); ix != nil {
			return ix.alphabet(l)
		}
		return nil
	}
	ranked, ok := matchAlphabets(letters(normalize(text)), cands, profile)
	if !ok {
		return Unknown, 0, false
	}
	return ranked[0].lang, alphabetConfidence(ranked), true
}

// --- Package level API -----------------------------------------------------

var defaultDetector = sync.OnceValue(NewDetector)

// Detect finds the language and script of text, considering all languages.
func Detect(text string) (Info, bool) {
	return defaultDetector().Detect(text)
}

// DetectLang finds the language of text, considering all languages.
func DetectLang(text string) (Language, bool) {
	return defaultDetector().DetectLang(text)
}

// DetectScript finds the dominant script of text.
func DetectScript(text string) (Script, bool) {
	return classifyScript(text)
}
