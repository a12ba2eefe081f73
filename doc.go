/*
Package langid identifies the natural language and the writing system of a
text sample.

Detection runs in stages. A script classifier finds the dominant writing
system of the text by counting letters per Unicode script. Scripts used by a
single supported language decide the language right away. Otherwise
candidate languages are scored: Latin, Cyrillic, Arabic, Devanagari and
Ethiopic texts by trigram statistics, comparing the ranks of the most
frequent trigrams of the sample against reference rank profiles
("out-of-place" distance, Cavnar & Trenkle 1994); Hebrew and Han texts by
the characters they use. Near-ties between trigram distances are decided by
character usage as well.

Reference trigram profiles are compiled into one frozen double-array trie
(DAT) per script. Ranks are stored separately in a compact store referenced
by trie state IDs. Profiles are immutable after loading, so detectors may be
shared freely between goroutines.

Every result carries a confidence in [0,1], derived from the margin between
the best and the second best candidate. Input without letters, or too short
to tell candidates apart, yields no result.

	info, ok := langid.Detect("Ĉu vi ne volas eklerni Esperanton?")
	if ok && info.IsReliable() {
		fmt.Println(info.Lang.Code()) // epo
	}

Further Reading

	W. B. Cavnar, J. M. Trenkle: N-Gram-Based Text Categorization (1994)
	https://github.com/greyblake/whatlang-rs
	https://github.com/abadojack/whatlanggo

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package langid

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'langid'
func tracer() tracing.Trace {
	return tracing.Select("langid")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
