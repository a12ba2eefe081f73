/*
Package dat implements a frozen double-array trie over short rune sequences.

The trie is built once from reference data and never changes afterwards, so
it is safe for concurrent readers. Keys are sequences of dense alphabet IDs;
the mapping from runes to IDs lives in a PagedMapBMP, which covers the Basic
Multilingual Plane only. Runes outside the BMP have no dense ID and can never
be part of a key.
*/
package dat

// DAT is a frozen double-array trie.
//   - States are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Payloads are kept outside the trie. Clients index their own stores by
// state ID; the trie only guarantees that distinct keys end in distinct
// states.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// MapPaged maps BMP code points to dense IDs [0..Sigma].
	MapPaged PagedMapBMP
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Walk follows key from the root and returns the final state.
// It fails as soon as a symbol is 0 or has no transition.
func (d *DAT) Walk(key []uint16) (uint32, bool) {
	state := d.Root
	for _, c := range key {
		if c == 0 {
			return 0, false
		}
		next, ok := d.Transition(state, c)
		if !ok {
			return 0, false
		}
		state = next
	}
	return state, true
}

// Dense maps a rune to a dense alphabet ID.
// Returns 0 if the rune is not in the alphabet.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return d.MapPaged.Dense(uint16(r))
}
