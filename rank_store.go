package langid

import "fmt"

// rankEntry says that a trigram has rank Rank in the profile of the language
// occupying slot Slot of a script index.
type rankEntry struct {
	Slot int
	Rank int
}

const (
	maxRankSlots = 1 << 8
	maxRank      = 1 << 16
)

func packRank(e rankEntry) (uint32, error) {
	if e.Slot < 0 || e.Slot >= maxRankSlots {
		return 0, fmt.Errorf("language slot out of range (0..%d): %d", maxRankSlots-1, e.Slot)
	}
	if e.Rank < 0 || e.Rank >= maxRank {
		return 0, fmt.Errorf("rank out of range (0..%d): %d", maxRank-1, e.Rank)
	}
	return uint32(e.Slot)<<16 | uint32(e.Rank), nil
}

func unpackRank(packed uint32) (slot, rank int) {
	return int(packed >> 16), int(packed & 0xFFFF)
}

// rankStore keeps packed rank records indexed by trie state.
//
// off[state] points into payload. A record starts with its entry count,
// followed by that many packed entries (slot in the high half, rank in the
// low half). Offset 0 is a sentinel meaning "no record".
type rankStore struct {
	off     []uint32 // will grow with demand
	payload []uint32 // will grow with demand
}

func newRankStore(states int) *rankStore {
	return &rankStore{
		off:     make([]uint32, max(states, 2)),
		payload: make([]uint32, 1, 1+states*2),
	}
}

func (s *rankStore) ensure(pos int) {
	if pos < len(s.off) {
		return
	}
	s.off = append(s.off, make([]uint32, pos+1-len(s.off))...)
}

// Put stores the rank entries for trie state pos. A later Put for the same
// state replaces the record.
func (s *rankStore) Put(pos int, entries []rankEntry) error {
	if pos <= 0 {
		return fmt.Errorf("invalid trie position: %d", pos)
	}
	packed := make([]uint32, 0, len(entries))
	for _, e := range entries {
		p, err := packRank(e)
		if err != nil {
			return err
		}
		packed = append(packed, p)
	}
	return s.PutPacked(pos, packed)
}

// PutPacked stores already-packed entries at trie position pos.
func (s *rankStore) PutPacked(pos int, packed []uint32) error {
	if pos <= 0 {
		return fmt.Errorf("invalid trie position: %d", pos)
	}
	if len(packed) == 0 {
		return nil
	}
	s.ensure(pos)
	s.off[pos] = uint32(len(s.payload))
	s.payload = append(s.payload, uint32(len(packed)))
	s.payload = append(s.payload, packed...)
	return nil
}

// Packed returns the packed entries for a trie position.
func (s *rankStore) Packed(pos int) ([]uint32, bool) {
	if pos <= 0 || pos >= len(s.off) || s.off[pos] == 0 {
		return nil, false
	}
	at := int(s.off[pos])
	n := int(s.payload[at])
	return s.payload[at+1 : at+1+n], true
}

// Ranks returns the unpacked entries for a trie position.
func (s *rankStore) Ranks(pos int) []rankEntry {
	packed, ok := s.Packed(pos)
	if !ok {
		return nil
	}
	entries := make([]rankEntry, len(packed))
	for i, p := range packed {
		entries[i].Slot, entries[i].Rank = unpackRank(p)
	}
	return entries
}

// Size returns the number of payload words in use.
func (s *rankStore) Size() int {
	return len(s.payload)
}
