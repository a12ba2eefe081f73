package langid

type indexStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s indexStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// trigramIndex is the internal backend abstraction for trigram-key storage.
//
// During build, keys are assigned temporary positions. Freeze compacts the
// index; afterwards ResolvePosition translates temporary positions to final
// state IDs and Lookup finds the state for a key.
type trigramIndex interface {
	EncodeKey(key []rune) ([]uint16, bool)
	AllocPositionForWord(key []uint16) int
	ResolvePosition(pos int) int
	Freeze()
	Lookup(key []uint16) int
	Stats() indexStats
}
