package langid

import (
	"fmt"
	"slices"

	"github.com/npillmayer/langid/dat"
)

type datBuildNode struct {
	tmpID    int
	state    uint32
	children map[uint16]*datBuildNode
}

// datBackend builds a dat.DAT from trigram keys. Keys are inserted into a
// pointer-based trie first, which is compacted into the double array on
// Freeze.
type datBackend struct {
	frozen      bool
	root        *datBuildNode
	nextNodeID  int
	runeToDense map[rune]uint16
	nextDenseID uint16
	resolved    []uint32 // temporary position -> state, filled on Freeze
	compiled    *dat.DAT
}

func newDATBackend() *datBackend {
	return &datBackend{
		root:        &datBuildNode{tmpID: 1, children: make(map[uint16]*datBuildNode)},
		nextNodeID:  2,
		runeToDense: make(map[rune]uint16),
		compiled: &dat.DAT{
			Root: 1,
		},
	}
}

func mustNewDATBackend() trigramIndex {
	return newDATBackend()
}

// EncodeKey maps runes to dense IDs. Before Freeze, unseen runes are added to
// the alphabet; after Freeze, they encode as 0 and the key is not usable.
func (db *datBackend) EncodeKey(s []rune) ([]uint16, bool) {
	key := make([]uint16, 0, len(s))
	if db.frozen {
		for _, r := range s {
			d := db.compiled.Dense(r)
			if d == 0 {
				return nil, false
			}
			key = append(key, d)
		}
		return key, true
	}
	for _, r := range s {
		if r < 0 || r > 0xFFFF {
			return nil, false
		}
		dense, ok := db.runeToDense[r]
		if !ok {
			if db.nextDenseID == ^uint16(0) {
				return nil, false
			}
			db.nextDenseID++
			dense = db.nextDenseID
			db.runeToDense[r] = dense
			db.compiled.MapPaged.Set(uint16(r), dense)
		}
		key = append(key, dense)
	}
	return key, true
}

func (db *datBackend) AllocPositionForWord(key []uint16) int {
	if len(key) == 0 {
		return 0
	}
	if db.frozen {
		return db.Lookup(key)
	}
	n := db.root
	for _, c := range key {
		if c == 0 {
			return 0
		}
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{
				tmpID:    db.nextNodeID,
				children: make(map[uint16]*datBuildNode),
			}
			db.nextNodeID++
			n.children[c] = child
		}
		n = child
	}
	return n.tmpID
}

// ResolvePosition translates a temporary build position into a state ID of
// the frozen trie. It returns 0 for unknown positions or before Freeze.
func (db *datBackend) ResolvePosition(pos int) int {
	if !db.frozen || pos <= 0 || pos >= len(db.resolved) {
		return 0
	}
	return int(db.resolved[pos])
}

func (db *datBackend) Lookup(key []uint16) int {
	if !db.frozen {
		return 0
	}
	state, ok := db.compiled.Walk(key)
	if !ok || state == db.compiled.Root {
		return 0
	}
	return int(state)
}

// Freeze places nodes breadth-first. The search for a free base starts at
// the lowest slot which may still be free, keeping the build near linear.
func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	d := db.compiled
	d.Sigma = db.nextDenseID
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	db.resolved = make([]uint32, db.nextNodeID)
	db.root.state = d.Root
	db.resolved[db.root.tmpID] = d.Root
	free := int(d.Root) + 1
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(d.Check, labels, free)
		ensureDATIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			db.resolved[child.tmpID] = child.state
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
		for free < len(d.Check) && d.Check[free] != 0 {
			free++
		}
	}
	db.root = nil
	db.runeToDense = nil
	db.frozen = true
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

// findDATBase finds the smallest base ≥ 1 for which every label lands in an
// unused slot, given that no slot below free is unused.
func findDATBase(check []int32, labels []uint16, free int) int {
	for base := max(1, free-int(labels[0])); ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(), db.compiled.Sigma, db.frozen)
}

func (db *datBackend) Stats() indexStats {
	stats := indexStats{
		Backend:    "dat",
		TotalSlots: db.compiled.NStates(),
		MaxStateID: int(db.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	maxID := int(db.compiled.Root)
	for i := range db.compiled.Check {
		if i == int(db.compiled.Root) || db.compiled.Check[i] != 0 {
			used++
			maxID = max(maxID, i)
		}
	}
	stats.UsedSlots = used
	stats.MaxStateID = maxID
	return stats
}
