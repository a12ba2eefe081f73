package langid

import "testing"

func TestDATBackendRoundTrip(t *testing.T) {
	db := newDATBackend()
	words := []string{" th", "the", "he ", " да", "да ", "abc", "abd", "xyz"}
	tmp := make(map[string]int)
	for _, w := range words {
		key, ok := db.EncodeKey([]rune(w))
		if !ok {
			t.Fatalf("cannot encode %q", w)
		}
		pos := db.AllocPositionForWord(key)
		if pos == 0 {
			t.Fatalf("no position for %q", w)
		}
		if again := db.AllocPositionForWord(key); again != pos {
			t.Fatalf("%q allocated twice: %d and %d", w, pos, again)
		}
		tmp[w] = pos
	}
	if db.ResolvePosition(tmp["the"]) != 0 {
		t.Fatalf("positions must not resolve before freeze")
	}
	db.Freeze()
	states := make(map[int]string)
	for _, w := range words {
		state := db.ResolvePosition(tmp[w])
		if state == 0 {
			t.Fatalf("%q did not resolve", w)
		}
		if other, dup := states[state]; dup {
			t.Fatalf("%q and %q share state %d", w, other, state)
		}
		states[state] = w
		key, ok := db.EncodeKey([]rune(w))
		if !ok {
			t.Fatalf("cannot encode %q after freeze", w)
		}
		if got := db.Lookup(key); got != state {
			t.Fatalf("lookup(%q) should be %d, is %d", w, state, got)
		}
	}
	if key, ok := db.EncodeKey([]rune("abe")); !ok || db.Lookup(key) != 0 {
		t.Fatalf("abe must encode but not be found")
	}
	if _, ok := db.EncodeKey([]rune("qqq")); ok {
		t.Fatalf("runes unseen before freeze must not encode")
	}
	stats := db.Stats()
	if stats.Backend != "dat" || stats.UsedSlots == 0 || stats.UsedSlots > stats.TotalSlots {
		t.Fatalf("implausible stats %+v", stats)
	}
}

func TestDATBackendRejectsNonBMP(t *testing.T) {
	db := newDATBackend()
	if _, ok := db.EncodeKey([]rune("a😀b")); ok {
		t.Fatalf("non-BMP runes must not encode")
	}
	if pos := db.AllocPositionForWord(nil); pos != 0 {
		t.Fatalf("empty key must not allocate, have %d", pos)
	}
}

func TestDATBackendDense(t *testing.T) {
	db := newDATBackend()
	seen := make(map[string]bool)
	for a := 'a'; a <= 'z'; a++ {
		for b := 'a'; b <= 'z'; b += 3 {
			w := string([]rune{' ', a, b})
			key, _ := db.EncodeKey([]rune(w))
			db.AllocPositionForWord(key)
			seen[w] = true
		}
	}
	db.Freeze()
	for w := range seen {
		key, _ := db.EncodeKey([]rune(w))
		if db.Lookup(key) == 0 {
			t.Fatalf("%q lost during freeze", w)
		}
	}
	if fill := db.Stats().FillRatio(); fill < 0.5 {
		t.Errorf("double array is too sparse: fill ratio %.2f", fill)
	}
}
