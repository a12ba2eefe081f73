package langid

import (
	"reflect"
	"testing"
)

func TestRankStorePacked(t *testing.T) {
	s := newRankStore(16)
	if err := s.Put(42, []rankEntry{{Slot: 0, Rank: 5}, {Slot: 3, Rank: 299}}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	packed, ok := s.Packed(42)
	if !ok {
		t.Fatalf("expected payload at position 42")
	}
	want := []uint32{0x00000005, 0x0003012B}
	if !reflect.DeepEqual(packed, want) {
		t.Fatalf("packed mismatch: got %#x, want %#x", packed, want)
	}
	if _, ok := s.Packed(41); ok {
		t.Fatalf("expected no payload at position 41")
	}
}

func TestRankStoreOverwrite(t *testing.T) {
	s := newRankStore(16)
	if err := s.Put(7, []rankEntry{{Slot: 1, Rank: 3}}); err != nil {
		t.Fatalf("first Put failed: %v", err)
	}
	if err := s.Put(7, []rankEntry{{Slot: 2, Rank: 9}}); err != nil {
		t.Fatalf("second Put failed: %v", err)
	}
	got := s.Ranks(7)
	want := []rankEntry{{Slot: 2, Rank: 9}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ranks mismatch after overwrite: got %v, want %v", got, want)
	}
}

func TestRankStoreGrows(t *testing.T) {
	s := newRankStore(2)
	if err := s.Put(100, []rankEntry{{Slot: 1, Rank: 1}}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if r := s.Ranks(100); len(r) != 1 {
		t.Fatalf("expected one entry at position 100, have %v", r)
	}
	if s.Size() != 3 {
		t.Fatalf("expected sentinel, count and entry in payload, have %d words", s.Size())
	}
}

func TestRankStoreRejectsOutOfRange(t *testing.T) {
	s := newRankStore(16)
	if err := s.Put(1, []rankEntry{{Slot: maxRankSlots, Rank: 0}}); err == nil {
		t.Fatalf("expected out-of-range slot error")
	}
	if err := s.Put(1, []rankEntry{{Slot: 0, Rank: maxRank}}); err == nil {
		t.Fatalf("expected out-of-range rank error")
	}
	if err := s.Put(0, []rankEntry{{Slot: 0, Rank: 0}}); err == nil {
		t.Fatalf("expected invalid position error")
	}
}
