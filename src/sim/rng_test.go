package sim

import "testing"

func TestSeedDeterminism(t *testing.T) {
	a := NewSeed(99)
	b := NewSeed(99)
	for i := 0; i < 100; i++ {
		va, na := a.Intn(10)
		vb, nb := b.Intn(10)
		if va != vb || na != nb {
			t.Fatalf("draw %v diverged: (%v,%v) vs (%v,%v)", i, va, na, vb, nb)
		}
		a, b = na, nb
	}
}

func TestIntnBounds(t *testing.T) {
	s := NewSeed(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		var v int
		v, s = s.Intn(8)
		if v < 0 || v >= 8 {
			t.Fatalf("draw %v out of range [0,8)", v)
		}
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("1000 draws hit %v of 8 values", len(seen))
	}
}

func TestIntnAdvancesState(t *testing.T) {
	s := NewSeed(1)
	_, next := s.Intn(5)
	if next == s {
		t.Error("Intn did not advance the generator state")
	}
}

func TestIntnSingleCandidate(t *testing.T) {
	v, next := NewSeed(3).Intn(1)
	if v != 0 {
		t.Errorf("Intn(1) = %v, want 0", v)
	}
	if next == NewSeed(3) {
		t.Error("Intn(1) did not consume a draw")
	}
}
