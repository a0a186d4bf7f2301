package prng

import "testing"

func TestStreamDeterministic(t *testing.T) {
	a := New(0)
	b := New(0)
	for i := 0; i < 100; i++ {
		if got, want := a.Uint64(), b.Uint64(); got != want {
			t.Fatalf("draw %d: got %d want %d", i, got, want)
		}
	}
}

func TestStreamDiffersBySeed(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
		}
	}
	if same {
		t.Fatal("different seeds produced identical streams")
	}
}

func TestUint64NInRange(t *testing.T) {
	s := New(42)
	for i := 0; i < 10000; i++ {
		v := s.Uint64N(7)
		if v >= 7 {
			t.Fatalf("Uint64N(7) = %d, out of range", v)
		}
	}
}

func TestUint64NDistribution(t *testing.T) {
	s := New(7)
	var counts [7]int
	const draws = 70000
	for i := 0; i < draws; i++ {
		counts[s.Uint64N(7)]++
	}
	for i, c := range counts {
		if c < draws/7/2 || c > draws/7*3/2 {
			t.Errorf("bucket %d count %d looks non-uniform over %d draws", i, c, draws)
		}
	}
}
