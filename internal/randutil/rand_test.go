package randutil

import "testing"

func TestNewDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if av, bv := a.Uint64(), b.Uint64(); av != bv {
			t.Fatalf("same seed diverged at draw %d: %d vs %d", i, av, bv)
		}
	}
}

func TestNewDistinctSeeds(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 100; i++ {
		if a.Uint64() == b.Uint64() {
			same++
		}
	}
	if same > 2 {
		t.Errorf("seeds 1 and 2 produced %d/100 identical draws", same)
	}
}

func TestSampleIndices(t *testing.T) {
	rng := New(7)

	t.Run("returns k distinct indices in range", func(t *testing.T) {
		indices := SampleIndices(rng, 48, 3)
		if len(indices) != 3 {
			t.Fatalf("expected 3 indices, got %d", len(indices))
		}
		seen := make(map[int]bool)
		for _, idx := range indices {
			if idx < 0 || idx >= 48 {
				t.Errorf("index %d out of range", idx)
			}
			if seen[idx] {
				t.Errorf("duplicate index %d", idx)
			}
			seen[idx] = true
		}
	})

	t.Run("k >= n returns everything", func(t *testing.T) {
		indices := SampleIndices(rng, 5, 10)
		if len(indices) != 5 {
			t.Fatalf("expected all 5 indices, got %d", len(indices))
		}
	})

	t.Run("every index reachable", func(t *testing.T) {
		hit := make(map[int]bool)
		for i := 0; i < 500; i++ {
			for _, idx := range SampleIndices(rng, 10, 2) {
				hit[idx] = true
			}
		}
		if len(hit) != 10 {
			t.Errorf("only %d/10 indices ever sampled", len(hit))
		}
	})
}
