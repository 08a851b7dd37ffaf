package status

import (
	"sync"
	"testing"
)

// TestCounterCached verifies repeated lookups return the same counter
func TestCounterCached(t *testing.T) {
	r := NewRegistry()
	a := r.Counter(Ticks)
	b := r.Counter(Ticks)
	if a != b {
		t.Fatal("Expected the same pointer for repeated lookups")
	}

	a.Add(3)
	if got := r.Value(Ticks); got != 3 {
		t.Errorf("Expected 3 ticks, got %d", got)
	}
	if got := r.Value("missing"); got != 0 {
		t.Errorf("Expected 0 for unknown counter, got %d", got)
	}
}

// TestRangeSorted verifies deterministic iteration order
func TestRangeSorted(t *testing.T) {
	r := NewRegistry()
	r.Counter(Ticks).Add(1)
	r.Counter(Food).Add(2)
	r.Counter(Deaths).Add(3)

	var names []string
	r.Range(func(name string, _ int64) {
		names = append(names, name)
	})

	expected := []string{Deaths, Food, Ticks}
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %d", len(expected), len(names))
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("Index %d: expected %q, got %q", i, expected[i], names[i])
		}
	}

	snap := r.Snapshot()
	if snap[Food] != int64(2) {
		t.Errorf("Expected snapshot food=2, got %v", snap[Food])
	}
}

// TestConcurrentRegistration verifies racing first lookups converge on one counter
func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Counter(Rounds).Add(1)
		}()
	}
	wg.Wait()

	if got := r.Value(Rounds); got != 16 {
		t.Errorf("Expected 16 rounds, got %d", got)
	}
}
