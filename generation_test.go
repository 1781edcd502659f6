package sitrep

import "testing"

// TestClockBumpMonotonic verifies successive bumps strictly increase.
func TestClockBumpMonotonic(t *testing.T) {
	c := newClock()
	prev, _ := c.bump()
	for i := 0; i < 10; i++ {
		next, wrapped := c.bump()
		if wrapped {
			t.Fatalf("unexpected wrap at iteration %d", i)
		}
		if next <= prev {
			t.Fatalf("clock did not advance: prev=%d next=%d", prev, next)
		}
		prev = next
	}
}

// TestClockLoadDoesNotAdvance verifies load is a pure read.
func TestClockLoadDoesNotAdvance(t *testing.T) {
	c := newClock()
	c.bump()
	first := c.load()
	second := c.load()
	if first != second {
		t.Fatalf("load advanced the clock: %d != %d", first, second)
	}
}

// TestClockOverflow verifies bump reports wrapped exactly when the
// underlying counter wraps past its maximum value.
func TestClockOverflow(t *testing.T) {
	c := newClock()
	c.counter.Store(uint64(GenMax))

	gen, wrapped := c.bump()
	if !wrapped {
		t.Fatalf("expected wrapped=true when bumping past GenMax")
	}
	if gen != 0 {
		t.Fatalf("expected generation to wrap to 0, got %d", gen)
	}
}
