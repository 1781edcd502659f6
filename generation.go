package sitrep

import "sync/atomic"

// Generation names a change point within one progress tree. Every
// mutation that changes observable state advances a tree's generation by
// exactly one; a Node's last-change generation records the most recent
// generation at which it (directly) changed. Comparisons are total.
type Generation uint64

const (
	// GenMin is the smallest possible Generation, used to initialize
	// freshly created nodes that have not yet been mutated.
	GenMin Generation = 0
	// GenMax is the largest possible Generation.
	GenMax Generation = ^Generation(0)
)

// clock is the shared, tree-wide monotonic counter backing Generation.
// All nodes belonging to one tree share a single clock instance (the
// shared-counter form of §4.2); attaching a subtree to a new tree
// reconciles the two clocks rather than keeping the subtree's own.
type clock struct {
	counter atomic.Uint64
}

func newClock() *clock {
	return &clock{}
}

// bump advances the clock by one and returns the new generation. If the
// increment wraps the underlying counter, wrapped reports true and the
// caller is responsible for emitting a GenerationOverflow event.
func (c *clock) bump() (gen Generation, wrapped bool) {
	next := c.counter.Add(1)
	return Generation(next), next == 0
}

// load returns the clock's current value without advancing it.
func (c *clock) load() Generation {
	return Generation(c.counter.Load())
}
