package sitrep

import "sync/atomic"

// ID uniquely identifies a Node for the lifetime of the process. IDs are
// allocated from a single process-wide counter and are never reused.
type ID uint64

var nextID atomic.Uint64

// newID allocates the next process-wide unique ID. Allocation is
// non-blocking and never repeats within a process; it does not defend
// against overflow of the underlying uint64 counter.
func newID() ID {
	return ID(nextID.Add(1))
}
