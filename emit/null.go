// Package emit provides ready-made sitrep.Observer sinks: a discarding
// no-op and a bounded, asynchronous channel bridge. These are external
// collaborators, not part of the core — every sitrep.Observer user is
// free to write their own instead.
package emit

import "github.com/regexident/sitrep"

// NullObserver implements sitrep.Observer by discarding every event.
//
// Use it when a tree needs an Observer but nothing actually consumes
// its events, e.g. a root created only to be attached under a real
// tree moments later.
type NullObserver struct{}

// NewNullObserver returns an Observer that discards all events.
func NewNullObserver() *NullObserver {
	return &NullObserver{}
}

// Observe discards event.
func (n *NullObserver) Observe(event sitrep.Event) {}
