package emit

import (
	"sync/atomic"

	"github.com/regexident/sitrep"
)

// ChannelObserver bridges sitrep events onto a buffered Go channel for a
// consumer to range over, e.g. a CLI progress bar's render loop. Observe
// never blocks the emitting goroutine: if the channel is full, the event
// is dropped and Dropped is incremented, matching the core's documented
// contract that an Observer may drop events silently under backpressure.
type ChannelObserver struct {
	events  chan sitrep.Event
	dropped atomic.Uint64
}

// NewChannelObserver returns a ChannelObserver buffering up to capacity
// events before it starts dropping.
func NewChannelObserver(capacity int) *ChannelObserver {
	return &ChannelObserver{
		events: make(chan sitrep.Event, capacity),
	}
}

// Observe attempts a non-blocking send of event onto the channel.
func (c *ChannelObserver) Observe(event sitrep.Event) {
	select {
	case c.events <- event:
	default:
		c.dropped.Add(1)
	}
}

// Events returns the channel consumers range over to receive events.
func (c *ChannelObserver) Events() <-chan sitrep.Event {
	return c.events
}

// Dropped returns the number of events dropped so far due to a full channel.
func (c *ChannelObserver) Dropped() uint64 {
	return c.dropped.Load()
}

// Close closes the underlying channel. Callers must ensure no further
// Observe calls occur afterward; Close does not synchronize with them.
func (c *ChannelObserver) Close() {
	close(c.events)
}
