// Package progress defines the notification channel between a long-running
// pipeline and its caller. The pipeline emits events through a Sink without
// knowing whether the transport buffers them or pushes them incrementally.
package progress

import "sync"

// Event is one observational progress notification. It is never persisted.
type Event struct {
	Processed  int    `json:"processed"`
	Total      int    `json:"total"`
	Percentage int    `json:"percentage"`
	Message    string `json:"message"`
}

// Sink receives progress events as work advances. Implementations must be
// safe for concurrent use; the pipeline may emit from multiple workers.
type Sink interface {
	Send(e Event)
}

// Buffer is a Sink that accumulates events in memory. It backs the
// single-response transport, where incremental delivery is not possible.
type Buffer struct {
	mu     sync.Mutex
	events []Event
}

// Send appends the event to the buffer.
func (b *Buffer) Send(e Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
}

// Events returns a copy of all events received so far.
func (b *Buffer) Events() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Event, len(b.events))
	copy(out, b.events)
	return out
}

// Func adapts a function to the Sink interface. Callers are responsible for
// making the function safe for concurrent invocation.
type Func func(e Event)

// Send invokes the wrapped function.
func (f Func) Send(e Event) {
	f(e)
}

// Discard is a Sink that drops every event.
var Discard Sink = Func(func(Event) {})
