// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
//
// Every event carries a Kind. Widgets register reactions per Kind, and
// applications may allocate their own kinds with NewKind for events they
// post into the same stream as the native pointer and key events.
package event

import (
	"fmt"
	"sync"
)

// Event is the interface implemented by every event delivered to
// widgets.
type Event interface {
	Kind() Kind
}

// Kind tags an Event. The zero Kind is never allocated.
type Kind uint32

// Sink receives events posted by widgets, such as button clicks and
// entry submissions. The application loop owns the sink and dispatches
// the posted events like any other.
type Sink interface {
	Post(e Event)
}

// Queue is a first-in, first-out Sink.
type Queue struct {
	events []Event
}

var kinds struct {
	mu    sync.Mutex
	names []string
}

// NewKind allocates a new, unique Kind. The name is only used for
// printing.
func NewKind(name string) Kind {
	kinds.mu.Lock()
	defer kinds.mu.Unlock()
	if kinds.names == nil {
		kinds.names = []string{"Invalid"}
	}
	kinds.names = append(kinds.names, name)
	return Kind(len(kinds.names) - 1)
}

func (k Kind) String() string {
	kinds.mu.Lock()
	defer kinds.mu.Unlock()
	if int(k) < len(kinds.names) {
		return kinds.names[k]
	}
	return fmt.Sprintf("Kind(%d)", uint32(k))
}

// Post appends e to the queue.
func (q *Queue) Post(e Event) {
	q.events = append(q.events, e)
}

// Next removes and returns the oldest event, if any.
func (q *Queue) Next() (Event, bool) {
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return e, true
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain removes and returns every queued event.
func (q *Queue) Drain() []Event {
	evts := q.events
	q.events = nil
	return evts
}
