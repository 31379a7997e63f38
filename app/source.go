// SPDX-License-Identifier: Unlicense OR MIT

package app

import "wipgo.org/io/event"

// Source delivers events to a Host, one batch per frame.
type Source interface {
	// Events returns the events of the next frame, or false when
	// no frame remains.
	Events() ([]event.Event, bool)
}

// Script is a Source replaying batches of events. An empty batch
// is a frame without events.
type Script struct {
	frames []func() []event.Event
}

// NewScript returns a script replaying frames in order.
func NewScript(frames ...[]event.Event) *Script {
	s := new(Script)
	for _, f := range frames {
		s.Append(f...)
	}
	return s
}

// Append adds a frame at the end of the script.
func (s *Script) Append(evts ...event.Event) {
	s.AppendFunc(func() []event.Event { return evts })
}

// AppendFunc adds a frame whose events are computed when the frame
// is reached, for events depending on where earlier frames left the
// widgets.
func (s *Script) AppendFunc(f func() []event.Event) {
	s.frames = append(s.frames, f)
}

// Len returns the number of frames left.
func (s *Script) Len() int {
	return len(s.frames)
}

// Events implements Source.
func (s *Script) Events() ([]event.Event, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	f := s.frames[0]
	s.frames = s.frames[1:]
	return f(), true
}
