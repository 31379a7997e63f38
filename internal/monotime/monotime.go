// SPDX-License-Identifier: Unlicense OR MIT

// Package monotime provides a monotonic millisecond clock.
package monotime

import "time"

// Clock reports a monotonic time in milliseconds. Only differences
// between two readings are meaningful.
type Clock interface {
	Millis() int64
}

// System is the Clock of the running process.
var System Clock = systemClock{}

type systemClock struct{}

func (systemClock) Millis() int64 {
	return int64(now() / time.Millisecond)
}

// Manual is a Clock that only advances when told to.
type Manual struct {
	ms int64
}

// Millis implements Clock.
func (m *Manual) Millis() int64 { return m.ms }

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.ms += int64(d / time.Millisecond)
}
