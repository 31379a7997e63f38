// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture implements common pointer gestures.

Gestures accept low level pointer Events and detect higher level
actions such as drags.
*/
package gesture

import (
	"image"

	"wipgo.org/io/pointer"
)

// Drag tracks a pointer from a press through its moves to the
// release, reporting how far it moved between events.
type Drag struct {
	dragging bool
	last     image.Point
}

// Start grabs the pointer at the position of a press event.
func (d *Drag) Start(e pointer.Event) {
	d.dragging = true
	d.last = e.Position
}

// Move returns the distance the pointer moved since the
// previous event. It returns the zero point if no drag is in
// progress.
func (d *Drag) Move(e pointer.Event) image.Point {
	if !d.dragging {
		return image.Point{}
	}
	delta := e.Position.Sub(d.last)
	d.last = e.Position
	return delta
}

// Stop ends the drag.
func (d *Drag) Stop() {
	d.dragging = false
}

// Dragging reports whether a drag is in progress.
func (d *Drag) Dragging() bool {
	return d.dragging
}
