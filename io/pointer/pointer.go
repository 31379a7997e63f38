// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements pointer events.
//
// Positions are in the integer pixel space of the host surface. Widgets
// keep their bounds in the same space, so hit testing is a plain
// rectangle containment check.
package pointer

import (
	"image"
	"strings"
	"time"

	"wipgo.org/io/event"
	"wipgo.org/io/key"
)

// Event is a pointer event.
type Event struct {
	Type Type
	// Time is when the event was received. The
	// timestamp is relative to an undefined base.
	Time time.Duration
	// Buttons are the set of pressed mouse buttons for this event.
	// For Press and Release it is the button that changed.
	Buttons Buttons
	// Position is the coordinates of the event.
	Position image.Point
	// Modifiers is the set of active modifiers when
	// the mouse button was pressed.
	Modifiers key.Modifiers
}

// Type of an Event.
type Type uint8

// Buttons is a set of mouse buttons
type Buttons uint8

const (
	// Press of a pointer.
	Press Type = iota
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

// Event kinds, one per Type.
var (
	PressKind   = event.NewKind("pointer.Press")
	ReleaseKind = event.NewKind("pointer.Release")
	MoveKind    = event.NewKind("pointer.Move")
)

// Kind implements event.Event.
func (e Event) Kind() event.Kind {
	switch e.Type {
	case Press:
		return PressKind
	case Release:
		return ReleaseKind
	case Move:
		return MoveKind
	default:
		panic("invalid Type")
	}
}

// Primary reports whether the primary button is in the set.
func (e Event) Primary() bool {
	return e.Buttons.Contain(ButtonPrimary)
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (t Type) String() string {
	switch t {
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	default:
		panic("unknown Type")
	}
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}
