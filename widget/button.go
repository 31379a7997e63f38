// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"

	"wipgo.org/io/event"
	"wipgo.org/io/pointer"
)

// ButtonState is the visual state of a Button.
type ButtonState uint8

const (
	// Inactive is the resting state.
	Inactive ButtonState = iota
	// Active is the state while the primary button is held down
	// over the button.
	Active
	// Disabled buttons ignore the pointer.
	Disabled
)

// ClickedKind is the kind of Clicked events.
var ClickedKind = event.NewKind("widget.Clicked")

// Clicked is posted by a Button when the primary pointer button is
// pressed and released over it.
type Clicked struct {
	Button Widget
}

func (Clicked) Kind() event.Kind { return ClickedKind }

// Button is the behavior of a clickable widget. Concrete buttons
// embed Button and implement Redraw from State.
type Button struct {
	Base
	state ButtonState
}

// Init binds b to self and registers the reactions to the
// pointer.
func (b *Button) Init(self Widget) {
	b.Base.Init(self)
	b.AddReaction(pointer.PressKind, func(w Widget, e event.Event) bool {
		pe := e.(pointer.Event)
		if !pe.Primary() || !pe.Position.In(b.Bounds()) {
			return false
		}
		b.setState(Active)
		return true
	})
	b.AddReaction(pointer.ReleaseKind, func(w Widget, e event.Event) bool {
		pe := e.(pointer.Event)
		if !pe.Primary() || b.state != Active {
			return false
		}
		b.setState(Inactive)
		if pe.Position.In(b.Bounds()) {
			b.Post(Clicked{Button: w})
			return true
		}
		return false
	})
}

// State returns the current state.
func (b *Button) State() ButtonState {
	return b.state
}

// SetState sets the state of the button and redraws it. Setting
// the Disabled state disables the button.
func (b *Button) SetState(s ButtonState) error {
	if s > Disabled {
		return fmt.Errorf("widget: button state %d: %w", s, ErrOutOfRange)
	}
	if s == Disabled {
		b.Base.Disable()
	} else {
		b.Base.Enable()
	}
	b.state = s
	b.widget().Redraw()
	return nil
}

// setState moves the button to s from a pointer event, redrawing
// only on change.
func (b *Button) setState(s ButtonState) {
	if b.state == s {
		return
	}
	b.state = s
	b.widget().Redraw()
}

// Enable enables the button and resets it to Inactive.
func (b *Button) Enable() {
	if b.state == Disabled {
		b.SetState(Inactive)
		return
	}
	b.Base.Enable()
}

// Disable disables the button.
func (b *Button) Disable() {
	b.SetState(Disabled)
}

func (s ButtonState) String() string {
	switch s {
	case Inactive:
		return "Inactive"
	case Active:
		return "Active"
	case Disabled:
		return "Disabled"
	default:
		panic("invalid ButtonState")
	}
}
