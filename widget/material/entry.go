// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"image"
	"strings"

	"wipgo.org/internal/monotime"
	"wipgo.org/io/event"
	"wipgo.org/io/key"
	"wipgo.org/io/pointer"
	"wipgo.org/paint"
	"wipgo.org/text"
	"wipgo.org/widget"
)

// EntryState is the state of an Entry.
type EntryState uint8

const (
	// Selected entries edit their value from key presses.
	Selected EntryState = iota
	// Deselected entries wait for a click.
	Deselected
	// Disabled entries ignore every event.
	Disabled
)

// blinkPeriod is the duration, in milliseconds, the cursor stays
// shown or hidden.
const blinkPeriod = 500

// SubmitKind is the kind of Submit events.
var SubmitKind = event.NewKind("material.Submit")

// Submit is posted by an Entry when Return or Enter is pressed
// while it is selected.
type Submit struct {
	Value string
	Entry *Entry
}

func (Submit) Kind() event.Kind { return SubmitKind }

var (
	entryBackground         = white
	entryDisabledBackground = rgb(0xc8c8c8)
)

// Entry is a single line text entry. Clicking it selects it and
// moves the cursor to the nearest character boundary; clicking
// elsewhere deselects it.
type Entry struct {
	widget.Base
	font   text.Font
	editor widget.Editor
	state  EntryState
	clock  monotime.Clock
	// first is when the cursor blinking started.
	first int64
}

// NewEntry returns a deselected entry holding value, with room for
// length characters. It fails with widget.ErrPrecondition if value
// is longer than length.
func NewEntry(th *Theme, value string, length int) (*Entry, error) {
	ed, err := widget.MakeEditor(value, length)
	if err != nil {
		return nil, err
	}
	e := &Entry{
		font:   th.Font,
		editor: ed,
		state:  Deselected,
	}
	e.Init(e)
	e.SetClock(monotime.System)
	e.AddReaction(key.PressKind, e.key)
	e.AddReaction(pointer.ReleaseKind, e.release)
	e.Redraw()
	return e, nil
}

// SetClock sets the clock driving the cursor blinking and restarts
// the blinking.
func (e *Entry) SetClock(c monotime.Clock) {
	e.clock = c
	e.first = c.Millis()
}

func (e *Entry) key(w widget.Widget, ev event.Event) bool {
	if e.state != Selected {
		return false
	}
	changed, submit := e.editor.Key(ev.(key.Event))
	if submit {
		e.SetState(Deselected)
		e.Post(Submit{Value: e.editor.Value(), Entry: e})
		return false
	}
	if changed {
		e.Redraw()
	}
	return false
}

func (e *Entry) release(w widget.Widget, ev event.Event) bool {
	pe := ev.(pointer.Event)
	if !pe.Primary() {
		return false
	}
	inside := pe.Position.In(e.Bounds())
	if inside {
		e.editor.SetCursor(e.nearest(pe.Position.X - e.Bounds().Min.X))
	}
	switch {
	case e.state == Deselected && inside:
		e.SetState(Selected)
	case e.state == Selected && !inside:
		e.SetState(Deselected)
	default:
		e.Redraw()
	}
	return false
}

// nearest returns the cursor position closest to the horizontal
// offset x. The first position wins ties.
func (e *Entry) nearest(x int) int {
	face := e.font.Face()
	pad := face.Height()
	best, bestDist := 0, -1
	for i := 0; i <= e.editor.Len(); i++ {
		d := pad + face.Advance(e.editor.Prefix(i)) - x
		if d < 0 {
			d = -d
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Value returns the text of the entry.
func (e *Entry) Value() string {
	return e.editor.Value()
}

// SetValue replaces the value. It fails with widget.ErrPrecondition
// if v is longer than the entry.
func (e *Entry) SetValue(v string) error {
	if err := e.editor.SetValue(v); err != nil {
		return err
	}
	e.Redraw()
	return nil
}

// Cursor returns the number of characters before the cursor.
func (e *Entry) Cursor() int {
	return e.editor.Cursor()
}

// SetCursor moves the cursor after i characters.
func (e *Entry) SetCursor(i int) error {
	if err := e.editor.SetCursor(i); err != nil {
		return err
	}
	e.Redraw()
	return nil
}

// Len returns the maximum number of characters.
func (e *Entry) Len() int {
	return e.editor.MaxLen()
}

// State returns the focus state of the entry.
func (e *Entry) State() EntryState {
	return e.state
}

// SetState sets the state and redraws the entry. The Disabled state
// disables the widget and the others enable it.
func (e *Entry) SetState(s EntryState) error {
	if s > Disabled {
		return fmt.Errorf("material: entry state %d: %w", s, widget.ErrOutOfRange)
	}
	e.state = s
	if s == Disabled {
		e.Base.Disable()
	} else {
		e.Base.Enable()
	}
	e.Redraw()
	return nil
}

// Enable enables the entry, deselected.
func (e *Entry) Enable() {
	if e.state == Disabled {
		e.SetState(Deselected)
	}
}

// Disable disables the entry.
func (e *Entry) Disable() {
	e.SetState(Disabled)
}

// cursorVisible reports whether the blinking cursor is in its shown
// phase.
func (e *Entry) cursorVisible() bool {
	return (e.clock.Millis()-e.first)/blinkPeriod%2 == 1
}

// Redraw draws the value in a rounded box wide enough for the
// maximum number of characters.
func (e *Entry) Redraw() {
	bg, fg := entryBackground, black
	if e.state == Disabled {
		bg, fg = entryDisabledBackground, greyText
	}
	face := e.font.Face()
	pad := face.Height()
	sz := face.Measure(strings.Repeat("M", e.editor.MaxLen())).Add(image.Pt(2*pad, 2*pad))
	img := paint.NewImage(sz)
	box := img.Bounds().Inset(1)
	paint.Rect{Rect: box, Color: bg, Radius: 4}.Draw(img)
	paint.Rect{Rect: box, Color: black, Width: 1, Radius: 4}.Draw(img)
	if e.state == Selected && e.cursorVisible() {
		x := pad + face.Advance(e.editor.Prefix(e.editor.Cursor()))
		paint.Rect{Rect: image.Rect(x, pad, x+2, 2*pad), Color: black}.Draw(img)
	}
	txt, _ := face.Render(e.editor.Value(), fg)
	paint.Blit(img, txt, image.Pt(pad, (sz.Y-txt.Bounds().Dy())/2))
	e.SetImage(img)
}

func (s EntryState) String() string {
	switch s {
	case Selected:
		return "Selected"
	case Deselected:
		return "Deselected"
	case Disabled:
		return "Disabled"
	default:
		panic("invalid EntryState")
	}
}
