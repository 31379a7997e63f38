// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"image"
	"image/color"
	"log"
	"strings"
	"unicode"

	"golang.org/x/image/colornames"

	"wipgo.org/app"
	"wipgo.org/io/event"
	"wipgo.org/io/key"
	"wipgo.org/io/pointer"
	"wipgo.org/layout"
	"wipgo.org/widget"
	"wipgo.org/widget/material"
)

type demo struct {
	size       image.Point
	background color.Color
	// build adds the widgets of the demo to h and returns the
	// events to play.
	build func(h *app.Host, th *material.Theme, size image.Point) *app.Script
}

var demos = map[string]demo{
	"simple": {
		size:       image.Pt(640, 480),
		background: colornames.Darkred,
		build:      simpleDemo,
	},
	"frame": {
		size:       image.Pt(640, 480),
		background: colornames.Darkred,
		build:      frameDemo,
	},
	"window": {
		size:       image.Pt(640, 480),
		background: colornames.Darkslateblue,
		build:      windowDemo,
	},
}

// onClick registers f to run when b is clicked.
func onClick(b widget.Widget, f func()) {
	b.AddReaction(widget.ClickedKind, func(w widget.Widget, e event.Event) bool {
		if e.(widget.Clicked).Button != w {
			return false
		}
		f()
		return true
	})
}

// place moves w to a position aligned in the screen.
func place(w widget.Widget, d layout.Direction, size image.Point) {
	w.MoveTo(d.Place(w.Bounds().Size(), image.Rectangle{Max: size}).Min)
}

func center(w widget.Widget) image.Point {
	r := w.Bounds()
	return r.Min.Add(r.Size().Div(2))
}

func click(w widget.Widget) func() []event.Event {
	return func() []event.Event {
		p := center(w)
		return []event.Event{
			pointer.Event{Type: pointer.Press, Buttons: pointer.ButtonPrimary, Position: p},
			pointer.Event{Type: pointer.Release, Buttons: pointer.ButtonPrimary, Position: p},
		}
	}
}

func typing(s string) []event.Event {
	var evts []event.Event
	for _, r := range s {
		name := key.Name(string(unicode.ToUpper(r)))
		if r == ' ' {
			name = key.NameSpace
		}
		evts = append(evts,
			key.Event{Name: name, Text: string(r)},
			key.Event{Name: name, State: key.Release},
		)
	}
	return evts
}

func mustEntry(e *material.Entry, err error) *material.Entry {
	if err != nil {
		log.Fatal(err)
	}
	return e
}

func mustFrame(f *material.Frame, err error) *material.Frame {
	if err != nil {
		log.Fatal(err)
	}
	return f
}

// simpleDemo shows every simple widget on its own.
func simpleDemo(h *app.Host, th *material.Theme, size image.Point) *app.Script {
	quit := material.NewCancelButton(th, "Quit")
	onClick(quit, h.Quit)
	place(quit, layout.SE, size)

	hello := material.NewSubmitButton(th, "Hello")
	onClick(hello, func() { log.Print("hello world!") })

	disabled := material.NewPlainButton(th, "Ok")
	disabled.Disable()
	place(disabled, layout.SW, size)

	lbl := material.NewLabel(th, "Hello everyone")
	place(lbl, layout.Center, size)

	ent := mustEntry(material.NewEntry(th, "Et ", 10))
	ent.SetState(material.Selected)
	place(ent, layout.NE, size)

	for _, w := range []widget.Widget{quit, hello, disabled, lbl, ent} {
		h.Add(w)
	}

	s := app.NewScript(nil)
	s.Append(typing("voila")...)
	s.AppendFunc(click(hello))
	s.AppendFunc(click(disabled))
	s.Append()
	s.AppendFunc(click(quit))
	// Never reached: the quit button stops the host.
	s.Append()
	return s
}

// frameDemo lays the widgets out in a Frame.
func frameDemo(h *app.Host, th *material.Theme, size image.Point) *app.Script {
	quit := material.NewCancelButton(th, "Quit")
	onClick(quit, h.Quit)
	closeBtn := material.NewCancelButton(th, "Close")
	onClick(closeBtn, func() { closeBtn.Container().Destroy() })
	lbl := material.NewLabel(th, "Hello everyone")
	ent := mustEntry(material.NewEntry(th, "Et ", 10))
	ent.SetState(material.Selected)
	ent.AddReaction(material.SubmitKind, func(w widget.Widget, e event.Event) bool {
		if s := e.(material.Submit); s.Entry == w {
			lbl.SetText(strings.TrimSpace(s.Value))
		}
		return false
	})

	f := mustFrame(material.NewFrame([][]widget.Widget{
		{lbl, closeBtn},
		{ent, quit},
	}, colornames.Dimgray))
	place(f, layout.Center, size)
	h.Add(f)

	s := app.NewScript(nil)
	s.Append(typing("voila")...)
	s.Append(key.Event{Name: key.NameReturn})
	s.Append()
	s.AppendFunc(click(closeBtn))
	s.Append()
	return s
}

// windowDemo puts a Frame in a Window, then drags, minimizes and
// restores the window.
func windowDemo(h *app.Host, th *material.Theme, size image.Point) *app.Script {
	quit := material.NewCancelButton(th, "Quit")
	onClick(quit, h.Quit)
	f := mustFrame(material.NewFrame([][]widget.Widget{
		{material.NewLabel(th, "Hello World!")},
		{quit},
	}, colornames.Dimgray))
	win := material.NewWindow(th, f, color.NRGBA{R: 255, A: 100})
	place(win, layout.Center, size)
	win.Redraw()
	h.Add(win)

	bar := func() image.Point {
		return win.Bounds().Min.Add(image.Pt(5, material.BarHeight/2))
	}
	s := app.NewScript(nil)
	s.AppendFunc(func() []event.Event {
		p := bar()
		return []event.Event{
			pointer.Event{Type: pointer.Press, Buttons: pointer.ButtonPrimary, Position: p},
			pointer.Event{Type: pointer.Move, Buttons: pointer.ButtonPrimary, Position: p.Add(image.Pt(-60, -40))},
		}
	})
	s.AppendFunc(func() []event.Event {
		p := bar()
		return []event.Event{
			pointer.Event{Type: pointer.Move, Buttons: pointer.ButtonPrimary, Position: p.Add(image.Pt(-60, -40))},
			pointer.Event{Type: pointer.Release, Buttons: pointer.ButtonPrimary, Position: p.Add(image.Pt(-60, -40))},
		}
	})
	minimize := func() []event.Event {
		r := win.Bounds()
		p := image.Pt(r.Max.X-material.BarHeight-material.BarHeight/2, r.Min.Y+material.BarHeight/2)
		return []event.Event{
			pointer.Event{Type: pointer.Press, Buttons: pointer.ButtonPrimary, Position: p},
			pointer.Event{Type: pointer.Release, Buttons: pointer.ButtonPrimary, Position: p},
		}
	}
	s.AppendFunc(minimize)
	s.Append()
	s.AppendFunc(minimize)
	s.Append()
	s.AppendFunc(click(quit))
	s.Append()
	return s
}
