// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"wipgo.org/io/event"
)

// Widget is a retained user interface element. It owns a
// rectangle in the host surface space and an image of the same size,
// and reacts to the events offered to it.
//
// Concrete widgets embed Base, or a type embedding Base, and
// implement Redraw.
type Widget interface {
	// Bounds returns the rectangle of the widget.
	Bounds() image.Rectangle
	// Image returns the last image drawn by Redraw. Its size equals
	// the size of Bounds.
	Image() *image.RGBA
	// MoveTo moves the widget so its top left corner is at p.
	MoveTo(p image.Point)
	// React offers an event to the widget. It reports whether the
	// propagation of the event should stop.
	React(e event.Event) bool
	// Update brings the widget up to date for the next frame.
	Update()
	// Redraw regenerates the image and bounds from the state of the
	// widget. It must be called after a change of appearance.
	Redraw()
	Enable()
	Disable()
	Enabled() bool
	// Destroy detaches the widget from its container. A destroyed
	// widget no longer reacts to events.
	Destroy()
	Destroyed() bool
	// Container returns the container of the widget, or nil.
	Container() Container
	AddReaction(k event.Kind, r Reaction) Handle
	RemoveReaction(h Handle) bool
	// SetSink sets the sink for the events posted by the widget and
	// its children.
	SetSink(s event.Sink)

	base() *Base
}

// Base implements the parts of Widget common to every widget.
type Base struct {
	self      Widget
	reactions Reactions
	rect      image.Rectangle
	img       *image.RGBA
	disabled  bool
	destroyed bool
	container Container
	sink      event.Sink
}

// Init binds b to the widget that embeds it. Reactions receive
// self, and Update redraws it. Init must be called before the widget
// is used.
func (b *Base) Init(self Widget) {
	b.self = self
	if b.img == nil {
		b.img = &image.RGBA{}
	}
}

func (b *Base) base() *Base {
	return b
}

func (b *Base) widget() Widget {
	if b.self == nil {
		panic("widget: Base used before Init")
	}
	return b.self
}

// Bounds implements Widget.
func (b *Base) Bounds() image.Rectangle {
	return b.rect
}

// Image implements Widget.
func (b *Base) Image() *image.RGBA {
	return b.img
}

// SetImage replaces the image of the widget and resizes its bounds
// to match, keeping the top left corner in place.
func (b *Base) SetImage(img *image.RGBA) {
	b.img = img
	b.rect.Max = b.rect.Min.Add(img.Bounds().Size())
}

// MoveTo implements Widget.
func (b *Base) MoveTo(p image.Point) {
	b.rect = b.rect.Add(p.Sub(b.rect.Min))
}

// Translate moves the widget by d.
func (b *Base) Translate(d image.Point) {
	b.rect = b.rect.Add(d)
}

// Enabled implements Widget.
func (b *Base) Enabled() bool {
	return !b.disabled
}

// Enable implements Widget.
func (b *Base) Enable() {
	b.disabled = false
}

// Disable implements Widget.
func (b *Base) Disable() {
	b.disabled = true
}

// React runs the reactions registered for the event, unless the
// widget is disabled or destroyed.
func (b *Base) React(e event.Event) bool {
	if b.disabled || b.destroyed {
		return false
	}
	return b.reactions.Dispatch(b.widget(), e)
}

// Update redraws the widget.
func (b *Base) Update() {
	b.widget().Redraw()
}

// AddReaction registers r for events of kind k.
func (b *Base) AddReaction(k event.Kind, r Reaction) Handle {
	return b.reactions.Add(k, r)
}

// RemoveReaction unregisters a reaction added by AddReaction.
func (b *Base) RemoveReaction(h Handle) bool {
	return b.reactions.Remove(h)
}

// Container implements Widget.
func (b *Base) Container() Container {
	return b.container
}

// Destroy implements Widget.
func (b *Base) Destroy() {
	if b.destroyed {
		return
	}
	b.destroyed = true
	if c := b.container; c != nil {
		c.detach(b.widget())
	}
}

// Destroyed implements Widget.
func (b *Base) Destroyed() bool {
	return b.destroyed
}

// SetSink implements Widget.
func (b *Base) SetSink(s event.Sink) {
	b.sink = s
}

// Post delivers e to the sink of the widget or, failing that, of
// its nearest container with a sink. It reports whether a sink was
// found.
func (b *Base) Post(e event.Event) bool {
	for w := b; w != nil; {
		if w.sink != nil {
			w.sink.Post(e)
			return true
		}
		if w.container == nil {
			break
		}
		w = w.container.base()
	}
	return false
}
