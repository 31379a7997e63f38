// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"wipgo.org/gesture"
	"wipgo.org/io/event"
	"wipgo.org/io/pointer"
	"wipgo.org/io/system"
	"wipgo.org/paint"
	"wipgo.org/widget"
)

// BarHeight is the height of the title bar of a Window.
const BarHeight = 20

// DefaultBarColor is the title bar color of NewWindow.
var DefaultBarColor = rgb(0x6e6e6e)

// Window decorates a content widget with a title bar. The bar has
// buttons closing and minimizing the window and drags it around.
type Window struct {
	widget.ContainerBase
	content   widget.Widget
	close     *IconButton
	minimize  *IconButton
	bar       color.Color
	minimized bool

	drag   gesture.Drag
	motion widget.Handle
}

// NewWindow returns a window around content with a title bar of
// color bar.
func NewWindow(th *Theme, content widget.Widget, bar color.Color) *Window {
	w := &Window{
		content: content,
		close:   decorationButton(th.Icon.Close),
		bar:     bar,
	}
	w.minimize = decorationButton(th.Icon.Minimize)
	w.Init(w)
	w.AddWidget(w.close)
	w.AddWidget(w.minimize)
	w.AddWidget(content)
	w.close.AddReaction(widget.ClickedKind, func(b widget.Widget, e event.Event) bool {
		if e.(widget.Clicked).Button != b {
			return false
		}
		w.Perform(system.ActionClose)
		return true
	})
	w.minimize.AddReaction(widget.ClickedKind, func(b widget.Widget, e event.Event) bool {
		if e.(widget.Clicked).Button != b {
			return false
		}
		w.Perform(system.ActionMinimize)
		return true
	})
	w.AddReaction(pointer.PressKind, w.press)
	w.AddReaction(pointer.ReleaseKind, func(widget.Widget, event.Event) bool {
		w.Release()
		return false
	})
	w.Redraw()
	return w
}

func decorationButton(ic *widget.Icon) *IconButton {
	b, err := NewIconButton(
		ic.Image(BarHeight, black),
		ic.Image(BarHeight, white),
		ic.Image(BarHeight, greyText),
	)
	if err != nil {
		panic(err)
	}
	return b
}

// Content returns the content widget, or nil once the content was
// destroyed or moved to another container.
func (w *Window) Content() widget.Widget {
	if w.content != nil && (w.content.Destroyed() || w.content.Container() != widget.Container(w)) {
		w.content = nil
	}
	return w.content
}

// Minimized reports whether the window is rolled up to its bar.
func (w *Window) Minimized() bool {
	return w.minimized
}

// Dragging reports whether the window follows the pointer.
func (w *Window) Dragging() bool {
	return w.drag.Dragging()
}

// Perform the actions of a.
func (w *Window) Perform(a system.Action) {
	if a&system.ActionClose != 0 {
		w.Destroy()
		return
	}
	if a&system.ActionMinimize != 0 {
		w.minimized = !w.minimized
		if c := w.Content(); c != nil {
			if w.minimized {
				c.Disable()
			} else if w.Enabled() {
				c.Enable()
			}
		}
		w.Redraw()
	}
}

// Enable enables the window. The content of a minimized window
// stays disabled until the window is restored.
func (w *Window) Enable() {
	c := w.Content()
	for _, child := range w.Widgets() {
		if child == c && w.minimized {
			continue
		}
		child.Enable()
	}
	w.Base.Enable()
}

// barBounds returns the rectangle of the title bar.
func (w *Window) barBounds() image.Rectangle {
	r := w.Bounds()
	r.Max.Y = r.Min.Y + BarHeight
	return r
}

func (w *Window) press(_ widget.Widget, e event.Event) bool {
	pe := e.(pointer.Event)
	if !pe.Primary() || !pe.Position.In(w.barBounds()) {
		return false
	}
	if pe.Position.In(w.close.Bounds()) || pe.Position.In(w.minimize.Bounds()) {
		return false
	}
	if !w.drag.Dragging() {
		w.motion = w.AddReaction(pointer.MoveKind, w.move)
	}
	w.drag.Start(pe)
	return true
}

func (w *Window) move(_ widget.Widget, e event.Event) bool {
	d := w.drag.Move(e.(pointer.Event))
	if d == (image.Point{}) {
		return false
	}
	w.Translate(d)
	w.Redraw()
	return true
}

// Release ends a drag of the window. Releases of the pointer end
// drags, unless a child stops the propagation of the release.
func (w *Window) Release() {
	if !w.drag.Dragging() {
		return
	}
	w.drag.Stop()
	w.RemoveReaction(w.motion)
}

// Redraw places the content under the title bar and draws both.
// A minimized window, or one without content, keeps its width and
// draws the bar only.
func (w *Window) Redraw() {
	origin := w.Bounds().Min
	sz := image.Pt(w.Bounds().Dx(), BarHeight)
	c := w.Content()
	if w.minimized {
		c = nil
	}
	if c != nil {
		c.MoveTo(origin.Add(image.Pt(0, BarHeight)))
		c.Redraw()
		sz = c.Bounds().Size().Add(image.Pt(0, BarHeight))
	}
	img := paint.NewImage(sz)
	if c != nil {
		paint.Blit(img, c.Image(), image.Pt(0, BarHeight))
	}
	paint.Rect{Rect: image.Rect(0, 0, sz.X, BarHeight), Color: w.bar}.Draw(img)
	for i, b := range []*IconButton{w.close, w.minimize} {
		p := image.Pt(sz.X-(i+1)*BarHeight, 0)
		b.MoveTo(origin.Add(p))
		b.Redraw()
		paint.Blit(img, b.Image(), p)
	}
	w.SetImage(img)
}
