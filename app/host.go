// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image/color"
	"image/draw"
	"log"

	"wipgo.org/io/event"
	"wipgo.org/io/system"
	"wipgo.org/paint"
	"wipgo.org/widget"
)

// Host runs a set of root widgets.
type Host struct {
	// Background fills the surface before the roots are drawn.
	Background color.Color

	roots   []widget.Widget
	queue   event.Queue
	looping bool
	err     error
}

// NewHost returns a host drawing its roots over bg.
func NewHost(bg color.Color) *Host {
	return &Host{Background: bg}
}

// Add makes w a root of the host. The host becomes the event sink
// of w and its children.
func (h *Host) Add(w widget.Widget) {
	w.SetSink(h)
	h.roots = append(h.roots, w)
}

// Roots returns the live roots, in drawing order.
func (h *Host) Roots() []widget.Widget {
	var roots []widget.Widget
	for _, w := range h.roots {
		if !w.Destroyed() {
			roots = append(roots, w)
		}
	}
	return roots
}

// Post queues e for dispatch during the next call to Frame.
func (h *Host) Post(e event.Event) {
	h.queue.Post(e)
}

// Dispatch offers e to every live root and reports whether one of
// them stopped its propagation. A system.DestroyEvent stops Run.
func (h *Host) Dispatch(e event.Event) bool {
	if de, ok := e.(system.DestroyEvent); ok {
		h.err = de.Err
		h.looping = false
	}
	roots := h.Roots()
	if len(roots) == 0 {
		log.Printf("app: no root for %v event", e.Kind())
		return false
	}
	stop := false
	for _, w := range roots {
		if w.React(e) {
			stop = true
		}
	}
	return stop
}

// Frame dispatches the posted events, updates the roots and draws
// them onto dst. Events posted while dispatching wait for the next
// frame.
func (h *Host) Frame(dst draw.Image) {
	for _, e := range h.queue.Drain() {
		h.Dispatch(e)
	}
	h.roots = h.Roots()
	if h.Background != nil {
		paint.Fill(dst, h.Background)
	}
	for _, w := range h.roots {
		w.Update()
	}
	for _, w := range h.roots {
		paint.Blit(dst, w.Image(), w.Bounds().Min)
	}
}

// Quit stops Run after the current frame.
func (h *Host) Quit() {
	h.looping = false
}

// Looping reports whether Run is running.
func (h *Host) Looping() bool {
	return h.looping
}

// Run dispatches the events of src, one batch per frame, and
// draws every frame on dst before passing it to present. It returns
// the error of a present, or of the system.DestroyEvent that
// stopped it.
func (h *Host) Run(src Source, dst draw.Image, present func(draw.Image) error) error {
	h.looping = true
	h.err = nil
	defer func() { h.looping = false }()
	for h.looping {
		evts, ok := src.Events()
		if !ok {
			break
		}
		for _, e := range evts {
			h.Dispatch(e)
		}
		h.Frame(dst)
		if err := present(dst); err != nil {
			return err
		}
	}
	return h.err
}
