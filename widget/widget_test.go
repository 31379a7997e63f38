// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"testing"

	"wipgo.org/io/event"
	"wipgo.org/io/pointer"
	"wipgo.org/widget"
)

// box is a widget of fixed size.
type box struct {
	widget.Base
	size    image.Point
	redraws int
}

func newBox(w, h int) *box {
	b := &box{size: image.Pt(w, h)}
	b.Init(b)
	b.Redraw()
	return b
}

func (b *box) Redraw() {
	b.redraws++
	b.SetImage(image.NewRGBA(image.Rectangle{Max: b.size}))
}

// panel is a container that draws nothing of its own.
type panel struct {
	widget.ContainerBase
	redraws int
}

func newPanel() *panel {
	p := new(panel)
	p.Init(p)
	return p
}

func (p *panel) Redraw() {
	p.redraws++
}

var testKind = event.NewKind("widget_test.Test")

type testEvent struct{}

func (testEvent) Kind() event.Kind { return testKind }

func TestReactionsOrder(t *testing.T) {
	b := newBox(10, 10)
	var calls []int
	for i := 0; i < 3; i++ {
		i := i
		b.AddReaction(testKind, func(w widget.Widget, e event.Event) bool {
			if w != b {
				t.Errorf("reaction got widget %v, want %v", w, b)
			}
			calls = append(calls, i)
			return i == 0
		})
	}
	if !b.React(testEvent{}) {
		t.Error("React did not report the stop request")
	}
	if len(calls) != 3 || calls[0] != 0 || calls[1] != 1 || calls[2] != 2 {
		t.Errorf("reactions ran as %v, want [0 1 2]", calls)
	}
}

func TestReactionsRemove(t *testing.T) {
	var r widget.Reactions
	var calls []string
	add := func(name string) widget.Handle {
		return r.Add(testKind, func(w widget.Widget, e event.Event) bool {
			calls = append(calls, name)
			return false
		})
	}
	h1 := add("a")
	h2 := add("b")
	h3 := add("c")
	if !r.Remove(h2) {
		t.Fatal("Remove of a registered handle failed")
	}
	if r.Remove(h2) {
		t.Error("Remove of a removed handle succeeded")
	}
	if r.Remove(widget.Handle{Kind: pointer.PressKind}) {
		t.Error("Remove of an unknown handle succeeded")
	}
	// Handles registered before and after stay valid.
	if !r.Remove(h3) {
		t.Error("handle after a removed one is no longer valid")
	}
	r.Dispatch(nil, testEvent{})
	if len(calls) != 1 || calls[0] != "a" {
		t.Errorf("dispatch ran %v, want [a]", calls)
	}
	if !r.Remove(h1) {
		t.Error("handle before a removed one is no longer valid")
	}
	if n := r.Len(testKind); n != 0 {
		t.Errorf("%d reactions left, want 0", n)
	}
}

func TestReactionsRemoveDuringDispatch(t *testing.T) {
	var r widget.Reactions
	var calls int
	var h widget.Handle
	h = r.Add(testKind, func(w widget.Widget, e event.Event) bool {
		r.Remove(h)
		return false
	})
	r.Add(testKind, func(w widget.Widget, e event.Event) bool {
		calls++
		return false
	})
	r.Dispatch(nil, testEvent{})
	r.Dispatch(nil, testEvent{})
	if calls != 2 {
		t.Errorf("second reaction ran %d times, want 2", calls)
	}
	if n := r.Len(testKind); n != 1 {
		t.Errorf("%d reactions left, want 1", n)
	}
}

func TestDisabledWidgetIgnoresEvents(t *testing.T) {
	b := newBox(10, 10)
	calls := 0
	b.AddReaction(testKind, func(w widget.Widget, e event.Event) bool {
		calls++
		return true
	})
	b.Disable()
	if b.React(testEvent{}) || calls != 0 {
		t.Error("disabled widget reacted")
	}
	b.Enable()
	if !b.React(testEvent{}) || calls != 1 {
		t.Error("enabled widget did not react")
	}
}

func TestMoveTo(t *testing.T) {
	b := newBox(10, 20)
	b.MoveTo(image.Pt(5, 7))
	if got, want := b.Bounds(), image.Rect(5, 7, 15, 27); got != want {
		t.Errorf("bounds %v, want %v", got, want)
	}
	b.Update()
	if got, want := b.Bounds(), image.Rect(5, 7, 15, 27); got != want {
		t.Errorf("bounds after redraw %v, want %v", got, want)
	}
	if b.Image().Bounds().Size() != b.Bounds().Size() {
		t.Errorf("image size %v differs from bounds %v", b.Image().Bounds().Size(), b.Bounds())
	}
}

func TestPostFindsSink(t *testing.T) {
	var q event.Queue
	p := newPanel()
	inner := newPanel()
	b := newBox(1, 1)
	p.AddWidget(inner)
	inner.AddWidget(b)
	if b.Post(testEvent{}) {
		t.Fatal("Post succeeded without a sink")
	}
	p.SetSink(&q)
	if !b.Post(testEvent{}) {
		t.Fatal("Post did not find the sink of an outer container")
	}
	if q.Len() != 1 {
		t.Errorf("queue has %d events, want 1", q.Len())
	}
}
