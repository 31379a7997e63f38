// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"strings"
	"testing"

	"wipgo.org/io/event"
	"wipgo.org/widget"
)

func TestContainerMembership(t *testing.T) {
	p := newPanel()
	a, b := newBox(1, 1), newBox(2, 2)
	p.AddWidget(a)
	p.AddWidget(b)
	p.AddWidget(a)
	if got := p.Widgets(); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("children %v, want [a b]", got)
	}
	if a.Container() != p || b.Container() != p {
		t.Error("child container is not the panel")
	}
	p.RemoveWidget(a)
	if a.Container() != nil {
		t.Error("removed child still references its container")
	}
	if !a.Destroyed() {
		t.Error("removed child not destroyed")
	}
	if got := p.Widgets(); len(got) != 1 || got[0] != b {
		t.Errorf("children %v, want [b]", got)
	}
}

func TestContainerMove(t *testing.T) {
	p1, p2 := newPanel(), newPanel()
	b := newBox(1, 1)
	p1.AddWidget(b)
	p2.AddWidget(b)
	if b.Container() != p2 {
		t.Error("widget not moved to the second container")
	}
	if len(p1.Widgets()) != 0 {
		t.Error("widget still a child of the first container")
	}
	if b.Destroyed() {
		t.Error("moving a widget destroyed it")
	}
}

func TestDestroyedWidgetGetsNoEvents(t *testing.T) {
	p := newPanel()
	b := newBox(1, 1)
	calls := 0
	b.AddReaction(testKind, func(w widget.Widget, e event.Event) bool {
		calls++
		return false
	})
	p.AddWidget(b)
	p.React(testEvent{})
	b.Destroy()
	p.React(testEvent{})
	b.React(testEvent{})
	if calls != 1 {
		t.Errorf("reaction ran %d times, want 1", calls)
	}
	if b.Container() != nil {
		t.Error("destroyed widget still references its container")
	}
}

func TestContainerDestroyCascades(t *testing.T) {
	outer, inner := newPanel(), newPanel()
	b := newBox(1, 1)
	outer.AddWidget(inner)
	inner.AddWidget(b)
	outer.Destroy()
	if !inner.Destroyed() || !b.Destroyed() {
		t.Error("destroy did not cascade to descendants")
	}
}

func TestContainerPropagation(t *testing.T) {
	p := newPanel()
	a, b := newBox(1, 1), newBox(1, 1)
	p.AddWidget(a)
	p.AddWidget(b)
	var order []string
	react := func(name string, stop bool) widget.Reaction {
		return func(w widget.Widget, e event.Event) bool {
			order = append(order, name)
			return stop
		}
	}
	p.AddReaction(testKind, react("panel", false))
	a.AddReaction(testKind, react("a", false))
	b.AddReaction(testKind, react("b", false))
	if p.React(testEvent{}) {
		t.Error("propagation stopped without a stop request")
	}
	if want := "a b panel"; strings.Join(order, " ") != want {
		t.Errorf("order %q, want %q", strings.Join(order, " "), want)
	}

	order = nil
	a.AddReaction(testKind, react("a2", true))
	if !p.React(testEvent{}) {
		t.Error("stop request not reported")
	}
	// Every child sees the event; the container does not.
	if want := "a a2 b"; strings.Join(order, " ") != want {
		t.Errorf("order %q, want %q", strings.Join(order, " "), want)
	}
}

func TestContainerUpdateOrder(t *testing.T) {
	p := newPanel()
	b := newBox(1, 1)
	p.AddWidget(b)
	before := b.redraws
	p.Update()
	if b.redraws != before+1 {
		t.Error("child not redrawn by update")
	}
	if p.redraws != 1 {
		t.Errorf("container redrawn %d times, want 1", p.redraws)
	}
}

func TestContainerDisable(t *testing.T) {
	p := newPanel()
	a := newBox(1, 1)
	p.AddWidget(a)
	p.Disable()
	if a.Enabled() || p.Enabled() {
		t.Error("disable did not cascade")
	}
	late := newBox(1, 1)
	p.AddWidget(late)
	if late.Enabled() {
		t.Error("widget added to a disabled container is enabled")
	}
	p.Enable()
	if !a.Enabled() || !late.Enabled() || !p.Enabled() {
		t.Error("enable did not cascade")
	}
}
