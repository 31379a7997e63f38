// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "wipgo.org/io/event"

// Container is a Widget that owns an ordered list of child widgets.
type Container interface {
	Widget
	// Widgets returns the children in order.
	Widgets() []Widget
	// AddWidget appends w to the children and makes this container
	// its container.
	AddWidget(w Widget)
	// RemoveWidget removes w from the children and destroys it.
	RemoveWidget(w Widget)

	detach(w Widget)
}

// ContainerBase implements the child management of Container.
// Events and updates reach the children before the container itself.
//
// A disabled container disables the widgets added to it, so its
// children stay disabled until the container is enabled again.
type ContainerBase struct {
	Base
	children []Widget
}

func (c *ContainerBase) outer() Container {
	return c.widget().(Container)
}

// Widgets implements Container.
func (c *ContainerBase) Widgets() []Widget {
	return append([]Widget(nil), c.children...)
}

// AddWidget implements Container.
func (c *ContainerBase) AddWidget(w Widget) {
	self := c.outer()
	wb := w.base()
	if wb.container == self {
		return
	}
	if wb.container != nil {
		wb.container.detach(w)
	}
	c.children = append(c.children, w)
	wb.container = self
	if c.disabled {
		w.Disable()
	}
}

// RemoveWidget implements Container.
func (c *ContainerBase) RemoveWidget(w Widget) {
	self := c.outer()
	if w.base().container != self {
		return
	}
	self.detach(w)
	w.Destroy()
}

func (c *ContainerBase) detach(w Widget) {
	for i, child := range c.children {
		if child == w {
			c.children = append(c.children[:i:i], c.children[i+1:]...)
			break
		}
	}
	w.base().container = nil
}

// React offers e to every child, then runs the reactions of the
// container unless a child asked to stop the propagation.
func (c *ContainerBase) React(e event.Event) bool {
	if c.destroyed {
		return false
	}
	stop := false
	for _, w := range c.Widgets() {
		if w.React(e) {
			stop = true
		}
	}
	if stop {
		return true
	}
	return c.Base.React(e)
}

// Update updates every child, then redraws the container.
func (c *ContainerBase) Update() {
	for _, w := range c.Widgets() {
		if !w.Destroyed() {
			w.Update()
		}
	}
	c.widget().Redraw()
}

// Enable enables the children and the container.
func (c *ContainerBase) Enable() {
	for _, w := range c.children {
		w.Enable()
	}
	c.Base.Enable()
}

// Disable disables the children and the container.
func (c *ContainerBase) Disable() {
	for _, w := range c.children {
		w.Disable()
	}
	c.Base.Disable()
}

// Destroy destroys the children, then the container.
func (c *ContainerBase) Destroy() {
	if c.destroyed {
		return
	}
	for _, w := range c.Widgets() {
		w.Destroy()
	}
	c.Base.Destroy()
}
