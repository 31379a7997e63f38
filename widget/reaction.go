// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "wipgo.org/io/event"

// Reaction is called with the widget that received an event and the
// event. It returns true to stop the propagation of the event to the
// containers of the widget.
type Reaction func(w Widget, e event.Event) bool

// Handle identifies a registered Reaction. Handles stay valid
// until their reaction is removed, regardless of other removals.
type Handle struct {
	Kind event.Kind
	id   uint64
}

// Reactions is a registry of reactions by event kind.
type Reactions struct {
	next  uint64
	kinds map[event.Kind][]reaction
}

type reaction struct {
	id uint64
	fn Reaction
}

// Add registers fn for events of kind k, after the reactions already
// registered for k.
func (r *Reactions) Add(k event.Kind, fn Reaction) Handle {
	if r.kinds == nil {
		r.kinds = make(map[event.Kind][]reaction)
	}
	r.next++
	r.kinds[k] = append(r.kinds[k], reaction{id: r.next, fn: fn})
	return Handle{Kind: k, id: r.next}
}

// Remove unregisters the reaction identified by h. It reports
// whether the reaction was registered.
func (r *Reactions) Remove(h Handle) bool {
	list := r.kinds[h.Kind]
	for i, re := range list {
		if re.id != h.id {
			continue
		}
		if len(list) == 1 {
			delete(r.kinds, h.Kind)
			return true
		}
		// Copy, so a Dispatch in progress keeps iterating the old list.
		nl := make([]reaction, 0, len(list)-1)
		nl = append(nl, list[:i]...)
		nl = append(nl, list[i+1:]...)
		r.kinds[h.Kind] = nl
		return true
	}
	return false
}

// Len returns the number of reactions registered for k.
func (r *Reactions) Len(k event.Kind) int {
	return len(r.kinds[k])
}

// Dispatch calls every reaction registered for the kind of e, in
// registration order, and reports whether any of them asked to stop
// the propagation. All reactions run, even after one asked to stop.
// Reactions added or removed by a reaction take effect from the next
// Dispatch.
func (r *Reactions) Dispatch(w Widget, e event.Event) bool {
	stop := false
	for _, re := range r.kinds[e.Kind()] {
		if re.fn(w, e) {
			stop = true
		}
	}
	return stop
}
