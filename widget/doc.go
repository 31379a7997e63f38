// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements the retained widget model: the Widget
interface and its embeddable Base, reactions to events, containers
that fan events and updates out to their children, the grid container
and the state machines of buttons and text editors. Theme packages
such as widget/material implement drawing of widgets.

Events flow bottom-up. A container offers every event to its children
first, in order, and only runs its own reactions if no child asked to
stop the propagation. Updates flow the same way: children redraw before
their container composites their images.

Widgets are not safe for concurrent use. A widget tree is driven by a
single loop that alternates between dispatching events and updating.
*/
package widget
