// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app runs widgets: it feeds them events, updates them and
composites their images onto a surface.

# Hosts

A Host owns the root widgets of a program and is their event sink.
Events posted by widgets, such as widget.Clicked, are dispatched to
the roots in the frame they were posted, after the events from the
Source.

For example:

	h := app.NewHost(colornames.Darkred)
	h.Add(button)
	err := h.Run(src, screen, func(img draw.Image) error {
		// Show img.
		return nil
	})

Run returns when the Source is exhausted, Quit is called, or a
system.DestroyEvent is dispatched.
*/
package app
