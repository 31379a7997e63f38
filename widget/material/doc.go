// SPDX-License-Identifier: Unlicense OR MIT

// Package material implements the concrete widgets: labels, text and
// icon buttons, single line entries, frames and decorated windows.
//
// The behavior of the widgets lives in package widget; this package
// draws them. For example, widget.Button encapsulates the state and
// event handling of all buttons, while TextButton draws one with a
// ButtonPalette picking the colors of every state.
//
// This snippet defines a button that prints a message when clicked:
//
//     th := material.NewTheme()
//     btn := material.NewSubmitButton(th, "Hello")
//     btn.AddReaction(widget.ClickedKind, func(w widget.Widget, e event.Event) bool {
//         if e.(widget.Clicked).Button == w {
//             fmt.Println("hello world!")
//         }
//         return false
//     })
//
// Customization
//
// The Theme holds the defaults shared by the widgets it creates: the
// font and the window decoration icons. Per widget parameters, such
// as the palette of a button or the background of a frame, are
// constructor arguments or setters that redraw the widget.
package material
