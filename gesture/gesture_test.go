// SPDX-License-Identifier: Unlicense OR MIT

package gesture

import (
	"image"
	"testing"

	"wipgo.org/io/pointer"
)

func TestDrag(t *testing.T) {
	var d Drag
	if got := d.Move(pointer.Event{Type: pointer.Move, Position: image.Pt(5, 5)}); got != (image.Point{}) {
		t.Errorf("idle drag moved by %v", got)
	}
	d.Start(pointer.Event{Type: pointer.Press, Position: image.Pt(10, 10)})
	if !d.Dragging() {
		t.Fatal("not dragging after Start")
	}
	if got, want := d.Move(pointer.Event{Type: pointer.Move, Position: image.Pt(20, 15)}), image.Pt(10, 5); got != want {
		t.Errorf("first move: got %v, want %v", got, want)
	}
	if got, want := d.Move(pointer.Event{Type: pointer.Move, Position: image.Pt(18, 15)}), image.Pt(-2, 0); got != want {
		t.Errorf("second move: got %v, want %v", got, want)
	}
	d.Stop()
	if d.Dragging() {
		t.Error("dragging after Stop")
	}
	if got := d.Move(pointer.Event{Type: pointer.Move, Position: image.Pt(0, 0)}); got != (image.Point{}) {
		t.Errorf("stopped drag moved by %v", got)
	}
}
