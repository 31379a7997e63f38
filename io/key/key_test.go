// SPDX-License-Identifier: Unlicense OR MIT

package key

import (
	"testing"
)

func TestModifiersString(t *testing.T) {
	tests := []struct {
		Mods Modifiers
		Want string
	}{
		{0, ""},
		{ModShift, "Shift"},
		{ModCtrl | ModShift, "Ctrl-Shift"},
		{ModAlt | ModSuper | ModCommand, "⌘-Alt-Super"},
	}
	for _, tst := range tests {
		if got := tst.Mods.String(); got != tst.Want {
			t.Errorf("%d: got %q, want %q", tst.Mods, got, tst.Want)
		}
	}
}

func TestEventKind(t *testing.T) {
	if got := (Event{Name: "A", Text: "a"}).Kind(); got != PressKind {
		t.Errorf("press event has kind %v", got)
	}
	if got := (Event{Name: "A", State: Release}).Kind(); got != ReleaseKind {
		t.Errorf("release event has kind %v", got)
	}
}
