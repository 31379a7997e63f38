// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"errors"
	"testing"

	"wipgo.org/io/key"
	"wipgo.org/widget"
)

func typeText(e *widget.Editor, s string) {
	for _, r := range s {
		e.Key(key.Event{Name: key.Name(string(r)), Text: string(r)})
	}
}

func TestEditorTyping(t *testing.T) {
	e, err := widget.MakeEditor("Et ", 10)
	if err != nil {
		t.Fatal(err)
	}
	typeText(&e, "voila")
	if got, want := e.Value(), "Et voila"; got != want {
		t.Errorf("value %q, want %q", got, want)
	}
	if e.Cursor() != 8 {
		t.Errorf("cursor %d, want 8", e.Cursor())
	}
}

func TestEditorRoundTrip(t *testing.T) {
	e, _ := widget.MakeEditor("", 20)
	const s = "héllo wörld"
	typeText(&e, s)
	if e.Value() != s {
		t.Errorf("value %q, want %q", e.Value(), s)
	}
	if e.Cursor() != len([]rune(s)) {
		t.Errorf("cursor %d, want %d", e.Cursor(), len([]rune(s)))
	}
}

func TestEditorLength(t *testing.T) {
	e, _ := widget.MakeEditor("abc", 4)
	typeText(&e, "de")
	if e.Value() != "abcd" {
		t.Errorf("value %q, want %q", e.Value(), "abcd")
	}
	if e.Insert('x') {
		t.Error("insert into a full editor succeeded")
	}
	if _, err := widget.MakeEditor("abcde", 4); !errors.Is(err, widget.ErrPrecondition) {
		t.Errorf("too long initial value returned %v", err)
	}
	if err := e.SetValue("toolong"); !errors.Is(err, widget.ErrPrecondition) {
		t.Errorf("too long value returned %v", err)
	}
	if e.Value() != "abcd" {
		t.Error("failed SetValue changed the value")
	}
}

func TestEditorControlCharacters(t *testing.T) {
	e, _ := widget.MakeEditor("", 10)
	for _, r := range "\x00\t\n\x7f" {
		if e.Insert(r) {
			t.Errorf("control character %q inserted", r)
		}
	}
	if e.Len() != 0 {
		t.Errorf("value %q, want empty", e.Value())
	}
}

func TestEditorMovement(t *testing.T) {
	e, _ := widget.MakeEditor("abc", 10)
	steps := []struct {
		name   key.Name
		cursor int
		value  string
	}{
		{key.NameRightArrow, 3, "abc"},
		{key.NameLeftArrow, 2, "abc"},
		{key.NameDeleteBackward, 1, "ac"},
		{key.NameDeleteForward, 1, "a"},
		{key.NameDeleteForward, 1, "a"},
		{key.NameHome, 0, "a"},
		{key.NameLeftArrow, 0, "a"},
		{key.NameDeleteBackward, 0, "a"},
		{key.NameEnd, 1, "a"},
	}
	for i, s := range steps {
		e.Key(key.Event{Name: s.name})
		if e.Cursor() != s.cursor || e.Value() != s.value {
			t.Errorf("step %d (%s): got %q cursor %d, want %q cursor %d",
				i, s.name, e.Value(), e.Cursor(), s.value, s.cursor)
		}
	}
}

func TestEditorKeyRelease(t *testing.T) {
	e, _ := widget.MakeEditor("", 10)
	changed, submit := e.Key(key.Event{Name: "A", Text: "a", State: key.Release})
	if changed || submit || e.Len() != 0 {
		t.Error("key release edited the text")
	}
	if _, submit := e.Key(key.Event{Name: key.NameReturn}); !submit {
		t.Error("return did not submit")
	}
	if changed, _ := e.Key(key.Event{Name: "A", Text: "a", Modifiers: key.ModCtrl}); changed {
		t.Error("ctrl shortcut inserted text")
	}
}

func TestEditorCursor(t *testing.T) {
	e, _ := widget.MakeEditor("abc", 10)
	if err := e.SetCursor(4); !errors.Is(err, widget.ErrOutOfRange) {
		t.Errorf("SetCursor(4) returned %v", err)
	}
	if e.Cursor() != 3 {
		t.Errorf("cursor %d, want 3", e.Cursor())
	}
	e.SetCursor(1)
	e.SetValue("")
	if e.Cursor() != 0 {
		t.Errorf("cursor %d after clearing, want 0", e.Cursor())
	}
	if e.Prefix(5) != "" {
		t.Error("prefix of an empty value")
	}
	e.SetValue("xyz")
	if e.Cursor() != 3 {
		t.Errorf("cursor %d after SetValue at end, want 3", e.Cursor())
	}
	if e.Prefix(2) != "xy" {
		t.Errorf("prefix %q, want xy", e.Prefix(2))
	}
}
