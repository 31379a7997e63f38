// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"unicode"

	"wipgo.org/io/key"
)

// Editor is the text model of a single line entry: a value of at
// most MaxLen runes and a cursor between 0 and Len.
type Editor struct {
	value  []rune
	cursor int
	maxLen int
}

// MakeEditor returns an editor holding value with its cursor at the
// end.
func MakeEditor(value string, maxLen int) (Editor, error) {
	if maxLen < 0 {
		return Editor{}, fmt.Errorf("widget: editor length %d: %w", maxLen, ErrOutOfRange)
	}
	e := Editor{maxLen: maxLen}
	if err := e.SetValue(value); err != nil {
		return Editor{}, err
	}
	return e, nil
}

// Value returns the text.
func (e *Editor) Value() string {
	return string(e.value)
}

// Len returns the number of runes in the text.
func (e *Editor) Len() int {
	return len(e.value)
}

// MaxLen returns the maximum number of runes.
func (e *Editor) MaxLen() int {
	return e.maxLen
}

// Cursor returns the cursor position, in runes.
func (e *Editor) Cursor() int {
	return e.cursor
}

// SetCursor moves the cursor to position i.
func (e *Editor) SetCursor(i int) error {
	if i < 0 || i > len(e.value) {
		return fmt.Errorf("widget: cursor %d outside [0, %d]: %w", i, len(e.value), ErrOutOfRange)
	}
	e.cursor = i
	return nil
}

// SetValue replaces the text. A cursor at the end of the old text
// stays at the end.
func (e *Editor) SetValue(s string) error {
	v := []rune(s)
	if len(v) > e.maxLen {
		return fmt.Errorf("widget: value of %d runes exceeds %d: %w", len(v), e.maxLen, ErrPrecondition)
	}
	atEnd := e.cursor == len(e.value)
	e.value = v
	if atEnd || e.cursor > len(v) {
		e.cursor = len(v)
	}
	return nil
}

// Prefix returns the first n runes of the text.
func (e *Editor) Prefix(n int) string {
	if n > len(e.value) {
		n = len(e.value)
	}
	return string(e.value[:n])
}

// Insert inserts r at the cursor and advances the cursor. Control
// characters, and any rune once the text is full, are rejected.
func (e *Editor) Insert(r rune) bool {
	if unicode.In(r, unicode.C) || len(e.value) >= e.maxLen {
		return false
	}
	e.value = append(e.value, 0)
	copy(e.value[e.cursor+1:], e.value[e.cursor:])
	e.value[e.cursor] = r
	e.cursor++
	return true
}

// DeleteBackward deletes the rune before the cursor.
func (e *Editor) DeleteBackward() bool {
	if e.cursor == 0 {
		return false
	}
	e.value = append(e.value[:e.cursor-1], e.value[e.cursor:]...)
	e.cursor--
	return true
}

// DeleteForward deletes the rune after the cursor.
func (e *Editor) DeleteForward() bool {
	if e.cursor == len(e.value) {
		return false
	}
	e.value = append(e.value[:e.cursor], e.value[e.cursor+1:]...)
	return true
}

// Left moves the cursor one rune back. It reports whether the
// cursor moved.
func (e *Editor) Left() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor--
	return true
}

// Right moves the cursor one rune forward.
func (e *Editor) Right() bool {
	if e.cursor == len(e.value) {
		return false
	}
	e.cursor++
	return true
}

// Home moves the cursor to the start of the value.
func (e *Editor) Home() bool {
	if e.cursor == 0 {
		return false
	}
	e.cursor = 0
	return true
}

// End moves the cursor past the last rune.
func (e *Editor) End() bool {
	if e.cursor == len(e.value) {
		return false
	}
	e.cursor = len(e.value)
	return true
}

// Key applies a key press to the editor. It reports whether the
// text or cursor changed and whether the key asks to submit the
// value. Key releases are ignored.
func (e *Editor) Key(ke key.Event) (changed, submit bool) {
	if ke.State != key.Press {
		return false, false
	}
	switch ke.Name {
	case key.NameReturn, key.NameEnter:
		return false, true
	case key.NameLeftArrow:
		return e.Left(), false
	case key.NameRightArrow:
		return e.Right(), false
	case key.NameHome:
		return e.Home(), false
	case key.NameEnd:
		return e.End(), false
	case key.NameDeleteBackward:
		return e.DeleteBackward(), false
	case key.NameDeleteForward:
		return e.DeleteForward(), false
	}
	if ke.Modifiers.Contain(key.ModCtrl) || ke.Modifiers.Contain(key.ModCommand) {
		return false, false
	}
	for _, r := range ke.Text {
		if e.Insert(r) {
			changed = true
		}
	}
	return changed, false
}
