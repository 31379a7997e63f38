// SPDX-License-Identifier: Unlicense OR MIT

package system

import "strings"

// Action is a set of window decoration actions.
type Action uint

const (
	// ActionMinimize rolls a window up to its title bar, or
	// restores it when it is already minimized.
	ActionMinimize Action = 1 << iota
	// ActionClose closes a window.
	ActionClose
)

func (a Action) String() string {
	var buf strings.Builder
	for b := Action(1); a != 0; b <<= 1 {
		if a&b != 0 {
			if buf.Len() > 0 {
				buf.WriteByte('|')
			}
			buf.WriteString(b.string())
			a &^= b
		}
	}
	return buf.String()
}

func (a Action) string() string {
	switch a {
	case ActionMinimize:
		return "ActionMinimize"
	case ActionClose:
		return "ActionClose"
	}
	return ""
}
