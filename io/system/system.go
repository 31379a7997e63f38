// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level.
package system

import "wipgo.org/io/event"

// DestroyEvent is the last event delivered by a host event
// source. The application loop stops after dispatching it.
type DestroyEvent struct {
	// Err is nil for normal closures. If the source is
	// prematurely closed, Err is the cause.
	Err error
}

// DestroyKind is the kind of DestroyEvent.
var DestroyKind = event.NewKind("system.Destroy")

// Kind implements event.Event.
func (DestroyEvent) Kind() event.Kind { return DestroyKind }
