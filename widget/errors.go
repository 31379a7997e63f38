// SPDX-License-Identifier: Unlicense OR MIT

package widget

import "errors"

var (
	// ErrInvalidLayout is returned when a container is built from
	// an empty grid of widgets.
	ErrInvalidLayout = errors.New("invalid layout")
	// ErrInvalidDimensions is returned when images that must share
	// a size don't.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrOutOfRange is returned for a state, cursor or grid index
	// outside its valid range.
	ErrOutOfRange = errors.New("out of range")
	// ErrPrecondition is returned when a value violates the
	// constraints of the widget it is given to.
	ErrPrecondition = errors.New("precondition violated")
)
