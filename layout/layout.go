// SPDX-License-Identifier: Unlicense OR MIT

// Package layout implements the geometry shared by container
// widgets: grid measurement and alignment of a size within a
// rectangle.
package layout

import (
	"image"
)

// Direction is the alignment of widgets relative to a containing
// space.
type Direction uint8

const (
	NW Direction = iota
	N
	NE
	E
	SE
	S
	SW
	W
	Center
)

// Place returns a rectangle of size sz aligned within r. The
// rectangle may extend outside r if sz is larger than r.
func (d Direction) Place(sz image.Point, r image.Rectangle) image.Rectangle {
	var p image.Point
	switch d {
	case N, S, Center:
		p.X = (r.Dx() - sz.X) / 2
	case NE, SE, E:
		p.X = r.Dx() - sz.X
	}
	switch d {
	case W, Center, E:
		p.Y = (r.Dy() - sz.Y) / 2
	case SW, S, SE:
		p.Y = r.Dy() - sz.Y
	}
	min := r.Min.Add(p)
	return image.Rectangle{Min: min, Max: min.Add(sz)}
}

func (d Direction) String() string {
	switch d {
	case NW:
		return "NW"
	case N:
		return "N"
	case NE:
		return "NE"
	case E:
		return "E"
	case SE:
		return "SE"
	case S:
		return "S"
	case SW:
		return "SW"
	case W:
		return "W"
	case Center:
		return "Center"
	default:
		panic("unreachable")
	}
}
