// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"image/color"

	"wipgo.org/layout"
	"wipgo.org/paint"
	"wipgo.org/widget"
)

// Frame is a grid container drawing its children centered in their
// cells over a background color.
type Frame struct {
	widget.Grid
	background color.Color
}

// NewFrame returns a frame laying out cells, indexed by line then
// column. Nil cells are empty and short lines are padded with
// empty cells. It fails with widget.ErrInvalidLayout if cells
// has no line or its first line no column.
func NewFrame(cells [][]widget.Widget, bg color.Color) (*Frame, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, fmt.Errorf("material: frame without cells: %w", widget.ErrInvalidLayout)
	}
	f := &Frame{background: bg}
	f.Init(f)
	columns := 0
	for _, line := range cells {
		if len(line) > columns {
			columns = len(line)
		}
	}
	f.SetColumns(columns)
	f.SetLines(len(cells))
	for l, line := range cells {
		for c, w := range line {
			if w != nil {
				f.SetCell(c, l, w)
			}
		}
	}
	f.Redraw()
	return f, nil
}

// Background returns the fill color behind the cells.
func (f *Frame) Background() color.Color {
	return f.background
}

// SetBackground sets the background color and redraws the frame.
func (f *Frame) SetBackground(c color.Color) {
	f.background = c
	f.Redraw()
}

// Redraw measures the grid, then draws every child centered in its
// cell and moves the child there.
func (f *Frame) Redraw() {
	dims := f.Measure()
	img := paint.NewImage(dims.Size())
	paint.Fill(img, f.background)
	origin := f.Bounds().Min
	for l := 0; l < f.Lines(); l++ {
		for c := 0; c < f.Columns(); c++ {
			w := f.Cell(c, l)
			if w == nil {
				continue
			}
			r := layout.Center.Place(w.Bounds().Size(), dims.Cell(c, l))
			paint.Blit(img, w.Image(), r.Min)
			w.MoveTo(origin.Add(r.Min))
		}
	}
	f.SetImage(img)
}
