// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"

	"wipgo.org/layout"
)

// Grid is a container that places its children in the cells of a
// grid. Columns are as wide as their widest child and rows as tall
// as their tallest. Cells are indexed from zero.
//
// The zero Grid has no cells. Concrete containers embed Grid and
// implement Redraw.
type Grid struct {
	ContainerBase
	columns int
	lines   int
	// cells is indexed by line, then column.
	cells [][]Widget
	dims  layout.Grid
}

// Columns returns the number of columns.
func (g *Grid) Columns() int {
	return g.columns
}

// Lines returns the number of lines.
func (g *Grid) Lines() int {
	return g.lines
}

// SetColumns resizes the grid to n columns. Widgets in removed
// columns are destroyed.
func (g *Grid) SetColumns(n int) error {
	if n < 0 {
		return fmt.Errorf("widget: %d columns: %w", n, ErrOutOfRange)
	}
	if n < g.columns {
		for _, line := range g.cells {
			for _, w := range line[n:] {
				if w != nil {
					g.RemoveWidget(w)
				}
			}
		}
	}
	for i, line := range g.cells {
		if n < len(line) {
			g.cells[i] = line[:n:n]
		} else {
			g.cells[i] = append(line, make([]Widget, n-len(line))...)
		}
	}
	g.columns = n
	g.Measure()
	return nil
}

// SetLines resizes the grid to n lines. Widgets in removed lines
// are destroyed.
func (g *Grid) SetLines(n int) error {
	if n < 0 {
		return fmt.Errorf("widget: %d lines: %w", n, ErrOutOfRange)
	}
	if n < g.lines {
		for _, line := range g.cells[n:] {
			for _, w := range line {
				if w != nil {
					g.RemoveWidget(w)
				}
			}
		}
		g.cells = g.cells[:n:n]
	}
	for len(g.cells) < n {
		g.cells = append(g.cells, make([]Widget, g.columns))
	}
	g.lines = n
	g.Measure()
	return nil
}

// SetCell places w in a cell, growing the grid to include the
// cell if needed. A different widget occupying the cell is destroyed.
func (g *Grid) SetCell(col, line int, w Widget) error {
	if col < 0 || line < 0 {
		return fmt.Errorf("widget: cell (%d, %d): %w", col, line, ErrOutOfRange)
	}
	if col >= g.columns {
		g.SetColumns(col + 1)
	}
	if line >= g.lines {
		g.SetLines(line + 1)
	}
	old := g.cells[line][col]
	if old == w {
		return nil
	}
	if old != nil {
		g.RemoveWidget(old)
	}
	if w != nil {
		g.clear(w)
		g.AddWidget(w)
	}
	g.cells[line][col] = w
	g.Measure()
	return nil
}

// Cell returns the widget in a cell, or nil if the cell is empty
// or outside the grid.
func (g *Grid) Cell(col, line int) Widget {
	if col < 0 || line < 0 || col >= g.columns || line >= g.lines {
		return nil
	}
	return g.cells[line][col]
}

// RemoveCell removes the widget in a cell from the grid and
// destroys it. It returns the removed widget, or nil.
func (g *Grid) RemoveCell(col, line int) Widget {
	w := g.Cell(col, line)
	if w != nil {
		g.RemoveWidget(w)
	}
	return w
}

// Measure recomputes the column widths and line heights from the
// current size of the children.
func (g *Grid) Measure() layout.Grid {
	g.dims = layout.MeasureGrid(g.columns, g.lines, func(col, line int) (image.Point, bool) {
		w := g.cells[line][col]
		if w == nil {
			return image.Point{}, false
		}
		return w.Bounds().Size(), true
	})
	return g.dims
}

// GridSize returns the size of the grid, as of the last Measure.
func (g *Grid) GridSize() image.Point {
	return g.dims.Size()
}

// CellBounds returns the rectangle of a cell relative to the
// origin of the grid, as of the last Measure.
func (g *Grid) CellBounds(col, line int) (image.Rectangle, error) {
	if col < 0 || line < 0 || col >= g.columns || line >= g.lines {
		return image.Rectangle{}, fmt.Errorf("widget: cell (%d, %d): %w", col, line, ErrOutOfRange)
	}
	return g.dims.Cell(col, line), nil
}

// Cells returns the rectangles of every cell, indexed by line then
// column, as of the last Measure.
func (g *Grid) Cells() [][]image.Rectangle {
	return g.dims.Cells()
}

// clear empties the cells holding w.
func (g *Grid) clear(w Widget) {
	for _, line := range g.cells {
		for col, cw := range line {
			if cw == w {
				line[col] = nil
			}
		}
	}
}

func (g *Grid) detach(w Widget) {
	g.clear(w)
	g.ContainerBase.detach(w)
	g.Measure()
}
