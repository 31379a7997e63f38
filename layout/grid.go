// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Grid is the measured geometry of a grid of cells. Every
// column is as wide as its widest occupant and every row as tall
// as its tallest.
type Grid struct {
	// Widths of the columns.
	Widths []int
	// Heights of the rows.
	Heights []int
}

// MeasureGrid measures a grid of the given number of columns and
// rows. The size function reports the size of the occupant of a
// cell, or false for an empty cell.
func MeasureGrid(columns, rows int, size func(col, row int) (image.Point, bool)) Grid {
	g := Grid{
		Widths:  make([]int, columns),
		Heights: make([]int, rows),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			sz, ok := size(col, row)
			if !ok {
				continue
			}
			if sz.X > g.Widths[col] {
				g.Widths[col] = sz.X
			}
			if sz.Y > g.Heights[row] {
				g.Heights[row] = sz.Y
			}
		}
	}
	return g
}

// Size returns the total size of the grid.
func (g Grid) Size() image.Point {
	var sz image.Point
	for _, w := range g.Widths {
		sz.X += w
	}
	for _, h := range g.Heights {
		sz.Y += h
	}
	return sz
}

// Cell returns the rectangle of a cell, relative to the grid
// origin. The origin of a column is the sum of the widths of the
// columns before it, and likewise for rows.
func (g Grid) Cell(col, row int) image.Rectangle {
	var p image.Point
	for _, w := range g.Widths[:col] {
		p.X += w
	}
	for _, h := range g.Heights[:row] {
		p.Y += h
	}
	return image.Rectangle{
		Min: p,
		Max: p.Add(image.Pt(g.Widths[col], g.Heights[row])),
	}
}

// Cells returns the rectangles of every cell, indexed by row
// then column.
func (g Grid) Cells() [][]image.Rectangle {
	cells := make([][]image.Rectangle, len(g.Heights))
	y := 0
	for row, h := range g.Heights {
		cells[row] = make([]image.Rectangle, len(g.Widths))
		x := 0
		for col, w := range g.Widths {
			cells[row][col] = image.Rect(x, y, x+w, y+h)
			x += w
		}
		y += h
	}
	return cells
}
