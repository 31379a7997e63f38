// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint implements the drawing primitives widgets use to render
themselves: image allocation, fills, blits, rectangles with rounded
corners and borders, and lines.

Every widget image is an *image.RGBA with its origin at (0, 0).
Shapes are rasterized on the CPU with golang.org/x/image/vector.
*/
package paint

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Rect describes a rectangle drawing operation.
type Rect struct {
	Rect  image.Rectangle
	Color color.Color
	// Width is the border width. A zero Width fills the rectangle.
	Width int
	// Radius is the corner radius.
	Radius int
}

type point struct {
	X, Y float32
}

// NewImage allocates a transparent image of the given size with
// its origin at (0, 0).
func NewImage(size image.Point) *image.RGBA {
	if size.X < 0 {
		size.X = 0
	}
	if size.Y < 0 {
		size.Y = 0
	}
	return image.NewRGBA(image.Rectangle{Max: size})
}

// Fill replaces every pixel of dst with c.
func Fill(dst draw.Image, c color.Color) {
	draw.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Blit composites src over dst, placing the origin of the src
// bounds at pos.
func Blit(dst draw.Image, src image.Image, pos image.Point) {
	sr := src.Bounds()
	r := image.Rectangle{Min: pos, Max: pos.Add(sr.Size())}
	draw.Draw(dst, r, src, sr.Min, draw.Over)
}

// Scale returns src magnified by an integer factor with nearest
// neighbour sampling.
func Scale(src image.Image, factor int) *image.RGBA {
	if factor <= 1 {
		dst := NewImage(src.Bounds().Size())
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	dst := NewImage(src.Bounds().Size().Mul(factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Draw the rectangle into dst, blending over its content.
func (r Rect) Draw(dst draw.Image) {
	b := dst.Bounds()
	rr := r.Rect.Canon()
	if rr.Intersect(b).Empty() {
		return
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	off := b.Min
	polygon(z, roundRect(rr, r.Radius), off, false)
	if r.Width > 0 {
		inner := rr.Inset(r.Width)
		if !inner.Empty() {
			radius := r.Radius - r.Width
			if radius < 0 {
				radius = 0
			}
			polygon(z, roundRect(inner, radius), off, true)
		}
	}
	z.Draw(dst, b, image.NewUniform(r.Color), image.Point{})
}

// Line draws a segment from p0 to p1 with the given width. The end
// points refer to pixel centers.
func Line(dst draw.Image, p0, p1 image.Point, width int, c color.Color) {
	if width <= 0 {
		width = 1
	}
	b := dst.Bounds()
	x0, y0 := float32(p0.X)+.5, float32(p0.Y)+.5
	x1, y1 := float32(p1.X)+.5, float32(p1.Y)+.5
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		dx, dy, l = 1, 0, 1
	}
	hw := float32(width) / 2
	// Normal and tangent, scaled to half the width. Extending the ends
	// by the tangent gives square caps.
	nx, ny := -dy/l*hw, dx/l*hw
	tx, ty := dx/l*hw, dy/l*hw
	pts := []point{
		{x0 - tx + nx, y0 - ty + ny},
		{x1 + tx + nx, y1 + ty + ny},
		{x1 + tx - nx, y1 + ty - ny},
		{x0 - tx - nx, y0 - ty - ny},
	}
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	polygon(z, pts, b.Min, false)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// polygon adds the closed outline pts to z. Reversed outlines cancel
// the coverage of outlines added in the forward direction.
func polygon(z *vector.Rasterizer, pts []point, off image.Point, reverse bool) {
	if len(pts) < 3 {
		return
	}
	ox, oy := float32(off.X), float32(off.Y)
	at := func(i int) point {
		if reverse {
			i = len(pts) - 1 - i
		}
		p := pts[i]
		return point{p.X - ox, p.Y - oy}
	}
	p := at(0)
	z.MoveTo(p.X, p.Y)
	for i := 1; i < len(pts); i++ {
		p = at(i)
		z.LineTo(p.X, p.Y)
	}
	z.ClosePath()
}

// roundRect returns the clockwise outline of r with its corners
// rounded by radius.
func roundRect(r image.Rectangle, radius int) []point {
	x0, y0 := float32(r.Min.X), float32(r.Min.Y)
	x1, y1 := float32(r.Max.X), float32(r.Max.Y)
	if max := min(r.Dx(), r.Dy()) / 2; radius > max {
		radius = max
	}
	if radius <= 0 {
		return []point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	}
	rad := float32(radius)
	n := radius
	if n > 8 {
		n = 8
	}
	var pts []point
	corner := func(cx, cy float32, start float64) {
		for i := 0; i <= n; i++ {
			a := start + float64(i)/float64(n)*math.Pi/2
			pts = append(pts, point{
				X: cx + rad*float32(math.Cos(a)),
				Y: cy + rad*float32(math.Sin(a)),
			})
		}
	}
	// Angles grow clockwise in a y-down space.
	corner(x1-rad, y0+rad, -math.Pi/2)
	corner(x1-rad, y1-rad, 0)
	corner(x0+rad, y1-rad, math.Pi/2)
	corner(x0+rad, y0+rad, math.Pi)
	return pts
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
