// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text rasterizes and measures single lines of text.

A Font names a typeface and a pixel size; its Face does the work.
Faces are cached per typeface and size, so widgets can ask for the
face of their Font on every redraw.
*/
package text

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"wipgo.org/font/gofont"
	"wipgo.org/paint"
)

// DefaultSize is the font size used when a Font leaves it unset.
const DefaultSize = 30

// Font describes a typeface at a size.
type Font struct {
	// Typeface is the font data. Nil selects the Go regular font.
	Typeface *opentype.Font
	// Size in pixels. Zero selects DefaultSize.
	Size int
}

// Face renders and measures text in a single typeface and size.
// Faces are not safe for concurrent use.
type Face struct {
	face    font.Face
	ascent  int
	descent int
	lines   lineCache
}

// NewFace returns a face for fnt at size pixels.
func NewFace(fnt *opentype.Font, size int) (*Face, error) {
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	m := face.Metrics()
	return &Face{
		face:    face,
		ascent:  m.Ascent.Ceil(),
		descent: m.Descent.Ceil(),
	}, nil
}

// Face returns the cached face of f.
func (f Font) Face() *Face {
	return defaultCache.Face(f)
}

func (f Font) normalize() Font {
	if f.Typeface == nil {
		f.Typeface = gofont.Regular()
	}
	if f.Size <= 0 {
		f.Size = DefaultSize
	}
	return f
}

// Height is the distance from the top of the highest glyph to the
// bottom of the lowest.
func (f *Face) Height() int {
	return f.ascent + f.descent
}

// Ascent is the distance from the top of a line to its baseline.
func (f *Face) Ascent() int {
	return f.ascent
}

// Advance returns the width of s.
func (f *Face) Advance(s string) int {
	return font.MeasureString(f.face, s).Ceil()
}

// Measure returns the size of the image Render would return for s.
func (f *Face) Measure(s string) image.Point {
	return image.Pt(f.Advance(s), f.Height())
}

// Render rasterizes s in color c. The returned rectangle is the
// bounds of the image. Recently rendered lines are cached, so the
// image must not be modified.
func (f *Face) Render(s string, c color.Color) (*image.RGBA, image.Rectangle) {
	k := lineKey{str: s, color: color.RGBAModel.Convert(c).(color.RGBA)}
	if img, ok := f.lines.Get(k); ok {
		return img, img.Bounds()
	}
	img := paint.NewImage(f.Measure(s))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(k.color),
		Face: f.face,
		Dot:  fixed.P(0, f.ascent),
	}
	d.DrawString(s)
	f.lines.Put(k, img)
	return img, img.Bounds()
}
