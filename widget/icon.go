// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"
)

// Icon is a vector icon in the IconVG format.
type Icon struct {
	src []byte
	// Cached values.
	img      *image.RGBA
	imgSize  int
	imgColor color.RGBA
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	_, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	return &Icon{src: data}, nil
}

// Image returns the icon rasterized at sz pixels wide in color c.
// The returned image is cached and must not be modified.
func (ic *Icon) Image(sz int, c color.RGBA) *image.RGBA {
	if ic.img != nil && sz == ic.imgSize && c == ic.imgColor {
		return ic.img
	}
	m, _ := iconvg.DecodeMetadata(ic.src)
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = c
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
	ic.img = img
	ic.imgSize = sz
	ic.imgColor = c
	return img
}
