// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image/color"

	"golang.org/x/exp/shiny/materialdesign/icons"
	"golang.org/x/image/colornames"

	"wipgo.org/text"
	"wipgo.org/widget"
)

// Theme holds the defaults of the widgets it creates.
type Theme struct {
	// Font of the text of labels, buttons and entries.
	Font text.Font
	Icon struct {
		Close    *widget.Icon
		Minimize *widget.Icon
	}
}

// NewTheme returns a theme with the Go regular font at
// text.DefaultSize.
func NewTheme() *Theme {
	t := &Theme{
		Font: text.Font{Size: text.DefaultSize},
	}
	t.Icon.Close = mustIcon(widget.NewIcon(icons.NavigationClose))
	t.Icon.Minimize = mustIcon(widget.NewIcon(icons.ContentRemove))
	return t
}

func mustIcon(ic *widget.Icon, err error) *widget.Icon {
	if err != nil {
		panic(err)
	}
	return ic
}

var (
	black       = colornames.Black
	white       = colornames.White
	transparent = color.RGBA{}
	greyText    = rgb(0x646464)
)

func rgb(c uint32) color.RGBA {
	return argb(0xff000000 | c)
}

func argb(c uint32) color.RGBA {
	return color.RGBA{A: uint8(c >> 24), R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c)}
}
