// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"wipgo.org/layout"
	"wipgo.org/paint"
	"wipgo.org/text"
	"wipgo.org/widget"
)

// ButtonColors are the colors of a button in one state.
type ButtonColors struct {
	Background color.RGBA
	Text       color.RGBA
}

// ButtonPalette holds the colors of a button, indexed by state.
type ButtonPalette [3]ButtonColors

var (
	// PlainPalette is light grey, almost white while pressed.
	PlainPalette = ButtonPalette{
		widget.Inactive: {Background: rgb(0xd2d2d2), Text: black},
		widget.Active:   {Background: rgb(0xfafafa), Text: black},
		widget.Disabled: {Background: rgb(0x969696), Text: greyText},
	}
	// CancelPalette is red, for buttons refusing or cancelling.
	CancelPalette = ButtonPalette{
		widget.Inactive: {Background: colornames.Red, Text: white},
		widget.Active:   {Background: rgb(0xdb7f7f), Text: black},
		widget.Disabled: {Background: rgb(0x6e0000), Text: greyText},
	}
	// SubmitPalette is green, for buttons accepting or submitting.
	SubmitPalette = ButtonPalette{
		widget.Inactive: {Background: colornames.Lime, Text: white},
		widget.Active:   {Background: rgb(0x75ff75), Text: black},
		widget.Disabled: {Background: rgb(0x006e00), Text: greyText},
	}
)

const buttonBorder = 3

// TextButton is a button displaying a line of text.
type TextButton struct {
	widget.Button
	font    text.Font
	text    string
	palette ButtonPalette
}

// NewTextButton returns an inactive button drawing txt with the
// colors of p.
func NewTextButton(th *Theme, txt string, p ButtonPalette) *TextButton {
	b := &TextButton{
		font:    th.Font,
		text:    txt,
		palette: p,
	}
	b.Init(b)
	b.Redraw()
	return b
}

// NewPlainButton returns a grey button.
func NewPlainButton(th *Theme, txt string) *TextButton {
	return NewTextButton(th, txt, PlainPalette)
}

// NewCancelButton returns a red button.
func NewCancelButton(th *Theme, txt string) *TextButton {
	return NewTextButton(th, txt, CancelPalette)
}

// NewSubmitButton returns a green button.
func NewSubmitButton(th *Theme, txt string) *TextButton {
	return NewTextButton(th, txt, SubmitPalette)
}

// Text returns the label of the button.
func (b *TextButton) Text() string {
	return b.text
}

// SetText replaces the text and redraws the button.
func (b *TextButton) SetText(txt string) {
	b.text = txt
	b.Redraw()
}

// Redraw draws the text centered in a margin of the font height,
// framed by a black border.
func (b *TextButton) Redraw() {
	c := b.palette[b.State()]
	face := b.font.Face()
	txt, _ := face.Render(b.text, c.Text)
	pad := face.Height()
	img := paint.NewImage(txt.Bounds().Size().Add(image.Pt(2*pad, 2*pad)))
	paint.Fill(img, c.Background)
	paint.Rect{Rect: img.Bounds(), Color: black, Width: buttonBorder}.Draw(img)
	paint.Blit(img, txt, layout.Center.Place(txt.Bounds().Size(), img.Bounds()).Min)
	b.SetImage(img)
}

// IconButton is a button drawn with one image per state.
type IconButton struct {
	widget.Button
	images [3]*image.RGBA
}

// NewIconButton returns an inactive button showing icon. The active
// and disabled images default to icon and must have its size.
func NewIconButton(icon, active, disabled *image.RGBA) (*IconButton, error) {
	if active == nil {
		active = icon
	}
	if disabled == nil {
		disabled = icon
	}
	sz := icon.Bounds().Size()
	for _, img := range []*image.RGBA{active, disabled} {
		if s := img.Bounds().Size(); s != sz {
			return nil, fmt.Errorf("material: icon of size %v, want %v: %w", s, sz, widget.ErrInvalidDimensions)
		}
	}
	b := &IconButton{
		images: [3]*image.RGBA{
			widget.Inactive: icon,
			widget.Active:   active,
			widget.Disabled: disabled,
		},
	}
	b.Init(b)
	b.Redraw()
	return b, nil
}

// Redraw shows the image of the current state.
func (b *IconButton) Redraw() {
	b.SetImage(b.images[b.State()])
}
