// SPDX-License-Identifier: Unlicense OR MIT

package material

import (
	"image"
	"image/color"

	"wipgo.org/layout"
	"wipgo.org/paint"
	"wipgo.org/text"
	"wipgo.org/widget"
)

// Label displays a single line of text.
type Label struct {
	widget.Base
	font       text.Font
	text       string
	color      color.Color
	background color.Color
}

// NewLabel returns a label drawing txt in black over a transparent
// background.
func NewLabel(th *Theme, txt string) *Label {
	l := &Label{
		font:       th.Font,
		text:       txt,
		color:      black,
		background: transparent,
	}
	l.Init(l)
	l.Redraw()
	return l
}

// Text returns the displayed text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text and redraws the label.
func (l *Label) SetText(txt string) {
	l.text = txt
	l.Redraw()
}

// SetColor sets the color of the text and redraws the label.
func (l *Label) SetColor(c color.Color) {
	l.color = c
	l.Redraw()
}

// SetBackground sets the background color and redraws the label.
func (l *Label) SetBackground(c color.Color) {
	l.background = c
	l.Redraw()
}

// Redraw draws the text centered in a margin of half the font
// height on every side.
func (l *Label) Redraw() {
	face := l.font.Face()
	txt, _ := face.Render(l.text, l.color)
	pad := face.Height()
	img := paint.NewImage(txt.Bounds().Size().Add(image.Pt(pad, pad)))
	paint.Fill(img, l.background)
	paint.Blit(img, txt, layout.Center.Place(txt.Bounds().Size(), img.Bounds()).Min)
	l.SetImage(img)
}
