// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
)

func TestFill(t *testing.T) {
	img := NewImage(image.Pt(4, 3))
	Fill(img, red)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if got := img.RGBAAt(x, y); got != red {
				t.Fatalf("(%d,%d): got %v", x, y, got)
			}
		}
	}
}

func TestFillTransparent(t *testing.T) {
	img := NewImage(image.Pt(2, 2))
	Fill(img, red)
	Fill(img, color.NRGBA{R: 0xff, G: 0xff, B: 0xff})
	if got := img.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Errorf("transparent fill left %v", got)
	}
}

func TestBlit(t *testing.T) {
	dst := NewImage(image.Pt(10, 10))
	src := NewImage(image.Pt(2, 2))
	Fill(src, green)
	Blit(dst, src, image.Pt(3, 4))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			in := image.Pt(x, y).In(image.Rect(3, 4, 5, 6))
			if got := dst.RGBAAt(x, y) == green; got != in {
				t.Errorf("(%d,%d): painted=%v, want %v", x, y, got, in)
			}
		}
	}
}

func TestRectFill(t *testing.T) {
	img := NewImage(image.Pt(8, 8))
	Rect{Rect: image.Rect(2, 2, 6, 5), Color: red}.Draw(img)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			in := image.Pt(x, y).In(image.Rect(2, 2, 6, 5))
			if got := img.RGBAAt(x, y) == red; got != in {
				t.Errorf("(%d,%d): painted=%v, want %v", x, y, got, in)
			}
		}
	}
}

func TestRectBorder(t *testing.T) {
	img := NewImage(image.Pt(10, 10))
	Rect{Rect: img.Bounds(), Color: red, Width: 3}.Draw(img)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			border := !image.Pt(x, y).In(image.Rect(3, 3, 7, 7))
			if got := img.RGBAAt(x, y) == red; got != border {
				t.Errorf("(%d,%d): painted=%v, want %v", x, y, got, border)
			}
		}
	}
}

func TestRoundRectCorners(t *testing.T) {
	img := NewImage(image.Pt(20, 20))
	Rect{Rect: img.Bounds(), Color: red, Radius: 6}.Draw(img)
	if got := img.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner pixel painted: %v", got)
	}
	if got := img.RGBAAt(10, 10); got != red {
		t.Errorf("center pixel: got %v", got)
	}
	if got := img.RGBAAt(10, 0); got != red {
		t.Errorf("top edge pixel: got %v", got)
	}
}

func TestLine(t *testing.T) {
	img := NewImage(image.Pt(20, 20))
	Line(img, image.Pt(4, 10), image.Pt(16, 10), 1, red)
	for x := 4; x <= 16; x++ {
		if got := img.RGBAAt(x, 10); got.A == 0 {
			t.Errorf("(%d,10) not painted", x)
		}
	}
	if got := img.RGBAAt(10, 5); got.A != 0 {
		t.Errorf("pixel off the line painted: %v", got)
	}
}

func TestScale(t *testing.T) {
	src := NewImage(image.Pt(2, 1))
	src.SetRGBA(1, 0, red)
	dst := Scale(src, 3)
	if got, want := dst.Bounds().Size(), image.Pt(6, 3); got != want {
		t.Fatalf("got size %v, want %v", got, want)
	}
	if got := dst.RGBAAt(5, 2); got != red {
		t.Errorf("scaled pixel: got %v", got)
	}
	if got := dst.RGBAAt(2, 2); got.A != 0 {
		t.Errorf("scaled transparent pixel: got %v", got)
	}
}
