// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"testing"

	"golang.org/x/exp/shiny/materialdesign/icons"
)

func TestIcon_Image(t *testing.T) {
	icon, err := NewIcon(icons.NavigationClose)
	if err != nil {
		t.Fatal(err)
	}
	col := color.RGBA{R: 0xff, A: 0xff}
	img := icon.Image(16, col)
	if got := img.Bounds().Size().X; got != 16 {
		t.Errorf("icon width %d, want 16", got)
	}
	if img2 := icon.Image(16, col); img2 != img {
		t.Error("icon image not cached")
	}
	if img3 := icon.Image(20, col); img3 == img {
		t.Error("icon image not regenerated for a new size")
	}
	opaque := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			opaque = true
			break
		}
	}
	if !opaque {
		t.Error("icon rasterized no pixels")
	}
}

func TestIcon_Invalid(t *testing.T) {
	if _, err := NewIcon([]byte("not an icon")); err == nil {
		t.Error("expected an error for invalid IconVG data")
	}
}
