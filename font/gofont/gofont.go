// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts parsed and ready for use by
// package text.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

type lazyFont struct {
	once sync.Once
	ttf  []byte
	font *opentype.Font
}

var (
	regular = &lazyFont{ttf: goregular.TTF}
	bold    = &lazyFont{ttf: gobold.TTF}
	mono    = &lazyFont{ttf: gomono.TTF}
)

// Regular returns the Go regular font.
func Regular() *opentype.Font {
	return regular.load()
}

// Bold returns the Go bold font.
func Bold() *opentype.Font {
	return bold.load()
}

// Mono returns the Go mono font.
func Mono() *opentype.Font {
	return mono.load()
}

// Lookup returns a Go font by name: "regular", "bold" or "mono".
func Lookup(name string) (*opentype.Font, bool) {
	switch name {
	case "regular", "":
		return Regular(), true
	case "bold":
		return Bold(), true
	case "mono":
		return Mono(), true
	}
	return nil, false
}

func (l *lazyFont) load() *opentype.Font {
	l.once.Do(func() {
		f, err := opentype.Parse(l.ttf)
		if err != nil {
			panic(fmt.Errorf("failed to parse font: %v", err))
		}
		l.font = f
	})
	return l.font
}
