// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"fmt"
	"image"
	"image/color"

	"github.com/BurntSushi/toml"

	"wipgo.org/widget/material"
)

// config overrides the defaults of the demos, by demo name:
//
//	[window]
//	width = 800
//	height = 600
//	background = [50, 50, 200]
//	font_size = 24
type config map[string]demoConfig

type demoConfig struct {
	Width      int     `toml:"width"`
	Height     int     `toml:"height"`
	Background []uint8 `toml:"background"`
	FontSize   int     `toml:"font_size"`
}

func loadConfig(path string) (config, error) {
	c := make(config)
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", path, undec[0].String())
	}
	for name := range c {
		if _, ok := demos[name]; !ok {
			return nil, fmt.Errorf("%s: unknown demo %q", path, name)
		}
	}
	return c, nil
}

// apply returns d and th with the overrides of dc.
func (dc demoConfig) apply(d demo, th *material.Theme) (demo, error) {
	if dc.Width < 0 || dc.Height < 0 || dc.FontSize < 0 {
		return d, fmt.Errorf("negative size in %+v", dc)
	}
	if dc.Width > 0 {
		d.size.X = dc.Width
	}
	if dc.Height > 0 {
		d.size.Y = dc.Height
	}
	if dc.FontSize > 0 {
		th.Font.Size = dc.FontSize
	}
	switch len(dc.Background) {
	case 0:
	case 3:
		b := dc.Background
		d.background = color.RGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	default:
		return d, fmt.Errorf("background %v is not an RGB triple", dc.Background)
	}
	if d.size.X == 0 || d.size.Y == 0 {
		return d, fmt.Errorf("empty screen %v", image.Rectangle{Max: d.size})
	}
	return d, nil
}
