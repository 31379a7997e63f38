// SPDX-License-Identifier: Unlicense OR MIT

// Command wipdemo runs a scripted demonstration of the widgets and
// writes every frame as a PNG image.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"wipgo.org/app"
	"wipgo.org/paint"
	"wipgo.org/widget/material"
)

var (
	demoName = flag.String("demo", "frame", "demo to run ("+strings.Join(demoNames(), ", ")+")")
	outDir   = flag.String("out", ".", "output directory for the frames")
	scale    = flag.Int("scale", 1, "integer magnification of the frames")
	confPath = flag.String("config", "", "TOML file overriding the screen size, background and font size of the demos")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("wipdemo: ")
	cfg, err := loadConfig(*confPath)
	if err != nil {
		log.Fatal(err)
	}
	n, err := run(*demoName, *outDir, *scale, cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames to %s", n, *outDir)
}

// run plays a demo and writes its frames to dir. It returns the
// number of frames written.
func run(name, dir string, scale int, cfg config) (int, error) {
	d, ok := demos[name]
	if !ok {
		return 0, fmt.Errorf("unknown demo %q", name)
	}
	th := material.NewTheme()
	d, err := cfg[name].apply(d, th)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	if scale < 1 {
		return 0, errors.New("scale must be at least 1")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}
	h := app.NewHost(d.background)
	src := d.build(h, th, d.size)
	var frames []*image.RGBA
	screen := image.NewRGBA(image.Rectangle{Max: d.size})
	err = h.Run(src, screen, func(img draw.Image) error {
		frames = append(frames, paint.Scale(img, scale))
		return nil
	})
	if err != nil {
		return 0, err
	}
	var g errgroup.Group
	for i, img := range frames {
		path := filepath.Join(dir, fmt.Sprintf("%s-%03d.png", name, i))
		img := img
		g.Go(func() error {
			return writePNG(path, img)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(frames), nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func demoNames() []string {
	var names []string
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
