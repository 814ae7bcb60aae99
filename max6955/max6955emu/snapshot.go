// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max6955emu

import (
	"fmt"
	"image"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	// Size of one digit cell in a snapshot, in pixels.
	CellWidth  = 24
	CellHeight = 40

	fontSize = 32
)

var (
	monoOnce sync.Once
	monoFont *truetype.Font
	monoErr  error
)

func loadFont() (*truetype.Font, error) {
	monoOnce.Do(func() {
		monoFont, monoErr = truetype.Parse(gomono.TTF)
	})
	return monoFont, monoErr
}

// Snapshot draws the plane 0 digits as lit LEDs on a black background. The
// image is black while the chip is shut down. Blinking is not rendered.
func (c *Chip) Snapshot() (image.Image, error) {
	f, err := loadFont()
	if err != nil {
		return nil, fmt.Errorf("max6955emu: %w", err)
	}
	s := c.State()

	dc := gg.NewContext(CellWidth*len(s.Text), CellHeight)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	if s.Shutdown && !s.DisplayTest {
		return dc.Image(), nil
	}
	level := float64(s.GlobalIntensity)
	text := s.Text
	if s.DisplayTest {
		level = 15
		text = "88888888"
	}
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: fontSize}))
	dc.SetRGB(0.2+0.8*level/15, 0, 0)
	for i, r := range text {
		x := float64(i*CellWidth) + CellWidth/2
		dc.DrawStringAnchored(string(r), x, CellHeight/2, 0.5, 0.35)
	}
	return dc.Image(), nil
}
