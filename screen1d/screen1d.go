// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen1d implements a one line character display that outputs to
// the terminal (stdout) using ANSI color codes.
//
// Useful while you are waiting for your LED digits to come by mail. The
// max6955emu package mirrors its digit registers here.
package screen1d

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
)

// MaxLevel is the brightest intensity level accepted by Show.
const MaxLevel = 15

// Opts represents the options available for this display.
type Opts struct {
	// X is the number of character cells.
	X       int
	Palette *ansi256.Palette
	// W defaults to a colorable stdout.
	W io.Writer

	_ struct{}
}

// Dev is a character display emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	l       int
	palette ansi256.Palette

	cells []byte
	level int
	on    bool
	buf   bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.W
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:       w,
		l:       opts.X,
		palette: *p,
		cells:   bytes.Repeat([]byte{' '}, opts.X),
	}
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen1D{%d}", d.l)
}

// Halt resets the terminal colors so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	if err != nil {
		return err
	}
	return nil
}

// Show replaces the displayed characters. level is the brightness from 0 to
// MaxLevel; when on is false the display is drawn dark. Characters past the
// number of cells are ignored.
func (d *Dev) Show(text []byte, level int, on bool) error {
	if level < 0 || level > MaxLevel {
		return errors.New("screen1d: invalid level")
	}
	n := copy(d.cells, text)
	for i := n; i < len(d.cells); i++ {
		d.cells[i] = ' '
	}
	d.level = level
	d.on = on
	return d.refresh()
}

// Cells returns a copy of the characters currently displayed.
func (d *Dev) Cells() []byte {
	return bytes.Clone(d.cells)
}

// lit returns the LED color for the current state.
func (d *Dev) lit() color.NRGBA {
	if !d.on {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: byte(0x30 + d.level*(0xff-0x30)/MaxLevel), A: 255}
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	_, _ = io.WriteString(&d.buf, d.palette.Block(d.lit()))
	_, _ = d.buf.WriteString("\033[0m ")
	for _, c := range d.cells {
		if !d.on {
			c = ' '
		}
		_ = d.buf.WriteByte(c)
	}
	_, _ = d.buf.WriteString(" \033[0m")
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ fmt.Stringer = &Dev{}
