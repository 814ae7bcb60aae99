// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package max6955emu emulates the register file of a MAX6955 behind an
// i2c.Bus.
//
// It is meant for tests and for developing display code without hardware.
// Writes store bytes at an auto-incrementing register pointer, reads return
// bytes from it, and the Configuration register's clear digit bit wipes both
// digit planes. Key scanning, the GPIO pins and the segment font are not
// emulated.
package max6955emu

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2ctest"
	"periph.io/x/conn/v3/physic"

	"github.com/GermanBionicSystems/displaydevices/common"
	"github.com/GermanBionicSystems/displaydevices/max6955"
	"github.com/GermanBionicSystems/displaydevices/screen1d"
)

// registerCount is the size of the emulated address space. The pointer wraps
// to 0 past the last register.
const registerCount = 0x80

var (
	// ErrNoAck is returned for a transaction to an address other than the
	// chip's.
	ErrNoAck = errors.New("max6955emu: no ack")
	// ErrEmptyTx is returned for a transaction with nothing to write or
	// read.
	ErrEmptyTx = errors.New("max6955emu: empty transaction")
)

// Opts represents the options available for the emulator.
type Opts struct {
	// Addr defaults to max6955.DefaultAddress.
	Addr uint16
	// Screen, if set, is refreshed with the plane 0 digits after every
	// write.
	Screen *screen1d.Dev
}

// State is the decoded display state of the chip.
type State struct {
	Shutdown        bool
	Blink           bool
	FastBlink       bool
	DisplayTest     bool
	GlobalIntensity byte
	DecodeMode      max6955.DecodeMode
	DigitType       max6955.DigitType
	Text            string
}

// Chip is an emulated MAX6955. It implements i2c.Bus and is safe for
// concurrent use.
type Chip struct {
	mu     sync.Mutex
	addr   uint16
	regs   [registerCount]byte
	ptr    byte
	speed  physic.Frequency
	fail   error
	ops    []i2ctest.IO
	screen *screen1d.Dev
}

// New returns a Chip in its power-on state: shut down, with blank digits.
func New(opts *Opts) *Chip {
	c := &Chip{addr: max6955.DefaultAddress}
	if opts != nil {
		if opts.Addr != 0 {
			c.addr = opts.Addr
		}
		c.screen = opts.Screen
	}
	c.clearDigits()
	return c
}

func (c *Chip) String() string {
	return fmt.Sprintf("max6955emu@0x%02x", c.addr)
}

// Tx implements i2c.Bus.
//
// The first written byte selects the register. Remaining written bytes and
// read bytes move the pointer forward one register each.
func (c *Chip) Tx(addr uint16, w, r []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.fail; err != nil {
		c.fail = nil
		return err
	}
	if addr != c.addr {
		return fmt.Errorf("%w from 0x%02x", ErrNoAck, addr)
	}
	if len(w) == 0 && len(r) == 0 {
		return ErrEmptyTx
	}
	c.ops = append(c.ops, i2ctest.IO{Addr: addr, W: bytes.Clone(w), R: nil})
	if len(w) > 0 {
		c.ptr = w[0] % registerCount
		for _, v := range w[1:] {
			c.store(c.ptr, v)
			c.advance()
		}
	}
	for i := range r {
		r[i] = c.regs[c.ptr]
		c.advance()
	}
	if len(r) > 0 {
		c.ops[len(c.ops)-1].R = bytes.Clone(r)
	}
	if len(w) > 1 && c.screen != nil {
		return c.mirror()
	}
	return nil
}

// SetSpeed implements i2c.Bus. The MAX6955 supports up to 400kHz.
func (c *Chip) SetSpeed(f physic.Frequency) error {
	if f <= 0 || f > 400*physic.KiloHertz {
		return fmt.Errorf("max6955emu: invalid speed %s", f)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speed = f
	return nil
}

// Speed returns the last speed set with SetSpeed, or 0.
func (c *Chip) Speed() physic.Frequency {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.speed
}

// FailNext makes the next transaction return err without touching the
// registers.
func (c *Chip) FailNext(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fail = err
}

// Ops returns the transactions acknowledged so far.
func (c *Chip) Ops() []i2ctest.IO {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]i2ctest.IO(nil), c.ops...)
}

// Register returns the content of reg.
func (c *Chip) Register(reg max6955.Register) byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.regs[reg.Addr()%registerCount]
}

// SetRegister stores v in reg as if written by the host.
func (c *Chip) SetRegister(reg max6955.Register, v byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(reg.Addr()%registerCount, v)
}

// Text returns the characters of plane 0.
func (c *Chip) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.digits())
}

// State decodes the registers.
func (c *Chip) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	cfg := c.regs[max6955.RegConfiguration]
	return State{
		Shutdown:        !common.Bit(cfg, uint(max6955.BitShutdown)),
		Blink:           common.Bit(cfg, uint(max6955.BitBlink)),
		FastBlink:       common.Bit(cfg, uint(max6955.BitBlinkRate)),
		DisplayTest:     common.Bit(c.regs[max6955.RegDisplayTest], 0),
		GlobalIntensity: c.regs[max6955.RegGlobalIntensity] & 0x0f,
		DecodeMode:      max6955.DecodeMode(c.regs[max6955.RegDecodeMode]),
		DigitType:       max6955.DigitType(c.regs[max6955.RegDigitType]),
		Text:            string(c.digits()),
	}
}

func (c *Chip) advance() {
	c.ptr = (c.ptr + 1) % registerCount
}

func (c *Chip) store(reg, v byte) {
	if reg == max6955.RegConfiguration.Addr() && common.Bit(v, uint(max6955.BitClearDigit)) {
		c.clearDigits()
		v = common.SetBit(v, uint(max6955.BitClearDigit), false)
	}
	c.regs[reg] = v
}

// clearDigits blanks both digit planes.
func (c *Chip) clearDigits() {
	for i := 0; i < max6955.Digits; i++ {
		c.regs[max6955.RegDigit0Plane0.Addr()+byte(i)] = ' '
		c.regs[max6955.RegDigit0Plane1.Addr()+byte(i)] = ' '
	}
}

func (c *Chip) digits() []byte {
	start := max6955.RegDigit0Plane0.Addr()
	return bytes.Clone(c.regs[start : start+max6955.Digits])
}

// mirror refreshes the screen. It must be called with mu held.
func (c *Chip) mirror() error {
	on := common.Bit(c.regs[max6955.RegConfiguration], uint(max6955.BitShutdown))
	level := int(c.regs[max6955.RegGlobalIntensity] & 0x0f)
	text := c.digits()
	if common.Bit(c.regs[max6955.RegDisplayTest], 0) {
		on = true
		level = screen1d.MaxLevel
		text = bytes.Repeat([]byte{'8'}, max6955.Digits)
	}
	return c.screen.Show(text, level, on)
}

var _ i2c.Bus = &Chip{}
