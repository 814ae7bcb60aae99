// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tinybus lets devices written against periph's i2c.Bus run on a
// TinyGo I²C peripheral.
//
// TinyGo's machine.I2C satisfies drivers.I2C, whose Tx method has the same
// shape as i2c.Bus.Tx:
//
//	machine.I2C0.Configure(machine.I2CConfig{Frequency: 400 * machine.KHz})
//	dev := max6955.New(tinybus.New(machine.I2C0, "I2C0"))
package tinybus

import (
	"errors"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// ErrSpeed is returned by SetSpeed. The clock of a TinyGo bus is chosen
// when it is configured.
var ErrSpeed = errors.New("tinybus: speed is set by I2CConfig.Frequency")

// Bus adapts a drivers.I2C to i2c.Bus.
type Bus struct {
	b    drivers.I2C
	name string
}

// New returns a Bus forwarding transactions to b. name is returned by
// String.
func New(b drivers.I2C, name string) *Bus {
	return &Bus{b: b, name: name}
}

func (b *Bus) String() string {
	return b.name
}

// Tx implements i2c.Bus.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	return b.b.Tx(addr, w, r)
}

// SetSpeed implements i2c.Bus. It always fails with ErrSpeed.
func (b *Bus) SetSpeed(f physic.Frequency) error {
	return ErrSpeed
}

var _ i2c.Bus = &Bus{}
