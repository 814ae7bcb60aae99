// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max6955

//go:generate go install golang.org/x/tools/cmd/stringer@latest
//go:generate stringer -type=Register -trimprefix=Reg -output register_string.go

import (
	"github.com/GermanBionicSystems/displaydevices/common"
)

// Register is the address of a MAX6955 register. See table 7 of the
// datasheet.
type Register byte

const (
	RegNoOp              Register = 0x00
	RegDecodeMode        Register = 0x01
	RegGlobalIntensity   Register = 0x02
	RegScanLimit         Register = 0x03
	RegConfiguration     Register = 0x04
	RegGPIOData          Register = 0x05
	RegPortConfiguration Register = 0x06
	RegDisplayTest       Register = 0x07
	RegKeyAMaskDebounce  Register = 0x08
	RegKeyBMaskDebounce  Register = 0x09
	RegKeyCMaskDebounce  Register = 0x0a
	RegKeyDMaskDebounce  Register = 0x0b
	RegDigitType         Register = 0x0c
	RegKeyBPressed       Register = 0x0d
	RegKeyCPressed       Register = 0x0e
	RegKeyDPressed       Register = 0x0f
	RegIntensity10       Register = 0x10
	RegIntensity32       Register = 0x11
	RegIntensity54       Register = 0x12
	RegIntensity76       Register = 0x13
	RegIntensity10a      Register = 0x14
	RegIntensity32a      Register = 0x15
	RegIntensity54a      Register = 0x16
	RegIntensity76a      Register = 0x17
	RegDigit0Plane0      Register = 0x20
	RegDigit1Plane0      Register = 0x21
	RegDigit2Plane0      Register = 0x22
	RegDigit3Plane0      Register = 0x23
	RegDigit4Plane0      Register = 0x24
	RegDigit5Plane0      Register = 0x25
	RegDigit6Plane0      Register = 0x26
	RegDigit7Plane0      Register = 0x27
	RegDigit0Plane1      Register = 0x40
	RegDigit1Plane1      Register = 0x41
	RegDigit2Plane1      Register = 0x42
	RegDigit3Plane1      Register = 0x43
	RegDigit4Plane1      Register = 0x44
	RegDigit5Plane1      Register = 0x45
	RegDigit6Plane1      Register = 0x46
	RegDigit7Plane1      Register = 0x47
)

// Addr returns the one byte register address sent on the bus.
func (r Register) Addr() byte {
	return byte(r)
}

// readLength is the number of bytes clocked out for a single register read.
// Only the first one belongs to the requested register.
const readLength = 8

func (dev *Dev) readRegister(reg Register) (byte, error) {
	var rx [readLength]byte
	if err := dev.d.Tx([]byte{reg.Addr()}, rx[:]); err != nil {
		return 0, wrap(err)
	}
	return rx[0], nil
}

func (dev *Dev) writeRegister(reg Register, value byte) error {
	return wrap(dev.d.Tx([]byte{reg.Addr(), value}, nil))
}

// setRegisterBit reads reg, changes the bit at pos and writes the result
// back. Nothing is written when the read fails.
func (dev *Dev) setRegisterBit(reg Register, pos uint, value bool) error {
	v, err := dev.readRegister(reg)
	if err != nil {
		return err
	}
	return dev.writeRegister(reg, common.SetBit(v, pos, value))
}

func (dev *Dev) setConfigurationBit(bit ConfigBit, value bool) error {
	return dev.setRegisterBit(RegConfiguration, uint(bit), value)
}
