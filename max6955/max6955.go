// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package max6955 drives the Maxim MAX6955 LED display driver over I²C.
//
// The MAX6955 multiplexes up to eight 14-segment, 16-segment or 7-segment
// digits (or sixteen 7-segment digits in pairs) and decodes ASCII into
// segment patterns with its built in font. This package writes text into
// the first digit plane and controls brightness, blinking, power state,
// the decoder and the five GPIO ports.
//
// The driver keeps no copy of the device state. Every call is a fresh bus
// transaction and configuration changes are read-modify-write cycles on the
// device registers. A Dev is not safe for concurrent use.
//
// Bus errors are returned wrapped with the package name; use errors.Is or
// errors.As to match the underlying error.
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX6955.pdf
package max6955

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

const (
	// DefaultAddress is the address with AD0 and AD1 tied to GND.
	DefaultAddress uint16 = 0x60
	// AddressMin and AddressMax bound the addresses selectable with the AD0
	// and AD1 pins. See table 5 of the datasheet.
	AddressMin uint16 = 0x60
	AddressMax uint16 = 0x6f

	// Digits is the number of characters in a digit plane.
	Digits = 8

	// Value written for positions with no character.
	blank byte = ' '
)

// Dev represents a MAX6955 LED display driver.
type Dev struct {
	d i2c.Dev
}

// New returns a Dev using the default address 0x60. No bus transaction is
// made.
func New(bus i2c.Bus) *Dev {
	return NewWithAddress(bus, DefaultAddress)
}

// NewWithAddress returns a Dev at address. The address is used as-is, so it
// should be in the range AddressMin to AddressMax.
func NewWithAddress(bus i2c.Bus, address uint16) *Dev {
	return &Dev{d: i2c.Dev{Bus: bus, Addr: address}}
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("max6955: %w", err)
}

// SetAddress changes the address used by subsequent operations.
func (dev *Dev) SetAddress(address uint16) {
	dev.d.Addr = address
}

// Address returns the address the device is accessed at.
func (dev *Dev) Address() uint16 {
	return dev.d.Addr
}

// SetGlobalIntensity sets the brightness of all digits. The range is 0
// (lowest) to 15 (highest); other values are sent unchanged.
func (dev *Dev) SetGlobalIntensity(intensity uint8) error {
	return dev.writeRegister(RegGlobalIntensity, intensity)
}

// SetBlink turns blinking on or off and sets the blink rate.
//
// The two settings are updated by separate read-modify-write cycles. If the
// second one fails, the blink mode has already been changed.
func (dev *Dev) SetBlink(mode BlinkMode, rate BlinkRate) error {
	if err := dev.setConfigurationBit(BitBlink, bool(mode)); err != nil {
		return err
	}
	return dev.setConfigurationBit(BitBlinkRate, bool(rate))
}

// PowerUp takes the display out of shutdown.
func (dev *Dev) PowerUp() error {
	return dev.setConfigurationBit(BitShutdown, true)
}

// Shutdown blanks the display. Register contents are kept.
func (dev *Dev) Shutdown() error {
	return dev.setConfigurationBit(BitShutdown, false)
}

// SetDigitType configures which digits are 14-segment digits.
func (dev *Dev) SetDigitType(t DigitType) error {
	return dev.writeRegister(RegDigitType, byte(t))
}

// SetPinMode sets the direction of GPIO port P0 to P4. port is not range
// checked.
func (dev *Dev) SetPinMode(port int, mode PinMode) error {
	return dev.setRegisterBit(RegPortConfiguration, uint(port), bool(mode))
}

// SetDecodeMode selects the digit pairs decoded by the hexadecimal font.
func (dev *Dev) SetDecodeMode(mode DecodeMode) error {
	return dev.writeRegister(RegDecodeMode, byte(mode))
}

// TestDisplay turns on all LEDs at full intensity when on is true. The
// display returns to its previous content when it is turned off.
func (dev *Dev) TestDisplay(on bool) error {
	if on {
		return dev.writeRegister(RegDisplayTest, 0x01)
	}
	return dev.writeRegister(RegDisplayTest, 0x00)
}

// WriteString writes text to the eight digits of plane 0, starting at digit
// 0.
//
// Characters outside of printable ASCII (0x20 to 0x7e) are shown as spaces,
// digits past the end of text are blanked and characters after the eighth
// are dropped. All digits are written in one transaction.
func (dev *Dev) WriteString(text string) error {
	return wrap(dev.d.Tx(encodeText(text), nil))
}

// ClearDisplay blanks all eight digits.
func (dev *Dev) ClearDisplay() error {
	return dev.WriteString("")
}

// Halt shuts the display down. Implements conn.Resource.
func (dev *Dev) Halt() error {
	return dev.Shutdown()
}

func (dev *Dev) String() string {
	return fmt.Sprintf("MAX6955{%s}", &dev.d)
}

// encodeText returns the transaction for WriteString: the Digit0Plane0
// address followed by one byte per digit. The device auto-increments the
// register address after each byte.
func encodeText(text string) []byte {
	w := make([]byte, Digits+1)
	w[0] = RegDigit0Plane0.Addr()
	for i := 1; i < len(w); i++ {
		w[i] = blank
	}
	i := 1
	for _, c := range text {
		if i > Digits {
			break
		}
		if c >= ' ' && c <= '~' {
			w[i] = byte(c)
		} else {
			w[i] = blank
		}
		i++
	}
	return w
}

var _ conn.Resource = &Dev{}
var _ fmt.Stringer = &Dev{}
