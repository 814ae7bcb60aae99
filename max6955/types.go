// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max6955

//go:generate go install golang.org/x/tools/cmd/stringer@latest
//go:generate stringer -type=ConfigBit,DigitType,DecodeMode -trimprefix=Bit -output types_string.go

// ConfigBit is a bit position within the Configuration register. See table
// 17 of the datasheet.
type ConfigBit uint

const (
	// BitShutdown is 0 while the display is shut down and 1 during normal
	// operation.
	BitShutdown    ConfigBit = 0
	BitBlinkRate   ConfigBit = 2
	BitBlink       ConfigBit = 3
	BitBlinkTiming ConfigBit = 4
	BitClearDigit  ConfigBit = 5
	BitIntensity   ConfigBit = 6
	BitBlinkPhase  ConfigBit = 7
)

// DigitType selects which digits are wired as 14-segment digits. Digits that
// are not 14-segment are 16-segment or 7-segment. See table 14.
type DigitType byte

const (
	// Seg7or16 makes digits 7 to 0 16-segment or 7-segment digits.
	Seg7or16 DigitType = 0x00
	// D0Seg14 makes digit 0 a 14-segment digit.
	D0Seg14 DigitType = 0x01
	// D0D2Seg14 makes digits 2 to 0 14-segment digits.
	D0D2Seg14 DigitType = 0x07
	// Seg14 makes digits 7 to 0 14-segment digits.
	Seg14 DigitType = 0xff
)

// DecodeMode selects the digit pairs the hexadecimal font decoder applies
// to. See table 15.
type DecodeMode byte

const (
	// NoDecode disables decoding for digit pairs 7 to 0.
	NoDecode DecodeMode = 0x00
	// HexD0 decodes digit pair 0 only.
	HexD0 DecodeMode = 0x01
	// HexD0D2 decodes digit pairs 2 to 0.
	HexD0D2 DecodeMode = 0x07
	// Hex decodes digit pairs 7 to 0.
	Hex DecodeMode = 0xff
)

// PinMode is the direction of one of the P0-P4 GPIO ports.
type PinMode bool

const (
	// Output drives the port from the GPIO Data register.
	Output PinMode = false
	// Input reads the port level into the GPIO Data register.
	Input PinMode = true
)

func (m PinMode) String() string {
	if m == Input {
		return "Input"
	}
	return "Output"
}

// BlinkMode turns blinking on or off.
type BlinkMode bool

const (
	// BlinkDisable shows the plane 0 digits steadily.
	BlinkDisable BlinkMode = false
	// BlinkEnable alternates between the plane 0 and plane 1 digits.
	BlinkEnable BlinkMode = true
)

func (m BlinkMode) String() string {
	if m == BlinkEnable {
		return "Enable"
	}
	return "Disable"
}

// BlinkRate is the blink period.
type BlinkRate bool

const (
	// BlinkSlow blinks with a 1 second cycle.
	BlinkSlow BlinkRate = false
	// BlinkFast blinks with a 0.5 second cycle.
	BlinkFast BlinkRate = true
)

func (r BlinkRate) String() string {
	if r == BlinkFast {
		return "Fast"
	}
	return "Slow"
}
