// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, the bit manipulation behind register read-modify-write updates.
package common

// SetBit returns b with the bit at position pos set when set is true, or
// cleared otherwise. Positions past 7 leave b unchanged.
func SetBit(b byte, pos uint, set bool) byte {
	mask := byte(1) << pos
	if set {
		return b | mask
	}
	return b &^ mask
}

// Bit reports whether the bit at position pos of b is set.
func Bit(b byte, pos uint) bool {
	return b&(byte(1)<<pos) != 0
}
