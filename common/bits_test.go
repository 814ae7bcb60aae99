// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestSetBit(t *testing.T) {
	var tests = []struct {
		b      byte
		pos    uint
		set    bool
		result byte
	}{
		{b: 0x00, pos: 0, set: true, result: 0x01},
		{b: 0x01, pos: 0, set: false, result: 0x00},
		{b: 0x00, pos: 3, set: true, result: 0x08},
		{b: 0x08, pos: 2, set: true, result: 0x0c},
		{b: 0xff, pos: 7, set: false, result: 0x7f},
		{b: 0x04, pos: 2, set: true, result: 0x04},
		{b: 0x00, pos: 5, set: false, result: 0x00},
		{b: 0x5a, pos: 8, set: true, result: 0x5a},
		{b: 0x5a, pos: 9, set: false, result: 0x5a},
	}
	for _, test := range tests {
		res := SetBit(test.b, test.pos, test.set)
		if res != test.result {
			t.Errorf("SetBit(0x%02x, %d, %t)!=0x%02x received 0x%02x", test.b, test.pos, test.set, test.result, res)
		}
	}
}

func TestBit(t *testing.T) {
	for pos := uint(0); pos < 8; pos++ {
		b := SetBit(0, pos, true)
		for other := uint(0); other < 8; other++ {
			if got := Bit(b, other); got != (other == pos) {
				t.Errorf("Bit(0x%02x, %d)=%t", b, other, got)
			}
		}
	}
}
