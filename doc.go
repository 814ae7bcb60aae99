// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for LED display device drivers built on
// periph.io/x/conn/v3.
//
// The max6955 package drives the MAX6955 over I²C. max6955emu emulates the
// chip for tests, screen1d mirrors a character line on the terminal and
// tinybus runs the drivers on TinyGo microcontrollers.
package devices
