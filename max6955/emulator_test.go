// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max6955_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/GermanBionicSystems/displaydevices/max6955"
	"github.com/GermanBionicSystems/displaydevices/max6955/max6955emu"
)

func TestAgainstEmulator(t *testing.T) {
	chip := max6955emu.New(nil)
	dev := max6955.New(chip)

	steps := []struct {
		name string
		op   func() error
	}{
		{"PowerUp", dev.PowerUp},
		{"SetGlobalIntensity", func() error { return dev.SetGlobalIntensity(9) }},
		{"SetDecodeMode", func() error { return dev.SetDecodeMode(max6955.HexD0D2) }},
		{"SetDigitType", func() error { return dev.SetDigitType(max6955.Seg14) }},
		{"SetBlink", func() error { return dev.SetBlink(max6955.BlinkEnable, max6955.BlinkFast) }},
		{"WriteString", func() error { return dev.WriteString("periph\x01") }},
	}
	for _, s := range steps {
		if err := s.op(); err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
	}
	want := max6955emu.State{
		Blink:           true,
		FastBlink:       true,
		GlobalIntensity: 9,
		DecodeMode:      max6955.HexD0D2,
		DigitType:       max6955.Seg14,
		Text:            "periph  ",
	}
	if diff := cmp.Diff(chip.State(), want); diff != "" {
		t.Errorf("State() difference (-got +want):\n%s", diff)
	}
	if got := chip.Register(max6955.RegConfiguration); got != 0x0d {
		t.Errorf("configuration=0x%02x expected 0x0d", got)
	}

	if err := dev.Halt(); err != nil {
		t.Fatal(err)
	}
	if !chip.State().Shutdown {
		t.Error("Halt() didn't shut the display down")
	}
	// Shutting down keeps the other configuration bits.
	if got := chip.Register(max6955.RegConfiguration); got != 0x0c {
		t.Errorf("configuration=0x%02x expected 0x0c", got)
	}
}

func TestPinModesAgainstEmulator(t *testing.T) {
	chip := max6955emu.New(nil)
	dev := max6955.New(chip)
	for port := 0; port < 5; port++ {
		if err := dev.SetPinMode(port, max6955.Input); err != nil {
			t.Fatal(err)
		}
	}
	if got := chip.Register(max6955.RegPortConfiguration); got != 0x1f {
		t.Errorf("port configuration=0x%02x expected 0x1f", got)
	}
	if err := dev.SetPinMode(3, max6955.Output); err != nil {
		t.Fatal(err)
	}
	if got := chip.Register(max6955.RegPortConfiguration); got != 0x17 {
		t.Errorf("port configuration=0x%02x expected 0x17", got)
	}
}

func TestClearDisplayAgainstEmulator(t *testing.T) {
	chip := max6955emu.New(nil)
	dev := max6955.New(chip)
	if err := dev.WriteString("88888888"); err != nil {
		t.Fatal(err)
	}
	if err := dev.ClearDisplay(); err != nil {
		t.Fatal(err)
	}
	if got := chip.Text(); got != "        " {
		t.Errorf("Text()=%q", got)
	}
}

func TestWrongAddress(t *testing.T) {
	chip := max6955emu.New(&max6955emu.Opts{Addr: 0x65})
	dev := max6955.New(chip)
	if err := dev.PowerUp(); !errors.Is(err, max6955emu.ErrNoAck) {
		t.Fatalf("got %v, expected %v", err, max6955emu.ErrNoAck)
	}
	dev.SetAddress(0x65)
	if err := dev.PowerUp(); err != nil {
		t.Fatal(err)
	}
	if chip.State().Shutdown {
		t.Error("display still shut down")
	}
}

func TestWriteFailureKeepsRegister(t *testing.T) {
	chip := max6955emu.New(nil)
	chip.SetRegister(max6955.RegConfiguration, 0x01)
	dev := max6955.New(chip)
	injected := errors.New("timeout")
	chip.FailNext(injected)
	if err := dev.Shutdown(); !errors.Is(err, injected) {
		t.Fatalf("got %v, expected %v", err, injected)
	}
	if len(chip.Ops()) != 0 {
		t.Errorf("unexpected transactions: %#v", chip.Ops())
	}
	if chip.State().Shutdown {
		t.Error("register changed after failed read")
	}
}
