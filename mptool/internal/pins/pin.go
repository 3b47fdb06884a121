// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pins extracts the GPIO pins of a SWM320-like microcontroller from its
// alternate function header and generates the pin tables used by the
// MicroPython port (the pins C module, its header and the qstr list).
package pins

import "fmt"

// Pin describes one physical pin.
type Pin struct {
	Name string // PA3
	Port string // GPIOA
	PBit string // PIN3
	PReg string // bit-band address expression of the pin data bit
	IRQn string // GPIOA_IRQn
}

// NewPin returns the pin number num of the port with the given letter.
func NewPin(letter, num string) *Pin {
	port := "GPIO" + letter
	return &Pin{
		Name: "P" + letter + num,
		Port: port,
		PBit: "PIN" + num,
		PReg: fmt.Sprintf("PIN_BIT_BAND(%s, %2s)", port, num),
		IRQn: port + "_IRQn",
	}
}

// Pins is an insertion-ordered set of pins with unique names.
type Pins struct {
	pins []*Pin
}

// Find returns the pin with the given port and bit or nil if there is no
// such pin.
func (ps *Pins) Find(port, pbit string) *Pin {
	for _, p := range ps.pins {
		if p.Port == port && p.PBit == pbit {
			return p
		}
	}
	return nil
}

// FindByName returns the pin with the given name or nil.
func (ps *Pins) FindByName(name string) *Pin {
	for _, p := range ps.pins {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// Add appends the pin described by the port letter and the pin number unless
// a pin with the same name is already present. It reports whether the pin
// was added.
func (ps *Pins) Add(letter, num string) bool {
	p := NewPin(letter, num)
	if ps.FindByName(p.Name) != nil {
		return false
	}
	ps.pins = append(ps.pins, p)
	return true
}

func (ps *Pins) Len() int {
	return len(ps.pins)
}

// All returns the pins in the order they were added. The returned slice must
// not be modified.
func (ps *Pins) All() []*Pin {
	return ps.pins
}
