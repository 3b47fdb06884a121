// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pins

import (
	"bufio"
	"fmt"
	"io"

	"github.com/embeddedgo/mpytools/mptool/internal/util"
)

// Source describes the inputs recorded in the generated pins module.
type Source struct {
	AFName     string // alternate function file, "" if not used
	PrefixName string // prefix file, "" if not used
	Prefix     string // content of the prefix file
}

// WriteSource writes the pins C module: the provenance comment, the prefix,
// one pin_obj_t definition per pin and the pins_locals_dict lookup table.
func WriteSource(w io.Writer, src *Source, ps *Pins) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "// This file was automatically generated by make-pins.py")
	fmt.Fprintln(bw, "//")
	if src.AFName != "" {
		fmt.Fprintf(bw, "// --af %s\n", src.AFName)
	}
	if src.PrefixName != "" {
		fmt.Fprintf(bw, "// --prefix %s\n", src.PrefixName)
		fmt.Fprintln(bw)
		fmt.Fprintln(bw, src.Prefix)
	}
	for _, p := range ps.All() {
		fmt.Fprintf(
			bw, "pin_obj_t pin_%-4s = PIN(%-4s, %-5s, %-5s, %s, %-10s);\n\n",
			p.Name, p.Name, p.Port, p.PBit, p.PReg, p.IRQn,
		)
	}
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "static const mp_rom_map_elem_t pins_locals_dict_table[] = {")
	for _, p := range ps.All() {
		fmt.Fprintf(
			bw, "    { MP_ROM_QSTR(MP_QSTR_%-5s),  MP_ROM_PTR(&pin_%-5s) },\n",
			p.Name, p.Name,
		)
	}
	fmt.Fprintln(bw, "};")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "MP_DEFINE_CONST_DICT(pins_locals_dict, pins_locals_dict_table);")
	return bw.Flush()
}

// WriteHeader writes the extern declarations of all pin objects.
func WriteHeader(w io.Writer, ps *Pins) error {
	bw := bufio.NewWriter(w)
	for _, p := range ps.All() {
		fmt.Fprintf(bw, "extern pin_obj_t pin_%-4s;\n", p.Name)
	}
	return bw.Flush()
}

// WriteQstr writes the Q(name) entries for the pin names.
func WriteQstr(w io.Writer, ps *Pins) error {
	bw := bufio.NewWriter(w)
	for _, p := range ps.All() {
		fmt.Fprintf(bw, "Q(%s)\n", p.Name)
	}
	return bw.Flush()
}

// WriteHeaderFile creates or truncates the named file and writes the pin
// header to it.
func WriteHeaderFile(name string, ps *Pins) error {
	err := util.CreateFile(name, func(w io.Writer) error {
		return WriteHeader(w, ps)
	})
	if err != nil {
		return fmt.Errorf("failed to write header file: %w", err)
	}
	return nil
}

// WriteQstrFile creates or truncates the named file and writes the qstr list
// to it.
func WriteQstrFile(name string, ps *Pins) error {
	err := util.CreateFile(name, func(w io.Writer) error {
		return WriteQstr(w, ps)
	})
	if err != nil {
		return fmt.Errorf("failed to write qstr file: %w", err)
	}
	return nil
}
