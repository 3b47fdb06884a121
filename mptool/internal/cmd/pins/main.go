// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pins

import (
	"fmt"
	"os"

	"github.com/embeddedgo/mpytools/mptool/internal/pins"
	"github.com/embeddedgo/mpytools/mptool/internal/util"
	"github.com/spf13/cobra"
)

const Descr = "generate the board specific pins file"

type options struct {
	af     string
	prefix string
	qstr   string
	hdr    string
}

func NewCommand() *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:   "pins [OPTIONS]",
		Short: Descr,
		Long: `Scan the alternate function header of the chip for the
#define PORT<L>_PIN<N>_GPIO macros and generate the pins C module (printed to
the standard output), the pin header and the qstr list.

Examples:
  mptool pins -a ../chip/SWM3200_port.h -p SWM320_prefix.c > pins.c
  mptool pins --af port.h --qstr build/pins_qstr.h --hdr build/pins.h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(
		&opts.af, "af", "a", "",
		"alternate function file for the chip",
	)
	fs.StringVarP(
		&opts.prefix, "prefix", "p", "",
		"beginning portion of the generated pins file",
	)
	fs.StringVarP(
		&opts.qstr, "qstr", "q", "../build-SWM320Lite/pins_qstr.h",
		"generated qstr header file",
	)
	fs.StringVarP(
		&opts.hdr, "hdr", "r", "../build-SWM320Lite/pins.h",
		"generated pin header file",
	)
	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	ps := new(pins.Pins)
	src := &pins.Source{AFName: opts.af, PrefixName: opts.prefix}
	if opts.af != "" {
		p, err := pins.NewParser()
		if err != nil {
			return err
		}
		if err := p.ParseFile(opts.af, ps); err != nil {
			return err
		}
		if ps.Len() == 0 {
			util.Warn("pins: no GPIO pins found in %s", opts.af)
		}
		util.Log.Debug().Str("af", opts.af).Int("pins", ps.Len()).Msg("parsed")
	}
	if opts.prefix != "" {
		prefix, err := os.ReadFile(opts.prefix)
		if err != nil {
			return fmt.Errorf("failed to read prefix file: %w", err)
		}
		src.Prefix = string(prefix)
	}
	if err := pins.WriteSource(cmd.OutOrStdout(), src, ps); err != nil {
		return err
	}
	if err := pins.WriteQstrFile(opts.qstr, ps); err != nil {
		return err
	}
	return pins.WriteHeaderFile(opts.hdr, ps)
}
