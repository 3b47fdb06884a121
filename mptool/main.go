// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/embeddedgo/mpytools/mptool/internal/cmd/gbk2utf"
	"github.com/embeddedgo/mpytools/mptool/internal/cmd/pins"
	"github.com/embeddedgo/mpytools/mptool/internal/util"
	"github.com/spf13/cobra"
)

var commands = []func() *cobra.Command{
	gbk2utf.NewCommand,
	pins.NewCommand,
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "mptool",
		Short: "MicroPython port build tools",
		Long: `Tools used to prepare the sources of the MicroPython SWM320 port.

Examples:
  mptool pins -a ../chip/SWM3200_port.h -p SWM320_prefix.c > pins.c
  mptool gbk2utf`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			util.SetVerbose(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	for _, nc := range commands {
		root.AddCommand(nc())
	}
	return root
}

func main() {
	util.FatalErr("", newRootCmd().Execute())
}
