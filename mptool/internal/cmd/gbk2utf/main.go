// Copyright 2025 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gbk2utf

import (
	"github.com/embeddedgo/mpytools/mptool/internal/gbk2utf"
	"github.com/embeddedgo/mpytools/mptool/internal/util"
	"github.com/spf13/cobra"
)

const Descr = "convert all files in the chip directory from GBK to UTF-8"

// Root is the directory converted by the command.
const Root = "chip"

func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gbk2utf",
		Short: Descr,
		Long: `Rewrite every file under the chip directory in UTF-8. Files that are
not valid GBK are reported and left unchanged. The originals are not kept and
running the command again on converted files may corrupt them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := gbk2utf.Convert(Root, cmd.OutOrStdout())
			util.Log.Debug().Int("ok", st.OK).Int("failed", st.Failed).Msg("gbk2utf")
			return err
		},
	}
}
