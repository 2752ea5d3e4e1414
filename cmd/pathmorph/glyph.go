// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/gogpu/pathmorph/internal/svgpath"
	"github.com/spf13/cobra"
)

var glyphFlags sourceFlags

var glyphCmd = &cobra.Command{
	Use:   "glyph <char>",
	Short: "Print the outline of a glyph as SVG path data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := glyphFlags.glyphPath(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", svgpath.Format(p.Commands()))
		fmt.Fprintf(cmd.ErrOrStderr(), "sub-paths: %d, area: %g\n", p.NumSubPaths(), p.Area())
		return nil
	},
}

func init() {
	glyphFlags.registerFont(glyphCmd)
	rootCmd.AddCommand(glyphCmd)
}
