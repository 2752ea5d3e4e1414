// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"os"

	"github.com/gogpu/pathmorph/internal/raster"
	"github.com/gogpu/pathmorph/internal/script"
	"github.com/gogpu/pathmorph/internal/svgpath"
	"github.com/spf13/cobra"
)

var applyFlags struct {
	source     sourceFlags
	scriptFile string
	pngFile    string
	width      int
	height     int
}

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply an edit script to a path",
	Long: `Reads a path from SVG data or a font, applies the edit script (YAML or TOML,
chosen by file extension) and prints the resulting SVG path data.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApply(cmd)
	},
}

func init() {
	applyFlags.source.register(applyCmd)
	applyCmd.Flags().StringVar(&applyFlags.scriptFile, "script", "", "edit script file (.yaml, .yml or .toml)")
	applyCmd.Flags().StringVar(&applyFlags.pngFile, "png", "", "write a filled preview to this PNG file")
	applyCmd.Flags().IntVar(&applyFlags.width, "width", 256, "preview width in pixels")
	applyCmd.Flags().IntVar(&applyFlags.height, "height", 256, "preview height in pixels")
	rootCmd.AddCommand(applyCmd)
}

func runApply(cmd *cobra.Command) error {
	p, err := applyFlags.source.load()
	if err != nil {
		return err
	}

	if applyFlags.scriptFile != "" {
		format, err := script.FormatFromPath(applyFlags.scriptFile)
		if err != nil {
			return err
		}
		f, err := os.Open(applyFlags.scriptFile)
		if err != nil {
			return err
		}
		s, err := script.Load(f, format)
		f.Close()
		if err != nil {
			return err
		}
		if p, err = script.Apply(p, s); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), svgpath.Format(p.Commands()))

	if applyFlags.pngFile == "" {
		return nil
	}
	out, err := os.Create(applyFlags.pngFile)
	if err != nil {
		return err
	}
	img := raster.Gray(raster.Fill(p, applyFlags.width, applyFlags.height))
	if err := raster.WritePNG(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
