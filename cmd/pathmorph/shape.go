// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"

	"github.com/gogpu/pathmorph"
	"github.com/gogpu/pathmorph/internal/svgpath"
	"github.com/spf13/cobra"
)

var shapeFlags struct {
	cx, cy float64
	radius float64
	inner  float64
	sides  int
}

var shapeCmd = &cobra.Command{
	Use:   "shape <rect|circle|polygon|star>",
	Short: "Print a built-in shape as SVG path data",
	Long: `Print a built-in shape as SVG path data, for use as the --d input
of apply. The shape is centered on --cx, --cy; polygons and stars have
--sides corners.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildShape(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", svgpath.Format(p.Commands()))
		return nil
	},
}

func buildShape(name string) (*pathmorph.Path, error) {
	f := shapeFlags
	b := pathmorph.BuildPath()
	switch name {
	case "rect":
		b.Rect(f.cx-f.radius, f.cy-f.radius, 2*f.radius, 2*f.radius)
	case "circle":
		b.Circle(f.cx, f.cy, f.radius)
	case "polygon", "star":
		if f.sides < 3 {
			return nil, fmt.Errorf("%s needs at least 3 sides, got %d", name, f.sides)
		}
		if name == "polygon" {
			b.Polygon(f.cx, f.cy, f.radius, f.sides)
			break
		}
		inner := f.inner
		if inner <= 0 {
			inner = f.radius / 2
		}
		b.Star(f.cx, f.cy, f.radius, inner, f.sides)
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
	return b.Build(), nil
}

func init() {
	shapeCmd.Flags().Float64Var(&shapeFlags.cx, "cx", 0, "center x")
	shapeCmd.Flags().Float64Var(&shapeFlags.cy, "cy", 0, "center y")
	shapeCmd.Flags().Float64Var(&shapeFlags.radius, "radius", 50, "outer radius, or half the side of a rect")
	shapeCmd.Flags().Float64Var(&shapeFlags.inner, "inner", 0, "inner radius of a star (default: half the radius)")
	shapeCmd.Flags().IntVar(&shapeFlags.sides, "sides", 5, "corners of a polygon or points of a star")
	rootCmd.AddCommand(shapeCmd)
}
