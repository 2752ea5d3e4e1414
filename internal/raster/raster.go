// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders coverage masks of built paths for previews and
// fill comparisons.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/gogpu/pathmorph"
	"golang.org/x/image/vector"
)

// Fill rasterizes the filled area of p into a w x h coverage mask. Path
// coordinates map to pixels one to one; the Y axis points down.
// Open sub-paths are closed implicitly.
func Fill(p *pathmorph.Path, w, h int) *image.Alpha {
	ras := vector.NewRasterizer(w, h)
	open := false
	for _, cmd := range p.Commands() {
		pts := cmd.Points()
		switch cmd.Type() {
		case pathmorph.MoveTo:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(float32(pts[1].X), float32(pts[1].Y))
			open = true
		case pathmorph.LineTo:
			ras.LineTo(float32(pts[1].X), float32(pts[1].Y))
		case pathmorph.QuadTo:
			ras.QuadTo(float32(pts[1].X), float32(pts[1].Y), float32(pts[2].X), float32(pts[2].Y))
		case pathmorph.CubicTo:
			ras.CubeTo(float32(pts[1].X), float32(pts[1].Y), float32(pts[2].X), float32(pts[2].Y),
				float32(pts[3].X), float32(pts[3].Y))
		case pathmorph.Close:
			ras.ClosePath()
			open = false
		}
	}
	if open {
		// implicitly close path
		ras.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}

// Coverage returns the total coverage of a mask in pixels.
func Coverage(img *image.Alpha) float64 {
	var sum float64
	for _, a := range img.Pix {
		sum += float64(a) / 255
	}
	return sum
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}

// Gray composites a coverage mask onto a white background so that the
// preview reads as black ink.
func Gray(mask *image.Alpha) *image.Gray {
	dst := image.NewGray(mask.Bounds())
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.DrawMask(dst, dst.Bounds(), image.Black, image.Point{}, mask, mask.Bounds().Min, draw.Over)
	return dst
}
