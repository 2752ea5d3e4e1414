// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/gogpu/pathmorph"
)

func TestFillCoverage(t *testing.T) {
	tests := []struct {
		name string
		path *pathmorph.Path
		want float64
	}{
		{"square", pathmorph.BuildPath().Rect(4, 4, 10, 10).Build(), 100},
		{"open triangle", pathmorph.BuildPath().MoveTo(0, 0).LineTo(20, 0).LineTo(20, 20).Build(), 200},
		{"two squares", pathmorph.BuildPath().Rect(0, 0, 4, 4).Rect(10, 10, 5, 5).Build(), 41},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coverage(Fill(tt.path, 32, 32))
			if math.Abs(got-tt.want) > 1 {
				t.Errorf("Coverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Structural edits never change the filled area.
func TestFillUnchangedByEdits(t *testing.T) {
	orig := pathmorph.BuildPath().Rect(2, 2, 12, 12).Circle(24, 24, 5).Build()
	edited, err := orig.Mutate().
		ReverseSubPath(1).
		ShiftSubPathForward(0, 2).
		SplitCommandInHalf(0, 1).
		SplitFilledSubPath(0, 1, 3).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	a := Coverage(Fill(orig, 32, 32))
	b := Coverage(Fill(edited, 32, 32))
	if math.Abs(a-b) > 1 {
		t.Errorf("coverage changed from %v to %v", a, b)
	}
}

func TestWritePNG(t *testing.T) {
	mask := Fill(pathmorph.BuildPath().Rect(0, 0, 8, 8).Build(), 16, 16)
	var buf bytes.Buffer
	if err := WritePNG(&buf, Gray(mask)); err != nil {
		t.Fatalf("WritePNG() = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
		t.Errorf("bounds = %v, want 16x16", b)
	}
	r, _, _, _ := img.At(2, 2).RGBA()
	if r != 0 {
		t.Errorf("filled pixel = %d, want black", r)
	}
	r, _, _, _ = img.At(12, 12).RGBA()
	if r != 0xffff {
		t.Errorf("empty pixel = %d, want white", r)
	}
}
