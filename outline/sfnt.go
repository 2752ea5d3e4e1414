// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/pathmorph"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// SFNTParser implements Parser using golang.org/x/image/font/opentype.
type SFNTParser struct{}

// Parse implements Parser.Parse.
func (SFNTParser) Parse(data []byte) (Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("outline: failed to parse font: %w", err)
	}
	return &sfntFont{font: f}, nil
}

// sfntFont implements Font using sfnt.Font.
type sfntFont struct {
	font *opentype.Font

	// mu guards buf, which sfnt requires for every lookup.
	mu  sync.Mutex
	buf sfnt.Buffer
}

// Name implements Font.Name.
func (f *sfntFont) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *sfntFont) UnitsPerEm() int {
	return int(f.font.UnitsPerEm())
}

// Glyph implements Font.Glyph.
func (f *sfntFont) Glyph(r rune, size float64) (Glyph, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return Glyph{}, fmt.Errorf("outline: glyph index for %q: %w", r, err)
	}
	if idx == 0 {
		return Glyph{}, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}

	ppem := fixed.Int26_6(size * 64) // Convert to 26.6 fixed point
	segments, err := f.font.LoadGlyph(&f.buf, idx, ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrColoredGlyph) {
			return Glyph{}, fmt.Errorf("%w: %q", ErrNoOutline, r)
		}
		return Glyph{}, fmt.Errorf("outline: load glyph %q: %w", r, err)
	}

	g := Glyph{Rune: r, Segments: make([]Segment, 0, len(segments))}
	for _, seg := range segments {
		var out Segment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = SegmentMoveTo
		case sfnt.SegmentOpLineTo:
			out.Op = SegmentLineTo
		case sfnt.SegmentOpQuadTo:
			out.Op = SegmentQuadTo
		case sfnt.SegmentOpCubeTo:
			out.Op = SegmentCubicTo
		}
		for i := range out.Points {
			out.Points[i] = fixedToPoint(seg.Args[i])
		}
		g.Segments = append(g.Segments, out)
	}

	// No hinting for outline extraction
	advance, err := f.font.GlyphAdvance(&f.buf, idx, ppem, font.HintingNone)
	if err == nil {
		g.Advance = float64(advance) / 64.0
	}
	return g, nil
}

// fixedToPoint converts a fixed.Point26_6 to a Point.
func fixedToPoint(p fixed.Point26_6) pathmorph.Point {
	return pathmorph.Pt(float64(p.X)/64.0, float64(p.Y)/64.0)
}
