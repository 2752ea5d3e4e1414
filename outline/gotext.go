// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/gogpu/pathmorph"
)

// GoTextParser implements Parser using go-text/typesetting.
type GoTextParser struct{}

// Parse implements Parser.Parse.
func (GoTextParser) Parse(data []byte) (Font, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("outline: failed to parse font: %w", err)
	}
	return &goTextFont{face: face}, nil
}

// goTextFont implements Font using a go-text font.Face.
// font.Face is not safe for concurrent use.
type goTextFont struct {
	face *font.Face
}

// Name implements Font.Name.
func (f *goTextFont) Name() string {
	return f.face.Describe().Family
}

// UnitsPerEm implements Font.UnitsPerEm.
func (f *goTextFont) UnitsPerEm() int {
	return int(f.face.Upem())
}

// Glyph implements Font.Glyph. go-text outlines are in font units with
// y pointing up, so they are scaled and flipped.
func (f *goTextFont) Glyph(r rune, size float64) (Glyph, error) {
	gid, ok := f.face.Cmap.Lookup(r)
	if !ok || gid == 0 {
		return Glyph{}, fmt.Errorf("%w: %q", ErrNoGlyph, r)
	}
	data, ok := f.face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", ErrNoOutline, r)
	}

	sc := size / float64(f.face.Upem())
	g := Glyph{
		Rune:     r,
		Segments: make([]Segment, 0, len(data.Segments)),
		Advance:  float64(f.face.HorizontalAdvance(gid)) * sc,
	}
	for _, s := range data.Segments {
		var out Segment
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			out.Op = SegmentMoveTo
		case opentype.SegmentOpLineTo:
			out.Op = SegmentLineTo
		case opentype.SegmentOpQuadTo:
			out.Op = SegmentQuadTo
		case opentype.SegmentOpCubeTo:
			out.Op = SegmentCubicTo
		}
		for i, a := range s.Args {
			out.Points[i] = pathmorph.Pt(float64(a.X)*sc, -float64(a.Y)*sc)
		}
		g.Segments = append(g.Segments, out)
	}
	return g, nil
}
