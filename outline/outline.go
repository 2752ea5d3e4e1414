// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package outline imports glyph outlines from fonts as authored paths.
//
// Two parsing backends are provided: SFNTParser (golang.org/x/image) and
// GoTextParser (github.com/go-text/typesetting). Both produce outlines in
// y-down coordinates with the origin on the baseline, scaled to the
// requested size in pixels per em.
package outline

import (
	"errors"

	"github.com/gogpu/pathmorph"
)

var (
	// ErrNoGlyph is returned when a font has no glyph for a rune.
	ErrNoGlyph = errors.New("outline: font has no glyph for rune")

	// ErrNoOutline is returned for glyphs stored as bitmaps or color
	// layers instead of vector outlines.
	ErrNoOutline = errors.New("outline: glyph has no vector outline")
)

// Parser parses font data (TTF or OTF) into a Font.
// This abstraction allows swapping the font parsing library.
type Parser interface {
	Parse(data []byte) (Font, error)
}

// Font is a parsed font that can produce glyph outlines.
type Font interface {
	// Name returns the font family name.
	// Returns empty string if not available.
	Name() string

	// UnitsPerEm returns the units per em for the font.
	UnitsPerEm() int

	// Glyph returns the outline of the glyph for r at size pixels per em.
	Glyph(r rune, size float64) (Glyph, error)
}

// SegmentOp is the type of an outline segment.
type SegmentOp uint8

const (
	// SegmentMoveTo starts a new contour.
	SegmentMoveTo SegmentOp = iota

	// SegmentLineTo draws a line to Points[0].
	SegmentLineTo

	// SegmentQuadTo draws a quadratic curve with control Points[0] to Points[1].
	SegmentQuadTo

	// SegmentCubicTo draws a cubic curve with controls Points[0], Points[1]
	// to Points[2].
	SegmentCubicTo
)

// Segment is one segment of a glyph outline.
type Segment struct {
	Op     SegmentOp
	Points [3]pathmorph.Point
}

// Glyph is the scaled vector outline of one glyph.
type Glyph struct {
	Rune     rune
	Segments []Segment
	Advance  float64
}

// IsEmpty returns true if the outline has no segments.
func (g Glyph) IsEmpty() bool {
	return len(g.Segments) == 0
}

// appendTo adds the glyph's contours, offset by origin, to b. Every
// contour is closed.
func (g Glyph) appendTo(b *pathmorph.PathBuilder, origin pathmorph.Point) {
	open := false
	for _, seg := range g.Segments {
		p0 := seg.Points[0].Add(origin)
		switch seg.Op {
		case SegmentMoveTo:
			if open {
				b.Close()
			}
			b.MoveTo(p0.X, p0.Y)
			open = true
		case SegmentLineTo:
			b.LineTo(p0.X, p0.Y)
		case SegmentQuadTo:
			p1 := seg.Points[1].Add(origin)
			b.QuadTo(p0.X, p0.Y, p1.X, p1.Y)
		case SegmentCubicTo:
			p1 := seg.Points[1].Add(origin)
			p2 := seg.Points[2].Add(origin)
			b.CubicTo(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y)
		}
	}
	if open {
		b.Close()
	}
}

// FromGlyph returns the outline of the glyph for r as an authored path.
// Each contour of the glyph becomes one closed sub-path.
func FromGlyph(f Font, r rune, size float64) (*pathmorph.Path, error) {
	g, err := f.Glyph(r, size)
	if err != nil {
		return nil, err
	}
	b := pathmorph.BuildPath()
	g.appendTo(b, pathmorph.Point{})
	return b.Build(), nil
}
