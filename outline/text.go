// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"errors"
	"slices"

	"github.com/gogpu/pathmorph"
	"golang.org/x/text/unicode/bidi"
)

// Text lays out s on a single baseline starting at the origin and returns
// the outlines of its glyphs as one authored path. Runs are placed in
// visual order, so right-to-left text reads correctly. Runes the font
// has no outline for are skipped.
func Text(f Font, s string, size float64) (*pathmorph.Path, error) {
	b := pathmorph.BuildPath()
	var x float64
	for _, r := range visualOrder(s) {
		g, err := f.Glyph(r, size)
		if errors.Is(err, ErrNoGlyph) || errors.Is(err, ErrNoOutline) {
			pathmorph.Logger().Warn("outline: glyph skipped", "rune", string(r), "err", err)
			continue
		}
		if err != nil {
			return nil, err
		}
		g.appendTo(b, pathmorph.Pt(x, 0))
		x += g.Advance
	}
	return b.Build(), nil
}

// visualOrder returns the runes of s in display order.
func visualOrder(s string) []rune {
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return []rune(s)
	}
	ordering, err := p.Order()
	if err != nil {
		return []rune(s)
	}
	out := make([]rune, 0, len(s))
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		runes := []rune(run.String())
		if run.Direction() == bidi.RightToLeft {
			slices.Reverse(runes)
		}
		out = append(out, runes...)
	}
	return out
}
