// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"slices"

	"github.com/gogpu/pathmorph/internal/cache"
)

// DefaultCacheSize is the number of glyph outlines kept by Cached when
// no capacity is given.
const DefaultCacheSize = 256

// glyphKey identifies a scaled glyph outline.
type glyphKey struct {
	r    rune
	size float64
}

// cachedFont wraps a Font and remembers scaled glyph outlines.
type cachedFont struct {
	Font
	glyphs *cache.Cache[glyphKey, Glyph]
}

// Cached returns a Font that caches the outlines produced by f, keeping
// at most capacity glyphs (DefaultCacheSize if capacity <= 0). Lookup
// errors are not cached. The returned font is safe for concurrent use
// and serializes calls into f.
func Cached(f Font, capacity int) Font {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &cachedFont{Font: f, glyphs: cache.New[glyphKey, Glyph](capacity)}
}

// Glyph implements Font.Glyph.
func (f *cachedFont) Glyph(r rune, size float64) (Glyph, error) {
	g, err := f.glyphs.GetOrCreate(glyphKey{r: r, size: size}, func() (Glyph, error) {
		return f.Font.Glyph(r, size)
	})
	if err != nil {
		return Glyph{}, err
	}
	g.Segments = slices.Clone(g.Segments)
	return g, nil
}
