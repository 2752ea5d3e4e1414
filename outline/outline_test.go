// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package outline

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/gogpu/pathmorph"
	"golang.org/x/image/font/gofont/goregular"
)

var parsers = []struct {
	name   string
	parser Parser
}{
	{"sfnt", SFNTParser{}},
	{"gotext", GoTextParser{}},
}

func parseGoRegular(t *testing.T, p Parser) Font {
	t.Helper()
	f, err := p.Parse(goregular.TTF)
	if err != nil {
		t.Fatalf("Parse(goregular) = %v", err)
	}
	return f
}

func TestParseFont(t *testing.T) {
	for _, tt := range parsers {
		t.Run(tt.name, func(t *testing.T) {
			f := parseGoRegular(t, tt.parser)
			if got := f.Name(); got != "Go" {
				t.Errorf("Name() = %q, want Go", got)
			}
			if got := f.UnitsPerEm(); got != 2048 {
				t.Errorf("UnitsPerEm() = %d, want 2048", got)
			}
		})
	}
}

func TestParseInvalidFont(t *testing.T) {
	for _, tt := range parsers {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.parser.Parse([]byte("not a font")); err == nil {
				t.Error("Parse(garbage) should fail")
			}
		})
	}
}

func TestFromGlyphContours(t *testing.T) {
	tests := []struct {
		r        rune
		contours int
	}{
		{'O', 2},
		{'l', 1},
		{'B', 3},
	}
	for _, pt := range parsers {
		f := parseGoRegular(t, pt.parser)
		for _, tt := range tests {
			p, err := FromGlyph(f, tt.r, 64)
			if err != nil {
				t.Fatalf("%s: FromGlyph(%q) = %v", pt.name, tt.r, err)
			}
			if got := p.NumSubPaths(); got != tt.contours {
				t.Errorf("%s: %q has %d sub-paths, want %d", pt.name, tt.r, got, tt.contours)
			}
			for i, sub := range p.SubPaths() {
				if last := sub[len(sub)-1]; last.Type() != pathmorph.Close {
					t.Errorf("%s: %q contour %d ends with %v, want close", pt.name, tt.r, i, last.Type())
				}
			}
		}
	}
}

func TestGlyphYDown(t *testing.T) {
	for _, pt := range parsers {
		f := parseGoRegular(t, pt.parser)
		g, err := f.Glyph('T', 64)
		if err != nil {
			t.Fatalf("%s: Glyph('T') = %v", pt.name, err)
		}
		if g.IsEmpty() {
			t.Fatalf("%s: Glyph('T') is empty", pt.name)
		}
		minY := math.Inf(1)
		for _, s := range g.Segments {
			minY = math.Min(minY, s.Points[0].Y)
		}
		// Cap height of Go Regular is well above a quarter em.
		if minY > -16 {
			t.Errorf("%s: top of 'T' at y=%v, want above the baseline", pt.name, minY)
		}
		if g.Advance <= 0 || g.Advance > 64 {
			t.Errorf("%s: advance = %v, want in (0, 64]", pt.name, g.Advance)
		}
	}
}

func TestParsersAgree(t *testing.T) {
	a, err := FromGlyph(parseGoRegular(t, SFNTParser{}), 'O', 128)
	if err != nil {
		t.Fatal(err)
	}
	b, err := FromGlyph(parseGoRegular(t, GoTextParser{}), 'O', 128)
	if err != nil {
		t.Fatal(err)
	}
	areaA, areaB := math.Abs(a.Area()), math.Abs(b.Area())
	if areaA == 0 || math.Abs(areaA-areaB)/areaA > 0.02 {
		t.Errorf("areas differ: sfnt %v, gotext %v", areaA, areaB)
	}
}

func TestMissingGlyph(t *testing.T) {
	for _, pt := range parsers {
		f := parseGoRegular(t, pt.parser)
		if _, err := f.Glyph('\U0001F600', 64); !errors.Is(err, ErrNoGlyph) {
			t.Errorf("%s: Glyph(emoji) error = %v, want ErrNoGlyph", pt.name, err)
		}
	}
}

func TestText(t *testing.T) {
	f := parseGoRegular(t, SFNTParser{})
	p, err := Text(f, "OB", 64)
	if err != nil {
		t.Fatalf("Text() = %v", err)
	}
	if got := p.NumSubPaths(); got != 5 {
		t.Errorf("Text(OB) has %d sub-paths, want 5", got)
	}

	// The second glyph is placed after the first one's advance.
	o, _ := f.Glyph('O', 64)
	subs := p.SubPaths()
	if x := subs[2][0].End().X; x < o.Advance-1 {
		t.Errorf("B starts at x=%v, want at or after %v", x, o.Advance)
	}

	skipped, err := Text(f, "O\U0001F600", 64)
	if err != nil {
		t.Fatalf("Text() with missing glyph = %v", err)
	}
	if got := skipped.NumSubPaths(); got != 2 {
		t.Errorf("missing glyphs should be skipped, got %d sub-paths", got)
	}
}

func TestVisualOrder(t *testing.T) {
	if got := string(visualOrder("abc")); got != "abc" {
		t.Errorf("visualOrder(abc) = %q", got)
	}
	in := "אבג"
	got := visualOrder(in)
	if len(got) != 3 {
		t.Fatalf("visualOrder(hebrew) = %q", string(got))
	}
	sorted := slices.Clone(got)
	slices.Sort(sorted)
	if string(sorted) != in {
		t.Errorf("visualOrder(hebrew) lost runes: %q", string(got))
	}
}

// countingFont records how often each glyph is loaded.
type countingFont struct {
	Font
	loads int
}

func (f *countingFont) Glyph(r rune, size float64) (Glyph, error) {
	f.loads++
	return f.Font.Glyph(r, size)
}

func TestCached(t *testing.T) {
	inner := &countingFont{Font: parseGoRegular(t, SFNTParser{})}
	f := Cached(inner, 0)

	for range 3 {
		if _, err := f.Glyph('O', 64); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := f.Glyph('O', 32); err != nil {
		t.Fatal(err)
	}
	if inner.loads != 2 {
		t.Errorf("inner font loaded %d glyphs, want 2", inner.loads)
	}

	// Errors are not cached.
	for range 2 {
		if _, err := f.Glyph('\U0001F600', 64); !errors.Is(err, ErrNoGlyph) {
			t.Errorf("Glyph(emoji) error = %v, want ErrNoGlyph", err)
		}
	}
	if inner.loads != 4 {
		t.Errorf("inner font loaded %d glyphs, want 4", inner.loads)
	}
	if f.Name() != "Go" {
		t.Errorf("Name() = %q, want Go", f.Name())
	}
}
