// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/gogpu/pathmorph"
	"github.com/gogpu/pathmorph/internal/svgpath"
	"github.com/gogpu/pathmorph/outline"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"
)

// sourceFlags selects where the input path comes from.
type sourceFlags struct {
	data     string
	glyph    string
	text     string
	fontFile string
	parser   string
	size     float64
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.data, "d", "", "SVG path data")
	cmd.Flags().StringVar(&f.glyph, "glyph", "", "single character whose outline is the input path")
	cmd.Flags().StringVar(&f.text, "text", "", "string whose outlines form the input path")
	f.registerFont(cmd)
}

func (f *sourceFlags) registerFont(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.fontFile, "font", "", "TTF/OTF font file (default: Go Regular)")
	cmd.Flags().StringVar(&f.parser, "parser", "sfnt", "font parser backend (sfnt, gotext)")
	cmd.Flags().Float64Var(&f.size, "size", 64, "font size in pixels per em")
}

// loadFont parses the selected font with the selected backend.
func (f *sourceFlags) loadFont() (outline.Font, error) {
	data := goregular.TTF
	if f.fontFile != "" {
		b, err := os.ReadFile(f.fontFile)
		if err != nil {
			return nil, err
		}
		data = b
	}
	var parser outline.Parser
	switch f.parser {
	case "sfnt":
		parser = outline.SFNTParser{}
	case "gotext":
		parser = outline.GoTextParser{}
	default:
		return nil, fmt.Errorf("unknown parser %q", f.parser)
	}
	fnt, err := parser.Parse(data)
	if err != nil {
		return nil, err
	}
	return outline.Cached(fnt, 0), nil
}

// glyphPath returns the outline of the single character s.
func (f *sourceFlags) glyphPath(s string) (*pathmorph.Path, error) {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) {
		return nil, fmt.Errorf("glyph must be a single character, got %q", s)
	}
	fnt, err := f.loadFont()
	if err != nil {
		return nil, err
	}
	return outline.FromGlyph(fnt, r, f.size)
}

// load returns the input path.
func (f *sourceFlags) load() (*pathmorph.Path, error) {
	switch {
	case f.data != "":
		return svgpath.Parse(f.data)
	case f.glyph != "":
		return f.glyphPath(f.glyph)
	case f.text != "":
		fnt, err := f.loadFont()
		if err != nil {
			return nil, err
		}
		return outline.Text(fnt, f.text, f.size)
	default:
		return nil, errors.New("one of --d, --glyph or --text is required")
	}
}
