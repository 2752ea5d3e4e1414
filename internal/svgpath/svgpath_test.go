// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package svgpath

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/pathmorph"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want string
	}{
		{"empty", "", ""},
		{"absolute", "M0 0 L10 0 L10 10 Z", "M0 0 L10 0 L10 10 Z"},
		{"relative", "m1 1 l10 0 l0 10 z", "M1 1 L11 1 L11 11 Z"},
		{"implicit lineto", "M0,0 10,0 10,10", "M0 0 L10 0 L10 10"},
		{"relative implicit lineto", "m5 5 1 0 0 1", "M5 5 L6 5 L6 6"},
		{"horizontal vertical", "M0 0 H10 V5 h-5 v5", "M0 0 L10 0 L10 5 L5 5 L5 10"},
		{"cubic", "M0 0 C1 2 3 4 5 6", "M0 0 C1 2 3 4 5 6"},
		{"smooth cubic", "M0 0 C0 10 10 10 10 0 S20 -10 20 0", "M0 0 C0 10 10 10 10 0 C10 -10 20 -10 20 0"},
		{"quad", "M0 0 q5 10 10 0", "M0 0 Q5 10 10 0"},
		{"smooth quad", "M0 0 Q5 10 10 0 T20 0", "M0 0 Q5 10 10 0 Q15 -10 20 0"},
		{"draw after close", "M0 0 L10 0 L10 10 Z L0 10", "M0 0 L10 0 L10 10 Z M0 0 L0 10"},
		{"two sub-paths", "M0 0 L1 0 Z M5 5 L6 5 Z", "M0 0 L1 0 Z M5 5 L6 5 Z"},
		{"compact numbers", "M.5-.5L1e1 0", "M0.5 -0.5 L10 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.d)
			if err != nil {
				t.Fatalf("Parse(%q) = %v", tt.d, err)
			}
			if got := Format(p.Commands()); got != tt.want {
				t.Errorf("Format(Parse(%q)) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		d    string
		want string
	}{
		{"no command", "10 10", "should start with a command"},
		{"unknown command", "M0 0 X10 10", `unknown command "X"`},
		{"invalid utf-8", "M0 0 \xff1 1", `unknown command "\xff"`},
		{"missing numbers", "M0 0 L10", `numbers should follow command "L"`},
		{"close first", "Z", `command "Z" before the first move`},
		{"line first", "l10 0", `command "l" before the first move`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.d)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.d)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse(%q) error = %q, want it to contain %q", tt.d, err, tt.want)
			}
		})
	}

	if _, err := Parse("M0 0 A5 5 0 0 1 10 0"); !errors.Is(err, ErrArc) {
		t.Errorf("Parse(arc) error = %v, want ErrArc", err)
	}
}

func TestFormatMutated(t *testing.T) {
	p, err := Parse("M0 0 L10 0 L10 10 L0 0")
	if err != nil {
		t.Fatal(err)
	}
	q, err := p.Mutate().ShiftSubPathForward(0, 1).ConvertCommand(0, 1, pathmorph.QuadTo).Build()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := Format(q.Commands()), "M10 0 Q10 5 10 10 L0 0 L10 0"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}
