// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import (
	"errors"
	"math"
	"testing"
)

func mustCommand(t *testing.T, typ CommandType, pts ...Point) Command {
	t.Helper()
	c, err := NewCommand(typ, pts...)
	if err != nil {
		t.Fatalf("NewCommand(%v) = %v", typ, err)
	}
	return c
}

func TestNewCommand(t *testing.T) {
	tests := []struct {
		name    string
		typ     CommandType
		pts     []Point
		wantErr bool
	}{
		{"move end only", MoveTo, []Point{Pt(1, 2)}, false},
		{"line", LineTo, []Point{Pt(0, 0), Pt(1, 2)}, false},
		{"quad", QuadTo, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}, false},
		{"cubic", CubicTo, []Point{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}, false},
		{"cubic missing point", CubicTo, []Point{Pt(0, 0), Pt(1, 1), Pt(3, 0)}, true},
		{"unknown type", CommandType(9), []Point{Pt(0, 0), Pt(1, 1)}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCommand(tt.typ, tt.pts...)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPath) {
					t.Errorf("NewCommand() error = %v, want ErrInvalidPath", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewCommand() = %v", err)
			}
			if got, want := c.End(), tt.pts[len(tt.pts)-1]; got != want {
				t.Errorf("End() = %v, want %v", got, want)
			}
		})
	}
}

func TestNewPathValidation(t *testing.T) {
	move := mustCommand(t, MoveTo, Pt(0, 0))
	line := mustCommand(t, LineTo, Pt(0, 0), Pt(10, 0))
	closeCmd := mustCommand(t, Close, Pt(10, 0), Pt(0, 0))

	tests := []struct {
		name string
		cmds []Command
	}{
		{"starts with line", []Command{line}},
		{"line after close", []Command{move, line, closeCmd, line}},
		{"malformed", []Command{move, {typ: QuadTo, points: []Point{{}, {}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewPath(tt.cmds); !errors.Is(err, ErrInvalidPath) {
				t.Errorf("NewPath() error = %v, want ErrInvalidPath", err)
			}
		})
	}
}

func TestNewPathNormalizes(t *testing.T) {
	p, err := NewPath([]Command{
		mustCommand(t, MoveTo, Pt(0, 0)),
		mustCommand(t, LineTo, Pt(99, 99), Pt(10, 0)), // start is rewritten
		mustCommand(t, LineTo, Pt(0, 0), Pt(10, 10)),
		mustCommand(t, Close, Pt(0, 0), Pt(42, 42)), // end is rewritten
	})
	if err != nil {
		t.Fatalf("NewPath() = %v", err)
	}
	cmds := p.Commands()
	if _, ok := cmds[0].Start(); ok {
		t.Error("first move should have no start")
	}
	if s, _ := cmds[1].Start(); s != Pt(0, 0) {
		t.Errorf("line start = %v, want 0,0", s)
	}
	if s, _ := cmds[2].Start(); s != Pt(10, 0) {
		t.Errorf("second line start = %v, want 10,0", s)
	}
	if e := cmds[3].End(); e != Pt(0, 0) {
		t.Errorf("close end = %v, want 0,0", e)
	}
	for i, c := range cmds {
		if c.ID() != ID(i+1) {
			t.Errorf("command %d id = %d, want %d", i, c.ID(), i+1)
		}
	}
	if p.State().NextID() != 5 {
		t.Errorf("NextID() = %d, want 5", p.State().NextID())
	}
}

func TestPathBuilder(t *testing.T) {
	p := BuildPath().Rect(0, 0, 10, 10).MoveTo(20, 20).LineTo(30, 20).Build()
	if got, want := p.String(), "M0 0 L10 0 L10 10 L0 10 Z M20 20 L30 20"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := p.NumSubPaths(); got != 2 {
		t.Fatalf("NumSubPaths() = %d, want 2", got)
	}
	subs := p.SubPaths()
	if len(subs[0]) != 5 || len(subs[1]) != 2 {
		t.Errorf("sub-path lengths = %d, %d, want 5, 2", len(subs[0]), len(subs[1]))
	}
	// The second move starts where the first sub-path ends.
	if s, ok := subs[1][0].Start(); !ok || s != Pt(0, 0) {
		t.Errorf("second move start = %v (%v), want 0,0", s, ok)
	}
	if p.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
	if !BuildPath().Build().IsEmpty() {
		t.Error("empty builder should build an empty path")
	}
}

func TestPathBuilderShapes(t *testing.T) {
	star := BuildPath().Star(0, 0, 10, 4, 6).Build()
	cmds := star.Commands()
	if len(cmds) != 13 || cmds[12].Type() != Close {
		t.Fatalf("star has %d commands, want 12 corners and a close", len(cmds))
	}
	for i, c := range cmds[:12] {
		want := 10.0
		if i%2 == 1 {
			want = 4
		}
		if r := c.End().Length(); math.Abs(r-want) > 1e-9 {
			t.Errorf("corner %d at radius %v, want %v", i, r, want)
		}
	}
	if top := cmds[0].End(); !top.Equals(Pt(0, -10)) {
		t.Errorf("first corner = %v, want 0,-10", top)
	}

	if !BuildPath().Polygon(0, 0, 10, 2).Build().IsEmpty() {
		t.Error("polygon with two sides should add nothing")
	}
	if !BuildPath().Star(0, 0, 10, 5, 2).Build().IsEmpty() {
		t.Error("star with two points should add nothing")
	}
}

func TestPathString(t *testing.T) {
	p := BuildPath().MoveTo(0, 0).QuadTo(5, 10, 10, 0).CubicTo(12, 1, 14, 1, 16, 0).Close().Build()
	want := "M0 0 Q5 10 10 0 C12 1 14 1 16 0 Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPathArea(t *testing.T) {
	tests := []struct {
		name string
		path *Path
		want float64
		tol  float64
	}{
		{"square", BuildPath().Rect(0, 0, 10, 10).Build(), 100, 1e-9},
		{"open triangle", BuildPath().MoveTo(0, 0).LineTo(10, 0).LineTo(10, 10).Build(), 50, 1e-9},
		{"two squares", BuildPath().Rect(0, 0, 10, 10).Rect(20, 0, 5, 5).Build(), 125, 1e-9},
		{"circle", BuildPath().Circle(0, 0, 10).Build(), math.Pi * 100, 0.5},
		{"quad", BuildPath().MoveTo(0, 0).QuadTo(5, 10, 10, 0).Close().Build(), -100.0 / 3.0, 1e-9},
		{"ellipse", BuildPath().Ellipse(0, 0, 10, 5).Build(), math.Pi * 50, 0.25},
		{"square polygon", BuildPath().Polygon(0, 0, 10, 4).Build(), 200, 1e-9},
		{"hexagon", BuildPath().Polygon(0, 0, 10, 6).Build(), 1.5 * math.Sqrt(3) * 100, 1e-9},
		{"star", BuildPath().Star(0, 0, 10, 5, 5).Build(), 250 * math.Sin(math.Pi/5), 1e-9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.Area(); math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathContains(t *testing.T) {
	p := BuildPath().Rect(0, 0, 10, 10).Build()
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(15, 5), false},
		{Pt(-1, -1), false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
		}
	}
}

func TestPathLength(t *testing.T) {
	p := BuildPath().Rect(0, 0, 10, 10).Build()
	if got := p.Length(); math.Abs(got-40) > 1e-9 {
		t.Errorf("Length() = %v, want 40", got)
	}
}
