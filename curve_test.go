// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import (
	"math"
	"testing"
)

const curveTolerance = 1e-9

func pointsNear(a, b Point, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}

func TestLineEval(t *testing.T) {
	l := Line{P0: Pt(0, 0), P1: Pt(10, 20)}
	tests := []struct {
		t    float64
		want Point
	}{
		{0, Pt(0, 0)},
		{0.5, Pt(5, 10)},
		{1, Pt(10, 20)},
	}
	for _, tt := range tests {
		if got := l.Eval(tt.t); !pointsNear(got, tt.want, curveTolerance) {
			t.Errorf("Eval(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestSubsegmentMatchesEval(t *testing.T) {
	q := QuadBez{P0: Pt(0, 0), P1: Pt(50, 100), P2: Pt(100, 0)}
	c := CubicBez{P0: Pt(0, 0), P1: Pt(30, 100), P2: Pt(70, -50), P3: Pt(100, 0)}

	t0, t1 := 0.2, 0.7
	qs := q.Subsegment(t0, t1)
	cs := c.Subsegment(t0, t1)
	for _, u := range []float64{0, 0.25, 0.5, 0.75, 1} {
		want := q.Eval(t0 + (t1-t0)*u)
		if got := qs.Eval(u); !pointsNear(got, want, 1e-9) {
			t.Errorf("quad subsegment Eval(%v) = %v, want %v", u, got, want)
		}
		want = c.Eval(t0 + (t1-t0)*u)
		if got := cs.Eval(u); !pointsNear(got, want, 1e-9) {
			t.Errorf("cubic subsegment Eval(%v) = %v, want %v", u, got, want)
		}
	}
}

func TestRaiseKeepsShape(t *testing.T) {
	l := Line{P0: Pt(0, 0), P1: Pt(9, 3)}
	q := QuadBez{P0: Pt(0, 0), P1: Pt(5, 10), P2: Pt(10, 0)}
	lq := l.Raise()
	lc := l.RaiseCubic()
	qc := q.Raise()

	for _, u := range []float64{0, 0.1, 0.5, 0.9, 1} {
		if got, want := lq.Eval(u), l.Eval(u); !pointsNear(got, want, curveTolerance) {
			t.Errorf("Line.Raise().Eval(%v) = %v, want %v", u, got, want)
		}
		if got, want := lc.Eval(u), l.Eval(u); !pointsNear(got, want, curveTolerance) {
			t.Errorf("Line.RaiseCubic().Eval(%v) = %v, want %v", u, got, want)
		}
		if got, want := qc.Eval(u), q.Eval(u); !pointsNear(got, want, curveTolerance) {
			t.Errorf("QuadBez.Raise().Eval(%v) = %v, want %v", u, got, want)
		}
	}
}

func TestLowerInvertsRaise(t *testing.T) {
	q := QuadBez{P0: Pt(1, 2), P1: Pt(7, 11), P2: Pt(13, -4)}
	got := q.Raise().Lower()
	if !pointsNear(got.P1, q.P1, curveTolerance) {
		t.Errorf("Raise().Lower() control = %v, want %v", got.P1, q.P1)
	}
	if got.P0 != q.P0 || got.P2 != q.P2 {
		t.Errorf("Raise().Lower() end points = %v %v, want %v %v", got.P0, got.P2, q.P0, q.P2)
	}
}

func TestArcLengths(t *testing.T) {
	l := Line{P0: Pt(0, 0), P1: Pt(3, 4)}
	lengths := arcLengths(l)
	if len(lengths) != arcSamples+1 {
		t.Fatalf("len(arcLengths) = %d, want %d", len(lengths), arcSamples+1)
	}
	if math.Abs(lengths[arcSamples]-5) > curveTolerance {
		t.Errorf("total length = %v, want 5", lengths[arcSamples])
	}
}

func TestParamAtFraction(t *testing.T) {
	tests := []struct {
		name  string
		curve evaluator
		frac  float64
		want  float64
	}{
		{"line half", Line{P0: Pt(0, 0), P1: Pt(10, 0)}, 0.5, 0.5},
		{"line quarter", Line{P0: Pt(0, 0), P1: Pt(10, 0)}, 0.25, 0.25},
		{"degenerate", Line{P0: Pt(1, 1), P1: Pt(1, 1)}, 0.3, 0.3},
		{"symmetric quad", QuadBez{P0: Pt(0, 0), P1: Pt(5, 10), P2: Pt(10, 0)}, 0.5, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := paramAtFraction(tt.curve, tt.frac); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("paramAtFraction = %v, want %v", got, tt.want)
			}
		})
	}
}
