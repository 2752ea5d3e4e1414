// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

// Curve types backing the geometry of a single drawing command.
// Based on kurbo patterns, adapted for Go idioms.

// arcSamples is the number of chords used to approximate curve arc length.
const arcSamples = 64

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t (0 to 1).
// t=0 returns P0, t=1 returns P1.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Subsegment returns the portion of the line from t0 to t1.
func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{
		P0: l.Eval(t0),
		P1: l.Eval(t1),
	}
}

// Raise returns the line as a quadratic Bezier with its control point
// at the midpoint.
func (l Line) Raise() QuadBez {
	return QuadBez{P0: l.P0, P1: l.Eval(0.5), P2: l.P1}
}

// RaiseCubic returns the line as a cubic Bezier with control points at
// one and two thirds of its length.
func (l Line) RaiseCubic() CubicBez {
	return CubicBez{P0: l.P0, P1: l.Eval(1.0 / 3.0), P2: l.Eval(2.0 / 3.0), P3: l.P1}
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	// (1-t)^2 * P0 + 2(1-t)t * P1 + t^2 * P2
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)

	// The control point lies along the tangent at t0, scaled to the
	// length of the parameter interval.
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dt := t1 - t0

	tanDir := Point{
		X: d0.X + t0*(d1.X-d0.X),
		Y: d0.Y + t0*(d1.Y-d0.Y),
	}
	p1 := Point{
		X: p0.X + dt*tanDir.X,
		Y: p0.Y + dt*tanDir.Y,
	}

	return QuadBez{P0: p0, P1: p1, P2: p2}
}

// Raise elevates the quadratic to a cubic Bezier curve.
// Returns an exact cubic representation of this quadratic.
func (q QuadBez) Raise() CubicBez {
	// C1 = P0 + 2/3 * (P1 - P0), C2 = P2 + 2/3 * (P1 - P2)
	return CubicBez{
		P0: q.P0,
		P1: Point{
			X: q.P0.X + (2.0/3.0)*(q.P1.X-q.P0.X),
			Y: q.P0.Y + (2.0/3.0)*(q.P1.Y-q.P0.Y),
		},
		P2: Point{
			X: q.P2.X + (2.0/3.0)*(q.P1.X-q.P2.X),
			Y: q.P2.Y + (2.0/3.0)*(q.P1.Y-q.P2.Y),
		},
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Subsegment returns the portion of the curve from t0 to t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)

	// The derivative at t is: 3[(P1-P0)(1-t)^2 + 2(P2-P1)(1-t)t + (P3-P2)t^2]
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	scale := (t1 - t0) / 3.0

	mt0 := 1.0 - t0
	deriv0 := Point{
		X: 3 * (d0.X*mt0*mt0 + 2*d1.X*mt0*t0 + d2.X*t0*t0),
		Y: 3 * (d0.Y*mt0*mt0 + 2*d1.Y*mt0*t0 + d2.Y*t0*t0),
	}
	p1 := Point{
		X: p0.X + scale*deriv0.X,
		Y: p0.Y + scale*deriv0.Y,
	}

	mt1 := 1.0 - t1
	deriv1 := Point{
		X: 3 * (d0.X*mt1*mt1 + 2*d1.X*mt1*t1 + d2.X*t1*t1),
		Y: 3 * (d0.Y*mt1*mt1 + 2*d1.Y*mt1*t1 + d2.Y*t1*t1),
	}
	p2 := Point{
		X: p3.X - scale*deriv1.X,
		Y: p3.Y - scale*deriv1.Y,
	}

	return CubicBez{P0: p0, P1: p1, P2: p2, P3: p3}
}

// Lower approximates the cubic with a single quadratic sharing its end
// points. The control point is the average of the two candidate
// quadratic controls implied by each end tangent.
func (c CubicBez) Lower() QuadBez {
	ctrl := c.P1.Add(c.P2).Mul(3).Sub(c.P0).Sub(c.P3).Mul(0.25)
	return QuadBez{P0: c.P0, P1: ctrl, P2: c.P3}
}

// evaluator is implemented by every curve type in this file.
type evaluator interface {
	Eval(t float64) Point
}

// arcLengths returns cumulative chord lengths of curve sampled at
// arcSamples+1 evenly spaced parameter values.
func arcLengths(curve evaluator) []float64 {
	lengths := make([]float64, arcSamples+1)
	prev := curve.Eval(0)
	for i := 1; i <= arcSamples; i++ {
		p := curve.Eval(float64(i) / arcSamples)
		lengths[i] = lengths[i-1] + prev.Distance(p)
		prev = p
	}
	return lengths
}

// paramAtFraction returns the parameter at which the arc length of curve
// reaches frac of its total length.
func paramAtFraction(curve evaluator, frac float64) float64 {
	lengths := arcLengths(curve)
	total := lengths[arcSamples]
	if total == 0 {
		return frac
	}
	target := total * frac
	for i := 1; i <= arcSamples; i++ {
		if lengths[i] >= target {
			span := lengths[i] - lengths[i-1]
			local := 0.0
			if span > 0 {
				local = (target - lengths[i-1]) / span
			}
			return (float64(i-1) + local) / arcSamples
		}
	}
	return 1
}
