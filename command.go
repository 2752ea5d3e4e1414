// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import (
	"fmt"
	"strings"
)

// ID is a stable identifier for commands and split segments. IDs are
// drawn from a per-document counter carried by PathState; zero means
// "no id".
type ID uint64

// CommandType is the type tag of a drawing command.
type CommandType uint8

const (
	// MoveTo starts a new sub-path without drawing.
	MoveTo CommandType = iota

	// LineTo draws a straight line to the end point.
	LineTo

	// QuadTo draws a quadratic Bezier curve.
	QuadTo

	// CubicTo draws a cubic Bezier curve.
	CubicTo

	// Close draws a straight line back to the start of the sub-path.
	Close
)

// String returns the SVG path letter for the command type.
func (t CommandType) String() string {
	switch t {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case QuadTo:
		return "Q"
	case CubicTo:
		return "C"
	case Close:
		return "Z"
	default:
		return "?"
	}
}

// numPoints returns the number of points a command of this type holds,
// including its start point.
func (t CommandType) numPoints() int {
	switch t {
	case QuadTo:
		return 3
	case CubicTo:
		return 4
	default:
		return 2
	}
}

// Command is an immutable drawing instruction. Its points run from the
// start point (which may be absent for the very first move of a path)
// through any control points to the end point.
type Command struct {
	id             ID
	typ            CommandType
	points         []Point
	hasStart       bool
	isSplitPoint   bool
	isSplitSegment bool
}

// NewCommand creates a command of the given type. points must hold the
// start point, the control points and the end point in order. A MoveTo
// may be given its end point alone, in which case it has no start.
//
// Commands created this way have no id; NewPath assigns ids when the
// commands become part of a path.
func NewCommand(typ CommandType, points ...Point) (Command, error) {
	if typ > Close {
		return Command{}, fmt.Errorf("%w: unknown command type %d", ErrInvalidPath, typ)
	}
	want := typ.numPoints()
	if typ == MoveTo && len(points) == 1 {
		return Command{typ: MoveTo, points: []Point{{}, points[0]}}, nil
	}
	if len(points) != want {
		return Command{}, fmt.Errorf("%w: %v command needs %d points, got %d",
			ErrInvalidPath, typ, want, len(points))
	}
	pts := make([]Point, want)
	copy(pts, points)
	return Command{typ: typ, points: pts, hasStart: true}, nil
}

// ID returns the command's stable id.
func (c Command) ID() ID {
	return c.id
}

// Type returns the command's type tag.
func (c Command) Type() CommandType {
	return c.typ
}

// Start returns the command's start point. ok is false for the first
// move of a path, which has no predecessor.
func (c Command) Start() (p Point, ok bool) {
	return c.points[0], c.hasStart
}

// End returns the command's end point.
func (c Command) End() Point {
	return c.points[len(c.points)-1]
}

// Points returns a copy of the command's points, start point first.
func (c Command) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)
	return out
}

// Controls returns the control points between start and end.
func (c Command) Controls() []Point {
	if len(c.points) <= 2 {
		return nil
	}
	out := make([]Point, len(c.points)-2)
	copy(out, c.points[1:len(c.points)-1])
	return out
}

// IsSplitPoint reports whether the command's end point was produced by
// splitting an authored command.
func (c Command) IsSplitPoint() bool {
	return c.isSplitPoint
}

// IsSplitSegment reports whether the command is a synthetic segment
// inserted to close a filled sub-path split.
func (c Command) IsSplitSegment() bool {
	return c.isSplitSegment
}

// String returns the command in SVG path notation.
func (c Command) String() string {
	if c.typ == Close {
		return "Z"
	}
	var sb strings.Builder
	sb.WriteString(c.typ.String())
	for i, p := range c.points[1:] {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%g %g", p.X, p.Y)
	}
	return sb.String()
}

// withStartEnd returns a copy with the start and end points replaced.
func (c Command) withStartEnd(start, end Point) Command {
	pts := make([]Point, len(c.points))
	copy(pts, c.points)
	pts[0] = start
	pts[len(pts)-1] = end
	c.points = pts
	c.hasStart = true
	return c
}

// withStart returns a copy with the start point replaced.
func (c Command) withStart(start Point) Command {
	return c.withStartEnd(start, c.End())
}

// withoutStart returns a copy whose start point is absent.
func (c Command) withoutStart() Command {
	c = c.withStartEnd(Point{}, c.End())
	c.hasStart = false
	return c
}

// transformed returns a copy with every point mapped through m.
func (c Command) transformed(m Matrix) Command {
	if m.IsIdentity() {
		return c
	}
	pts := make([]Point, len(c.points))
	for i, p := range c.points {
		pts[i] = m.TransformPoint(p)
	}
	if !c.hasStart {
		pts[0] = Point{}
	}
	c.points = pts
	return c
}

// reversed returns the command traversed from end to start. A Close is
// returned as the equivalent LineTo.
func (c Command) reversed() Command {
	pts := make([]Point, len(c.points))
	for i, p := range c.points {
		pts[len(pts)-1-i] = p
	}
	c.points = pts
	c.hasStart = true
	if c.typ == Close {
		c.typ = LineTo
	}
	return c
}

// subsegment returns the geometry of the command between parameters t0
// and t1 as a point list in the command's own type.
func (c Command) subsegment(t0, t1 float64) []Point {
	p := c.points
	switch c.typ {
	case MoveTo:
		return []Point{p[0], p[1]}
	case QuadTo:
		q := QuadBez{P0: p[0], P1: p[1], P2: p[2]}.Subsegment(t0, t1)
		return []Point{q.P0, q.P1, q.P2}
	case CubicTo:
		cb := CubicBez{P0: p[0], P1: p[1], P2: p[2], P3: p[3]}.Subsegment(t0, t1)
		return []Point{cb.P0, cb.P1, cb.P2, cb.P3}
	default:
		l := Line{P0: p[0], P1: p[1]}.Subsegment(t0, t1)
		return []Point{l.P0, l.P1}
	}
}

// curve returns the command geometry between t0 and t1 as an evaluator,
// used for arc length measurement.
func (c Command) curve(t0, t1 float64) evaluator {
	pts := c.subsegment(t0, t1)
	switch len(pts) {
	case 3:
		return QuadBez{P0: pts[0], P1: pts[1], P2: pts[2]}
	case 4:
		return CubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}
	default:
		return Line{P0: pts[0], P1: pts[1]}
	}
}

// convertPoints rewrites the geometry pts of a command of type from into
// the geometry of a command of type to, holding start and end fixed.
func convertPoints(pts []Point, from, to CommandType) []Point {
	if from == to || (from.numPoints() == to.numPoints() && to != QuadTo && to != CubicTo) {
		return pts
	}
	start, end := pts[0], pts[len(pts)-1]
	switch to {
	case QuadTo:
		switch from {
		case CubicTo:
			q := CubicBez{P0: pts[0], P1: pts[1], P2: pts[2], P3: pts[3]}.Lower()
			return []Point{q.P0, q.P1, q.P2}
		default:
			q := Line{P0: start, P1: end}.Raise()
			return []Point{q.P0, q.P1, q.P2}
		}
	case CubicTo:
		switch from {
		case QuadTo:
			cb := QuadBez{P0: pts[0], P1: pts[1], P2: pts[2]}.Raise()
			return []Point{cb.P0, cb.P1, cb.P2, cb.P3}
		default:
			cb := Line{P0: start, P1: end}.RaiseCubic()
			return []Point{cb.P0, cb.P1, cb.P2, cb.P3}
		}
	default:
		return []Point{start, end}
	}
}
