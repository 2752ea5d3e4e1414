// path_builder.go

package pathmorph

import "math"

// PathBuilder provides a fluent interface for authoring a new path.
// All methods return the builder for chaining.
type PathBuilder struct {
	cmds       []Command
	start      Point
	current    Point
	hasCurrent bool
}

// BuildPath starts a new path builder.
func BuildPath() *PathBuilder {
	return &PathBuilder{cmds: make([]Command, 0, 16)}
}

func (b *PathBuilder) add(typ CommandType, pts ...Point) {
	points := make([]Point, 0, len(pts)+1)
	points = append(points, b.current)
	points = append(points, pts...)
	b.cmds = append(b.cmds, Command{typ: typ, points: points, hasStart: len(b.cmds) > 0})
	b.current = pts[len(pts)-1]
}

// MoveTo moves to a new position, starting a new sub-path.
func (b *PathBuilder) MoveTo(x, y float64) *PathBuilder {
	pt := Pt(x, y)
	b.add(MoveTo, pt)
	b.start = pt
	b.hasCurrent = true
	return b
}

// LineTo draws a line to a position. Without a current point it acts as
// MoveTo.
func (b *PathBuilder) LineTo(x, y float64) *PathBuilder {
	if !b.hasCurrent {
		return b.MoveTo(x, y)
	}
	b.add(LineTo, Pt(x, y))
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *PathBuilder) QuadTo(cx, cy, x, y float64) *PathBuilder {
	if !b.hasCurrent {
		b.MoveTo(cx, cy)
	}
	b.add(QuadTo, Pt(cx, cy), Pt(x, y))
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *PathBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *PathBuilder {
	if !b.hasCurrent {
		b.MoveTo(c1x, c1y)
	}
	b.add(CubicTo, Pt(c1x, c1y), Pt(c2x, c2y), Pt(x, y))
	return b
}

// Close closes the current sub-path. The next drawing command must be
// preceded by MoveTo.
func (b *PathBuilder) Close() *PathBuilder {
	if !b.hasCurrent {
		return b
	}
	b.add(Close, b.start)
	b.hasCurrent = false
	return b
}

// Rect adds a rectangle to the path.
func (b *PathBuilder) Rect(x, y, w, h float64) *PathBuilder {
	b.MoveTo(x, y)
	b.LineTo(x+w, y)
	b.LineTo(x+w, y+h)
	b.LineTo(x, y+h)
	b.Close()
	return b
}

// Circle adds a circle to the path.
func (b *PathBuilder) Circle(cx, cy, r float64) *PathBuilder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse to the path.
func (b *PathBuilder) Ellipse(cx, cy, rx, ry float64) *PathBuilder {
	kx := 0.5522847498 * rx
	ky := 0.5522847498 * ry

	b.MoveTo(cx+rx, cy)
	b.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	b.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	b.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	b.Close()
	return b
}

// Polygon adds a regular polygon to the path.
func (b *PathBuilder) Polygon(cx, cy, radius float64, sides int) *PathBuilder {
	if sides < 3 {
		return b
	}

	angleStep := 2 * math.Pi / float64(sides)
	startAngle := -math.Pi / 2 // Start at top

	for i := 0; i < sides; i++ {
		angle := startAngle + float64(i)*angleStep
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	b.Close()
	return b
}

// Star adds a star shape to the path.
func (b *PathBuilder) Star(cx, cy, outerRadius, innerRadius float64, points int) *PathBuilder {
	if points < 3 {
		return b
	}

	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2

	for i := 0; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			b.MoveTo(x, y)
		} else {
			b.LineTo(x, y)
		}
	}
	b.Close()
	return b
}

// Build returns the constructed path.
func (b *PathBuilder) Build() *Path {
	return fromAuthored(b.cmds)
}
