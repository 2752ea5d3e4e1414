package pathmorph

// Path operations for area calculation, containment testing and arc
// length measurement.

// flattenSteps is the number of chords used per curve when flattening.
const flattenSteps = 16

// Area returns the signed area enclosed by the path.
// Uses the shoelace formula extended for curves (Green's theorem).
// Open sub-paths are treated as implicitly closed, the way they are
// filled.
func (p *Path) Area() float64 {
	var area float64
	for _, sub := range p.SubPaths() {
		start := sub[0].End()
		current := start
		for _, cmd := range sub[1:] {
			pts := cmd.points
			switch cmd.typ {
			case LineTo:
				area += lineArea(current, cmd.End())
			case QuadTo:
				area += quadArea(current, pts[1], pts[2])
			case CubicTo:
				area += cubicArea(current, pts[1], pts[2], pts[3])
			case Close:
				area += lineArea(current, start)
			}
			current = cmd.End()
		}
		area += lineArea(current, start)
	}
	return area
}

// lineArea computes the contribution of a line segment to the signed area.
// Uses the shoelace formula: 0.5 * (x0*y1 - x1*y0)
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// quadArea computes the contribution of a quadratic Bezier to the signed area.
// Integrates x*dy using the parametric form.
func quadArea(p0, p1, p2 Point) float64 {
	return (p0.X*(2*p1.Y+p2.Y) + 2*p1.X*(p2.Y-p0.Y) - p2.X*(p0.Y+2*p1.Y)) / 6.0
}

// cubicArea computes the contribution of a cubic Bezier to the signed area.
// Formula from the kurbo library.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// Winding returns the winding number of a point relative to the path.
// 0 = outside, non-zero = inside (for non-zero fill rule).
// Uses ray casting with a horizontal ray to the right over the
// flattened path.
func (p *Path) Winding(pt Point) int {
	var winding int
	p.flatten(func(p0, p1 Point) {
		winding += lineWinding(p0, p1, pt)
	})
	return winding
}

// Contains tests if a point is inside the path using the non-zero fill rule.
func (p *Path) Contains(pt Point) bool {
	return p.Winding(pt) != 0
}

// Length returns the approximate arc length of the path's drawn commands.
func (p *Path) Length() float64 {
	var length float64
	for _, cmd := range p.state.commands {
		if cmd.typ == MoveTo {
			continue
		}
		lengths := arcLengths(cmd.curve(0, 1))
		length += lengths[arcSamples]
	}
	return length
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// flatten walks the path as line segments, closing every sub-path.
func (p *Path) flatten(fn func(p0, p1 Point)) {
	for _, sub := range p.SubPaths() {
		start := sub[0].End()
		current := start
		for _, cmd := range sub[1:] {
			switch cmd.typ {
			case QuadTo, CubicTo:
				curve := cmd.curve(0, 1)
				for i := 1; i <= flattenSteps; i++ {
					next := curve.Eval(float64(i) / flattenSteps)
					fn(current, next)
					current = next
				}
			default:
				fn(current, cmd.End())
			}
			current = cmd.End()
		}
		if !current.Equals(start) {
			fn(current, start)
		}
	}
}
