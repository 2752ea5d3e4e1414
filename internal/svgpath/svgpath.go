// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package svgpath converts between SVG path data and pathmorph paths.
package svgpath

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/pathmorph"
	"github.com/tdewolff/parse/v2/strconv"
)

// ErrArc is returned for elliptical arc commands, which have no
// pathmorph command type.
var ErrArc = errors.New("svgpath: arc commands are not supported")

// cmdLens is the number of arguments of each command.
var cmdLens = map[byte]int{
	'M': 2,
	'Z': 0,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'A': 7,
}

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

// Parse parses SVG path data into an authored path. Absolute and
// relative M, L, H, V, C, S, Q, T and Z commands are supported.
func Parse(d string) (*pathmorph.Path, error) {
	b := pathmorph.BuildPath()
	path := []byte(d)
	i := skipCommaWhitespace(path)
	if len(path) <= i {
		return b.Build(), nil
	}
	if path[i] < 'A' {
		return nil, fmt.Errorf("svgpath: path should start with a command")
	}

	var f [7]float64
	var p0, p1, start, c, q pathmorph.Point
	prevCmd := byte('z')
	closed, moved := false, false
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}

		cmd := prevCmd
		repeat := true
		if cmd == 'z' || cmd == 'Z' || !(path[i] >= '0' && path[i] <= '9' || path[i] == '.' || path[i] == '-' || path[i] == '+') {
			cmd = path[i]
			repeat = false
			i++
			i += skipCommaWhitespace(path[i:])
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		if CMD == 'A' {
			return nil, fmt.Errorf("%w: at position %d", ErrArc, i)
		}
		n, ok := cmdLens[CMD]
		if !ok {
			return nil, fmt.Errorf("svgpath: unknown command %q at position %d", []byte{cmd}, i)
		}
		if !moved && CMD != 'M' {
			return nil, fmt.Errorf("svgpath: command %q before the first move at position %d", []byte{cmd}, i)
		}
		moved = true
		for j := 0; j < n; j++ {
			num, m := strconv.ParseFloat(path[i:])
			if m == 0 {
				if repeat && j == 0 && i < len(path) {
					return nil, fmt.Errorf("svgpath: unknown command %q at position %d", path[i:i+1], i+1)
				}
				return nil, fmt.Errorf("svgpath: %d numbers should follow command %q at position %d", n, []byte{cmd}, i+1)
			}
			f[j] = num
			i += m
			i += skipCommaWhitespace(path[i:])
		}

		if closed && CMD != 'M' && CMD != 'Z' {
			// Drawing after a close continues from the sub-path start.
			b.MoveTo(start.X, start.Y)
		}
		closed = false

		switch cmd {
		case 'M', 'm':
			p1 = pathmorph.Pt(f[0], f[1])
			if cmd == 'm' {
				p1 = p1.Add(p0)
				cmd = 'l'
			} else {
				cmd = 'L'
			}
			b.MoveTo(p1.X, p1.Y)
			start = p1
		case 'Z', 'z':
			p1 = start
			b.Close()
			closed = true
		case 'L', 'l':
			p1 = pathmorph.Pt(f[0], f[1])
			if cmd == 'l' {
				p1 = p1.Add(p0)
			}
			b.LineTo(p1.X, p1.Y)
		case 'H', 'h':
			p1.X = f[0]
			if cmd == 'h' {
				p1.X += p0.X
			}
			b.LineTo(p1.X, p1.Y)
		case 'V', 'v':
			p1.Y = f[0]
			if cmd == 'v' {
				p1.Y += p0.Y
			}
			b.LineTo(p1.X, p1.Y)
		case 'C', 'c':
			cp1 := pathmorph.Pt(f[0], f[1])
			cp2 := pathmorph.Pt(f[2], f[3])
			p1 = pathmorph.Pt(f[4], f[5])
			if cmd == 'c' {
				cp1 = cp1.Add(p0)
				cp2 = cp2.Add(p0)
				p1 = p1.Add(p0)
			}
			b.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
			c = cp2
		case 'S', 's':
			cp1 := p0
			cp2 := pathmorph.Pt(f[0], f[1])
			p1 = pathmorph.Pt(f[2], f[3])
			if cmd == 's' {
				cp2 = cp2.Add(p0)
				p1 = p1.Add(p0)
			}
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				cp1 = p0.Mul(2.0).Sub(c)
			}
			b.CubicTo(cp1.X, cp1.Y, cp2.X, cp2.Y, p1.X, p1.Y)
			c = cp2
		case 'Q', 'q':
			cp := pathmorph.Pt(f[0], f[1])
			p1 = pathmorph.Pt(f[2], f[3])
			if cmd == 'q' {
				cp = cp.Add(p0)
				p1 = p1.Add(p0)
			}
			b.QuadTo(cp.X, cp.Y, p1.X, p1.Y)
			q = cp
		case 'T', 't':
			cp := p0
			p1 = pathmorph.Pt(f[0], f[1])
			if cmd == 't' {
				p1 = p1.Add(p0)
			}
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				cp = p0.Mul(2.0).Sub(q)
			}
			b.QuadTo(cp.X, cp.Y, p1.X, p1.Y)
			q = cp
		}
		prevCmd = cmd
		p0 = p1
	}
	return b.Build(), nil
}

// Format returns the commands as absolute SVG path data.
func Format(cmds []pathmorph.Command) string {
	var sb strings.Builder
	for i, cmd := range cmds {
		if i > 0 {
			sb.WriteByte(' ')
		}
		pts := cmd.Points()
		switch cmd.Type() {
		case pathmorph.MoveTo:
			fmt.Fprintf(&sb, "M%g %g", pts[1].X, pts[1].Y)
		case pathmorph.LineTo:
			fmt.Fprintf(&sb, "L%g %g", pts[1].X, pts[1].Y)
		case pathmorph.QuadTo:
			fmt.Fprintf(&sb, "Q%g %g %g %g", pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case pathmorph.CubicTo:
			fmt.Fprintf(&sb, "C%g %g %g %g %g %g", pts[1].X, pts[1].Y, pts[2].X, pts[2].Y, pts[3].X, pts[3].Y)
		case pathmorph.Close:
			sb.WriteString("Z")
		}
	}
	return sb.String()
}
