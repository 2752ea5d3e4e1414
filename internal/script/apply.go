// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package script

import (
	"fmt"
	"math"

	"github.com/gogpu/pathmorph"
	"github.com/mitchellh/mapstructure"
	"golang.org/x/image/math/f64"
)

// opBuild commits the current batch.
const opBuild = "build"

type subPathArgs struct {
	SubPath int `mapstructure:"subpath"`
}

type commandArgs struct {
	SubPath int `mapstructure:"subpath"`
	Command int `mapstructure:"command"`
}

type shiftArgs struct {
	SubPath int `mapstructure:"subpath"`
	Count   int `mapstructure:"count"`
}

type splitArgs struct {
	SubPath int       `mapstructure:"subpath"`
	Command int       `mapstructure:"command"`
	Ts      []float64 `mapstructure:"ts"`
}

type convertArgs struct {
	SubPath int    `mapstructure:"subpath"`
	Command int    `mapstructure:"command"`
	Type    string `mapstructure:"type"`
}

type moveArgs struct {
	From int `mapstructure:"from"`
	To   int `mapstructure:"to"`
}

type filledArgs struct {
	SubPath int `mapstructure:"subpath"`
	Start   int `mapstructure:"start"`
	End     int `mapstructure:"end"`
}

type collapsingArgs struct {
	X        float64 `mapstructure:"x"`
	Y        float64 `mapstructure:"y"`
	Commands int     `mapstructure:"commands"`
}

type transformArgs struct {
	Transforms []Transform `mapstructure:"transforms"`
}

// Transform describes one affine transform. Exactly one field is used,
// in the order Matrix, Translate, Scale, Rotate.
type Transform struct {
	Matrix    []float64 `mapstructure:"matrix"`
	Translate []float64 `mapstructure:"translate"`
	Scale     []float64 `mapstructure:"scale"`
	Rotate    float64   `mapstructure:"rotate"` // degrees
}

// ToMatrix returns the transform as a pathmorph matrix.
func (t Transform) ToMatrix() (pathmorph.Matrix, error) {
	switch {
	case t.Matrix != nil:
		if len(t.Matrix) != 6 {
			return pathmorph.Matrix{}, fmt.Errorf("script: matrix needs 6 values, got %d", len(t.Matrix))
		}
		return pathmorph.MatrixFromAff3(f64.Aff3(t.Matrix)), nil
	case t.Translate != nil:
		if len(t.Translate) != 2 {
			return pathmorph.Matrix{}, fmt.Errorf("script: translate needs 2 values, got %d", len(t.Translate))
		}
		return pathmorph.Translate(t.Translate[0], t.Translate[1]), nil
	case t.Scale != nil:
		switch len(t.Scale) {
		case 1:
			return pathmorph.Scale(t.Scale[0], t.Scale[0]), nil
		case 2:
			return pathmorph.Scale(t.Scale[0], t.Scale[1]), nil
		}
		return pathmorph.Matrix{}, fmt.Errorf("script: scale needs 1 or 2 values, got %d", len(t.Scale))
	default:
		return pathmorph.Rotate(t.Rotate * math.Pi / 180), nil
	}
}

var commandTypes = map[string]pathmorph.CommandType{
	"line":  pathmorph.LineTo,
	"quad":  pathmorph.QuadTo,
	"cubic": pathmorph.CubicTo,
}

// handler applies one decoded operation to a mutator.
type handler func(m *pathmorph.Mutator, args map[string]any) error

var handlers = map[string]handler{
	"reverse": withArgs(func(m *pathmorph.Mutator, a subPathArgs) error {
		m.ReverseSubPath(a.SubPath)
		return nil
	}),
	"shift-forward": withArgs(func(m *pathmorph.Mutator, a shiftArgs) error {
		m.ShiftSubPathForward(a.SubPath, defaultCount(a.Count))
		return nil
	}),
	"shift-back": withArgs(func(m *pathmorph.Mutator, a shiftArgs) error {
		m.ShiftSubPathBack(a.SubPath, defaultCount(a.Count))
		return nil
	}),
	"split-command": withArgs(func(m *pathmorph.Mutator, a splitArgs) error {
		m.SplitCommand(a.SubPath, a.Command, a.Ts...)
		return nil
	}),
	"split-command-in-half": withArgs(func(m *pathmorph.Mutator, a commandArgs) error {
		m.SplitCommandInHalf(a.SubPath, a.Command)
		return nil
	}),
	"unsplit-command": withArgs(func(m *pathmorph.Mutator, a commandArgs) error {
		m.UnsplitCommand(a.SubPath, a.Command)
		return nil
	}),
	"convert-command": withArgs(func(m *pathmorph.Mutator, a convertArgs) error {
		typ, ok := commandTypes[a.Type]
		if !ok {
			return fmt.Errorf("script: unknown command type %q", a.Type)
		}
		m.ConvertCommand(a.SubPath, a.Command, typ)
		return nil
	}),
	"unconvert-subpath": withArgs(func(m *pathmorph.Mutator, a subPathArgs) error {
		m.UnconvertSubPath(a.SubPath)
		return nil
	}),
	"add-transforms": withArgs(func(m *pathmorph.Mutator, a transformArgs) error {
		ms, err := matrices(a.Transforms)
		if err != nil {
			return err
		}
		m.AddTransforms(ms...)
		return nil
	}),
	"set-transforms": withArgs(func(m *pathmorph.Mutator, a transformArgs) error {
		ms, err := matrices(a.Transforms)
		if err != nil {
			return err
		}
		m.SetTransforms(ms...)
		return nil
	}),
	"move-subpath": withArgs(func(m *pathmorph.Mutator, a moveArgs) error {
		m.MoveSubPath(a.From, a.To)
		return nil
	}),
	"split-stroked": withArgs(func(m *pathmorph.Mutator, a commandArgs) error {
		m.SplitStrokedSubPath(a.SubPath, a.Command)
		return nil
	}),
	"split-filled": withArgs(func(m *pathmorph.Mutator, a filledArgs) error {
		m.SplitFilledSubPath(a.SubPath, a.Start, a.End)
		return nil
	}),
	"unsplit-stroked": withArgs(func(m *pathmorph.Mutator, a subPathArgs) error {
		m.UnsplitStrokedSubPath(a.SubPath)
		return nil
	}),
	"delete-split-segment": withArgs(func(m *pathmorph.Mutator, a commandArgs) error {
		m.DeleteSubPathSplitSegment(a.SubPath, a.Command)
		return nil
	}),
	"add-collapsing": withArgs(func(m *pathmorph.Mutator, a collapsingArgs) error {
		m.AddCollapsingSubPath(pathmorph.Pt(a.X, a.Y), a.Commands)
		return nil
	}),
	"delete-collapsing": func(m *pathmorph.Mutator, _ map[string]any) error {
		m.DeleteCollapsingSubPaths()
		return nil
	},
	"revert": func(m *pathmorph.Mutator, _ map[string]any) error {
		m.Revert()
		return nil
	},
}

// withArgs adapts a typed handler, decoding the loosely typed argument
// map into T first.
func withArgs[T any](fn func(*pathmorph.Mutator, T) error) handler {
	return func(m *pathmorph.Mutator, args map[string]any) error {
		var a T
		if err := decode(args, &a); err != nil {
			return err
		}
		return fn(m, a)
	}
}

func decode(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("script: decode args: %w", err)
	}
	return nil
}

func defaultCount(n int) int {
	if n == 0 {
		return 1
	}
	return n
}

func matrices(ts []Transform) ([]pathmorph.Matrix, error) {
	out := make([]pathmorph.Matrix, len(ts))
	for i, t := range ts {
		m, err := t.ToMatrix()
		if err != nil {
			return nil, err
		}
		out[i] = m
	}
	return out, nil
}

// Apply runs the script against p and returns the final path. Each build
// operation commits a batch; the edits after the last build are committed
// at the end.
func Apply(p *pathmorph.Path, s *Script, opts ...pathmorph.MutatorOption) (*pathmorph.Path, error) {
	m := p.Mutate(opts...)
	pending := false
	for i, op := range s.Ops {
		if op.Name == opBuild {
			next, err := m.Build()
			if err != nil {
				return nil, fmt.Errorf("script: op %d: %w", i, err)
			}
			p, m, pending = next, next.Mutate(opts...), false
			continue
		}
		h, ok := handlers[op.Name]
		if !ok {
			return nil, fmt.Errorf("%w: %q at index %d", ErrUnknownOp, op.Name, i)
		}
		if err := h(m, op.Args); err != nil {
			return nil, fmt.Errorf("script: op %d (%s): %w", i, op.Name, err)
		}
		if err := m.Err(); err != nil {
			return nil, fmt.Errorf("script: op %d (%s): %w", i, op.Name, err)
		}
		pending = true
	}
	if !pending {
		return p, nil
	}
	return m.Build()
}
