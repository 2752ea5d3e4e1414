// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import (
	"fmt"
	"strings"
)

// Path is an immutable, render-ready vector path together with the
// snapshot it was built from. Use Mutate to edit it; edits produce a new
// Path.
type Path struct {
	state *PathState
}

// NewPath creates a path from authored commands. Every sub-path must
// begin with a MoveTo, and a Close may only end a sub-path.
//
// Start points are rewritten so that each command starts where the
// previous one ends, and every Close ends at its sub-path's start. Each
// command receives a fresh id.
func NewPath(cmds []Command) (*Path, error) {
	normalized := make([]Command, len(cmds))
	var current, start Point
	for i, cmd := range cmds {
		if cmd.typ > Close || len(cmd.points) != cmd.typ.numPoints() {
			return nil, fmt.Errorf("%w: command %d is malformed", ErrInvalidPath, i)
		}
		switch {
		case i == 0 && cmd.typ != MoveTo:
			return nil, fmt.Errorf("%w: path must begin with a move, got %v", ErrInvalidPath, cmd.typ)
		case i > 0 && cmds[i-1].typ == Close && cmd.typ != MoveTo:
			return nil, fmt.Errorf("%w: command %d follows a close without a move", ErrInvalidPath, i)
		}
		switch {
		case i == 0:
			cmd = cmd.withoutStart()
		case cmd.typ == Close:
			cmd = cmd.withStartEnd(current, start)
		default:
			cmd = cmd.withStart(current)
		}
		if cmd.typ == MoveTo {
			start = cmd.End()
		}
		cmd.isSplitPoint = false
		cmd.isSplitSegment = false
		normalized[i] = cmd
		current = cmd.End()
	}
	return fromAuthored(normalized), nil
}

// fromAuthored builds a path from normalized commands, assigning ids
// 1..len(cmds).
func fromAuthored(cmds []Command) *Path {
	var forest []*SubPathState
	var css []*CommandState
	flush := func() {
		if len(css) > 0 {
			forest = append(forest, newLeaf(css))
			css = nil
		}
	}
	for i, cmd := range cmds {
		cmd.id = ID(i + 1)
		if cmd.typ == MoveTo {
			flush()
		}
		css = append(css, newCommandState(cmd))
	}
	flush()

	ordering := make([]int, len(forest))
	for i := range ordering {
		ordering[i] = i
	}
	state := &PathState{
		subPaths:        forest,
		subPathOrdering: ordering,
		nextID:          ID(len(cmds) + 1),
	}
	p, err := NewMutator(state).Build()
	if err != nil {
		// A freshly authored forest always has one ordering entry per leaf.
		panic(err)
	}
	return p
}

// Commands returns the path's rendered command sequence.
func (p *Path) Commands() []Command {
	return p.state.Commands()
}

// NumSubPaths returns the number of sub-paths in the path.
func (p *Path) NumSubPaths() int {
	return len(p.state.subPathStarts)
}

// SubPaths returns the rendered commands grouped by sub-path in external
// order.
func (p *Path) SubPaths() [][]Command {
	starts := p.state.subPathStarts
	cmds := p.state.commands
	out := make([][]Command, len(starts))
	for i, s := range starts {
		e := len(cmds)
		if i+1 < len(starts) {
			e = starts[i+1]
		}
		out[i] = append([]Command(nil), cmds[s:e]...)
	}
	return out
}

// State returns the snapshot the path was built from.
func (p *Path) State() *PathState {
	return p.state
}

// Mutate starts an edit batch on the path.
func (p *Path) Mutate(opts ...MutatorOption) *Mutator {
	return NewMutator(p.state, opts...)
}

// IsEmpty reports whether the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.state.commands) == 0
}

// String returns the path in SVG path notation.
func (p *Path) String() string {
	var sb strings.Builder
	for i, cmd := range p.state.commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(cmd.String())
	}
	return sb.String()
}
