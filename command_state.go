// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import "math"

// mutation is one piece of a CommandState: the part of the backing
// command that ends at parameter t, drawn as a command of type typ.
type mutation struct {
	id  ID
	t   float64
	typ CommandType
}

// CommandState is an immutable run of commands derived from a single
// authored command. The authored command is kept as the backing command;
// parametric splits and type conversions are recorded as a list of
// pieces over the backing parameter range [minT, maxT].
type CommandState struct {
	backing        Command
	mutations      []mutation
	minT, maxT     float64
	transforms     []Matrix
	splitSegmentID ID
	prevSplitState *CommandState
}

// newCommandState wraps an authored command in a state with a single
// piece covering the whole command.
func newCommandState(cmd Command) *CommandState {
	return &CommandState{
		backing:   cmd,
		mutations: []mutation{{id: cmd.id, t: 1, typ: cmd.typ}},
		minT:      0,
		maxT:      1,
	}
}

// BackingID returns the id of the authored command this state derives
// from. It is stable across splits and merges.
func (cs *CommandState) BackingID() ID {
	return cs.backing.id
}

// Backing returns the authored command this state derives from.
func (cs *CommandState) Backing() Command {
	return cs.backing
}

// SplitSegmentID returns the id shared by the two join segments of a
// filled sub-path split, or zero when the state is not a join segment.
func (cs *CommandState) SplitSegmentID() ID {
	return cs.splitSegmentID
}

// PrevSplitState returns the state this one was split out of, if any.
func (cs *CommandState) PrevSplitState() *CommandState {
	return cs.prevSplitState
}

// Transforms returns the affine transforms applied to the state's
// commands, in application order.
func (cs *CommandState) Transforms() []Matrix {
	out := make([]Matrix, len(cs.transforms))
	copy(out, cs.transforms)
	return out
}

// NumCommands returns the number of commands the state currently renders.
func (cs *CommandState) NumCommands() int {
	return len(cs.mutations)
}

// Commands returns the current commands of the state with transforms
// applied.
func (cs *CommandState) Commands() []Command {
	cmds := cs.rawCommands()
	if len(cs.transforms) == 0 {
		return cmds
	}
	m := composeTransforms(cs.transforms)
	for i := range cmds {
		cmds[i] = cmds[i].transformed(m)
	}
	return cmds
}

// rawCommands returns the current commands without transforms.
func (cs *CommandState) rawCommands() []Command {
	out := make([]Command, len(cs.mutations))
	prev := cs.minT
	for i, mut := range cs.mutations {
		pts := convertPoints(cs.backing.subsegment(prev, mut.t), cs.backing.typ, mut.typ)
		out[i] = Command{
			id:             mut.id,
			typ:            mut.typ,
			points:         pts,
			hasStart:       cs.backing.hasStart || i > 0 || prev > 0,
			isSplitPoint:   mut.t < 1,
			isSplitSegment: cs.splitSegmentID != 0,
		}
		prev = mut.t
	}
	return out
}

// rawEnd returns the untransformed end point of the state.
func (cs *CommandState) rawEnd() Point {
	if cs.maxT == 1 {
		return cs.backing.End()
	}
	pts := cs.backing.subsegment(cs.minT, cs.maxT)
	return pts[len(pts)-1]
}

// rawStart returns the untransformed start point of the state.
func (cs *CommandState) rawStart() Point {
	if cs.minT == 0 {
		return cs.backing.points[0]
	}
	return cs.backing.subsegment(cs.minT, cs.maxT)[0]
}

// pieceRange returns the backing parameter range of piece i.
func (cs *CommandState) pieceRange(i int) (t0, t1 float64) {
	t0 = cs.minT
	if i > 0 {
		t0 = cs.mutations[i-1].t
	}
	return t0, cs.mutations[i].t
}

// clone returns a shallow copy whose slices may be modified freely.
func (cs *CommandState) clone() *CommandState {
	c := *cs
	c.mutations = append([]mutation(nil), cs.mutations...)
	c.transforms = append([]Matrix(nil), cs.transforms...)
	return &c
}

// splitAtIndex splits piece splitIdx at the local parameters ts, which
// must be sorted ascending. newID supplies ids for the inserted pieces.
// The original piece keeps its id and ends at the original end point.
func (cs *CommandState) splitAtIndex(splitIdx int, ts []float64, newID func() ID) *CommandState {
	t0, t1 := cs.pieceRange(splitIdx)
	target := cs.mutations[splitIdx]
	typ := target.typ
	if typ == Close {
		typ = LineTo
	}
	inserted := make([]mutation, len(ts))
	for i, t := range ts {
		inserted[i] = mutation{id: newID(), t: t0 + (t1-t0)*t, typ: typ}
	}
	c := cs.clone()
	muts := make([]mutation, 0, len(cs.mutations)+len(ts))
	muts = append(muts, cs.mutations[:splitIdx]...)
	muts = append(muts, inserted...)
	muts = append(muts, cs.mutations[splitIdx:]...)
	c.mutations = muts
	return c
}

// halfParam returns the local parameter that halves the arc length of
// piece splitIdx.
func (cs *CommandState) halfParam(splitIdx int) float64 {
	t0, t1 := cs.pieceRange(splitIdx)
	return paramAtFraction(cs.backing.curve(t0, t1), 0.5)
}

// unsplitAtIndex merges piece splitIdx into the piece that follows it.
func (cs *CommandState) unsplitAtIndex(splitIdx int) *CommandState {
	c := cs.clone()
	c.mutations = append(c.mutations[:splitIdx], c.mutations[splitIdx+1:]...)
	return c
}

// convertAtIndex changes the type of piece splitIdx.
func (cs *CommandState) convertAtIndex(splitIdx int, typ CommandType) *CommandState {
	c := cs.clone()
	c.mutations[splitIdx].typ = typ
	return c
}

// unconvert restores every piece to the backing command's type.
func (cs *CommandState) unconvert() *CommandState {
	c := cs.clone()
	last := len(c.mutations) - 1
	for i := range c.mutations {
		typ := cs.backing.typ
		if typ == Close && (i < last || c.maxT < 1) {
			typ = LineTo
		}
		c.mutations[i].typ = typ
	}
	return c
}

// revert discards every split and conversion, leaving one piece over
// the state's parameter range.
func (cs *CommandState) revert() *CommandState {
	c := cs.clone()
	typ := cs.backing.typ
	if typ == Close && (c.minT > 0 || c.maxT < 1) {
		typ = LineTo
	}
	c.mutations = []mutation{{id: cs.mutations[len(cs.mutations)-1].id, t: cs.maxT, typ: typ}}
	if c.minT == 0 {
		c.mutations[0].id = cs.backing.id
	}
	return c
}

// fork cuts the state after piece splitIdx. right is nil when splitIdx
// is the last piece. Both halves remember the state they came from.
func (cs *CommandState) fork(splitIdx int) (left, right *CommandState) {
	last := len(cs.mutations) - 1
	if splitIdx >= last {
		return cs, nil
	}
	left = cs.clone()
	left.mutations = append([]mutation(nil), cs.mutations[:splitIdx+1]...)
	left.maxT = cs.mutations[splitIdx].t
	left.prevSplitState = cs
	if left.backing.typ == Close {
		left.backing.typ = LineTo
	}

	right = cs.clone()
	right.mutations = append([]mutation(nil), cs.mutations[splitIdx+1:]...)
	right.minT = cs.mutations[splitIdx].t
	right.prevSplitState = cs
	return left, right
}

// reverse returns the state traversed backwards. The backing command is
// reversed in place of its pieces so that splits, conversions and ids
// survive a second reversal unchanged.
func (cs *CommandState) reverse() *CommandState {
	c := cs.clone()
	c.backing = cs.backing.reversed()
	c.minT, c.maxT = 1-cs.maxT, 1-cs.minT
	n := len(cs.mutations)
	muts := make([]mutation, n)
	for i := range cs.mutations {
		src := cs.mutations[n-1-i]
		t0, _ := cs.pieceRange(n - 1 - i)
		typ := src.typ
		if typ == Close {
			typ = LineTo
		}
		muts[i] = mutation{id: src.id, t: 1 - t0, typ: typ}
	}
	c.mutations = muts
	return c
}

// closeAsLine rewrites a Close state as the equivalent line.
func (cs *CommandState) closeAsLine() *CommandState {
	if cs.backing.typ != Close {
		return cs
	}
	c := cs.clone()
	c.backing.typ = LineTo
	for i := range c.mutations {
		if c.mutations[i].typ == Close {
			c.mutations[i].typ = LineTo
		}
	}
	return c
}

// withEnd returns a copy of a move state ending at end.
func (cs *CommandState) withEnd(end Point) *CommandState {
	c := cs.clone()
	c.backing = cs.backing.withStartEnd(cs.backing.points[0], end)
	c.backing.hasStart = cs.backing.hasStart
	return c
}

// canMerge reports whether b continues a over the same backing command.
func canMerge(a, b *CommandState) bool {
	if a.backing.id != b.backing.id || a.splitSegmentID != b.splitSegmentID {
		return false
	}
	if len(a.backing.points) != len(b.backing.points) {
		return false
	}
	for i := range a.backing.points {
		if !a.backing.points[i].Equals(b.backing.points[i]) {
			return false
		}
	}
	return math.Abs(a.maxT-b.minT) <= Epsilon
}

// merge joins two states accepted by canMerge.
func merge(a, b *CommandState) *CommandState {
	c := a.clone()
	c.mutations = append(c.mutations, b.mutations...)
	c.maxT = b.maxT
	if b.maxT == 1 {
		c.backing.typ = b.backing.typ
	}
	if c.minT == 0 && c.maxT == 1 {
		c.prevSplitState = nil
	}
	return c
}

// syntheticState creates a state for a command that was not authored,
// copying the transforms of the state it sits next to.
func syntheticState(cmd Command, like *CommandState, segID ID) *CommandState {
	cs := newCommandState(cmd)
	cs.splitSegmentID = segID
	if like != nil {
		cs.transforms = append([]Matrix(nil), like.transforms...)
	}
	return cs
}
