// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import (
	"fmt"
	"log/slog"
	"slices"
)

// Mutator applies a batch of structural edits to a PathState.
//
// Every edit returns the mutator so that edits can be chained. The first
// edit that fails records its error; later edits are skipped, Err
// reports the error and Build returns it. Edits that succeeded before
// the failure stay applied.
//
// Edits that do not apply to their target (for example shifting an open
// sub-path) are ignored with a warning in the log and do not set an
// error.
//
// A Mutator is not safe for concurrent use. It never modifies the
// snapshot it was created from.
type Mutator struct {
	subPaths      []*SubPathState
	ordering      []int
	numCollapsing int
	nextID        ID
	logger        *slog.Logger
	err           error
}

// NewMutator creates a mutator for one edit batch on state.
func NewMutator(state *PathState, opts ...MutatorOption) *Mutator {
	o := defaultMutatorOptions()
	for _, opt := range opts {
		opt(&o)
	}
	m := &Mutator{
		subPaths:      slices.Clone(state.subPaths),
		ordering:      slices.Clone(state.subPathOrdering),
		numCollapsing: state.numCollapsing,
		nextID:        state.nextID,
		logger:        o.logger,
	}
	if m.nextID == 0 {
		m.nextID = 1
	}
	return m
}

// Err returns the error of the first failed edit, if any.
func (m *Mutator) Err() error {
	return m.err
}

// NumSubPaths returns the current number of external sub-paths.
func (m *Mutator) NumSubPaths() int {
	return len(m.ordering)
}

func (m *Mutator) log() *slog.Logger {
	if m.logger != nil {
		return m.logger
	}
	return Logger()
}

func (m *Mutator) fail(op string, err error) *Mutator {
	m.err = fmt.Errorf("%s: %w", op, err)
	return m
}

func (m *Mutator) newID() ID {
	id := m.nextID
	m.nextID++
	return id
}

// leafRef addresses a leaf through its external sub-path index.
type leafRef struct {
	subIdx int
	spsIdx int
	path   nodePath
	leaf   *SubPathState
}

// cmdRef addresses a command through its external indices. flat is the
// command's index in the leaf's stored (authored) order.
type cmdRef struct {
	leafRef
	flat     int
	csIdx    int
	splitIdx int
}

func (r cmdRef) commandState() *CommandState {
	return r.leaf.commandStates[r.csIdx]
}

func (m *Mutator) leafAt(subIdx int) (leafRef, error) {
	if subIdx < 0 || subIdx >= len(m.ordering) {
		return leafRef{}, fmt.Errorf("%w: %d not in [0, %d)", ErrSubPathIndex, subIdx, len(m.ordering))
	}
	spsIdx := m.ordering[subIdx]
	path, ok := locate(m.subPaths, spsIdx)
	if !ok {
		return leafRef{}, fmt.Errorf("%w: no leaf at flattened index %d", ErrInvariant, spsIdx)
	}
	return leafRef{subIdx: subIdx, spsIdx: spsIdx, path: path, leaf: nodeAt(m.subPaths, path)}, nil
}

// commandAt translates an external command index into a position in the
// leaf's stored command states. Reversal is undone first, then the
// shift; wrapping skips the opening move, which stays at index 0.
func (m *Mutator) commandAt(subIdx, cmdIdx int) (cmdRef, error) {
	ref, err := m.leafAt(subIdx)
	if err != nil {
		return cmdRef{}, err
	}
	n := ref.leaf.NumCommands()
	if cmdIdx < 0 || cmdIdx >= n {
		return cmdRef{}, fmt.Errorf("%w: %d not in [0, %d)", ErrCommandIndex, cmdIdx, n)
	}
	flat := cmdIdx
	if ref.leaf.isReversed && flat != 0 {
		flat = n - flat
	}
	flat += ref.leaf.shiftOffset
	if flat >= n {
		flat -= n - 1
	}
	csIdx, splitIdx, ok := locateFlat(ref.leaf.commandStates, flat)
	if !ok {
		return cmdRef{}, fmt.Errorf("%w: command %d of sub-path %d does not resolve", ErrInvariant, cmdIdx, subIdx)
	}
	return cmdRef{leafRef: ref, flat: flat, csIdx: csIdx, splitIdx: splitIdx}, nil
}

// replaceLeaf installs repl in place of the leaf addressed by ref.
func (m *Mutator) replaceLeaf(ref leafRef, repl ...*SubPathState) {
	m.subPaths = replaceAt(m.subPaths, ref.path, repl...)
}

// replaceCommandState installs cs in place of the command state
// addressed by ref, together with a new shift offset.
func (m *Mutator) replaceCommandState(ref cmdRef, cs *CommandState, shiftOffset int) {
	css := slices.Clone(ref.leaf.commandStates)
	css[ref.csIdx] = cs
	leaf := ref.leaf.withCommandStates(css).withShiftOffset(shiftOffset)
	m.replaceLeaf(ref.leafRef, leaf)
}

// ReverseSubPath toggles the direction of sub-path subIdx. The reversal
// is applied when the path is built.
func (m *Mutator) ReverseSubPath(subIdx int) *Mutator {
	if m.err != nil {
		return m
	}
	ref, err := m.leafAt(subIdx)
	if err != nil {
		return m.fail("reverse sub-path", err)
	}
	m.replaceLeaf(ref, ref.leaf.withReversed(!ref.leaf.isReversed))
	return m
}

// ShiftSubPathForward moves the start point of closed sub-path subIdx
// numShifts commands forward in the rendered direction.
func (m *Mutator) ShiftSubPathForward(subIdx, numShifts int) *Mutator {
	return m.shiftSubPath("shift sub-path forward", subIdx, numShifts)
}

// ShiftSubPathBack moves the start point of closed sub-path subIdx
// numShifts commands back in the rendered direction.
func (m *Mutator) ShiftSubPathBack(subIdx, numShifts int) *Mutator {
	return m.shiftSubPath("shift sub-path back", subIdx, -numShifts)
}

func (m *Mutator) shiftSubPath(op string, subIdx, delta int) *Mutator {
	if m.err != nil {
		return m
	}
	ref, err := m.leafAt(subIdx)
	if err != nil {
		return m.fail(op, err)
	}
	n := ref.leaf.NumCommands()
	if n <= 1 || !ref.leaf.IsClosed() {
		m.log().Warn("mutator: shift ignored, sub-path is not closed", "subpath", subIdx)
		return m
	}
	if ref.leaf.isReversed {
		delta = -delta
	}
	offset := floorMod(ref.leaf.shiftOffset+delta, n-1)
	m.replaceLeaf(ref, ref.leaf.withShiftOffset(offset))
	return m
}

// SplitCommand splits command cmdIdx of sub-path subIdx at the given
// parametric values, producing len(ts)+1 commands. Each value must lie
// in (0, 1) and is measured along the command as currently rendered.
func (m *Mutator) SplitCommand(subIdx, cmdIdx int, ts ...float64) *Mutator {
	const op = "split command"
	if m.err != nil {
		return m
	}
	if len(ts) == 0 {
		return m.fail(op, ErrNoSplitValues)
	}
	for _, t := range ts {
		if !(t > 0 && t < 1) {
			return m.fail(op, fmt.Errorf("%w: %g", ErrInvalidSplitValue, t))
		}
	}
	ref, err := m.splittable(subIdx, cmdIdx)
	if err != nil {
		return m.fail(op, err)
	}
	local := slices.Clone(ts)
	if ref.leaf.isReversed {
		for i, t := range local {
			local[i] = 1 - t
		}
	}
	slices.Sort(local)
	m.splitAt(ref, local)
	return m
}

// SplitCommandInHalf splits command cmdIdx of sub-path subIdx into two
// commands of equal arc length.
func (m *Mutator) SplitCommandInHalf(subIdx, cmdIdx int) *Mutator {
	if m.err != nil {
		return m
	}
	ref, err := m.splittable(subIdx, cmdIdx)
	if err != nil {
		return m.fail("split command in half", err)
	}
	t := ref.commandState().halfParam(ref.splitIdx)
	m.splitAt(ref, []float64{t})
	return m
}

func (m *Mutator) splittable(subIdx, cmdIdx int) (cmdRef, error) {
	ref, err := m.commandAt(subIdx, cmdIdx)
	if err != nil {
		return cmdRef{}, err
	}
	if cmdIdx == 0 || ref.csIdx == 0 || ref.commandState().backing.typ == MoveTo {
		return cmdRef{}, ErrMoveCommand
	}
	return ref, nil
}

// splitAt splits the addressed piece at sorted local parameters given in
// stored orientation.
func (m *Mutator) splitAt(ref cmdRef, ts []float64) {
	cs := ref.commandState().splitAtIndex(ref.splitIdx, ts, m.newID)
	offset := ref.leaf.shiftOffset
	if offset != 0 && offset >= ref.flat {
		offset += len(ts)
	}
	m.replaceCommandState(ref, cs, offset)
}

// UnsplitCommand merges the split point at the end of command cmdIdx of
// sub-path subIdx, undoing one value of an earlier SplitCommand.
func (m *Mutator) UnsplitCommand(subIdx, cmdIdx int) *Mutator {
	const op = "unsplit command"
	if m.err != nil {
		return m
	}
	ref, err := m.commandAt(subIdx, cmdIdx)
	if err != nil {
		return m.fail(op, err)
	}
	splitIdx, flat := ref.splitIdx, ref.flat
	if ref.leaf.isReversed {
		// The rendered command ends where the stored one starts.
		splitIdx--
		flat--
	}
	cs := ref.commandState()
	if cmdIdx == 0 || splitIdx < 0 || splitIdx >= cs.NumCommands()-1 {
		return m.fail(op, fmt.Errorf("%w: command %d of sub-path %d", ErrNotSplitPoint, cmdIdx, subIdx))
	}
	offset := ref.leaf.shiftOffset
	if offset != 0 && offset >= flat {
		offset--
	}
	m.replaceCommandState(ref, cs.unsplitAtIndex(splitIdx), offset)
	return m
}

// ConvertCommand changes the type of command cmdIdx of sub-path subIdx
// to typ, keeping its start and end points. typ must be LineTo, QuadTo
// or CubicTo.
func (m *Mutator) ConvertCommand(subIdx, cmdIdx int, typ CommandType) *Mutator {
	const op = "convert command"
	if m.err != nil {
		return m
	}
	if typ != LineTo && typ != QuadTo && typ != CubicTo {
		return m.fail(op, fmt.Errorf("%w: %v", ErrConvertType, typ))
	}
	ref, err := m.splittable(subIdx, cmdIdx)
	if err != nil {
		return m.fail(op, err)
	}
	cs := ref.commandState().convertAtIndex(ref.splitIdx, typ)
	m.replaceCommandState(ref, cs, ref.leaf.shiftOffset)
	return m
}

// UnconvertSubPath restores every command of sub-path subIdx except the
// opening move to its authored type.
func (m *Mutator) UnconvertSubPath(subIdx int) *Mutator {
	if m.err != nil {
		return m
	}
	ref, err := m.leafAt(subIdx)
	if err != nil {
		return m.fail("unconvert sub-path", err)
	}
	css := slices.Clone(ref.leaf.commandStates)
	for i := 1; i < len(css); i++ {
		css[i] = css[i].unconvert()
	}
	m.replaceLeaf(ref, ref.leaf.withCommandStates(css))
	return m
}

// AddTransforms appends transforms to every command state of the path.
func (m *Mutator) AddTransforms(transforms ...Matrix) *Mutator {
	if m.err != nil || len(transforms) == 0 {
		return m
	}
	return m.mapForest(func(cs *CommandState) *CommandState {
		c := cs.clone()
		c.transforms = append(c.transforms, transforms...)
		return c
	})
}

// SetTransforms replaces the transforms of every command state of the
// path.
func (m *Mutator) SetTransforms(transforms ...Matrix) *Mutator {
	if m.err != nil {
		return m
	}
	return m.mapForest(func(cs *CommandState) *CommandState {
		c := cs.clone()
		c.transforms = append([]Matrix(nil), transforms...)
		return c
	})
}

func (m *Mutator) mapForest(fn func(*CommandState) *CommandState) *Mutator {
	forest := make([]*SubPathState, len(m.subPaths))
	for i, root := range m.subPaths {
		forest[i] = root.mapCommandStates(fn)
	}
	m.subPaths = forest
	return m
}

// MoveSubPath moves the sub-path at external index fromSubIdx to
// toSubIdx. Only the ordering changes.
func (m *Mutator) MoveSubPath(fromSubIdx, toSubIdx int) *Mutator {
	const op = "move sub-path"
	if m.err != nil {
		return m
	}
	n := len(m.ordering)
	if fromSubIdx < 0 || fromSubIdx >= n {
		return m.fail(op, fmt.Errorf("%w: %d not in [0, %d)", ErrSubPathIndex, fromSubIdx, n))
	}
	if toSubIdx < 0 || toSubIdx >= n {
		return m.fail(op, fmt.Errorf("%w: %d not in [0, %d)", ErrSubPathIndex, toSubIdx, n))
	}
	spsIdx := m.ordering[fromSubIdx]
	m.ordering = slices.Delete(m.ordering, fromSubIdx, fromSubIdx+1)
	m.ordering = slices.Insert(m.ordering, toSubIdx, spsIdx)
	return m
}
