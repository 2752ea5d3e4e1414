// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import "fmt"

// AddCollapsingSubPath appends a zero-length sub-path at p made of a move
// and numCommands-1 lines. Collapsing sub-paths let two paths that are
// morphed into each other have the same number of sub-paths; they always
// occupy the last slots of the forest.
func (m *Mutator) AddCollapsingSubPath(p Point, numCommands int) *Mutator {
	if m.err != nil {
		return m
	}
	if numCommands < 1 {
		return m.fail("add collapsing sub-path",
			fmt.Errorf("%w: a sub-path needs at least one command, got %d", ErrCommandIndex, numCommands))
	}
	var like *CommandState
	if len(m.subPaths) > 0 && len(m.subPaths[0].commandStates) > 0 {
		like = m.subPaths[0].commandStates[0]
	}
	css := make([]*CommandState, numCommands)
	for i := range css {
		typ := LineTo
		if i == 0 {
			typ = MoveTo
		}
		cmd := Command{id: m.newID(), typ: typ, points: []Point{p, p}, hasStart: true}
		css[i] = syntheticState(cmd, like, 0)
	}
	leaves := len(flattenForest(m.subPaths))
	m.subPaths = append(m.subPaths[:len(m.subPaths):len(m.subPaths)], newLeaf(css))
	m.ordering = append(m.ordering, leaves)
	m.numCollapsing++
	return m
}

// DeleteCollapsingSubPaths removes every collapsing sub-path.
func (m *Mutator) DeleteCollapsingSubPaths() *Mutator {
	if m.err != nil || m.numCollapsing == 0 {
		return m
	}
	keep := len(m.subPaths) - m.numCollapsing
	m.subPaths = m.subPaths[:keep:keep]
	first := len(flattenForest(m.subPaths))
	ordering := make([]int, 0, len(m.ordering))
	for _, v := range m.ordering {
		if v < first {
			ordering = append(ordering, v)
		}
	}
	m.ordering = ordering
	m.numCollapsing = 0
	return m
}

// Revert discards every collapsing sub-path and undoes every edit of the
// remaining sub-paths: splits are rejoined, reversal, shift, command
// splits and conversions are dropped and the ordering is reset. Transforms
// are kept.
func (m *Mutator) Revert() *Mutator {
	if m.err != nil {
		return m
	}
	keep := len(m.subPaths) - m.numCollapsing
	forest := make([]*SubPathState, keep)
	ordering := make([]int, keep)
	for i, root := range m.subPaths[:keep] {
		forest[i] = root.reverted()
		ordering[i] = i
	}
	m.subPaths = forest
	m.ordering = ordering
	m.numCollapsing = 0
	return m
}
