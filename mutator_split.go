// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import (
	"fmt"
	"slices"
)

// SplitStrokedSubPath cuts sub-path subIdx after command cmdIdx into two
// open sub-paths. The second one starts with a zero-length move at the
// cut point and is appended to the sub-path ordering.
func (m *Mutator) SplitStrokedSubPath(subIdx, cmdIdx int) *Mutator {
	const op = "split stroked sub-path"
	if m.err != nil {
		return m
	}
	ref, err := m.leafAt(subIdx)
	if err != nil {
		return m.fail(op, err)
	}
	css := closeTrailing(materialize(ref.leaf))
	n := ref.leaf.NumCommands()
	if cmdIdx < 1 || cmdIdx > n-2 {
		return m.fail(op, fmt.Errorf("%w: cut %d not in [1, %d]", ErrCommandIndex, cmdIdx, n-2))
	}
	c, s, _ := locateFlat(css, cmdIdx)
	left, right := css[c].fork(s)
	cut := left.rawEnd()

	before := append(slices.Clone(css[:c]), left)
	after := []*CommandState{m.moveState(cut, left)}
	if right != nil {
		after = append(after, right)
	}
	after = append(after, css[c+1:]...)

	children := []*SubPathState{newLeaf(before), newLeaf(after)}
	m.replaceLeaf(ref, ref.leaf.withChildren(children))
	m.insertLeaf(ref.spsIdx + 1)
	m.log().Debug("mutator: stroked split", "subpath", subIdx, "cut", cmdIdx)
	return m
}

// SplitFilledSubPath cuts closed sub-path subIdx into two closed
// sub-paths along a straight chord between the end points of commands
// startIdx and endIdx. Each half is closed by a join segment; the two
// join segments share a split-segment id so that
// DeleteSubPathSplitSegment can later remove them together.
func (m *Mutator) SplitFilledSubPath(subIdx, startIdx, endIdx int) *Mutator {
	const op = "split filled sub-path"
	if m.err != nil {
		return m
	}
	ref, err := m.leafAt(subIdx)
	if err != nil {
		return m.fail(op, err)
	}
	if !ref.leaf.IsClosed() {
		m.log().Warn("mutator: filled split ignored, sub-path is not closed", "subpath", subIdx)
		return m
	}
	n := ref.leaf.NumCommands()
	if startIdx > endIdx {
		startIdx, endIdx = endIdx, startIdx
	}
	if startIdx < 1 || endIdx > n-1 || startIdx == endIdx {
		return m.fail(op, fmt.Errorf("%w: cuts %d and %d not distinct in [1, %d]", ErrCommandIndex, startIdx, endIdx, n-1))
	}
	css := closeTrailing(materialize(ref.leaf))
	sc, ss, _ := locateFlat(css, startIdx)
	ec, es, _ := locateFlat(css, endIdx)

	// A cut through an existing join segment must stay separately
	// deletable, so it nests under a new level.
	nested := css[sc].splitSegmentID != 0 || css[ec].splitSegmentID != 0
	segID := m.newID()

	var start, end []*CommandState
	if sc == ec {
		l, rest := css[sc].fork(ss)
		mid, r := rest.fork(es - ss - 1)
		from, to := l.rawEnd(), mid.rawEnd()
		start = append(slices.Clone(css[:sc]), l, m.joinState(from, to, l, segID))
		if r != nil {
			start = append(start, r)
		}
		start = append(start, css[sc+1:]...)
		end = []*CommandState{m.moveState(from, l), mid, m.joinState(to, from, mid, segID)}
	} else {
		sl, sr := css[sc].fork(ss)
		el, er := css[ec].fork(es)
		from, to := sl.rawEnd(), el.rawEnd()
		start = append(slices.Clone(css[:sc]), sl, m.joinState(from, to, sl, segID))
		if er != nil {
			start = append(start, er)
		}
		start = append(start, css[ec+1:]...)
		end = []*CommandState{m.moveState(from, sl)}
		if sr != nil {
			end = append(end, sr)
		}
		end = append(end, css[sc+1:ec]...)
		end = append(end, el, m.joinState(to, from, el, segID))
	}

	a, b := newLeaf(start), newLeaf(end)
	if parentPath := ref.path.parent(); !nested && parentPath != nil {
		m.replaceLeaf(ref, a, b)
		parent := nodeAt(m.subPaths, parentPath)
		segments := append(slices.Clone(parent.segments), segID)
		m.subPaths = replaceAt(m.subPaths, parentPath, parent.withSegments(segments))
	} else {
		node := ref.leaf.withChildren([]*SubPathState{a, b}).withSegments([]ID{segID})
		m.replaceLeaf(ref, node)
	}
	m.insertLeaf(ref.spsIdx + 1)
	m.log().Debug("mutator: filled split",
		"subpath", subIdx, "start", startIdx, "end", endIdx, "segment", segID, "nested", nested)
	return m
}

// UnsplitStrokedSubPath rejoins sub-path subIdx with the sub-paths it was
// split from, restoring the content of their common parent.
func (m *Mutator) UnsplitStrokedSubPath(subIdx int) *Mutator {
	if m.err != nil {
		return m
	}
	ref, err := m.leafAt(subIdx)
	if err != nil {
		return m.fail("unsplit stroked sub-path", err)
	}
	parentPath := ref.path.parent()
	if parentPath == nil {
		m.log().Warn("mutator: unsplit ignored, sub-path was not split", "subpath", subIdx)
		return m
	}
	m.rejoin(parentPath)
	return m
}

// DeleteSubPathSplitSegment removes the join segment at command cmdIdx of
// sub-path subIdx together with its partner, merging the two sub-paths
// they close. Splits nested under either of those sub-paths were cut
// through the removed segment and are discarded with it.
func (m *Mutator) DeleteSubPathSplitSegment(subIdx, cmdIdx int) *Mutator {
	const op = "delete split segment"
	if m.err != nil {
		return m
	}
	ref, err := m.commandAt(subIdx, cmdIdx)
	if err != nil {
		return m.fail(op, err)
	}
	segID := ref.commandState().splitSegmentID
	ownerPath, ok := segmentOwner(m.subPaths, ref.path, segID)
	if segID == 0 || !ok {
		m.log().Warn("mutator: delete ignored, command is not a split segment",
			"subpath", subIdx, "command", cmdIdx)
		return m
	}
	owner := nodeAt(m.subPaths, ownerPath)
	self := ref.path[len(ownerPath)]
	sibling := -1
	for i, child := range owner.splitSubPaths {
		if i != self && hasSegment(child, segID) {
			sibling = i
			break
		}
	}
	if sibling < 0 {
		m.log().Warn("mutator: delete ignored, split segment has no partner",
			"subpath", subIdx, "segment", segID)
		return m
	}
	if len(owner.splitSubPaths) == 2 {
		m.rejoin(ownerPath)
		return m
	}

	ia, ib := min(self, sibling), max(self, sibling)
	a, b := owner.splitSubPaths[ia], owner.splitSubPaths[ib]
	merged, ok := stitch(materialize(a.asLeaf()), materialize(b.asLeaf()), segID)
	if !ok {
		return m.fail(op, fmt.Errorf("%w: split segment %d does not join its sub-paths", ErrInvariant, segID))
	}
	firstA := firstLeafIndex(m.subPaths, append(slices.Clone(ownerPath), ia))
	firstB := firstLeafIndex(m.subPaths, append(slices.Clone(ownerPath), ib))

	children := slices.Clone(owner.splitSubPaths)
	children[ia] = newLeaf(merged)
	children = slices.Delete(children, ib, ib+1)
	segments := slices.DeleteFunc(slices.Clone(owner.segments), func(id ID) bool { return id == segID })
	m.subPaths = replaceAt(m.subPaths, ownerPath, owner.withChildren(children).withSegments(segments))

	// b lies after a, so its leaves are renumbered first.
	m.collapseLeaves(firstB, b.numLeaves())
	m.removeLeaf(firstB)
	m.collapseLeaves(firstA, a.numLeaves())
	m.log().Debug("mutator: split segment deleted", "segment", segID, "siblings", len(children))
	return m
}

// segmentOwner returns the path of the nearest ancestor of the leaf at
// leafPath that was cut by split segment segID.
func segmentOwner(forest []*SubPathState, leafPath nodePath, segID ID) (nodePath, bool) {
	if segID == 0 {
		return nil, false
	}
	for k := len(leafPath) - 1; k >= 1; k-- {
		path := slices.Clone(leafPath[:k])
		if nodeAt(forest, path).ownsSegment(segID) {
			return path, true
		}
	}
	return nil, false
}

// rejoin turns the internal node at parentPath back into a leaf with
// the content it had before it was split.
func (m *Mutator) rejoin(parentPath nodePath) {
	parent := nodeAt(m.subPaths, parentPath)
	first := firstLeafIndex(m.subPaths, parentPath)
	count := parent.numLeaves()
	m.subPaths = replaceAt(m.subPaths, parentPath, parent.asLeaf())
	m.collapseLeaves(first, count)
	m.log().Debug("mutator: sub-paths rejoined", "first", first, "count", count)
}

// stitch merges two closed command state lists that share the join
// segment segID, traversed in opposite directions. Pieces of the same
// backing command that meet at a junction are merged back together.
func stitch(a, b []*CommandState, segID ID) ([]*CommandState, bool) {
	a, b = closeTrailing(a), closeTrailing(b)
	ja, jb := segmentIndex(a, segID), segmentIndex(b, segID)
	if ja < 1 || jb < 1 {
		return nil, false
	}
	if !a[ja].rawStart().Equals(b[jb].rawEnd()) {
		b = reverseCommandStates(b)
		jb = segmentIndex(b, segID)
		if jb < 1 || !a[ja].rawStart().Equals(b[jb].rawEnd()) {
			return nil, false
		}
	}
	out := []*CommandState{a[0]}
	out = appendMerged(out, a[1:ja])
	out = appendMerged(out, b[jb+1:])
	out = appendMerged(out, b[1:jb])
	out = appendMerged(out, a[ja+1:])
	return out, true
}

// appendMerged appends part to out, merging each state into its
// predecessor when both continue the same backing command. The opening
// move is never merged.
func appendMerged(out, part []*CommandState) []*CommandState {
	for _, cs := range part {
		if last := len(out) - 1; last > 0 && canMerge(out[last], cs) {
			out[last] = merge(out[last], cs)
			continue
		}
		out = append(out, cs)
	}
	return out
}

func segmentIndex(css []*CommandState, segID ID) int {
	for i, cs := range css {
		if i > 0 && cs.splitSegmentID == segID {
			return i
		}
	}
	return -1
}

// hasSegment reports whether the content of node, retained content for
// an internal node, holds split segment segID.
func hasSegment(node *SubPathState, segID ID) bool {
	return segmentIndex(node.commandStates, segID) > 0
}

// moveState creates a zero-length move to p for the start of a new
// sub-path.
func (m *Mutator) moveState(p Point, like *CommandState) *CommandState {
	cmd := Command{id: m.newID(), typ: MoveTo, points: []Point{p, p}, hasStart: true}
	return syntheticState(cmd, like, 0)
}

// joinState creates a join segment from one cut point to the other.
func (m *Mutator) joinState(from, to Point, like *CommandState, segID ID) *CommandState {
	cmd := Command{id: m.newID(), typ: LineTo, points: []Point{from, to}, hasStart: true}
	return syntheticState(cmd, like, segID)
}

// insertLeaf records a leaf inserted at flattened index at and gives it
// the last external slot.
func (m *Mutator) insertLeaf(at int) {
	for i, v := range m.ordering {
		if v >= at {
			m.ordering[i]++
		}
	}
	m.ordering = append(m.ordering, at)
}

// removeLeaf drops the ordering entry of the leaf at flattened index
// idx and renumbers the leaves after it.
func (m *Mutator) removeLeaf(idx int) {
	out := m.ordering[:0]
	for _, v := range m.ordering {
		switch {
		case v == idx:
			continue
		case v > idx:
			v--
		}
		out = append(out, v)
	}
	m.ordering = out
}

// collapseLeaves replaces the count leaves starting at flattened index
// first by a single leaf at first.
func (m *Mutator) collapseLeaves(first, count int) {
	out := m.ordering[:0]
	for _, v := range m.ordering {
		switch {
		case v > first && v < first+count:
			continue
		case v >= first+count:
			v -= count - 1
		}
		out = append(out, v)
	}
	m.ordering = out
}
