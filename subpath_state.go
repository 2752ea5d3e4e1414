// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import "slices"

// SubPathState is an immutable node of the sub-path tree.
//
// A leaf holds an ordered list of command states together with a
// reversal flag and a shift offset that are applied lazily at build
// time. An internal node holds its split children. Internal nodes also
// keep the content they had as a leaf right before they were split;
// that content is never rendered and is used to rejoin the children.
// segments lists the filled splits that cut the node into its current
// children.
type SubPathState struct {
	commandStates []*CommandState
	isReversed    bool
	shiftOffset   int
	splitSubPaths []*SubPathState
	segments      []ID
}

// newLeaf creates a leaf from command states in authored order.
func newLeaf(css []*CommandState) *SubPathState {
	return &SubPathState{commandStates: css}
}

// IsLeaf reports whether the node has no split children.
func (s *SubPathState) IsLeaf() bool {
	return len(s.splitSubPaths) == 0
}

// CommandStates returns the node's command states in stored order.
func (s *SubPathState) CommandStates() []*CommandState {
	return append([]*CommandState(nil), s.commandStates...)
}

// SplitSubPaths returns the node's split children.
func (s *SubPathState) SplitSubPaths() []*SubPathState {
	return append([]*SubPathState(nil), s.splitSubPaths...)
}

// IsReversed reports whether the leaf renders in reverse.
func (s *SubPathState) IsReversed() bool {
	return s.isReversed
}

// ShiftOffset returns the rotation of the leaf's start point, counted in
// commands of the authored orientation.
func (s *SubPathState) ShiftOffset() int {
	return s.shiftOffset
}

// NumCommands returns the number of commands the leaf renders.
func (s *SubPathState) NumCommands() int {
	n := 0
	for _, cs := range s.commandStates {
		n += cs.NumCommands()
	}
	return n
}

// IsClosed reports whether the leaf ends where its opening move ends.
func (s *SubPathState) IsClosed() bool {
	if len(s.commandStates) < 2 {
		return false
	}
	first := s.commandStates[0].rawEnd()
	last := s.commandStates[len(s.commandStates)-1].rawEnd()
	return first.Equals(last)
}

// Commands returns the commands of a leaf with reversal and shift
// applied and transforms materialized.
func (s *SubPathState) Commands() []Command {
	var out []Command
	for _, cs := range materialize(s) {
		out = append(out, cs.Commands()...)
	}
	return out
}

func (s *SubPathState) clone() *SubPathState {
	c := *s
	return &c
}

func (s *SubPathState) withCommandStates(css []*CommandState) *SubPathState {
	c := s.clone()
	c.commandStates = css
	return c
}

func (s *SubPathState) withReversed(reversed bool) *SubPathState {
	c := s.clone()
	c.isReversed = reversed
	return c
}

func (s *SubPathState) withShiftOffset(offset int) *SubPathState {
	c := s.clone()
	c.shiftOffset = offset
	return c
}

func (s *SubPathState) withChildren(children []*SubPathState) *SubPathState {
	c := s.clone()
	c.splitSubPaths = children
	return c
}

func (s *SubPathState) withSegments(segments []ID) *SubPathState {
	c := s.clone()
	c.segments = segments
	return c
}

// ownsSegment reports whether split segment segID cut this node.
func (s *SubPathState) ownsSegment(segID ID) bool {
	return slices.Contains(s.segments, segID)
}

// asLeaf drops the node's children, turning the retained content back
// into a renderable leaf.
func (s *SubPathState) asLeaf() *SubPathState {
	c := s.withChildren(nil)
	c.segments = nil
	return c
}

// reverted returns a leaf in authored form: no reversal, no shift, and
// every command state reduced to a single unconverted piece.
func (s *SubPathState) reverted() *SubPathState {
	css := make([]*CommandState, len(s.commandStates))
	for i, cs := range s.commandStates {
		css[i] = cs.revert()
	}
	return &SubPathState{commandStates: css}
}

// mapCommandStates applies fn to the command states of every node in
// the tree rooted at s, internal nodes included.
func (s *SubPathState) mapCommandStates(fn func(*CommandState) *CommandState) *SubPathState {
	c := s.clone()
	if len(s.commandStates) > 0 {
		c.commandStates = make([]*CommandState, len(s.commandStates))
		for i, cs := range s.commandStates {
			c.commandStates[i] = fn(cs)
		}
	}
	if len(s.splitSubPaths) > 0 {
		c.splitSubPaths = make([]*SubPathState, len(s.splitSubPaths))
		for i, child := range s.splitSubPaths {
			c.splitSubPaths[i] = child.mapCommandStates(fn)
		}
	}
	return c
}

// appendLeaves appends the leaves of the tree rooted at s to dst in
// depth-first order.
func (s *SubPathState) appendLeaves(dst []*SubPathState) []*SubPathState {
	if s.IsLeaf() {
		return append(dst, s)
	}
	for _, child := range s.splitSubPaths {
		dst = child.appendLeaves(dst)
	}
	return dst
}

// numLeaves returns the number of leaves under s.
func (s *SubPathState) numLeaves() int {
	if s.IsLeaf() {
		return 1
	}
	n := 0
	for _, child := range s.splitSubPaths {
		n += child.numLeaves()
	}
	return n
}

// locateFlat finds the command state and piece holding flat command
// index idx of css.
func locateFlat(css []*CommandState, idx int) (csIdx, splitIdx int, ok bool) {
	if idx < 0 {
		return 0, 0, false
	}
	for i, cs := range css {
		n := cs.NumCommands()
		if idx < n {
			return i, idx, true
		}
		idx -= n
	}
	return 0, 0, false
}

// flatIndex returns the flat command index of piece splitIdx of css[csIdx].
func flatIndex(css []*CommandState, csIdx, splitIdx int) int {
	n := splitIdx
	for _, cs := range css[:csIdx] {
		n += cs.NumCommands()
	}
	return n
}
