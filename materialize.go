// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

// Materialization turns a leaf's lazy reversal flag and shift offset into
// an explicit command state list. It runs at build time and whenever an
// edit needs the leaf in its rendered order.

// materialize returns the leaf's command states in rendered order.
func materialize(leaf *SubPathState) []*CommandState {
	css := leaf.commandStates
	if len(css) == 0 {
		return nil
	}
	n := leaf.NumCommands()
	if leaf.isReversed {
		css = reverseCommandStates(css)
	}
	if k := leaf.shiftOffset; k != 0 && n > 1 {
		if leaf.isReversed {
			k = floorMod(n-1-k, n-1)
		}
		if k != 0 {
			css = shiftCommandStates(css, k)
		}
	}
	return css
}

// reverseCommandStates reverses a sub-path. The opening move is rebuilt
// to end at the old final point and every other state is reversed and
// placed in reverse order.
func reverseCommandStates(css []*CommandState) []*CommandState {
	css = closeTrailing(css)
	out := make([]*CommandState, 0, len(css))
	out = append(out, css[0].withEnd(css[len(css)-1].rawEnd()))
	for i := len(css) - 1; i >= 1; i-- {
		out = append(out, css[i].reverse())
	}
	return out
}

// shiftCommandStates rotates a closed sub-path so that it starts at the
// end of flat command k. The state holding command k is forked when k
// falls inside it.
func shiftCommandStates(css []*CommandState, k int) []*CommandState {
	css = closeTrailing(css)
	c, s, ok := locateFlat(css, k)
	if !ok || c == 0 {
		return css
	}
	left, right := css[c].fork(s)

	out := make([]*CommandState, 0, len(css)+2)
	out = append(out, css[0].withEnd(left.rawEnd()))
	if right != nil {
		out = append(out, right)
	}
	out = append(out, css[c+1:]...)
	out = append(out, css[1:c]...)
	out = append(out, left)
	return out
}

// closeTrailing rewrites a trailing Close as a line so that the list
// can be reordered without changing its geometry.
func closeTrailing(css []*CommandState) []*CommandState {
	last := len(css) - 1
	if last < 1 || css[last].backing.typ != Close {
		return css
	}
	out := append([]*CommandState(nil), css...)
	out[last] = css[last].closeAsLine()
	return out
}

// floorMod returns a mod n in the range [0, n).
func floorMod(a, n int) int {
	if n <= 0 {
		return 0
	}
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
