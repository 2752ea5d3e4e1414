// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import (
	"fmt"
	"slices"
)

// Build flattens the forest into the rendered command sequence and
// returns the resulting path. Each leaf is materialized (reversal first,
// then shift), leaves are reordered by the sub-path ordering and every
// opening move is rewritten to start where the previous sub-path ends.
// The first move of the path has no start.
//
// Build returns the error of the first failed edit, if any.
func (m *Mutator) Build() (*Path, error) {
	if m.err != nil {
		return nil, m.err
	}
	leaves := flattenForest(m.subPaths)
	if len(leaves) != len(m.ordering) {
		return nil, fmt.Errorf("build: %w: %d leaves, %d ordering entries",
			ErrInvariant, len(leaves), len(m.ordering))
	}
	rendered := make([][]Command, len(leaves))
	for i, leaf := range leaves {
		rendered[i] = leaf.Commands()
	}

	var cmds []Command
	starts := make([]int, 0, len(m.ordering))
	for _, spsIdx := range m.ordering {
		sub := rendered[spsIdx]
		if len(sub) == 0 {
			continue
		}
		starts = append(starts, len(cmds))
		move := sub[0]
		if len(cmds) == 0 {
			move = move.withoutStart()
		} else {
			move = move.withStart(cmds[len(cmds)-1].End())
		}
		cmds = append(cmds, move)
		cmds = append(cmds, sub[1:]...)
	}

	state := &PathState{
		subPaths:        slices.Clone(m.subPaths),
		subPathOrdering: slices.Clone(m.ordering),
		numCollapsing:   m.numCollapsing,
		commands:        cmds,
		subPathStarts:   starts,
		nextID:          m.nextID,
	}
	m.log().Debug("mutator: built path",
		"subpaths", len(starts), "commands", len(cmds), "collapsing", m.numCollapsing)
	return &Path{state: state}, nil
}
