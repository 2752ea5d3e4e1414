// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

// PathState is an immutable snapshot of a path: the sub-path forest, the
// ordering that maps external sub-path indices to leaves, the number of
// trailing collapsing sub-paths and the commands built from them.
//
// A PathState is produced by Mutator.Build and never changes afterwards.
type PathState struct {
	subPaths        []*SubPathState
	subPathOrdering []int
	numCollapsing   int
	commands        []Command
	subPathStarts   []int
	nextID          ID
}

// SubPaths returns the top-level nodes of the forest.
func (s *PathState) SubPaths() []*SubPathState {
	return append([]*SubPathState(nil), s.subPaths...)
}

// SubPathOrdering returns the permutation from external sub-path index
// to flattened leaf index.
func (s *PathState) SubPathOrdering() []int {
	return append([]int(nil), s.subPathOrdering...)
}

// NumCollapsingSubPaths returns the number of trailing collapsing
// sub-paths in the forest.
func (s *PathState) NumCollapsingSubPaths() int {
	return s.numCollapsing
}

// Commands returns the built command sequence.
func (s *PathState) Commands() []Command {
	return append([]Command(nil), s.commands...)
}

// NextID returns the next unused id of the document.
func (s *PathState) NextID() ID {
	return s.nextID
}

// Leaves returns the leaves of the forest in depth-first order.
func (s *PathState) Leaves() []*SubPathState {
	return flattenForest(s.subPaths)
}

// flattenForest returns the leaves of every tree in depth-first order.
func flattenForest(forest []*SubPathState) []*SubPathState {
	var leaves []*SubPathState
	for _, root := range forest {
		leaves = root.appendLeaves(leaves)
	}
	return leaves
}

// nodePath addresses a node of the forest by child indices, starting
// with the index of its top-level tree.
type nodePath []int

// parent returns the path of the node's parent, or nil for a top-level
// node.
func (p nodePath) parent() nodePath {
	if len(p) <= 1 {
		return nil
	}
	return p[:len(p)-1]
}

// locate returns the path of the leaf with flattened index spsIdx.
func locate(forest []*SubPathState, spsIdx int) (nodePath, bool) {
	var path nodePath
	remaining := spsIdx
	children := forest
	for {
		found := false
		for i, node := range children {
			n := node.numLeaves()
			if remaining >= n {
				remaining -= n
				continue
			}
			path = append(path, i)
			if node.IsLeaf() {
				return path, true
			}
			children = node.splitSubPaths
			found = true
			break
		}
		if !found {
			return nil, false
		}
	}
}

// nodeAt returns the node addressed by path.
func nodeAt(forest []*SubPathState, path nodePath) *SubPathState {
	node := forest[path[0]]
	for _, i := range path[1:] {
		node = node.splitSubPaths[i]
	}
	return node
}

// firstLeafIndex returns the flattened index of the first leaf under the
// node addressed by path.
func firstLeafIndex(forest []*SubPathState, path nodePath) int {
	idx := 0
	children := forest
	for _, i := range path {
		for _, sibling := range children[:i] {
			idx += sibling.numLeaves()
		}
		children = children[i].splitSubPaths
	}
	return idx
}

// replaceAt returns a new forest in which the node addressed by path is
// replaced by repl, which may hold any number of nodes. Every ancestor
// on the path is copied; untouched siblings are shared.
func replaceAt(forest []*SubPathState, path nodePath, repl ...*SubPathState) []*SubPathState {
	i := path[0]
	var mid []*SubPathState
	if len(path) == 1 {
		mid = repl
	} else {
		node := forest[i]
		children := replaceAt(node.splitSubPaths, path[1:], repl...)
		mid = []*SubPathState{node.withChildren(children)}
	}
	out := make([]*SubPathState, 0, len(forest)-1+len(mid))
	out = append(out, forest[:i]...)
	out = append(out, mid...)
	out = append(out, forest[i+1:]...)
	return out
}
