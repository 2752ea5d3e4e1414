// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathmorph

import (
	"slices"
	"testing"
)

func TestFloorMod(t *testing.T) {
	tests := []struct {
		a, n, want int
	}{
		{5, 3, 2},
		{-1, 3, 2},
		{-3, 3, 0},
		{0, 4, 0},
		{7, 0, 0},
	}
	for _, tt := range tests {
		if got := floorMod(tt.a, tt.n); got != tt.want {
			t.Errorf("floorMod(%d, %d) = %d, want %d", tt.a, tt.n, got, tt.want)
		}
	}
}

func TestOrderingRenumbering(t *testing.T) {
	m := &Mutator{ordering: []int{2, 0, 1}}
	m.insertLeaf(1)
	if want := []int{3, 0, 2, 1}; !slices.Equal(m.ordering, want) {
		t.Fatalf("insertLeaf(1) ordering = %v, want %v", m.ordering, want)
	}
	m.removeLeaf(1)
	if want := []int{2, 0, 1}; !slices.Equal(m.ordering, want) {
		t.Fatalf("removeLeaf(1) ordering = %v, want %v", m.ordering, want)
	}
	m.ordering = []int{4, 1, 0, 2, 3}
	m.collapseLeaves(1, 3)
	if want := []int{2, 1, 0}; !slices.Equal(m.ordering, want) {
		t.Fatalf("collapseLeaves(1, 3) ordering = %v, want %v", m.ordering, want)
	}
}

func TestLocateAndReplace(t *testing.T) {
	leaf := func() *SubPathState { return newLeaf(nil) }
	inner := leaf().withChildren([]*SubPathState{leaf(), leaf().withChildren([]*SubPathState{leaf(), leaf()})})
	forest := []*SubPathState{leaf(), inner, leaf()}

	tests := []struct {
		spsIdx int
		want   nodePath
	}{
		{0, nodePath{0}},
		{1, nodePath{1, 0}},
		{2, nodePath{1, 1, 0}},
		{3, nodePath{1, 1, 1}},
		{4, nodePath{2}},
	}
	for _, tt := range tests {
		got, ok := locate(forest, tt.spsIdx)
		if !ok || !slices.Equal(got, tt.want) {
			t.Errorf("locate(%d) = %v, %v, want %v", tt.spsIdx, got, ok, tt.want)
		}
		if idx := firstLeafIndex(forest, tt.want); idx != tt.spsIdx {
			t.Errorf("firstLeafIndex(%v) = %d, want %d", tt.want, idx, tt.spsIdx)
		}
	}
	if _, ok := locate(forest, 5); ok {
		t.Error("locate(5) should fail")
	}

	repl := replaceAt(forest, nodePath{1, 1, 0}, leaf(), leaf())
	if got := len(flattenForest(repl)); got != 6 {
		t.Errorf("leaves after replace = %d, want 6", got)
	}
	if got := len(flattenForest(forest)); got != 5 {
		t.Errorf("source forest changed: %d leaves, want 5", got)
	}
	if repl[0] != forest[0] || repl[2] != forest[2] {
		t.Error("untouched trees should be shared")
	}
}

func TestCommandStateReverseTwice(t *testing.T) {
	cmd := Command{id: 7, typ: CubicTo, points: []Point{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}, hasStart: true}
	ids := []ID{8, 9}
	next := 0
	cs := newCommandState(cmd).splitAtIndex(0, []float64{0.25, 0.5}, func() ID {
		id := ids[next]
		next++
		return id
	})
	back := cs.reverse().reverse()

	want, got := cs.rawCommands(), back.rawCommands()
	if len(got) != len(want) {
		t.Fatalf("pieces = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID() != want[i].ID() || !got[i].End().Equals(want[i].End()) {
			t.Errorf("piece %d = %v (id %d), want %v (id %d)", i, got[i], got[i].ID(), want[i], want[i].ID())
		}
	}
}
