package sepdecomp

import (
	"testing"

	"github.com/lindqvist-dev/ctnr/refcch"
)

// s1Tree builds the separator tree from spec.md's S1 scenario: a
// 5-vertex path 0-1-2-3-4, root separates {2}, left subtree {0,1},
// right subtree {3,4}.
func s1Tree() *refcch.SeparatorTree {
	// node 0: root, vertex range [2,3) -> original id 2
	// node 1: left child, vertex range [0,2) -> original ids 0,1
	// node 2: right sibling of node 1, vertex range [3,5) -> original ids 3,4
	return refcch.NewSeparatorTree(
		[]int32{2, 0, 3},
		[]int32{3, 2, 5},
		[]int32{1, 0, 0},
		[]int32{0, 2, 0},
		[]int32{0, 1, 2, 3, 4},
	)
}

func TestBuildAssignsLevels(t *testing.T) {
	h := Build(s1Tree())

	if h.Level(2) != 0 {
		t.Errorf("level(2) = %v; want 0", h.Level(2))
	}
	if h.Level(0) != 1 || h.Level(1) != 1 {
		t.Errorf("level(0)=%v level(1)=%v; want 1, 1", h.Level(0), h.Level(1))
	}
	if h.Level(3) != 1 || h.Level(4) != 1 {
		t.Errorf("level(3)=%v level(4)=%v; want 1, 1", h.Level(3), h.Level(4))
	}
}

func TestLowestCommonSeparatorAncestor(t *testing.T) {
	h := Build(s1Tree())

	if lca := h.LowestCommonSeparatorAncestor(0, 4); h.Depth(lca) != 0 {
		t.Errorf("depth(lca(0,4)) = %v; want 0", h.Depth(lca))
	}
	if lca := h.LowestCommonSeparatorAncestor(0, 1); h.Depth(lca) != 1 {
		t.Errorf("depth(lca(0,1)) = %v; want 1", h.Depth(lca))
	}
	if lca := h.LowestCommonSeparatorAncestor(2, 2); h.Depth(lca) != 0 {
		t.Errorf("depth(lca(2,2)) = %v; want 0", h.Depth(lca))
	}
}

func TestFlatDecompositionSingleLevel(t *testing.T) {
	h := Build(refcch.FlatSeparatorTree(4))
	for v := int32(0); v < 4; v++ {
		if h.Level(v) != 0 {
			t.Errorf("level(%v) = %v; want 0", v, h.Level(v))
		}
	}
	lca := h.LowestCommonSeparatorAncestor(0, 3)
	if h.Depth(lca) != 0 {
		t.Errorf("depth(lca(0,3)) = %v; want 0", h.Depth(lca))
	}
}
