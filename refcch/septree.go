package refcch

import "github.com/lindqvist-dev/ctnr/comps"

var _ comps.ISeparatorDecomposition = &SeparatorTree{}

// SeparatorTree is a literal, hand-built comps.ISeparatorDecomposition:
// tests construct one directly from parallel arrays matching spec.md
// §8's scenario descriptions (e.g. S1's "root separates {2}, left
// subtree {0,1}, right {3,4}") instead of running a real nested
// dissection, which is explicitly out of scope (spec §1).
type SeparatorTree struct {
	firstSep     []int32
	lastSep      []int32
	leftChild    []int32
	rightSibling []int32
	order        []int32
}

// NewSeparatorTree builds a tree from parallel node arrays (indexed by
// separator-node id, with id 0 the root) and the global vertex order
// permutation. All four node arrays must have equal length.
func NewSeparatorTree(firstSep, lastSep, leftChild, rightSibling, order []int32) *SeparatorTree {
	return &SeparatorTree{
		firstSep:     firstSep,
		lastSep:      lastSep,
		leftChild:    leftChild,
		rightSibling: rightSibling,
		order:        order,
	}
}

func (self *SeparatorTree) Size() int32 {
	return int32(len(self.firstSep))
}

func (self *SeparatorTree) VertexCount() int32 {
	return int32(len(self.order))
}

func (self *SeparatorTree) LeftChild(node int32) int32 {
	return self.leftChild[node]
}

func (self *SeparatorTree) RightSibling(node int32) int32 {
	return self.rightSibling[node]
}

func (self *SeparatorTree) FirstSeparatorVertex(node int32) int32 {
	return self.firstSep[node]
}

func (self *SeparatorTree) LastSeparatorVertex(node int32) int32 {
	return self.lastSep[node]
}

func (self *SeparatorTree) Order(pos int32) int32 {
	return self.order[pos]
}

// FlatSeparatorTree builds the degenerate one-node decomposition where
// every vertex belongs to the root's range, the way S3's 4-clique
// scenario (a single separator containing all vertices) is described.
func FlatSeparatorTree(n int32) *SeparatorTree {
	order := make([]int32, n)
	for i := range order {
		order[i] = int32(i)
	}
	return NewSeparatorTree(
		[]int32{0},
		[]int32{n},
		[]int32{0},
		[]int32{0},
		order,
	)
}
