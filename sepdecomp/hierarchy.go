// Package sepdecomp implements C1, the Separator-Hierarchy Adapter: it
// walks the externally-owned separator-decomposition tree once to derive
// a per-vertex level array and to build an O(1) lowest-common-separator-
// ancestor query, the way the teacher's tile-preprocessing code walks a
// partition tree top-down from the root (graph/pre_process_tiles.go's
// _GetInOutNodes) rather than recursing a binary AST.
package sepdecomp

import (
	"github.com/lindqvist-dev/ctnr/comps"
	. "github.com/lindqvist-dev/ctnr/util"
)

// Hierarchy is the metric-independent structure built once in
// preprocess from the borrowed comps.ISeparatorDecomposition. It
// satisfies comps.IHierarchy for the query engine (C6) and additionally
// exposes Level, the per-vertex depth array C2/C3 consume.
type Hierarchy struct {
	sep comps.ISeparatorDecomposition

	nodeDepth Array[int32] // depth of each separator-tree node, by node id
	level     Array[int16] // depth of the separator node containing v, by original vertex id
	nodeOf    Array[int32] // id of the separator node containing v, by original vertex id

	eulerNodes  List[int32] // separator-node id at each Euler-tour step
	eulerDepths List[int32] // depth at each Euler-tour step
	firstOcc    Array[int32] // first Euler-tour step at which node n appears

	// sparseTable[k][i] holds the Euler-tour index of the minimum-depth
	// entry in the window [i, i+2^k) for O(1) range-minimum LCA queries.
	sparseTable [][]int32
}

var _ comps.IHierarchy = &Hierarchy{}

// Build walks sep once from the root, assigning Level[v] for every
// vertex and recording an Euler tour for LCA queries. Post-condition
// (spec §4.1): every vertex has exactly one level.
func Build(sep comps.ISeparatorDecomposition) *Hierarchy {
	h := &Hierarchy{sep: sep}

	t := sep.Size()
	n := sep.VertexCount()
	h.nodeDepth = NewArray[int32](int(t))
	h.level = NewArray[int16](int(n))
	h.nodeOf = NewArray[int32](int(n))
	h.firstOcc = NewArray[int32](int(t))
	for i := range h.firstOcc {
		h.firstOcc[i] = -1
	}

	h.eulerNodes = NewList[int32](int(t) * 2)
	h.eulerDepths = NewList[int32](int(t) * 2)

	if t > 0 {
		h.walk(0, 0)
	}

	h.buildSparseTable()
	return h
}

// walk performs the recursive DFS from spec §4.1/§4.2: assign nodeDepth
// and level for the current node's vertex range, record the Euler-tour
// entry, then recurse into children via the leftChild/rightSibling
// sibling chain before recording the exit entry.
func (self *Hierarchy) walk(node int32, depth int32) {
	self.nodeDepth[node] = depth

	first := self.sep.FirstSeparatorVertex(node)
	last := self.sep.LastSeparatorVertex(node)
	for i := first; i < last; i++ {
		v := self.sep.Order(i)
		self.level[v] = int16(depth)
		self.nodeOf[v] = node
	}

	self.firstOcc[node] = int32(len(self.eulerNodes))
	self.eulerNodes = append(self.eulerNodes, node)
	self.eulerDepths = append(self.eulerDepths, depth)

	child := self.sep.LeftChild(node)
	for child != 0 {
		self.walk(child, depth+1)
		self.eulerNodes = append(self.eulerNodes, node)
		self.eulerDepths = append(self.eulerDepths, depth)
		child = self.sep.RightSibling(child)
	}
}

func (self *Hierarchy) buildSparseTable() {
	n := len(self.eulerDepths)
	if n == 0 {
		return
	}
	logN := 1
	for (1 << logN) <= n {
		logN += 1
	}
	table := make([][]int32, logN)
	table[0] = make([]int32, n)
	for i := 0; i < n; i++ {
		table[0][i] = int32(i)
	}
	for k := 1; k < logN; k++ {
		half := 1 << (k - 1)
		size := n - (1 << k) + 1
		if size <= 0 {
			table[k] = []int32{}
			continue
		}
		table[k] = make([]int32, size)
		for i := 0; i < size; i++ {
			left := table[k-1][i]
			right := table[k-1][i+half]
			if self.eulerDepths[left] <= self.eulerDepths[right] {
				table[k][i] = left
			} else {
				table[k][i] = right
			}
		}
	}
	self.sparseTable = table
}

func (self *Hierarchy) rangeMinIndex(l, r int32) int32 {
	length := r - l + 1
	k := 0
	for (1 << (k + 1)) <= int(length) {
		k += 1
	}
	left := self.sparseTable[k][l]
	right := self.sparseTable[k][r-int32(1<<k)+1]
	if self.eulerDepths[left] <= self.eulerDepths[right] {
		return left
	}
	return right
}

// Depth returns the depth of separator node n; depth of the root is 0.
func (self *Hierarchy) Depth(node int32) int32 {
	return self.nodeDepth[node]
}

// Level returns the level of vertex v: the depth of the separator node
// that contains it.
func (self *Hierarchy) Level(v int32) int16 {
	return self.level[v]
}

// LowestCommonSeparatorAncestor returns the id of the deepest separator
// node that is an ancestor of (or equal to) both u's and v's containing
// separator nodes.
func (self *Hierarchy) LowestCommonSeparatorAncestor(u, v int32) int32 {
	nu := self.nodeOf[u]
	nv := self.nodeOf[v]
	if nu == nv {
		return nu
	}
	l := self.firstOcc[nu]
	r := self.firstOcc[nv]
	if l > r {
		l, r = r, l
	}
	idx := self.rangeMinIndex(l, r)
	return self.eulerNodes[idx]
}
