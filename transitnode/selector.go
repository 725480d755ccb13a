// Package transitnode implements C2, the Transit Node Selector: a
// deterministic walk of the separator tree down to a configured depth K
// collecting every vertex in range as a transit node, the way the
// teacher's tile-preprocessing walks a partition once and records a
// derived per-tile vertex list (graph/pre_process_tiles.go's
// _GetInOutNodes) rather than recomputing membership on every lookup.
package transitnode

import (
	"sort"

	"github.com/lindqvist-dev/ctnr/comps"
	. "github.com/lindqvist-dev/ctnr/util"
)

// Set is the transit-node list TN, sorted by level ascending with ties
// broken by insertion (tree-walk) order, plus the dense tnIndex lookup
// from original vertex id to position in TN.
type Set struct {
	TN      Array[int32]
	tnIndex Dict[int32, int32]
}

// Count returns M, the number of transit nodes.
func (self *Set) Count() int {
	return len(self.TN)
}

// IndexOf returns the position of original vertex id v in TN, or
// (0, false) if v is not a transit node.
func (self *Set) IndexOf(v int32) (int32, bool) {
	idx, ok := self.tnIndex[v]
	return idx, ok
}

// Select walks sep from the root with depth starting at 0 (spec §4.2).
// K < 0 or an empty decomposition yields an empty set, so every query
// degrades to local.
func Select(sep comps.ISeparatorDecomposition, level Array[int16], k int32) *Set {
	set := &Set{
		TN:      NewArray[int32](0),
		tnIndex: NewDict[int32, int32](0),
	}
	if k < 0 || sep.VertexCount() == 0 || sep.Size() == 0 {
		return set
	}

	list := NewList[int32](16)
	walk(sep, 0, 0, k, &list)

	sort.SliceStable(list, func(i, j int) bool {
		return level[list[i]] < level[list[j]]
	})

	set.TN = NewArray[int32](len(list))
	for pos, v := range list {
		set.TN[pos] = v
		set.tnIndex[v] = int32(pos)
	}
	return set
}

// FromArray reconstructs a Set from a previously computed TN array,
// rebuilding tnIndex deterministically from position. Used by ctnrio to
// restore a Set from a serialized index without re-walking the
// separator tree (spec §8 P7: the round-trip must reproduce TN exactly,
// and tnIndex is a pure function of TN's order).
func FromArray(tn Array[int32]) *Set {
	set := &Set{
		TN:      tn,
		tnIndex: NewDict[int32, int32](len(tn)),
	}
	for pos, v := range tn {
		set.tnIndex[v] = int32(pos)
	}
	return set
}

// walk recurses depth-first from node, appending every vertex whose
// separator node lies at depth <= k, then always recursing into
// children regardless of whether this node qualified (spec §4.2 step 3).
func walk(sep comps.ISeparatorDecomposition, node int32, depth int32, k int32, out *List[int32]) {
	if depth <= k {
		first := sep.FirstSeparatorVertex(node)
		last := sep.LastSeparatorVertex(node)
		for i := first; i < last; i++ {
			out.Add(sep.Order(i))
		}
	}

	child := sep.LeftChild(node)
	for child != 0 {
		walk(sep, child, depth+1, k, out)
		child = sep.RightSibling(child)
	}
}
