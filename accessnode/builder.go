// Package accessnode implements C3, the Access-Node Builder: a single
// pass over the CCH's upward graph that accumulates, for every vertex,
// the minimum distance to every transit node reachable by an
// upward-monotone (forward) or downward-monotone (backward) path. It is
// deliberately single-threaded (spec §5) and reuses one scratch buffer
// across vertices the way the teacher's RPHAST up-sweep/down-sweep
// (batched/onetomany/rphast.go) reuses one Flags buffer across a whole
// run instead of allocating per node.
package accessnode

import (
	"sort"

	"github.com/lindqvist-dev/ctnr/comps"
	"github.com/lindqvist-dev/ctnr/structs"
	"github.com/lindqvist-dev/ctnr/transitnode"
	. "github.com/lindqvist-dev/ctnr/util"
)

// scratch is a generation-counted dense buffer over transit-node
// positions, so a per-vertex reset is O(touched) instead of O(M).
type scratch struct {
	dist    []int32
	gen     []int32
	touched []int32
	current int32
}

func newScratch(m int) *scratch {
	return &scratch{
		dist:    make([]int32, m),
		gen:     make([]int32, m),
		touched: make([]int32, 0, 8),
	}
}

func (self *scratch) reset() {
	self.current += 1
	self.touched = self.touched[:0]
}

func (self *scratch) relax(pos int32, dist int32) {
	if dist >= structs.Infty {
		return
	}
	if self.gen[pos] != self.current {
		self.gen[pos] = self.current
		self.dist[pos] = dist
		self.touched = append(self.touched, pos)
		return
	}
	if dist < self.dist[pos] {
		self.dist[pos] = dist
	}
}

// materialize emits the touched entries in ascending transit-node
// position, which is exactly the level-ascending, tnIndex-tie-broken
// order spec §4.3 step 4 requires, since transitnode.Select already
// sorted TN that way.
func (self *scratch) materialize(tn *transitnode.Set) structs.AccessList {
	sort.Slice(self.touched, func(i, j int) bool { return self.touched[i] < self.touched[j] })
	out := make(structs.AccessList, len(self.touched))
	for i, pos := range self.touched {
		out[i] = structs.AccessNode{Transit: tn.TN[pos], Dist: self.dist[pos]}
	}
	return out
}

// Build walks rank ids from N-1 down to 0 (the top of the CCH hierarchy
// down to the bottom): since every upward edge (rv -> u) in upgraph has
// rank(u) > rank(rv), F(u)/B(u) must already be finalized before rv's
// relaxation can use them. Spec §4.3's parenthetical "(lowest rank
// first)" does not hold up against its own correctness rationale and
// the edge-direction contract it just stated; see DESIGN.md.
func Build(upgraph comps.IUpwardGraph, weights comps.ICCHWeights, level Array[int16], k int32, tn *transitnode.Set) (F, B []structs.AccessList) {
	n := int(upgraph.ElementCount())
	m := tn.Count()

	F = make([]structs.AccessList, n)
	B = make([]structs.AccessList, n)

	fScratch := newScratch(m)
	bScratch := newScratch(m)

	for rv := n - 1; rv >= 0; rv-- {
		rank := int32(rv)
		fScratch.reset()
		bScratch.reset()

		original := upgraph.RankToOriginal(rank)
		if int32(level[original]) <= k {
			if pos, ok := tn.IndexOf(original); ok {
				fScratch.relax(pos, 0)
				bScratch.relax(pos, 0)
			}
		}

		upgraph.ForEachUpwardEdge(rank, func(u int32, edgeId int32) {
			uw := weights.UpwardWeight(edgeId)
			dw := weights.DownwardWeight(edgeId)

			for _, an := range F[u] {
				pos, ok := tn.IndexOf(an.Transit)
				if !ok {
					continue
				}
				fScratch.relax(pos, structs.AddSaturating(an.Dist, uw))
			}
			for _, an := range B[u] {
				pos, ok := tn.IndexOf(an.Transit)
				if !ok {
					continue
				}
				bScratch.relax(pos, structs.AddSaturating(an.Dist, dw))
			}
		})

		F[rank] = fScratch.materialize(tn)
		B[rank] = bScratch.materialize(tn)
	}

	return F, B
}
