// Package query implements C6, the Query Engine: classify a query by
// the depth of the lowest common separator ancestor of its endpoints,
// then either run the pruned three-hop transit enumeration or delegate
// to the borrowed CCH elimination-tree query for local fallback.
package query

import (
	"github.com/lindqvist-dev/ctnr/comps"
	"github.com/lindqvist-dev/ctnr/structs"
	"github.com/lindqvist-dev/ctnr/transitnode"
)

// Engine holds only read-only borrows: the hierarchy and the index's
// customized tables, plus the injected local-fallback query. It never
// mutates anything, so concurrent calls from multiple goroutines need
// no synchronization (spec §5).
type Engine struct {
	hierarchy IHierarchy
	translate RankTranslator
	k         int32
	forward   []structs.AccessList
	backward  []structs.AccessList
	tn        *transitnode.Set
	dist      *structs.DistanceTable
	local     comps.IEliminationTreeQuery
}

// IHierarchy is the subset of comps.IHierarchy the query engine needs;
// declared locally so tests can substitute a trivial hierarchy without
// building a full separator tree.
type IHierarchy interface {
	Depth(node int32) int32
	LowestCommonSeparatorAncestor(u, v int32) int32
}

// RankTranslator supplies the rank id -> original id bijection the
// engine needs to consult the hierarchy. Spec §4.6 gives Query's own
// inputs s, t as rank ids, but §4.1's hierarchy is built over
// firstSep/lastSep/order, which are defined in terms of original ids
// (the global nested-dissection vertex order, independent of CCH rank
// order) - so s and t must be translated before they can be used to
// look up a separator node. comps.IUpwardGraph already exposes this
// mapping, so it doubles as the translator.
type RankTranslator interface {
	RankToOriginal(rank int32) int32
}

func NewEngine(hierarchy IHierarchy, translate RankTranslator, k int32, forward, backward []structs.AccessList, tn *transitnode.Set, dist *structs.DistanceTable, local comps.IEliminationTreeQuery) *Engine {
	return &Engine{
		hierarchy: hierarchy,
		translate: translate,
		k:         k,
		forward:   forward,
		backward:  backward,
		tn:        tn,
		dist:      dist,
		local:     local,
	}
}

// Query returns the shortest-path distance between rank ids s and t,
// or structs.Infty if unreachable.
func (self *Engine) Query(s, t int32) int32 {
	if s == t {
		return 0
	}

	originS := self.translate.RankToOriginal(s)
	originT := self.translate.RankToOriginal(t)
	lca := self.hierarchy.LowestCommonSeparatorAncestor(originS, originT)
	if self.hierarchy.Depth(lca) > self.k {
		return self.local.Run(s, t)
	}
	return self.transitQuery(s, t)
}

// transitQuery implements spec §4.6 step 3: the shortest path must
// cross the separator at lca, whose vertices are all transit nodes
// because its depth is <= k, so it decomposes as s -> p -> ... -> q ->
// t with p in F(s), q in B(t), and the p->q leg read straight from the
// precomputed table.
func (self *Engine) transitQuery(s, t int32) int32 {
	aS := self.forward[s]
	aT := self.backward[t]
	best := structs.Infty

	for _, from := range aS {
		if from.Dist >= best {
			continue
		}
		p, ok := self.tn.IndexOf(from.Transit)
		if !ok {
			continue
		}
		for _, to := range aT {
			if to.Dist >= best {
				continue
			}
			q, ok := self.tn.IndexOf(to.Transit)
			if !ok {
				continue
			}
			mid := self.dist.Get(int(p), int(q))
			if mid >= best {
				continue
			}
			total := structs.AddSaturating(structs.AddSaturating(from.Dist, mid), to.Dist)
			if total < best {
				best = total
			}
		}
	}

	return best
}
