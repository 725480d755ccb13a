// Package comps collects the external-collaborator interfaces the CTNR
// index borrows rather than owns (spec §6): the separator decomposition,
// the separator hierarchy's LCA operation, the CCH's upward graph and
// customized weights, a minimum-weighted CH query, and the CCH
// elimination-tree query used for local fallback. Naming follows the
// teacher's I<Name> convention (comps.IGraphBase, comps.IWeighting).
package comps

// ISeparatorDecomposition is the raw, metric-independent nested
// dissection tree the index is built over. Construction of this tree is
// explicitly out of scope (spec §1); the index only reads it.
type ISeparatorDecomposition interface {
	// Size returns the number of separator-tree nodes, T.
	Size() int32
	// VertexCount returns N, the number of vertices in the graph.
	VertexCount() int32
	// LeftChild and RightSibling return 0 (the root id) to mean "absent".
	LeftChild(node int32) int32
	RightSibling(node int32) int32
	// FirstSeparatorVertex/LastSeparatorVertex give the half-open range
	// into Order() owned directly by this separator node.
	FirstSeparatorVertex(node int32) int32
	LastSeparatorVertex(node int32) int32
	// Order maps a position in the global vertex order to an original
	// vertex id.
	Order(pos int32) int32
}

// IHierarchy exposes the depth and lowest-common-separator-ancestor
// operations the query dispatcher (C6) needs to classify a query as
// local or transit (spec §6, item 2).
type IHierarchy interface {
	Depth(node int32) int32
	LowestCommonSeparatorAncestor(u, v int32) int32
}

// IUpwardGraph is the CCH's upward-triangulated graph G-up (spec §6,
// item 3): edge iteration only ever proceeds towards strictly higher
// rank, and ranks are a bijection with original vertex ids.
type IUpwardGraph interface {
	ElementCount() int32
	// ForEachUpwardEdge calls visit(head, edgeId) for every edge
	// (rv -> head) with rank(head) > rank(rv).
	ForEachUpwardEdge(rv int32, visit func(head int32, edgeId int32))
	RankToOriginal(rank int32) int32
	OriginalToRank(original int32) int32
}

// ICCHWeights is the CCH customization output (spec §6, item 4):
// parallel weight arrays over G-up's edge ids, keyed by direction.
type ICCHWeights interface {
	UpwardWeight(edgeId int32) int32
	DownwardWeight(edgeId int32) int32
}

// ICHQuery is a point-to-point query handle on the minimum-weighted CH
// projection (spec §6, item 4), used by C4 to fill the distance table.
// Implementations MUST be safe for one query at a time per instance;
// the distance-table builder gives each worker its own instance.
type ICHQuery interface {
	Query(src, dst int32) int32
}

// ICHQueryFactory creates ICHQuery instances with independent scratch,
// so C4's worker pool can hand one per goroutine (spec §5: "per-worker
// scratch ... must be thread-local").
type ICHQueryFactory interface {
	NewQuery() ICHQuery
}

// IEliminationTreeQuery is the CCH elimination-tree query used for the
// local-mode fallback (spec §6, item 5). It is exact over the full
// graph, so no soundness is lost when the LCA classification routes a
// query here.
type IEliminationTreeQuery interface {
	Run(s, t int32) int32
}
