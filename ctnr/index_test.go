package ctnr

import (
	"testing"

	"github.com/lindqvist-dev/ctnr/refcch"
	"github.com/stretchr/testify/require"
)

func s1Components(t *testing.T) (*Index, *refcch.CH) {
	t.Helper()

	graph := refcch.NewGraph(5)
	graph.AddUndirected(0, 1, 1)
	graph.AddUndirected(1, 2, 1)
	graph.AddUndirected(2, 3, 1)
	graph.AddUndirected(3, 4, 1)

	ch := refcch.BuildCH(graph, []int32{0, 1, 4, 2, 3})
	sep := refcch.NewSeparatorTree(
		[]int32{2, 0, 3},
		[]int32{3, 2, 5},
		[]int32{1, 0, 0},
		[]int32{0, 2, 0},
		[]int32{0, 1, 2, 3, 4},
	)

	idx := New()
	idx.Preprocess(sep, 0)
	local := refcch.NewEliminationTreeQuery(ch)
	require.NoError(t, idx.Customize(ch, ch, refcch.NewQueryFactory(ch), local, 2))

	return idx, ch
}

func TestQueryBeforeCustomizeIsUsageError(t *testing.T) {
	idx := New()
	sep := refcch.FlatSeparatorTree(3)
	idx.Preprocess(sep, 0)

	_, err := idx.Query(0, 1)
	require.ErrorIs(t, err, ErrNotCustomized)
}

func TestCustomizeBeforePreprocessIsUsageError(t *testing.T) {
	idx := New()
	ch := refcch.BuildCH(refcch.NewGraph(1), []int32{0})
	local := refcch.NewEliminationTreeQuery(ch)
	err := idx.Customize(ch, ch, refcch.NewQueryFactory(ch), local, 1)
	require.ErrorIs(t, err, ErrNotPreprocessed)
}

func TestS1EndToEnd(t *testing.T) {
	idx, ch := s1Components(t)
	got, err := idx.Query(ch.OriginalToRank(0), ch.OriginalToRank(4))
	require.NoError(t, err)
	require.EqualValues(t, 4, got)
}

func TestReflexiveZero(t *testing.T) {
	idx, ch := s1Components(t)
	for v := int32(0); v < 5; v++ {
		r := ch.OriginalToRank(v)
		got, err := idx.Query(r, r)
		require.NoError(t, err)
		require.EqualValues(t, 0, got)
	}
}

func TestCustomizeIsIdempotentInEffect(t *testing.T) {
	// S5/P8: customize(w1), customize(w2), customize(w1) must match a
	// single customize(w1), since each call fully overwrites F, B, D
	// rather than accumulating state.
	idx, ch := s1Components(t)

	graphAlt := refcch.NewGraph(5)
	graphAlt.AddUndirected(0, 1, 7)
	graphAlt.AddUndirected(1, 2, 7)
	graphAlt.AddUndirected(2, 3, 7)
	graphAlt.AddUndirected(3, 4, 7)
	chAlt := refcch.BuildCH(graphAlt, []int32{0, 1, 4, 2, 3})
	localAlt := refcch.NewEliminationTreeQuery(chAlt)

	local := refcch.NewEliminationTreeQuery(ch)

	require.NoError(t, idx.Customize(chAlt, chAlt, refcch.NewQueryFactory(chAlt), localAlt, 1))
	require.NoError(t, idx.Customize(ch, ch, refcch.NewQueryFactory(ch), local, 1))

	got, err := idx.Query(ch.OriginalToRank(0), ch.OriginalToRank(4))
	require.NoError(t, err)
	require.EqualValues(t, 4, got)
}

func TestRandomGraphMatchesReferenceDijkstra(t *testing.T) {
	// S6/P1: a random small graph, every vertex its own transit node
	// (K large enough to cover a flat decomposition), query must equal
	// a reference Dijkstra over the raw graph for every pair.
	const n = 12
	graph := refcch.NewGraph(n)
	edges := [][3]int32{
		{0, 1, 4}, {1, 2, 3}, {2, 3, 2}, {3, 4, 5}, {4, 5, 1},
		{5, 6, 6}, {6, 7, 2}, {7, 8, 3}, {8, 9, 4}, {9, 10, 2},
		{10, 11, 5}, {0, 5, 9}, {2, 9, 7}, {3, 7, 8}, {1, 10, 11},
	}
	for _, e := range edges {
		graph.AddUndirected(e[0], e[1], e[2])
	}

	rank := make([]int32, n)
	for i := range rank {
		rank[i] = int32(i)
	}
	ch := refcch.BuildCH(graph, rank)
	sep := refcch.FlatSeparatorTree(n)

	idx := New()
	idx.Preprocess(sep, 0)
	local := refcch.NewEliminationTreeQuery(ch)
	require.NoError(t, idx.Customize(ch, ch, refcch.NewQueryFactory(ch), local, 4))

	for s := int32(0); s < n; s++ {
		for tgt := int32(0); tgt < n; tgt++ {
			want := refcch.Dijkstra(graph, s, tgt)
			got, err := idx.Query(ch.OriginalToRank(s), ch.OriginalToRank(tgt))
			require.NoError(t, err)
			require.Equalf(t, want, got, "query(%v,%v)", s, tgt)
		}
	}
}

func TestSizeInBytesAccountsForDistanceTableAndAccessLists(t *testing.T) {
	idx, _ := s1Components(t)
	if idx.SizeInBytes() <= 0 {
		t.Errorf("SizeInBytes() = %v; want > 0 once customized", idx.SizeInBytes())
	}
}
