package disttable

import (
	"testing"

	"github.com/lindqvist-dev/ctnr/refcch"
	"github.com/lindqvist-dev/ctnr/transitnode"
	. "github.com/lindqvist-dev/ctnr/util"
)

func cliqueSetup() (*refcch.CH, *transitnode.Set) {
	graph := refcch.NewGraph(4)
	pairs := [][2]int32{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, p := range pairs {
		graph.AddUndirected(p[0], p[1], 1)
	}
	ch := refcch.BuildCH(graph, []int32{0, 1, 2, 3})

	tnArr := NewArray[int32](4)
	for i := range tnArr {
		tnArr[i] = int32(i)
	}
	return ch, transitnode.FromArray(tnArr)
}

func TestBuildFillsCliqueDistances(t *testing.T) {
	ch, tn := cliqueSetup()
	factory := refcch.NewQueryFactory(ch)

	table := Build(factory, tn, 2)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := int32(1)
			if i == j {
				want = 0
			}
			if got := table.Get(i, j); got != want {
				t.Errorf("D[%v][%v] = %v; want %v", i, j, got, want)
			}
		}
	}
}

func TestBuildSingleWorkerMatchesPool(t *testing.T) {
	ch, tn := cliqueSetup()
	factory := refcch.NewQueryFactory(ch)

	single := Build(factory, tn, 1)
	pooled := Build(factory, tn, 4)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if single.Get(i, j) != pooled.Get(i, j) {
				t.Errorf("D[%v][%v] differs between worker counts: %v vs %v", i, j, single.Get(i, j), pooled.Get(i, j))
			}
		}
	}
}
