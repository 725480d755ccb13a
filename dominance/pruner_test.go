package dominance

import (
	"testing"

	"github.com/lindqvist-dev/ctnr/structs"
	"github.com/lindqvist-dev/ctnr/transitnode"
	. "github.com/lindqvist-dev/ctnr/util"
)

func setOf(ids ...int32) *transitnode.Set {
	arr := NewArray[int32](len(ids))
	copy(arr, ids)
	return transitnode.FromArray(arr)
}

func TestPruneListRemovesDominated(t *testing.T) {
	// Three transit nodes 0,1,2; d[0][1]=1, d[0][2]=3. Access node for
	// transit 1 has distance 5, transit 2 has distance 6, transit 0 has
	// distance 4. 4+1=5 <= 5 so transit 1's entry is dominated by 0's;
	// 4+3=7 > 6 so transit 2's entry survives.
	tn := setOf(0, 1, 2)
	d := structs.NewDistanceTable(3)
	d.Set(0, 1, 1)
	d.Set(0, 2, 3)

	list := structs.AccessList{
		{Transit: 0, Dist: 4},
		{Transit: 1, Dist: 5},
		{Transit: 2, Dist: 6},
	}

	pruned := PruneList(list, d, tn)

	if len(pruned) != 2 {
		t.Fatalf("len(pruned) = %v; want 2, got %+v", len(pruned), pruned)
	}
	if pruned[0].Transit != 0 || pruned[1].Transit != 2 {
		t.Errorf("pruned = %+v; want [0, 2]", pruned)
	}
}

func TestPruneListTieBreaksBySmallerIndex(t *testing.T) {
	// Two entries equally dominant: d[0][1]=0 and d[1][0]=0, equal
	// distances. The smaller index (0) survives per spec's <= rule.
	tn := setOf(0, 1)
	d := structs.NewDistanceTable(2)
	d.Set(0, 1, 0)
	d.Set(1, 0, 0)

	list := structs.AccessList{
		{Transit: 0, Dist: 3},
		{Transit: 1, Dist: 3},
	}

	pruned := PruneList(list, d, tn)

	if len(pruned) != 1 || pruned[0].Transit != 0 {
		t.Errorf("pruned = %+v; want [{0 3}]", pruned)
	}
}

func TestPruneListNoDominationKeepsAll(t *testing.T) {
	tn := setOf(0, 1)
	d := structs.NewDistanceTable(2)
	d.Set(0, 1, 100)
	d.Set(1, 0, 100)

	list := structs.AccessList{
		{Transit: 0, Dist: 1},
		{Transit: 1, Dist: 1},
	}

	pruned := PruneList(list, d, tn)
	if len(pruned) != 2 {
		t.Errorf("len(pruned) = %v; want 2", len(pruned))
	}
}
