package ctnrio

import (
	"bytes"
	"testing"

	"github.com/lindqvist-dev/ctnr/accessnode"
	"github.com/lindqvist-dev/ctnr/disttable"
	"github.com/lindqvist-dev/ctnr/dominance"
	"github.com/lindqvist-dev/ctnr/refcch"
	"github.com/lindqvist-dev/ctnr/sepdecomp"
	"github.com/lindqvist-dev/ctnr/structs"
	"github.com/lindqvist-dev/ctnr/transitnode"
	. "github.com/lindqvist-dev/ctnr/util"
)

func TestRoundTripPreservesAllFields(t *testing.T) {
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
	hierarchy := sepdecomp.Build(sep)

	level := NewArray[int16](5)
	for v := int32(0); v < 5; v++ {
		level[v] = hierarchy.Level(v)
	}

	tn := transitnode.Select(sep, level, 0)
	forward, backward := accessnode.Build(ch, ch, level, 0, tn)
	dist := disttable.Build(refcch.NewQueryFactory(ch), tn, 1)
	dominance.PruneAll(forward, backward, dist, tn)

	var buf bytes.Buffer
	fingerprint := Fingerprint(sep)
	if err := WriteIndex(&buf, fingerprint, level, tn, forward, backward, dist); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}

	gotLevel, gotTN, gotForward, gotBackward, gotDist, err := ReadIndex(&buf, sep)
	if err != nil {
		t.Fatalf("ReadIndex: %v", err)
	}

	for v := range level {
		if gotLevel[v] != level[v] {
			t.Errorf("level[%v] = %v; want %v", v, gotLevel[v], level[v])
		}
	}
	if gotTN.Count() != tn.Count() {
		t.Fatalf("TN count = %v; want %v", gotTN.Count(), tn.Count())
	}
	for i := range tn.TN {
		if gotTN.TN[i] != tn.TN[i] {
			t.Errorf("TN[%v] = %v; want %v", i, gotTN.TN[i], tn.TN[i])
		}
	}
	for rank := range forward {
		if len(gotForward[rank]) != len(forward[rank]) {
			t.Fatalf("F[%v] length = %v; want %v", rank, len(gotForward[rank]), len(forward[rank]))
		}
		for i := range forward[rank] {
			if gotForward[rank][i] != forward[rank][i] {
				t.Errorf("F[%v][%v] = %+v; want %+v", rank, i, gotForward[rank][i], forward[rank][i])
			}
		}
	}
	for rank := range backward {
		for i := range backward[rank] {
			if gotBackward[rank][i] != backward[rank][i] {
				t.Errorf("B[%v][%v] = %+v; want %+v", rank, i, gotBackward[rank][i], backward[rank][i])
			}
		}
	}
	if gotDist.M != dist.M {
		t.Fatalf("M = %v; want %v", gotDist.M, dist.M)
	}
	for i := 0; i < dist.M; i++ {
		for j := 0; j < dist.M; j++ {
			if gotDist.Get(i, j) != dist.Get(i, j) {
				t.Errorf("D[%v][%v] = %v; want %v", i, j, gotDist.Get(i, j), dist.Get(i, j))
			}
		}
	}
}

func TestReadIndexRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBuffer([]byte{1, 2, 3, 4})
	sep := refcch.FlatSeparatorTree(1)
	_, _, _, _, _, err := ReadIndex(buf, sep)
	if err != ErrBadMagic {
		t.Errorf("err = %v; want ErrBadMagic", err)
	}
}

func TestReadIndexRejectsFingerprintMismatch(t *testing.T) {
	sepA := refcch.FlatSeparatorTree(3)
	sepB := refcch.NewSeparatorTree(
		[]int32{0, 0},
		[]int32{1, 3},
		[]int32{0, 0},
		[]int32{0, 0},
		[]int32{0, 1, 2},
	)

	level := NewArray[int16](3)
	tn := transitnode.Select(sepA, level, 0)
	dist := structs.NewDistanceTable(tn.Count())
	var buf bytes.Buffer
	if err := WriteIndex(&buf, Fingerprint(sepA), level, tn, nil, nil, dist); err != nil {
		t.Fatalf("WriteIndex: %v", err)
	}

	_, _, _, _, _, err := ReadIndex(&buf, sepB)
	if err != ErrFingerprintMismatch {
		t.Errorf("err = %v; want ErrFingerprintMismatch", err)
	}
}
