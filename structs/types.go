// Package structs holds the plain data types shared by the CTNR
// preprocess/customize/query packages: separator-tree nodes, access
// nodes, and the transit distance table. It mirrors the teacher's own
// structs package (Edge, Node, Shortcut) in spirit - small, comparable
// structs with no behavior beyond simple accessors.
package structs

import "math"

// Infty is the saturating sentinel for unreachable distances (spec §7).
const Infty int32 = math.MaxInt32

// AddSaturating adds two distances, saturating to Infty instead of
// overflowing or producing a finite-looking value out of an unreachable
// one. Every summation on the hot path (C3 relaxation, C6 three-hop
// enumeration) goes through this so the overflow rule lives in one place.
func AddSaturating(a, b int32) int32 {
	if a == Infty || b == Infty {
		return Infty
	}
	sum := int64(a) + int64(b)
	if sum >= int64(Infty) {
		return Infty
	}
	return int32(sum)
}

// SeparatorNode is one node of the rooted separator-decomposition tree
// (spec §3). Id 0 is always the root; a LeftChild/RightSibling value of
// 0 denotes "absent" since 0 is taken by the root.
type SeparatorNode struct {
	FirstSeparatorVertex int32
	LastSeparatorVertex  int32
	LeftChild            int32
	RightSibling         int32
}

// AccessNode is one (transit-node original id, distance) pair in a
// vertex's forward or backward access set.
type AccessNode struct {
	Transit int32
	Dist    int32
}

// AccessList is an access set, kept in level-sorted order throughout its
// lifetime (built that way by accessnode.Build, and compacted by
// dominance.PruneList, which keeps survivors in their original order).
type AccessList []AccessNode

// DistanceTable is the dense M*M transit-to-transit distance matrix
// (spec §3, §4.4). It is stored as one contiguous slice so row i is
// data[i*M : (i+1)*M], matching the contiguous-allocation requirement
// of spec §5.
type DistanceTable struct {
	M    int
	data []int32
}

func NewDistanceTable(m int) *DistanceTable {
	data := make([]int32, m*m)
	for i := range data {
		data[i] = Infty
	}
	t := &DistanceTable{M: m, data: data}
	for i := 0; i < m; i++ {
		t.Set(i, i, 0)
	}
	return t
}

func (self *DistanceTable) Get(i, j int) int32 {
	return self.data[i*self.M+j]
}

func (self *DistanceTable) Set(i, j int, dist int32) {
	self.data[i*self.M+j] = dist
}

// Row returns the underlying storage for row i, for bulk writes by a
// single worker during C4 without per-cell bounds checks.
func (self *DistanceTable) Row(i int) []int32 {
	return self.data[i*self.M : (i+1)*self.M]
}

func (self *DistanceTable) SizeInBytes() int {
	return len(self.data) * 4
}

// Data exposes the contiguous backing storage for serialization (C7);
// callers must not resize it.
func (self *DistanceTable) Data() []int32 {
	return self.data
}

// DistanceTableFromData reconstructs a table from a previously read
// contiguous buffer of exactly m*m entries, for C7 deserialization.
func DistanceTableFromData(m int, data []int32) *DistanceTable {
	return &DistanceTable{M: m, data: data}
}
