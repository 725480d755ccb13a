// Package ctnr wires the preprocess/customize/query lifecycle together
// into the Index the outer application holds: C1+C2 in Preprocess,
// C3+C4+C5 in Customize, C6 in Query, C7 in WriteTo/ReadFrom. It owns
// no graph of its own; everything it operates on is borrowed (spec §3
// Ownership), the way the teacher's CHGraph/CHPreprocGraph pair borrows
// a Graph rather than copying it.
package ctnr

import (
	"errors"
	"io"

	"github.com/lindqvist-dev/ctnr/accessnode"
	"github.com/lindqvist-dev/ctnr/comps"
	"github.com/lindqvist-dev/ctnr/ctnrio"
	"github.com/lindqvist-dev/ctnr/disttable"
	"github.com/lindqvist-dev/ctnr/dominance"
	"github.com/lindqvist-dev/ctnr/query"
	"github.com/lindqvist-dev/ctnr/sepdecomp"
	"github.com/lindqvist-dev/ctnr/structs"
	"github.com/lindqvist-dev/ctnr/transitnode"
	. "github.com/lindqvist-dev/ctnr/util"
)

type state int

const (
	unbuilt state = iota
	preprocessed
	customized
)

// ErrNotPreprocessed and ErrNotCustomized are the usage errors of spec
// §4.7/§7: calling customize before preprocess, or query before any
// customize, aborts the call and leaves the index's prior state intact.
var ErrNotPreprocessed = errors.New("ctnr: customize called before preprocess")
var ErrNotCustomized = errors.New("ctnr: query called before any customize")

// Index is the CTNR index: metric-independent structures (level, TN,
// tnIndex, the hierarchy) built once by Preprocess, and metric-
// dependent tables (F, B, D) rebuilt by every Customize call.
type Index struct {
	st state

	sep       comps.ISeparatorDecomposition
	hierarchy *sepdecomp.Hierarchy
	k         int32
	tn        *transitnode.Set

	forward  []structs.AccessList
	backward []structs.AccessList
	dist     *structs.DistanceTable

	translate comps.IUpwardGraph
	local     comps.IEliminationTreeQuery
}

// New returns an unbuilt index. Preprocess must be called before
// Customize, and Customize before Query.
func New() *Index {
	return &Index{}
}

// Preprocess builds the metric-independent structures: the separator
// hierarchy (C1) and the transit-node set (C2). sep is borrowed for
// the lifetime of the index.
func (self *Index) Preprocess(sep comps.ISeparatorDecomposition, k int32) {
	self.sep = sep
	self.hierarchy = sepdecomp.Build(sep)
	self.k = k
	self.tn = transitnode.Select(sep, self.levelArray(), k)
	self.st = preprocessed
}

// levelArray adapts sepdecomp.Hierarchy's per-vertex Level accessor to
// the Array[int16] shape transitnode.Select and accessnode.Build
// expect, without the hierarchy needing to know about either package.
func (self *Index) levelArray() Array[int16] {
	n := self.sep.VertexCount()
	level := NewArray[int16](int(n))
	for v := int32(0); v < n; v++ {
		level[v] = self.hierarchy.Level(v)
	}
	return level
}

// Customize rebuilds the metric-dependent tables F, B, D against the
// given CCH customization output (C3, C4, C5), and stores local for
// use by subsequent queries whose LCA depth exceeds K. It is
// idempotent in effect: calling it again with different weights simply
// overwrites F, B, D (spec §4.7).
func (self *Index) Customize(upgraph comps.IUpwardGraph, weights comps.ICCHWeights, chFactory comps.ICHQueryFactory, local comps.IEliminationTreeQuery, workers int) error {
	if self.st == unbuilt {
		return ErrNotPreprocessed
	}

	level := self.levelArray()
	forward, backward := accessnode.Build(upgraph, weights, level, self.k, self.tn)
	dist := disttable.Build(chFactory, self.tn, workers)
	dominance.PruneAll(forward, backward, dist, self.tn)

	self.forward = forward
	self.backward = backward
	self.dist = dist
	self.translate = upgraph
	self.local = local
	self.st = customized
	return nil
}

// Query returns the shortest-path distance between rank ids s and t,
// or structs.Infty if unreachable. It is an error to call before the
// first Customize.
func (self *Index) Query(s, t int32) (int32, error) {
	if self.st != customized {
		return 0, ErrNotCustomized
	}
	engine := query.NewEngine(self.hierarchy, self.translate, self.k, self.forward, self.backward, self.tn, self.dist, self.local)
	return engine.Query(s, t), nil
}

// SizeInBytes accounts for the index's owned, metric-dependent memory:
// the distance table plus the forward/backward access lists. It does
// not count the borrowed separator decomposition or CCH, matching the
// original prototype's sizeInBytes() convention carried forward per
// SPEC_FULL's supplemented-features section.
func (self *Index) SizeInBytes() int {
	total := 0
	if self.dist != nil {
		total += self.dist.SizeInBytes()
	}
	for _, list := range self.forward {
		total += len(list) * 8 // AccessNode is two int32 fields
	}
	for _, list := range self.backward {
		total += len(list) * 8
	}
	return total
}

// WriteTo serializes the index's populated tables (C7). It is an error
// to call before the first Customize.
func (self *Index) WriteTo(w io.Writer) error {
	if self.st != customized {
		return ErrNotCustomized
	}
	fingerprint := ctnrio.Fingerprint(self.sep)
	return ctnrio.WriteIndex(w, fingerprint, self.levelArray(), self.tn, self.forward, self.backward, self.dist)
}

// ReadFrom restores an index's populated tables from a stream
// previously produced by WriteTo, validating that sep produces the
// same fingerprint recorded at write time. The restored index is
// immediately queryable (state customized); translate and local must
// still be supplied by the caller since neither the rank<->original
// bijection nor the elimination-tree query is part of the serialized
// format - both are recomputed from the live CCH, not persisted.
func ReadFrom(r io.Reader, sep comps.ISeparatorDecomposition, k int32, translate comps.IUpwardGraph, local comps.IEliminationTreeQuery) (*Index, error) {
	// level is rebuilt below from sep by sepdecomp.Build rather than kept
	// from the wire, since it is a pure function of sep and the
	// fingerprint check already guarantees sep matches what was written.
	_, tn, forward, backward, dist, err := ctnrio.ReadIndex(r, sep)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		sep:       sep,
		hierarchy: sepdecomp.Build(sep),
		k:         k,
		tn:        tn,
		forward:   forward,
		backward:  backward,
		dist:      dist,
		translate: translate,
		local:     local,
		st:        customized,
	}
	return idx, nil
}
