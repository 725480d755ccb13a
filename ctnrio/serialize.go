// Package ctnrio implements C7, Index I/O: a binary, version-tagged
// encoding of the populated index tables plus a hierarchy fingerprint
// used to validate a loaded index against the separator decomposition
// it is opened against. Follows the teacher's util/io.go persistence
// idiom (fixed-order binary.Write/Read of each field) generalized from
// file-only helpers to plain io.Writer/io.Reader.
package ctnrio

import (
	"errors"
	"fmt"
	"hash/fnv"
	"io"

	"github.com/lindqvist-dev/ctnr/comps"
	"github.com/lindqvist-dev/ctnr/structs"
	"github.com/lindqvist-dev/ctnr/transitnode"
	. "github.com/lindqvist-dev/ctnr/util"
)

// magic identifies a CTNR index file; version is bumped whenever the
// wire layout changes incompatibly.
const magic uint32 = 0x43544e52 // "CTNR"
const version uint32 = 1

// ErrBadMagic and ErrVersionMismatch are returned by ReadIndex on a
// file that is not a CTNR index, or was written by an incompatible
// version, respectively (spec §7, IO error kind).
var ErrBadMagic = errors.New("ctnrio: not a CTNR index file")
var ErrVersionMismatch = errors.New("ctnrio: index format version mismatch")

// ErrFingerprintMismatch is returned by ReadIndex when the caller's
// sep argument does not produce the fingerprint recorded at write
// time, meaning the index was built against a different separator
// decomposition than the one being loaded against now.
var ErrFingerprintMismatch = errors.New("ctnrio: separator decomposition fingerprint mismatch")

// Fingerprint hashes the shape of sep (every node's vertex range and
// child/sibling pointers) with FNV-64a, so a loaded index can be
// validated against whichever decomposition the caller hands it
// without re-serializing the whole tree (spec §6's "hierarchy
// fingerprint used to validate on load").
func Fingerprint(sep comps.ISeparatorDecomposition) uint64 {
	h := fnv.New64a()
	var buf [4]byte
	writeInt32 := func(v int32) {
		buf[0] = byte(v)
		buf[1] = byte(v >> 8)
		buf[2] = byte(v >> 16)
		buf[3] = byte(v >> 24)
		h.Write(buf[:])
	}
	t := sep.Size()
	for n := int32(0); n < t; n++ {
		writeInt32(sep.FirstSeparatorVertex(n))
		writeInt32(sep.LastSeparatorVertex(n))
		writeInt32(sep.LeftChild(n))
		writeInt32(sep.RightSibling(n))
	}
	return h.Sum64()
}

// WriteIndex serializes a populated index's tables: the fingerprint
// identifying the separator decomposition it was built against, the
// per-vertex level array, the transit-node list TN (tnIndex is a pure
// function of TN's order and is rebuilt on read, not duplicated on
// disk), the forward/backward access lists by rank id, and the
// transit distance table.
func WriteIndex(w io.Writer, fingerprint uint64, level Array[int16], tn *transitnode.Set, forward, backward []structs.AccessList, dist *structs.DistanceTable) error {
	if err := WriteValueTo(w, magic); err != nil {
		return err
	}
	if err := WriteValueTo(w, version); err != nil {
		return err
	}
	if err := WriteValueTo(w, fingerprint); err != nil {
		return err
	}
	if err := WriteArrayTo(w, level); err != nil {
		return err
	}
	if err := WriteArrayTo(w, tn.TN); err != nil {
		return err
	}
	if err := writeAccessLists(w, forward); err != nil {
		return err
	}
	if err := writeAccessLists(w, backward); err != nil {
		return err
	}
	m := int32(dist.M)
	if err := WriteValueTo(w, m); err != nil {
		return err
	}
	return WriteArrayTo(w, Array[int32](dist.Data()))
}

func writeAccessLists(w io.Writer, lists []structs.AccessList) error {
	if err := WriteValueTo(w, int32(len(lists))); err != nil {
		return err
	}
	for _, list := range lists {
		if err := WriteArrayTo(w, Array[structs.AccessNode](list)); err != nil {
			return err
		}
	}
	return nil
}

// ReadIndex deserializes an index previously written by WriteIndex and
// checks it against sep's current fingerprint. On success it returns
// the level array, the reconstructed transit-node set, the
// forward/backward access lists, and the distance table.
func ReadIndex(r io.Reader, sep comps.ISeparatorDecomposition) (level Array[int16], tn *transitnode.Set, forward, backward []structs.AccessList, dist *structs.DistanceTable, err error) {
	var gotMagic, gotVersion uint32
	if gotMagic, err = ReadValueFrom[uint32](r); err != nil {
		return
	}
	if gotMagic != magic {
		err = ErrBadMagic
		return
	}
	if gotVersion, err = ReadValueFrom[uint32](r); err != nil {
		return
	}
	if gotVersion != version {
		err = fmt.Errorf("%w: file is version %d, reader is version %d", ErrVersionMismatch, gotVersion, version)
		return
	}

	var fingerprint uint64
	if fingerprint, err = ReadValueFrom[uint64](r); err != nil {
		return
	}
	if fingerprint != Fingerprint(sep) {
		err = ErrFingerprintMismatch
		return
	}

	if level, err = ReadArrayFrom[int16](r); err != nil {
		return
	}

	var tnArray Array[int32]
	if tnArray, err = ReadArrayFrom[int32](r); err != nil {
		return
	}
	tn = transitnode.FromArray(tnArray)

	if forward, err = readAccessLists(r); err != nil {
		return
	}
	if backward, err = readAccessLists(r); err != nil {
		return
	}

	var m int32
	if m, err = ReadValueFrom[int32](r); err != nil {
		return
	}
	var data Array[int32]
	if data, err = ReadArrayFrom[int32](r); err != nil {
		return
	}
	dist = structs.DistanceTableFromData(int(m), data)
	return
}

func readAccessLists(r io.Reader) ([]structs.AccessList, error) {
	count, err := ReadValueFrom[int32](r)
	if err != nil {
		return nil, err
	}
	lists := make([]structs.AccessList, count)
	for i := range lists {
		list, err := ReadArrayFrom[structs.AccessNode](r)
		if err != nil {
			return nil, err
		}
		lists[i] = structs.AccessList(list)
	}
	return lists, nil
}
