// Package util holds the little-endian binary read/write pairs C7 uses
// to persist the index, following the teacher's own util/io.go
// fixed-value/array primitives, plus the generic containers and
// priority queue the rest of the module builds on.
package util

import (
	"encoding/binary"
	"io"
)

// WriteValueTo/ReadValueFrom and WriteArrayTo/ReadArrayFrom operate
// directly on io.Writer/io.Reader, the way the teacher's util/io.go
// read/writes a fixed value or a length-prefixed array, so C7's
// serialization composes with files, in-memory buffers, and tests alike.
func WriteValueTo[T any](w io.Writer, value T) error {
	return binary.Write(w, binary.LittleEndian, value)
}

func ReadValueFrom[T any](r io.Reader) (T, error) {
	var value T
	err := binary.Read(r, binary.LittleEndian, &value)
	return value, err
}

func WriteArrayTo[T any](w io.Writer, value Array[T]) error {
	if err := binary.Write(w, binary.LittleEndian, int32(value.Length())); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, value)
}

func ReadArrayFrom[T any](r io.Reader) (Array[T], error) {
	var size int32
	if err := binary.Read(r, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	value := NewArray[T](int(size))
	if size == 0 {
		return value, nil
	}
	if err := binary.Read(r, binary.LittleEndian, value); err != nil {
		return nil, err
	}
	return value, nil
}
