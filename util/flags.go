package util

// Flags is a dense per-id scratch buffer, one T per vertex/rank id.
// Get returns a pointer so callers mutate in place the way the teacher's
// DistFlag accumulators do (curr_flag.Dist = ...).
type Flags[T any] struct {
	values  []T
	initial T
}

func NewFlags[T any](count int32, initial T) Flags[T] {
	values := make([]T, count)
	for i := range values {
		values[i] = initial
	}
	return Flags[T]{values: values, initial: initial}
}

func (self *Flags[T]) Get(id int32) *T {
	return &self.values[id]
}

func (self *Flags[T]) Reset() {
	for i := range self.values {
		self.values[i] = self.initial
	}
}

func (self *Flags[T]) Length() int {
	return len(self.values)
}
