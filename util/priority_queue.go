package util

import "container/heap"

// PriorityQueue is a generic min-heap keyed by an ordered priority,
// wrapping container/heap the way the teacher's Dijkstra-family routines
// expect (NewPriorityQueue, Enqueue, Dequeue).
type PriorityQueue[T any, P Ordered] struct {
	inner *pqInner[T, P]
}

type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

type pqEntry[T any, P Ordered] struct {
	item     T
	priority P
}

type pqInner[T any, P Ordered] struct {
	entries []pqEntry[T, P]
}

func (self *pqInner[T, P]) Len() int { return len(self.entries) }
func (self *pqInner[T, P]) Less(i, j int) bool {
	return self.entries[i].priority < self.entries[j].priority
}
func (self *pqInner[T, P]) Swap(i, j int) {
	self.entries[i], self.entries[j] = self.entries[j], self.entries[i]
}
func (self *pqInner[T, P]) Push(x any) {
	self.entries = append(self.entries, x.(pqEntry[T, P]))
}
func (self *pqInner[T, P]) Pop() any {
	old := self.entries
	n := len(old)
	entry := old[n-1]
	self.entries = old[:n-1]
	return entry
}

func NewPriorityQueue[T any, P Ordered](capacity int) PriorityQueue[T, P] {
	inner := &pqInner[T, P]{entries: make([]pqEntry[T, P], 0, capacity)}
	heap.Init(inner)
	return PriorityQueue[T, P]{inner: inner}
}

func (self *PriorityQueue[T, P]) Enqueue(item T, priority P) {
	heap.Push(self.inner, pqEntry[T, P]{item: item, priority: priority})
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.inner.Len() == 0 {
		var zero T
		return zero, false
	}
	entry := heap.Pop(self.inner).(pqEntry[T, P])
	return entry.item, true
}

func (self *PriorityQueue[T, P]) Len() int {
	return self.inner.Len()
}
