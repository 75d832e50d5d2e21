// Package pqueue provides the bounded tick-priority queue the schedule
// executor uses to hold pending events: a fixed-capacity min-heap keyed on
// tick, with ties broken by insertion order.
package pqueue

import (
	"container/heap"

	"github.com/nsound/tickseq/pkg/tick"
)

// Enqueue is implemented by a queue that accepts a value at a tick. It
// never allocates beyond its fixed capacity: on a full queue it hands the
// value back instead of growing.
type Enqueue[T any] interface {
	Enqueue(t tick.Tick, value T) (ok bool, back T)
}

// Dequeue is implemented by a queue that can be drained up to (but not
// including) a tick.
type Dequeue[T any] interface {
	// DequeueLessThan pops the lowest-tick item if its tick is strictly
	// less than before; returns ok=false if the queue is empty or its
	// head is not yet due.
	DequeueLessThan(before tick.Tick) (t tick.Tick, value T, ok bool)
	Len() int
}

type item[T any] struct {
	tick  tick.Tick
	seq   uint64
	value T
}

type heapSlice[T any] []item[T]

func (h heapSlice[T]) Len() int { return len(h) }
func (h heapSlice[T]) Less(i, j int) bool {
	if h[i].tick != h[j].tick {
		return h[i].tick < h[j].tick
	}
	return h[i].seq < h[j].seq
}
func (h heapSlice[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *heapSlice[T]) Push(x any)   { *h = append(*h, x.(item[T])) }
func (h *heapSlice[T]) Pop() any {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// BinaryHeapQueue is a fixed-capacity tick-ordered priority queue. Ties at
// equal ticks are broken by a monotonic insertion sequence number assigned
// at Enqueue time, giving a deterministic, documented total order (see
// DESIGN.md "tie-break order").
type BinaryHeapQueue[T any] struct {
	h        heapSlice[T]
	capacity int
	nextSeq  uint64
}

// NewBinaryHeapQueue creates a queue that will never grow past capacity
// entries; Enqueue on a full queue returns the value back instead of
// allocating.
func NewBinaryHeapQueue[T any](capacity int) *BinaryHeapQueue[T] {
	q := &BinaryHeapQueue[T]{
		h:        make(heapSlice[T], 0, capacity),
		capacity: capacity,
	}
	heap.Init(&q.h)
	return q
}

// DefaultCapacity matches the reference implementation's default queue size.
const DefaultCapacity = 1024

// NewDefaultBinaryHeapQueue creates a queue with DefaultCapacity slots.
func NewDefaultBinaryHeapQueue[T any]() *BinaryHeapQueue[T] {
	return NewBinaryHeapQueue[T](DefaultCapacity)
}

// Enqueue inserts value at t. If the queue is already at capacity it
// returns ok=false and hands value back unchanged.
func (q *BinaryHeapQueue[T]) Enqueue(t tick.Tick, value T) (ok bool, back T) {
	if len(q.h) >= q.capacity {
		return false, value
	}
	heap.Push(&q.h, item[T]{tick: t, seq: q.nextSeq, value: value})
	q.nextSeq++
	return true, back
}

// DequeueLessThan pops the lowest-tick item if it is strictly less than
// before.
func (q *BinaryHeapQueue[T]) DequeueLessThan(before tick.Tick) (t tick.Tick, value T, ok bool) {
	if len(q.h) == 0 {
		return 0, value, false
	}
	if q.h[0].tick >= before {
		return 0, value, false
	}
	popped := heap.Pop(&q.h).(item[T])
	return popped.tick, popped.value, true
}

// Len reports the number of pending items.
func (q *BinaryHeapQueue[T]) Len() int { return len(q.h) }

// Cap reports the queue's fixed capacity.
func (q *BinaryHeapQueue[T]) Cap() int { return q.capacity }
