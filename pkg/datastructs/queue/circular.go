package queue

import "iter"

var _ Queue[int] = (*Circular[int])(nil)

// none marks an unset head or tail index.
const none = -1

// Circular is a fixed-capacity FIFO queue over a ring of slots.
// It is NOT thread-safe.
//
// The occupied region is the span head..tail inclusive, wrapping modulo the
// number of slots. head is none iff the queue is empty, so full and empty
// never share a representation.
type Circular[T any] struct {
	slots []T
	head  int // index of the front item, or none
	tail  int // index of the back item, or none
	mode  Mode
}

// NewCircular creates a circular queue with the given number of slots.
// In ModeReserved the queue needs at least two slots.
func NewCircular[T any](capacity int, opts ...Option) (*Circular[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	minSlots := 1
	if o.mode == ModeReserved {
		minSlots = 2
	}
	if capacity < minSlots {
		return nil, ErrInvalidCapacity
	}

	return &Circular[T]{
		slots: make([]T, capacity),
		head:  none,
		tail:  none,
		mode:  o.mode,
	}, nil
}

// Enqueue adds an item to the back of the queue.
func (q *Circular[T]) Enqueue(item T) error {
	if q.IsFull() {
		return ErrFull
	}
	if q.head == none {
		q.head = 0
	}
	q.tail = q.next(q.tail)
	q.slots[q.tail] = item
	return nil
}

// Dequeue removes and returns the item at the front of the queue.
func (q *Circular[T]) Dequeue() (T, error) {
	var zero T
	if q.head == none {
		return zero, ErrEmpty
	}

	item := q.slots[q.head]
	q.slots[q.head] = zero

	// Last item: go back to the empty representation.
	if q.head == q.tail {
		q.head, q.tail = none, none
	} else {
		q.head = q.next(q.head)
	}
	return item, nil
}

// Peek returns the item at the front of the queue without removing it.
func (q *Circular[T]) Peek() (T, error) {
	if q.head == none {
		var zero T
		return zero, ErrEmpty
	}
	return q.slots[q.head], nil
}

// IsEmpty reports whether the queue holds no items.
func (q *Circular[T]) IsEmpty() bool {
	return q.head == none
}

// IsFull reports whether the next Enqueue would fail.
func (q *Circular[T]) IsFull() bool {
	return q.Len() == q.Cap()
}

// Len returns the number of items in the queue.
func (q *Circular[T]) Len() int {
	if q.head == none {
		return 0
	}
	return (q.tail-q.head+len(q.slots))%len(q.slots) + 1
}

// Cap returns the number of items the queue can hold.
func (q *Circular[T]) Cap() int {
	if q.mode == ModeReserved {
		return len(q.slots) - 1
	}
	return len(q.slots)
}

// Slots returns the size of the backing ring.
func (q *Circular[T]) Slots() int {
	return len(q.slots)
}

// Mode returns the capacity mode the queue was created with.
func (q *Circular[T]) Mode() Mode {
	return q.mode
}

// All returns an iterator over the items from front to back.
// The iterator may be ranged over more than once.
func (q *Circular[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q.head == none {
			return
		}
		for i := q.head; ; i = q.next(i) {
			if !yield(q.slots[i]) {
				return
			}
			if i == q.tail {
				return
			}
		}
	}
}

// Values returns a copy of the items from front to back.
func (q *Circular[T]) Values() []T {
	out := make([]T, 0, q.Len())
	for v := range q.All() {
		out = append(out, v)
	}
	return out
}

// Reset drops all items.
func (q *Circular[T]) Reset() {
	clear(q.slots)
	q.head, q.tail = none, none
}

// next returns the slot after i, wrapping at the end of the ring.
// next(none) is slot 0.
func (q *Circular[T]) next(i int) int {
	return (i + 1) % len(q.slots)
}
