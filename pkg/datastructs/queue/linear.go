package queue

import "iter"

var _ Queue[int] = (*Linear[int])(nil)

// Linear is a fixed-capacity FIFO queue that does not wrap around.
// It is NOT thread-safe.
//
// Items are appended at rear and removed from front. Slots freed by Dequeue
// are not reused until the queue drains completely, at which point both
// indices reset and the whole array is available again.
type Linear[T any] struct {
	slots []T
	front int // index of the front item, or none
	rear  int // index of the back item, or none
}

// NewLinear creates a linear queue holding at most capacity items.
func NewLinear[T any](capacity int) (*Linear[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Linear[T]{
		slots: make([]T, capacity),
		front: none,
		rear:  none,
	}, nil
}

// Enqueue adds an item to the back of the queue.
// It fails once rear reaches the last slot, even if the front has advanced.
func (q *Linear[T]) Enqueue(item T) error {
	if q.IsFull() {
		return ErrFull
	}
	if q.front == none {
		q.front = 0
	}
	q.rear++
	q.slots[q.rear] = item
	return nil
}

// Dequeue removes and returns the item at the front of the queue.
func (q *Linear[T]) Dequeue() (T, error) {
	var zero T
	if q.front == none {
		return zero, ErrEmpty
	}

	item := q.slots[q.front]
	q.slots[q.front] = zero
	q.front++
	if q.front > q.rear {
		q.front, q.rear = none, none
	}
	return item, nil
}

// Peek returns the item at the front of the queue without removing it.
func (q *Linear[T]) Peek() (T, error) {
	if q.front == none {
		var zero T
		return zero, ErrEmpty
	}
	return q.slots[q.front], nil
}

// IsEmpty reports whether the queue holds no items.
func (q *Linear[T]) IsEmpty() bool {
	return q.front == none
}

// IsFull reports whether rear sits on the last slot.
func (q *Linear[T]) IsFull() bool {
	return q.rear == len(q.slots)-1
}

// Len returns the number of items in the queue.
func (q *Linear[T]) Len() int {
	if q.front == none {
		return 0
	}
	return q.rear - q.front + 1
}

// Cap returns the size of the backing array.
func (q *Linear[T]) Cap() int {
	return len(q.slots)
}

// Free returns how many more items can be enqueued before the queue
// reports full. It is less than Cap()-Len() once items have been dequeued.
func (q *Linear[T]) Free() int {
	return len(q.slots) - 1 - q.rear
}

// All returns an iterator over the items from front to back.
func (q *Linear[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q.front == none {
			return
		}
		for i := q.front; i <= q.rear; i++ {
			if !yield(q.slots[i]) {
				return
			}
		}
	}
}

// Values returns a copy of the items from front to back.
func (q *Linear[T]) Values() []T {
	if q.front == none {
		return []T{}
	}
	out := make([]T, q.Len())
	copy(out, q.slots[q.front:q.rear+1])
	return out
}

// Reset drops all items.
func (q *Linear[T]) Reset() {
	clear(q.slots)
	q.front, q.rear = none, none
}
