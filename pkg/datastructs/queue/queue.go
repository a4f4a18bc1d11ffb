package queue

// Queue is a generic interface for bounded FIFO queues.
type Queue[T any] interface {
	// Enqueue adds an item to the back of the queue.
	// Returns ErrFull if the queue cannot take another item.
	Enqueue(item T) error

	// Dequeue removes and returns the item at the front of the queue.
	// Returns ErrEmpty if the queue holds no items.
	Dequeue() (T, error)

	// Peek returns the item at the front of the queue without removing it.
	Peek() (T, error)

	// IsEmpty reports whether the queue holds no items.
	IsEmpty() bool

	// IsFull reports whether the next Enqueue would fail.
	IsFull() bool

	// Len returns the number of items in the queue.
	Len() int

	// Cap returns the maximum number of items the queue can hold.
	Cap() int
}
