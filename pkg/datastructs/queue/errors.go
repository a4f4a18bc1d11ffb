package queue

import "errors"

var (
	// ErrFull is returned when enqueueing into a saturated queue.
	ErrFull = errors.New("queue is full")

	// ErrEmpty is returned when dequeueing or peeking an empty queue.
	ErrEmpty = errors.New("queue is empty")

	// ErrInvalidCapacity is returned by constructors given a capacity too small to hold an item.
	ErrInvalidCapacity = errors.New("queue: invalid capacity")
)
