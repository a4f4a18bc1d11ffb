package stack

import (
	"errors"
	"iter"
)

var (
	// ErrFull is returned when pushing onto a saturated stack.
	ErrFull = errors.New("stack is full")

	// ErrEmpty is returned when popping or peeking an empty stack.
	ErrEmpty = errors.New("stack is empty")

	// ErrInvalidCapacity is returned by New given a capacity below one.
	ErrInvalidCapacity = errors.New("stack: invalid capacity")
)

// Stack is a fixed-capacity LIFO stack.
// It is NOT thread-safe.
type Stack[T any] struct {
	slots []T
	top   int // index of the top item, -1 when empty
}

// New creates a stack holding at most capacity items.
func New[T any](capacity int) (*Stack[T], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Stack[T]{
		slots: make([]T, capacity),
		top:   -1,
	}, nil
}

// Push places an item on top of the stack.
func (s *Stack[T]) Push(item T) error {
	if s.IsFull() {
		return ErrFull
	}
	s.top++
	s.slots[s.top] = item
	return nil
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.top < 0 {
		return zero, ErrEmpty
	}
	item := s.slots[s.top]
	s.slots[s.top] = zero
	s.top--
	return item, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.top < 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.slots[s.top], nil
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return s.top < 0
}

// IsFull reports whether the next Push would fail.
func (s *Stack[T]) IsFull() bool {
	return s.top == len(s.slots)-1
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return s.top + 1
}

// Cap returns the maximum number of items the stack can hold.
func (s *Stack[T]) Cap() int {
	return len(s.slots)
}

// All returns an iterator over the items from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.top; i >= 0; i-- {
			if !yield(s.slots[i]) {
				return
			}
		}
	}
}

// Values returns a copy of the items from top to bottom.
func (s *Stack[T]) Values() []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// Reset drops all items.
func (s *Stack[T]) Reset() {
	clear(s.slots)
	s.top = -1
}
