// Package stack provides the LIFO used by iterative tree walks.
package stack

// Stack is a reusable LIFO stack.
type Stack[T any] struct {
	items []T
}

// New creates a stack with an optional capacity hint.
func New[T any](capacity int) Stack[T] {
	if capacity <= 0 {
		return Stack[T]{}
	}
	return Stack[T]{items: make([]T, 0, capacity)}
}

// Push adds one value to the stack top.
func (s *Stack[T]) Push(value T) {
	s.items = append(s.items, value)
}

// PushReversed pushes values so that values[0] is popped first.
func (s *Stack[T]) PushReversed(values []T) {
	for i := len(values) - 1; i >= 0; i-- {
		s.items = append(s.items, values[i])
	}
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if s == nil || len(s.items) == 0 {
		return zero, false
	}
	last := len(s.items) - 1
	value := s.items[last]
	s.items = s.items[:last]
	return value, true
}

// Len reports the current stack depth.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}
