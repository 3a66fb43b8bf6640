// Package stack provides a generic, single-owner Last-In-First-Out (LIFO) container.
//
// A Stack owns the values pushed onto it. Push hands a value over to the stack and
// Pop hands it back to the caller; once pushed, the caller should treat its own copy
// as moved and stop using it. This matters for element types that carry references
// (pointers, slices, maps): the stack cannot stop an old reference from mutating an
// element it now owns.
//
// A Stack is not safe for concurrent use. Callers that share one across goroutines
// must serialize access themselves.
package stack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/samber/mo"
)

// Stack implements a parameterized Last-In-First-Out (LIFO) data structure.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	items []T

	// generation is bumped on every mutation and invalidates outstanding views.
	generation uint64
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places item on top of the stack. The stack becomes the owner of item.
func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
	s.generation++
}

// Pop removes the topmost element and returns ownership of it to the caller.
// It returns None, and leaves the stack untouched, when the stack is empty.
func (s *Stack[T]) Pop() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}

	idx := len(s.items) - 1
	item := s.items[idx]

	var zero T
	s.items[idx] = zero
	s.items = s.items[:idx]
	s.generation++

	return mo.Some(item)
}

// Peek returns a copy of the topmost element without removing it, or None if the stack is empty.
//
// The copy is shallow. If T is a pointer, slice or map, the returned value still
// shares its referents with the element held by the stack; use Borrow to get a view
// that detects later mutation of the stack.
func (s *Stack[T]) Peek() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Size returns the number of elements currently stored in the stack.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Clear removes all elements from the stack, resetting it to an empty state.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = nil
	s.generation++
}

// All returns an iterator over the elements from bottom to top.
// The stack must not be mutated while iterating.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Dump renders every element from bottom to top using the default fmt formatting.
func (s *Stack[T]) Dump() string {
	return DumpFunc(s, func(item T) string {
		return fmt.Sprintf("%+v", item)
	})
}

// String implements fmt.Stringer.
func (s *Stack[T]) String() string {
	return s.Dump()
}

// DumpFunc renders every element of s from bottom to top with format.
func DumpFunc[T any](s *Stack[T], format func(T) string) string {
	var b strings.Builder
	b.WriteString("Stack (bottom to top): [")
	for i, item := range s.items {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(format(item))
	}
	b.WriteByte(']')
	return b.String()
}
