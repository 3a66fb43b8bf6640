package stack

import (
	"errors"

	"github.com/samber/mo"
)

// ErrStaleView is the panic value raised when a View is read after its stack was mutated.
var ErrStaleView = errors.New("stack: view read after the stack was mutated")

// View is a read-only borrow of the element that was on top of a stack when the view was taken.
//
// A View stays readable only until the next Push, successful Pop or Clear on the
// stack that produced it.
type View[T any] struct {
	owner      *Stack[T]
	index      int
	generation uint64
}

// Borrow returns a view of the topmost element, or None if the stack is empty.
func (s *Stack[T]) Borrow() mo.Option[View[T]] {
	if len(s.items) == 0 {
		return mo.None[View[T]]()
	}

	return mo.Some(View[T]{
		owner:      s,
		index:      len(s.items) - 1,
		generation: s.generation,
	})
}

// Valid reports whether the view can still be read.
func (v View[T]) Valid() bool {
	return v.owner != nil && v.owner.generation == v.generation
}

// Get returns the borrowed element. It panics with ErrStaleView if the stack changed since Borrow.
func (v View[T]) Get() T {
	if !v.Valid() {
		panic(ErrStaleView)
	}
	return v.owner.items[v.index]
}
