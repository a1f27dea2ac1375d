package stack

import (
	collections "github.com/golang-collections/collections/stack"
)

// collectionsSequence adapts the linked list stack from golang-collections
// to the Sequence interface. Elements are stored as interface{} values, so a
// nil stored for an interface T comes back as the zero T.
type collectionsSequence[T any] struct {
	s *collections.Stack
}

// NewCollectionsSequence returns an empty Sequence backed by
// github.com/golang-collections/collections/stack.
func NewCollectionsSequence[T any]() Sequence[T] {
	return &collectionsSequence[T]{
		s: collections.New(),
	}
}

func (c *collectionsSequence[T]) Push(v T) error {
	c.s.Push(v)
	return nil
}

func (c *collectionsSequence[T]) Pop() (value T, ok bool) {
	if c.s.Len() == 0 {
		return value, false
	}

	value, _ = c.s.Pop().(T)
	return value, true
}

func (c *collectionsSequence[T]) Peek() (value T, ok bool) {
	if c.s.Len() == 0 {
		return value, false
	}

	value, _ = c.s.Peek().(T)
	return value, true
}

func (c *collectionsSequence[T]) Len() int {
	return c.s.Len()
}

// Each has no way to walk the underlying list, so it unloads it into a
// scratch slice and rebuilds it before visiting. The list is always
// restored, even when fn fails.
func (c *collectionsSequence[T]) Each(fn func(T) error) error {
	n := c.s.Len()
	items := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		items[i], _ = c.s.Pop().(T)
	}

	for _, item := range items {
		c.s.Push(item)
	}

	for _, item := range items {
		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}

// code contract - make sure the type implements the interface.
var _ Sequence[int] = &collectionsSequence[int]{}
