package stack

// Sequence is the sequential LIFO container a Stack guards.
// Implementations are not expected to be safe for concurrent use.
type Sequence[T any] interface {
	// Push places v on top. An error means v was not stored.
	Push(v T) error
	// Pop removes and returns the top element.
	Pop() (T, bool)
	// Peek returns the top element without removing it.
	Peek() (T, bool)
	// Len returns the number of stored elements.
	Len() int
	// Each visits elements from bottom to top, stopping at the first error.
	Each(fn func(T) error) error
}

// sliceSequence is the default Sequence, backed by a slice.
type sliceSequence[T any] struct {
	items []T
}

// NewSliceSequence returns an empty slice backed Sequence.
func NewSliceSequence[T any]() Sequence[T] {
	return &sliceSequence[T]{}
}

func (s *sliceSequence[T]) Push(v T) error {
	s.items = append(s.items, v)
	return nil
}

func (s *sliceSequence[T]) Pop() (value T, ok bool) {
	if len(s.items) == 0 {
		return value, false
	}

	index := len(s.items) - 1
	value = s.items[index]

	// drop the reference so the popped element can be collected
	var zero T
	s.items[index] = zero
	s.items = s.items[:index]

	return value, true
}

func (s *sliceSequence[T]) Peek() (value T, ok bool) {
	if len(s.items) == 0 {
		return value, false
	}

	return s.items[len(s.items)-1], true
}

func (s *sliceSequence[T]) Len() int {
	return len(s.items)
}

func (s *sliceSequence[T]) Each(fn func(T) error) error {
	for _, item := range s.items {
		if err := fn(item); err != nil {
			return err
		}
	}

	return nil
}

// code contract - make sure the type implements the interface.
var _ Sequence[int] = &sliceSequence[int]{}
