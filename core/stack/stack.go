// Package stack provides a LIFO container that can be shared between
// goroutines without any synchronization by its callers.
//
// Every operation runs as a single critical section around the backing
// Sequence. Only Push, Pop, PopInto and IsEmpty are offered: there is no
// peek, size, iteration, swap or assignment.
package stack

import (
	"sync"
)

type stackOptions[T any] struct {
	newSequence func() Sequence[T]
	newLocker   func() sync.Locker
	copier      func(T) (T, error)
}

type Option[T any] func(o *stackOptions[T])

// WithSequence sets the factory used to create the backing container.
func WithSequence[T any](fn func() Sequence[T]) Option[T] {
	return func(o *stackOptions[T]) {
		o.newSequence = fn
	}
}

// WithLocker sets the factory used to create the stack's lock.
func WithLocker[T any](fn func() sync.Locker) Option[T] {
	return func(o *stackOptions[T]) {
		o.newLocker = fn
	}
}

// WithCopier sets how elements are copied on the way in and out of the stack.
// Errors returned by fn reach the caller of the failing operation unchanged.
func WithCopier[T any](fn func(T) (T, error)) Option[T] {
	return func(o *stackOptions[T]) {
		o.copier = fn
	}
}

// noCopy makes go vet's copylocks check report Stack values being copied.
// Use NewFrom to copy a stack.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Stack is a LIFO container safe for concurrent use.
// A Stack must not be copied by value, see NewFrom.
type Stack[T any] struct {
	noCopy noCopy

	opts stackOptions[T]
	lock sync.Locker
	data Sequence[T]
}

func identity[T any](v T) (T, error) {
	return v, nil
}

// New creates an empty stack.
func New[T any](opts ...Option[T]) *Stack[T] {
	o := stackOptions[T]{
		newSequence: NewSliceSequence[T],
		newLocker: func() sync.Locker {
			return &sync.Mutex{}
		},
		copier: identity[T],
	}

	for _, opt := range opts {
		opt(&o)
	}

	return &Stack[T]{
		opts: o,
		lock: o.newLocker(),
		data: o.newSequence(),
	}
}

// NewFrom creates a stack holding a snapshot of other's elements.
// Only other's lock is taken. The new stack has its own lock and shares no
// state with other. If copying any element fails the error is returned and
// other is left as it was.
func NewFrom[T any](other *Stack[T]) (*Stack[T], error) {
	data := other.opts.newSequence()

	other.lock.Lock()
	defer other.lock.Unlock()

	err := other.data.Each(func(v T) error {
		c, err := other.opts.copier(v)
		if err != nil {
			return err
		}
		return data.Push(c)
	})
	if err != nil {
		return nil, err
	}

	return &Stack[T]{
		opts: other.opts,
		lock: other.opts.newLocker(),
		data: data,
	}, nil
}

// Push places value on top of the stack.
// On error the stack is unchanged.
func (s *Stack[T]) Push(value T) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	v, err := s.opts.copier(value)
	if err != nil {
		return err
	}

	return s.data.Push(v)
}

// Pop removes the top element and returns it.
// It returns ErrEmptyStack if there is nothing to pop. The top element is
// only removed once it has been copied out successfully.
func (s *Stack[T]) Pop() (T, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	var zero T
	top, ok := s.data.Peek()
	if !ok {
		return zero, ErrEmptyStack
	}

	v, err := s.opts.copier(top)
	if err != nil {
		return zero, err
	}

	s.data.Pop()

	return v, nil
}

// PopInto is like Pop but stores the top element in out.
// out is only written when the pop succeeds.
func (s *Stack[T]) PopInto(out *T) error {
	if out == nil {
		return ErrNilDestination
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	top, ok := s.data.Peek()
	if !ok {
		return ErrEmptyStack
	}

	v, err := s.opts.copier(top)
	if err != nil {
		return err
	}

	*out = v
	s.data.Pop()

	return nil
}

// IsEmpty reports whether the stack held no elements at the time of the call.
// Another goroutine may change that right after, so it cannot be used to
// predict the outcome of a later Pop.
func (s *Stack[T]) IsEmpty() bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.data.Len() == 0
}
