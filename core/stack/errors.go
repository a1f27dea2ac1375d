package stack

import "github.com/pkg/errors"

var (
	// ErrEmptyStack is returned by Pop and PopInto when there is nothing to pop.
	// It is an expected outcome, callers usually retry later or treat it as "no work".
	ErrEmptyStack = errors.New("this is an empty stack")

	// ErrNilDestination is returned by PopInto when given a nil destination.
	ErrNilDestination = errors.New("pop destination is nil")
)
