package workload

import (
	"github.com/pkg/errors"

	"github.com/FleekHQ/space-stack/core/stack"
)

const (
	SliceBackend       = "slice"
	CollectionsBackend = "collections"
)

var ErrUnknownBackend = errors.New("unknown stack backend")

// NewStack creates the shared stack for a run using the named backend.
func NewStack(backend string) (*stack.Stack[int], error) {
	switch backend {
	case "", SliceBackend:
		return stack.New[int](), nil
	case CollectionsBackend:
		return stack.New(stack.WithSequence(stack.NewCollectionsSequence[int])), nil
	default:
		return nil, errors.Wrapf(ErrUnknownBackend, "backend %q", backend)
	}
}
