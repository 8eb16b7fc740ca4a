package mesh

import "errors"

// Sentinel errors for store operations.
var (
	// ErrIndexOutOfRange indicates a positional operation outside [0, len).
	ErrIndexOutOfRange = errors.New("mosaic: index out of range")

	// ErrEmptyCollection indicates a derived value was requested from a store with no elements.
	ErrEmptyCollection = errors.New("mosaic: empty collection")

	// ErrInvalidReference indicates an index into a sibling store that does not resolve.
	ErrInvalidReference = errors.New("mosaic: invalid reference")

	// ErrUnclosedShape indicates segments that do not form a closed cycle.
	ErrUnclosedShape = errors.New("mosaic: segments do not form a closed shape")
)
