package sparmat

import "errors"

// Sentinel errors for matrix construction. Callers match with errors.Is.
var (
	// ErrInvalidSize indicates a non-positive matrix dimension.
	ErrInvalidSize = errors.New("sparmat: matrix size must be positive")
	// ErrInvalidCoordinate indicates a row or column outside [1, Size].
	ErrInvalidCoordinate = errors.New("sparmat: coordinate out of range")
	// ErrInvalidMode indicates an unrecognized resolution mode.
	ErrInvalidMode = errors.New("sparmat: unknown resolution mode")
)
