package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize indicates that a requested grid dimension is smaller than 1.
	ErrInvalidSize = errors.New("maze: every dimension must be at least 1")
	// ErrFloorMismatch indicates Stack received floors that cannot be stacked.
	ErrFloorMismatch = errors.New("maze: floors must be single-level and share width and height")
)

// SizeError carries the rejected size. It matches ErrInvalidSize under errors.Is.
type SizeError struct {
	Size Dims3D
}

// Error implements error.
func (e *SizeError) Error() string {
	return fmt.Sprintf("%v: got %s", ErrInvalidSize, e.Size)
}

// Is reports whether target is ErrInvalidSize.
func (e *SizeError) Is(target error) bool {
	return target == ErrInvalidSize
}
