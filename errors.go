package manifold

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSampleCount is returned when a curve is sampled at fewer
	// than two parameters.
	ErrInvalidSampleCount = errors.New("sample count must be at least 2")
)

// ErrAttachmentMismatch indicates a binary vector operation whose operands
// are attached at different points.
//
// The check runs only when debug checks are enabled on the manifold; with
// checks disabled, behavior on mismatched operands is undefined.
type ErrAttachmentMismatch struct {
	Op string
}

func (e *ErrAttachmentMismatch) Error() string {
	return fmt.Sprintf("%s: operands attached at different points", e.Op)
}

// ErrMismatchedFiber indicates two tangent-space points that do not belong
// to the same fiber (their payloads are attached at different base points).
//
// Like attachment checks, fiber checks run only when debug checks are
// enabled.
type ErrMismatchedFiber struct {
	Op string
}

func (e *ErrMismatchedFiber) Error() string {
	return fmt.Sprintf("%s: points belong to different fibers", e.Op)
}
