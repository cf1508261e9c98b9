package usecase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPrecondition  = errors.New("document is not exportable")
	ErrRasterization = errors.New("rasterization failed")
)

// PreconditionError lists every rule a document violates. No rendering is
// attempted for such a document.
type PreconditionError struct {
	Reasons []string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%v: %s", ErrPrecondition, strings.Join(e.Reasons, "; "))
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// RasterizationError is returned once every print attempt has failed.
type RasterizationError struct {
	Attempts int
	Err      error
}

func (e *RasterizationError) Error() string {
	return fmt.Sprintf("%v after %d attempts: %v", ErrRasterization, e.Attempts, e.Err)
}

func (e *RasterizationError) Unwrap() []error { return []error{ErrRasterization, e.Err} }
