package render

import (
	"errors"
	"fmt"
)

// ErrSizeMismatch is wrapped in a LoadError when strict checking is on and
// a table does not hold as many rows as its name says.
var ErrSizeMismatch = errors.New("row count does not match dataset size")

// LoadError reports a point table that is missing, unreadable or malformed.
type LoadError struct {
	Size int
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load size %d from %s: %v", e.Size, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// RenderError reports a chart that could not be drawn.
type RenderError struct {
	Size int
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render size %d: %v", e.Size, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// WriteError reports a chart that could not be written to its image file.
type WriteError struct {
	Size int
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write size %d to %s: %v", e.Size, e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
