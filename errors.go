package shape

import (
	"errors"
	"fmt"
)

// Sentinel errors for edit-session misuse. Match with errors.Is.
var (
	// ErrEditActive is returned when an operation requires the shape to be
	// outside an edit session but one is currently open.
	ErrEditActive = errors.New("shape: edit session already active")

	// ErrNotEditing is returned when an operation requires an open edit
	// session and there is none.
	ErrNotEditing = errors.New("shape: no active edit session")
)

// DimensionError reports vertex input whose dimensionality is inconsistent
// with what the operation expects. It is never recovered internally.
type DimensionError struct {
	// Want is the expected point length.
	Want int
	// Got is the length that was supplied.
	Got int
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("shape: unexpected vertex dimension %d (want %d)", e.Got, e.Want)
}

// TriangulationError wraps a failure reported by the external Triangulator
// for a non-degenerate input. It surfaces from the draw accessor that
// required the triangulation. Match with errors.As.
type TriangulationError struct {
	Err error
}

// Error implements the error interface.
func (e *TriangulationError) Error() string {
	return fmt.Sprintf("shape: triangulation failed: %v", e.Err)
}

// Unwrap returns the underlying triangulator error.
func (e *TriangulationError) Unwrap() error {
	return e.Err
}
