package pipeline

import "errors"

var (
	// ErrValidation marks input rejected before the pipeline runs.
	ErrValidation = errors.New("validation error")
	// ErrNotFound marks a reference to a conference with no storage location.
	ErrNotFound = errors.New("not found")
)
