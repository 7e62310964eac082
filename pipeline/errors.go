package pipeline

import "errors"

var (
	// ErrInvalidVertexBounds is returned when MinVertices is less than 1 or
	// MinVertices > MaxVertices.
	ErrInvalidVertexBounds = errors.New("pipeline: MinVertices must be >= 1 and <= MaxVertices")
	// ErrNoMatcher is returned when no matching.Matcher was configured.
	ErrNoMatcher = errors.New("pipeline: a Matcher must be configured via WithMatcher")
	// ErrInvalidMinSupport is returned when MinSupport is less than 1.
	ErrInvalidMinSupport = errors.New("pipeline: MinSupport must be >= 1")
	// ErrInvalidMinSupportRelaxed is returned when MinSupportRelaxed is less than 1.
	ErrInvalidMinSupportRelaxed = errors.New("pipeline: MinSupportRelaxed must be >= 1")
)
