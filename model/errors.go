package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned when a coordinate or a dimension falls
	// outside the grid. Callers match it with errors.Is.
	ErrOutOfBounds = errors.New("out of bounds")

	// ErrMalformedCells is returned when a coordinate list cannot be parsed.
	ErrMalformedCells = errors.New("malformed cell list")

	// ErrUnknownPattern is returned for a seed pattern name that is not registered.
	ErrUnknownPattern = errors.New("unknown pattern")
)
