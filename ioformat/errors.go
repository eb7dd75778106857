package ioformat

import "errors"

var (
	// ErrMalformedCount indicates the leading triangle count N could not be
	// parsed as a non-negative integer.
	ErrMalformedCount = errors.New("tri3d: malformed triangle count")

	// ErrTruncatedTriangleList indicates fewer than N*9 coordinates were
	// present in the input.
	ErrTruncatedTriangleList = errors.New("tri3d: truncated triangle list")

	// ErrMalformedCoordinate indicates a coordinate token could not be
	// parsed as a floating-point number.
	ErrMalformedCoordinate = errors.New("tri3d: malformed coordinate")
)
