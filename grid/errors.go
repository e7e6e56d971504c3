package grid

import "errors"

var (
	// ErrDimensions indicates that requested grid dimensions are below 1×1.
	ErrDimensions = errors.New("grid: dimensions must be at least 1x1")

	// ErrIndexOutOfBounds indicates a row or column index outside the valid
	// range after negative-index wrapping.
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")

	// ErrLabelLength indicates row/column labels whose length does not match
	// the corresponding dimension.
	ErrLabelLength = errors.New("grid: label length must match dimension")

	// ErrLengthMismatch indicates a row/column write or insertion whose value
	// count does not match the opposite dimension.
	ErrLengthMismatch = errors.New("grid: value count must match dimension")

	// ErrCellWidth indicates a negative presentation cell width.
	ErrCellWidth = errors.New("grid: cell width must be >= 0")

	// ErrCursorRange indicates a cursor coordinate assignment outside the
	// bounds of the affiliated grid. Cursor assignment never wraps.
	ErrCursorRange = errors.New("grid: cursor coordinate out of range")

	// ErrNilDims indicates a cursor constructed without a grid to address.
	ErrNilDims = errors.New("grid: cursor requires a non-nil grid")
)
