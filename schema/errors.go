package schema

import "errors"

var (
	// ErrScoreNotFinite is returned when a segment score is NaN or
	// infinite.
	ErrScoreNotFinite = errors.New("schema: segment score must be a finite number")

	// ErrShape is returned by New when the requested length or form
	// count is below 1.
	ErrShape = errors.New("schema: length and number of forms must be at least 1")

	// ErrFormLength is returned when a base or alternant form does not
	// match the schema's length exactly.
	ErrFormLength = errors.New("schema: form length must match the schema length")

	// ErrFormRange is returned when an alternant index is out of range.
	ErrFormRange = errors.New("schema: alternant index out of range")

	// ErrBaseIncomplete is returned when the base form carries a blank
	// segment: every base column must hold a concrete target.
	ErrBaseIncomplete = errors.New("schema: base form must have a target in every column")

	// ErrSequenceRange is returned by Compilation.At for an index
	// outside the compiled set.
	ErrSequenceRange = errors.New("schema: sequence index out of range")
)
