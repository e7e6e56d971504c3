package align

import "errors"

var (
	// ErrNegativeCost is returned by New when any edit-operation cost
	// is negative. Negative weights break the optimality of the
	// dynamic program.
	ErrNegativeCost = errors.New("align: operation costs must be non-negative")

	// ErrNotComputed is returned by Distance and the sequence views
	// when the alignment has not been run to completion yet.
	ErrNotComputed = errors.New("align: alignment not computed; call Compute or drain Step")
)
