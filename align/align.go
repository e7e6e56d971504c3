package align

import (
	"fmt"

	"phonoscore/grid"
)

// Costs carries the weight of each edit operation. All weights must be
// non-negative; matches are always free.
type Costs struct {
	Insert     float64
	Delete     float64
	Substitute float64
}

// DefaultCosts returns the classic Levenshtein weighting: every
// operation costs 1.
func DefaultCosts() Costs {
	return Costs{Insert: 1, Delete: 1, Substitute: 1}
}

func (c Costs) validate() error {
	if c.Insert < 0 || c.Delete < 0 || c.Substitute < 0 {
		return fmt.Errorf("%w: got %+v", ErrNegativeCost, c)
	}
	return nil
}

// Aligner incrementally fills the Wagner–Fischer dynamic program for one
// source/target pair. The zero value is not usable; construct via New or
// NewStrings. An Aligner is not safe for concurrent use.
type Aligner[S comparable] struct {
	source []S
	target []S
	costs  Costs

	cost *grid.Grid[float64]       // cumulative cost per cell
	back *grid.Grid[grid.Cursor]   // cell each cost was derived from
	ops  *grid.Grid[EditOperation] // operation that derived each cost

	cur  grid.Cursor // next cell to fill, row-major
	done bool
}

// New builds an Aligner over the given sequences. The inputs are copied,
// so later mutation of the caller's slices does not affect the alignment.
// Empty sequences are valid. New fails only on negative costs.
func New[S comparable](source, target []S, costs Costs) (*Aligner[S], error) {
	if err := costs.validate(); err != nil {
		return nil, err
	}
	a := &Aligner[S]{
		source: append([]S(nil), source...),
		target: append([]S(nil), target...),
		costs:  costs,
	}

	rows, cols := len(a.source)+1, len(a.target)+1
	rowLabels := sequenceLabels(a.source)
	colLabels := sequenceLabels(a.target)

	var err error
	if a.cost, err = grid.New[float64](rows, cols,
		grid.WithRowLabels[float64](rowLabels),
		grid.WithColLabels[float64](colLabels)); err != nil {
		return nil, err
	}
	if a.back, err = grid.New[grid.Cursor](rows, cols); err != nil {
		return nil, err
	}
	if a.ops, err = grid.New[EditOperation](rows, cols); err != nil {
		return nil, err
	}
	if a.cur, err = grid.NewCursor(a.cost, 0, 0); err != nil {
		return nil, err
	}
	return a, nil
}

// NewStrings is a convenience wrapper aligning two strings rune-wise.
func NewStrings(source, target string, costs Costs) (*Aligner[rune], error) {
	return New([]rune(source), []rune(target), costs)
}

// sequenceLabels prefixes the stringified symbols with a blank label for
// the margin row/column of the dynamic program.
func sequenceLabels[S any](seq []S) []string {
	labels := make([]string, len(seq)+1)
	for i, s := range seq {
		labels[i+1] = fmt.Sprint(s)
	}
	return labels
}

// Step fills exactly one cell and advances to the next in row-major
// order. It reports whether any cell remains to fill; once it returns
// false the alignment is complete and further calls are no-ops.
func (a *Aligner[S]) Step() bool {
	if a.done {
		return false
	}
	a.fill()
	if !a.cur.Advance() {
		a.done = true
		return false
	}
	return true
}

// Compute runs the alignment to completion. Calling it on a finished
// Aligner is a no-op.
func (a *Aligner[S]) Compute() {
	for a.Step() {
	}
}

// Done reports whether every cell has been filled.
func (a *Aligner[S]) Done() bool { return a.done }

// fill writes cost, backlink and operation for the current cell. Cells
// strictly above and to the left are already filled, which is all the
// recurrence reads.
func (a *Aligner[S]) fill() {
	cur := a.cur
	r, c := cur.Row(), cur.Col()

	switch {
	case r == 0 && c == 0:
		a.assign(0, cur, OpNone)
	case r == 0:
		// Top margin: target prefix built purely by insertions.
		left, _ := cur.Moved(grid.West)
		v, _ := a.cost.AtCursor(left)
		a.assign(v+a.costs.Insert, left, OpInsert)
	case c == 0:
		// Left margin: source prefix erased purely by deletions.
		up, _ := cur.Moved(grid.North)
		v, _ := a.cost.AtCursor(up)
		a.assign(v+a.costs.Delete, up, OpDelete)
	default:
		left, _ := cur.Moved(grid.West)
		up, _ := cur.Moved(grid.North)
		diag, _ := cur.Moved(grid.NorthWest)

		lv, _ := a.cost.AtCursor(left)
		uv, _ := a.cost.AtCursor(up)
		dv, _ := a.cost.AtCursor(diag)

		subOp, subCost := OpNone, 0.0
		if a.source[r-1] != a.target[c-1] {
			subOp, subCost = OpSubstitute, a.costs.Substitute
		}

		ins := lv + a.costs.Insert
		del := uv + a.costs.Delete
		sub := dv + subCost

		// Ties resolve substitution over deletion over insertion, so a
		// path through the diagonal is preferred whenever costs allow.
		switch {
		case sub <= del && sub <= ins:
			a.assign(sub, diag, subOp)
		case del <= ins:
			a.assign(del, up, OpDelete)
		default:
			a.assign(ins, left, OpInsert)
		}
	}
}

func (a *Aligner[S]) assign(cost float64, from grid.Cursor, op EditOperation) {
	// The cursor is bounded by the very grids written here, so these
	// writes cannot fail.
	_ = a.cost.SetCursor(a.cur, cost)
	_ = a.back.SetCursor(a.cur, from)
	_ = a.ops.SetCursor(a.cur, op)
}

// Source returns a copy of the source sequence.
func (a *Aligner[S]) Source() []S { return append([]S(nil), a.source...) }

// Target returns a copy of the target sequence.
func (a *Aligner[S]) Target() []S { return append([]S(nil), a.target...) }

// CostGrid returns a deep copy of the cumulative-cost grid in its current
// state of fill; labeled with the source symbols down the rows and the
// target symbols across the columns.
func (a *Aligner[S]) CostGrid() *grid.Grid[float64] { return a.cost.Clone() }

// BacklinkGrid returns a deep copy of the backlink grid.
func (a *Aligner[S]) BacklinkGrid() *grid.Grid[grid.Cursor] { return a.back.Clone() }

// OperationGrid returns a deep copy of the edit-operation grid.
func (a *Aligner[S]) OperationGrid() *grid.Grid[EditOperation] { return a.ops.Clone() }

// Distance returns the total edit cost between source and target. It
// fails with ErrNotComputed until the alignment has been run.
func (a *Aligner[S]) Distance() (float64, error) {
	if !a.done {
		return 0, ErrNotComputed
	}
	return a.cost.At(-1, -1)
}

// Distance is the one-shot form: build, compute, report the edit cost.
func Distance[S comparable](source, target []S, costs Costs) (float64, error) {
	a, err := New(source, target, costs)
	if err != nil {
		return 0, err
	}
	a.Compute()
	return a.Distance()
}
