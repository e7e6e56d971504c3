package align

import (
	"slices"

	"phonoscore/grid"
)

// walk visits the optimal-path cells from the final cell back towards the
// origin, the origin itself excluded. The final cell is always visited,
// even when it is the origin, so aligning two empty sequences still
// yields a single-step path.
func (a *Aligner[S]) walk(visit func(cur grid.Cursor)) error {
	if !a.done {
		return ErrNotComputed
	}
	start, _ := grid.NewCursor(a.cost, 0, 0)
	cur, _ := grid.NewCursor(a.cost, a.cost.Rows()-1, a.cost.Cols()-1)
	for {
		visit(cur)
		back, _ := a.back.AtCursor(cur)
		if back.Equal(start) {
			return nil
		}
		cur = back
	}
}

// EditSequence returns the minimal edit script in source-to-target
// order. Matched symbols appear as OpNone steps.
func (a *Aligner[S]) EditSequence() ([]EditOperation, error) {
	var script []EditOperation
	err := a.walk(func(cur grid.Cursor) {
		op, _ := a.ops.AtCursor(cur)
		script = append(script, op)
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(script)
	return script, nil
}

// CostSequence returns the cumulative cost at each step of the optimal
// path, in source-to-target order. Its last element equals Distance.
func (a *Aligner[S]) CostSequence() ([]float64, error) {
	var costs []float64
	err := a.walk(func(cur grid.Cursor) {
		v, _ := a.cost.AtCursor(cur)
		costs = append(costs, v)
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(costs)
	return costs, nil
}

// BacklinkSequence returns the backlink cursor of each path cell, in
// source-to-target order.
func (a *Aligner[S]) BacklinkSequence() ([]grid.Cursor, error) {
	var links []grid.Cursor
	err := a.walk(func(cur grid.Cursor) {
		back, _ := a.back.AtCursor(cur)
		links = append(links, back)
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(links)
	return links, nil
}

// DirectionSequence returns, for each path cell, the direction from that
// cell to its backlink: grid.NorthWest for substitutions and matches,
// grid.North for deletions, grid.West for insertions. The origin cell
// reports grid.None.
func (a *Aligner[S]) DirectionSequence() ([]grid.Direction, error) {
	var dirs []grid.Direction
	err := a.walk(func(cur grid.Cursor) {
		back, _ := a.back.AtCursor(cur)
		dirs = append(dirs, cur.DirectionTo(back))
	})
	if err != nil {
		return nil, err
	}
	slices.Reverse(dirs)
	return dirs, nil
}

// DirectionGrid derives a grid holding, per cell, the direction towards
// the cell's backlink. Rendered with grid.Grid.String it makes the
// backlink structure of the whole program visible at a glance.
func (a *Aligner[S]) DirectionGrid() (*grid.Grid[grid.Direction], error) {
	if !a.done {
		return nil, ErrNotComputed
	}
	dg, err := grid.New[grid.Direction](a.cost.Rows(), a.cost.Cols(),
		grid.WithRowLabels[grid.Direction](a.cost.RowLabels()),
		grid.WithColLabels[grid.Direction](a.cost.ColLabels()))
	if err != nil {
		return nil, err
	}
	for cur := range a.back.All() {
		back, _ := a.back.AtCursor(cur)
		_ = dg.SetCursor(cur, cur.DirectionTo(back))
	}
	return dg, nil
}
