package grid

import "fmt"

// Dims exposes the bounds a Cursor is checked against. *Grid[T] implements
// it for any T.
type Dims interface {
	Rows() int
	Cols() int
}

// Cursor is a (row, col) coordinate bound to one grid. The cursor addresses
// the grid but does not own it. Coordinates are kept strictly within
// [0, rows) × [0, cols): assignment never wraps and is rejected outright
// when out of range, unlike raw grid element access.
//
// Cursors are small values; the copying move primitives return fresh
// cursors and leave the receiver untouched.
type Cursor struct {
	dims Dims
	r, c int
}

// NewCursor creates a cursor bound to d at coordinate (r, c).
// Returns ErrNilDims when d is nil and ErrCursorRange when the coordinate is
// out of range.
func NewCursor(d Dims, r, c int) (Cursor, error) {
	if d == nil {
		return Cursor{}, ErrNilDims
	}
	cur := Cursor{dims: d}
	if err := cur.Seek(r, c); err != nil {
		return Cursor{}, err
	}

	return cur, nil
}

// Grid returns the Dims the cursor addresses.
func (cur Cursor) Grid() Dims { return cur.dims }

// Row returns the row coordinate.
func (cur Cursor) Row() int { return cur.r }

// Col returns the column coordinate.
func (cur Cursor) Col() int { return cur.c }

// SetRow assigns the row coordinate. Out-of-range values, including negative
// ones, are rejected with ErrCursorRange; the cursor is left unchanged.
func (cur *Cursor) SetRow(r int) error {
	if r < 0 || r >= cur.dims.Rows() {
		return fmt.Errorf("grid: cursor row %d of %d rows: %w", r, cur.dims.Rows(), ErrCursorRange)
	}
	cur.r = r

	return nil
}

// SetCol assigns the column coordinate. Out-of-range values, including
// negative ones, are rejected with ErrCursorRange; the cursor is left
// unchanged.
func (cur *Cursor) SetCol(c int) error {
	if c < 0 || c >= cur.dims.Cols() {
		return fmt.Errorf("grid: cursor column %d of %d columns: %w", c, cur.dims.Cols(), ErrCursorRange)
	}
	cur.c = c

	return nil
}

// Seek assigns both coordinates at once. On error the cursor is left
// unchanged: a coordinate pair is applied atomically or not at all.
func (cur *Cursor) Seek(r, c int) error {
	if r < 0 || r >= cur.dims.Rows() {
		return fmt.Errorf("grid: cursor row %d of %d rows: %w", r, cur.dims.Rows(), ErrCursorRange)
	}
	if c < 0 || c >= cur.dims.Cols() {
		return fmt.Errorf("grid: cursor column %d of %d columns: %w", c, cur.dims.Cols(), ErrCursorRange)
	}
	cur.r, cur.c = r, c

	return nil
}

// Advance moves the cursor to the next cell in row-major order: the column
// increments, and on overflow the row increments and the column resets.
// It returns false once the last cell has been reached, so it can drive a
// whole-grid loop:
//
//	for ok := true; ok; ok = cur.Advance() { ... }
//
// Complexity: O(1).
func (cur *Cursor) Advance() bool {
	if cur.c+1 < cur.dims.Cols() {
		cur.c++
		return true
	}
	if cur.r+1 < cur.dims.Rows() {
		cur.r++
		cur.c = 0
		return true
	}

	return false
}

// Move steps the cursor one cell in direction d, reporting success. The move
// is atomic: a diagonal that would leave the grid on either axis leaves both
// coordinates unchanged. Contradictory directions (North|South) fail;
// Move(None) succeeds without displacement.
// Complexity: O(1).
func (cur *Cursor) Move(d Direction) bool {
	dr, dc, ok := d.Offset()
	if !ok {
		return false
	}
	r, c := cur.r+dr, cur.c+dc
	if r < 0 || r >= cur.dims.Rows() || c < 0 || c >= cur.dims.Cols() {
		return false
	}
	cur.r, cur.c = r, c

	return true
}

// Moved returns a fresh cursor stepped one cell in direction d, leaving the
// receiver untouched. ok is false when the step would leave the grid, in
// which case the returned cursor equals the receiver.
func (cur Cursor) Moved(d Direction) (Cursor, bool) {
	out := cur
	ok := out.Move(d)

	return out, ok
}

// Equal reports whether two cursors address the same coordinate. Cursors
// bound to different grids compare equal when their coordinates match;
// identity of the underlying grid is deliberately ignored.
func (cur Cursor) Equal(other Cursor) bool {
	return cur.r == other.r && cur.c == other.c
}

// DirectionTo returns the coarse compass direction from cur toward other,
// comparing only the sign of the row and column deltas: two cells apart
// diagonally reports the same direction as one cell apart.
func (cur Cursor) DirectionTo(other Cursor) Direction {
	d := None
	switch {
	case other.c < cur.c:
		d |= West
	case other.c > cur.c:
		d |= East
	}
	switch {
	case other.r < cur.r:
		d |= North
	case other.r > cur.r:
		d |= South
	}

	return d
}

// DirectionFrom returns the coarse compass direction from other toward cur;
// it is the exact inverse of DirectionTo:
// cur.DirectionFrom(other) == other.DirectionTo(cur).
func (cur Cursor) DirectionFrom(other Cursor) Direction {
	return other.DirectionTo(cur)
}

// String renders the coordinate as "[r, c]".
func (cur Cursor) String() string {
	return fmt.Sprintf("[%d, %d]", cur.r, cur.c)
}

// GoString renders the coordinate like String, so grids of cursors keep a
// readable nested-list diagnostic form.
func (cur Cursor) GoString() string { return cur.String() }
