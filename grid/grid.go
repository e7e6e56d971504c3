package grid

import (
	"fmt"
	"iter"
)

// Grid is a mutable rows×cols container of T values, stored row-major in a
// flat backing slice. Every cell is initialized to a default fill value; a
// parallel occupancy slice records which cells have been explicitly written,
// so a cell set to a value equal to the default is still distinguishable
// from one that was never touched.
//
// Dimensions are fixed at construction and change only through explicit
// row/column insertion. Labels and the presentation cell width affect only
// the text rendering.
type Grid[T any] struct {
	rows, cols int
	cells      []T    // flat backing storage, length == rows*cols
	touched    []bool // occupancy markers, parallel to cells
	def        T
	rowLabels  []string
	colLabels  []string
	cellWidth  int
}

// Option configures a Grid at construction time.
type Option[T any] func(*Grid[T]) error

// WithDefault sets the fill value for new and never-written cells.
func WithDefault[T any](v T) Option[T] {
	return func(g *Grid[T]) error {
		g.def = v
		return nil
	}
}

// WithRowLabels sets the row labels; their count must equal the row count.
func WithRowLabels[T any](labels []string) Option[T] {
	return func(g *Grid[T]) error {
		return g.SetRowLabels(labels)
	}
}

// WithColLabels sets the column labels; their count must equal the column count.
func WithColLabels[T any](labels []string) Option[T] {
	return func(g *Grid[T]) error {
		return g.SetColLabels(labels)
	}
}

// WithCellWidth sets the presentation cell width used by String.
func WithCellWidth[T any](w int) Option[T] {
	return func(g *Grid[T]) error {
		return g.SetCellWidth(w)
	}
}

// New creates a rows×cols Grid with every cell initialized to the default
// value (the zero value of T unless WithDefault is supplied).
// Returns ErrDimensions if either dimension is below 1, or the first option
// error encountered.
// Complexity: O(rows·cols) time and memory.
func New[T any](rows, cols int, opts ...Option[T]) (*Grid[T], error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("grid.New(%d,%d): %w", rows, cols, ErrDimensions)
	}
	g := &Grid[T]{rows: rows, cols: cols}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	g.cells = make([]T, rows*cols)
	g.touched = make([]bool, rows*cols)
	for i := range g.cells {
		g.cells[i] = g.def
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Dims returns the dimensions as (rows, cols).
func (g *Grid[T]) Dims() (rows, cols int) { return g.rows, g.cols }

// Size returns the total number of cells.
func (g *Grid[T]) Size() int { return g.rows * g.cols }

// Default returns the fill value used for never-written cells.
func (g *Grid[T]) Default() T { return g.def }

// wrapRow maps a negative row index onto the tail of the row range.
// Wrapping is applied once; the result may still be out of range.
func (g *Grid[T]) wrapRow(r int) int {
	if r < 0 {
		return g.rows + r
	}
	return r
}

// wrapCol maps a negative column index onto the tail of the column range.
func (g *Grid[T]) wrapCol(c int) int {
	if c < 0 {
		return g.cols + c
	}
	return c
}

// index computes the flat offset for (r, c) after negative-index wrapping,
// or reports ErrIndexOutOfBounds.
// Complexity: O(1).
func (g *Grid[T]) index(r, c int) (int, error) {
	r, c = g.wrapRow(r), g.wrapCol(c)
	if r < 0 || r >= g.rows {
		return 0, fmt.Errorf("grid: row %d of %d rows: %w", r, g.rows, ErrIndexOutOfBounds)
	}
	if c < 0 || c >= g.cols {
		return 0, fmt.Errorf("grid: column %d of %d columns: %w", c, g.cols, ErrIndexOutOfBounds)
	}

	return r*g.cols + c, nil
}

// At retrieves the value at (r, c). Negative indices wrap once, so
// At(-1, -1) is the bottom-right cell.
// Complexity: O(1).
func (g *Grid[T]) At(r, c int) (T, error) {
	idx, err := g.index(r, c)
	if err != nil {
		var zero T
		return zero, err
	}

	return g.cells[idx], nil
}

// Set assigns v at (r, c), marking the cell as touched. Negative indices
// wrap as in At.
// Complexity: O(1).
func (g *Grid[T]) Set(r, c int, v T) error {
	idx, err := g.index(r, c)
	if err != nil {
		return err
	}
	g.cells[idx] = v
	g.touched[idx] = true

	return nil
}

// AtCursor retrieves the value at the cell addressed by cur.
func (g *Grid[T]) AtCursor(cur Cursor) (T, error) {
	return g.At(cur.Row(), cur.Col())
}

// SetCursor assigns v at the cell addressed by cur.
func (g *Grid[T]) SetCursor(cur Cursor, v T) error {
	return g.Set(cur.Row(), cur.Col(), v)
}

// Row returns a copy of the row at r as a slice of its column values.
// Complexity: O(cols).
func (g *Grid[T]) Row(r int) ([]T, error) {
	r = g.wrapRow(r)
	if r < 0 || r >= g.rows {
		return nil, fmt.Errorf("grid: row %d of %d rows: %w", r, g.rows, ErrIndexOutOfBounds)
	}
	buf := make([]T, g.cols)
	copy(buf, g.cells[r*g.cols:(r+1)*g.cols])

	return buf, nil
}

// SetRow overwrites the row at r with values, which must contain exactly one
// value per column. All cells of the row are marked touched.
// Complexity: O(cols).
func (g *Grid[T]) SetRow(r int, values []T) error {
	r = g.wrapRow(r)
	if r < 0 || r >= g.rows {
		return fmt.Errorf("grid: row %d of %d rows: %w", r, g.rows, ErrIndexOutOfBounds)
	}
	if len(values) != g.cols {
		return fmt.Errorf("grid: %d values for %d columns: %w", len(values), g.cols, ErrLengthMismatch)
	}
	copy(g.cells[r*g.cols:(r+1)*g.cols], values)
	for i := r * g.cols; i < (r+1)*g.cols; i++ {
		g.touched[i] = true
	}

	return nil
}

// Col returns a copy of the column at c as a slice of its row values.
// Complexity: O(rows).
func (g *Grid[T]) Col(c int) ([]T, error) {
	c = g.wrapCol(c)
	if c < 0 || c >= g.cols {
		return nil, fmt.Errorf("grid: column %d of %d columns: %w", c, g.cols, ErrIndexOutOfBounds)
	}
	buf := make([]T, g.rows)
	for r := 0; r < g.rows; r++ {
		buf[r] = g.cells[r*g.cols+c]
	}

	return buf, nil
}

// SetCol overwrites the column at c with values, which must contain exactly
// one value per row. All cells of the column are marked touched.
// Complexity: O(rows).
func (g *Grid[T]) SetCol(c int, values []T) error {
	c = g.wrapCol(c)
	if c < 0 || c >= g.cols {
		return fmt.Errorf("grid: column %d of %d columns: %w", c, g.cols, ErrIndexOutOfBounds)
	}
	if len(values) != g.rows {
		return fmt.Errorf("grid: %d values for %d rows: %w", len(values), g.rows, ErrLengthMismatch)
	}
	for r := 0; r < g.rows; r++ {
		g.cells[r*g.cols+c] = values[r]
		g.touched[r*g.cols+c] = true
	}

	return nil
}

// InsertRow inserts a new row before index idx (idx == Rows appends).
// A nil values slice fills the row with the default value and leaves it
// untouched; otherwise values must contain exactly one value per column and
// the row is marked touched. Subsequent row indices shift by one and the
// row count is updated atomically: on error nothing changes.
// Complexity: O(rows·cols).
func (g *Grid[T]) InsertRow(idx int, values []T) error {
	if idx < 0 || idx > g.rows {
		return fmt.Errorf("grid: insert at row %d of %d rows: %w", idx, g.rows, ErrIndexOutOfBounds)
	}
	if values != nil && len(values) != g.cols {
		return fmt.Errorf("grid: %d values for %d columns: %w", len(values), g.cols, ErrLengthMismatch)
	}
	cells := make([]T, (g.rows+1)*g.cols)
	touched := make([]bool, (g.rows+1)*g.cols)
	copy(cells, g.cells[:idx*g.cols])
	copy(touched, g.touched[:idx*g.cols])
	for c := 0; c < g.cols; c++ {
		if values != nil {
			cells[idx*g.cols+c] = values[c]
			touched[idx*g.cols+c] = true
		} else {
			cells[idx*g.cols+c] = g.def
		}
	}
	copy(cells[(idx+1)*g.cols:], g.cells[idx*g.cols:])
	copy(touched[(idx+1)*g.cols:], g.touched[idx*g.cols:])
	g.cells, g.touched = cells, touched
	g.rows++
	// Keep the label invariant: labels, when present, always match the dimension.
	if g.rowLabels != nil {
		labels := make([]string, 0, g.rows)
		labels = append(labels, g.rowLabels[:idx]...)
		labels = append(labels, "")
		labels = append(labels, g.rowLabels[idx:]...)
		g.rowLabels = labels
	}

	return nil
}

// AppendRow inserts a new row after the last one; see InsertRow.
func (g *Grid[T]) AppendRow(values []T) error {
	return g.InsertRow(g.rows, values)
}

// InsertCol inserts a new column before index idx (idx == Cols appends).
// A nil values slice fills the column with the default value and leaves it
// untouched; otherwise values must contain exactly one value per row and the
// column is marked touched. Subsequent column indices shift by one and the
// column count is updated atomically: on error nothing changes.
// Complexity: O(rows·cols).
func (g *Grid[T]) InsertCol(idx int, values []T) error {
	if idx < 0 || idx > g.cols {
		return fmt.Errorf("grid: insert at column %d of %d columns: %w", idx, g.cols, ErrIndexOutOfBounds)
	}
	if values != nil && len(values) != g.rows {
		return fmt.Errorf("grid: %d values for %d rows: %w", len(values), g.rows, ErrLengthMismatch)
	}
	cols := g.cols + 1
	cells := make([]T, g.rows*cols)
	touched := make([]bool, g.rows*cols)
	for r := 0; r < g.rows; r++ {
		copy(cells[r*cols:], g.cells[r*g.cols:r*g.cols+idx])
		copy(touched[r*cols:], g.touched[r*g.cols:r*g.cols+idx])
		if values != nil {
			cells[r*cols+idx] = values[r]
			touched[r*cols+idx] = true
		} else {
			cells[r*cols+idx] = g.def
		}
		copy(cells[r*cols+idx+1:], g.cells[r*g.cols+idx:(r+1)*g.cols])
		copy(touched[r*cols+idx+1:], g.touched[r*g.cols+idx:(r+1)*g.cols])
	}
	g.cells, g.touched = cells, touched
	g.cols = cols
	if g.colLabels != nil {
		labels := make([]string, 0, g.cols)
		labels = append(labels, g.colLabels[:idx]...)
		labels = append(labels, "")
		labels = append(labels, g.colLabels[idx:]...)
		g.colLabels = labels
	}

	return nil
}

// AppendCol inserts a new column after the last one; see InsertCol.
func (g *Grid[T]) AppendCol(values []T) error {
	return g.InsertCol(g.cols, values)
}

// RowLabels returns a copy of the row labels, or nil if none are set.
func (g *Grid[T]) RowLabels() []string {
	if g.rowLabels == nil {
		return nil
	}
	buf := make([]string, len(g.rowLabels))
	copy(buf, g.rowLabels)

	return buf
}

// SetRowLabels replaces the row labels. Pass nil to clear them; otherwise
// their count must equal the row count.
func (g *Grid[T]) SetRowLabels(labels []string) error {
	if labels == nil {
		g.rowLabels = nil
		return nil
	}
	if len(labels) != g.rows {
		return fmt.Errorf("grid: %d labels for %d rows: %w", len(labels), g.rows, ErrLabelLength)
	}
	g.rowLabels = make([]string, len(labels))
	copy(g.rowLabels, labels)

	return nil
}

// ColLabels returns a copy of the column labels, or nil if none are set.
func (g *Grid[T]) ColLabels() []string {
	if g.colLabels == nil {
		return nil
	}
	buf := make([]string, len(g.colLabels))
	copy(buf, g.colLabels)

	return buf
}

// SetColLabels replaces the column labels. Pass nil to clear them; otherwise
// their count must equal the column count.
func (g *Grid[T]) SetColLabels(labels []string) error {
	if labels == nil {
		g.colLabels = nil
		return nil
	}
	if len(labels) != g.cols {
		return fmt.Errorf("grid: %d labels for %d columns: %w", len(labels), g.cols, ErrLabelLength)
	}
	g.colLabels = make([]string, len(labels))
	copy(g.colLabels, labels)

	return nil
}

// CellWidth returns the presentation cell width used by String.
func (g *Grid[T]) CellWidth() int { return g.cellWidth }

// SetCellWidth replaces the presentation cell width; negative widths are
// rejected with ErrCellWidth.
func (g *Grid[T]) SetCellWidth(w int) error {
	if w < 0 {
		return fmt.Errorf("grid: cell width %d: %w", w, ErrCellWidth)
	}
	g.cellWidth = w

	return nil
}

// Touched reports whether any cell has ever been explicitly written, even
// if the written value equals the default. Never-written cells do not count.
// Complexity: O(rows·cols).
func (g *Grid[T]) Touched() bool {
	for _, t := range g.touched {
		if t {
			return true
		}
	}

	return false
}

// Clone returns a deep copy of the grid: cells, occupancy markers, default,
// labels and cell width. Cell values themselves are assigned, not copied.
// Complexity: O(rows·cols).
func (g *Grid[T]) Clone() *Grid[T] {
	out := &Grid[T]{
		rows:      g.rows,
		cols:      g.cols,
		cells:     make([]T, len(g.cells)),
		touched:   make([]bool, len(g.touched)),
		def:       g.def,
		cellWidth: g.cellWidth,
	}
	copy(out.cells, g.cells)
	copy(out.touched, g.touched)
	if g.rowLabels != nil {
		out.rowLabels = make([]string, len(g.rowLabels))
		copy(out.rowLabels, g.rowLabels)
	}
	if g.colLabels != nil {
		out.colLabels = make([]string, len(g.colLabels))
		copy(out.colLabels, g.colLabels)
	}

	return out
}

// Map returns a copy of the grid with fn applied to every cell. Each result
// cell carries the occupancy marker of its source cell.
// Complexity: O(rows·cols).
func (g *Grid[T]) Map(fn func(T) T) *Grid[T] {
	out := g.Clone()
	for i := range out.cells {
		out.cells[i] = fn(out.cells[i])
	}

	return out
}

// Mutate applies fn to every cell in place, preserving occupancy markers.
// Complexity: O(rows·cols).
func (g *Grid[T]) Mutate(fn func(T) T) {
	for i := range g.cells {
		g.cells[i] = fn(g.cells[i])
	}
}

// EqualFunc reports whether g and o have the same shape and eq holds for
// every cell pair. Labels, cell width, default value and occupancy markers
// are ignored.
// Complexity: O(rows·cols).
func (g *Grid[T]) EqualFunc(o *Grid[T], eq func(a, b T) bool) bool {
	if o == nil || g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.cells {
		if !eq(g.cells[i], o.cells[i]) {
			return false
		}
	}

	return true
}

// EqualRows reports whether the grid's cells match a nested row slice of
// equal shape under eq.
// Complexity: O(rows·cols).
func (g *Grid[T]) EqualRows(rows [][]T, eq func(a, b T) bool) bool {
	if len(rows) != g.rows {
		return false
	}
	for r, row := range rows {
		if len(row) != g.cols {
			return false
		}
		for c, v := range row {
			if !eq(g.cells[r*g.cols+c], v) {
				return false
			}
		}
	}

	return true
}

// Equal reports whether two grids of comparable cells hold identical values.
// Labels, cell width and defaults are ignored, as in EqualFunc.
func Equal[T comparable](a, b *Grid[T]) bool {
	return a.EqualFunc(b, func(x, y T) bool { return x == y })
}

// All returns a row-major iterator over (Cursor, value) pairs.
func (g *Grid[T]) All() iter.Seq2[Cursor, T] {
	return func(yield func(Cursor, T) bool) {
		for r := 0; r < g.rows; r++ {
			for c := 0; c < g.cols; c++ {
				if !yield(Cursor{dims: g, r: r, c: c}, g.cells[r*g.cols+c]) {
					return
				}
			}
		}
	}
}

// Values returns a row-major iterator over bare cell values.
func (g *Grid[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}
