package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonoscore/grid"
)

func mustGrid[T any](t *testing.T, rows, cols int, opts ...grid.Option[T]) *grid.Grid[T] {
	t.Helper()
	g, err := grid.New[T](rows, cols, opts...)
	require.NoError(t, err)
	return g
}

// seqGrid builds a rows×cols int grid numbered 1..rows*cols row-major.
func seqGrid(t *testing.T, rows, cols int) *grid.Grid[int] {
	t.Helper()
	g := mustGrid[int](t, rows, cols)
	n := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n++
			require.NoError(t, g.Set(r, c, n))
		}
	}
	return g
}

func TestNew_Dimensions(t *testing.T) {
	g := mustGrid[int](t, 3, 4)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	r, c := g.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, c)
	assert.Equal(t, 12, g.Size())

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 3}, {3, -2}, {0, 0}} {
		_, err := grid.New[int](dims[0], dims[1])
		require.ErrorIs(t, err, grid.ErrDimensions, "dims %v", dims)
	}
}

func TestNew_DefaultFill(t *testing.T) {
	g := mustGrid[string](t, 2, 2, grid.WithDefault[string]("·"))
	assert.Equal(t, "·", g.Default())
	for v := range g.Values() {
		assert.Equal(t, "·", v)
	}

	// Without WithDefault the zero value fills the grid.
	z := mustGrid[int](t, 2, 2)
	for v := range z.Values() {
		assert.Zero(t, v)
	}
}

func TestNew_OptionErrors(t *testing.T) {
	_, err := grid.New[int](2, 2, grid.WithRowLabels[int]([]string{"only one"}))
	require.ErrorIs(t, err, grid.ErrLabelLength)

	_, err = grid.New[int](2, 2, grid.WithColLabels[int]([]string{"a", "b", "c"}))
	require.ErrorIs(t, err, grid.ErrLabelLength)

	_, err = grid.New[int](2, 2, grid.WithCellWidth[int](-1))
	require.ErrorIs(t, err, grid.ErrCellWidth)
}

func TestGrid_AtSet(t *testing.T) {
	g := seqGrid(t, 2, 3)

	v, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, v)

	require.NoError(t, g.Set(0, 1, 42))
	v, err = g.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestGrid_NegativeIndicesWrapOnce(t *testing.T) {
	g := seqGrid(t, 2, 3)

	v, err := g.At(-1, -1)
	require.NoError(t, err)
	assert.Equal(t, 6, v, "At(-1,-1) must address the bottom-right cell")

	v, err = g.At(-2, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	require.NoError(t, g.Set(-1, 0, 99))
	v, err = g.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 99, v)

	// Wrapping applies once only: twice past the edge is out of bounds.
	_, err = g.At(-3, 0)
	require.ErrorIs(t, err, grid.ErrIndexOutOfBounds)
	_, err = g.At(0, -4)
	require.ErrorIs(t, err, grid.ErrIndexOutOfBounds)
}

func TestGrid_OutOfBounds(t *testing.T) {
	g := seqGrid(t, 2, 3)

	_, err := g.At(2, 0)
	require.ErrorIs(t, err, grid.ErrIndexOutOfBounds)
	_, err = g.At(0, 3)
	require.ErrorIs(t, err, grid.ErrIndexOutOfBounds)
	require.ErrorIs(t, g.Set(5, 5, 1), grid.ErrIndexOutOfBounds)
}

func TestGrid_RowColAccess(t *testing.T) {
	g := seqGrid(t, 2, 3)

	row, err := g.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, row)

	row, err = g.Row(-1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, row)

	col, err := g.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5}, col)

	col, err = g.Col(-1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, col)

	// Returned slices are copies.
	row[0] = 1000
	v, err := g.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = g.Row(2)
	require.ErrorIs(t, err, grid.ErrIndexOutOfBounds)
	_, err = g.Col(3)
	require.ErrorIs(t, err, grid.ErrIndexOutOfBounds)
}

func TestGrid_SetRowSetCol(t *testing.T) {
	g := seqGrid(t, 2, 3)

	require.NoError(t, g.SetRow(0, []int{7, 8, 9}))
	assert.True(t, g.EqualRows([][]int{{7, 8, 9}, {4, 5, 6}},
		func(a, b int) bool { return a == b }))

	require.NoError(t, g.SetCol(-1, []int{0, 0}))
	assert.True(t, g.EqualRows([][]int{{7, 8, 0}, {4, 5, 0}},
		func(a, b int) bool { return a == b }))

	require.ErrorIs(t, g.SetRow(0, []int{1, 2}), grid.ErrLengthMismatch)
	require.ErrorIs(t, g.SetCol(0, []int{1, 2, 3}), grid.ErrLengthMismatch)
	require.ErrorIs(t, g.SetRow(9, []int{1, 2, 3}), grid.ErrIndexOutOfBounds)
}

func TestGrid_InsertRow(t *testing.T) {
	g := seqGrid(t, 2, 3)

	require.NoError(t, g.InsertRow(1, []int{10, 11, 12}))
	assert.Equal(t, 3, g.Rows())
	assert.True(t, g.EqualRows([][]int{{1, 2, 3}, {10, 11, 12}, {4, 5, 6}},
		func(a, b int) bool { return a == b }))

	// nil values fill with the default.
	require.NoError(t, g.InsertRow(0, nil))
	assert.Equal(t, 4, g.Rows())
	row, err := g.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0}, row)

	require.ErrorIs(t, g.InsertRow(9, nil), grid.ErrIndexOutOfBounds)
	require.ErrorIs(t, g.InsertRow(0, []int{1}), grid.ErrLengthMismatch)
}

func TestGrid_InsertCol(t *testing.T) {
	g := seqGrid(t, 2, 2)

	require.NoError(t, g.InsertCol(1, []int{8, 9}))
	assert.Equal(t, 3, g.Cols())
	assert.True(t, g.EqualRows([][]int{{1, 8, 2}, {3, 9, 4}},
		func(a, b int) bool { return a == b }))

	require.NoError(t, g.AppendCol(nil))
	assert.Equal(t, 4, g.Cols())
	col, err := g.Col(-1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, col)

	require.ErrorIs(t, g.InsertCol(-1, nil), grid.ErrIndexOutOfBounds)
	require.ErrorIs(t, g.InsertCol(0, []int{1, 2, 3}), grid.ErrLengthMismatch)
}

func TestGrid_AppendRowCol(t *testing.T) {
	g := seqGrid(t, 1, 2)
	require.NoError(t, g.AppendRow([]int{3, 4}))
	require.NoError(t, g.AppendCol([]int{5, 6}))
	assert.True(t, g.EqualRows([][]int{{1, 2, 5}, {3, 4, 6}},
		func(a, b int) bool { return a == b }))
}

func TestGrid_InsertKeepsLabelInvariant(t *testing.T) {
	g := mustGrid[int](t, 2, 2,
		grid.WithRowLabels[int]([]string{"r0", "r1"}),
		grid.WithColLabels[int]([]string{"c0", "c1"}))

	require.NoError(t, g.InsertRow(1, nil))
	assert.Equal(t, []string{"r0", "", "r1"}, g.RowLabels())

	require.NoError(t, g.AppendCol(nil))
	assert.Equal(t, []string{"c0", "c1", ""}, g.ColLabels())
}

func TestGrid_Labels(t *testing.T) {
	g := mustGrid[int](t, 2, 3)
	assert.Nil(t, g.RowLabels())
	assert.Nil(t, g.ColLabels())

	require.NoError(t, g.SetRowLabels([]string{"a", "b"}))
	require.NoError(t, g.SetColLabels([]string{"x", "y", "z"}))
	assert.Equal(t, []string{"a", "b"}, g.RowLabels())
	assert.Equal(t, []string{"x", "y", "z"}, g.ColLabels())

	// Returned labels are copies.
	g.RowLabels()[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, g.RowLabels())

	require.ErrorIs(t, g.SetRowLabels([]string{"too", "many", "labels"}), grid.ErrLabelLength)
	require.NoError(t, g.SetRowLabels(nil))
	assert.Nil(t, g.RowLabels())
}

func TestGrid_CellWidth(t *testing.T) {
	g := mustGrid[int](t, 1, 1)
	assert.Zero(t, g.CellWidth())
	require.NoError(t, g.SetCellWidth(4))
	assert.Equal(t, 4, g.CellWidth())
	require.ErrorIs(t, g.SetCellWidth(-2), grid.ErrCellWidth)
	assert.Equal(t, 4, g.CellWidth())
}

func TestGrid_Touched(t *testing.T) {
	g := mustGrid[int](t, 2, 2)
	assert.False(t, g.Touched(), "a fresh grid has no touched cells")

	// Writing the default value still counts as touching.
	require.NoError(t, g.Set(0, 0, 0))
	assert.True(t, g.Touched())

	h := mustGrid[int](t, 2, 2)
	require.NoError(t, h.SetRow(1, []int{0, 0}))
	assert.True(t, h.Touched())

	// Default-filled insertions do not touch.
	u := mustGrid[int](t, 2, 2)
	require.NoError(t, u.InsertRow(0, nil))
	require.NoError(t, u.AppendCol(nil))
	assert.False(t, u.Touched())
}

func TestGrid_Clone(t *testing.T) {
	g := seqGrid(t, 2, 2)
	require.NoError(t, g.SetRowLabels([]string{"a", "b"}))
	require.NoError(t, g.SetCellWidth(3))

	c := g.Clone()
	assert.True(t, grid.Equal(g, c))
	assert.Equal(t, g.RowLabels(), c.RowLabels())
	assert.Equal(t, g.CellWidth(), c.CellWidth())
	assert.True(t, c.Touched(), "clones carry occupancy markers")

	require.NoError(t, c.Set(0, 0, 77))
	v, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "mutating the clone must not affect the source")
}

func TestGrid_MapMutate(t *testing.T) {
	g := seqGrid(t, 2, 2)

	doubled := g.Map(func(v int) int { return v * 2 })
	assert.True(t, doubled.EqualRows([][]int{{2, 4}, {6, 8}},
		func(a, b int) bool { return a == b }))
	assert.True(t, g.EqualRows([][]int{{1, 2}, {3, 4}},
		func(a, b int) bool { return a == b }), "Map must not mutate the source")
	assert.True(t, doubled.Touched(), "Map carries occupancy markers")

	g.Mutate(func(v int) int { return v + 10 })
	assert.True(t, g.EqualRows([][]int{{11, 12}, {13, 14}},
		func(a, b int) bool { return a == b }))
}

func TestGrid_Equality(t *testing.T) {
	a := seqGrid(t, 2, 2)
	b := seqGrid(t, 2, 2)
	assert.True(t, grid.Equal(a, b))

	require.NoError(t, b.SetRowLabels([]string{"x", "y"}))
	assert.True(t, grid.Equal(a, b), "labels are ignored by equality")

	require.NoError(t, b.Set(1, 1, 0))
	assert.False(t, grid.Equal(a, b))

	c := seqGrid(t, 2, 3)
	assert.False(t, grid.Equal(a, c), "shape mismatch")
	assert.False(t, a.EqualFunc(nil, func(x, y int) bool { return x == y }))

	assert.False(t, a.EqualRows([][]int{{1, 2}}, func(x, y int) bool { return x == y }))
	assert.False(t, a.EqualRows([][]int{{1, 2}, {3}}, func(x, y int) bool { return x == y }))
}

func TestGrid_Iterators(t *testing.T) {
	g := seqGrid(t, 2, 3)

	var values []int
	var coords []string
	for cur, v := range g.All() {
		coords = append(coords, cur.String())
		values = append(values, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, values, "All iterates row-major")
	assert.Equal(t, []string{"[0, 0]", "[0, 1]", "[0, 2]", "[1, 0]", "[1, 1]", "[1, 2]"}, coords)

	values = values[:0]
	for v := range g.Values() {
		values = append(values, v)
		if v == 3 {
			break // early termination must not panic
		}
	}
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestGrid_Stringify(t *testing.T) {
	g := seqGrid(t, 2, 2)
	assert.Equal(t, "[ 1, 2 ]\n[ 3, 4 ]", g.String())

	require.NoError(t, g.SetRowLabels([]string{"s", "i"}))
	require.NoError(t, g.SetColLabels([]string{"k", "i"}))
	require.NoError(t, g.SetCellWidth(2))
	assert.Equal(t,
		"     k   i   \n"+
			"s  [ 1 , 2  ]\n"+
			"i  [ 3 , 4  ]",
		g.String())
}

func TestGrid_GoString(t *testing.T) {
	g := seqGrid(t, 2, 2)
	assert.Equal(t, "[[1, 2],\n [3, 4]]", g.GoString())
}
