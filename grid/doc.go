// Package grid provides bounds-checked, generic two-dimensional grids,
// bounded cursors over them, and OR-composable compass directions.
//
// 🚀 What is grid?
//
//	The storage substrate shared by the alignment engine and the schema
//	compiler. A Grid is a mutable rows×cols container with a default fill
//	value, optional row/column labels and per-cell occupancy tracking.
//	A Cursor is a coordinate bound to one grid, with row-major advancement
//	and eight compass step primitives. A Direction is a bitmask over
//	{North, East, South, West} whose pairwise combinations name the four
//	diagonals.
//
// ✨ Key behaviors:
//   - element access wraps negative indices once (g.At(-1,-1) is the last
//     cell); cursor coordinate assignment never wraps and is rejected when
//     out of range
//   - row/column reads and writes validate exact lengths; insertion shifts
//     subsequent indices and updates the dimension counts atomically
//   - Touched reports whether any cell was ever written, distinguishing
//     "set to a value equal to the default" from "never touched"
//   - equality compares cell values only, ignoring labels, width and the
//     default value
//
// Complexity: all single-cell operations are O(1); row/column operations,
// iteration, Clone, Map, Mutate and Stringify are O(rows·cols) at worst.
//
// See examples in example_test.go.
package grid
