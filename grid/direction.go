package grid

import "strings"

// Direction is a bitmask of compass displacements in a grid, where North is
// toward row 0 and West is toward column 0. The four cardinal flags compose
// with OR; the pairwise combinations name the four diagonals. Specific
// directions can be tested with ==, compound membership with &:
//
//	d := NorthWest
//	d == NorthWest        // true
//	d == North            // false
//	d&North != 0          // true
//	d&South != 0          // false
type Direction uint8

const (
	// North indicates a move toward a lower row index.
	North Direction = 1 << iota
	// East indicates a move toward a higher column index.
	East
	// South indicates a move toward a higher row index.
	South
	// West indicates a move toward a lower column index.
	West
)

const (
	// None indicates the absence of any displacement.
	None Direction = 0

	// NorthEast is the compound North|East.
	NorthEast = North | East
	// SouthEast is the compound South|East.
	SouthEast = South | East
	// SouthWest is the compound South|West.
	SouthWest = South | West
	// NorthWest is the compound North|West.
	NorthWest = North | West
)

// Offset returns the single-cell (row, col) displacement named by d.
// ok is false for contradictory compositions such as North|South, which do
// not describe a step. None yields (0, 0, true).
// Complexity: O(1).
func (d Direction) Offset() (dr, dc int, ok bool) {
	if d&North != 0 && d&South != 0 {
		return 0, 0, false
	}
	if d&East != 0 && d&West != 0 {
		return 0, 0, false
	}
	if d&North != 0 {
		dr = -1
	}
	if d&South != 0 {
		dr = 1
	}
	if d&East != 0 {
		dc = 1
	}
	if d&West != 0 {
		dc = -1
	}

	return dr, dc, true
}

// directionSymbols maps the nine well-formed directions to arrow glyphs.
var directionSymbols = map[Direction]string{
	NorthEast: "↗",
	SouthEast: "↘",
	SouthWest: "↙",
	NorthWest: "↖",
	North:     "↑",
	East:      "→",
	South:     "↓",
	West:      "←",
	None:      "∘",
}

// Symbol returns an arrow glyph pointing in the direction named by d, or a
// hollow bullet for None. Contradictory compositions have no glyph and
// return the empty string.
func (d Direction) Symbol() string {
	return directionSymbols[d]
}

// String returns the conventional name of d ("NorthWest", "East", "None").
// Contradictory compositions render their cardinal components joined by "|".
func (d Direction) String() string {
	switch d {
	case None:
		return "None"
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	}
	parts := make([]string, 0, 4)
	if d&North != 0 {
		parts = append(parts, "North")
	}
	if d&East != 0 {
		parts = append(parts, "East")
	}
	if d&South != 0 {
		parts = append(parts, "South")
	}
	if d&West != 0 {
		parts = append(parts, "West")
	}

	return strings.Join(parts, "|")
}
