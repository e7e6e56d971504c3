package grid

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// pad right-pads s with spaces up to display width w. Width is measured in
// terminal columns, not runes, so wide glyphs keep columns aligned.
func pad(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-runewidth.StringWidth(s)))
}

// Stringify renders the grid as a bracketed, label-aligned text table.
// Row and column labels, when supplied, must already match the grid's
// dimensions (callers normally pass the grid's own labels). cellWidth
// right-pads every cell for vertical alignment and is ideally the display
// width of the widest cell rendering.
//
//	     k    i    t
//	s  [ 1  , 1  , 2   ]
//	i  [ 2  , 1  , 2   ]
//
// Complexity: O(rows·cols).
func (g *Grid[T]) Stringify(rowLabels, colLabels []string, cellWidth int) string {
	var b strings.Builder
	if colLabels != nil {
		if rowLabels != nil {
			b.WriteString(pad("", cellWidth) + " ")
		}
		b.WriteString("  ") // covers the span of "[ "
		for _, label := range colLabels {
			b.WriteString(pad(label, cellWidth))
			b.WriteString("  ") // stands in for ", "
		}
		b.WriteString("\n")
	}
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteString("\n")
		}
		if rowLabels != nil {
			if r < len(rowLabels) {
				b.WriteString(pad(rowLabels[r], cellWidth) + " ")
			} else {
				b.WriteString(pad("", cellWidth) + " ")
			}
		}
		b.WriteString("[ ")
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString(pad(fmt.Sprint(g.cells[r*g.cols+c]), cellWidth))
		}
		b.WriteString(" ]")
	}

	return b.String()
}

// String renders the grid using its own labels and cell width.
func (g *Grid[T]) String() string {
	return g.Stringify(g.rowLabels, g.colLabels, g.cellWidth)
}

// GoString renders the grid as a nested list, one row per line. For
// primitive cell types the output parses back into an equivalent value; it
// is a diagnostic rendering, not a stable wire format.
func (g *Grid[T]) GoString() string {
	var b strings.Builder
	b.WriteString("[")
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteString("],\n [")
		} else {
			b.WriteString("[")
		}
		for c := 0; c < g.cols; c++ {
			if c > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%#v", g.cells[r*g.cols+c])
		}
	}
	b.WriteString("]]")

	return b.String()
}
