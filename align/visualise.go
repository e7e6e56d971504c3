package align

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Visualise renders the finished alignment as a four-row table: the
// source symbols, the target symbols, the per-step operation codes and
// the per-step operation costs. Insertions leave a blank in the source
// row, deletions a blank in the target row, so matching columns line up.
// A not-yet-finished alignment is computed first.
//
//	+--------+---+---+---+---+---+---+
//	|source  | s | i | t | t | e | n |
//	+--------+---+---+---+---+---+---+
//	|target  | k | i | t | t | e | n |
//	+--------+---+---+---+---+---+---+
//	|edits   | S |   |   |   |   |   |
//	+--------+---+---+---+---+---+---+
//	|costs   | 1 | 0 | 0 | 0 | 0 | 0 |
//	+--------+---+---+---+---+---+---+
func (a *Aligner[S]) Visualise() string {
	if !a.done {
		a.Compute()
	}
	script, _ := a.EditSequence()

	source := symbolStrings(a.source)
	target := symbolStrings(a.target)
	edits := make([]string, len(script))
	costs := make([]string, len(script))

	for i, op := range script {
		edits[i] = op.Code()
		switch op {
		case OpInsert:
			source = slices.Insert(source, i, "")
			costs[i] = formatCost(a.costs.Insert)
		case OpDelete:
			target = slices.Insert(target, i, "")
			costs[i] = formatCost(a.costs.Delete)
		case OpSubstitute:
			costs[i] = formatCost(a.costs.Substitute)
		default:
			costs[i] = "0"
		}
	}

	width, cols := 1, len(script)
	for _, row := range [][]string{source, target, edits, costs} {
		cols = max(cols, len(row))
		for _, cell := range row {
			width = max(width, runewidth.StringWidth(cell))
		}
	}
	width += 2 // one space of breathing room per side

	var b strings.Builder
	divider := tableDivider(cols, width)
	b.WriteString(divider)
	for _, row := range []struct {
		header string
		cells  []string
	}{
		{"source", source},
		{"target", target},
		{"edits", edits},
		{"costs", costs},
	} {
		for len(row.cells) < cols {
			row.cells = append(row.cells, "")
		}
		b.WriteString(tableRow(row.header, row.cells, width))
		b.WriteString(divider)
	}
	return b.String()
}

// symbolStrings stringifies a sequence for display; an empty sequence
// renders as a single blank cell so the table keeps its shape.
func symbolStrings[S any](seq []S) []string {
	if len(seq) == 0 {
		return []string{""}
	}
	out := make([]string, len(seq))
	for i, s := range seq {
		out[i] = fmt.Sprint(s)
	}
	return out
}

func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func tableDivider(cols, width int) string {
	var b strings.Builder
	b.WriteString("+--------")
	for i := 0; i < cols; i++ {
		b.WriteByte('+')
		b.WriteString(strings.Repeat("-", width))
	}
	b.WriteString("+\n")
	return b.String()
}

func tableRow(header string, cells []string, width int) string {
	var b strings.Builder
	b.WriteByte('|')
	b.WriteString(header)
	b.WriteString(strings.Repeat(" ", max(0, 8-runewidth.StringWidth(header))))
	for _, cell := range cells {
		b.WriteByte('|')
		b.WriteString(center(cell, width))
	}
	b.WriteString("|\n")
	return b.String()
}

// center pads cell to width, biasing leftover space to the right.
func center(cell string, width int) string {
	gap := width - runewidth.StringWidth(cell)
	if gap <= 0 {
		return cell
	}
	left := gap / 2
	return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
}
