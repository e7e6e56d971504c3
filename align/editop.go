package align

import "strings"

// EditOperation tags how a cell's cumulative cost was derived. Values are
// bit flags so reserved composites (e.g. a future transposition encoded as
// OpInsert|OpDelete) remain expressible, though the engine currently always
// assigns a single flag per cell.
type EditOperation uint8

const (
	// OpInsert consumes one target symbol.
	OpInsert EditOperation = 1 << iota
	// OpDelete consumes one source symbol.
	OpDelete
	// OpSubstitute consumes one symbol from each sequence, replacing
	// the source symbol with the target one.
	OpSubstitute
	// OpTranspose is reserved for Damerau-style extensions and is never
	// produced by this package.
	OpTranspose
)

// OpNone marks a free match: one symbol consumed from each sequence,
// nothing changed. It is also the zero value of EditOperation.
const OpNone EditOperation = 0

// opOrder fixes the flag traversal order used by Code and String.
var opOrder = [...]struct {
	flag EditOperation
	name string
}{
	{OpInsert, "Insert"},
	{OpDelete, "Delete"},
	{OpSubstitute, "Substitute"},
	{OpTranspose, "Transpose"},
}

// Code returns the compact one-letter-per-flag form used in rendered
// alignment tables: "I", "D", "S", "T", or their concatenation for
// composite values. OpNone yields the empty string, so matched columns
// stay blank in the table.
func (op EditOperation) Code() string {
	var b strings.Builder
	for _, o := range opOrder {
		if op&o.flag != 0 {
			b.WriteByte(o.name[0])
		}
	}
	return b.String()
}

// String returns the spelled-out operation name, "|"-joining composite
// flag sets. OpNone reads "None".
func (op EditOperation) String() string {
	if op == OpNone {
		return "None"
	}
	names := make([]string, 0, len(opOrder))
	for _, o := range opOrder {
		if op&o.flag != 0 {
			names = append(names, o.name)
		}
	}
	return strings.Join(names, "|")
}
