package schema

import (
	"fmt"

	"phonoscore/grid"
)

// Schema is a base form plus scored alternant overlays, stored as a grid of
// segments: row 0 is the base, rows 1..n the alternants, one column per
// position of the form. All forms share the schema's length.
type Schema[T comparable] struct {
	forms *grid.Grid[Segment[T]]
}

// New creates a schema of the given form length with room for forms-1
// alternants. Every cell starts blank; the base must be set before
// compiling. Returns ErrShape when either argument is below 1.
func New[T comparable](length, forms int) (*Schema[T], error) {
	if length < 1 || forms < 1 {
		return nil, fmt.Errorf("schema.New(%d,%d): %w", length, forms, ErrShape)
	}
	g, err := grid.New[Segment[T]](forms, length)
	if err != nil {
		return nil, err
	}

	return &Schema[T]{forms: g}, nil
}

// FromGrid creates a schema over a deep copy of an existing segment grid:
// row 0 is taken as the base, later rows as alternants. The caller's grid
// is not retained.
func FromGrid[T comparable](g *grid.Grid[Segment[T]]) *Schema[T] {
	return &Schema[T]{forms: g.Clone()}
}

// Length returns the number of columns shared by every form.
func (s *Schema[T]) Length() int { return s.forms.Cols() }

// NumForms returns the number of forms, base included.
func (s *Schema[T]) NumForms() int { return s.forms.Rows() }

// NumAlternants returns the number of alternant forms.
func (s *Schema[T]) NumAlternants() int { return s.forms.Rows() - 1 }

// SetBase replaces the base form. The form must match the schema's length
// and every segment must carry a target: a blank base column has nothing to
// defer to.
func (s *Schema[T]) SetBase(form []Segment[T]) error {
	if len(form) != s.Length() {
		return fmt.Errorf("schema: base of %d segments for length %d: %w",
			len(form), s.Length(), ErrFormLength)
	}
	for i, seg := range form {
		if !seg.defined {
			return fmt.Errorf("schema: blank base segment at column %d: %w", i, ErrBaseIncomplete)
		}
	}

	return s.forms.SetRow(0, form)
}

// Base returns a copy of the base form.
func (s *Schema[T]) Base() []Segment[T] {
	row, _ := s.forms.Row(0)
	return row
}

// SetAlternant replaces the alternant at index (0-based among alternants,
// so index 0 is grid row 1). Blank segments mean "no override at this
// column". The form must match the schema's length.
func (s *Schema[T]) SetAlternant(index int, form []Segment[T]) error {
	if index < 0 || index >= s.NumAlternants() {
		return fmt.Errorf("schema: alternant %d of %d: %w", index, s.NumAlternants(), ErrFormRange)
	}
	if len(form) != s.Length() {
		return fmt.Errorf("schema: alternant of %d segments for length %d: %w",
			len(form), s.Length(), ErrFormLength)
	}

	return s.forms.SetRow(index+1, form)
}

// Alternant returns a copy of the alternant at index.
func (s *Schema[T]) Alternant(index int) ([]Segment[T], error) {
	if index < 0 || index >= s.NumAlternants() {
		return nil, fmt.Errorf("schema: alternant %d of %d: %w", index, s.NumAlternants(), ErrFormRange)
	}

	return s.forms.Row(index + 1)
}

// Alternants returns copies of all alternant forms, in row order.
func (s *Schema[T]) Alternants() [][]Segment[T] {
	alts := make([][]Segment[T], 0, s.NumAlternants())
	for i := 0; i < s.NumAlternants(); i++ {
		row, _ := s.forms.Row(i + 1)
		alts = append(alts, row)
	}

	return alts
}

// String renders the schema as its underlying grid of segments.
func (s *Schema[T]) String() string { return s.forms.String() }
