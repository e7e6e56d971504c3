package schema

import (
	"fmt"
	"iter"
	"slices"
)

// Compilation is the ordered collection of candidate sequences produced by
// compiling a schema. The compiler inserts each distinct (targets, score)
// pair once, base first; Add itself permits duplicates, so a Compilation
// assembled by hand may hold repeated values.
type Compilation[T comparable] struct {
	seqs []Sequence[T]
}

// Len returns the number of stored sequences.
func (c *Compilation[T]) Len() int { return len(c.seqs) }

// At returns the sequence at index i. Returns ErrSequenceRange when i is
// outside [0, Len).
func (c *Compilation[T]) At(i int) (Sequence[T], error) {
	if i < 0 || i >= len(c.seqs) {
		return Sequence[T]{}, fmt.Errorf("schema: sequence %d of %d: %w", i, len(c.seqs), ErrSequenceRange)
	}

	return c.seqs[i], nil
}

// Sequences returns a copy of the stored sequences in insertion order.
func (c *Compilation[T]) Sequences() []Sequence[T] {
	return slices.Clone(c.seqs)
}

// All returns an insertion-order iterator over (index, Sequence) pairs.
func (c *Compilation[T]) All() iter.Seq2[int, Sequence[T]] {
	return func(yield func(int, Sequence[T]) bool) {
		for i, s := range c.seqs {
			if !yield(i, s) {
				return
			}
		}
	}
}

// Add appends a sequence. Duplicates are stored as-is.
func (c *Compilation[T]) Add(s Sequence[T]) {
	c.seqs = append(c.seqs, s)
}

// Index returns the position of the first stored sequence equal to s by
// value, or -1.
func (c *Compilation[T]) Index(s Sequence[T]) int {
	return slices.IndexFunc(c.seqs, s.Equal)
}

// IndexTargets returns the position of the first sequence whose ordered
// targets equal targets, regardless of score, or -1.
func (c *Compilation[T]) IndexTargets(targets []T) int {
	return slices.IndexFunc(c.seqs, func(s Sequence[T]) bool {
		return slices.Equal(s.targets, targets)
	})
}

// IndexFlat returns the position of the first sequence whose flattened
// form equals flat, regardless of score, or -1.
func (c *Compilation[T]) IndexFlat(flat string) int {
	return slices.IndexFunc(c.seqs, func(s Sequence[T]) bool {
		return s.Flatten() == flat
	})
}

// Contains reports whether any stored sequence equals s by value.
func (c *Compilation[T]) Contains(s Sequence[T]) bool { return c.Index(s) >= 0 }

// ContainsTargets reports whether any stored sequence carries exactly
// these ordered targets.
func (c *Compilation[T]) ContainsTargets(targets []T) bool { return c.IndexTargets(targets) >= 0 }

// ContainsFlat reports whether any stored sequence flattens to flat.
func (c *Compilation[T]) ContainsFlat(flat string) bool { return c.IndexFlat(flat) >= 0 }

// Count returns how many stored sequences equal s by value.
func (c *Compilation[T]) Count(s Sequence[T]) int {
	n := 0
	for _, q := range c.seqs {
		if q.Equal(s) {
			n++
		}
	}

	return n
}

// CountTargets returns how many stored sequences carry exactly these
// ordered targets.
func (c *Compilation[T]) CountTargets(targets []T) int {
	n := 0
	for _, q := range c.seqs {
		if slices.Equal(q.targets, targets) {
			n++
		}
	}

	return n
}

// CountFlat returns how many stored sequences flatten to flat.
func (c *Compilation[T]) CountFlat(flat string) int {
	n := 0
	for _, q := range c.seqs {
		if q.Flatten() == flat {
			n++
		}
	}

	return n
}
