package schema

import (
	"fmt"
	"slices"
	"strings"
)

// Sequence is one compiled candidate: an immutable ordered list of targets
// and the summed score of the segments that produced them.
type Sequence[T comparable] struct {
	targets []T
	score   float64
}

// NewSequence builds a sequence over a copy of targets.
func NewSequence[T comparable](targets []T, score float64) Sequence[T] {
	return Sequence[T]{targets: slices.Clone(targets), score: score}
}

// Targets returns a copy of the ordered targets.
func (s Sequence[T]) Targets() []T { return slices.Clone(s.targets) }

// Score returns the summed score of the sequence.
func (s Sequence[T]) Score() float64 { return s.score }

// Len returns the number of targets.
func (s Sequence[T]) Len() int { return len(s.targets) }

// Equal reports whether two sequences carry the same targets in the same
// order with the same score.
func (s Sequence[T]) Equal(other Sequence[T]) bool {
	return s.score == other.score && slices.Equal(s.targets, other.targets)
}

// Flatten joins the targets into one string. Textual targets (strings,
// runes, Stringers) concatenate naturally; anything else falls back to its
// default formatting.
func (s Sequence[T]) Flatten() string {
	var b strings.Builder
	for _, t := range s.targets {
		b.WriteString(flatten(t))
	}

	return b.String()
}

func flatten(target any) string {
	switch v := target.(type) {
	case string:
		return v
	case rune:
		return string(v)
	case byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// String renders the sequence as its flattened targets and score.
func (s Sequence[T]) String() string {
	return fmt.Sprintf("%s (%v)", s.Flatten(), s.score)
}

// key is the dedup identity of a sequence: targets by value, then score.
// Targets are delimited with unit separators so neighboring values cannot
// run together.
func (s Sequence[T]) key() string {
	var b strings.Builder
	for _, t := range s.targets {
		fmt.Fprintf(&b, "%#v\x1f", t)
	}
	fmt.Fprintf(&b, "\x1e%v", s.score)

	return b.String()
}
