package schema

import (
	"fmt"
	"math"
)

// Segment is one cell of a schema: a target symbol plus the score awarded to
// sequences that end up carrying it. The zero value is the blank segment,
// meaning "no target here"; inside an alternant a blank defers to whatever
// segment is in force at that column.
//
// The target type must be comparable so segments (and the sequences built
// from them) can be deduplicated by value.
type Segment[T comparable] struct {
	target  T
	defined bool
	score   float64
}

// NewSegment builds a segment carrying target with the given score.
// Returns ErrScoreNotFinite if the score is NaN or infinite.
func NewSegment[T comparable](target T, score float64) (Segment[T], error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return Segment[T]{}, fmt.Errorf("%w: got %v", ErrScoreNotFinite, score)
	}

	return Segment[T]{target: target, defined: true, score: score}, nil
}

// Blank returns the absent segment, equal to the zero value of Segment[T].
func Blank[T comparable]() Segment[T] { return Segment[T]{} }

// Target returns the segment's target and whether one is present. Blank
// segments return the zero value of T and false.
func (s Segment[T]) Target() (T, bool) { return s.target, s.defined }

// Defined reports whether the segment carries a target.
func (s Segment[T]) Defined() bool { return s.defined }

// Score returns the segment's score. Blank segments score 0.
func (s Segment[T]) Score() float64 { return s.score }

// String renders the segment as a "(target, score)" pair, with ∅ standing
// in for an absent target.
func (s Segment[T]) String() string {
	if !s.defined {
		return fmt.Sprintf("(∅, %v)", s.score)
	}

	return fmt.Sprintf("(%v, %v)", s.target, s.score)
}
