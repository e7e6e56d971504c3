package schema

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// CompileOption configures one Compile call.
type CompileOption func(*compileConfig)

type compileConfig struct {
	trace io.Writer
}

// WithTrace streams the expansion tree to w, one line per visited form,
// indented by recursion depth and flagging value duplicates.
func WithTrace(w io.Writer) CompileOption {
	return func(cfg *compileConfig) {
		cfg.trace = w
	}
}

// Compile expands the schema into every distinct candidate sequence
// reachable by overlaying any ordered subset of its alternants onto the
// base. Where two alternants write the same column the later one wins, and
// every application order is explored, so each last-writer-wins resolution
// surfaces as its own candidate; outcomes equal by (targets, score) are
// inserted once. The base sequence is always the first element.
//
// Returns ErrBaseIncomplete when the base has never been fully set.
//
// Complexity: the expansion visits Σ_{k=0..n} n!/(n−k)! forms for n
// alternants. Schemas are expected to keep n in single digits.
func (s *Schema[T]) Compile(opts ...CompileOption) (*Compilation[T], error) {
	var cfg compileConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	base := s.Base()
	for i, seg := range base {
		if !seg.defined {
			return nil, fmt.Errorf("schema: blank base segment at column %d: %w", i, ErrBaseIncomplete)
		}
	}

	c := &compiler[T]{cfg: cfg, out: &Compilation[T]{}, seen: make(map[string]struct{})}
	c.expand(base, s.Alternants(), 0)

	return c.out, nil
}

type compiler[T comparable] struct {
	cfg  compileConfig
	out  *Compilation[T]
	seen map[string]struct{}
}

// expand records the working form, then recurses once per remaining
// alternant with that alternant overlaid and withdrawn from the pool.
// Each frame owns its own form and pool copies, so sibling branches never
// observe each other's overlays.
func (c *compiler[T]) expand(form []Segment[T], alts [][]Segment[T], depth int) {
	c.record(form, depth)
	for i, alt := range alts {
		rest := slices.Delete(slices.Clone(alts), i, i+1)
		c.expand(overlay(form, alt), rest, depth+1)
	}
}

func (c *compiler[T]) record(form []Segment[T], depth int) {
	seq := sequenceOf(form)
	key := seq.key()
	_, dup := c.seen[key]
	if !dup {
		c.seen[key] = struct{}{}
		c.out.Add(seq)
	}
	if c.cfg.trace != nil {
		mark := ""
		if dup {
			mark = " (duplicate)"
		}
		fmt.Fprintf(c.cfg.trace, "%s%s%s\n", strings.Repeat("  ", depth), seq, mark)
	}
}

// overlay merges an alternant onto a form: per column, the alternant's
// segment where it carries a target, the form's segment otherwise.
func overlay[T comparable](form, alt []Segment[T]) []Segment[T] {
	merged := slices.Clone(form)
	for i, seg := range alt {
		if seg.defined {
			merged[i] = seg
		}
	}

	return merged
}

// sequenceOf reduces a fully-resolved form to its candidate sequence: the
// ordered targets plus the score summed over every column's segment.
func sequenceOf[T comparable](form []Segment[T]) Sequence[T] {
	targets := make([]T, len(form))
	score := 0.0
	for i, seg := range form {
		targets[i] = seg.target
		score += seg.score
	}

	return NewSequence(targets, score)
}
