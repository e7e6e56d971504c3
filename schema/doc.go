// Package schema models scored sequence schemas: a base form plus optional
// scored alternant overlays, compiled into the full set of distinct scored
// candidate sequences the schema can produce.
//
// 🚀 What is schema?
//
//	A Schema is a grid of scored segments. Row 0 is the base form and must
//	carry a concrete target in every column; each further row is an
//	alternant of the same length whose blank cells mean "no override here,
//	defer to whatever is in force". Compile explores every ordered subset
//	of the alternants — when two alternants write the same column, each
//	last-writer-wins resolution becomes its own candidate — and
//	deduplicates the outcomes by value into a Compilation.
//
// ✨ Key behaviors:
//   - a Sequence scores the sum over all columns of whichever segment is
//     finally in force there, overlaid or not
//   - deduplication compares (targets, score) pairs; the base sequence is
//     always the first element of the Compilation
//   - Compile is factorial in the number of alternants, bounded by
//     Σ_{k=0..n} n!/(n−k)!. Schemas are expected to carry single-digit
//     alternant counts.
//   - WithTrace streams the expansion tree to a writer for debugging
//
// Example:
//
//	s, _ := schema.New[string](3, 2)
//	_ = s.SetBase([]schema.Segment[string]{seg("t", 0), seg("u", 0), seg("m", 0)})
//	_ = s.SetAlternant(0, []schema.Segment[string]{seg("d", 1), blank, blank})
//	c, _ := s.Compile()
//	c.ContainsFlat("dum") // true, score 1
package schema
