// Package align computes weighted edit distances between two symbol
// sequences and reconstructs the minimal-cost edit script.
//
// 🚀 What is align?
//
//	An object-style implementation of the Wagner–Fischer algorithm over
//	three parallel grids: cumulative cost, backlink (a cursor to the cell
//	each value was derived from) and edit-operation tag. Filling proceeds
//	cell by cell in strict row-major order, so the computation can be
//	driven one Step at a time and inspected mid-flight, or run to
//	completion with Compute.
//
// ✨ Key behaviors:
//   - per-operation costs (insert, delete, substitute), 1 each by default
//   - substituting like for like is free and tagged OpNone
//   - tie policy: substitution ≤ deletion ≤ insertion, evaluated in that
//     priority — substitution wins any tie it participates in, deletion
//     wins the insertion/deletion tie
//   - once done, the engine is idempotent: further Step/Compute calls are
//     no-ops and every view (Distance, EditSequence, ...) is stable
//   - empty source and/or target sequences are valid inputs, not errors
//
// Complexity: Compute is O(m·n) time and memory for sequence lengths m, n;
// every reconstruction view is O(m+n).
//
// Example:
//
//	a, _ := align.NewStrings("sitten", "kitten", align.DefaultCosts())
//	a.Compute()
//	d, _ := a.Distance() // 1
//	fmt.Println(a.Visualise())
//
package align
