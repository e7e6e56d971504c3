// Package phonoscore scores candidate phonetic transcriptions against a
// reference scoring scheme.
//
// 🚀 What is phonoscore?
//
//	A small, deterministic library built from two engines over a shared
//	2-D grid substrate:
//		• Alignment: weighted edit distance (Wagner–Fischer) between two
//		  symbol sequences, with full edit-path reconstruction
//		• Compilation: expansion of a scored "base + alternants" schema
//		  into the complete set of distinct scored candidate sequences
//
// ✨ Why choose phonoscore?
//
//   - Minimal API, clear naming, explicit errors
//   - Deterministic – strict row-major computation, stable candidate order
//   - Inspectable – step the alignment cell by cell, read every
//     intermediate grid, render text tables of the result
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/   — bounds-checked generic 2-D grids, bounded cursors, compass directions
//	align/  — the weighted edit-distance engine and its edit-script views
//	schema/ — scored segments, target schemas and the candidate compiler
//
// Quick ASCII example:
//
//	    Source | s | i | t | t | e | n |
//	    Target | k | i | t | t | e | n |
//	    Edits  | S |   |   |   |   |   |
//
//	one substitution: distance 1.
//
//	go get phonoscore
package phonoscore
