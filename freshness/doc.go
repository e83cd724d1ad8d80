// Package freshness answers the ingredient-freshness puzzle: given
// inclusive ranges of fresh IDs and a list of ingredient IDs, count the
// fresh ingredients, then count every ID the ranges cover at all.
//
// What
//
//   - Parse: reads a mixed input — "start-end" lines (ranges) and bare
//     integer lines (ingredient IDs), in any order, blank lines ignored.
//     Range tokens reuse the scanner package's validated Range.
//   - CountFresh: ingredients falling inside at least one range.
//   - Merge / Coverage: canonical sort-and-sweep union of the ranges and
//     the total number of integers it covers.
//
// Why sweep
//
//	The original single-pass merge depends on input ordering quirks; a
//	sort by Start followed by an extend-or-emit sweep is defined for
//	every input and equal on well-formed ones.
//
// Complexity
//
//	O(R log R) for the sweep, O(I·R) for the membership scan — both far
//	below the tiny puzzle sizes.
//
// Errors
//
//   - ErrMalformedLine (wrapping scanner errors where applicable) with
//     the 1-based line number of the offending line.
package freshness
