// Package scanner detects "invalid" product IDs inside inclusive integer
// ranges by matching each ID's decimal representation against a
// digit-pattern predicate.
//
// What
//
//   - Range: an inclusive [Start, End] pair of positive integers,
//     validated on construction (Start ≤ End, both > 0).
//   - ParseRanges: parses a comma-separated list of "start-end" tokens,
//     failing with an error that names the offending token.
//   - Predicates over a positive integer's decimal digit string:
//   - ExactDouble: the string is its own first half written twice
//     ("1010" → true, "1011" → false; odd lengths never match).
//   - Periodic: the string is some proper prefix repeated ≥ 2 times
//     ("123123123" → true with period 3, "111" → true with period 1,
//     "101" → false).
//   - Sum: the sum of every integer in a set of ranges satisfying a
//     predicate (brute scan — puzzle ranges are small by contract).
//
// Why
//
//	Both halves of the puzzle are the same fold with a different
//	predicate, so the predicate is the pluggable part.
//
// Edge cases
//
//   - Single-digit numbers match neither predicate (no proper period,
//     no even split).
//   - Decimal formatting of a positive integer never yields leading
//     zeros, so predicates may assume their absence.
//
// Complexity
//
//	Sum visits each integer in each range once; ExactDouble is O(L) and
//	Periodic is O(L·d(L)) per candidate, with L the digit count.
//
// Errors
//
//   - ErrMalformedRange for non-numeric or structurally broken tokens.
//   - ErrInvalidBounds for non-positive bounds or Start > End.
package scanner
