// Package joltage picks the highest-value digit subsequence out of a
// "battery bank" — a line of decimal digits whose order must be kept.
//
// What
//
//   - MaxPair: the largest two-digit number formed by two digits of the
//     bank in their original order.
//   - MaxSubsequence: the largest k-digit number formed by deleting all
//     but k digits, order preserved. The puzzle uses k = 12.
//
// How
//
//	MaxSubsequence runs the classic monotonic-stack greedy: scan digits
//	left to right, popping smaller stacked digits while enough input
//	remains to still fill k slots. This replaces the original recursive
//	enumeration with an O(n) pass whose termination is structural.
//
// Edge cases
//
//   - k must satisfy 1 ≤ k ≤ len(bank); k > 18 would overflow int64 and
//     is rejected.
//   - Any non-digit byte in the bank is a parse error naming the byte.
//
// Errors
//
//   - ErrBadBank   for empty banks or non-digit characters.
//   - ErrBadLength for k outside the valid window.
package joltage
