package joltage

import (
	"errors"
	"fmt"
)

// Sentinel errors for bank validation.
var (
	// ErrBadBank is returned for empty banks or non-digit characters.
	ErrBadBank = errors.New("joltage: bank must be a non-empty digit string")

	// ErrBadLength is returned when the requested subsequence length is
	// not in [1, len(bank)] or exceeds int64 capacity (18 digits).
	ErrBadLength = errors.New("joltage: invalid subsequence length")
)

// maxInt64Digits is the longest decimal length that always fits int64.
const maxInt64Digits = 18

// digits validates bank and returns its digit values.
func digits(bank string) ([]int8, error) {
	if bank == "" {
		return nil, ErrBadBank
	}
	out := make([]int8, len(bank))
	for i := 0; i < len(bank); i++ {
		b := bank[i]
		if b < '0' || b > '9' {
			return nil, fmt.Errorf("%w: byte %q at index %d", ErrBadBank, b, i)
		}
		out[i] = int8(b - '0')
	}

	return out, nil
}

// MaxPair returns the largest two-digit number formed by picking two
// digits i < j and concatenating them. Single pass: for each candidate
// second digit, the best first digit is the maximum seen before it.
// Complexity: O(n).
func MaxPair(bank string) (int64, error) {
	ds, err := digits(bank)
	if err != nil {
		return 0, err
	}
	if len(ds) < 2 {
		return 0, fmt.Errorf("%w: need at least two digits", ErrBadBank)
	}

	best := int64(-1)
	maxFirst := ds[0]
	for j := 1; j < len(ds); j++ {
		if v := int64(maxFirst)*10 + int64(ds[j]); v > best {
			best = v
		}
		if ds[j] > maxFirst {
			maxFirst = ds[j]
		}
	}

	return best, nil
}

// MaxSubsequence returns the largest k-digit number obtainable by
// deleting all but k digits of bank without reordering.
//
// Steps:
//  1. Validate bank and 1 ≤ k ≤ min(len(bank), 18).
//  2. Greedy monotonic stack: while the incoming digit beats the stack
//     top AND dropping the top still leaves enough digits to reach k,
//     pop. Push until the stack holds k digits; ignore the rest.
//  3. Fold the k kept digits into an int64.
//
// Complexity: O(n) time, O(k) memory.
func MaxSubsequence(bank string, k int) (int64, error) {
	ds, err := digits(bank)
	if err != nil {
		return 0, err
	}
	if k < 1 || k > len(ds) || k > maxInt64Digits {
		return 0, fmt.Errorf("%w: k=%d for bank of %d digits", ErrBadLength, k, len(ds))
	}

	keep := make([]int8, 0, k)
	for i, d := range ds {
		// remaining digits after this one, including it
		remaining := len(ds) - i
		for len(keep) > 0 && keep[len(keep)-1] < d && len(keep)+remaining > k {
			keep = keep[:len(keep)-1]
		}
		if len(keep) < k {
			keep = append(keep, d)
		}
	}

	var v int64
	for _, d := range keep {
		v = v*10 + int64(d)
	}

	return v, nil
}
