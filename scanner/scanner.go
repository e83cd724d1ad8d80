package scanner

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for range parsing.
var (
	// ErrMalformedRange is returned for tokens that are not "start-end"
	// with numeric bounds.
	ErrMalformedRange = errors.New("scanner: malformed range token")

	// ErrInvalidBounds is returned when bounds are non-positive or
	// Start exceeds End.
	ErrInvalidBounds = errors.New("scanner: invalid range bounds")
)

// Range is an inclusive span of positive integer IDs.
// Invariant (enforced by NewRange): 0 < Start ≤ End.
type Range struct {
	Start, End int64
}

// Len returns the number of IDs covered by the range.
func (r Range) Len() int64 { return r.End - r.Start + 1 }

// NewRange validates and constructs a Range.
// Returns ErrInvalidBounds if start < 1 or start > end.
func NewRange(start, end int64) (Range, error) {
	if start < 1 || start > end {
		return Range{}, fmt.Errorf("%w: %d-%d", ErrInvalidBounds, start, end)
	}

	return Range{Start: start, End: end}, nil
}

// ParseRanges parses a comma-separated list of "start-end" tokens, e.g.
// "11-22,95-115,998-1012". Surrounding whitespace per token is ignored
// and empty tokens (stray or trailing commas) are skipped.
// The error names the first offending token.
func ParseRanges(line string) ([]Range, error) {
	tokens := strings.Split(strings.TrimSpace(line), ",")
	out := make([]Range, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		lo, hi, ok := strings.Cut(tok, "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRange, tok)
		}
		start, err := strconv.ParseInt(lo, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRange, tok)
		}
		end, err := strconv.ParseInt(hi, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedRange, tok)
		}
		r, err := NewRange(start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}

// Predicate reports whether a positive integer's decimal digit string
// matches a pattern. Implementations may assume no leading zeros.
type Predicate func(digits string) bool

// ExactDouble reports whether digits is its own first half repeated
// exactly twice. Odd-length strings (single digits included) never match.
func ExactDouble(digits string) bool {
	n := len(digits)
	if n%2 != 0 {
		return false
	}

	return digits[:n/2] == digits[n/2:]
}

// Periodic reports whether digits equals some proper prefix repeated
// two or more times. The check tries every divisor d < len(digits) of
// the length and confirms reconstruction.
func Periodic(digits string) bool {
	n := len(digits)
	for d := 1; d <= n/2; d++ {
		if n%d != 0 {
			continue
		}
		if strings.Repeat(digits[:d], n/d) == digits {
			return true
		}
	}

	return false
}

// SumRange sums every ID in r whose decimal form satisfies pred.
// Complexity: O(Len·L) with L the digit count.
func SumRange(r Range, pred Predicate) int64 {
	var total int64
	for id := r.Start; id <= r.End; id++ {
		if pred(strconv.FormatInt(id, 10)) {
			total += id
		}
	}

	return total
}

// Sum folds SumRange over all ranges.
func Sum(ranges []Range, pred Predicate) int64 {
	var total int64
	for _, r := range ranges {
		total += SumRange(r, pred)
	}

	return total
}
