package freshness

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/adventkit/scanner"
)

// ErrMalformedLine is returned when a line is neither a valid range nor
// a bare integer.
var ErrMalformedLine = errors.New("freshness: malformed input line")

// Parse splits the mixed input into fresh ranges and ingredient IDs.
// Lines containing '-' are parsed as "start-end" ranges via the scanner
// package; all other non-blank lines must be bare integers.
func Parse(lines []string) (ranges []scanner.Range, ids []int64, err error) {
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.Contains(line, "-") {
			rs, err := scanner.ParseRanges(line)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, i+1, err)
			}
			ranges = append(ranges, rs...)
			continue
		}
		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, i+1, line)
		}
		ids = append(ids, id)
	}

	return ranges, ids, nil
}

// CountFresh returns how many ids fall inside at least one range.
// Complexity: O(I·R).
func CountFresh(ids []int64, ranges []scanner.Range) int {
	fresh := 0
	for _, id := range ids {
		for _, r := range ranges {
			if r.Start <= id && id <= r.End {
				fresh++
				break
			}
		}
	}

	return fresh
}

// Merge returns the union of the ranges as a minimal sorted set of
// disjoint ranges.
//
// Steps:
//  1. Copy and sort by Start (End as tie-break).
//  2. Sweep: extend the current span while the next range overlaps or
//     touches it; otherwise emit and restart.
//
// Complexity: O(R log R).
func Merge(ranges []scanner.Range) []scanner.Range {
	if len(ranges) == 0 {
		return nil
	}
	sorted := make([]scanner.Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}

		return sorted[i].End < sorted[j].End
	})

	out := make([]scanner.Range, 0, len(sorted))
	cur := sorted[0]
	for _, r := range sorted[1:] {
		if r.Start <= cur.End+1 {
			if r.End > cur.End {
				cur.End = r.End
			}
			continue
		}
		out = append(out, cur)
		cur = r
	}

	return append(out, cur)
}

// Coverage returns the total number of integers covered by the union of
// the ranges.
func Coverage(ranges []scanner.Range) int64 {
	var total int64
	for _, r := range Merge(ranges) {
		total += r.Len()
	}

	return total
}
