package scanner

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Solve reads the puzzle input (comma-separated "start-end" ranges,
// possibly wrapped across several lines) and returns the sum of
// ExactDouble matches (part 1) and Periodic matches (part 2).
func Solve(r io.Reader) (part1, part2 string, err error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("scanner: read input: %w", err)
	}

	// Rejoining on commas makes line wrapping invisible to the parser;
	// a line ending in a comma just yields an empty token, which
	// ParseRanges skips.
	ranges, err := ParseRanges(strings.Join(lines, ","))
	if err != nil {
		return "", "", err
	}

	part1 = strconv.FormatInt(Sum(ranges, ExactDouble), 10)
	part2 = strconv.FormatInt(Sum(ranges, Periodic), 10)

	return part1, part2, nil
}
