package freshness

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Solve reads the mixed range/ID input and returns the fresh-ingredient
// count (part 1) and the union coverage of all ranges (part 2).
func Solve(r io.Reader) (part1, part2 string, err error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("freshness: read input: %w", err)
	}

	ranges, ids, err := Parse(lines)
	if err != nil {
		return "", "", err
	}

	part1 = strconv.Itoa(CountFresh(ids, ranges))
	part2 = strconv.FormatInt(Coverage(ranges), 10)

	return part1, part2, nil
}
