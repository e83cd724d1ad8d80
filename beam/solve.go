package beam

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Solve reads the splitter grid and returns the distinct splitters hit
// (part 1) and the number of start-to-exit paths (part 2).
func Solve(r io.Reader) (part1, part2 string, err error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("beam: read input: %w", err)
	}

	t, err := New(lines)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(t.CountSplitters()), strconv.FormatInt(t.CountPaths(), 10), nil
}
