package plots

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Solve reads the fence-post list and returns the largest pair
// rectangle (part 1) and the largest pair rectangle contained in the
// fence (part 2).
func Solve(r io.Reader) (part1, part2 string, err error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("plots: read input: %w", err)
	}

	points, err := ParsePoints(lines)
	if err != nil {
		return "", "", err
	}

	best, err := MaxArea(points)
	if err != nil {
		return "", "", err
	}
	contained, err := MaxContainedArea(points)
	if err != nil {
		return "", "", err
	}

	return strconv.FormatInt(best, 10), strconv.FormatInt(contained, 10), nil
}
