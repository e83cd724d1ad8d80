package dial

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Solve reads one rotation per line and returns the landing count
// (part 1) and the click-through count (part 2).
func Solve(r io.Reader) (part1, part2 string, err error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("dial: read input: %w", err)
	}

	rots, err := ParseRotations(lines)
	if err != nil {
		return "", "", err
	}

	return strconv.Itoa(Landings(rots)), strconv.Itoa(Crossings(rots)), nil
}
