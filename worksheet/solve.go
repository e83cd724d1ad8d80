package worksheet

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Solve reads the worksheet and returns the token-reading total
// (part 1) and the column-reading total (part 2).
func Solve(r io.Reader) (part1, part2 string, err error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("worksheet: read input: %w", err)
	}

	tokenProblems, err := ParseTokenProblems(lines)
	if err != nil {
		return "", "", err
	}
	columnProblems, err := ParseColumnProblems(lines)
	if err != nil {
		return "", "", err
	}

	part1 = strconv.FormatInt(SumProblems(tokenProblems), 10)
	part2 = strconv.FormatInt(SumProblems(columnProblems), 10)

	return part1, part2, nil
}
