package automaton

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Solve reads the '@'/'.' grid and returns the round-1 clear count
// (part 1) and the total cleared at fixed point (part 2).
func Solve(r io.Reader) (part1, part2 string, err error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("automaton: read input: %w", err)
	}

	a, err := New(lines, DefaultOptions())
	if err != nil {
		return "", "", err
	}
	first, total := a.Run()

	return strconv.Itoa(first), strconv.Itoa(total), nil
}
