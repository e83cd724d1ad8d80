package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/adventkit/ilp"
)

// Solve reads the machine list and returns the summed minimum light
// presses (part 1) and the summed minimum voltage presses (part 2).
func Solve(r io.Reader) (part1, part2 string, err error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("circuit: read input: %w", err)
	}

	machines, err := ParseMachines(lines)
	if err != nil {
		return "", "", err
	}

	solver := ilp.BranchBound{}
	var lights, voltage int64
	for i, m := range machines {
		p, err := m.MinPresses()
		if err != nil {
			return "", "", fmt.Errorf("machine %d: %w", i+1, err)
		}
		lights += p

		v, err := m.MinVoltagePresses(solver)
		if err != nil {
			return "", "", fmt.Errorf("machine %d: %w", i+1, err)
		}
		voltage += v
	}

	return strconv.FormatInt(lights, 10), strconv.FormatInt(voltage, 10), nil
}
