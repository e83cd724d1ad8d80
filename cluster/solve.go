package cluster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// DefaultConnectLimit is the number of closest pairs part 1 connects.
const DefaultConnectLimit = 10

// Solve reads the "x,y,z" point list and returns the top-group product
// after DefaultConnectLimit connections (part 1) and the X·X product of
// the unifying edge's endpoints (part 2).
func Solve(r io.Reader) (part1, part2 string, err error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("cluster: read input: %w", err)
	}

	points, err := ParsePoints(lines)
	if err != nil {
		return "", "", err
	}

	product, err := TopGroupProduct(points, DefaultConnectLimit)
	if err != nil {
		return "", "", err
	}
	last, err := Unify(points)
	if err != nil {
		return "", "", err
	}

	part1 = strconv.FormatInt(product, 10)
	part2 = strconv.FormatInt(points[last.A].X*points[last.B].X, 10)

	return part1, part2, nil
}
