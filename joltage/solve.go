package joltage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// subsequenceLen is the digit count the puzzle asks for in part 2.
const subsequenceLen = 12

// Solve reads one bank per line and returns the sum of best two-digit
// joins (part 1) and the sum of best 12-digit subsequences (part 2).
func Solve(r io.Reader) (part1, part2 string, err error) {
	var p1, p2 int64
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		bank := strings.TrimSpace(sc.Text())
		if bank == "" {
			continue
		}
		pair, err := MaxPair(bank)
		if err != nil {
			return "", "", fmt.Errorf("line %d: %w", lineNo, err)
		}
		sub, err := MaxSubsequence(bank, subsequenceLen)
		if err != nil {
			return "", "", fmt.Errorf("line %d: %w", lineNo, err)
		}
		p1 += pair
		p2 += sub
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("joltage: read input: %w", err)
	}

	return strconv.FormatInt(p1, 10), strconv.FormatInt(p2, 10), nil
}
