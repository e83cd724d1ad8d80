package worksheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedSheet is returned for sheets that do not parse as a
// worksheet under the reading in use.
var ErrMalformedSheet = errors.New("worksheet: malformed sheet")

// Op is a column operator.
type Op byte

const (
	// Add sums the operands.
	Add Op = '+'
	// Mul multiplies the operands.
	Mul Op = '*'
)

// Problem is one worksheet column group: an operator applied to the
// numbers read from its columns.
type Problem struct {
	Op   Op
	Nums []int64
}

// Eval applies the operator across the operands.
func (p Problem) Eval() int64 {
	if p.Op == Mul {
		prod := int64(1)
		for _, n := range p.Nums {
			prod *= n
		}

		return prod
	}
	var sum int64
	for _, n := range p.Nums {
		sum += n
	}

	return sum
}

// SumProblems folds Eval over all problems.
func SumProblems(ps []Problem) int64 {
	var total int64
	for _, p := range ps {
		total += p.Eval()
	}

	return total
}

// parseOp validates an operator byte.
func parseOp(b byte) (Op, error) {
	if b != byte(Add) && b != byte(Mul) {
		return 0, fmt.Errorf("%w: unknown operator %q", ErrMalformedSheet, b)
	}

	return Op(b), nil
}

// ParseTokenProblems implements the token reading: every line is split
// into whitespace-separated fields, the last line holds one operator per
// column, and each column's fields above it are that problem's operands.
// All lines must carry the same field count.
func ParseTokenProblems(lines []string) ([]Problem, error) {
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if fields := strings.Fields(line); len(fields) > 0 {
			rows = append(rows, fields)
		}
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: need at least one number row and the operator row", ErrMalformedSheet)
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d fields, want %d", ErrMalformedSheet, i+1, len(row), width)
		}
	}

	opRow := rows[len(rows)-1]
	numRows := rows[:len(rows)-1]
	out := make([]Problem, 0, width)
	for col := 0; col < width; col++ {
		if len(opRow[col]) != 1 {
			return nil, fmt.Errorf("%w: column %d: operator %q", ErrMalformedSheet, col+1, opRow[col])
		}
		op, err := parseOp(opRow[col][0])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", col+1, err)
		}
		nums := make([]int64, 0, len(numRows))
		for _, row := range numRows {
			n, err := strconv.ParseInt(row[col], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: column %d: number %q", ErrMalformedSheet, col+1, row[col])
			}
			nums = append(nums, n)
		}
		out = append(out, Problem{Op: op, Nums: nums})
	}

	return out, nil
}

// charAt treats short lines as space-padded to the sheet width.
func charAt(line string, x int) byte {
	if x < len(line) {
		return line[x]
	}

	return ' '
}

// ParseColumnProblems implements the column reading. The last line is
// the operator row; every character column above it spells one number
// top-to-bottom. An operator character opens a new problem whose first
// operand is its own column's number; columns that are whitespace all
// the way down (operator row included) separate problems and are
// skipped.
func ParseColumnProblems(lines []string) ([]Problem, error) {
	trimmed := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			trimmed = append(trimmed, strings.TrimRight(line, "\r\n"))
		}
	}
	if len(trimmed) < 2 {
		return nil, fmt.Errorf("%w: need at least one number row and the operator row", ErrMalformedSheet)
	}

	opRow := trimmed[len(trimmed)-1]
	numRows := trimmed[:len(trimmed)-1]
	width := len(opRow)
	for _, line := range numRows {
		if len(line) > width {
			width = len(line)
		}
	}

	var (
		out []Problem
		cur *Problem
		err error
	)
	for x := 0; x < width; x++ {
		var sb strings.Builder
		for _, line := range numRows {
			sb.WriteByte(charAt(line, x))
		}
		colDigits := strings.TrimSpace(sb.String())
		opByte := charAt(opRow, x)

		// Fully blank column: problem separator.
		if colDigits == "" && opByte == ' ' {
			continue
		}

		if opByte != ' ' {
			// Operator column: close the running problem, open the next.
			var op Op
			if op, err = parseOp(opByte); err != nil {
				return nil, fmt.Errorf("column %d: %w", x+1, err)
			}
			if cur != nil {
				out = append(out, *cur)
			}
			cur = &Problem{Op: op}
		}
		if cur == nil {
			return nil, fmt.Errorf("%w: column %d: number before any operator", ErrMalformedSheet, x+1)
		}

		n, perr := strconv.ParseInt(colDigits, 10, 64)
		if perr != nil {
			return nil, fmt.Errorf("%w: column %d: vertical number %q", ErrMalformedSheet, x+1, colDigits)
		}
		cur.Nums = append(cur.Nums, n)
	}
	if cur != nil {
		out = append(out, *cur)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no problems found", ErrMalformedSheet)
	}

	return out, nil
}
