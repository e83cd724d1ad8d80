package worksheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sheet is a two-problem worksheet used by both reading tests:
//
//	64 23
//	31 45
//	+  *
//
// Token reading: 64+31 = 95 and 23*45 = 1035.
// Column reading: "+" opens {63, 41} → 104; "*" opens {24, 35} → 840.
var sheet = []string{
	"64 23",
	"31 45",
	"+  * ",
}

// TestProblemEval covers both operators and the empty-operand folds.
func TestProblemEval(t *testing.T) {
	assert.Equal(t, int64(9), Problem{Op: Add, Nums: []int64{2, 3, 4}}.Eval())
	assert.Equal(t, int64(24), Problem{Op: Mul, Nums: []int64{2, 3, 4}}.Eval())
	assert.Equal(t, int64(0), Problem{Op: Add}.Eval())
	assert.Equal(t, int64(1), Problem{Op: Mul}.Eval())
}

// TestParseTokenProblems reads column problems out of the token grid.
func TestParseTokenProblems(t *testing.T) {
	ps, err := ParseTokenProblems(sheet)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, Problem{Op: Add, Nums: []int64{64, 31}}, ps[0])
	assert.Equal(t, Problem{Op: Mul, Nums: []int64{23, 45}}, ps[1])
	assert.Equal(t, int64(1130), SumProblems(ps))
}

// TestParseTokenProblems_Errors: ragged rows and unknown operators.
func TestParseTokenProblems_Errors(t *testing.T) {
	_, err := ParseTokenProblems([]string{"1 2", "3", "+ *"})
	assert.ErrorIs(t, err, ErrMalformedSheet)

	_, err = ParseTokenProblems([]string{"1 2", "3 4", "+ -"})
	require.ErrorIs(t, err, ErrMalformedSheet)
	assert.Contains(t, err.Error(), "column 2")

	_, err = ParseTokenProblems([]string{"+ *"})
	assert.ErrorIs(t, err, ErrMalformedSheet)
}

// TestParseColumnProblems reads numbers vertically: the operator column
// carries the first operand of its problem, blank columns separate
// problems.
func TestParseColumnProblems(t *testing.T) {
	ps, err := ParseColumnProblems(sheet)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, Problem{Op: Add, Nums: []int64{63, 41}}, ps[0])
	assert.Equal(t, Problem{Op: Mul, Nums: []int64{24, 35}}, ps[1])
	assert.Equal(t, int64(944), SumProblems(ps))
}

// TestParseColumnProblems_ShortLines: rows shorter than the sheet width
// are space-padded, so one-digit verticals still parse.
func TestParseColumnProblems_ShortLines(t *testing.T) {
	ps, err := ParseColumnProblems([]string{
		"7",
		"2 8",
		"+ *",
	})
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, Problem{Op: Add, Nums: []int64{72}}, ps[0])
	assert.Equal(t, Problem{Op: Mul, Nums: []int64{8}}, ps[1])
}

// TestParseColumnProblems_Errors: digits before any operator column and
// empty operator columns are malformed.
func TestParseColumnProblems_Errors(t *testing.T) {
	// Column 1 has a digit but the operator row starts at column 3.
	_, err := ParseColumnProblems([]string{
		"1 2",
		"  +",
	})
	assert.ErrorIs(t, err, ErrMalformedSheet)

	// Operator with no digits anywhere in its column.
	_, err = ParseColumnProblems([]string{
		"  1",
		"+ *",
	})
	assert.ErrorIs(t, err, ErrMalformedSheet)
}

// TestSolve evaluates both readings of the shared sheet.
func TestSolve(t *testing.T) {
	p1, p2, err := Solve(strings.NewReader(strings.Join(sheet, "\n") + "\n"))
	require.NoError(t, err)
	assert.Equal(t, "1130", p1)
	assert.Equal(t, "944", p2)
}
