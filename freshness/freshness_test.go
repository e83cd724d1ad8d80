package freshness

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/adventkit/scanner"
)

// TestParse_MixedOrder accepts ranges and IDs interleaved with blanks.
func TestParse_MixedOrder(t *testing.T) {
	ranges, ids, err := Parse([]string{"3-5", "", "7", "10-12", "4"})
	require.NoError(t, err)
	assert.Equal(t, []scanner.Range{{Start: 3, End: 5}, {Start: 10, End: 12}}, ranges)
	assert.Equal(t, []int64{7, 4}, ids)
}

// TestParse_Errors names the offending line for both shapes of garbage.
func TestParse_Errors(t *testing.T) {
	_, _, err := Parse([]string{"3-5", "x-9"})
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")

	_, _, err = Parse([]string{"notanumber"})
	assert.ErrorIs(t, err, ErrMalformedLine)
}

// TestCountFresh: membership against overlapping ranges, each ID counted
// at most once.
func TestCountFresh(t *testing.T) {
	ranges := []scanner.Range{{Start: 3, End: 5}, {Start: 5, End: 8}, {Start: 20, End: 20}}
	ids := []int64{1, 4, 5, 9, 20}
	assert.Equal(t, 3, CountFresh(ids, ranges))
}

// TestMerge collapses overlapping, nested and touching ranges.
func TestMerge(t *testing.T) {
	in := []scanner.Range{
		{Start: 10, End: 14},
		{Start: 1, End: 3},
		{Start: 12, End: 18}, // overlaps 10-14
		{Start: 2, End: 2},   // nested in 1-3
		{Start: 4, End: 5},   // touches 1-3
	}
	want := []scanner.Range{{Start: 1, End: 5}, {Start: 10, End: 18}}
	assert.Equal(t, want, Merge(in))

	assert.Nil(t, Merge(nil))
}

// TestCoverage counts each covered integer exactly once.
func TestCoverage(t *testing.T) {
	ranges := []scanner.Range{
		{Start: 1, End: 5},   // 5
		{Start: 4, End: 8},   // +3 (4,5 shared)
		{Start: 20, End: 21}, // +2
	}
	assert.Equal(t, int64(10), Coverage(ranges))
	assert.Equal(t, int64(0), Coverage(nil))
}

// TestSolve runs the adapter over a small mixed input.
func TestSolve(t *testing.T) {
	in := "3-5\n10-12\n\n4\n9\n11\n"
	p1, p2, err := Solve(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "2", p1) // 4 and 11 are fresh
	assert.Equal(t, "6", p2) // {3,4,5} ∪ {10,11,12}
}
