package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExactDouble covers the even-split predicate, including the
// odd-length and single-digit exclusions.
func TestExactDouble(t *testing.T) {
	cases := []struct {
		digits string
		want   bool
	}{
		{"1010", true},
		{"1011", false},
		{"11", true},
		{"99", true},
		{"7", false},    // single digit
		{"123", false},  // odd length
		{"123123", true},
		{"10", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExactDouble(tc.digits), "digits=%s", tc.digits)
	}
}

// TestPeriodic covers general repetition: any proper period dividing the
// length must reconstruct the string.
func TestPeriodic(t *testing.T) {
	cases := []struct {
		digits string
		want   bool
	}{
		{"123123123", true}, // period 3
		{"111", true},       // period 1
		{"101", false},
		{"1010", true}, // period 2
		{"7", false},   // single digit: no proper period
		{"1212121", false}, // length 7, prime, not all-same
		{"2222", true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Periodic(tc.digits), "digits=%s", tc.digits)
	}
}

// TestPeriodic_SupersetOfExactDouble: every exact double is periodic.
func TestPeriodic_SupersetOfExactDouble(t *testing.T) {
	for _, digits := range []string{"11", "1010", "123123", "9898"} {
		require.True(t, ExactDouble(digits))
		assert.True(t, Periodic(digits), "digits=%s", digits)
	}
}

// TestParseRanges_OK parses a comma-separated list with stray spaces.
func TestParseRanges_OK(t *testing.T) {
	got, err := ParseRanges("11-22, 95-115 ,998-1012")
	require.NoError(t, err)
	want := []Range{{11, 22}, {95, 115}, {998, 1012}}
	assert.Equal(t, want, got)
}

// TestParseRanges_SkipsEmptyTokens: stray and trailing commas yield
// empty tokens, which are dropped rather than rejected.
func TestParseRanges_SkipsEmptyTokens(t *testing.T) {
	got, err := ParseRanges("11-22,,95-115,")
	require.NoError(t, err)
	assert.Equal(t, []Range{{11, 22}, {95, 115}}, got)

	got, err = ParseRanges("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestParseRanges_Errors checks that the failing token is named and the
// proper sentinel is wrapped.
func TestParseRanges_Errors(t *testing.T) {
	_, err := ParseRanges("11-22,banana")
	require.ErrorIs(t, err, ErrMalformedRange)
	assert.Contains(t, err.Error(), "banana")

	_, err = ParseRanges("11x22")
	assert.ErrorIs(t, err, ErrMalformedRange)

	_, err = ParseRanges("22-11")
	assert.ErrorIs(t, err, ErrInvalidBounds)

	_, err = ParseRanges("0-5")
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

// TestNewRange validates the Start ≤ End and positivity invariants.
func TestNewRange(t *testing.T) {
	r, err := NewRange(3, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), r.Len())

	_, err = NewRange(7, 3)
	assert.ErrorIs(t, err, ErrInvalidBounds)
	_, err = NewRange(-1, 3)
	assert.ErrorIs(t, err, ErrInvalidBounds)
}

// TestSum_EndToEnd is the reference example: ranges
// [(11,22),(95,115),(998,1012)] under ExactDouble contain exactly
// {11, 22, 99, 1010}, summing to 1142.
func TestSum_EndToEnd(t *testing.T) {
	ranges, err := ParseRanges("11-22,95-115,998-1012")
	require.NoError(t, err)
	assert.Equal(t, int64(1142), Sum(ranges, ExactDouble))
}

// TestSolve runs the io.Reader adapter end to end.
func TestSolve(t *testing.T) {
	p1, p2, err := Solve(strings.NewReader("11-22,95-115,998-1012\n"))
	require.NoError(t, err)
	assert.Equal(t, "1142", p1)
	// Periodic adds the all-same runs 111 and 999 to the ExactDouble set:
	// 1142 + 111 + 999 = 2252.
	assert.Equal(t, "2252", p2)
}

// TestSolve_WrappedLines: the range list may wrap across lines, with
// the comma left dangling at a line end. ExactDouble keeps {11, 22, 99}
// (132); Periodic adds 111 (243).
func TestSolve_WrappedLines(t *testing.T) {
	p1, p2, err := Solve(strings.NewReader("11-22,\n95-115\n"))
	require.NoError(t, err)
	assert.Equal(t, "132", p1)
	assert.Equal(t, "243", p2)
}

// TestSolve_BadInput propagates the parse error.
func TestSolve_BadInput(t *testing.T) {
	_, _, err := Solve(strings.NewReader("nope\n"))
	assert.ErrorIs(t, err, ErrMalformedRange)
}
