package joltage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMaxPair picks the best ordered digit pair.
func TestMaxPair(t *testing.T) {
	cases := []struct {
		bank string
		want int64
	}{
		{"19", 19},
		{"91", 91},
		{"123456789", 89},
		{"987654321", 98},
		{"90009", 99}, // best first digit before the trailing 9
		{"10", 10},
	}
	for _, tc := range cases {
		got, err := MaxPair(tc.bank)
		require.NoError(t, err, "bank=%s", tc.bank)
		assert.Equal(t, tc.want, got, "bank=%s", tc.bank)
	}
}

// TestMaxPair_Errors rejects empty, single-digit and non-digit banks.
func TestMaxPair_Errors(t *testing.T) {
	for _, bank := range []string{"", "7", "12a4"} {
		_, err := MaxPair(bank)
		assert.ErrorIs(t, err, ErrBadBank, "bank=%q", bank)
	}
}

// TestMaxSubsequence checks the greedy against hand-worked answers.
func TestMaxSubsequence(t *testing.T) {
	cases := []struct {
		bank string
		k    int
		want int64
	}{
		{"1924", 2, 94},
		{"1234567890", 3, 890},
		{"987654321", 3, 987},
		{"1111", 4, 1111},
		{"4321", 1, 4},
		{"321987", 4, 3987}, // cannot reorder: 9 cannot precede 3
	}
	for _, tc := range cases {
		got, err := MaxSubsequence(tc.bank, tc.k)
		require.NoError(t, err, "bank=%s k=%d", tc.bank, tc.k)
		assert.Equal(t, tc.want, got, "bank=%s k=%d", tc.bank, tc.k)
	}
}

// TestMaxSubsequence_AgreesWithMaxPair: k=2 must reproduce MaxPair.
func TestMaxSubsequence_AgreesWithMaxPair(t *testing.T) {
	for _, bank := range []string{"19", "90009", "123456789", "52601"} {
		pair, err := MaxPair(bank)
		require.NoError(t, err)
		sub, err := MaxSubsequence(bank, 2)
		require.NoError(t, err)
		assert.Equal(t, pair, sub, "bank=%s", bank)
	}
}

// TestMaxSubsequence_Errors rejects out-of-window k values.
func TestMaxSubsequence_Errors(t *testing.T) {
	_, err := MaxSubsequence("123", 0)
	assert.ErrorIs(t, err, ErrBadLength)
	_, err = MaxSubsequence("123", 4)
	assert.ErrorIs(t, err, ErrBadLength)
	_, err = MaxSubsequence(strings.Repeat("9", 30), 19)
	assert.ErrorIs(t, err, ErrBadLength)
}

// TestSolve sums both parts over multiple 12+-digit banks.
func TestSolve(t *testing.T) {
	// Bank 1: best pair is 99 (the 9 up front, the 9 near the end);
	// best 12-of-13 drops the leading 1. Bank 2: all nines, trivial.
	in := "1987654321098\n9999999999999\n"
	p1, p2, err := Solve(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, "198", p1) // 99 + 99
	// 987654321098 + 999999999999
	assert.Equal(t, "1987654321097", p2)
}

// TestSolve_BadLine names the offending line.
func TestSolve_BadLine(t *testing.T) {
	_, _, err := Solve(strings.NewReader("1987654321098\nbad\n"))
	require.ErrorIs(t, err, ErrBadBank)
	assert.Contains(t, err.Error(), "line 2")
}
