package ilp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSystem rejects non-positive variable counts.
func TestNewSystem(t *testing.T) {
	_, err := NewSystem(0)
	assert.ErrorIs(t, err, ErrNoVariables)

	sys, err := NewSystem(3)
	require.NoError(t, err)
	assert.Equal(t, 3, sys.Vars())
}

// TestAddEquality validates indices and targets.
func TestAddEquality(t *testing.T) {
	sys, err := NewSystem(2)
	require.NoError(t, err)

	assert.ErrorIs(t, sys.AddEquality([]int{0, 2}, 1), ErrBadConstraint)
	assert.ErrorIs(t, sys.AddEquality([]int{-1}, 1), ErrBadConstraint)
	assert.ErrorIs(t, sys.AddEquality([]int{0}, -5), ErrBadConstraint)
	assert.NoError(t, sys.AddEquality([]int{0, 1}, 4))
}

// TestMinimize_SingleVariable pins a variable exactly.
func TestMinimize_SingleVariable(t *testing.T) {
	sys, err := NewSystem(1)
	require.NoError(t, err)
	require.NoError(t, sys.AddEquality([]int{0}, 5))

	got, err := BranchBound{}.Minimize(sys)
	require.NoError(t, err)
	assert.Equal(t, Assignment{5}, got)
	assert.Equal(t, int64(5), got.Total())
}

// TestMinimize_Unconstrained leaves untouched variables at zero.
func TestMinimize_Unconstrained(t *testing.T) {
	sys, err := NewSystem(3)
	require.NoError(t, err)
	require.NoError(t, sys.AddEquality([]int{1}, 2))

	got, err := BranchBound{}.Minimize(sys)
	require.NoError(t, err)
	assert.Equal(t, Assignment{0, 2, 0}, got)
}

// TestMinimize_Infeasible covers contradictory and empty constraints.
func TestMinimize_Infeasible(t *testing.T) {
	sys, err := NewSystem(1)
	require.NoError(t, err)
	require.NoError(t, sys.AddEquality([]int{0}, 3))
	require.NoError(t, sys.AddEquality([]int{0}, 4))

	_, err = BranchBound{}.Minimize(sys)
	assert.ErrorIs(t, err, ErrInfeasible)

	sys2, err := NewSystem(1)
	require.NoError(t, err)
	require.NoError(t, sys2.AddEquality(nil, 1))
	_, err = BranchBound{}.Minimize(sys2)
	assert.ErrorIs(t, err, ErrInfeasible)
}

// TestMinimize_Coupled: six press counters tied through four slot
// equalities, several optima with the same total. The solver must
// report the true minimum total and a satisfying assignment.
//
//	x4+x5 = 3,  x1+x5 = 5,  x2+x3+x4 = 4,  x0+x1+x3 = 7
func TestMinimize_Coupled(t *testing.T) {
	sys, err := NewSystem(6)
	require.NoError(t, err)
	require.NoError(t, sys.AddEquality([]int{4, 5}, 3))
	require.NoError(t, sys.AddEquality([]int{1, 5}, 5))
	require.NoError(t, sys.AddEquality([]int{2, 3, 4}, 4))
	require.NoError(t, sys.AddEquality([]int{0, 1, 3}, 7))

	got, err := BranchBound{}.Minimize(sys)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got.Total())

	assert.Equal(t, int64(3), got[4]+got[5])
	assert.Equal(t, int64(5), got[1]+got[5])
	assert.Equal(t, int64(4), got[2]+got[3]+got[4])
	assert.Equal(t, int64(7), got[0]+got[1]+got[3])
	for _, v := range got {
		assert.GreaterOrEqual(t, v, int64(0))
	}
}

// TestMinimize_ZeroTarget forces every named variable to zero.
func TestMinimize_ZeroTarget(t *testing.T) {
	sys, err := NewSystem(2)
	require.NoError(t, err)
	require.NoError(t, sys.AddEquality([]int{0, 1}, 0))

	got, err := BranchBound{}.Minimize(sys)
	require.NoError(t, err)
	assert.Equal(t, Assignment{0, 0}, got)
}
