package ilp

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for system construction and solving.
var (
	// ErrNoVariables is returned by NewSystem for a non-positive
	// variable count.
	ErrNoVariables = errors.New("ilp: system needs at least one variable")

	// ErrBadConstraint is returned by AddEquality for out-of-range
	// variable indices or a negative target.
	ErrBadConstraint = errors.New("ilp: invalid constraint")

	// ErrInfeasible is returned by Minimize when no non-negative integer
	// assignment satisfies every equality.
	ErrInfeasible = errors.New("ilp: system is infeasible")
)

// equality is one constraint: the named variables sum to target.
type equality struct {
	vars   []int
	target int64
}

// System is a set of equality constraints over non-negative integer
// variables x₀..x_{n-1}.
type System struct {
	vars int
	eqs  []equality
}

// NewSystem creates a system over vars non-negative integer variables.
func NewSystem(vars int) (*System, error) {
	if vars <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoVariables, vars)
	}

	return &System{vars: vars}, nil
}

// Vars returns the variable count.
func (s *System) Vars() int { return s.vars }

// AddEquality records the constraint "sum of x[i] over varIdxs == target".
// An empty index list is allowed only with a zero target.
func (s *System) AddEquality(varIdxs []int, target int64) error {
	if target < 0 {
		return fmt.Errorf("%w: negative target %d", ErrBadConstraint, target)
	}
	for _, v := range varIdxs {
		if v < 0 || v >= s.vars {
			return fmt.Errorf("%w: variable %d out of range [0,%d)", ErrBadConstraint, v, s.vars)
		}
	}
	s.eqs = append(s.eqs, equality{vars: append([]int(nil), varIdxs...), target: target})

	return nil
}

// Assignment holds one value per variable, indexed as in the System.
type Assignment []int64

// Total is the objective value: the sum of all variables.
func (a Assignment) Total() int64 {
	var sum int64
	for _, v := range a {
		sum += v
	}

	return sum
}

// Solver finds the assignment minimizing the sum of all variables
// subject to a System, or reports ErrInfeasible.
type Solver interface {
	Minimize(sys *System) (Assignment, error)
}

// BranchBound is an exact depth-first Solver. The zero value is ready
// to use.
type BranchBound struct{}

// search carries the mutable state of one Minimize call.
type search struct {
	sys      *System
	byVar    [][]int // constraint indices touching each variable
	residual []int64 // remaining target per constraint
	pending  []int   // unassigned variable count per constraint
	values   Assignment
	best     Assignment
	bestSum  int64
}

// Minimize runs the branch-and-bound search. Variables are assigned in
// index order; each variable ranges from 0 up to the smallest residual
// of the constraints that contain it (0 when unconstrained).
func (BranchBound) Minimize(sys *System) (Assignment, error) {
	s := &search{
		sys:      sys,
		byVar:    make([][]int, sys.vars),
		residual: make([]int64, len(sys.eqs)),
		pending:  make([]int, len(sys.eqs)),
		values:   make(Assignment, sys.vars),
		bestSum:  math.MaxInt64,
	}
	for ci, eq := range sys.eqs {
		// A constraint with no variables is decided up front.
		if len(eq.vars) == 0 && eq.target != 0 {
			return nil, fmt.Errorf("%w: empty constraint with target %d", ErrInfeasible, eq.target)
		}
		s.residual[ci] = eq.target
		s.pending[ci] = len(eq.vars)
		for _, v := range eq.vars {
			s.byVar[v] = append(s.byVar[v], ci)
		}
	}

	s.descend(0, 0)
	if s.best == nil {
		return nil, ErrInfeasible
	}

	return s.best, nil
}

// lowerBound is a valid bound on the sum of the unassigned variables:
// every variable is non-negative, so each constraint's residual must be
// covered by unassigned variables alone.
func (s *search) lowerBound() int64 {
	var lb int64
	for ci, r := range s.residual {
		if s.pending[ci] > 0 && r > lb {
			lb = r
		}
	}

	return lb
}

// descend tries every value of variable v given the partial sum so far.
// Steps per candidate value:
//  1. cap the value at the smallest residual among v's constraints;
//  2. apply it, pruning on negative residuals and on exhausted
//     constraints with nonzero residuals;
//  3. prune when partial sum plus the residual lower bound cannot beat
//     the incumbent;
//  4. recurse, then undo.
func (s *search) descend(v int, sum int64) {
	if v == s.sys.vars {
		if sum < s.bestSum {
			s.bestSum = sum
			s.best = append(Assignment(nil), s.values...)
		}

		return
	}

	ub := int64(0)
	if len(s.byVar[v]) > 0 {
		ub = math.MaxInt64
		for _, ci := range s.byVar[v] {
			if s.residual[ci] < ub {
				ub = s.residual[ci]
			}
		}
	}

	for val := int64(0); val <= ub; val++ {
		feasible := true
		for _, ci := range s.byVar[v] {
			s.residual[ci] -= val
			s.pending[ci]--
			if s.residual[ci] < 0 || (s.pending[ci] == 0 && s.residual[ci] != 0) {
				feasible = false
			}
		}
		if feasible && sum+val+s.lowerBound() < s.bestSum {
			s.values[v] = val
			s.descend(v+1, sum+val)
		}
		for _, ci := range s.byVar[v] {
			s.residual[ci] += val
			s.pending[ci]++
		}
	}
	s.values[v] = 0
}
