// Package ilp provides a deliberately narrow integer-minimization
// capability: a System of equality constraints over non-negative integer
// variables, and a Solver that finds the assignment minimizing the sum
// of all variables.
//
// What
//
//   - System: fixed variable count plus equalities of the form
//     "sum of the named variables == target" (targets ≥ 0). This is the
//     whole modeling surface the circuit puzzle needs: one equality per
//     voltage slot, implicit non-negativity on every press counter.
//   - Solver: Minimize(sys) → Assignment or ErrInfeasible. The
//     interface is the seam: any integer/linear programming engine can
//     be substituted without touching constraint construction.
//   - BranchBound: the bundled exact solver. Depth-first enumeration in
//     variable order with three prunings:
//     1. residual feasibility — a constraint driven negative, or
//     exhausted with a nonzero residual, kills the branch;
//     2. per-variable upper bound — a variable never exceeds the
//     smallest residual of the constraints containing it;
//     3. objective bound — the largest remaining residual is a valid
//     lower bound on the unassigned sum (all variables are
//     non-negative), so branches that cannot beat the incumbent die
//     early.
//
// The search is exhaustive over the pruned space, so the incumbent at
// the end is the true minimum. Recursion depth equals the variable
// count, which is bounded by a machine's button count.
//
// Errors
//
//   - ErrNoVariables  for systems with a non-positive variable count.
//   - ErrBadConstraint for out-of-range variable indices or negative
//     targets.
//   - ErrInfeasible   when no non-negative integer assignment satisfies
//     every equality.
package ilp
