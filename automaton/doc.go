// Package automaton clears a grid of occupied cells to a fixed point
// under a neighbor-support rule: every round, any occupied cell with
// fewer than Support occupied neighbors is removed.
//
// What
//
//   - New parses an '@' (occupied) / '.' (empty) character grid.
//   - Round performs one full scan, collects every under-supported cell,
//     then applies all removals at once — a removal decided early in the
//     round never influences a decision later in the same round.
//   - Run iterates Round to the fixed point and reports the first
//     round's removals (part 1) and the total (part 2).
//
// Termination
//
//	The occupied set only shrinks and is bounded below by the empty set,
//	so Run always terminates. Running one extra Round at the fixed point
//	removes nothing (idempotence).
//
// Options
//
//	DefaultOptions(): Support=4, Conn=Conn8 — the puzzle rule. Both are
//	tunable in the gridgraph manner for the tests and for rule variants.
//
// Complexity
//
//	One Round is O(W×H×d) with d the connectivity degree; Run performs
//	at most one round per removed cell.
//
// Errors
//
//   - grid.ErrEmptyGrid from New when the input holds no lines.
//   - ErrOptionViolation for a non-positive Support value.
package automaton
