// Package beam traces a beam falling through a grid of splitters. The
// beam starts at the 'S' cell and advances one row per step; when the
// cell below is a splitter ('^') the beam forks one column left and one
// column right, when it is open ('.') the beam continues straight, and
// anything else stops it. A beam leaving past the bottom row has exited.
//
// What
//
//   - CountSplitters: how many distinct splitter cells the beam ever
//     triggers. Each grid position is visited at most once (explicit
//     queue + visited set), so a splitter counts once no matter how many
//     forks lead back over it.
//   - CountPaths: how many distinct start-to-exit paths exist. This is a
//     counting traversal, not a deduplicated visit: a position reached
//     via different histories contributes its sub-path count to every
//     such history. Sub-path counts are shared through a DP table keyed
//     on position (positions fully determine their downstream counts,
//     because the beam only ever moves down).
//
// Invariants
//
//   - A fork is only taken if the resulting column stays within
//     [0, width] — the bound is inclusive on the right; a beam standing
//     just past the last column simply dies on its next step.
//   - A straight run with no splitters yields exactly one path; at a
//     splitter the path count is the sum over both branches.
//
// Both traversals are iterative with explicit stacks/queues; row index
// strictly increases along any beam, so termination is structural.
//
// Errors
//
//   - grid.ErrEmptyGrid for empty input.
//   - ErrNoStart if the grid holds no 'S' cell.
package beam
