// Package grid provides the coordinate and character-grid primitives
// shared by the grid-based puzzle solvers (automaton, beam, worksheet).
//
// What
//
//   - Coord: an (X, Y) cell address; Y grows downward, matching the
//     order input lines are read in.
//   - Grid: a sparse map from Coord to the byte found at that cell,
//     built once from input lines. Rows may be ragged; Width reports
//     the longest row. Rectangular validates inputs that must not be.
//   - Connectivity: Conn4 (orthogonal) or Conn8 (orthogonal + diagonal)
//     neighbor offsets, precomputed.
//
// Why
//
//	Every grid puzzle starts the same way: read lines, index every
//	character by (x, y), then walk neighbors. Centralizing that removes
//	three copies of the same parsing loop and keeps neighbor iteration
//	order deterministic across solvers.
//
// Determinism
//
//	Coords() returns cells in row-major order (Y, then X), so scans that
//	iterate the grid are reproducible regardless of map iteration order.
//
// Complexity (W = longest row, H = rows)
//
//   - Build: O(W×H) time and memory.
//   - At/Set/InBounds: O(1).
//   - Coords/Count: O(W×H).
//
// Errors
//
//   - ErrEmptyGrid if the input contains no non-empty lines.
//   - ErrNonRectangular from Rectangular when line widths differ.
package grid
