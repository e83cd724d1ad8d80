// Package adventkit is a collection of small, independent solvers for a
// series of daily text puzzles — each one a self-contained
// parse → search → fold pipeline over a tiny input file.
//
// 🚀 What is adventkit?
//
//	A set of focused packages, one per puzzle family:
//		• scanner    — digit-pattern detection over inclusive ID ranges
//		• dial       — circular dial rotations with O(1) zero-crossing math
//		• joltage    — greedy largest-subsequence digit selection
//		• automaton  — fixed-point neighbor-rule clearing on a grid
//		• freshness  — interval membership and merged coverage
//		• worksheet  — rotated math-worksheet evaluation
//		• beam       — branching downward traversal: splitter visits, path counts
//		• cluster    — nearest-neighbor union-find grouping of 3-D points
//		• plots      — polygon boundary geometry and rectangle containment
//		• circuit    — BFS over toggle states + integer-minimization of presses
//
// Shared plumbing lives in three helper packages:
//
//	grid/  — coordinate primitives and line-grid parsing (Conn4/Conn8)
//	ilp/   — a narrow exact integer-minimization capability used by circuit
//	solve/ — the day registry consumed by cmd/advent
//
// ✨ Design rules
//
//   - Every solver is a pure function from parsed input to two answers;
//     no package keeps global state.
//   - Parsing is validated up front and fails with a sentinel error that
//     names the offending token.
//   - Searches are iterative with explicit frontiers and visited sets,
//     never unbounded recursion.
//
// Run any day with the bundled CLI:
//
//	go run ./cmd/advent day7 --input day7/input.txt
//
// which prints exactly two lines:
//
//	Part 1: <value>
//	Part 2: <value>
package adventkit
