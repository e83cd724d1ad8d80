// Package circuit solves the factory machine puzzle: each input line
// describes one machine with a target light pattern, a set of buttons,
// and per-slot voltage targets.
//
// Line format
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
//   - [..] is the target on/off pattern, '#' on and '.' off.
//   - each (..) is a button: the comma-separated indices it acts on.
//     Pressing a button toggles those lights, and adds one unit to
//     those voltage slots.
//   - {..} lists the voltage target per slot.
//
// What
//
//   - MinPresses: the fewest presses turning every light from off to
//     the target pattern. Light states are uint64 bitmasks; the search
//     is a plain breadth-first traversal from the all-off state with a
//     visited-once set keyed on the pattern alone, so the first time
//     the target is generated is provably the shortest press count.
//   - MinVoltagePresses: the fewest total presses hitting every voltage
//     target exactly. Each slot becomes one ilp equality (the buttons
//     acting on that slot sum to its target); the solver minimizes the
//     total. The solver is injected, so any engine implementing
//     ilp.Solver slots in.
//   - Solve: sums MinPresses over all machines (part 1) and
//     MinVoltagePresses over all machines (part 2).
//
// Errors
//
//   - ErrMalformedMachine for lines that do not match the format, index
//     lights that do not exist, or carry a voltage list whose length
//     differs from the light count.
//   - ErrTooManyLights when a pattern exceeds the 64-bit mask.
//   - ErrUnreachable when no press sequence produces the target
//     pattern.
package circuit
