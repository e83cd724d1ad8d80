// Package dial simulates a circular safe dial with 100 positions (0–99)
// and derives passwords from how often the pointer reaches zero during a
// rotation sequence.
//
// What
//
//   - Rotation: a direction (L/R) plus a click distance, parsed from
//     tokens like "L68" or "R1000".
//   - Landings: how many rotations END with the pointer on 0 (the
//     standard password method).
//   - Crossings: how many individual clicks land the pointer on 0,
//     counting passes made mid-rotation (the click method).
//
// Why O(1) per rotation
//
//	A distance may be far larger than the dial, so clicks are never
//	simulated one by one. The first click that reaches zero is computed
//	with modular arithmetic; every full lap after it adds one more
//	crossing.
//
// Usage
//
//	rots, err := dial.ParseRotations(lines)
//	p1 := dial.Landings(rots)
//	p2 := dial.Crossings(rots)
//
// Errors
//
//   - ErrMalformedRotation for tokens without an L/R prefix or with a
//     non-numeric or negative distance; the error names the token and
//     its 1-based line number.
package dial
