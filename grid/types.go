// Package grid defines the core types and sentinel errors for the
// shared grid layer.
package grid

import "errors"

// Sentinel errors for grid construction and validation.
var (
	// ErrEmptyGrid indicates the input contained no non-empty lines.
	ErrEmptyGrid = errors.New("grid: input must contain at least one non-empty line")

	// ErrNonRectangular indicates input lines of differing widths.
	ErrNonRectangular = errors.New("grid: lines must share one width")
)

// Coord addresses a single cell. X is the column (grows rightward),
// Y is the row (grows downward, in input-line order).
type Coord struct {
	X, Y int
}

// Add returns the coordinate shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// conn4Offsets and conn8Offsets are shared immutable offset tables;
// Offsets returns them directly, so callers must not mutate the result.
var (
	conn4Offsets = []Coord{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}
	conn8Offsets = []Coord{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
)

// Offsets returns the neighbor offset table for the connectivity.
// Unknown values fall back to Conn4.
func (c Connectivity) Offsets() []Coord {
	if c == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}
