package grid

import "fmt"

// Grid maps cell coordinates to the byte read at that cell. It is built
// once from input lines; solvers that mutate it (automaton) do so through
// Set, batching their updates per round.
type Grid struct {
	cells  map[Coord]byte
	width  int // longest row length
	height int // number of rows indexed
}

// Parse builds a Grid from raw input lines. Trailing carriage returns
// are stripped; empty lines at any position are skipped but still advance
// no row index (the puzzles never embed blank rows inside a grid).
// Returns ErrEmptyGrid if no non-empty line exists.
// Complexity: O(W×H) time and memory.
func Parse(lines []string) (*Grid, error) {
	g := &Grid{cells: make(map[Coord]byte)}
	for _, line := range lines {
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if line == "" {
			continue
		}
		y := g.height
		for x := 0; x < len(line); x++ {
			g.cells[Coord{X: x, Y: y}] = line[x]
		}
		if len(line) > g.width {
			g.width = len(line)
		}
		g.height++
	}
	if g.height == 0 {
		return nil, ErrEmptyGrid
	}

	return g, nil
}

// Rectangular validates that every non-blank line has the same width,
// for solvers whose grids must not be ragged. Trailing carriage returns
// are stripped and blank lines skipped, mirroring Parse.
// Returns ErrEmptyGrid if no non-blank line exists, and
// ErrNonRectangular naming the first offending line.
// Complexity: O(H).
func Rectangular(lines []string) error {
	width := -1
	for i, line := range lines {
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		if line == "" {
			continue
		}
		if width == -1 {
			width = len(line)
			continue
		}
		if len(line) != width {
			return fmt.Errorf("%w: line %d has width %d, want %d", ErrNonRectangular, i+1, len(line), width)
		}
	}
	if width == -1 {
		return ErrEmptyGrid
	}

	return nil
}

// Width returns the longest row length seen during Parse.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows indexed during Parse.
func (g *Grid) Height() int { return g.height }

// At returns the byte stored at c and whether the cell exists.
// Complexity: O(1).
func (g *Grid) At(c Coord) (byte, bool) {
	v, ok := g.cells[c]

	return v, ok
}

// Set overwrites the byte stored at an existing or new cell.
// Complexity: O(1).
func (g *Grid) Set(c Coord, v byte) { g.cells[c] = v }

// Find returns the coordinate of the first cell (row-major order)
// holding v, and whether any such cell exists.
// Complexity: O(W×H).
func (g *Grid) Find(v byte) (Coord, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{X: x, Y: y}
			if got, ok := g.cells[c]; ok && got == v {
				return c, true
			}
		}
	}

	return Coord{}, false
}

// Count returns how many cells currently hold v.
// Complexity: O(W×H).
func (g *Grid) Count(v byte) int {
	n := 0
	for _, got := range g.cells {
		if got == v {
			n++
		}
	}

	return n
}

// Coords returns every cell address in row-major order (Y, then X).
// The slice is freshly allocated on each call.
// Complexity: O(W×H).
func (g *Grid) Coords() []Coord {
	out := make([]Coord, 0, len(g.cells))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{X: x, Y: y}
			if _, ok := g.cells[c]; ok {
				out = append(out, c)
			}
		}
	}

	return out
}
