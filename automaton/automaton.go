package automaton

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/adventkit/grid"
)

// ErrOptionViolation is returned for invalid Options values.
var ErrOptionViolation = errors.New("automaton: invalid option supplied")

// Cell bytes recognized in the input.
const (
	Occupied byte = '@'
	Empty    byte = '.'
)

// Options tunes the clearing rule.
type Options struct {
	// Support is the minimum number of occupied neighbors an occupied
	// cell needs to survive a round. Must be > 0.
	Support int
	// Conn selects the neighborhood shape.
	Conn grid.Connectivity
}

// DefaultOptions returns the puzzle rule: Support=4 over the
// 8-neighborhood.
func DefaultOptions() Options {
	return Options{Support: 4, Conn: grid.Conn8}
}

// Automaton owns the mutable grid; all mutation happens inside Round,
// batched per round.
type Automaton struct {
	g    *grid.Grid
	opts Options
}

// New builds an Automaton from input lines.
// Returns grid.ErrEmptyGrid for empty input and ErrOptionViolation for
// a non-positive Support.
func New(lines []string, opts Options) (*Automaton, error) {
	if opts.Support <= 0 {
		return nil, fmt.Errorf("%w: Support must be positive (%d)", ErrOptionViolation, opts.Support)
	}
	g, err := grid.Parse(lines)
	if err != nil {
		return nil, err
	}

	return &Automaton{g: g, opts: opts}, nil
}

// OccupiedCount returns the number of currently occupied cells.
func (a *Automaton) OccupiedCount() int { return a.g.Count(Occupied) }

// Round scans every occupied cell, collects those with fewer than
// Support occupied neighbors, then clears them all at once. Returns the
// number of cells cleared. A zero return means the fixed point has been
// reached.
func (a *Automaton) Round() int {
	offsets := a.opts.Conn.Offsets()
	var clear []grid.Coord
	for _, c := range a.g.Coords() {
		if v, _ := a.g.At(c); v != Occupied {
			continue
		}
		support := 0
		for _, d := range offsets {
			if v, ok := a.g.At(c.Add(d)); ok && v == Occupied {
				support++
				if support >= a.opts.Support {
					break
				}
			}
		}
		if support < a.opts.Support {
			clear = append(clear, c)
		}
	}
	// Apply the batch only after the full scan.
	for _, c := range clear {
		a.g.Set(c, Empty)
	}

	return len(clear)
}

// Run iterates Round until the fixed point and returns the first
// round's clear count and the total across all rounds.
func (a *Automaton) Run() (first, total int) {
	first = a.Round()
	total = first
	for {
		n := a.Round()
		if n == 0 {
			return first, total
		}
		total += n
	}
}
