package solve

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/adventkit/automaton"
	"github.com/katalvlaran/adventkit/beam"
	"github.com/katalvlaran/adventkit/circuit"
	"github.com/katalvlaran/adventkit/cluster"
	"github.com/katalvlaran/adventkit/dial"
	"github.com/katalvlaran/adventkit/freshness"
	"github.com/katalvlaran/adventkit/joltage"
	"github.com/katalvlaran/adventkit/plots"
	"github.com/katalvlaran/adventkit/scanner"
	"github.com/katalvlaran/adventkit/worksheet"
)

// ErrUnknownDay is returned by ByNumber for numbers outside the table.
var ErrUnknownDay = errors.New("solve: unknown day")

// Solution holds the two printed answers of one day.
type Solution struct {
	Part1 string `yaml:"part1"`
	Part2 string `yaml:"part2"`
}

// Func runs one day's puzzle over its input.
type Func func(r io.Reader) (Solution, error)

// Day is one registry entry.
type Day struct {
	N    int
	Name string
	Run  Func
}

// wrap lifts a package Solve adapter into a Func.
func wrap(f func(io.Reader) (string, string, error)) Func {
	return func(r io.Reader) (Solution, error) {
		p1, p2, err := f(r)
		if err != nil {
			return Solution{}, err
		}

		return Solution{Part1: p1, Part2: p2}, nil
	}
}

// days is the registry, in day order.
var days = []Day{
	{N: 1, Name: "dial", Run: wrap(dial.Solve)},
	{N: 2, Name: "scanner", Run: wrap(scanner.Solve)},
	{N: 3, Name: "joltage", Run: wrap(joltage.Solve)},
	{N: 4, Name: "automaton", Run: wrap(automaton.Solve)},
	{N: 5, Name: "freshness", Run: wrap(freshness.Solve)},
	{N: 6, Name: "worksheet", Run: wrap(worksheet.Solve)},
	{N: 7, Name: "beam", Run: wrap(beam.Solve)},
	{N: 8, Name: "cluster", Run: wrap(cluster.Solve)},
	{N: 9, Name: "plots", Run: wrap(plots.Solve)},
	{N: 10, Name: "circuit", Run: wrap(circuit.Solve)},
}

// Days returns the registry in day order. The returned slice is a copy.
func Days() []Day {
	return append([]Day(nil), days...)
}

// ByNumber returns the registry entry for day n.
func ByNumber(n int) (Day, error) {
	for _, d := range days {
		if d.N == n {
			return d, nil
		}
	}

	return Day{}, fmt.Errorf("%w: %d", ErrUnknownDay, n)
}
