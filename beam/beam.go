package beam

import (
	"errors"

	"github.com/katalvlaran/adventkit/grid"
)

// ErrNoStart is returned when the grid holds no Start cell.
var ErrNoStart = errors.New("beam: no start cell found")

// Cell bytes recognized in the input.
const (
	// Start marks the beam origin.
	Start byte = 'S'
	// Splitter forks the beam left and right.
	Splitter byte = '^'
	// Open lets the beam continue straight down.
	Open byte = '.'
)

// Traversal holds the parsed read-only grid and the beam origin.
type Traversal struct {
	g     *grid.Grid
	start grid.Coord
}

// New parses the beam grid and locates the start cell.
func New(lines []string) (*Traversal, error) {
	g, err := grid.Parse(lines)
	if err != nil {
		return nil, err
	}
	start, ok := g.Find(Start)
	if !ok {
		return nil, ErrNoStart
	}

	return &Traversal{g: g, start: start}, nil
}

// step describes one advance of a beam standing at pos: the positions
// the beam occupies next, whether it exits the grid instead, and the
// splitter cell triggered (ok=false when none).
func (t *Traversal) step(pos grid.Coord) (next []grid.Coord, exited bool, split grid.Coord, splitOK bool) {
	if pos.Y >= t.g.Height()-1 {
		return nil, true, grid.Coord{}, false
	}
	below := grid.Coord{X: pos.X, Y: pos.Y + 1}
	v, ok := t.g.At(below)
	switch {
	case ok && v == Splitter:
		// Fork: keep a branch only while its column stays in [0, width].
		for _, dx := range []int{-1, 1} {
			if nx := below.X + dx; nx >= 0 && nx <= t.g.Width() {
				next = append(next, grid.Coord{X: nx, Y: below.Y})
			}
		}

		return next, false, below, true
	case ok && v == Open:
		return []grid.Coord{below}, false, grid.Coord{}, false
	default:
		// Off the sparse grid or an opaque cell: the beam dies here.
		return nil, false, grid.Coord{}, false
	}
}

// CountSplitters triggers the beam once from the start and returns the
// number of distinct splitter cells hit. Positions are deduplicated, so
// the traversal is O(W×H).
func (t *Traversal) CountSplitters() int {
	visited := make(map[grid.Coord]bool)
	splitters := make(map[grid.Coord]bool)
	queue := []grid.Coord{t.start}
	for len(queue) > 0 {
		pos := queue[0]
		queue = queue[1:]
		if visited[pos] {
			continue
		}
		visited[pos] = true

		next, _, split, ok := t.step(pos)
		if ok {
			splitters[split] = true
		}
		queue = append(queue, next...)
	}

	return len(splitters)
}

// CountPaths returns the number of distinct start-to-exit paths.
//
// Iterative post-order DP over an explicit frame stack: a frame is first
// expanded (children pushed), then, once every child's count is in the
// table, folded as the sum of its children. Exits count 1; dead beams
// count 0. Row index strictly increases downward, so the dependency
// graph is acyclic and every frame folds.
func (t *Traversal) CountPaths() int64 {
	type frame struct {
		pos      grid.Coord
		expanded bool
	}
	paths := make(map[grid.Coord]int64)
	stack := []frame{{pos: t.start}}
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		if _, done := paths[f.pos]; done {
			stack = stack[:len(stack)-1]
			continue
		}

		next, exited, _, _ := t.step(f.pos)
		if exited {
			paths[f.pos] = 1
			stack = stack[:len(stack)-1]
			continue
		}

		if !f.expanded {
			f.expanded = true
			for _, c := range next {
				if _, done := paths[c]; !done {
					stack = append(stack, frame{pos: c})
				}
			}
			continue
		}

		var total int64
		for _, c := range next {
			total += paths[c]
		}
		paths[f.pos] = total
		stack = stack[:len(stack)-1]
	}

	return paths[t.start]
}
