package plots

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Sentinel errors for parsing and containment search.
var (
	// ErrMalformedCoord is returned for lines that are not "x,y" with
	// integer components.
	ErrMalformedCoord = errors.New("plots: malformed coordinate line")

	// ErrTooFewPoints is returned when an operation needs at least two
	// posts.
	ErrTooFewPoints = errors.New("plots: need at least two points")

	// ErrNoRectangle is returned when no pair rectangle fits inside the
	// boundary.
	ErrNoRectangle = errors.New("plots: no contained rectangle exists")
)

// Point is a fence post position.
type Point struct {
	X, Y int64
}

// ParsePoints parses one "x,y" post per line, skipping blanks.
func ParsePoints(lines []string) ([]Point, error) {
	out := make([]Point, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedCoord, i+1, line)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(xs), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedCoord, i+1, line)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(ys), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedCoord, i+1, line)
		}
		out = append(out, Point{X: x, Y: y})
	}

	return out, nil
}

// area is the inclusive rectangle measure spanned by two posts.
func area(a, b Point) int64 {
	return (abs(a.X-b.X) + 1) * (abs(a.Y-b.Y) + 1)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}

// MaxArea returns the largest inclusive rectangle spanned by any two
// posts. (Part 1.)
func MaxArea(points []Point) (int64, error) {
	if len(points) < 2 {
		return 0, ErrTooFewPoints
	}
	var best int64
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if a := area(points[i], points[j]); a > best {
				best = a
			}
		}
	}

	return best, nil
}

// Boundary rasterizes the fence loop into unit steps: every integer
// point along every run between consecutive posts (wrapping last→first),
// in walking order, with the start repeated at the end to close the
// loop. Runs are stepped with the integer interpolation
// x1 + dx·k/steps, matching a staircase for non-axis, non-diagonal runs.
func Boundary(points []Point) []Point {
	var out []Point
	n := len(points)
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%n]
		dx, dy := b.X-a.X, b.Y-a.Y
		steps := abs(dx)
		if abs(dy) > steps {
			steps = abs(dy)
		}
		if steps == 0 {
			out = append(out, a)
			continue
		}
		for k := int64(0); k <= steps; k++ {
			out = append(out, Point{X: a.X + dx*k/steps, Y: a.Y + dy*k/steps})
		}
	}
	if len(out) > 0 && out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}

	return out
}

// ring converts the rasterized boundary into a closed orb ring for
// point-containment queries.
func ring(boundary []Point) orb.Ring {
	r := make(orb.Ring, 0, len(boundary))
	for _, p := range boundary {
		r = append(r, orb.Point{float64(p.X), float64(p.Y)})
	}

	return r
}

// rect is an axis-aligned candidate with precomputed inclusive area.
type rect struct {
	minX, minY, maxX, maxY int64
	area                   int64
}

// segmentEntersInterior reports whether the unit fence step p→q passes
// through the open interior of r. All coordinates are doubled so that
// the step midpoint stays integral and the test stays exact.
func (r rect) segmentEntersInterior(p, q Point) bool {
	inside2 := func(x2, y2 int64) bool {
		return 2*r.minX < x2 && x2 < 2*r.maxX && 2*r.minY < y2 && y2 < 2*r.maxY
	}

	return inside2(2*p.X, 2*p.Y) || inside2(2*q.X, 2*q.Y) || inside2(p.X+q.X, p.Y+q.Y)
}

// contained reports whether r lies entirely inside the fence: corners
// and center inside-or-on the ring, and no boundary step through the
// open interior.
func (r rect) contained(boundary []Point, org orb.Ring) bool {
	corners := [4]orb.Point{
		{float64(r.minX), float64(r.minY)},
		{float64(r.minX), float64(r.maxY)},
		{float64(r.maxX), float64(r.minY)},
		{float64(r.maxX), float64(r.maxY)},
	}
	for _, c := range corners {
		if !planar.RingContains(org, c) {
			return false
		}
	}
	center := orb.Point{float64(r.minX+r.maxX) / 2, float64(r.minY+r.maxY) / 2}
	if !planar.RingContains(org, center) {
		return false
	}
	for i := 0; i+1 < len(boundary); i++ {
		if r.segmentEntersInterior(boundary[i], boundary[i+1]) {
			return false
		}
	}

	return true
}

// MaxContainedArea returns the area of the largest post-pair rectangle
// fully contained in the fence. Candidates are scanned in descending
// area order (ties broken on coordinates for determinism); the first
// hit wins. (Part 2.)
func MaxContainedArea(points []Point) (int64, error) {
	if len(points) < 2 {
		return 0, ErrTooFewPoints
	}

	candidates := make([]rect, 0, len(points)*(len(points)-1)/2)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			a, b := points[i], points[j]
			candidates = append(candidates, rect{
				minX: min64(a.X, b.X), maxX: max64(a.X, b.X),
				minY: min64(a.Y, b.Y), maxY: max64(a.Y, b.Y),
				area: area(a, b),
			})
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].area != candidates[j].area {
			return candidates[i].area > candidates[j].area
		}
		if candidates[i].minX != candidates[j].minX {
			return candidates[i].minX < candidates[j].minX
		}
		if candidates[i].minY != candidates[j].minY {
			return candidates[i].minY < candidates[j].minY
		}
		if candidates[i].maxX != candidates[j].maxX {
			return candidates[i].maxX < candidates[j].maxX
		}

		return candidates[i].maxY < candidates[j].maxY
	})

	boundary := Boundary(points)
	org := ring(boundary)
	for _, c := range candidates {
		if c.contained(boundary, org) {
			return c.area, nil
		}
	}

	return 0, ErrNoRectangle
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}

	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}

	return b
}
