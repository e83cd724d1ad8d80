package cluster

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Sentinel errors for point parsing and grouping.
var (
	// ErrMalformedPoint is returned for lines that are not "x,y,z" with
	// integer components.
	ErrMalformedPoint = errors.New("cluster: malformed point line")

	// ErrTooFewPoints is returned when an operation needs at least two
	// points.
	ErrTooFewPoints = errors.New("cluster: need at least two points")
)

// Point is a position in 3-D integer space.
type Point struct {
	X, Y, Z int64
}

// ParsePoints parses one "x,y,z" point per line, skipping blanks.
// The error names the offending line.
func ParsePoints(lines []string) ([]Point, error) {
	out := make([]Point, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedPoint, i+1, line)
		}
		var coords [3]int64
		for j, part := range parts {
			v, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedPoint, i+1, line)
			}
			coords[j] = v
		}
		out = append(out, Point{X: coords[0], Y: coords[1], Z: coords[2]})
	}

	return out, nil
}

// Edge connects the points at indices A < B with their squared distance.
type Edge struct {
	A, B  int
	Dist2 int64
}

// Edges generates every unordered pair sorted ascending by
// (Dist2, A, B). The explicit index tie-break keeps equal-distance
// processing order deterministic.
// Complexity: O(N² log N).
func Edges(points []Point) []Edge {
	n := len(points)
	edges := make([]Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			dx := points[i].X - points[j].X
			dy := points[i].Y - points[j].Y
			dz := points[i].Z - points[j].Z
			edges = append(edges, Edge{A: i, B: j, Dist2: dx*dx + dy*dy + dz*dz})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Dist2 != edges[j].Dist2 {
			return edges[i].Dist2 < edges[j].Dist2
		}
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}

		return edges[i].B < edges[j].B
	})

	return edges
}

// dsu is a disjoint-set union over dense indices with path compression
// and union by rank.
type dsu struct {
	parent []int
	rank   []int
	groups int // current number of disjoint sets
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n), rank: make([]int, n), groups: n}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// find walks to the root, compressing the path to its grandparents.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v; reports whether a merge happened.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}
	d.groups--

	return true
}

// TopGroupProduct processes the limit closest edges (every edge spends
// budget, merging or not) and returns the product of the sizes of the
// up-to-three largest groups. Only points touched by a processed edge
// belong to a group; isolated points do not count.
func TopGroupProduct(points []Point, limit int) (int64, error) {
	if len(points) < 2 {
		return 0, ErrTooFewPoints
	}

	d := newDSU(len(points))
	touched := make([]bool, len(points))
	for i, e := range Edges(points) {
		if i >= limit {
			break
		}
		touched[e.A], touched[e.B] = true, true
		d.union(e.A, e.B)
	}

	sizes := make(map[int]int64)
	for i := range points {
		if touched[i] {
			sizes[d.find(i)]++
		}
	}
	ordered := make([]int64, 0, len(sizes))
	for _, s := range sizes {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] > ordered[j] })

	product := int64(1)
	for i, s := range ordered {
		if i == 3 {
			break
		}
		product *= s
	}

	return product, nil
}

// Unify processes edges in ascending distance order until every point
// belongs to one group and returns the edge whose union completed the
// merge. Completeness of the distance graph guarantees unification.
func Unify(points []Point) (Edge, error) {
	if len(points) < 2 {
		return Edge{}, ErrTooFewPoints
	}

	d := newDSU(len(points))
	for _, e := range Edges(points) {
		if d.union(e.A, e.B) && d.groups == 1 {
			return e, nil
		}
	}
	// Unreachable: the pair graph is complete.
	return Edge{}, ErrTooFewPoints
}
