// Package cluster groups 3-D points by connecting the closest pairs
// first — Kruskal-style incremental union over the complete distance
// graph.
//
// What
//
//   - ParsePoints: "x,y,z" lines → []Point.
//   - Edges: every unordered point pair with its squared Euclidean
//     distance, sorted ascending. Squared distances order identically to
//     true distances and stay in exact integer arithmetic.
//   - TopGroupProduct: process the K closest edges (edges that land
//     inside an existing group still spend budget), then multiply the
//     sizes of the up-to-three largest groups formed. Points no edge has
//     touched never count as groups.
//   - Unify: keep processing edges until every point shares one group;
//     returns the edge whose union achieved it. The puzzle's final
//     answer is X(a)·X(b) of that edge.
//
// Determinism
//
//	Equal distances are tie-broken lexicographically on the pair's input
//	indices (A, then B, with A < B), so the processing order — and with
//	it both answers — is fully reproducible for a given input file.
//
// Union-find
//
//	Disjoint sets use path compression and union by rank over dense
//	integer indices, the same structure the MST construction uses for
//	cycle detection.
//
// Complexity: O(N² log N) for edge generation and sorting, near-O(α·N²)
// for the unions — N is at most a few thousand by contract.
//
// Errors
//
//   - ErrMalformedPoint for lines that are not three integers.
//   - ErrTooFewPoints when fewer than two points are supplied.
package cluster
