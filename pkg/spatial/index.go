// Package spatial provides the locality queries the flocking loop depends
// on: given the current agent positions, find everything within a radius,
// or the k closest agents, without an O(n²) scan.
//
// Indexes are derived, rebuildable views over a position snapshot. They are
// rebuilt on a cadence decoupled from the simulation tick, so a query result
// may be one rebuild stale; callers must tolerate identities that no longer
// resolve and skip them.
package spatial

// Point is one indexed position. ID is the owning agent's dense index and
// is only a lookup key; the index claims no ownership over agent state.
type Point struct {
	ID   int32
	X, Y float64
}

// Match is a single query result: the indexed point plus its squared
// distance to the query center. Squared distance is returned because every
// downstream consumer compares against squared thresholds.
type Match struct {
	Point
	DistSq float64
}

// Index is the contract shared by all spatial index implementations.
// Build replaces the indexed point set; QueryRadius appends every indexed
// point within radius of (x, y) to out and returns it. Passing a reused
// out slice (sliced to zero length by the query) keeps the hot path free
// of allocations.
type Index interface {
	Build(points []Point)
	QueryRadius(x, y, radius float64, out []Match) []Match
}

// KNearestQuerier is implemented by indexes that can bound per-query work
// to the k closest points instead of everything in a radius. Results are
// ordered by ascending distance.
type KNearestQuerier interface {
	QueryKNearest(x, y float64, k int, out []Match) []Match
}
