package spatial

// KDTree is a 2-d tree over an implicit flat array: the root of every
// subrange [lo, hi) sits at its middle element, with the splitting axis
// alternating per level. Build cost is O(n log n) via median selection,
// queries are O(log n + k).
//
// The tree holds copies of the points, so the caller may mutate its own
// slice after Build; the index then serves the snapshot it was built from.
type KDTree struct {
	pts []Point
}

// NewKDTree returns an empty tree. Build must be called before querying.
func NewKDTree() *KDTree {
	return &KDTree{}
}

var _ Index = (*KDTree)(nil)
var _ KNearestQuerier = (*KDTree)(nil)

// Build replaces the indexed point set. The backing array is reused across
// rebuilds, so per-tick rebuilding allocates nothing once warmed up.
func (t *KDTree) Build(points []Point) {
	t.pts = append(t.pts[:0], points...)
	t.build(0, len(t.pts), 0)
}

// Len returns the number of indexed points.
func (t *KDTree) Len() int {
	return len(t.pts)
}

func (t *KDTree) build(lo, hi, axis int) {
	if hi-lo <= 1 {
		return
	}
	mid := (lo + hi) / 2
	t.selectNth(lo, hi, mid, axis)
	t.build(lo, mid, 1-axis)
	t.build(mid+1, hi, 1-axis)
}

// selectNth partially sorts pts[lo:hi] so that the element at index n is
// the one a full sort by the given axis would place there (quickselect with
// a middle pivot; no allocation, expected linear time).
func (t *KDTree) selectNth(lo, hi, n, axis int) {
	for hi-lo > 1 {
		pivot := t.coord(t.pts[(lo+hi)/2], axis)
		i, j := lo, hi-1
		for i <= j {
			for t.coord(t.pts[i], axis) < pivot {
				i++
			}
			for t.coord(t.pts[j], axis) > pivot {
				j--
			}
			if i <= j {
				t.pts[i], t.pts[j] = t.pts[j], t.pts[i]
				i++
				j--
			}
		}
		// Narrow to the partition containing n
		if n <= j {
			hi = j + 1
		} else if n >= i {
			lo = i
		} else {
			return
		}
	}
}

func (t *KDTree) coord(p Point, axis int) float64 {
	if axis == 0 {
		return p.X
	}
	return p.Y
}

// QueryRadius appends every indexed point within radius of (x, y)
// (inclusive) to out and returns it.
func (t *KDTree) QueryRadius(x, y, radius float64, out []Match) []Match {
	out = out[:0]
	if len(t.pts) == 0 || radius < 0 {
		return out
	}
	return t.radius(0, len(t.pts), 0, x, y, radius*radius, out)
}

func (t *KDTree) radius(lo, hi, axis int, x, y, radiusSq float64, out []Match) []Match {
	if lo >= hi {
		return out
	}
	mid := (lo + hi) / 2
	p := t.pts[mid]

	dx := p.X - x
	dy := p.Y - y
	distSq := dx*dx + dy*dy
	if distSq <= radiusSq {
		out = append(out, Match{Point: p, DistSq: distSq})
	}

	// Signed distance from the query center to the splitting plane
	delta := x - p.X
	if axis == 1 {
		delta = y - p.Y
	}

	// Descend a side only when the query circle reaches into it
	if delta <= 0 || delta*delta <= radiusSq {
		out = t.radius(lo, mid, 1-axis, x, y, radiusSq, out)
	}
	if delta >= 0 || delta*delta <= radiusSq {
		out = t.radius(mid+1, hi, 1-axis, x, y, radiusSq, out)
	}
	return out
}

// QueryKNearest appends the k indexed points closest to (x, y) to out,
// ordered by ascending distance, and returns it. Fewer than k results are
// returned when the tree holds fewer points.
func (t *KDTree) QueryKNearest(x, y float64, k int, out []Match) []Match {
	out = out[:0]
	if len(t.pts) == 0 || k <= 0 {
		return out
	}
	return t.nearest(0, len(t.pts), 0, x, y, k, out)
}

func (t *KDTree) nearest(lo, hi, axis int, x, y float64, k int, out []Match) []Match {
	if lo >= hi {
		return out
	}
	mid := (lo + hi) / 2
	p := t.pts[mid]

	dx := p.X - x
	dy := p.Y - y
	out = insertByDistance(out, Match{Point: p, DistSq: dx*dx + dy*dy}, k)

	delta := x - p.X
	if axis == 1 {
		delta = y - p.Y
	}

	// Visit the side containing the query center first; the far side can
	// only improve the result when the candidate list is not full yet or
	// the splitting plane is closer than the current worst match.
	nearLo, nearHi := lo, mid
	farLo, farHi := mid+1, hi
	if delta > 0 {
		nearLo, nearHi = mid+1, hi
		farLo, farHi = lo, mid
	}

	out = t.nearest(nearLo, nearHi, 1-axis, x, y, k, out)
	if len(out) < k || delta*delta <= out[len(out)-1].DistSq {
		out = t.nearest(farLo, farHi, 1-axis, x, y, k, out)
	}
	return out
}

// insertByDistance inserts m into the ascending-by-DistSq list, keeping at
// most k entries. k is small in practice, so a linear shift beats a heap.
func insertByDistance(list []Match, m Match, k int) []Match {
	if len(list) == k {
		if m.DistSq >= list[len(list)-1].DistSq {
			return list
		}
		list = list[:len(list)-1]
	}
	i := len(list)
	list = append(list, m)
	for i > 0 && list[i-1].DistSq > m.DistSq {
		list[i] = list[i-1]
		i--
	}
	list[i] = m
	return list
}
