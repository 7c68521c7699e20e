package spatial

import "math"

// minCellSize keeps pathological configurations from creating a cell per
// point or dividing by zero.
const minCellSize = 10.0

type gridKey struct {
	x, y int
}

// CellGrid is a uniform spatial hash: points are bucketed into square cells
// keyed by their integer cell coordinates. Radius queries scan only the
// cells the query circle can reach. It is the cheaper alternative to the
// kd-tree when the query radius is fixed and close to the cell size, but it
// cannot answer k-nearest queries.
type CellGrid struct {
	cellSize float64
	cells    map[gridKey][]Point
}

// NewCellGrid creates a grid with the given cell size. Sizes below the
// minimum are clamped; the natural choice is the vision radius, so a radius
// query touches at most a 3x3 block of cells.
func NewCellGrid(cellSize float64) *CellGrid {
	return &CellGrid{
		cellSize: math.Max(cellSize, minCellSize),
		cells:    make(map[gridKey][]Point),
	}
}

var _ Index = (*CellGrid)(nil)

// Build rebuckets all points. Cell slices are reset to length 0 but keep
// their capacity, so the underlying arrays are reused and per-tick
// rebuilding allocates almost nothing once warmed up.
func (g *CellGrid) Build(points []Point) {
	for k := range g.cells {
		g.cells[k] = g.cells[k][:0]
	}

	for _, p := range points {
		key := g.keyFor(p.X, p.Y)
		g.cells[key] = append(g.cells[key], p)
	}
}

// Len returns the number of indexed points.
func (g *CellGrid) Len() int {
	n := 0
	for _, cell := range g.cells {
		n += len(cell)
	}
	return n
}

func (g *CellGrid) keyFor(x, y float64) gridKey {
	// Floor, not truncation: positions left of or above the origin must
	// land in negative cells, not share cell 0 with the first row.
	return gridKey{
		x: int(math.Floor(x / g.cellSize)),
		y: int(math.Floor(y / g.cellSize)),
	}
}

// QueryRadius appends every indexed point within radius of (x, y)
// (inclusive) to out and returns it. Only cells the query circle can
// overlap are scanned.
func (g *CellGrid) QueryRadius(x, y, radius float64, out []Match) []Match {
	out = out[:0]
	if radius < 0 {
		return out
	}

	radiusSq := radius * radius
	minKey := g.keyFor(x-radius, y-radius)
	maxKey := g.keyFor(x+radius, y+radius)

	for gx := minKey.x; gx <= maxKey.x; gx++ {
		for gy := minKey.y; gy <= maxKey.y; gy++ {
			cell, ok := g.cells[gridKey{x: gx, y: gy}]
			if !ok {
				continue
			}
			for _, p := range cell {
				dx := p.X - x
				dy := p.Y - y
				distSq := dx*dx + dy*dy
				if distSq <= radiusSq {
					out = append(out, Match{Point: p, DistSq: distSq})
				}
			}
		}
	}
	return out
}
