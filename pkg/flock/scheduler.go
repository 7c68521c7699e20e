package flock

import (
	"runtime"
	"sync"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/spatial"
)

// EvaluateAll computes one steering delta per agent, fanning the snapshot
// out over a bounded pool of workers on contiguous batches and joining
// before it returns. Workers only read the snapshot and the index; each
// delta lands in the slot of its agent, so for a fixed snapshot and
// configuration the result is identical for any worker count.
//
// deltas is a reusable buffer; the returned slice holds exactly one delta
// per agent, ordered by agent index.
func EvaluateAll(snap []Agent, idx spatial.Index, target *geometry.Vector2D, cfg *Config, deltas []Delta) []Delta {
	n := len(snap)
	if cap(deltas) < n {
		deltas = make([]Delta, n)
	}
	deltas = deltas[:n]
	if n == 0 {
		return deltas
	}

	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	batchSize := (n + workers - 1) / workers

	// The kNearest path needs the richer query interface; configuration
	// validation guarantees the index provides it in that mode.
	var knn spatial.KNearestQuerier
	if cfg.NeighborSelection == SelectKNearest {
		knn, _ = idx.(spatial.KNearestQuerier)
	}

	var wg sync.WaitGroup
	for start := 0; start < n; start += batchSize {
		end := min(start+batchSize, n)

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()

			// Per-worker scratch keeps the query path allocation-free
			// after the first few batches.
			scratch := make([]spatial.Match, 0, 64)

			for i := lo; i < hi; i++ {
				self := &snap[i]
				if knn != nil {
					// +1 because the query sees the agent itself
					scratch = knn.QueryKNearest(self.Pos.X, self.Pos.Y, cfg.NeighborLimit+1, scratch)
				} else {
					scratch = idx.QueryRadius(self.Pos.X, self.Pos.Y, cfg.VisionRange, scratch)
				}
				deltas[i] = Delta{
					ID: self.ID,
					DV: ComputeDelta(self, scratch, snap, target, cfg),
				}
			}
		}(start, end)
	}
	wg.Wait()

	return deltas
}
