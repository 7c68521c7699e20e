package flock

import (
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/spatial"
)

func randomSnapshot(rng *rand.Rand, n int, extent float64) []Agent {
	snap := make([]Agent, n)
	for i := range snap {
		vel := geometry.Vector2D{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
		snap[i] = Agent{
			ID:      int32(i),
			Pos:     geometry.Vector2D{X: rng.Float64() * extent, Y: rng.Float64() * extent},
			Vel:     vel,
			Heading: vel.Angle(),
		}
	}
	return snap
}

func indexFor(snap []Agent) *spatial.KDTree {
	pts := make([]spatial.Point, len(snap))
	for i, a := range snap {
		pts[i] = spatial.Point{ID: a.ID, X: a.Pos.X, Y: a.Pos.Y}
	}
	tree := spatial.NewKDTree()
	tree.Build(pts)
	return tree
}

func TestEvaluateAll_DeterministicAcrossWorkerCounts(t *testing.T) {
	// For a fixed snapshot and configuration the deltas must be identical
	// no matter how the population was partitioned across workers.
	rng := rand.New(rand.NewPCG(99, 0))
	snap := randomSnapshot(rng, 137, 600)
	tree := indexFor(snap)
	target := geometry.Vector2D{X: 300, Y: 300}

	cfg := DefaultConfig()
	cfg.WorkerCount = 1
	reference := EvaluateAll(snap, tree, &target, cfg, nil)

	for _, workers := range []int{2, 4, 8} {
		cfg := DefaultConfig()
		cfg.WorkerCount = workers
		got := EvaluateAll(snap, tree, &target, cfg, nil)

		if len(got) != len(reference) {
			t.Fatalf("workers=%d: got %d deltas, want %d", workers, len(got), len(reference))
		}
		for i := range got {
			if got[i] != reference[i] {
				t.Errorf("workers=%d agent %d: delta %v, single-threaded %v",
					workers, got[i].ID, got[i].DV, reference[i].DV)
			}
		}
	}
}

func TestEvaluateAll_OneDeltaPerAgent(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 0))
	snap := randomSnapshot(rng, 50, 200)
	tree := indexFor(snap)

	cfg := DefaultConfig()
	deltas := EvaluateAll(snap, tree, nil, cfg, nil)

	if len(deltas) != len(snap) {
		t.Fatalf("got %d deltas for %d agents", len(deltas), len(snap))
	}
	seen := make(map[int32]bool, len(deltas))
	for _, d := range deltas {
		if seen[d.ID] {
			t.Fatalf("agent %d received two deltas", d.ID)
		}
		seen[d.ID] = true
	}
}

func TestEvaluateAll_MoreWorkersThanAgents(t *testing.T) {
	snap := []Agent{{ID: 0, Pos: geometry.Vector2D{X: 10, Y: 10}}}
	tree := indexFor(snap)

	cfg := DefaultConfig()
	cfg.WorkerCount = 8

	deltas := EvaluateAll(snap, tree, nil, cfg, nil)
	if len(deltas) != 1 {
		t.Fatalf("got %d deltas, want 1", len(deltas))
	}
}

func TestEvaluateAll_EmptySnapshot(t *testing.T) {
	cfg := DefaultConfig()
	tree := spatial.NewKDTree()
	tree.Build(nil)

	if got := EvaluateAll(nil, tree, nil, cfg, nil); len(got) != 0 {
		t.Fatalf("got %d deltas for an empty snapshot", len(got))
	}
}

func TestEvaluateAll_KNearestMode(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 0))
	snap := randomSnapshot(rng, 80, 100) // dense: everyone sees everyone
	tree := indexFor(snap)

	cfg := DefaultConfig()
	cfg.NeighborSelection = SelectKNearest
	cfg.NeighborLimit = 4

	deltas := EvaluateAll(snap, tree, nil, cfg, nil)
	if len(deltas) != len(snap) {
		t.Fatalf("got %d deltas for %d agents", len(deltas), len(snap))
	}

	// Determinism holds in kNearest mode too
	cfg2 := DefaultConfig()
	cfg2.NeighborSelection = SelectKNearest
	cfg2.NeighborLimit = 4
	cfg2.WorkerCount = 4
	again := EvaluateAll(snap, tree, nil, cfg2, nil)
	for i := range deltas {
		if deltas[i] != again[i] {
			t.Errorf("agent %d: kNearest delta differs across worker counts", deltas[i].ID)
		}
	}
}

func BenchmarkEvaluateAll(b *testing.B) {
	rng := rand.New(rand.NewPCG(1, 0))
	snap := randomSnapshot(rng, 1000, 800)
	tree := indexFor(snap)
	cfg := DefaultConfig()
	var deltas []Delta

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		deltas = EvaluateAll(snap, tree, nil, cfg, deltas)
	}
}
