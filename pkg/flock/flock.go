package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/spatial"
)

// Flock owns the authoritative agent state and runs the tick pipeline:
// spatial index refresh, parallel steering evaluation over a read-only
// snapshot, then single-threaded integration.
type Flock struct {
	cfg    *Config
	agents []Agent
	bounds geometry.Rect

	index spatial.Index
	tick  uint64

	// Reusable per-tick buffers
	points []spatial.Point
	snap   []Agent
	deltas []Delta
}

// New validates the configuration, spawns the agent population on a
// low-discrepancy scatter and builds the initial spatial index.
func New(cfg *Config) (*Flock, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Flock{
		cfg:    cfg,
		bounds: cfg.InnerBounds(),
	}

	switch cfg.SpatialIndex {
	case IndexGrid:
		f.index = spatial.NewCellGrid(cfg.VisionRange)
	default:
		f.index = spatial.NewKDTree()
	}

	f.spawn()
	f.rebuildIndex()
	return f, nil
}

func (f *Flock) spawn() {
	rng := rand.New(rand.NewPCG(f.cfg.Seed, 0))

	f.agents = make([]Agent, f.cfg.AgentCount)
	for i := range f.agents {
		vel := geometry.Vector2D{
			X: rng.Float64()*2 - 1,
			Y: rng.Float64()*2 - 1,
		}
		f.agents[i] = Agent{
			ID: int32(i),
			Pos: geometry.Vector2D{
				X: halton(i+1, 2) * f.cfg.WorldWidth,
				Y: halton(i+1, 3) * f.cfg.WorldHeight,
			},
			Vel:     vel,
			Heading: vel.Angle(),
		}
	}
}

// rebuildIndex is a pure function of the latest positions; the index
// carries no other state.
func (f *Flock) rebuildIndex() {
	f.points = f.points[:0]
	for i := range f.agents {
		a := &f.agents[i]
		f.points = append(f.points, spatial.Point{ID: a.ID, X: a.Pos.X, Y: a.Pos.Y})
	}
	f.index.Build(f.points)
}

// Step advances the simulation by one fixed tick. target, when non-nil, is
// the goal-seek point in world coordinates (typically the pointer position
// supplied by the input collaborator); nil simply omits the goal term.
func (f *Flock) Step(target *geometry.Vector2D) {
	// The rebuild cadence is decoupled from the tick so heavy loads can
	// amortize it; queries then serve positions at most one rebuild old.
	if f.tick%uint64(f.cfg.IndexRebuildEvery) == 0 {
		f.rebuildIndex()
	}

	f.snap = append(f.snap[:0], f.agents...)
	f.deltas = EvaluateAll(f.snap, f.index, target, f.cfg, f.deltas)
	Integrate(f.agents, f.deltas, f.bounds, f.cfg)

	f.tick++
}

// Agents returns the live agent arena for the presentation consumer.
// Callers must treat it as read-only.
func (f *Flock) Agents() []Agent {
	return f.agents
}

// Tick returns the number of completed simulation ticks.
func (f *Flock) Tick() uint64 {
	return f.tick
}

// Bounds returns the soft boundary rectangle agents are steered back into.
func (f *Flock) Bounds() geometry.Rect {
	return f.bounds
}

// Config returns the run configuration. It is immutable for the run.
func (f *Flock) Config() *Config {
	return f.cfg
}
