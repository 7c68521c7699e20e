package flock

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/spatial"
)

// matchesFor runs a radius query the way the scheduler does, so steering
// tests exercise the same index path as production.
func matchesFor(self *Agent, snap []Agent, radius float64) []spatial.Match {
	pts := make([]spatial.Point, len(snap))
	for i, a := range snap {
		pts[i] = spatial.Point{ID: a.ID, X: a.Pos.X, Y: a.Pos.Y}
	}
	tree := spatial.NewKDTree()
	tree.Build(pts)
	return tree.QueryRadius(self.Pos.X, self.Pos.Y, radius, nil)
}

func TestComputeDelta_SeparationDominance(t *testing.T) {
	// Two agents closer than the protected range must be pushed apart:
	// opposite-signed contributions along the line connecting them.
	cfg := DefaultConfig()
	cfg.VisionRange = 40
	cfg.ProtectedRange = 8

	snap := []Agent{
		{ID: 0, Pos: geometry.Vector2D{X: 0, Y: 0}},
		{ID: 1, Pos: geometry.Vector2D{X: 5, Y: 0}},
	}

	dv0 := ComputeDelta(&snap[0], matchesFor(&snap[0], snap, cfg.VisionRange), snap, nil, cfg)
	dv1 := ComputeDelta(&snap[1], matchesFor(&snap[1], snap, cfg.VisionRange), snap, nil, cfg)

	if dv0.X >= 0 {
		t.Errorf("agent 0 should be pushed in -X, got %v", dv0)
	}
	if dv1.X <= 0 {
		t.Errorf("agent 1 should be pushed in +X, got %v", dv1)
	}
	if dv0.Y != 0 || dv1.Y != 0 {
		t.Errorf("no Y separation expected, got %v and %v", dv0, dv1)
	}
}

func TestComputeDelta_ThreeAgentScenario(t *testing.T) {
	// Agent at (0,0) must see (5,0) as a close neighbor (5 < protected 8)
	// and must not see (100,100) at all (dist ~141 > vision 40). The
	// resulting delta is purely the avoidance term, pointing in -X.
	cfg := DefaultConfig()
	cfg.VisionRange = 40
	cfg.ProtectedRange = 8

	snap := []Agent{
		{ID: 0, Pos: geometry.Vector2D{X: 0, Y: 0}},
		{ID: 1, Pos: geometry.Vector2D{X: 5, Y: 0}},
		{ID: 2, Pos: geometry.Vector2D{X: 100, Y: 100}},
	}

	matches := matchesFor(&snap[0], snap, cfg.VisionRange)
	for _, m := range matches {
		if m.ID == 2 {
			t.Fatal("agent at (100,100) must be outside the vision range")
		}
	}

	dv := ComputeDelta(&snap[0], matches, snap, nil, cfg)

	// Single close neighbor at (5,0): away = (-5,0), delta = away * avoid
	wantX := -5 * cfg.AvoidFactor
	if math.Abs(dv.X-wantX) > 1e-9 {
		t.Errorf("dv.X = %v; want %v", dv.X, wantX)
	}
	if dv.X >= 0 {
		t.Errorf("avoidance term must point in -X, got %v", dv)
	}
	if dv.Y != 0 {
		t.Errorf("dv.Y = %v; want 0", dv.Y)
	}
}

func TestComputeDelta_CohesionAndAlignment(t *testing.T) {
	// A single visible neighbor beyond the protected range contributes the
	// centering and matching terms and nothing else.
	cfg := DefaultConfig()
	cfg.VisionRange = 40
	cfg.ProtectedRange = 8

	snap := []Agent{
		{ID: 0, Pos: geometry.Vector2D{X: 0, Y: 0}},
		{ID: 1, Pos: geometry.Vector2D{X: 20, Y: 0}, Vel: geometry.Vector2D{X: 0, Y: 3}},
	}

	dv := ComputeDelta(&snap[0], matchesFor(&snap[0], snap, cfg.VisionRange), snap, nil, cfg)

	wantX := 20 * cfg.CenteringFactor
	wantY := 3 * cfg.MatchingFactor
	if math.Abs(dv.X-wantX) > 1e-9 {
		t.Errorf("centering term: dv.X = %v; want %v", dv.X, wantX)
	}
	if math.Abs(dv.Y-wantY) > 1e-9 {
		t.Errorf("matching term: dv.Y = %v; want %v", dv.Y, wantY)
	}
}

func TestComputeDelta_AlignmentUsesNeighborVelocity(t *testing.T) {
	// The matching term scales the average neighbor velocity itself, not
	// the velocity relative to the agent: a moving agent whose neighbor
	// moves identically still receives the full matching contribution.
	cfg := DefaultConfig()
	cfg.VisionRange = 40
	cfg.ProtectedRange = 8

	snap := []Agent{
		{ID: 0, Pos: geometry.Vector2D{X: 0, Y: 0}, Vel: geometry.Vector2D{X: 1, Y: 0}},
		{ID: 1, Pos: geometry.Vector2D{X: 20, Y: 0}, Vel: geometry.Vector2D{X: 1, Y: 0}},
	}

	dv := ComputeDelta(&snap[0], matchesFor(&snap[0], snap, cfg.VisionRange), snap, nil, cfg)

	// centering 20*0.0005 + matching 1*0.05
	want := 20*cfg.CenteringFactor + 1*cfg.MatchingFactor
	if math.Abs(dv.X-want) > 1e-9 {
		t.Errorf("dv.X = %v; want %v", dv.X, want)
	}
	if dv.Y != 0 {
		t.Errorf("dv.Y = %v; want 0", dv.Y)
	}
}

func TestComputeDelta_FieldOfViewExclusion(t *testing.T) {
	// A neighbor directly behind the agent contributes nothing when the
	// view cone is enabled, and contributes normally when it is not.
	cfg := DefaultConfig()
	cfg.VisionRange = 40
	cfg.ProtectedRange = 8
	cfg.FovEnabled = true
	cfg.FovDegrees = 240

	snap := []Agent{
		{ID: 0, Pos: geometry.Vector2D{X: 0, Y: 0}, Vel: geometry.Vector2D{X: 1, Y: 0}},
		{ID: 1, Pos: geometry.Vector2D{X: -5, Y: 0}}, // 180 degrees behind
	}
	matches := matchesFor(&snap[0], snap, cfg.VisionRange)

	dv := ComputeDelta(&snap[0], matches, snap, nil, cfg)
	if dv.X != 0 || dv.Y != 0 {
		t.Errorf("neighbor behind the view cone must contribute zero, got %v", dv)
	}

	cfg.FovEnabled = false
	dv = ComputeDelta(&snap[0], matches, snap, nil, cfg)
	if dv.X <= 0 {
		t.Errorf("with the cone disabled the close neighbor must push in +X, got %v", dv)
	}
}

func TestComputeDelta_StoppedAgentUsesStoredHeading(t *testing.T) {
	// Zero velocity must fall back to the stored heading for the cone
	// check instead of letting every neighbor through or none.
	cfg := DefaultConfig()
	cfg.FovEnabled = true
	cfg.FovDegrees = 240

	snap := []Agent{
		{ID: 0, Pos: geometry.Vector2D{X: 0, Y: 0}, Heading: 0}, // facing +X, not moving
		{ID: 1, Pos: geometry.Vector2D{X: -5, Y: 0}},
	}

	dv := ComputeDelta(&snap[0], matchesFor(&snap[0], snap, cfg.VisionRange), snap, nil, cfg)
	if dv.X != 0 || dv.Y != 0 {
		t.Errorf("neighbor behind the stored heading must be excluded, got %v", dv)
	}
}

func TestComputeDelta_GoalSeek(t *testing.T) {
	cfg := DefaultConfig()

	snap := []Agent{{ID: 0, Pos: geometry.Vector2D{X: 10, Y: 10}}}
	target := geometry.Vector2D{X: 110, Y: 10}

	// No neighbors at all: the delta is solely the goal-seek term
	dv := ComputeDelta(&snap[0], nil, snap, &target, cfg)
	want := 100 * cfg.SeekFactor
	if math.Abs(dv.X-want) > 1e-9 || dv.Y != 0 {
		t.Errorf("goal-seek delta = %v; want (%v, 0)", dv, want)
	}

	// Absent target: zero delta
	dv = ComputeDelta(&snap[0], nil, snap, nil, cfg)
	if dv.X != 0 || dv.Y != 0 {
		t.Errorf("no neighbors and no target must give a zero delta, got %v", dv)
	}
}

func TestComputeDelta_SkipsSelfAndStaleIdentities(t *testing.T) {
	cfg := DefaultConfig()

	snap := []Agent{{ID: 0, Pos: geometry.Vector2D{X: 0, Y: 0}}}

	// The index can serve matches for itself and for identities built from
	// an earlier snapshot; both must be skipped without any contribution.
	matches := []spatial.Match{
		{Point: spatial.Point{ID: 0, X: 0, Y: 0}},
		{Point: spatial.Point{ID: 57, X: 3, Y: 0}, DistSq: 9},
	}

	dv := ComputeDelta(&snap[0], matches, snap, nil, cfg)
	if dv.X != 0 || dv.Y != 0 {
		t.Errorf("self and stale matches must contribute nothing, got %v", dv)
	}
}

func TestComputeDelta_KNearestRespectsVisionRange(t *testing.T) {
	// kNearest selection can return agents beyond the vision range; they
	// must be discarded by the rule engine.
	cfg := DefaultConfig()
	cfg.VisionRange = 40

	snap := []Agent{
		{ID: 0, Pos: geometry.Vector2D{X: 0, Y: 0}},
		{ID: 1, Pos: geometry.Vector2D{X: 500, Y: 0}},
	}
	matches := []spatial.Match{
		{Point: spatial.Point{ID: 1, X: 500, Y: 0}, DistSq: 250000},
	}

	dv := ComputeDelta(&snap[0], matches, snap, nil, cfg)
	if dv.X != 0 || dv.Y != 0 {
		t.Errorf("out-of-vision match must contribute nothing, got %v", dv)
	}
}
