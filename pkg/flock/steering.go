package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/spatial"
)

// ComputeDelta calculates one agent's velocity delta from its visible
// neighbors. It is a pure function of the read-only snapshot: no hidden
// state, no mutation of inputs, which is what makes the parallel
// evaluation phase safe without locks.
//
// neighbors are spatial index matches around self; snap is the snapshot the
// matches resolve into; target, when non-nil, adds an unconditional
// goal-seek term on top of the neighbor rules.
func ComputeDelta(self *Agent, neighbors []spatial.Match, snap []Agent, target *geometry.Vector2D, cfg *Config) geometry.Vector2D {
	var (
		away      geometry.Vector2D // accumulated push out of the protected range
		avgRelPos geometry.Vector2D // cohesion accumulator
		avgVel    geometry.Vector2D // alignment accumulator

		closeNeighbors float64
		farNeighbors   float64
	)

	visionSq := cfg.VisionRange * cfg.VisionRange
	protectedSq := cfg.ProtectedRange * cfg.ProtectedRange
	halfFov := cfg.FovDegrees * math.Pi / 360.0

	// Heading falls back to the previous tick's orientation when the
	// velocity is degenerate, so a stopped agent keeps its view cone.
	heading := self.Vel
	if heading.LenSqr() < geometry.Epsilon {
		heading = geometry.NewVectorPolar(1, self.Heading)
	}

	for _, m := range neighbors {
		if m.ID == self.ID {
			continue
		}
		// The index may have been built from an earlier snapshot than the
		// one we evaluate against; an identity that no longer resolves is
		// an expected consequence of the decoupled rebuild cadence, not an
		// error. Skip it silently.
		if int(m.ID) < 0 || int(m.ID) >= len(snap) {
			continue
		}
		other := &snap[m.ID]

		toOther := other.Pos.Sub(self.Pos)
		distSq := toOther.LenSqr()

		// kNearest selection can hand back agents beyond the vision range;
		// the radius mode already guarantees this bound.
		if distSq > visionSq {
			continue
		}

		if cfg.FovEnabled && heading.AngleBetween(toOther) > halfFov {
			continue
		}

		if distSq < protectedSq {
			// Separation: push directly away from anything crowding in
			away = away.Sub(toOther)
			closeNeighbors++
		} else {
			// Cohesion pulls toward the average relative position,
			// alignment toward the average neighbor velocity
			avgRelPos = avgRelPos.Add(toOther)
			avgVel = avgVel.Add(other.Vel)
			farNeighbors++
		}
	}

	var dv geometry.Vector2D
	if farNeighbors > 0 {
		dv = dv.Add(avgRelPos.Scale(cfg.CenteringFactor / farNeighbors))
		dv = dv.Add(avgVel.Scale(cfg.MatchingFactor / farNeighbors))
	}
	if closeNeighbors > 0 {
		dv = dv.Add(away.Scale(cfg.AvoidFactor / closeNeighbors))
	}

	if target != nil {
		dv = dv.Add(target.Sub(self.Pos).Scale(cfg.SeekFactor))
	}

	return dv
}
