// Package flock implements the simulation core: a population of autonomous
// agents steered every tick by local flocking rules (separation, cohesion,
// alignment, boundary return and optional goal seeking).
//
// The tick pipeline is a strict read/write phase split: the spatial index
// and a position/velocity snapshot are shared read-only while steering
// deltas are computed in parallel, and only the single-threaded integration
// phase mutates agent state.
package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// Agent is one simulated boid. Agents live in a dense arena indexed by ID;
// they are created once at startup and never destroyed during a run.
type Agent struct {
	ID  int32
	Pos geometry.Vector2D
	Vel geometry.Vector2D
	// Heading is the facing angle in radians, derived from the velocity
	// direction each tick. It is kept alongside the velocity so an agent
	// that momentarily stops still remembers which way it faces.
	Heading float64
}

// Delta associates an agent with its computed velocity change for the
// current tick. It is a transient message between the steering phase and
// the integrator, produced and consumed exactly once per agent per tick.
type Delta struct {
	ID int32
	DV geometry.Vector2D
}

// halton returns element i of the Halton low-discrepancy sequence for the
// given base. Scattering spawn positions along the (2, 3) Halton pair gives
// a roughly uniform cover of the world without the clumping of a plain
// random scatter.
func halton(i, base int) float64 {
	f := 1.0
	r := 0.0
	for i > 0 {
		f /= float64(base)
		r += f * float64(i%base)
		i /= base
	}
	return r
}
