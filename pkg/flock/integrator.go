package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// Integrate applies the collected deltas to the authoritative agent state:
// velocity update, boundary handling, speed clamping, optional decay,
// heading derivation and the fixed-step position advance. It runs
// single-threaded; this is the only phase allowed to mutate agents.
func Integrate(agents []Agent, deltas []Delta, bounds geometry.Rect, cfg *Config) {
	for _, d := range deltas {
		if int(d.ID) < 0 || int(d.ID) >= len(agents) {
			continue
		}
		a := &agents[d.ID]

		a.Vel = a.Vel.Add(d.DV)

		switch cfg.BoundaryMode {
		case BoundaryBounce:
			bounceOffBounds(a, bounds)
		default:
			steerBackIntoBounds(a, bounds, cfg.TurnFactor)
		}

		clampSpeed(a, cfg.MinSpeed, cfg.MaxSpeed)

		if cfg.SpeedDecay != 1 {
			a.Vel = a.Vel.Scale(cfg.SpeedDecay)
		}

		// Orientation follows the velocity direction; a stopped agent
		// keeps facing the way it last moved.
		if a.Vel.LenSqr() > 0 {
			a.Heading = a.Vel.Angle()
		}

		a.Pos = a.Pos.Add(a.Vel)
	}
}

// steerBackIntoBounds nudges the velocity toward the interior on every axis
// where the agent has drifted past the soft boundary. A soft steer-back,
// not a clamp: agents overshoot the border and curve back in.
func steerBackIntoBounds(a *Agent, bounds geometry.Rect, turnFactor float64) {
	if a.Pos.X < bounds.Min.X {
		a.Vel.X += turnFactor
	}
	if a.Pos.X > bounds.Max.X {
		a.Vel.X -= turnFactor
	}
	if a.Pos.Y < bounds.Min.Y {
		a.Vel.Y += turnFactor
	}
	if a.Pos.Y > bounds.Max.Y {
		a.Vel.Y -= turnFactor
	}
}

// bounceOffBounds reflects the agent off the boundary: the position is
// clamped back onto the border and the axis velocity inverted.
func bounceOffBounds(a *Agent, bounds geometry.Rect) {
	if a.Pos.X < bounds.Min.X || a.Pos.X > bounds.Max.X {
		a.Vel.X = -a.Vel.X
		a.Pos.X = min(max(a.Pos.X, bounds.Min.X), bounds.Max.X)
	}
	if a.Pos.Y < bounds.Min.Y || a.Pos.Y > bounds.Max.Y {
		a.Vel.Y = -a.Vel.Y
		a.Pos.Y = min(max(a.Pos.Y, bounds.Min.Y), bounds.Max.Y)
	}
}

// clampSpeed rescales the velocity into [minSpeed, maxSpeed]. A speed of
// exactly zero is left alone: there is no direction to rescale along, so
// the agent stays put until a neighbor or the goal term pushes it.
func clampSpeed(a *Agent, minSpeed, maxSpeed float64) {
	speed := a.Vel.Len()
	if speed == 0 {
		return
	}
	if speed < minSpeed {
		a.Vel = a.Vel.Scale(minSpeed / speed)
	} else if speed > maxSpeed {
		a.Vel = a.Vel.Scale(maxSpeed / speed)
	}
}
