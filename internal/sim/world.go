// Package sim wires the flock core to the actor system and the ebiten
// presentation shell. The WorldActor owns the authoritative state; the Game
// drives it with tick messages and renders the snapshots it pushes back.
package sim

import (
	"time"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// WorldActor is the simulation brain. It owns the flock, advances it one
// fixed step per Tick message and pushes snapshots to the presentation side
// over a non-blocking channel.
type WorldActor struct {
	flock      *flock.Flock
	cfg        *flock.Config
	snapshotCh chan<- *pb.WorldSnapshot

	// Telemetry
	tickCount   int
	lastLogTime time.Time
}

// NewWorldActor creates the world logic unit. The flock is spawned in
// PostStart so a failed configuration surfaces as a spawn error.
func NewWorldActor(snapshotCh chan<- *pb.WorldSnapshot, cfg *flock.Config) *WorldActor {
	return &WorldActor{
		cfg:         cfg,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (w *WorldActor) PreStart(ctx *actor.Context) error {
	f, err := flock.New(w.cfg)
	if err != nil {
		return err
	}
	w.flock = f
	return nil
}

func (w *WorldActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("World started with %d agents in a %gx%g world",
			w.cfg.AgentCount, w.cfg.WorldWidth, w.cfg.WorldHeight)

	case *pb.Tick:
		var target *geometry.Vector2D
		if msg.Target != nil {
			target = &geometry.Vector2D{X: msg.Target.X, Y: msg.Target.Y}
		}
		w.flock.Step(target)

		w.tickCount++
		w.logTelemetry(ctx)
		w.pushSnapshot()
	}
}

func (w *WorldActor) PostStop(ctx *actor.Context) error {
	return nil
}

func (w *WorldActor) logTelemetry(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | Agents: %d | Tick: %d",
			w.tickCount, len(w.flock.Agents()), w.flock.Tick())
		w.tickCount = 0
		w.lastLogTime = time.Now()
	}
}

func (w *WorldActor) pushSnapshot() {
	select {
	case w.snapshotCh <- w.buildSnapshot():
	default:
		// UI busy, skip frame
	}
}

func (w *WorldActor) buildSnapshot() *pb.WorldSnapshot {
	agents := w.flock.Agents()
	snap := &pb.WorldSnapshot{
		Tick:   int64(w.flock.Tick()),
		Agents: make([]*pb.AgentState, len(agents)),
	}
	for i := range agents {
		a := &agents[i]
		snap.Agents[i] = &pb.AgentState{
			Id:        a.ID,
			PositionX: a.Pos.X,
			PositionY: a.Pos.Y,
			VelocityX: a.Vel.X,
			VelocityY: a.Vel.Y,
			Heading:   a.Heading,
		}
	}
	return snap
}
