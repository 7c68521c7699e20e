package sim

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
)

// Shared source image for batched triangle drawing
var whiteImage = ebiten.NewImage(3, 3)

func init() {
	whiteImage.Fill(color.RGBA{R: 100, G: 200, B: 255, A: 255})
}

// Game is the ebiten shell: it ticks the world actor at the fixed rate and
// renders the latest snapshot it has received.
type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	worldPID   *actor.PID
	snapshotCh chan *pb.WorldSnapshot
	lastState  *pb.WorldSnapshot
	cfg        *flock.Config
	hud        *hud

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64 // Rolling average in ms
}

// NewGame spawns the world actor and returns the game loop driver.
func NewGame(ctx context.Context, cfg *flock.Config, system actor.ActorSystem) (*Game, error) {
	snapshotCh := make(chan *pb.WorldSnapshot, 10) // Buffer to avoid blocking

	worldPID, err := system.Spawn(ctx, "world", NewWorldActor(snapshotCh, cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn world: %w", err)
	}

	return &Game{
		ctx:        ctx,
		System:     system,
		worldPID:   worldPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.WorldSnapshot{}, // Avoid nil pointer
		cfg:        cfg,
		hud:        newHUD(),
	}, nil
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		ms := float64(time.Since(start).Microseconds()) / 1000.0
		g.updateAvg = g.updateAvg*0.95 + ms*0.05
	}()

	g.hud.update()

	// Retrieve the latest snapshot, non-blocking
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	if g.hud.paused.value {
		return nil
	}

	tick := &pb.Tick{
		DeltaTime:   1,
		BoundWidth:  g.cfg.WorldWidth,
		BoundHeight: g.cfg.WorldHeight,
	}
	// The flock chases the pointer while it stays inside the window
	if cx, cy := ebiten.CursorPosition(); g.hud.chasePointer.value &&
		cx >= 0 && cy >= 0 &&
		float64(cx) < g.cfg.WorldWidth && float64(cy) < g.cfg.WorldHeight {
		tick.Target = &pb.Target{X: float64(cx), Y: float64(cy)}
	}
	actor.Tell(g.ctx, g.worldPID, tick)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		ms := float64(time.Since(start).Microseconds()) / 1000.0
		g.drawAvg = g.drawAvg*0.95 + ms*0.05
	}()

	for _, a := range g.lastState.Agents {
		drawBoid(screen, a)
	}

	// Soft boundary, for orientation while tuning
	if g.hud.showBounds.value {
		b := g.cfg.InnerBounds()
		vector.StrokeRect(screen,
			float32(b.Min.X), float32(b.Min.Y),
			float32(b.Width()), float32(b.Height()),
			1, color.RGBA{R: 60, G: 60, B: 80, A: 255}, false)
	}

	g.hud.draw(screen)

	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nTick: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.Tick,
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)-150, 10)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight)
}

func drawBoid(screen *ebiten.Image, a *pb.AgentState) {
	angle := a.Heading

	tipX := a.PositionX + math.Cos(angle)*6
	tipY := a.PositionY + math.Sin(angle)*6
	rightX := a.PositionX + math.Cos(angle+2.5)*5
	rightY := a.PositionY + math.Sin(angle+2.5)*5
	leftX := a.PositionX + math.Cos(angle-2.5)*5
	leftY := a.PositionY + math.Sin(angle-2.5)*5

	vertices := []ebiten.Vertex{
		{
			DstX: float32(tipX),
			DstY: float32(tipY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(rightX),
			DstY: float32(rightY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
		{
			DstX: float32(leftX),
			DstY: float32(leftY),
			SrcX: 1, SrcY: 1,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		},
	}
	indices := []uint16{0, 1, 2}

	op := &ebiten.DrawTrianglesOptions{}
	screen.DrawTriangles(vertices, indices, whiteImage, op)
}
