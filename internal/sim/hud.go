package sim

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// toggle is a small clickable checkbox. It only drives presentation-side
// behavior; the run configuration itself stays immutable.
type toggle struct {
	label   string
	value   bool
	x, y    float64
	size    float64
	clicked bool // debounce: one flip per press
}

func newToggle(x, y float64, label string, value bool) *toggle {
	return &toggle{
		label: label,
		value: value,
		x:     x,
		y:     y,
		size:  14,
	}
}

func (t *toggle) update() {
	mx, my := ebiten.CursorPosition()
	over := float64(mx) >= t.x && float64(mx) <= t.x+t.size &&
		float64(my) >= t.y && float64(my) <= t.y+t.size

	if over && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !t.clicked {
			t.value = !t.value
			t.clicked = true
		}
	} else {
		t.clicked = false
	}
}

func (t *toggle) draw(screen *ebiten.Image) {
	border := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	vector.StrokeRect(screen,
		float32(t.x), float32(t.y),
		float32(t.size), float32(t.size),
		2, border, true)

	if t.value {
		fill := color.RGBA{R: 100, G: 200, B: 255, A: 255}
		vector.FillRect(screen,
			float32(t.x)+3, float32(t.y)+3,
			float32(t.size)-6, float32(t.size)-6,
			fill, true)
	}

	ebitenutil.DebugPrintAt(screen, t.label, int(t.x+t.size)+6, int(t.y))
}

// hud groups the presentation toggles in the top-left corner.
type hud struct {
	chasePointer *toggle
	showBounds   *toggle
	paused       *toggle
}

func newHUD() *hud {
	return &hud{
		chasePointer: newToggle(10, 10, "Chase pointer", true),
		showBounds:   newToggle(10, 32, "Show bounds", true),
		paused:       newToggle(10, 54, "Pause", false),
	}
}

func (h *hud) update() {
	h.chasePointer.update()
	h.showBounds.update()
	h.paused.update()
}

func (h *hud) draw(screen *ebiten.Image) {
	h.chasePointer.draw(screen)
	h.showBounds.draw(screen)
	h.paused.draw(screen)
}
