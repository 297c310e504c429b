//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"trilife/internal/core"
	"trilife/internal/render"
	"trilife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// cellEditor is the mutation surface a sim must expose for interactive
// painting and clearing.
type cellEditor interface {
	Set(x, y, v int)
	Clear()
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	editor  cellEditor
	painter *render.GridPainter
	overlay *ui.Overlay
	clock   *core.FixedStep

	palette  []color.RGBA
	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	brush    int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale, tps int, seed int64) *Game {
	g := &Game{
		sim:     sim,
		painter: render.NewGridPainter(sim.Size().W, sim.Size().H),
		overlay: ui.NewOverlay(sim),
		clock:   core.NewFixedStep(tps),
		palette: render.Palette(),
		scale:   scale,
		seed:    seed,
		brush:   1,
	}
	if editor, ok := sim.(cellEditor); ok {
		g.editor = editor
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation on the
// fixed-step clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && g.editor != nil {
		g.editor.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.clock.SetTPS(max(1, g.clock.TPS()-5))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.clock.SetTPS(g.clock.TPS() + 5)
	}

	for d := ebiten.KeyDigit0; d <= ebiten.KeyDigit5; d++ {
		if inpututil.IsKeyJustPressed(d) {
			g.brush = int(d - ebiten.KeyDigit0)
		}
	}

	g.handlePainting()

	if g.overlay != nil {
		g.overlay.Update()
	}

	if (!g.paused && g.clock.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// handlePainting writes the brush state through the editor while a mouse
// button is held. Coordinates wrap inside the sim, so no clamping is
// needed here.
func (g *Game) handlePainting() {
	if g.editor == nil {
		return
	}
	x, y := ebiten.CursorPosition()
	cx, cy := x/g.scale, y/g.scale
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.editor.Set(cx, cy, g.brush)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.editor.Set(cx, cy, 0)
	}
}

// Draw renders the current simulation state and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.palette, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen, g.statusLine())
	}
}

func (g *Game) statusLine() string {
	state := "running"
	if g.paused {
		state = "paused"
	}
	return fmt.Sprintf("gen %d  tps %d  brush %d  %s", g.sim.Generation(), g.clock.TPS(), g.brush, state)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
