package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/render"
	"github.com/milk9111/platformer/runner"
	"github.com/milk9111/platformer/sim"
)

// Game adapts the loop to ebiten: Update is one loop tick, Draw renders.
type Game struct {
	loop     *runner.Loop
	renderer *render.Renderer
	keyboard *Keyboard
	sounds   *Sounds
	pause    *pauseMenu
	debug    bool

	events        []sim.Event
	jumps         uint64
	togglePause   bool
	quitRequested bool
}

func NewGame(loop *runner.Loop, renderer *render.Renderer, keyboard *Keyboard, sounds *Sounds, debug bool) *Game {
	g := &Game{
		loop:     loop,
		renderer: renderer,
		keyboard: keyboard,
		sounds:   sounds,
		debug:    debug,
	}
	g.pause = newPauseMenu(
		func() { g.togglePause = true },
		func() { g.quitRequested = true },
	)
	return g
}

func (g *Game) Update() error {
	g.loop.Prepare()

	g.events = g.keyboard.Poll(g.events[:0])
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || g.togglePause {
		g.togglePause = false
		g.events = append(g.events, sim.Event{Kind: sim.EventPause})
	}
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyF12) || g.quitRequested {
		g.events = append(g.events, sim.Event{Kind: sim.EventQuit})
	}

	g.loop.Tick(g.events)

	if w := g.loop.World(); w.Jumps != g.jumps {
		g.jumps = w.Jumps
		g.sounds.PlayJump()
	}

	switch g.loop.State() {
	case runner.StateStopped:
		return ebiten.Termination
	case runner.StatePaused:
		g.pause.Update(g.loop.Frames())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	w := g.loop.World()
	g.renderer.Draw(screen, w)

	if g.debug {
		b := w.Body
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    TPS: %.2f    FPS: %.2f\nx=%.1f y=%.1f vx=%.2f vy=%.2f jumping=%t",
			g.loop.Frames(), ebiten.ActualTPS(), ebiten.ActualFPS(), b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, b.Jumping))
	}

	if g.loop.State() == runner.StatePaused {
		g.pause.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.ScreenWidth, common.ScreenHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.ScreenWidth, common.ScreenHeight
}
