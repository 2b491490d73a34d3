// Package game adapts the state controller to ebiten's game loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sceneflow/internal/application/scene"
	"github.com/younwookim/sceneflow/internal/application/state"
)

// Game implements ebiten.Game. Each Update advances the controller by one tick.
type Game struct {
	ctrl    *state.Controller
	screenW int
	screenH int
}

// New creates a Game driving ctrl. The controller should already hold its
// first state; its OnEnter runs on the first Update.
func New(ctrl *state.Controller, screenW, screenH int) *Game {
	return &Game{
		ctrl:    ctrl,
		screenW: screenW,
		screenH: screenH,
	}
}

// Update ticks the controller.
// A hook error ends ebiten's loop.
func (g *Game) Update() error {
	return g.ctrl.Tick()
}

// Draw renders the current state if it is a scene.Drawer.
func (g *Game) Draw(screen *ebiten.Image) {
	if d, ok := g.ctrl.Current().(scene.Drawer); ok {
		d.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Run calls Update frames times without a window and stops at the first error.
func (g *Game) Run(frames int) error {
	for i := 0; i < frames; i++ {
		if err := g.Update(); err != nil {
			return err
		}
	}
	return nil
}
