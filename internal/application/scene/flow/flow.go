// Package flow provides the linear scene flow: Start → MainMenu → GameBattle.
//
// Each state switches to its successor from its own OnUpdate, through the
// Switcher handle it was built with.
package flow

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
	"github.com/younwookim/sceneflow/internal/application/singleton"
	"github.com/younwookim/sceneflow/internal/application/state"
	"github.com/younwookim/sceneflow/internal/infrastructure/config"
)

// Switcher is the controller handle a state uses to activate its successor.
// States do not own the controller behind it.
type Switcher interface {
	SetState(next state.State, scene string) error
}

// Deps holds what every state of the flow needs
type Deps struct {
	Switcher Switcher
	Scenes   config.ScenesConfig
	Registry *singleton.Registry // Optional; GameBattle skips stats without it
	Log      zerolog.Logger
}

// Begin activates the Start state and loads the start scene
func Begin(d Deps) error {
	return d.Switcher.SetState(NewStart(d), d.Scenes.Start)
}

func logHook(log zerolog.Logger, s state.State, hook string) {
	log.Debug().Str("state", s.Name()).Msg(hook)
}

func drawLines(screen *ebiten.Image, lines ...string) {
	ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
}
