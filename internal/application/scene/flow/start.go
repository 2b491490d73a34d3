package flow

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sceneflow/internal/application/state"
)

// Start is the boot state. Typically where assets are warmed up; here it
// hands over to the main menu on its first update.
type Start struct {
	state.Base
	deps Deps
}

// NewStart creates the Start state
func NewStart(d Deps) *Start {
	return &Start{Base: state.Base{Label: "Start"}, deps: d}
}

// OnEnter logs the state begin
func (s *Start) OnEnter() error {
	logHook(s.deps.Log, s, "state begin")
	return nil
}

// OnUpdate switches to the main menu
func (s *Start) OnUpdate() error {
	logHook(s.deps.Log, s, "state update")
	return s.deps.Switcher.SetState(NewMainMenu(s.deps), s.deps.Scenes.MainMenu)
}

// Draw renders the state label
func (s *Start) Draw(screen *ebiten.Image) {
	drawLines(screen, s.Name(), s.deps.Scenes.Start)
}
