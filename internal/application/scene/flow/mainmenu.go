package flow

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sceneflow/internal/application/state"
)

// MainMenu switches to battle on its first update
type MainMenu struct {
	state.Base
	deps Deps
}

// NewMainMenu creates the MainMenu state
func NewMainMenu(d Deps) *MainMenu {
	return &MainMenu{Base: state.Base{Label: "MainMenu"}, deps: d}
}

// OnEnter logs the state begin
func (m *MainMenu) OnEnter() error {
	logHook(m.deps.Log, m, "state begin")
	return nil
}

// OnUpdate switches to the battle
func (m *MainMenu) OnUpdate() error {
	logHook(m.deps.Log, m, "state update")
	return m.deps.Switcher.SetState(NewGameBattle(m.deps), m.deps.Scenes.Battle)
}

// Draw renders the state label
func (m *MainMenu) Draw(screen *ebiten.Image) {
	drawLines(screen, m.Name(), m.deps.Scenes.MainMenu)
}
