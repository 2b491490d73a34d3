package flow

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sceneflow/internal/application/singleton"
	"github.com/younwookim/sceneflow/internal/application/state"
	"github.com/younwookim/sceneflow/internal/domain/session"
)

// GameBattle is the last state of the flow. It stays active and counts frames.
type GameBattle struct {
	state.Base
	deps   Deps
	stats  *session.Stats
	frames int
}

// NewGameBattle creates the GameBattle state
func NewGameBattle(d Deps) *GameBattle {
	return &GameBattle{Base: state.Base{Label: "GameBattle"}, deps: d}
}

// OnEnter resolves the session stats
func (g *GameBattle) OnEnter() error {
	logHook(g.deps.Log, g, "state begin")

	if g.deps.Registry == nil {
		return nil
	}
	stats, err := singleton.Get[*session.Stats](g.deps.Registry)
	if err != nil {
		return fmt.Errorf("battle stats: %w", err)
	}
	g.stats = stats
	return nil
}

// OnUpdate counts a battle frame
func (g *GameBattle) OnUpdate() error {
	g.frames++
	if g.stats != nil {
		g.stats.AddBattleFrame()
	}
	g.deps.Log.Trace().Str("state", g.Name()).Int("frame", g.frames).Msg("state update")
	return nil
}

// Frames returns the number of updates since the battle was entered
func (g *GameBattle) Frames() int {
	return g.frames
}

// Draw renders the state label and frame count
func (g *GameBattle) Draw(screen *ebiten.Image) {
	drawLines(screen, g.Name(), g.deps.Scenes.Battle, fmt.Sprintf("frame %d", g.frames))
}
