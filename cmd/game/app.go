package main

import (
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
	"github.com/younwookim/sceneflow/internal/application/game"
	"github.com/younwookim/sceneflow/internal/application/replay"
	"github.com/younwookim/sceneflow/internal/application/scene"
	"github.com/younwookim/sceneflow/internal/application/scene/flow"
	"github.com/younwookim/sceneflow/internal/application/singleton"
	"github.com/younwookim/sceneflow/internal/application/state"
	"github.com/younwookim/sceneflow/internal/domain/session"
	"github.com/younwookim/sceneflow/internal/ecs"
	"github.com/younwookim/sceneflow/internal/infrastructure/config"
)

// App wires the controller, the scene manager and the singleton registry
// into a runnable game.
type App struct {
	cfg      *config.DriverConfig
	log      zerolog.Logger
	world    *ecs.World
	registry *singleton.Registry
	manager  *scene.Manager
	ctrl     *state.Controller
	recorder *replay.Recorder
	game     *game.Game
}

// NewApp builds the object graph and activates the first state of the flow
func NewApp(cfg *config.DriverConfig, log zerolog.Logger) (*App, error) {
	a := &App{
		cfg:      cfg,
		log:      log,
		world:    ecs.NewWorld(),
		recorder: replay.NewRecorder(),
	}
	a.registry = singleton.NewRegistry(a.world, a.world, singleton.WithLogger(log))
	a.manager = scene.NewManager(cfg.Scenes.Catalog(), a.registry, log)
	a.ctrl = state.NewController(a.manager,
		state.WithLogger(log),
		state.WithListener(a.recorder.Listen))
	a.game = game.New(a.ctrl, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)

	err := flow.Begin(flow.Deps{
		Switcher: a.ctrl,
		Scenes:   cfg.Scenes,
		Registry: a.registry,
		Log:      log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start flow: %w", err)
	}
	return a, nil
}

// Stats returns the session statistics singleton
func (a *App) Stats() (*session.Stats, error) {
	return singleton.Get[*session.Stats](a.registry)
}

// LogSummary writes the end-of-run statistics
func (a *App) LogSummary() {
	stats, err := a.Stats()
	if err != nil {
		a.log.Warn().Err(err).Msg("no session stats")
		return
	}
	a.log.Info().
		Uint64("ticks", a.ctrl.Ticks()).
		Strs("scenes", stats.History()).
		Int("battle_frames", stats.BattleFrames()).
		Int("journal_entries", a.recorder.Len()).
		Msg("session finished")
}

// loadConfig reads driver.{json,toml,yaml} from dir, or from the embedded
// configs when dir is empty, then applies environment overrides.
func loadConfig(dir string, envFiles ...string) (*config.DriverConfig, error) {
	var loader *config.Loader
	if dir != "" {
		loader = config.NewLoader(dir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("failed to get config subfs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadDefault()
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, envFiles...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
