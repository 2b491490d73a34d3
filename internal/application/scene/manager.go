package scene

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/younwookim/sceneflow/internal/application/singleton"
	"github.com/younwookim/sceneflow/internal/domain/session"
)

// ErrUnknownScene is returned when loading a scene outside the catalog
var ErrUnknownScene = errors.New("scene: unknown scene")

// Manager loads scenes from a fixed catalog. It implements state.Loader.
type Manager struct {
	catalog  map[string]struct{}
	active   string
	registry *singleton.Registry
	log      zerolog.Logger
}

// NewManager creates a manager for the given scene names.
// A nil registry disables load statistics.
func NewManager(scenes []string, registry *singleton.Registry, log zerolog.Logger) *Manager {
	catalog := make(map[string]struct{}, len(scenes))
	for _, name := range scenes {
		catalog[name] = struct{}{}
	}
	return &Manager{
		catalog:  catalog,
		registry: registry,
		log:      log,
	}
}

// Load switches the active scene
func (m *Manager) Load(name string) error {
	if _, ok := m.catalog[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	if m.registry != nil {
		stats, err := singleton.Get[*session.Stats](m.registry)
		if err != nil {
			return fmt.Errorf("scene stats: %w", err)
		}
		stats.RecordLoad(name)
	}

	prev := m.active
	m.active = name

	m.log.Info().Str("from", prev).Str("to", name).Msg("scene loaded")
	return nil
}

// Active returns the name of the last loaded scene
func (m *Manager) Active() string {
	return m.active
}
