package config

// DriverConfig is the root config for driver.{json,toml,yaml}
type DriverConfig struct {
	Display DisplayConfig `json:"display" toml:"display" yaml:"display"`
	Scenes  ScenesConfig  `json:"scenes" toml:"scenes" yaml:"scenes"`
	Log     LogConfig     `json:"log" toml:"log" yaml:"log"`
}

// DisplayConfig configures the host window and tick rate
type DisplayConfig struct {
	Title        string `json:"title" toml:"title" yaml:"title" env:"SCENEFLOW_TITLE"`
	ScreenWidth  int    `json:"screenWidth" toml:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int    `json:"screenHeight" toml:"screenHeight" yaml:"screenHeight"`
	Scale        int    `json:"scale" toml:"scale" yaml:"scale" env:"SCENEFLOW_SCALE"`
	Framerate    int    `json:"framerate" toml:"framerate" yaml:"framerate" env:"SCENEFLOW_FRAMERATE"` // Ticks per second
}

// ScenesConfig names the scenes loaded by each state of the flow
type ScenesConfig struct {
	Start    string   `json:"start" toml:"start" yaml:"start"`
	MainMenu string   `json:"mainMenu" toml:"mainMenu" yaml:"mainMenu"`
	Battle   string   `json:"battle" toml:"battle" yaml:"battle"`
	Extra    []string `json:"extra,omitempty" toml:"extra" yaml:"extra,omitempty"` // Additional loadable scenes
}

// Catalog returns every loadable scene name, flow scenes first
func (s ScenesConfig) Catalog() []string {
	out := make([]string, 0, 3+len(s.Extra))
	for _, name := range []string{s.Start, s.MainMenu, s.Battle} {
		if name != "" {
			out = append(out, name)
		}
	}
	return append(out, s.Extra...)
}

// LogConfig configures the logger
type LogConfig struct {
	Level  string `json:"level" toml:"level" yaml:"level" env:"SCENEFLOW_LOG_LEVEL"`    // trace, debug, info, warn, error
	Format string `json:"format" toml:"format" yaml:"format" env:"SCENEFLOW_LOG_FORMAT"` // console or json
}
