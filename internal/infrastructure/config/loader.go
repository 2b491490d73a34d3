package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFiles are tried in order by LoadDefault
var DefaultFiles = []string{"driver.json", "driver.toml", "driver.yaml"}

var (
	// ErrUnsupportedFormat is returned for config files with an unknown extension
	ErrUnsupportedFormat = errors.New("unsupported config format")

	// ErrNoConfig is returned when none of DefaultFiles exists
	ErrNoConfig = errors.New("no driver config found")

	// ErrInvalidConfig is returned by Validate
	ErrInvalidConfig = errors.New("invalid driver config")
)

// Loader loads driver configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadDriver loads the named driver config. The format follows the file
// extension: .json, .toml, .yaml or .yml.
func (l *Loader) LoadDriver(name string) (*DriverConfig, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	var cfg DriverConfig
	switch ext := path.Ext(name); ext {
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadDefault loads the first of DefaultFiles present in the loader's filesystem
func (l *Loader) LoadDefault() (*DriverConfig, error) {
	for _, name := range DefaultFiles {
		if _, err := fs.Stat(l.fsys, name); err != nil {
			continue
		}
		return l.LoadDriver(name)
	}
	return nil, fmt.Errorf("%w in %s", ErrNoConfig, l.basePath)
}

// ApplyEnv overrides cfg with SCENEFLOW_* environment variables. The given
// .env files are loaded first; missing files are skipped. Variables already
// set in the process environment win over .env values.
func ApplyEnv(cfg *DriverConfig, envFiles ...string) error {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// Validate checks that the config can drive a game loop
func (c *DriverConfig) Validate() error {
	switch {
	case c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate %d", ErrInvalidConfig, c.Display.Framerate)
	case c.Scenes.Start == "":
		return fmt.Errorf("%w: start scene is empty", ErrInvalidConfig)
	}
	return nil
}
