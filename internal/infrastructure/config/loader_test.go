package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlDriver = `
[display]
title = "Toml Flow"
screenWidth = 640
screenHeight = 480
scale = 1
framerate = 30

[scenes]
start = "Boot"
mainMenu = "Menu"
battle = "Arena"
extra = ["Credits"]

[log]
level = "debug"
format = "json"
`

const yamlDriver = `
display:
  title: Yaml Flow
  screenWidth: 800
  screenHeight: 600
  scale: 1
  framerate: 120
scenes:
  start: Boot
  mainMenu: Menu
  battle: Arena
log:
  level: warn
  format: console
`

func TestLoader_LoadDriver(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadDriver("driver.json")
	require.NoError(t, err)

	assert.Equal(t, "Scene Flow", cfg.Display.Title)
	assert.Equal(t, 320, cfg.Display.ScreenWidth)
	assert.Equal(t, 240, cfg.Display.ScreenHeight)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, "StartScene", cfg.Scenes.Start)
	assert.Equal(t, "MainMenuScene", cfg.Scenes.MainMenu)
	assert.Equal(t, "GameBattleScene", cfg.Scenes.Battle)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoader_LoadDriver_TOML(t *testing.T) {
	fsys := fstest.MapFS{"driver.toml": {Data: []byte(tomlDriver)}}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadDriver("driver.toml")
	require.NoError(t, err)

	assert.Equal(t, "Toml Flow", cfg.Display.Title)
	assert.Equal(t, 640, cfg.Display.ScreenWidth)
	assert.Equal(t, 30, cfg.Display.Framerate)
	assert.Equal(t, []string{"Boot", "Menu", "Arena", "Credits"}, cfg.Scenes.Catalog())
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoader_LoadDriver_YAML(t *testing.T) {
	fsys := fstest.MapFS{"driver.yml": {Data: []byte(yamlDriver)}}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadDriver("driver.yml")
	require.NoError(t, err)

	assert.Equal(t, "Yaml Flow", cfg.Display.Title)
	assert.Equal(t, 120, cfg.Display.Framerate)
	assert.Equal(t, "Arena", cfg.Scenes.Battle)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_LoadDriver_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"driver.ini":  {Data: []byte("x=1")},
		"broken.json": {Data: []byte("{")},
	}
	loader := NewFSLoader(fsys, "mem")

	_, err := loader.LoadDriver("driver.ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = loader.LoadDriver("broken.json")
	assert.ErrorContains(t, err, "failed to parse broken.json")

	_, err = loader.LoadDriver("missing.json")
	assert.ErrorContains(t, err, "failed to read missing.json")
}

func TestLoader_LoadDefault(t *testing.T) {
	t.Run("picks first present file", func(t *testing.T) {
		fsys := fstest.MapFS{
			"driver.toml": {Data: []byte(tomlDriver)},
			"driver.yaml": {Data: []byte(yamlDriver)},
		}

		cfg, err := NewFSLoader(fsys, "mem").LoadDefault()
		require.NoError(t, err)
		assert.Equal(t, "Toml Flow", cfg.Display.Title)
	})

	t.Run("no config", func(t *testing.T) {
		_, err := NewFSLoader(fstest.MapFS{}, "mem").LoadDefault()
		assert.ErrorIs(t, err, ErrNoConfig)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SCENEFLOW_LOG_LEVEL", "trace")
	t.Setenv("SCENEFLOW_FRAMERATE", "144")

	cfg := &DriverConfig{
		Display: DisplayConfig{Title: "Keep", ScreenWidth: 320, ScreenHeight: 240, Scale: 2, Framerate: 60},
		Log:     LogConfig{Level: "info", Format: "console"},
	}

	require.NoError(t, ApplyEnv(cfg, "does-not-exist.env"))

	assert.Equal(t, "trace", cfg.Log.Level)
	assert.Equal(t, 144, cfg.Display.Framerate)
	assert.Equal(t, "Keep", cfg.Display.Title, "Unset variables keep file values")
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 2, cfg.Display.Scale)
}

func TestApplyEnv_DotenvFile(t *testing.T) {
	unsetEnv(t, "SCENEFLOW_TITLE")
	t.Setenv("SCENEFLOW_LOG_LEVEL", "debug")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SCENEFLOW_TITLE=From Dotenv\nSCENEFLOW_LOG_LEVEL=error\n"), 0o644))

	cfg := &DriverConfig{
		Display: DisplayConfig{Title: "File Title"},
		Log:     LogConfig{Level: "info"},
	}

	require.NoError(t, ApplyEnv(cfg, envFile))

	assert.Equal(t, "From Dotenv", cfg.Display.Title, ".env values apply")
	assert.Equal(t, "debug", cfg.Log.Level, "Process environment wins over .env")
}

// unsetEnv clears key for the test and restores it afterwards. godotenv
// writes straight to the process environment, which t.Setenv cannot undo.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	prev, had := os.LookupEnv(key)
	require.NoError(t, os.Unsetenv(key))
	t.Cleanup(func() {
		if had {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}

func TestDriverConfig_Validate(t *testing.T) {
	valid := DriverConfig{
		Display: DisplayConfig{ScreenWidth: 320, ScreenHeight: 240, Framerate: 60},
		Scenes:  ScenesConfig{Start: "StartScene"},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *DriverConfig)
	}{
		{"zero width", func(c *DriverConfig) { c.Display.ScreenWidth = 0 }},
		{"negative height", func(c *DriverConfig) { c.Display.ScreenHeight = -1 }},
		{"zero framerate", func(c *DriverConfig) { c.Display.Framerate = 0 }},
		{"empty start scene", func(c *DriverConfig) { c.Scenes.Start = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestScenesConfig_CatalogSkipsEmpty(t *testing.T) {
	s := ScenesConfig{Start: "Boot", Extra: []string{"Credits"}}

	assert.Equal(t, []string{"Boot", "Credits"}, s.Catalog())
}
