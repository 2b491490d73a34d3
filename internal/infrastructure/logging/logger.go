// Package logging builds the zerolog logger shared by the driver and its packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/younwookim/sceneflow/internal/infrastructure/config"
)

// New creates a logger writing to stdout
func New(app string, cfg config.LogConfig) (zerolog.Logger, error) {
	return NewWithWriter(os.Stdout, app, cfg)
}

// NewWithWriter creates a logger writing to w. Format "json" emits one JSON
// object per line; anything else uses the human-readable console writer.
// An empty level means info.
func NewWithWriter(w io.Writer, app string, cfg config.LogConfig) (zerolog.Logger, error) {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		l, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
		level = l
	}

	out := w
	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
			NoColor:    w != os.Stdout,
		}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Str("app", app).Logger(), nil
}
