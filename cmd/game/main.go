package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/sceneflow/internal/infrastructure/logging"
)

const appName = "sceneflow"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", "", "Directory holding driver.{json,toml,yaml} (default: embedded)")
	recordFlag := flag.String("record", "", "Record the hook journal to file, or to a timestamped file in a directory (e.g., -record journal.json)")
	verifyFlag := flag.String("verify", "", "Replay headlessly and compare against a recorded journal")
	frames := flag.Int("frames", 0, "Run this many frames headlessly instead of opening a window")
	flag.Parse()

	cfg, err := loadConfig(*configDir, ".env")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logging.New(appName, cfg.Log)
	if err != nil {
		return err
	}

	a, err := NewApp(cfg, log)
	if err != nil {
		return err
	}

	switch {
	case *verifyFlag != "":
		err = a.Verify(*verifyFlag)
	case *frames > 0:
		_, err = a.RunHeadless(*frames)
	default:
		scale := max(cfg.Display.Scale, 1)
		ebiten.SetWindowSize(cfg.Display.ScreenWidth*scale, cfg.Display.ScreenHeight*scale)
		ebiten.SetWindowTitle(cfg.Display.Title)
		ebiten.SetTPS(cfg.Display.Framerate)
		err = ebiten.RunGame(a.game)
	}
	if err != nil {
		return err
	}

	if *recordFlag != "" {
		path := recordPath(*recordFlag)
		if err := a.recorder.Save(path); err != nil {
			return fmt.Errorf("failed to save journal: %w", err)
		}
		log.Info().Str("file", path).Int("entries", a.recorder.Len()).Msg("journal saved")
	}

	a.LogSummary()
	return nil
}
