package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/younwookim/sceneflow/internal/application/replay"
)

// RunHeadless advances the game frames times without opening a window
// and returns the journal recorded so far.
func (a *App) RunHeadless(frames int) (replay.Journal, error) {
	if err := a.game.Run(frames); err != nil {
		return a.recorder.Data(), fmt.Errorf("headless run stopped at tick %d: %w", a.ctrl.Ticks(), err)
	}
	return a.recorder.Data(), nil
}

// Verify replays a recorded journal headlessly and checks that this run
// produces the same hook sequence. The run lasts as many ticks as the
// recording did.
func (a *App) Verify(filename string) error {
	want, err := replay.Load(filename)
	if err != nil {
		return err
	}

	got, err := a.RunHeadless(journalTicks(*want) - int(a.ctrl.Ticks()))
	if err != nil {
		return err
	}
	if err := replay.Compare(*want, got); err != nil {
		return err
	}

	a.log.Info().
		Str("file", filename).
		Int("entries", len(got.Entries)).
		Msg("journal verified")
	return nil
}

// journalTicks returns the tick of the last recorded entry
func journalTicks(j replay.Journal) int {
	if len(j.Entries) == 0 {
		return 0
	}
	return int(j.Entries[len(j.Entries)-1].T)
}

// recordPath resolves the -record argument. A directory gets a
// timestamped journal file inside it.
func recordPath(arg string) string {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return filepath.Join(arg, replay.GenerateFilename())
	}
	return arg
}
