// Package replay records the controller's hook calls to a JSON journal and
// checks later runs against it. A deterministic flow must reproduce the same
// journal entry for entry.
package replay

import "github.com/younwookim/sceneflow/internal/application/state"

// Version is the journal format version
const Version = "1.0"

// Entry records a single hook or loader call
type Entry struct {
	T uint64 `json:"t"`           // Tick
	H string `json:"h"`           // Hook
	S string `json:"s"`           // State
	N string `json:"n,omitempty"` // Scene name (load only)
}

// EntryFromEvent converts a controller event to a journal entry
func EntryFromEvent(ev state.Event) Entry {
	return Entry{T: ev.Tick, H: ev.Hook.String(), S: ev.State, N: ev.Scene}
}

// Journal contains all entries of one run
type Journal struct {
	Version   string  `json:"version"`
	Session   string  `json:"session"`
	StartTime string  `json:"startTime"`
	Entries   []Entry `json:"entries"`
}
