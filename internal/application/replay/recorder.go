package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/younwookim/sceneflow/internal/application/state"
)

// Recorder collects controller events into a Journal
type Recorder struct {
	data Journal
}

// NewRecorder creates a recorder with a fresh session id
func NewRecorder() *Recorder {
	return &Recorder{
		data: Journal{
			Version:   Version,
			Session:   uuid.NewString(),
			StartTime: time.Now().Format(time.RFC3339),
			Entries:   make([]Entry, 0, 256),
		},
	}
}

// Listen records ev. Pass it to state.WithListener.
func (r *Recorder) Listen(ev state.Event) {
	r.data.Entries = append(r.data.Entries, EntryFromEvent(ev))
}

// Save writes the journal to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Entries) == 0 {
		return fmt.Errorf("no entries to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode journal: %w", err)
	}

	return nil
}

// Len returns the number of recorded entries
func (r *Recorder) Len() int {
	return len(r.data.Entries)
}

// Data returns the journal recorded so far
func (r *Recorder) Data() Journal {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("journal_%s.json", time.Now().Format("20060102_150405"))
}
