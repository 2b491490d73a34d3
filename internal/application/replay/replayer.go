package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// Mismatch describes the first entry where two journals diverge.
// A zero Entry on either side means that journal ended early.
type Mismatch struct {
	Index int
	Want  Entry
	Got   Entry
}

func (m *Mismatch) Error() string {
	return fmt.Sprintf("journal diverges at entry %d: want %+v, got %+v", m.Index, m.Want, m.Got)
}

// Replayer steps through recorded entries
type Replayer struct {
	data Journal
	pos  int
}

// NewReplayer creates a new replayer from journal data
func NewReplayer(data Journal) *Replayer {
	return &Replayer{data: data}
}

// Load loads a journal from a file
func Load(filename string) (*Journal, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data Journal
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode journal: %w", err)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported journal version %q", data.Version)
	}

	return &data, nil
}

// Next returns the next entry and advances
func (r *Replayer) Next() (Entry, bool) {
	if r.pos >= len(r.data.Entries) {
		return Entry{}, false
	}
	e := r.data.Entries[r.pos]
	r.pos++
	return e, true
}

// Position returns the index of the next entry
func (r *Replayer) Position() int {
	return r.pos
}

// Total returns the total number of entries
func (r *Replayer) Total() int {
	return len(r.data.Entries)
}

// Compare checks got against want entry by entry. Session ids and start
// times are ignored.
func Compare(want, got Journal) error {
	wr, gr := NewReplayer(want), NewReplayer(got)
	for {
		idx := wr.Position()
		w, wok := wr.Next()
		g, gok := gr.Next()
		if !wok && !gok {
			return nil
		}
		if w != g {
			return &Mismatch{Index: idx, Want: w, Got: g}
		}
	}
}
