// Package session holds process-wide game session data.
package session

// Stats is a single-function manager that tracks scene loads and battle
// progress. The host keeps one instance, resolved through the singleton
// registry. The zero value is ready to use.
type Stats struct {
	loads        map[string]int
	history      []string
	battleFrames int
}

// Awake prepares the internal maps. Called by the host when it attaches Stats.
func (s *Stats) Awake() {
	if s.loads == nil {
		s.loads = make(map[string]int)
	}
}

// RecordLoad counts a load of the named scene
func (s *Stats) RecordLoad(name string) {
	s.Awake()
	s.loads[name]++
	s.history = append(s.history, name)
}

// Loads returns how many times the named scene was loaded
func (s *Stats) Loads(name string) int {
	return s.loads[name]
}

// History returns the loaded scene names in order
func (s *Stats) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// AddBattleFrame counts one frame spent in battle
func (s *Stats) AddBattleFrame() {
	s.battleFrames++
}

// BattleFrames returns the number of frames spent in battle
func (s *Stats) BattleFrames() int {
	return s.battleFrames
}
