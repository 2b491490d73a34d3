package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats_ZeroValue(t *testing.T) {
	var s Stats

	assert.Equal(t, 0, s.Loads("StartScene"))
	assert.Empty(t, s.History())
	assert.Equal(t, 0, s.BattleFrames())

	s.RecordLoad("StartScene")
	assert.Equal(t, 1, s.Loads("StartScene"))
}

func TestStats_RecordLoad(t *testing.T) {
	s := &Stats{}
	s.Awake()

	s.RecordLoad("StartScene")
	s.RecordLoad("MainMenuScene")
	s.RecordLoad("StartScene")

	assert.Equal(t, 2, s.Loads("StartScene"))
	assert.Equal(t, 1, s.Loads("MainMenuScene"))
	assert.Equal(t, 0, s.Loads("GameBattleScene"))
	assert.Equal(t, []string{"StartScene", "MainMenuScene", "StartScene"}, s.History())
}

func TestStats_HistoryIsCopy(t *testing.T) {
	s := &Stats{}
	s.RecordLoad("A")

	h := s.History()
	h[0] = "B"

	assert.Equal(t, []string{"A"}, s.History())
}

func TestStats_BattleFrames(t *testing.T) {
	s := &Stats{}
	for i := 0; i < 3; i++ {
		s.AddBattleFrame()
	}

	assert.Equal(t, 3, s.BattleFrames())
}
