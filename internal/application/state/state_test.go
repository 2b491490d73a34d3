package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_String(t *testing.T) {
	tests := []struct {
		phase    Phase
		expected string
	}{
		{PhaseUnset, "Unset"},
		{PhasePending, "Pending"},
		{PhaseEntered, "Entered"},
		{Phase(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phase.String())
		})
	}
}

func TestPhaseConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, Phase(0), PhaseUnset)
	assert.Equal(t, Phase(1), PhasePending)
	assert.Equal(t, Phase(2), PhaseEntered)
}

func TestHook_String(t *testing.T) {
	assert.Equal(t, "load", HookLoad.String())
	assert.Equal(t, "enter", HookEnter.String())
	assert.Equal(t, "update", HookUpdate.String())
	assert.Equal(t, "exit", HookExit.String())
	assert.Equal(t, "unknown", Hook(42).String())
}

func TestBase_NoOpHooks(t *testing.T) {
	b := Base{Label: "Idle"}

	assert.Equal(t, "Idle", b.Name())
	assert.NoError(t, b.OnEnter())
	assert.NoError(t, b.OnUpdate())
	assert.NoError(t, b.OnExit())
}

func TestLoaderFunc(t *testing.T) {
	var got string
	l := LoaderFunc(func(name string) error {
		got = name
		return nil
	})

	assert.NoError(t, l.Load("Arena"))
	assert.Equal(t, "Arena", got)
}
