package state

import (
	"errors"
	"fmt"
)

// ErrInvalidStateTransition is returned when SetState is given a nil state.
var ErrInvalidStateTransition = errors.New("state: invalid state transition: nil state")

// ErrTransitionInProgress is returned when SetState is called from the
// outgoing state's OnExit.
var ErrTransitionInProgress = errors.New("state: transition in progress: SetState called from OnExit")

// HookError is returned when a state's OnEnter, OnUpdate or OnExit fails.
// It wraps the original error, so errors.Is and errors.As see through it.
type HookError struct {
	Hook  Hook
	State string
	Err   error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("state: %s hook of %q failed: %v", e.Hook, e.State, e.Err)
}

// Unwrap returns the hook's own error
func (e *HookError) Unwrap() error { return e.Err }
