// Package state provides the finite-state controller that drives scene states.
//
// A Controller holds at most one active State. SetState swaps the active state
// (loading the target scene first when one is named), and Tick is called once
// per frame by the host loop: the first Tick after a swap runs OnEnter, every
// Tick runs OnUpdate.
package state

// Phase is the activation phase of a Controller
type Phase int

const (
	// PhaseUnset means no state has been set yet
	PhaseUnset Phase = iota
	// PhasePending means a state is active but OnEnter has not run
	PhasePending
	// PhaseEntered means the active state has been entered
	PhaseEntered
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseUnset:
		return "Unset"
	case PhasePending:
		return "Pending"
	case PhaseEntered:
		return "Entered"
	default:
		return "Unknown"
	}
}

// State is a named behavior unit with enter/update/exit hooks.
//
// A state may keep a reference to the controller that runs it and call
// SetState from its hooks. That reference is lookup-only: the controller owns
// the state, never the other way around.
type State interface {
	// Name returns the label used in logs and journals.
	Name() string

	// OnEnter runs once, on the first tick after the state is activated.
	OnEnter() error

	// OnUpdate runs on every tick while the state is active.
	OnUpdate() error

	// OnExit runs when the state is replaced.
	OnExit() error
}

// Base provides a label and no-op hooks. Embed it and override what you need.
type Base struct {
	Label string
}

// Name returns the state label
func (b Base) Name() string { return b.Label }

// OnEnter does nothing
func (Base) OnEnter() error { return nil }

// OnUpdate does nothing
func (Base) OnUpdate() error { return nil }

// OnExit does nothing
func (Base) OnExit() error { return nil }

// Loader switches the host environment to the named scene.
// Failures belong to the loader and are returned to the SetState caller as is.
type Loader interface {
	Load(name string) error
}

// LoaderFunc adapts a function to the Loader interface
type LoaderFunc func(name string) error

// Load calls f(name)
func (f LoaderFunc) Load(name string) error { return f(name) }
