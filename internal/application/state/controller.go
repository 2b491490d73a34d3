package state

import (
	"reflect"

	"github.com/rs/zerolog"
)

// Controller holds the active State and drives it once per tick.
//
// Controller is not safe for concurrent use. SetState and Tick are expected to
// be called from the host's update loop, one after another.
type Controller struct {
	current State
	entered bool
	gen     uint64 // bumped on every successful SetState
	exiting bool   // set while the outgoing state's OnExit runs
	ticks   uint64

	loader    Loader
	log       zerolog.Logger
	listeners []Listener
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the logger used for transition and hook tracing
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithListener registers a listener for hook events. Nil listeners are ignored.
func WithListener(fn Listener) Option {
	return func(c *Controller) {
		if fn != nil {
			c.listeners = append(c.listeners, fn)
		}
	}
}

// NewController creates an unset controller.
// A nil loader makes SetState ignore scene names.
func NewController(loader Loader, opts ...Option) *Controller {
	c := &Controller{
		loader: loader,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetState replaces the active state.
//
// When scene is not empty the loader is called first; if it fails, the error
// is returned unchanged and the controller is left as it was. Otherwise the
// outgoing state's OnExit runs and next becomes the active state. next.OnEnter
// is deferred to the following Tick.
//
// An OnExit failure does not prevent the swap; it is reported as a *HookError
// after next has been installed. OnExit itself cannot redirect the transition:
// SetState called from it fails with ErrTransitionInProgress.
func (c *Controller) SetState(next State, scene string) error {
	if isNil(next) {
		return ErrInvalidStateTransition
	}
	if c.exiting {
		return ErrTransitionInProgress
	}

	if scene != "" && c.loader != nil {
		c.emit(HookLoad, next.Name(), scene)
		if err := c.loader.Load(scene); err != nil {
			return err
		}
	}

	c.entered = false

	var exitErr error
	prev := c.current
	if prev != nil {
		c.emit(HookExit, prev.Name(), "")
		c.exiting = true
		err := prev.OnExit()
		c.exiting = false
		if err != nil {
			exitErr = &HookError{Hook: HookExit, State: prev.Name(), Err: err}
		}
	}

	c.current = next
	c.gen++

	c.log.Debug().
		Str("from", nameOf(prev)).
		Str("to", next.Name()).
		Str("scene", scene).
		Msg("state set")

	return exitErr
}

// Tick advances the active state by one frame.
// With no active state it does nothing.
func (c *Controller) Tick() error {
	c.ticks++

	s := c.current
	if s == nil {
		return nil
	}

	if !c.entered {
		c.entered = true
		gen := c.gen

		c.emit(HookEnter, s.Name(), "")
		if err := s.OnEnter(); err != nil {
			return &HookError{Hook: HookEnter, State: s.Name(), Err: err}
		}

		// OnEnter handed control to a successor; it is entered next tick.
		if gen != c.gen {
			return nil
		}
	}

	c.emit(HookUpdate, s.Name(), "")
	if err := s.OnUpdate(); err != nil {
		return &HookError{Hook: HookUpdate, State: s.Name(), Err: err}
	}

	return nil
}

// Current returns the active state, or nil before the first SetState
func (c *Controller) Current() State {
	return c.current
}

// Phase reports whether a state is set and whether it has been entered
func (c *Controller) Phase() Phase {
	switch {
	case c.current == nil:
		return PhaseUnset
	case !c.entered:
		return PhasePending
	default:
		return PhaseEntered
	}
}

// Ticks returns how many times Tick has been called
func (c *Controller) Ticks() uint64 {
	return c.ticks
}

func (c *Controller) emit(h Hook, stateName, scene string) {
	c.log.Debug().
		Uint64("tick", c.ticks).
		Stringer("hook", h).
		Str("state", stateName).
		Str("scene", scene).
		Msg("hook")

	if len(c.listeners) == 0 {
		return
	}
	ev := Event{Tick: c.ticks, Hook: h, State: stateName, Scene: scene}
	for _, fn := range c.listeners {
		fn(ev)
	}
}

func nameOf(s State) string {
	if s == nil {
		return ""
	}
	return s.Name()
}

// isNil reports whether s is nil or an interface holding a nil pointer
func isNil(s State) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
