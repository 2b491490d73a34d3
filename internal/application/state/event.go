package state

// Hook identifies which controller call an Event announces
type Hook int

const (
	HookLoad Hook = iota
	HookEnter
	HookUpdate
	HookExit
)

// String returns the short name used in journals
func (h Hook) String() string {
	switch h {
	case HookLoad:
		return "load"
	case HookEnter:
		return "enter"
	case HookUpdate:
		return "update"
	case HookExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Event is emitted right before the controller calls a hook or the loader.
type Event struct {
	Tick  uint64 // Tick count at the time of the call (0 before the first tick)
	Hook  Hook
	State string // Label of the state the call concerns
	Scene string // Scene name, set for HookLoad only
}

// Listener receives controller events. It must not call back into the controller.
type Listener func(Event)
