// Package singleton provides a registry that hands out at most one shared
// instance per type, created lazily through host collaborators.
//
// The registry is an explicit value passed to whoever needs it; there is no
// package-level instance.
package singleton

import (
	"fmt"
	"reflect"
	"strconv"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Finder looks up a live instance of the given type in the host environment.
type Finder interface {
	FindExisting(t reflect.Type) (any, bool)
}

// Factory creates a new host-managed container, attaches a new instance of
// the given type to it and returns that instance.
type Factory interface {
	CreateAndAttach(t reflect.Type) (any, error)
}

// Registry caches one instance per type. It is safe for concurrent use.
type Registry struct {
	mu        sync.Mutex
	instances map[reflect.Type]any
	keys      map[reflect.Type]string
	flight    singleflight.Group

	finder  Finder
	factory Factory
	log     zerolog.Logger
}

// Option configures a Registry
type Option func(*Registry)

// WithLogger sets the logger used to trace lookups
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// NewRegistry creates an empty registry. Either collaborator may be nil.
func NewRegistry(finder Finder, factory Factory, opts ...Option) *Registry {
	r := &Registry{
		instances: make(map[reflect.Type]any),
		keys:      make(map[reflect.Type]string),
		finder:    finder,
		factory:   factory,
		log:       zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the shared instance of T.
//
// A cached instance is returned without consulting the host. On a miss the
// finder is asked for a live instance first, then the factory creates one.
// Factory errors are returned unchanged. If neither collaborator yields a
// usable T, Get fails with ErrInstanceUnavailable.
//
// Get is safe for concurrent use. Callers that miss on the same type at the
// same time wait for a single lookup, so the factory runs at most once per
// cached entry. A component must not resolve its own type from Awake.
func Get[T any](r *Registry) (T, error) {
	var zero T
	t := reflect.TypeFor[T]()

	if v, ok := r.cached(t); ok {
		return v.(T), nil
	}

	// Concurrent misses for the same type share one lookup. Collaborators
	// run unlocked: a freshly attached component may resolve other
	// singletons while it wakes up.
	v, err, _ := r.flight.Do(r.flightKey(t), func() (any, error) {
		if v, ok := r.cached(t); ok {
			return v, nil
		}

		if r.finder != nil {
			if v, ok := r.finder.FindExisting(t); ok && !isNil(v) {
				if _, ok := v.(T); ok {
					r.log.Debug().Stringer("type", t).Msg("singleton found")
					return r.store(t, v), nil
				}
			}
		}

		if r.factory == nil {
			return nil, fmt.Errorf("%w: %s (no factory)", ErrInstanceUnavailable, t)
		}

		v, err := r.factory.CreateAndAttach(t)
		if err != nil {
			return nil, err
		}
		if isNil(v) {
			return nil, fmt.Errorf("%w: %s (factory returned nil)", ErrInstanceUnavailable, t)
		}
		if _, ok := v.(T); !ok {
			return nil, fmt.Errorf("%w: %s (factory returned %T)", ErrInstanceUnavailable, t, v)
		}

		r.log.Debug().Stringer("type", t).Msg("singleton created")
		return r.store(t, v), nil
	})
	if err != nil {
		return zero, err
	}
	return v.(T), nil
}

// MustGet works like Get but panics on failure.
// Use it for wiring that must succeed before the game loop starts.
func MustGet[T any](r *Registry) T {
	v, err := Get[T](r)
	if err != nil {
		panic(fmt.Sprintf("singleton: %v", err))
	}
	return v
}

// Reset drops every cached instance. Host objects are left alone.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.instances)
}

// Len returns the number of cached instances
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.instances)
}

func (r *Registry) cached(t reflect.Type) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.instances[t]
	return v, ok
}

// flightKey returns a key unique to t. Type names alone can collide across
// packages.
func (r *Registry) flightKey(t reflect.Type) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	k, ok := r.keys[t]
	if !ok {
		k = strconv.Itoa(len(r.keys)) + ":" + t.String()
		r.keys[t] = k
	}
	return k
}

// store caches v unless another caller got there first, and returns the winner
func (r *Registry) store(t reflect.Type, v any) any {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.instances[t]; ok {
		return existing
	}
	r.instances[t] = v
	return v
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
