// Package ecs is the host object world: entities that carry components keyed
// by their dynamic type. It backs the singleton registry's "find existing" and
// "create and attach" lookups.
package ecs

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"sync"
)

var (
	// ErrNoEntity is returned when attaching to an entity that does not exist
	ErrNoEntity = errors.New("ecs: no such entity")

	// ErrDuplicateComponent is returned when an entity already has a component of that type
	ErrDuplicateComponent = errors.New("ecs: duplicate component")

	// ErrNotInstantiable is returned when CreateAndAttach cannot build a value of the type
	ErrNotInstantiable = errors.New("ecs: type is not instantiable")
)

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// Awaker is implemented by components that need setup right after they are
// created by CreateAndAttach.
type Awaker interface {
	Awake()
}

// World holds all entities and their components. It is safe for
// concurrent use; Awake hooks run outside the lock.
type World struct {
	mu     sync.RWMutex
	nextID EntityID

	names      map[EntityID]string
	components map[EntityID]map[reflect.Type]any
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:     1, // 0 is "nil"
		names:      make(map[EntityID]string),
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	return w.NewNamedEntity("")
}

// NewNamedEntity returns a new unique entity ID with a display name
func (w *World) NewNamedEntity(name string) EntityID {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.newEntity(name)
}

func (w *World) newEntity(name string) EntityID {
	id := w.nextID
	w.nextID++

	w.names[id] = name
	w.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity removes an entity and all of its components
func (w *World) DestroyEntity(id EntityID) {
	w.mu.Lock()
	defer w.mu.Unlock()

	delete(w.names, id)
	delete(w.components, id)
}

// Exists checks if an entity is alive
func (w *World) Exists(id EntityID) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	_, ok := w.components[id]
	return ok
}

// Count returns the number of live entities
func (w *World) Count() int {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return len(w.components)
}

// Name returns the entity's display name
func (w *World) Name(id EntityID) string {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.names[id]
}

// Attach adds a component to an entity. An entity holds at most one
// component per dynamic type.
func (w *World) Attach(id EntityID, component any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.attach(id, component)
}

func (w *World) attach(id EntityID, component any) error {
	comps, ok := w.components[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoEntity, id)
	}
	if component == nil {
		return fmt.Errorf("ecs: nil component for entity %d", id)
	}

	t := reflect.TypeOf(component)
	if _, dup := comps[t]; dup {
		return fmt.Errorf("%w: %s on entity %d", ErrDuplicateComponent, t, id)
	}
	comps[t] = component
	return nil
}

// Component returns the entity's component of exactly type t
func (w *World) Component(id EntityID, t reflect.Type) (any, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	c, ok := w.components[id][t]
	return c, ok
}

// FindExisting returns the first component of type t, scanning entities in
// creation order. Interface types match any component that implements them.
func (w *World) FindExisting(t reflect.Type) (any, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, id := range slices.Sorted(maps.Keys(w.components)) {
		comps := w.components[id]
		if c, ok := comps[t]; ok {
			return c, true
		}
		if t.Kind() != reflect.Interface {
			continue
		}
		for _, ct := range slices.SortedFunc(maps.Keys(comps), compareTypes) {
			if ct.Implements(t) {
				return comps[ct], true
			}
		}
	}
	return nil, false
}

// CreateAndAttach creates an entity named after t, attaches a new value of t
// and returns it. Pointer types get a fresh zero value of their element.
func (w *World) CreateAndAttach(t reflect.Type) (any, error) {
	var v any
	switch {
	case t == nil || t.Kind() == reflect.Interface:
		return nil, fmt.Errorf("%w: %v", ErrNotInstantiable, t)
	case t.Kind() == reflect.Pointer:
		v = reflect.New(t.Elem()).Interface()
	default:
		v = reflect.New(t).Elem().Interface()
	}

	w.mu.Lock()
	id := w.newEntity(t.String())
	err := w.attach(id, v)
	if err != nil {
		delete(w.names, id)
		delete(w.components, id)
	}
	w.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if a, ok := v.(Awaker); ok {
		a.Awake()
	}
	return v, nil
}

func compareTypes(a, b reflect.Type) int {
	return cmp.Compare(a.String(), b.String())
}
