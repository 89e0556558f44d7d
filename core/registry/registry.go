// Package registry is a small named-factory container with unit-of-work scopes.
//
// Each database engine registers exactly one factory under its provider name. A Scope
// resolves a name at most once and hands out the same instance for the rest of the unit
// of work (one HTTP request, one CLI invocation).
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	// ErrNotRegistered is returned when resolving a name nobody registered.
	ErrNotRegistered = errors.New("not registered")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("already registered")
)

// Factory builds one instance for a scope.
type Factory[T any] func() (T, error)

// Registry maps names to factories.
type Registry[T any] struct {
	mu        sync.RWMutex
	factories map[string]Factory[T]
}

// New creates an empty Registry.
func New[T any]() *Registry[T] {
	return &Registry[T]{factories: make(map[string]Factory[T])}
}

// Register adds a factory under name.
func (r *Registry[T]) Register(name string, f Factory[T]) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[name]; ok {
		return fmt.Errorf("%s: %w", name, ErrDuplicate)
	}
	r.factories[name] = f
	return nil
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry[T]) factory(name string) (Factory[T], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

// NewScope starts a unit of work.
func (r *Registry[T]) NewScope() *Scope[T] {
	return &Scope[T]{registry: r, instances: make(map[string]T)}
}

// Scope caches resolved instances for one unit of work.
type Scope[T any] struct {
	registry  *Registry[T]
	mu        sync.Mutex
	instances map[string]T
}

// Resolve returns the scope's instance for name, building it on first use.
func (s *Scope[T]) Resolve(name string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if inst, ok := s.instances[name]; ok {
		return inst, nil
	}

	var zero T
	f, ok := s.registry.factory(name)
	if !ok {
		return zero, fmt.Errorf("%s: %w", name, ErrNotRegistered)
	}

	inst, err := f()
	if err != nil {
		return zero, fmt.Errorf("resolve %s: %w", name, err)
	}
	s.instances[name] = inst
	return inst, nil
}
