// Package driver holds the registry shared by each of our pluggable
// device families: console input, console output, and audio.
//
// Drivers register a constructor under a name from an init function,
// and the user picks one by name at runtime.
package driver

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknown is returned when a driver is requested which has not
// been registered.
var ErrUnknown = errors.New("unknown driver")

// Registry maps names to constructors for drivers of type T.
type Registry[T any] struct {

	// kind describes the drivers, for error messages.
	kind string

	// hidden are drivers which exist for testing, and which are not
	// reported by Names.
	hidden map[string]bool

	ctors map[string]func() T
}

// NewRegistry returns an empty registry.
func NewRegistry[T any](kind string, hidden ...string) *Registry[T] {
	r := &Registry[T]{
		kind:   kind,
		hidden: make(map[string]bool),
		ctors:  make(map[string]func() T),
	}
	for _, name := range hidden {
		r.hidden[strings.ToLower(name)] = true
	}
	return r
}

// Register makes a driver available, by name.  Names are not case
// sensitive, and registering a name twice replaces the first.
func (r *Registry[T]) Register(name string, ctor func() T) {
	r.ctors[strings.ToLower(name)] = ctor
}

// New creates a new instance of the named driver.
func (r *Registry[T]) New(name string) (T, error) {
	ctor, ok := r.ctors[strings.ToLower(name)]
	if !ok {
		var zero T
		return zero, fmt.Errorf("failed to lookup %s driver by name '%s': %w", r.kind, name, ErrUnknown)
	}
	return ctor(), nil
}

// Names returns the registered drivers, sorted, without the hidden
// ones.
func (r *Registry[T]) Names() []string {
	names := []string{}
	for _, name := range slices.Sorted(maps.Keys(r.ctors)) {
		if !r.hidden[name] {
			names = append(names, name)
		}
	}
	return names
}
