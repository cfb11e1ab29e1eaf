// Package registry models the external registration boundary for the
// display's indicator lights. The device registers one class per light
// at attach time and must deregister all of them before it is released,
// so no late brightness callback can reach a dead device.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Registry errors.
var (
	ErrInvalidClass  = errors.New("registry: light class needs a name and a setter")
	ErrDuplicateName = errors.New("registry: light name already registered")
	ErrUnknownHandle = errors.New("registry: unknown handle")
)

// LightClass describes one registerable light.
type LightClass struct {
	// Name is the light's registered name, unique within a registry.
	Name string

	// MaxBrightness is the highest level BrightnessSet accepts:
	// 1 for an on/off icon, 12 for the volume bar. Front-ends are
	// expected to validate against it, but the device clamps anyway.
	MaxBrightness int

	// BrightnessSet applies a level to the light.
	BrightnessSet func(level int) error
}

// Registry is the registration contract the device calls into.
type Registry interface {
	// Register adds a light class and returns its handle.
	Register(class LightClass) (handle string, err error)

	// Deregister removes a previously registered class.
	Deregister(handle string) error
}

// InMemory is a process-local Registry for front-ends and tests.
// It is safe for concurrent use.
type InMemory struct {
	mu       sync.Mutex
	byHandle map[string]LightClass
	byName   map[string]string // name -> handle
}

// NewInMemory creates an empty registry.
func NewInMemory() *InMemory {
	return &InMemory{
		byHandle: make(map[string]LightClass),
		byName:   make(map[string]string),
	}
}

// Register adds a light class under a fresh handle.
func (r *InMemory) Register(class LightClass) (string, error) {
	if class.Name == "" || class.BrightnessSet == nil {
		return "", ErrInvalidClass
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[class.Name]; exists {
		return "", fmt.Errorf("%w: %q", ErrDuplicateName, class.Name)
	}

	handle := uuid.New().String()
	r.byHandle[handle] = class
	r.byName[class.Name] = handle
	return handle, nil
}

// Deregister removes the class registered under handle.
func (r *InMemory) Deregister(handle string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	class, exists := r.byHandle[handle]
	if !exists {
		return fmt.Errorf("%w: %q", ErrUnknownHandle, handle)
	}
	delete(r.byHandle, handle)
	delete(r.byName, class.Name)
	return nil
}

// Lookup returns the class registered under name.
func (r *InMemory) Lookup(name string) (LightClass, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle, exists := r.byName[name]
	if !exists {
		return LightClass{}, false
	}
	return r.byHandle[handle], true
}

// Names returns all registered light names, sorted.
func (r *InMemory) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered classes.
func (r *InMemory) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byHandle)
}

// Compile-time interface satisfaction check.
var _ Registry = (*InMemory)(nil)
