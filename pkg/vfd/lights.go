package vfd

import (
	"fmt"
	"sync"

	"github.com/shuttle-vfd/vfd-go/pkg/model"
	"github.com/shuttle-vfd/vfd-go/pkg/registry"
)

// lightSet tracks the device's registrations with the external light
// registry and the device's lifecycle state.
type lightSet struct {
	dev *Device

	mu       sync.Mutex
	reg      registry.Registry
	handles  []string
	isClosed bool
}

func newLightSet(dev *Device) *lightSet {
	return &lightSet{dev: dev}
}

// RegisterLights registers all sixteen light classes with reg. Each
// class's setter calls back into this device, which clamps the level
// to the light's domain. Registration is all-or-nothing: on failure,
// classes registered so far are deregistered again before the error is
// returned.
func (d *Device) RegisterLights(reg registry.Registry) error {
	return d.lights.register(reg)
}

// DeregisterLights removes all of the device's registrations. Safe to
// call when nothing is registered.
func (d *Device) DeregisterLights() {
	d.lights.deregister()
}

func (ls *lightSet) register(reg registry.Registry) error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if ls.isClosed {
		return ErrClosed
	}

	for _, icon := range model.Icons() {
		icon := icon
		handle, err := reg.Register(registry.LightClass{
			Name:          icon.String(),
			MaxBrightness: icon.MaxBrightness(),
			BrightnessSet: func(level int) error {
				return ls.dev.SetBrightness(icon, level)
			},
		})
		if err != nil {
			ls.deregisterLocked(reg)
			return fmt.Errorf("register light %q: %w", icon.String(), err)
		}
		ls.handles = append(ls.handles, handle)
	}

	ls.reg = reg
	return nil
}

func (ls *lightSet) deregister() {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	ls.deregisterLocked(ls.reg)
}

func (ls *lightSet) deregisterLocked(reg registry.Registry) {
	if reg == nil {
		ls.handles = nil
		return
	}
	for _, handle := range ls.handles {
		if err := reg.Deregister(handle); err != nil {
			ls.dev.logger.Warn("light deregistration failed",
				"device_id", ls.dev.id, "handle", handle, "err", err)
		}
	}
	ls.handles = nil
	ls.reg = nil
}

func (ls *lightSet) close() error {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	if ls.isClosed {
		return nil
	}
	// Deregister before marking closed: a setter callback arriving in
	// this window still finds a live device instead of a dangling one.
	ls.deregisterLocked(ls.reg)
	ls.isClosed = true
	return nil
}

func (ls *lightSet) closed() bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.isClosed
}
