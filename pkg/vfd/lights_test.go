package vfd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuttle-vfd/vfd-go/pkg/model"
	"github.com/shuttle-vfd/vfd-go/pkg/registry"
	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

func TestRegisterLights(t *testing.T) {
	d, _ := newTestDevice(t)
	reg := registry.NewInMemory()

	require.NoError(t, d.RegisterLights(reg))
	assert.Equal(t, 16, reg.Len())

	tv, ok := reg.Lookup("tv")
	require.True(t, ok)
	assert.Equal(t, 1, tv.MaxBrightness)

	volume, ok := reg.Lookup("volume")
	require.True(t, ok)
	assert.Equal(t, wire.VolumeMax, volume.MaxBrightness)
}

func TestRegisteredSettersDriveDevice(t *testing.T) {
	d, sender := newTestDevice(t)
	reg := registry.NewInMemory()
	require.NoError(t, d.RegisterLights(reg))
	sender.reset()

	mute, ok := reg.Lookup("mute")
	require.True(t, ok)
	require.NoError(t, mute.BrightnessSet(1))
	assert.True(t, d.Mask().IconOn(model.IconMute.Bit()))

	volume, ok := reg.Lookup("volume")
	require.True(t, ok)
	require.NoError(t, volume.BrightnessSet(7))
	assert.Equal(t, 7, d.Mask().Volume())

	// Framework pre-validation is assumed but not trusted: an
	// out-of-range level through the registry path clamps too.
	require.NoError(t, volume.BrightnessSet(100))
	assert.Equal(t, wire.VolumeMax, d.Mask().Volume())

	sent := sender.sent()
	require.Len(t, sent, 3)
	for _, p := range sent {
		assert.Equal(t, wire.CmdIcons, p.Command())
	}
}

func TestRegisterLightsUnwindsOnFailure(t *testing.T) {
	d, _ := newTestDevice(t)
	reg := registry.NewInMemory()

	// Occupy one of the names the device will claim.
	_, err := reg.Register(registry.LightClass{
		Name:          "stop",
		MaxBrightness: 1,
		BrightnessSet: func(int) error { return nil },
	})
	require.NoError(t, err)

	err = d.RegisterLights(reg)
	require.ErrorIs(t, err, registry.ErrDuplicateName)

	// All-or-nothing: only the pre-existing registration remains.
	assert.Equal(t, []string{"stop"}, reg.Names())
}

func TestCloseDeregistersBeforeShutdown(t *testing.T) {
	d, _ := newTestDevice(t)
	reg := registry.NewInMemory()
	require.NoError(t, d.RegisterLights(reg))

	tv, ok := reg.Lookup("tv")
	require.True(t, ok)

	require.NoError(t, d.Close())
	assert.Equal(t, 0, reg.Len(), "Close must deregister every light")

	// A callback retained from before the deregistration hits a closed
	// device, never a freed one.
	assert.ErrorIs(t, tv.BrightnessSet(1), ErrClosed)
}

func TestDeregisterLights(t *testing.T) {
	d, _ := newTestDevice(t)
	reg := registry.NewInMemory()

	d.DeregisterLights() // no-op without registrations

	require.NoError(t, d.RegisterLights(reg))
	d.DeregisterLights()
	assert.Equal(t, 0, reg.Len())

	// The device is still usable and can re-register.
	require.NoError(t, d.SetIcon(model.IconCD, true))
	require.NoError(t, d.RegisterLights(reg))
	assert.Equal(t, 16, reg.Len())
}
