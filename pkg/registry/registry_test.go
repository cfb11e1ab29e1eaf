package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopSet(int) error { return nil }

func TestRegisterAndLookup(t *testing.T) {
	r := NewInMemory()

	h1, err := r.Register(LightClass{Name: "tv", MaxBrightness: 1, BrightnessSet: noopSet})
	require.NoError(t, err)
	h2, err := r.Register(LightClass{Name: "volume", MaxBrightness: 12, BrightnessSet: noopSet})
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)

	class, ok := r.Lookup("volume")
	require.True(t, ok)
	assert.Equal(t, 12, class.MaxBrightness)

	_, ok = r.Lookup("cd")
	assert.False(t, ok)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []string{"tv", "volume"}, r.Names())
}

func TestRegisterValidation(t *testing.T) {
	r := NewInMemory()

	_, err := r.Register(LightClass{MaxBrightness: 1, BrightnessSet: noopSet})
	assert.ErrorIs(t, err, ErrInvalidClass)

	_, err = r.Register(LightClass{Name: "tv", MaxBrightness: 1})
	assert.ErrorIs(t, err, ErrInvalidClass)

	_, err = r.Register(LightClass{Name: "tv", MaxBrightness: 1, BrightnessSet: noopSet})
	require.NoError(t, err)
	_, err = r.Register(LightClass{Name: "tv", MaxBrightness: 1, BrightnessSet: noopSet})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestDeregister(t *testing.T) {
	r := NewInMemory()

	handle, err := r.Register(LightClass{Name: "mute", MaxBrightness: 1, BrightnessSet: noopSet})
	require.NoError(t, err)

	require.NoError(t, r.Deregister(handle))
	assert.Equal(t, 0, r.Len())

	_, ok := r.Lookup("mute")
	assert.False(t, ok)

	assert.ErrorIs(t, r.Deregister(handle), ErrUnknownHandle)

	// The name is free again after deregistration.
	_, err = r.Register(LightClass{Name: "mute", MaxBrightness: 1, BrightnessSet: noopSet})
	assert.NoError(t, err)
}
