package model

import (
	"errors"
	"fmt"

	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

// ErrUnknownIcon is returned when a light name or value does not match
// any of the sixteen indicators.
var ErrUnknownIcon = errors.New("unknown icon")

// Icon identifies one of the sixteen indicator lights. Values 0-14 are
// the binary icons in wire bit order; IconVolume is the multi-level
// volume bar encoded above the icon bits.
type Icon int

const (
	IconTV Icon = iota
	IconCD
	IconMusic
	IconRadio
	IconClock
	IconPause
	IconPlay
	IconRecord
	IconRewind
	IconCamera
	IconMute
	IconRepeat
	IconReverse
	IconFastForward
	IconStop
	IconVolume
)

// iconNames in wire bit order. These are the names registered with the
// external light registry, so they are part of the public surface.
var iconNames = [...]string{
	"tv", "cd", "music", "radio", "clock", "pause", "play", "record",
	"rewind", "camera", "mute", "repeat", "reverse", "fastforward", "stop",
	"volume",
}

// String returns the light's registered name.
func (i Icon) String() string {
	if !i.Valid() {
		return fmt.Sprintf("icon(%d)", int(i))
	}
	return iconNames[i]
}

// Valid reports whether i names one of the sixteen lights.
func (i Icon) Valid() bool {
	return i >= IconTV && i <= IconVolume
}

// Bit returns the icon's position in the wire mask, or -1 for
// IconVolume, which has no fixed bit.
func (i Icon) Bit() int {
	if i == IconVolume {
		return -1
	}
	return int(i)
}

// MaxBrightness returns the light's brightness ceiling: 1 for the
// binary icons, wire.VolumeMax for the volume bar.
func (i Icon) MaxBrightness() int {
	if i == IconVolume {
		return wire.VolumeMax
	}
	return 1
}

// ParseIcon resolves a registered light name to its Icon.
func ParseIcon(name string) (Icon, error) {
	for i, n := range iconNames {
		if n == name {
			return Icon(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIcon, name)
}

// Icons returns all sixteen lights in registration order: the binary
// icons by bit position, then the volume bar.
func Icons() []Icon {
	icons := make([]Icon, 0, len(iconNames))
	for i := range iconNames {
		icons = append(icons, Icon(i))
	}
	return icons
}
