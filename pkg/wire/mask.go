package wire

// Icon mask layout.
const (
	// NumIcons is the number of binary icon bit positions.
	NumIcons = 15

	// BaseMask covers the fifteen binary icon bits.
	BaseMask IconMask = 1<<NumIcons - 1

	// VolumeShift is the bit offset of the volume level field.
	VolumeShift = 15

	// VolumeMax is the highest volume level the display renders.
	VolumeMax = 12
)

// IconMask is the combined state of all indicator lights: bits 0-14
// are the binary icons, bits 15-18 encode the volume bar level.
type IconMask uint32

// WithIcon returns the mask with the icon bit at pos set or cleared.
// Positions outside 0-14 leave the mask unchanged; the volume field is
// never touched.
func (m IconMask) WithIcon(pos int, on bool) IconMask {
	if pos < 0 || pos >= NumIcons {
		return m
	}
	if on {
		return m | 1<<pos
	}
	return m &^ (1 << pos)
}

// IconOn reports whether the icon bit at pos is set.
func (m IconMask) IconOn(pos int) bool {
	if pos < 0 || pos >= NumIcons {
		return false
	}
	return m&(1<<pos) != 0
}

// WithVolume returns the mask with the volume field replaced by level.
// The level is clamped to 0-VolumeMax so an oversized value can never
// spill into the icon bits.
func (m IconMask) WithVolume(level int) IconMask {
	if level < 0 {
		level = 0
	}
	if level > VolumeMax {
		level = VolumeMax
	}
	return m&BaseMask | IconMask(level)<<VolumeShift
}

// Volume returns the current volume level field.
func (m IconMask) Volume() int {
	return int(m >> VolumeShift)
}
