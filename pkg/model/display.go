package model

import "github.com/shuttle-vfd/vfd-go/pkg/wire"

// DisplayState holds the last icon mask and text line submitted for
// transmission. The protocol has no acknowledgment channel, so this is
// the driver's view of the display, not a confirmation of what the
// hardware rendered.
//
// The zero value is a cleared display.
type DisplayState struct {
	mask wire.IconMask
	text [wire.TextWidth]byte
}

// SetIconBit sets or clears one binary icon bit. The volume field is
// never touched.
func (s *DisplayState) SetIconBit(pos int, on bool) {
	s.mask = s.mask.WithIcon(pos, on)
}

// SetVolume replaces the volume level, clamped to 0-wire.VolumeMax.
func (s *DisplayState) SetVolume(level int) {
	s.mask = s.mask.WithVolume(level)
}

// Mask returns the combined icon mask.
func (s *DisplayState) Mask() wire.IconMask {
	return s.mask
}

// ClearMask drops all icon bits and the volume level.
func (s *DisplayState) ClearMask() {
	s.mask = 0
}

// SetText replaces the text line. Writes shorter than the display
// width zero-fill the buffer first, so the stored line is always the
// full width, left justified with zero padding on the right. Longer
// writes are capped at the display width.
func (s *DisplayState) SetText(b []byte) {
	if len(b) < wire.TextWidth {
		s.text = [wire.TextWidth]byte{}
	}
	copy(s.text[:], b)
}

// Text returns the stored line verbatim, padding included.
func (s *DisplayState) Text() [wire.TextWidth]byte {
	return s.text
}

// ClearText zero-fills the text line.
func (s *DisplayState) ClearText() {
	s.text = [wire.TextWidth]byte{}
}

// TrimText renders a stored line for a reader: trailing NUL and
// newline bytes are stripped and exactly one newline is appended.
func TrimText(buf [wire.TextWidth]byte) []byte {
	n := len(buf)
	for n > 0 && (buf[n-1] == 0 || buf[n-1] == '\n') {
		n--
	}
	out := make([]byte, n+1)
	copy(out, buf[:n])
	out[n] = '\n'
	return out
}
