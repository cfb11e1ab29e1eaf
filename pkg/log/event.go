package log

import (
	"time"

	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

// Event represents one packet trace event. CBOR encoding uses integer
// keys for compactness.
type Event struct {
	// Timestamp when the transfer completed (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// DeviceID identifies the device instance (UUID).
	DeviceID string `cbor:"2,keyasint"`

	// Packet describes the command packet that was sent.
	Packet *PacketEvent `cbor:"3,keyasint,omitempty"`

	// Error carries the transport failure, if the transfer failed.
	// The packet is still recorded: local state keeps the submitted
	// value even when the hardware never saw it.
	Error *ErrorEvent `cbor:"4,keyasint,omitempty"`
}

// PacketEvent describes one 8-byte command packet.
type PacketEvent struct {
	// Command is the 4-bit command code.
	Command uint8 `cbor:"1,keyasint"`

	// Length is the payload length nibble (0-7).
	Length uint8 `cbor:"2,keyasint"`

	// Data is the 7-byte payload, padding included.
	Data []byte `cbor:"3,keyasint"`
}

// ErrorEvent carries a transport error message.
type ErrorEvent struct {
	Message string `cbor:"1,keyasint,omitempty"`
}

// NewPacketEvent builds the trace event for one transfer. err is nil
// for a successful transfer.
func NewPacketEvent(deviceID string, p wire.Packet, err error) Event {
	event := Event{
		Timestamp: time.Now(),
		DeviceID:  deviceID,
		Packet: &PacketEvent{
			Command: uint8(p.Command()),
			Length:  uint8(p.Len()),
			Data:    p.Data(),
		},
	}
	if err != nil {
		event.Error = &ErrorEvent{Message: err.Error()}
	}
	return event
}
