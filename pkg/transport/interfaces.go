package transport

import "github.com/shuttle-vfd/vfd-go/pkg/wire"

// ControlSender is the consumed transport primitive: one 8-byte control
// transfer to the display. Implementations are expected to bound each
// transfer with a short timeout of their own; this layer adds none.
type ControlSender interface {
	// SendControl transmits one packet. Errors are transport-level:
	// I/O failure, stall, disconnect, timeout.
	SendControl(p wire.Packet) error
}

// ControlSenderFunc adapts a function to the ControlSender interface.
type ControlSenderFunc func(p wire.Packet) error

// SendControl calls f(p).
func (f ControlSenderFunc) SendControl(p wire.Packet) error {
	return f(p)
}

// Compile-time interface satisfaction check.
var _ ControlSender = ControlSenderFunc(nil)
