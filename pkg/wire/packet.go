package wire

import "fmt"

// Packet dimensions.
const (
	// PacketSize is the fixed size of every command packet, in bytes.
	PacketSize = 8

	// DataSize is the number of payload bytes available in one packet.
	DataSize = PacketSize - 1

	// TextWidth is the number of character cells on the display.
	TextWidth = 20
)

// Command is the 4-bit command code carried in the high nibble of a
// packet's first byte.
type Command uint8

const (
	// CmdClear clears the display. Payload byte 0 selects the mode:
	// 1 clears text and icons, 2 only resets the text write cursor.
	CmdClear Command = 0x1

	// CmdDisplayClock shows the controller's internal clock. Part of
	// the protocol but not used by this driver.
	CmdDisplayClock Command = 0x3

	// CmdIcons updates the icon and volume segments from the combined
	// 19-bit mask.
	CmdIcons Command = 0x7

	// CmdText writes up to seven characters at the text cursor.
	CmdText Command = 0x9

	// CmdClockData sets the controller's internal clock. Part of the
	// protocol but not used by this driver.
	CmdClockData Command = 0xD
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdClear:
		return "clear"
	case CmdDisplayClock:
		return "display-clock"
	case CmdIcons:
		return "icons"
	case CmdText:
		return "text"
	case CmdClockData:
		return "clock-data"
	default:
		return "unknown"
	}
}

// Packet is one fixed 8-byte command unit. Packets are transient value
// objects: built by the codec, handed to the transport, never stored.
type Packet [PacketSize]byte

// newPacket assembles a packet from a command and payload. Payloads
// longer than DataSize are capped; the unused tail stays zero.
func newPacket(cmd Command, data []byte) Packet {
	var p Packet
	n := len(data)
	if n > DataSize {
		n = DataSize
	}
	p[0] = byte(cmd)<<4 | byte(n)
	copy(p[1:], data[:n])
	return p
}

// Command returns the packet's command nibble.
func (p Packet) Command() Command {
	return Command(p[0] >> 4)
}

// Len returns the packet's payload length nibble.
func (p Packet) Len() int {
	return int(p[0] & 0x0F)
}

// Data returns a copy of the packet's 7 payload bytes, including any
// zero padding past Len.
func (p Packet) Data() []byte {
	data := make([]byte, DataSize)
	copy(data, p[1:])
	return data
}

// String renders the packet for logs and test failures.
func (p Packet) String() string {
	return fmt.Sprintf("%s/%d % 02x", p.Command(), p.Len(), p[1:])
}
