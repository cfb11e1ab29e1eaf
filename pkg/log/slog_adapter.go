package log

import (
	"context"
	"encoding/hex"
	"log/slog"

	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

// SlogAdapter writes trace events to an slog.Logger.
// Useful during development to see packet traffic in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event at Debug level, or Warn when the transfer failed.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("device_id", event.DeviceID),
	}

	if event.Packet != nil {
		attrs = append(attrs,
			slog.String("command", wire.Command(event.Packet.Command).String()),
			slog.Int("length", int(event.Packet.Length)),
			slog.String("data", hex.EncodeToString(event.Packet.Data)),
		)
	}

	if event.Error != nil {
		attrs = append(attrs, slog.String("error", event.Error.Message))
		a.logger.LogAttrs(context.Background(), slog.LevelWarn, "packet send failed", attrs...)
		return
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "packet sent", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
