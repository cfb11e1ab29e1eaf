package vfd

import (
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/shuttle-vfd/vfd-go/pkg/log"
	"github.com/shuttle-vfd/vfd-go/pkg/model"
	"github.com/shuttle-vfd/vfd-go/pkg/transport"
	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

// Device errors.
var (
	// ErrClosed indicates the device instance has been closed.
	ErrClosed = errors.New("vfd: device closed")

	// ErrNoSender indicates the config carried no control sender.
	ErrNoSender = errors.New("vfd: config needs a control sender")
)

// Config configures a Device.
type Config struct {
	// Sender performs the 8-byte control transfers. Required.
	Sender transport.ControlSender

	// Delay overrides the inter-packet pacing delay.
	// Zero selects transport.DefaultDelay.
	Delay time.Duration

	// Logger receives operational logs. Nil discards them.
	Logger *slog.Logger

	// Trace receives one event per packet sent. Nil disables tracing.
	Trace log.Logger
}

// Device drives one attached display. All methods are safe for
// concurrent use; mutating operations block for up to the pacing delay
// times the number of packets they send.
type Device struct {
	id     string
	gate   *transport.Gate
	state  model.DisplayState
	logger *slog.Logger

	lights *lightSet
}

// New creates a device over the given transport. The display is not
// touched until Init.
func New(cfg Config) (*Device, error) {
	if cfg.Sender == nil {
		return nil, ErrNoSender
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	d := &Device{
		id:     uuid.New().String(),
		gate:   transport.NewGate(cfg.Sender, cfg.Delay),
		logger: logger,
	}
	if cfg.Trace != nil {
		d.gate.SetLogger(cfg.Trace, d.id)
	}
	d.lights = newLightSet(d)
	return d, nil
}

// ID returns the device instance identifier used in trace events.
func (d *Device) ID() string {
	return d.id
}

// Init resets the display at attach time: text, icons and volume are
// erased and the write cursor returns home.
func (d *Device) Init() error {
	if d.lights.closed() {
		return ErrClosed
	}
	return d.gate.Exclusive(func(send transport.SendFunc) error {
		d.state.ClearText()
		d.state.ClearMask()
		if err := send(wire.EncodeClear(true)); err != nil {
			d.logger.Warn("display reset failed", "device_id", d.id, "err", err)
			return err
		}
		return nil
	})
}

// SetBrightness sets one light's level. Binary icons treat any nonzero
// level as on; the volume bar accepts 0-12. Out-of-range levels are
// clamped rather than rejected, so a misbehaving front-end can never
// push stray bits into the shared mask.
//
// On a transport failure the local state keeps the submitted value:
// the protocol has no acknowledgment channel, and the next successful
// icon update resynchronizes the hardware.
func (d *Device) SetBrightness(icon model.Icon, level int) error {
	if !icon.Valid() {
		return model.ErrUnknownIcon
	}
	if d.lights.closed() {
		return ErrClosed
	}
	return d.gate.Exclusive(func(send transport.SendFunc) error {
		if icon == model.IconVolume {
			d.state.SetVolume(level)
		} else {
			// Negative levels clamp to off, matching the volume path.
			d.state.SetIconBit(icon.Bit(), level > 0)
		}
		if err := send(wire.EncodeIcons(d.state.Mask())); err != nil {
			d.logger.Warn("icon update failed",
				"device_id", d.id, "icon", icon.String(), "err", err)
			return err
		}
		return nil
	})
}

// SetIcon switches one binary icon on or off.
func (d *Device) SetIcon(icon model.Icon, on bool) error {
	level := 0
	if on {
		level = 1
	}
	return d.SetBrightness(icon, level)
}

// SetVolume sets the volume bar level (0-12, clamped).
func (d *Device) SetVolume(level int) error {
	return d.SetBrightness(model.IconVolume, level)
}

// SetText replaces the visible line. Writes shorter than 20 characters
// implicitly clear the rest of the line; longer writes are truncated.
// One critical section covers the cursor reset and all three text
// packets, so a concurrent icon update can never split the line.
func (d *Device) SetText(text []byte) error {
	if d.lights.closed() {
		return ErrClosed
	}
	if len(text) > wire.TextWidth {
		text = text[:wire.TextWidth]
	}
	return d.gate.Exclusive(func(send transport.SendFunc) error {
		d.state.SetText(text)
		if err := send(wire.EncodeClear(false)); err != nil {
			d.logger.Warn("text cursor reset failed", "device_id", d.id, "err", err)
			return err
		}
		for _, p := range wire.SplitText(d.state.Text()) {
			if err := send(p); err != nil {
				d.logger.Warn("text update failed", "device_id", d.id, "err", err)
				return err
			}
		}
		return nil
	})
}

// Text returns the last submitted line with trailing padding stripped
// and exactly one newline appended. The copy is taken under the gate's
// lock so a concurrent write can never tear it. No packet is sent.
func (d *Device) Text() []byte {
	var line [wire.TextWidth]byte
	_ = d.gate.Exclusive(func(transport.SendFunc) error {
		line = d.state.Text()
		return nil
	})
	return model.TrimText(line)
}

// Mask returns the current combined icon mask.
func (d *Device) Mask() wire.IconMask {
	var mask wire.IconMask
	_ = d.gate.Exclusive(func(transport.SendFunc) error {
		mask = d.state.Mask()
		return nil
	})
	return mask
}

// Clear erases the visible line; with eraseIcons it also drops all
// icons and the volume bar.
func (d *Device) Clear(eraseIcons bool) error {
	if d.lights.closed() {
		return ErrClosed
	}
	return d.gate.Exclusive(func(send transport.SendFunc) error {
		d.state.ClearText()
		if eraseIcons {
			d.state.ClearMask()
		}
		if err := send(wire.EncodeClear(eraseIcons)); err != nil {
			d.logger.Warn("clear failed", "device_id", d.id, "err", err)
			return err
		}
		return nil
	})
}

// Close deregisters all lights and marks the device unusable.
// Deregistration happens first, honoring the framework contract that
// no late brightness callback may reach a released device. Close is
// idempotent.
func (d *Device) Close() error {
	return d.lights.close()
}
