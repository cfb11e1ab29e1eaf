// Package usbvfd implements the control-transfer boundary over libusb
// via gousb. It opens the Shuttle front-panel VFD by its USB identity
// and satisfies transport.ControlSender with HID SET_REPORT transfers,
// the same transfer the stock firmware expects.
//
// The core driver in pkg/vfd never depends on this package; any
// ControlSender will do. Hot-plug handling and re-probing after a
// disconnect are the caller's concern.
package usbvfd

import (
	"errors"
	"fmt"

	"github.com/google/gousb"

	"github.com/shuttle-vfd/vfd-go/pkg/transport"
	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

// USB identification of the Shuttle front-panel VFD.
const (
	// VendorID is Shuttle's USB vendor ID.
	VendorID gousb.ID = 0x051C

	// InterfaceNumber is the only interface the VFD protocol binds.
	InterfaceNumber = 1
)

// ProductIDs lists the known VFD product IDs, tried in order.
var ProductIDs = []gousb.ID{0x0003, 0x0005}

// Control transfer parameters: HID class SET_REPORT, output report 2,
// addressed to the VFD interface.
const (
	requestType uint8 = gousb.ControlOut | gousb.ControlClass | gousb.ControlInterface
	setReport         = 0x09
	reportValue       = 0x0200
)

// ErrNotFound indicates no attached device matched the VFD's identity.
var ErrNotFound = errors.New("usbvfd: no shuttle vfd attached")

// Device is an open USB handle to the VFD.
type Device struct {
	ctx *gousb.Context
	dev *gousb.Device
}

// Open finds the first attached VFD and prepares it for control
// transfers. A kernel HID driver bound to the interface is detached
// automatically and reattached on Close.
func Open() (*Device, error) {
	ctx := gousb.NewContext()
	dev, err := open(ctx)
	if err != nil {
		_ = ctx.Close()
		return nil, err
	}
	return &Device{ctx: ctx, dev: dev}, nil
}

func open(ctx *gousb.Context) (*gousb.Device, error) {
	for _, pid := range ProductIDs {
		dev, err := ctx.OpenDeviceWithVIDPID(VendorID, pid)
		if err != nil {
			return nil, fmt.Errorf("usbvfd: open %s:%s: %w", VendorID, pid, err)
		}
		if dev == nil {
			continue
		}
		if err := dev.SetAutoDetach(true); err != nil {
			_ = dev.Close()
			return nil, fmt.Errorf("usbvfd: detach kernel driver: %w", err)
		}
		return dev, nil
	}
	return nil, ErrNotFound
}

// SendControl performs one 8-byte SET_REPORT transfer.
func (d *Device) SendControl(p wire.Packet) error {
	if _, err := d.dev.Control(requestType, setReport, reportValue, InterfaceNumber, p[:]); err != nil {
		return fmt.Errorf("usbvfd: control transfer: %w", err)
	}
	return nil
}

// Close releases the device handle and the USB context.
func (d *Device) Close() error {
	var firstErr error
	if d.dev != nil {
		if err := d.dev.Close(); err != nil {
			firstErr = err
		}
		d.dev = nil
	}
	if d.ctx != nil {
		if err := d.ctx.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		d.ctx = nil
	}
	return firstErr
}

// Compile-time interface satisfaction check.
var _ transport.ControlSender = (*Device)(nil)
