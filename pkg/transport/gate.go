package transport

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shuttle-vfd/vfd-go/pkg/log"
	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

// DefaultDelay is the pause after every packet. The controller needs
// this long to absorb a command before the next one arrives.
const DefaultDelay = 24 * time.Millisecond

// Gate errors.
var (
	// ErrNoSender indicates the gate was built without a control sender.
	ErrNoSender = errors.New("no control sender configured")
)

// SendFunc transmits one packet inside the gate's critical section.
// It is only valid for the duration of the Exclusive call that
// produced it.
type SendFunc func(p wire.Packet) error

// Gate owns the single mutex for one device. Every operation that
// touches display state runs through Exclusive, so read-modify-write
// of the shared mask, packet building and the paced transfer can never
// interleave between callers.
type Gate struct {
	mu     sync.Mutex
	sender ControlSender
	delay  time.Duration
	sleep  func(time.Duration)

	// Trace logging (optional)
	logger   log.Logger
	deviceID string
}

// NewGate creates a gate over the given sender. A non-positive delay
// selects DefaultDelay.
func NewGate(sender ControlSender, delay time.Duration) *Gate {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Gate{
		sender: sender,
		delay:  delay,
		sleep:  time.Sleep,
	}
}

// SetLogger configures packet tracing for this gate. Pass nil to
// disable tracing. Safe to call while the gate is in use.
func (g *Gate) SetLogger(logger log.Logger, deviceID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.logger = logger
	g.deviceID = deviceID
}

// SetSleep replaces the pacing sleep. Intended for tests.
func (g *Gate) SetSleep(sleep func(time.Duration)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sleep = sleep
}

// Delay returns the configured inter-packet delay.
func (g *Gate) Delay() time.Duration {
	return g.delay
}

// Exclusive runs fn while holding the gate's lock. fn receives the
// send function for this critical section; everything it does while
// the lock is held (mutating state, building packets, sending them)
// is serialized against all other operations on the same gate.
//
// Callers block for up to delay times the pending packet count. The
// operation is
// synchronous and not cancellable; the only timeout in play is the
// sender's own per-transfer bound.
func (g *Gate) Exclusive(fn func(send SendFunc) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.sendLocked)
}

// Send transmits packets as one exclusive batch. A failed transfer
// aborts the remaining packets of the batch and surfaces the error;
// there is no retry and no acknowledgment from the hardware.
func (g *Gate) Send(packets ...wire.Packet) error {
	return g.Exclusive(func(send SendFunc) error {
		for _, p := range packets {
			if err := send(p); err != nil {
				return err
			}
		}
		return nil
	})
}

// sendLocked performs one transfer and then pauses for the pacing
// delay, all under the gate's lock. The pause happens even after a
// failed transfer: the controller may have consumed part of the
// command.
func (g *Gate) sendLocked(p wire.Packet) error {
	if g.sender == nil {
		return ErrNoSender
	}

	err := g.sender.SendControl(p)
	g.sleep(g.delay)

	if g.logger != nil {
		g.logger.Log(log.NewPacketEvent(g.deviceID, p, err))
	}

	if err != nil {
		return fmt.Errorf("control transfer failed: %w", err)
	}
	return nil
}
