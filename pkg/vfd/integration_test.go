package vfd_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuttle-vfd/vfd-go/pkg/log"
	"github.com/shuttle-vfd/vfd-go/pkg/registry"
	"github.com/shuttle-vfd/vfd-go/pkg/transport"
	"github.com/shuttle-vfd/vfd-go/pkg/vfd"
	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

// TestAttachWriteDetach walks the full lifecycle the way a front-end
// would: attach, register lights, drive the display, read back, detach.
// Every packet is captured in a CBOR trace file and replayed.
func TestAttachWriteDetach(t *testing.T) {
	tracePath := filepath.Join(t.TempDir(), "trace.cbor")
	trace, err := log.NewFileLogger(tracePath)
	require.NoError(t, err)

	var packets []wire.Packet
	sender := transport.ControlSenderFunc(func(p wire.Packet) error {
		packets = append(packets, p)
		return nil
	})

	d, err := vfd.New(vfd.Config{Sender: sender, Delay: 1, Trace: trace})
	require.NoError(t, err)

	// Attach: reset display, register the sixteen lights.
	require.NoError(t, d.Init())
	reg := registry.NewInMemory()
	require.NoError(t, d.RegisterLights(reg))

	// Drive it through the registry, the way the framework would.
	play, ok := reg.Lookup("play")
	require.True(t, ok)
	require.NoError(t, play.BrightnessSet(1))

	volume, ok := reg.Lookup("volume")
	require.True(t, ok)
	require.NoError(t, volume.BrightnessSet(8))

	require.NoError(t, d.SetText([]byte("now playing")))
	assert.Equal(t, "now playing\n", string(d.Text()))

	// Detach.
	require.NoError(t, d.Close())
	require.NoError(t, trace.Close())
	assert.Equal(t, 0, reg.Len())

	// 1 init + 2 icon updates + 4 text packets.
	require.Len(t, packets, 7)

	// The trace file replays the exact packet sequence.
	f, err := os.Open(tracePath)
	require.NoError(t, err)
	defer f.Close()

	events, err := log.ReadEvents(f)
	require.NoError(t, err)
	require.Len(t, events, len(packets))
	for i, event := range events {
		require.NotNil(t, event.Packet, "event %d", i)
		assert.Equal(t, d.ID(), event.DeviceID, "event %d", i)
		assert.Equal(t, uint8(packets[i].Command()), event.Packet.Command, "event %d", i)
		assert.Equal(t, packets[i].Data(), event.Packet.Data, "event %d", i)
	}
}
