package wire

import "testing"

func TestIconMaskWithIcon(t *testing.T) {
	var m IconMask

	for pos := 0; pos < NumIcons; pos++ {
		m = m.WithIcon(pos, true)
		if !m.IconOn(pos) {
			t.Errorf("bit %d not set", pos)
		}
	}
	if m != BaseMask {
		t.Errorf("all icons set: got %#x, want %#x", m, BaseMask)
	}

	for pos := 0; pos < NumIcons; pos++ {
		m = m.WithIcon(pos, false)
		if m.IconOn(pos) {
			t.Errorf("bit %d not cleared", pos)
		}
	}
	if m != 0 {
		t.Errorf("all icons cleared: got %#x, want 0", m)
	}
}

func TestIconMaskWithIconOutOfRange(t *testing.T) {
	m := IconMask(0x15).WithVolume(7)

	for _, pos := range []int{-1, NumIcons, 31, 64} {
		if got := m.WithIcon(pos, true); got != m {
			t.Errorf("WithIcon(%d, true) changed mask: got %#x, want %#x", pos, got, m)
		}
		if m.IconOn(pos) {
			t.Errorf("IconOn(%d): got true, want false", pos)
		}
	}
}

func TestIconMaskWithVolume(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{name: "off", level: 0, want: 0},
		{name: "mid", level: 7, want: 7},
		{name: "max", level: VolumeMax, want: VolumeMax},
		{name: "clamped high", level: 15, want: VolumeMax},
		{name: "clamped negative", level: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icons := IconMask(0x40F1)
			m := icons.WithVolume(tt.level)
			if got := m.Volume(); got != tt.want {
				t.Errorf("Volume: got %d, want %d", got, tt.want)
			}
			if m&BaseMask != icons {
				t.Errorf("icon bits disturbed: got %#x, want %#x", m&BaseMask, icons)
			}
		})
	}
}

func TestIconMaskWithVolumeReplaces(t *testing.T) {
	m := IconMask(0).WithVolume(12).WithVolume(3)
	if got := m.Volume(); got != 3 {
		t.Errorf("Volume after replace: got %d, want 3", got)
	}
	m = m.WithVolume(0)
	if m != 0 {
		t.Errorf("mask after volume off: got %#x, want 0", m)
	}
}
