package wire

// EncodeClear builds the clear packet. With eraseIcons the display
// drops both text and icons (the attach-time reset); without it only
// the text write cursor returns home, which precedes every text update.
func EncodeClear(eraseIcons bool) Packet {
	mode := byte(2)
	if eraseIcons {
		mode = 1
	}
	return newPacket(CmdClear, []byte{mode})
}

// EncodeIcons builds the icon update packet. The 19-bit mask is split
// into four 5-bit groups, highest group first, so the top three bits
// of every payload byte are zero.
func EncodeIcons(mask IconMask) Packet {
	return newPacket(CmdIcons, []byte{
		byte(mask>>15) & 0x1F,
		byte(mask>>10) & 0x1F,
		byte(mask>>5) & 0x1F,
		byte(mask) & 0x1F,
	})
}

// EncodeText builds one text packet from at most DataSize characters.
// Longer chunks are capped; the payload is zero padded.
func EncodeText(chunk []byte) Packet {
	return newPacket(CmdText, chunk)
}

// SplitText partitions a full display line into consecutive text
// packets. The fixed 20-byte width always yields three packets with
// payload lengths 7, 7 and 6. The whole line is transmitted every
// time, including trailing padding, so stale characters from an
// earlier longer message are always overwritten.
func SplitText(text [TextWidth]byte) []Packet {
	packets := make([]Packet, 0, (TextWidth+DataSize-1)/DataSize)
	for off := 0; off < TextWidth; off += DataSize {
		end := off + DataSize
		if end > TextWidth {
			end = TextWidth
		}
		packets = append(packets, EncodeText(text[off:end]))
	}
	return packets
}
