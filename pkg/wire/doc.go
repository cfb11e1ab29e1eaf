// Package wire defines the fixed 8-byte command packets understood by
// the Shuttle front-panel VFD (a PT6314-driven 20x1 character display
// behind a Cypress CY7C63723 USB bridge).
//
// # Packet Format
//
// Every command is exactly 8 bytes. Byte 0 carries the command code in
// its high nibble and the payload length (0-7) in its low nibble; the
// remaining 7 bytes are payload, zero padded.
//
// # Icon Mask
//
// The 16 indicator lights share one 19-bit mask: bits 0-14 are the
// binary icons, bits 15-18 hold the volume bar level (0-12). The icon
// command transmits the mask as four 5-bit groups, highest group first.
//
// The codec is pure and cannot fail: oversized input is capped and
// out-of-range values are clamped, so callers never receive an error
// from this layer.
package wire
