// Package model holds the in-memory display state for one attached
// VFD: the combined icon mask and the 20-character text line, plus the
// identities of the sixteen indicator lights.
//
// DisplayState is the single source of truth for what was last
// submitted to the device. It deliberately carries no lock: the owning
// device serializes every access through its transport gate, so state
// mutation, packet building and the transport write form one critical
// section.
package model
