// Package log captures packet-level trace events from the VFD driver.
//
// The transport gate emits one Event per control transfer. Applications
// choose where events go: NoopLogger discards them, SlogAdapter feeds
// them into a slog.Logger for development, and FileLogger appends them
// to a CBOR trace file that can be replayed later with ReadEvents.
package log
