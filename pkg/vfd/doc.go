// Package vfd drives one attached Shuttle front-panel display: a 20x1
// character VFD with 15 binary indicator icons and a 12-level volume
// bar.
//
// A Device owns the display state, the transport gate and the sixteen
// light endpoints. Every mutating operation runs as one critical
// section on the gate (mutate state, encode packets, send them), so
// concurrent callers can never corrupt the shared icon mask or tear a
// multi-packet text update.
//
// The USB transport and the light registration framework are external
// collaborators, consumed through transport.ControlSender and
// registry.Registry.
package vfd
