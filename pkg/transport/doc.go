// Package transport serializes and paces all packet traffic to one
// physical display.
//
// The USB transport itself is an external collaborator, consumed
// through the ControlSender interface. What this package owns is the
// discipline around it: one exclusive lock per device covering state
// mutation, packet building and the transfer, and a fixed pause after
// every packet while that lock is still held. The display controller
// corrupts in-flight rendering when commands arrive back to back, so
// the pacing delay is part of the critical section, not an
// optimization target.
package transport
