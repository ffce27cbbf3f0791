// Package effect implements the celebration side of the widget: the
// fire-and-forget signal emitted when the counter reaches its target, and the
// confetti animation that consumes it.
package effect

import "time"

// Signal is a one-shot "celebrate" notification. It carries no payload beyond
// the target that was reached.
type Signal struct {
	Target int
	At     time.Time
}

// ChanEmitter emits signals to a channel for the presentation layer to consume.
type ChanEmitter struct {
	Ch chan<- Signal
}

// NewChanEmitter returns an emitter and the receive side of its channel.
func NewChanEmitter(buffer int) (*ChanEmitter, <-chan Signal) {
	ch := make(chan Signal, buffer)
	return &ChanEmitter{Ch: ch}, ch
}

// Emit sends the signal to the channel (non-blocking; drops if full).
func (e *ChanEmitter) Emit(s Signal) {
	if s.At.IsZero() {
		s.At = time.Now()
	}
	select {
	case e.Ch <- s:
	default:
		// Channel full; a celebration is already pending
	}
}

// Celebrate emits a signal for target. Its signature matches the counter
// celebration trigger callback.
func (e *ChanEmitter) Celebrate(target int) {
	e.Emit(Signal{Target: target})
}
