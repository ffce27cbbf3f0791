// Package counter holds the bounded counter state: a clamped integer with
// boundary flags, and the observers that react to its transitions.
//
// The counter never performs presentation work. Consumers (the terminal view,
// the celebration trigger, tracing) subscribe as Observers and are notified
// after every mutation that actually changed the value.
package counter
