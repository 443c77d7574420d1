// Package io provides the peripherals of the breadboard computer: output
// channels that receive the accumulator from the 'out' instruction, and
// the ROM reader that supplies program images.
package io

// Channel receives the values written by the 'out' instruction.
type Channel interface {
	// Send delivers a single output value to the channel.
	Send(value uint8) error
}
