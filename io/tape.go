package io

import (
	"fmt"
	"io"
)

// Tape prints each output value on its own line, like the output
// display of the hardware.
type Tape struct {
	Output io.Writer // Destination. If nil, values are discarded.
	Hex    bool      // Print as 0x-prefixed hexadecimal, not decimal.

	Count int // Values sent since the last Rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind zeros the value counter.
func (tc *Tape) Rewind() {
	tc.Count = 0
}

// Send writes a value to the output.
func (tc *Tape) Send(value uint8) (err error) {
	tc.Count++

	if tc.Output == nil {
		return
	}

	if tc.Hex {
		_, err = fmt.Fprintf(tc.Output, "0x%02x\n", value)
	} else {
		_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	}

	return
}
