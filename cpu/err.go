package cpu

import (
	"errors"

	"github.com/ezrec/eater/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrOpcodeDecode = errors.New(f("decode"))

	// Output errors
	ErrChannel = errors.New(f("output channel"))
)

// ErrImageSize is returned when a program image is not exactly
// MEMORY_SIZE bytes long. The value is the rejected length.
type ErrImageSize int

func (ei ErrImageSize) Error() string {
	return f("program image is %d bytes, expected %d", int(ei), MEMORY_SIZE)
}

// ErrOpcode is returned when an instruction byte carries one of the
// undefined opcode nibbles.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%02x %v", uint8(eo), Code(eo).Opcode())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	if err == ErrOpcodeDecode {
		return true
	}
	_, ok = err.(ErrOpcode)
	return
}
