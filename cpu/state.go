package cpu

import (
	"errors"
	"fmt"

	"github.com/ezrec/eater/io"
)

// Channel is the output channel the 'out' instruction writes to.
type Channel io.Channel

const (
	MEMORY_SIZE = 16  // Bytes of memory, and the program image size.
	ADDR_MASK   = 0xf // Mask of a memory address or program counter.
)

// State is the complete observable state of one machine.
type State struct {
	Memory [MEMORY_SIZE]uint8 // Memory, program and data.
	Pc     uint8              // Program counter, always in [0, MEMORY_SIZE).
	A      uint8              // Accumulator.
	Flags  Flags              // Status flags.
	Halt   bool               // Halt latch. Once set, nothing changes.
}

// Load replaces the memory with a program image. The image must be exactly
// MEMORY_SIZE bytes, else ErrImageSize is returned and memory is unchanged.
func (st *State) Load(image []byte) (err error) {
	if len(image) != MEMORY_SIZE {
		err = ErrImageSize(len(image))
		return
	}

	copy(st.Memory[:], image)
	return
}

// Reset zeros the registers, flags, halt latch, and memory.
func (st *State) Reset() {
	*st = State{}
}

// String returns the current machine state as a string.
func (st *State) String() (text string) {
	regs := []string{"pc", "a", "flags", "halt", "mem"}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%X", st.Pc)
		case "a":
			strval = fmt.Sprintf("%02X", st.A)
		case "flags":
			strval = st.Flags.String()
		case "halt":
			strval = "false"
			if st.Halt {
				strval = "true"
			}
		case "mem":
			strval = fmt.Sprintf("% X", st.Memory[:])
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// read returns the memory byte at addr.
func (st *State) read(addr uint8) uint8 {
	return st.Memory[addr&ADDR_MASK]
}

// write sets the memory byte at addr.
func (st *State) write(addr uint8, value uint8) {
	st.Memory[addr&ADDR_MASK] = value
}

// advance steps the program counter, wrapping at the end of memory.
func (st *State) advance() {
	st.Pc = (st.Pc + 1) & ADDR_MASK
}

// jump sets the program counter if taken.
func (st *State) jump(target uint8, taken bool) {
	if taken {
		st.Pc = target & ADDR_MASK
	}
}

// arith applies add or sub to the accumulator and updates the flags.
func (st *State) arith(op Opcode, value uint8) {
	switch op {
	case OP_ADD:
		st.A, st.Flags = Add(st.A, value)
	case OP_SUB:
		st.A, st.Flags = Sub(st.A, value)
	}
}

// emit sends the accumulator to the output channel.
// A nil channel discards the value.
func (st *State) emit(out Channel) (err error) {
	if out == nil {
		return
	}

	err = out.Send(st.A)
	if err != nil {
		err = errors.Join(ErrChannel, err)
	}
	return
}
