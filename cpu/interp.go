package cpu

import (
	"log"
)

// Interp executes one whole instruction per step. Its results match Sim
// at every instruction boundary.
type Interp struct {
	State // Machine state.

	Verbose bool    // Set to enable verbose logging.
	Output  Channel // Output channel for 'out'.
	Ticks   int     // Instructions executed since Load.
}

var _ Engine = (*Interp)(nil)

// NewInterp creates an interpreter with zeroed memory.
func NewInterp() (ip *Interp) {
	ip = &Interp{}

	return
}

// Machine returns the machine state.
func (ip *Interp) Machine() *State {
	return &ip.State
}

// Load resets the interpreter and loads a program image.
// On error, the interpreter is unchanged.
func (ip *Interp) Load(image []byte) (err error) {
	var st State
	err = st.Load(image)
	if err != nil {
		return
	}

	if ip.Verbose {
		log.Printf("interp: load % X", image)
	}

	ip.State = st
	ip.Ticks = 0

	return
}

// Step executes the instruction at the program counter, and returns true
// once the machine is halted. A halted machine is not changed.
//
// On error the machine is left as it was before the call.
func (ip *Interp) Step() (halted bool, err error) {
	if ip.Halt {
		halted = true
		return
	}

	code := Code(ip.read(ip.Pc))
	op, x, err := code.Decode()
	if err != nil {
		return
	}

	if ip.Verbose {
		log.Printf("%X: %v", ip.Pc, code)
	}

	pc := ip.Pc
	ip.advance()

	switch op {
	case OP_NOP:
	case OP_LDA:
		ip.A = ip.read(x)
	case OP_ADD, OP_SUB:
		ip.arith(op, ip.read(x))
	case OP_STA:
		ip.write(x, ip.A)
	case OP_LDI:
		ip.A = x
	case OP_JMP:
		ip.jump(x, true)
	case OP_JC:
		ip.jump(x, ip.Flags.Carry())
	case OP_JZ:
		ip.jump(x, ip.Flags.Zero())
	case OP_OUT:
		err = ip.emit(ip.Output)
		if err != nil {
			ip.Pc = pc
			return
		}
	case OP_HLT:
		ip.Halt = true
	}

	ip.Ticks++
	halted = ip.Halt

	return
}
