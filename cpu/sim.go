package cpu

import (
	"fmt"
	"log"
)

// Sim is the cycle accurate simulation of the breadboard computer.
//
// Every instruction runs the same five phases, as the hardware's fixed
// length microcode does:
//
//	latch: latch the program counter into the memory address register
//	fetch: read the instruction, advance the program counter
//	exec1: ldi, jmp, jc, jz, out and hlt take effect
//	exec2: lda and sta take effect, add and sub read their operand
//	exec3: add and sub update the accumulator and flags
//
// hlt stops in exec1 and never leaves it.
type Sim struct {
	State // Machine state.

	Verbose bool    // Set to enable verbose logging.
	Output  Channel // Output channel for 'out'.
	Cycle   Cycle   // Current instruction cycle.
	Ticks   int     // Phases executed since Load.
}

var _ Engine = (*Sim)(nil)

// NewSim creates a simulator with zeroed memory, about to latch pc 0.
func NewSim() (sim *Sim) {
	sim = &Sim{}

	return
}

// Machine returns the machine state.
func (sim *Sim) Machine() *State {
	return &sim.State
}

// Load resets the simulator and loads a program image.
// On error, the simulator is unchanged.
func (sim *Sim) Load(image []byte) (err error) {
	var st State
	err = st.Load(image)
	if err != nil {
		return
	}

	if sim.Verbose {
		log.Printf("sim: load % X", image)
	}

	sim.State = st
	sim.Cycle = Cycle{}
	sim.Ticks = 0

	return
}

// Step advances the simulation by exactly one phase, and returns true
// once the machine is halted. A halted machine is not changed.
//
// An undefined opcode fails the fetch phase with ErrOpcode, leaving the
// machine as it was before the call.
func (sim *Sim) Step() (halted bool, err error) {
	if sim.Halt {
		halted = true
		return
	}

	var next Cycle
	inst := sim.Cycle.Inst

	switch sim.Cycle.Phase {
	case PHASE_LATCH:
		next = Cycle{Phase: PHASE_FETCH, Pc: sim.Pc}
	case PHASE_FETCH:
		code := Code(sim.read(sim.Cycle.Pc))
		var op Opcode
		var operand uint8
		op, operand, err = code.Decode()
		if err != nil {
			return
		}
		if sim.Verbose {
			log.Printf("%X: %v", sim.Cycle.Pc, code)
		}
		sim.advance()
		next = Cycle{Phase: PHASE_EXEC1, Inst: Instruction{Op: op, Arg: operand}}
	case PHASE_EXEC1:
		inst, err = sim.exec1(inst)
		if err != nil {
			return
		}
		if sim.Halt {
			if sim.Verbose {
				log.Printf("sim: halt after %d ticks", sim.Ticks+1)
			}
			sim.Ticks++
			halted = true
			return
		}
		next = Cycle{Phase: PHASE_EXEC2, Inst: inst}
	case PHASE_EXEC2:
		next = Cycle{Phase: PHASE_EXEC3, Inst: sim.exec2(inst)}
	case PHASE_EXEC3:
		sim.exec3(inst)
		next = Cycle{Phase: PHASE_LATCH}
	default:
		panic(fmt.Sprintf("sim: unknown phase %v", sim.Cycle.Phase))
	}

	sim.Cycle = next
	sim.Ticks++

	return
}

// exec1 runs the immediate, jump, output and halt instructions.
// Memory instructions pass through with their address.
func (sim *Sim) exec1(inst Instruction) (next Instruction, err error) {
	next = Instruction{Op: inst.Op}

	switch inst.Op {
	case OP_NOP:
	case OP_LDA, OP_ADD, OP_SUB, OP_STA:
		next.Arg = inst.Arg & ADDR_MASK
	case OP_LDI:
		sim.A = inst.Arg
	case OP_JMP:
		sim.jump(inst.Arg, true)
	case OP_JC:
		sim.jump(inst.Arg, sim.Flags.Carry())
	case OP_JZ:
		sim.jump(inst.Arg, sim.Flags.Zero())
	case OP_OUT:
		err = sim.emit(sim.Output)
	case OP_HLT:
		sim.Halt = true
	default:
		err = ErrOpcode(MakeCode(inst.Op, inst.Arg))
	}

	return
}

// exec2 runs the memory access of lda, add, sub and sta.
func (sim *Sim) exec2(inst Instruction) (next Instruction) {
	next = Instruction{Op: inst.Op}

	switch inst.Op {
	case OP_LDA:
		sim.A = sim.read(inst.Arg)
	case OP_ADD, OP_SUB:
		next.Arg = sim.read(inst.Arg)
	case OP_STA:
		sim.write(inst.Arg, sim.A)
	}

	return
}

// exec3 finishes add and sub.
func (sim *Sim) exec3(inst Instruction) {
	sim.arith(inst.Op, inst.Arg)
}
