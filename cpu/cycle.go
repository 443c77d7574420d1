package cpu

import (
	"fmt"
)

// Phase is one step of the instruction cycle.
type Phase int

//go:generate go tool stringer -linecomment -type=Phase
const (
	PHASE_LATCH = Phase(0) // latch
	PHASE_FETCH = Phase(1) // fetch
	PHASE_EXEC1 = Phase(2) // exec1
	PHASE_EXEC2 = Phase(3) // exec2
	PHASE_EXEC3 = Phase(4) // exec3
)

// Instruction is the opcode and its partially resolved argument, as carried
// between execute phases.
//
//   - exec1: Arg is the raw operand nibble.
//   - exec2: Arg is the memory address for lda, add, sub and sta.
//   - exec3: Arg is the memory value for add and sub.
//
// Once an instruction's effect is complete, Arg is zero for the remaining
// phases.
type Instruction struct {
	Op  Opcode
	Arg uint8
}

func (inst Instruction) String() string {
	return fmt.Sprintf("%v %d", inst.Op, inst.Arg)
}

// Cycle is the state of the instruction cycle.
type Cycle struct {
	Phase Phase       // Next phase to run.
	Pc    uint8       // Program counter latched for PHASE_FETCH.
	Inst  Instruction // Instruction in flight for the execute phases.
}

func (cy Cycle) String() string {
	switch cy.Phase {
	case PHASE_LATCH:
		return cy.Phase.String()
	case PHASE_FETCH:
		return fmt.Sprintf("%v(%X)", cy.Phase, cy.Pc)
	default:
		return fmt.Sprintf("%v(%v)", cy.Phase, cy.Inst)
	}
}
