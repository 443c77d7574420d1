package cpu

import (
	"fmt"
	"iter"
	"maps"
)

// Opcode is the high nibble of an instruction byte.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_NOP = Opcode(0x0) // nop
	OP_LDA = Opcode(0x1) // lda
	OP_ADD = Opcode(0x2) // add
	OP_SUB = Opcode(0x3) // sub
	OP_STA = Opcode(0x4) // sta
	OP_LDI = Opcode(0x5) // ldi
	OP_JMP = Opcode(0x6) // jmp
	OP_JC  = Opcode(0x7) // jc
	OP_JZ  = Opcode(0x8) // jz
	OP_OUT = Opcode(0xe) // out
	OP_HLT = Opcode(0xf) // hlt
)

const (
	OPERAND_MASK = 0xf // Mask of the operand nibble.
	OPCODE_SHIFT = 4   // Position of the opcode nibble.
)

var _opcode_defines = map[string]string{
	"OP_NOP": fmt.Sprintf("0x%02x", uint8(MakeCode(OP_NOP, 0))),
	"OP_LDA": fmt.Sprintf("0x%02x", uint8(MakeCode(OP_LDA, 0))),
	"OP_ADD": fmt.Sprintf("0x%02x", uint8(MakeCode(OP_ADD, 0))),
	"OP_SUB": fmt.Sprintf("0x%02x", uint8(MakeCode(OP_SUB, 0))),
	"OP_STA": fmt.Sprintf("0x%02x", uint8(MakeCode(OP_STA, 0))),
	"OP_LDI": fmt.Sprintf("0x%02x", uint8(MakeCode(OP_LDI, 0))),
	"OP_JMP": fmt.Sprintf("0x%02x", uint8(MakeCode(OP_JMP, 0))),
	"OP_JC":  fmt.Sprintf("0x%02x", uint8(MakeCode(OP_JC, 0))),
	"OP_JZ":  fmt.Sprintf("0x%02x", uint8(MakeCode(OP_JZ, 0))),
	"OP_OUT": fmt.Sprintf("0x%02x", uint8(MakeCode(OP_OUT, 0))),
	"OP_HLT": fmt.Sprintf("0x%02x", uint8(MakeCode(OP_HLT, 0))),

	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
}

// Defines returns the opcode and memory constants, as name and value text.
func Defines() iter.Seq2[string, string] {
	return maps.All(_opcode_defines)
}

// Valid returns true if the opcode is one of the eleven defined opcodes.
func (op Opcode) Valid() bool {
	switch op {
	case OP_NOP, OP_LDA, OP_ADD, OP_SUB, OP_STA, OP_LDI,
		OP_JMP, OP_JC, OP_JZ, OP_OUT, OP_HLT:
		return true
	}
	return false
}

// HasOperand returns true if the opcode uses its operand nibble.
func (op Opcode) HasOperand() bool {
	switch op {
	case OP_NOP, OP_OUT, OP_HLT:
		return false
	}
	return op.Valid()
}

// Code is a single instruction byte.
type Code uint8

// MakeCode creates an instruction byte from an opcode and operand.
// Only the low nibble of each is used.
func MakeCode(op Opcode, operand uint8) Code {
	return Code(((uint8(op) & OPERAND_MASK) << OPCODE_SHIFT) | (operand & OPERAND_MASK))
}

// Opcode returns the opcode nibble.
func (code Code) Opcode() Opcode {
	return Opcode(uint8(code) >> OPCODE_SHIFT)
}

// Operand returns the operand nibble.
func (code Code) Operand() uint8 {
	return uint8(code) & OPERAND_MASK
}

// Decode splits the instruction into opcode and operand, failing with
// ErrOpcode for the undefined opcode nibbles.
func (code Code) Decode() (op Opcode, operand uint8, err error) {
	op = code.Opcode()
	if !op.Valid() {
		err = ErrOpcode(code)
		return
	}

	operand = code.Operand()
	return
}

// String returns the mnemonic form of the instruction.
func (code Code) String() string {
	op := code.Opcode()
	switch {
	case !op.Valid():
		return fmt.Sprintf("??? 0x%02x", uint8(code))
	case op.HasOperand():
		return fmt.Sprintf("%v %d", op, code.Operand())
	default:
		return op.String()
	}
}
