// Package cpu implements the breadboard computer: a 16 byte memory, an 8-bit
// accumulator, a 4-bit program counter, and the Zero and Carry flags.
//
// Two engines execute the same instruction set. Sim is cycle accurate: each
// Step advances one hardware phase (latch pc, fetch, and three execute
// phases), so the partially executed instruction can be observed between
// steps. Interp executes one whole instruction per Step and serves as the
// behavioral reference for Sim.
//
// Instruction bytes carry the opcode in the high nibble and the operand
// (address, immediate, or jump target) in the low nibble.
package cpu
