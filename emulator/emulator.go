// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator drives a breadboard computer engine: it loads the program
// image from the ROM, steps the engine until it halts, and collects output
// on the tape.
package emulator

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/ezrec/eater/cpu"
	"github.com/ezrec/eater/internal"
	"github.com/ezrec/eater/io"
)

// EngineKind selects the engine executing the program.
type EngineKind int

//go:generate go tool stringer -linecomment -type=EngineKind
const (
	ENGINE_SIM    = EngineKind(0) // sim
	ENGINE_INTERP = EngineKind(1) // interp
)

var _emulator_defines = map[string]string{
	"ENGINE_SIM":    ENGINE_SIM.String(),
	"ENGINE_INTERP": ENGINE_INTERP.String(),
	"ROM_LIMIT":     fmt.Sprintf("%v", io.ROM_LIMIT),
}

// ParseEngineKind returns the engine kind for its name.
func ParseEngineKind(name string) (kind EngineKind, err error) {
	for _, kind = range []EngineKind{ENGINE_SIM, ENGINE_INTERP} {
		if kind.String() == name {
			return
		}
	}

	err = errors.Join(ErrEngineKind, fmt.Errorf("%q", name))
	return
}

// Emulator state. Engine + ROM + output tape.
type Emulator struct {
	Verbose bool       // If set, enables verbose logging.
	Kind    EngineKind // Kind of Engine.
	Engine  cpu.Engine // Engine running the program.
	Budget  int        // Maximum ticks before ErrBudget. Zero is unlimited.

	Rom  io.Rom  // Program image.
	Tape io.Tape // Output tape.

	ticks int
}

// NewEmulator creates a new emulator with the selected engine.
func NewEmulator(kind EngineKind) (emu *Emulator) {
	emu = &Emulator{
		Kind: kind,
	}

	switch kind {
	case ENGINE_INTERP:
		ip := cpu.NewInterp()
		ip.Output = &emu.Tape
		emu.Engine = ip
	default:
		emu.Kind = ENGINE_SIM
		sim := cpu.NewSim()
		sim.Output = &emu.Tape
		emu.Engine = sim
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		cpu.Defines(),
	)
}

// setVerbose forwards the verbose setting to the engine.
func (emu *Emulator) setVerbose(verbose bool) {
	switch engine := emu.Engine.(type) {
	case *cpu.Sim:
		engine.Verbose = verbose
	case *cpu.Interp:
		engine.Verbose = verbose
	}
}

// Reset loads the ROM image into the engine, and rewinds the tape.
func (emu *Emulator) Reset() (err error) {
	emu.setVerbose(emu.Verbose)

	if emu.Verbose {
		log.Printf("emulator: reset %v engine", emu.Kind)
	}

	err = emu.Engine.Load(emu.Rom.Data)
	if err != nil {
		return
	}

	emu.Tape.Rewind()
	emu.ticks = 0

	return
}

// Machine returns the machine state of the engine.
func (emu *Emulator) Machine() *cpu.State {
	return emu.Engine.Machine()
}

// Ticks returns the total ticks since a reset.
func (emu *Emulator) Ticks() int {
	return emu.ticks
}

// cycle returns the current cycle phase, if the engine has one.
func (emu *Emulator) cycle() string {
	sim, ok := emu.Engine.(*cpu.Sim)
	if !ok {
		return ""
	}
	return sim.Cycle.String()
}

// Tick performs a single tick of the emulator: one phase of the cycle
// accurate engine, or one instruction of the interpreter.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.setVerbose(emu.Verbose)

	pc := emu.Machine().Pc
	cycle := emu.cycle()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, Cycle: cycle, Err: err}
		}
	}()

	if emu.Machine().Halt {
		done = true
		return
	}

	if emu.Budget > 0 && emu.ticks >= emu.Budget {
		err = ErrBudget
		return
	}

	done, err = emu.Engine.Step()
	if err != nil {
		return
	}

	emu.ticks++

	return
}

// Run ticks the emulator until the program halts.
func (emu *Emulator) Run() (err error) {
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			return err
		}
	}

	if emu.Verbose {
		log.Printf("emulator: halted after %d ticks", emu.ticks)
		log.Printf("emulator: state\n%v", emu.Machine())
	}

	return
}
