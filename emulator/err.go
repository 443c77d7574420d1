package emulator

import (
	"errors"

	"github.com/ezrec/eater/translate"
)

var f = translate.From

var (
	ErrBudget     = errors.New(f("tick budget exhausted"))
	ErrEngineKind = errors.New(f("unknown engine"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc    uint8  // Program counter when the error occurred.
	Cycle string // Cycle phase, for the cycle accurate engine.
	Err   error
}

func (err *ErrRuntime) Error() string {
	if len(err.Cycle) == 0 {
		return f("pc %X %v", err.Pc, err.Err)
	}
	return f("pc %X %v %v", err.Pc, err.Cycle, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
