package cpu

// Engine is an executor of programs for the machine.
type Engine interface {
	// Load resets the engine and replaces memory with a program image.
	Load(image []byte) error
	// Step advances execution, returning true once halted.
	Step() (halted bool, err error)
	// Machine returns the machine state.
	Machine() *State
}

// Run steps the engine until it halts. There is no step limit; a program
// that never reaches 'hlt' never returns.
func Run(engine Engine) (err error) {
	for {
		var halted bool
		halted, err = engine.Step()
		if err != nil || halted {
			return
		}
	}
}
