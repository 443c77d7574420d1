package cpu

// Flags is the status register. At most one flag is set at a time.
type Flags uint8

const (
	FLAG_CLEAR = Flags(0)      // Neither flag.
	FLAG_ZERO  = Flags(1 << 0) // Last arithmetic result was zero.
	FLAG_CARRY = Flags(1 << 1) // Last arithmetic result wrapped.
)

// Zero returns true if the Zero flag is set.
func (fl Flags) Zero() bool {
	return fl&FLAG_ZERO != 0
}

// Carry returns true if the Carry flag is set.
func (fl Flags) Carry() bool {
	return fl&FLAG_CARRY != 0
}

func (fl Flags) String() string {
	switch fl {
	case FLAG_CLEAR:
		return "-"
	case FLAG_ZERO:
		return "Z"
	case FLAG_CARRY:
		return "C"
	default:
		return "ZC"
	}
}

// flagsOf derives the flags from an 8-bit result and the 16-bit value it
// was truncated from. Zero takes precedence over Carry.
func flagsOf(result uint8, wide uint16) Flags {
	switch {
	case result == 0:
		return FLAG_ZERO
	case wide >= 0x100:
		return FLAG_CARRY
	default:
		return FLAG_CLEAR
	}
}

// Add returns (a + b) mod 256 and the resulting flags.
func Add(a, b uint8) (result uint8, flags Flags) {
	wide := uint16(a) + uint16(b)
	result = uint8(wide)
	flags = flagsOf(result, wide)
	return
}

// Sub returns (a - b) mod 256 and the resulting flags. Carry is set when
// the subtraction borrows.
func Sub(a, b uint8) (result uint8, flags Flags) {
	wide := uint16(a) - uint16(b)
	result = uint8(wide)
	flags = flagsOf(result, wide)
	return
}
