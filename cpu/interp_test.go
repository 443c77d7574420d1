package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/eater/io"
)

func TestInterp(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		mem   map[uint8]uint8
		steps int
		pc    uint8
		a     uint8
		flags Flags
	}){
		{"nop", map[uint8]uint8{}, 1, 1, 0, FLAG_CLEAR},
		{"lda", map[uint8]uint8{0: 0x1a, 10: 0xa5}, 1, 1, 0xa5, FLAG_CLEAR},
		{"add_carry", map[uint8]uint8{0: 0x2f, 1: 0x2f, 15: 0xff}, 2, 2, 0xfe, FLAG_CARRY},
		{"add_zero", map[uint8]uint8{0: 0x2f, 1: 0x2f}, 2, 2, 0, FLAG_ZERO},
		{"add", map[uint8]uint8{0: 0x2f, 1: 0x2f, 15: 1}, 2, 2, 2, FLAG_CLEAR},
		{"sub_carry", map[uint8]uint8{0: 0x3f, 1: 0x3f, 15: 0xff}, 2, 2, 2, FLAG_CARRY},
		{"sub_zero", map[uint8]uint8{0: 0x3f, 1: 0x3f}, 2, 2, 0, FLAG_ZERO},
		{"sub", map[uint8]uint8{0: 0x3f, 1: 0x3f, 15: 1}, 2, 2, 0xfe, FLAG_CLEAR},
		{"sta", map[uint8]uint8{0: 0x53, 1: 0x4a}, 2, 2, 3, FLAG_CLEAR},
		{"ldi", map[uint8]uint8{0: 0x5a}, 1, 1, 10, FLAG_CLEAR},
		{"jmp", map[uint8]uint8{0: 0x6a}, 1, 10, 0, FLAG_CLEAR},
		{"jc", map[uint8]uint8{0: 0x7a, 1: 0x52, 2: 0x2f, 3: 0x7a, 15: 0xff}, 4, 10, 1, FLAG_CARRY},
		{"jz", map[uint8]uint8{0: 0x8a, 1: 0x2f, 2: 0x8a}, 3, 10, 0, FLAG_ZERO},
		{"hlt", map[uint8]uint8{0: 0xf0}, 3, 1, 0, FLAG_CLEAR},
	}

	for _, entry := range table {
		ip := NewInterp()
		for addr, value := range entry.mem {
			ip.Memory[addr] = value
		}
		mem := ip.Memory

		for range entry.steps {
			_, err := ip.Step()
			assert.NoError(err, entry.name)
		}

		assert.Equal(entry.pc, ip.Pc, entry.name)
		assert.Equal(entry.a, ip.A, entry.name)
		assert.Equal(entry.flags, ip.Flags, entry.name)
		if entry.name == "sta" {
			mem[10] = 3
		}
		assert.Equal(mem, ip.Memory, entry.name)
	}
}

func TestInterpHalt(t *testing.T) {
	assert := assert.New(t)

	ip := NewInterp()
	ip.Memory[0] = 0x57 // ldi 7
	ip.Memory[1] = 0xf0 // hlt

	halted, err := ip.Step()
	assert.NoError(err)
	assert.False(halted)

	halted, err = ip.Step()
	assert.NoError(err)
	assert.True(halted)
	assert.Equal(2, ip.Ticks)

	before := *ip
	for range 4 {
		halted, err = ip.Step()
		assert.NoError(err)
		assert.True(halted)
	}
	assert.Equal(before, *ip)
}

func TestInterpBadOpcode(t *testing.T) {
	assert := assert.New(t)

	ip := NewInterp()
	ip.Memory[0] = 0x9c

	before := *ip
	_, err := ip.Step()
	assert.ErrorIs(err, ErrOpcodeDecode)
	assert.Equal(ErrOpcode(0x9c), err)
	assert.Equal(before, *ip)
}

func TestInterpOut(t *testing.T) {
	assert := assert.New(t)

	ip := NewInterp()
	ip.Memory[0] = 0x53 // ldi 3
	ip.Memory[1] = 0xe0 // out
	ip.Memory[2] = 0xf0 // hlt

	out := &io.Buffer{Capacity: 1}
	ip.Output = out

	err := Run(ip)
	assert.NoError(err)
	assert.Equal([]uint8{3}, out.Data)

	// A full channel fails the 'out' with the pc not advanced.
	err = ip.Load(ip.Memory[:])
	assert.NoError(err)
	_, err = ip.Step()
	assert.NoError(err)
	_, err = ip.Step()
	assert.ErrorIs(err, io.ErrChannelFull)
	assert.Equal(uint8(1), ip.Pc)
}
