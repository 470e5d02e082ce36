package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_LAX(t *testing.T) {
	// LAX $10 loads A and X from the same byte.
	bus := newTestBus(t, []byte{0xa7, 0x10, 0x02})
	bus.Write8(0x0010, 0x80)
	cpu := NewCPU(bus)

	cpu.Run()

	assert.Equal(t, uint8(0x80), cpu.a, "A register")
	assert.Equal(t, uint8(0x80), cpu.x, "X register")
	assert.True(t, cpu.getFlag(flagN), "Negative")
}

func Test_SAX(t *testing.T) {
	// SAX $10 stores A AND X without touching flags.
	bus := newTestBus(t, []byte{0x87, 0x10, 0x02})
	cpu := NewCPU(bus)
	cpu.a = 0b1100_1100
	cpu.x = 0b1010_1010
	initP := cpu.p

	cpu.Run()

	assert.Equal(t, uint8(0b1000_1000), bus.Read8(0x0010))
	assert.Equal(t, initP, cpu.p, "P register untouched")
}

func Test_DCP(t *testing.T) {
	// DCP $10 decrements memory and compares against A.
	bus := newTestBus(t, []byte{0xc7, 0x10, 0x02})
	bus.Write8(0x0010, 0x43)
	cpu := NewCPU(bus)
	cpu.a = 0x42

	cpu.Run()

	assert.Equal(t, uint8(0x42), bus.Read8(0x0010), "memory decremented")
	assert.True(t, cpu.getFlag(flagZ), "Zero from the compare")
	assert.True(t, cpu.getFlag(flagC), "Carry from the compare")
}

func Test_ISC(t *testing.T) {
	// ISC $10 increments memory and subtracts it from A.
	bus := newTestBus(t, []byte{0xe7, 0x10, 0x02})
	bus.Write8(0x0010, 0x0f)
	cpu := NewCPU(bus)
	cpu.a = 0x42
	cpu.setFlag(flagC, true)

	cpu.Run()

	assert.Equal(t, uint8(0x10), bus.Read8(0x0010), "memory incremented")
	assert.Equal(t, uint8(0x32), cpu.a, "A register")
	assert.True(t, cpu.getFlag(flagC), "no borrow")
}

func Test_SLO(t *testing.T) {
	// SLO $10 shifts memory left and ORs it into A.
	bus := newTestBus(t, []byte{0x07, 0x10, 0x02})
	bus.Write8(0x0010, 0b1000_0001)
	cpu := NewCPU(bus)
	cpu.a = 0b0000_1000

	cpu.Run()

	assert.Equal(t, uint8(0b0000_0010), bus.Read8(0x0010), "memory shifted")
	assert.Equal(t, uint8(0b0000_1010), cpu.a, "A register")
	assert.True(t, cpu.getFlag(flagC), "Carry from bit 7")
}

func Test_ANC(t *testing.T) {
	cpu := NewCPU(nil)
	cpu.a = 0x80
	cpu.operandValue = 0xff

	cpu.anc()

	assert.Equal(t, uint8(0x80), cpu.a, "A register")
	assert.True(t, cpu.getFlag(flagC), "Carry copies Negative")
	assert.True(t, cpu.getFlag(flagN), "Negative")
}
