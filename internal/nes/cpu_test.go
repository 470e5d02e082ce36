package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memMock struct {
	mock.Mock
}

func (m *memMock) Read8(addr uint16) uint8 {
	args := m.Called(addr)
	return args.Get(0).(uint8)
}

func (m *memMock) Read16(addr uint16) uint16 {
	args := m.Called(addr)
	return args.Get(0).(uint16)
}

func (m *memMock) Write8(addr uint16, data uint8) {
	m.Called(addr, data)
}

// newTestBus returns a bus with no mapper and the reset vector pointing at
// the start of the program window.
func newTestBus(t *testing.T, program []byte) *Bus {
	t.Helper()
	bus := NewBus(nil)
	require.NoError(t, bus.LoadProgram(program))
	return bus
}

func Test_ADC(t *testing.T) {
	type testArgs struct {
		initA        uint8
		operandValue uint8
		initP        uint8
		expectedA    uint8
		expectedP    uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		cpu := NewCPU(nil)
		cpu.a = in.initA
		cpu.p = in.initP
		cpu.operandValue = in.operandValue

		cpu.adc()

		assert.Equal(t, in.expectedA, cpu.a, "A register")
		assert.Equal(t, in.expectedP, cpu.p, "P register")
	}

	t.Run("zero result, no carry", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0,
			operandValue: 0,
			initP:        0,
			expectedA:    0,
			expectedP:    flagZ,
		})
	})

	t.Run("simple addition", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x10,
			operandValue: 0x20,
			initP:        0,
			expectedA:    0x30,
			expectedP:    0,
		})
	})

	t.Run("unsigned wrap sets carry and zero", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x1,
			initP:        0,
			expectedA:    0,
			expectedP:    flagZ | flagC,
		})
	})

	t.Run("signed overflow at 0x7f", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x7f,
			operandValue: 0x1,
			initP:        0,
			expectedA:    0x80,
			expectedP:    flagN | flagV,
		})
	})

	t.Run("two positives overflow to negative", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x50,
			operandValue: 0x50,
			initP:        0,
			expectedA:    0xa0,
			expectedP:    flagN | flagV,
		})
	})

	t.Run("carry in adds one", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x50,
			operandValue: 0x50,
			initP:        flagC,
			expectedA:    0xa1,
			expectedP:    flagN | flagV,
		})
	})

	t.Run("carry in with wrap", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0xff,
			operandValue: 0x1,
			initP:        flagC,
			expectedA:    0x01,
			expectedP:    flagC,
		})
	})

	t.Run("two negatives overflow to positive", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x80,
			operandValue: 0x80,
			initP:        0,
			expectedA:    0,
			expectedP:    flagZ | flagC | flagV,
		})
	})
}

func Test_SBC(t *testing.T) {
	type testArgs struct {
		initA        uint8
		operandValue uint8
		initP        uint8
		expectedA    uint8
		expectedP    uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		cpu := NewCPU(nil)
		cpu.a = in.initA
		cpu.p = in.initP
		cpu.operandValue = in.operandValue

		cpu.sbc()

		assert.Equal(t, in.expectedA, cpu.a, "A register")
		assert.Equal(t, in.expectedP, cpu.p, "P register")
	}

	t.Run("subtraction with carry set", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x33,
			operandValue: 0x11,
			initP:        flagC,
			expectedA:    0x22,
			expectedP:    flagC,
		})
	})

	t.Run("forgotten SEC costs one", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x33,
			operandValue: 0x11,
			initP:        0,
			expectedA:    0x21,
			expectedP:    flagC,
		})
	})

	t.Run("borrow clears carry", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x10,
			operandValue: 0x20,
			initP:        flagC,
			expectedA:    0xf0,
			expectedP:    flagN,
		})
	})

	t.Run("zero result", func(t *testing.T) {
		testDo(t, testArgs{
			initA:        0x42,
			operandValue: 0x42,
			initP:        flagC,
			expectedA:    0,
			expectedP:    flagZ | flagC,
		})
	})
}

func Test_Shifts(t *testing.T) {
	type testArgs struct {
		op        func(*CPU)
		initA     uint8
		initP     uint8
		expectedA uint8
		expectedP uint8
	}

	testDo := func(t *testing.T, in testArgs) {
		cpu := NewCPU(nil)
		cpu.a = in.initA
		cpu.p = in.initP
		cpu.addrMode = addrModeACC
		cpu.operandValue = in.initA

		in.op(cpu)

		assert.Equal(t, in.expectedA, cpu.a, "A register")
		assert.Equal(t, in.expectedP, cpu.p, "P register")
	}

	t.Run("ASL captures bit 7 into carry", func(t *testing.T) {
		testDo(t, testArgs{
			op:        (*CPU).asl,
			initA:     0b1000_0001,
			expectedA: 0b0000_0010,
			expectedP: flagC,
		})
	})

	t.Run("LSR captures bit 0 into carry", func(t *testing.T) {
		testDo(t, testArgs{
			op:        (*CPU).lsr,
			initA:     0b0000_0011,
			expectedA: 0b0000_0001,
			expectedP: flagC,
		})
	})

	t.Run("ROL shifts carry into bit 0", func(t *testing.T) {
		testDo(t, testArgs{
			op:        (*CPU).rol,
			initA:     0b0100_0000,
			initP:     flagC,
			expectedA: 0b1000_0001,
			expectedP: flagN,
		})
	})

	t.Run("ROR shifts carry into bit 7", func(t *testing.T) {
		testDo(t, testArgs{
			op:        (*CPU).ror,
			initA:     0b0000_0001,
			initP:     flagC,
			expectedA: 0b1000_0000,
			expectedP: flagN | flagC,
		})
	})
}

func Test_Branches(t *testing.T) {
	type testArgs struct {
		initP          uint8
		initPC         uint16
		targetAddr     uint16
		pageCrossed    bool
		expectedPC     uint16
		expectedCycles uint8
	}

	testDo := func(t *testing.T, op func(*CPU), in testArgs) {
		cpu := NewCPU(nil)
		cpu.p = in.initP
		cpu.pc = in.initPC
		cpu.operandAddr = in.targetAddr
		cpu.pageCrossed = in.pageCrossed

		op(cpu)

		assert.Equal(t, in.expectedPC, cpu.pc, "PC register")
		assert.Equal(t, in.expectedCycles, cpu.cycles, "Cycles")
	}

	t.Run("not taken costs nothing", func(t *testing.T) {
		testDo(t, (*CPU).bne, testArgs{
			initP:          flagZ,
			initPC:         0x8000,
			targetAddr:     0x8010,
			expectedPC:     0x8000,
			expectedCycles: 0,
		})
	})

	t.Run("taken costs one cycle", func(t *testing.T) {
		testDo(t, (*CPU).bne, testArgs{
			initPC:         0x8000,
			targetAddr:     0x8010,
			expectedPC:     0x8010,
			expectedCycles: 1,
		})
	})

	t.Run("taken across a page costs two", func(t *testing.T) {
		testDo(t, (*CPU).bne, testArgs{
			initPC:         0x80f0,
			targetAddr:     0x8110,
			pageCrossed:    true,
			expectedPC:     0x8110,
			expectedCycles: 2,
		})
	})
}

func Test_StackRoundTrip(t *testing.T) {
	cpu := NewCPU(newTestBus(t, nil))

	initSP := cpu.sp
	data := []uint8{0x11, 0x22, 0x33, 0x44}
	for _, b := range data {
		cpu.stackPush8(b)
	}
	for i := len(data) - 1; i >= 0; i-- {
		assert.Equal(t, data[i], cpu.stackPop8())
	}
	assert.Equal(t, initSP, cpu.sp, "SP register")
}

func Test_StackPointerWrap(t *testing.T) {
	cpu := NewCPU(newTestBus(t, nil))

	cpu.sp = 0x00
	cpu.stackPush8(0x42)
	assert.Equal(t, uint8(0xff), cpu.sp, "SP register after wrap")
	assert.Equal(t, uint8(0x42), cpu.stackPop8())
	assert.Equal(t, uint8(0x00), cpu.sp, "SP register after round trip")
}

func Test_StackPush16Order(t *testing.T) {
	cpu := NewCPU(newTestBus(t, nil))

	cpu.stackPush16(0x1234)
	// Low byte pushed last so it is pulled first.
	assert.Equal(t, uint8(0x34), cpu.read8((stackStartAddr|uint16(cpu.sp))+1))
	assert.Equal(t, uint8(0x12), cpu.read8((stackStartAddr|uint16(cpu.sp))+2))
	assert.Equal(t, uint16(0x1234), cpu.stackPop16())
}

func Test_NewCPU_ResetState(t *testing.T) {
	cpu := NewCPU(newTestBus(t, nil))

	assert.Equal(t, uint8(0), cpu.a, "A register")
	assert.Equal(t, uint8(0), cpu.x, "X register")
	assert.Equal(t, uint8(0), cpu.y, "Y register")
	assert.Equal(t, uint8(0xff), cpu.sp, "SP register")
	assert.Equal(t, flagResetValue, cpu.p, "P register")
	assert.Equal(t, uint16(0x8000), cpu.pc, "PC register from reset vector")
}

func Test_Reset(t *testing.T) {
	cpu := NewCPU(newTestBus(t, []byte{0xa9, 0x66, 0x02})) // LDA #$66; KIL
	cpu.Run()
	require.Equal(t, uint8(0x66), cpu.a)

	cpu.Reset()

	assert.Equal(t, uint8(0), cpu.a, "A register")
	assert.Equal(t, flagResetValue, cpu.p, "P register")
	assert.Equal(t, uint8(0xff), cpu.sp, "SP register")
	assert.Equal(t, uint16(0x8000), cpu.pc, "PC register")
	assert.Equal(t, uint64(0), cpu.tickCount, "tick count")
}

func Test_Tick_KILHalts(t *testing.T) {
	mem := new(memMock)
	mem.On("Read8", uint16(0x0000)).Return(uint8(opcodeKIL))

	cpu := NewCPU(nil)
	cpu.mem = mem

	assert.False(t, cpu.Tick())
	assert.Equal(t, uint16(0x0001), cpu.pc, "PC register")
	assert.Equal(t, uint64(1), cpu.tickCount, "tick count")
	mem.AssertExpectations(t)
}

func Test_Run_EndToEnd(t *testing.T) {
	// LDA #$66; ADC #$55; KIL
	cpu := NewCPU(newTestBus(t, []byte{0xa9, 0x66, 0x69, 0x55, 0x02}))

	cpu.Run()

	assert.Equal(t, uint8(0xbb), cpu.a, "A register")
	assert.Equal(t, uint64(2), cpu.tickCount, "tick count")
	assert.False(t, cpu.getFlag(flagC), "Carry")
	assert.False(t, cpu.getFlag(flagZ), "Zero")
	// 0x66 and 0x55 are both positive and the sum is not.
	assert.True(t, cpu.getFlag(flagV), "Overflow")
	assert.True(t, cpu.getFlag(flagN), "Negative")
	assert.Equal(t, uint16(0x8004), cpu.pc, "PC register stops before KIL")
}

func Test_Run_StopsBeforeBRK(t *testing.T) {
	// LDA #$01; BRK
	cpu := NewCPU(newTestBus(t, []byte{0xa9, 0x01, 0x00}))

	cpu.Run()

	assert.Equal(t, uint8(0x01), cpu.a, "A register")
	assert.Equal(t, uint16(0x8002), cpu.pc, "PC register stops before BRK")
}

func Test_Run_MaxTicks(t *testing.T) {
	// JMP $8000 spins forever without a ceiling.
	cpu := NewCPU(newTestBus(t, []byte{0x4c, 0x00, 0x80}))
	cpu.SetMaxTicks(10)

	cpu.Run()

	assert.Equal(t, uint64(11), cpu.tickCount, "tick count")
}

func Test_RunUntil(t *testing.T) {
	// INX; JMP $8000
	cpu := NewCPU(newTestBus(t, []byte{0xe8, 0x4c, 0x00, 0x80}))

	cpu.RunUntil(func(c *CPU) bool { return c.X() == 5 })

	assert.Equal(t, uint8(5), cpu.x, "X register")
}

func Test_StepInstruction(t *testing.T) {
	t.Run("ordinary instruction executes", func(t *testing.T) {
		cpu := NewCPU(newTestBus(t, []byte{0xe8})) // INX
		assert.Equal(t, StepExecuted, cpu.StepInstruction())
		assert.Equal(t, uint8(1), cpu.x, "X register")
	})

	t.Run("BRK reports a breakpoint and is skipped", func(t *testing.T) {
		cpu := NewCPU(newTestBus(t, []byte{0x00, 0xe8})) // BRK; INX
		initSP := cpu.sp

		assert.Equal(t, StepBreakpoint, cpu.StepInstruction())
		assert.Equal(t, uint16(0x8001), cpu.pc, "PC register")
		assert.Equal(t, initSP, cpu.sp, "no interrupt frame pushed")

		assert.Equal(t, StepExecuted, cpu.StepInstruction())
		assert.Equal(t, uint8(1), cpu.x, "X register")
	})

	t.Run("KIL reports a halt without consuming", func(t *testing.T) {
		cpu := NewCPU(newTestBus(t, []byte{0x02}))
		assert.Equal(t, StepHalted, cpu.StepInstruction())
		assert.Equal(t, uint16(0x8000), cpu.pc, "PC register")
	})
}

func Test_BRK(t *testing.T) {
	bus := newTestBus(t, []byte{0x00})
	bus.Write8(irqVectorAddr, 0x34)
	bus.Write8(irqVectorAddr+1, 0x12)
	cpu := NewCPU(bus)
	initP := cpu.p

	require.True(t, cpu.Tick())

	assert.Equal(t, uint16(0x1234), cpu.pc, "PC register")
	assert.True(t, cpu.getFlag(flagI), "InterruptDisable")
	// BRK pushes the address two past the opcode and the status with the
	// Break bit set.
	assert.Equal(t, initP|flagB, cpu.stackPop8(), "pushed P")
	assert.Equal(t, uint16(0x8002), cpu.stackPop16(), "pushed PC")
}

func Test_IRQ(t *testing.T) {
	bus := newTestBus(t, nil)
	bus.Write8(irqVectorAddr, 0x00)
	bus.Write8(irqVectorAddr+1, 0x90)
	cpu := NewCPU(bus)
	cpu.pc = 0x8123
	initP := cpu.p

	cpu.IRQ()

	assert.Equal(t, uint16(0x9000), cpu.pc, "PC register")
	assert.True(t, cpu.getFlag(flagI), "InterruptDisable")
	assert.Equal(t, uint8(7), cpu.cycles, "Cycles")
	assert.Equal(t, initP, cpu.stackPop8(), "pushed P")
	assert.Equal(t, uint16(0x8123), cpu.stackPop16(), "pushed PC")
}

func Test_JSR_RTS(t *testing.T) {
	// JSR $8005; KIL; NOP; LDA #$07; RTS
	cpu := NewCPU(newTestBus(t, []byte{
		0x20, 0x05, 0x80, // 0x8000 JSR $8005
		0x02,       // 0x8003 KIL
		0xea,       // 0x8004 NOP
		0xa9, 0x07, // 0x8005 LDA #$07
		0x60, // 0x8007 RTS
	}))

	cpu.Run()

	assert.Equal(t, uint8(0x07), cpu.a, "A register")
	assert.Equal(t, uint16(0x8003), cpu.pc, "PC register back after RTS")
	assert.Equal(t, uint8(0xff), cpu.sp, "SP register balanced")
}

func Test_PHP_PLP(t *testing.T) {
	cpu := NewCPU(newTestBus(t, nil))
	cpu.p = flagC | flagN

	cpu.php()
	pushed := cpu.read8((stackStartAddr | uint16(cpu.sp)) + 1)
	assert.Equal(t, flagC|flagN|flagB, pushed, "PHP pushes with Break set")

	cpu.p = 0
	cpu.plp()
	assert.Equal(t, flagC|flagN|flagU, cpu.p, "PLP drops Break, forces Unused")
}
