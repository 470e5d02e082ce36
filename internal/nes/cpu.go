package nes

import "log"

const (
	stackStartAddr = uint16(0x100)

	resetVectorAddr = uint16(0xfffc)
	irqVectorAddr   = uint16(0xfffe)

	// Status register value after a reset.
	flagResetValue = uint8(0b0011_0100)
)

const (
	flagC = uint8(1 << iota) // Carry
	flagZ                    // Zero
	flagI                    // Interrupt Disable
	flagD                    // Decimal Mode
	flagB                    // Break Command
	flagU                    // Unused / Push
	flagV                    // Overflow
	flagN                    // Negative
)

const (
	opcodeBRK = uint8(0x00)
	// The canonical KIL encoding. The other KIL bytes go through the
	// dispatch table like any illegal opcode.
	opcodeKIL = uint8(0x02)
)

// Memory is the CPU's only window on the outside world. The Bus satisfies
// it; tests substitute a mock.
type Memory interface {
	Read8(addr uint16) uint8
	Read16(addr uint16) uint16
	Write8(addr uint16, data uint8)
}

type addrMode uint8

const (
	addrModeIMM  addrMode = iota + 1 // Immediate
	addrModeZP                       // Zero Page
	addrModeZPX                      // Zero Page X
	addrModeZPY                      // Zero Page Y
	addrModeABS                      // Absolute
	addrModeABSX                     // Absolute X
	addrModeABSY                     // Absolute Y
	addrModeIND                      // Indirect
	addrModeINDX                     // Indirect X
	addrModeINDY                     // Indirect Y
	addrModeREL                      // Relative
	addrModeACC                      // Accumulator
	addrModeIMP                      // Implied
)

func (mode addrMode) String() string {
	switch mode {
	case addrModeIMM:
		return "IMM"
	case addrModeZP:
		return "ZP"
	case addrModeZPX:
		return "ZPX"
	case addrModeZPY:
		return "ZPY"
	case addrModeABS:
		return "ABS"
	case addrModeABSX:
		return "ABSX"
	case addrModeABSY:
		return "ABSY"
	case addrModeIND:
		return "IND"
	case addrModeINDX:
		return "INDX"
	case addrModeINDY:
		return "INDY"
	case addrModeREL:
		return "REL"
	case addrModeACC:
		return "ACC"
	case addrModeIMP:
		return "IMP"
	}
	return "???"
}

type instr struct {
	name   string
	mode   addrMode
	fn     func()
	cycles uint8
	// pageCycle marks the opcode as eligible for the one-cycle penalty
	// when its operand read crosses a page boundary.
	pageCycle bool
}

// StepResult reports what a single StepInstruction call did.
type StepResult uint8

const (
	// StepExecuted means one ordinary instruction ran to completion.
	StepExecuted StepResult = iota
	// StepBreakpoint means a BRK sat at the program counter; it was
	// skipped without executing the interrupt sequence.
	StepBreakpoint
	// StepHalted means a KIL sat at the program counter.
	StepHalted
)

type CPU struct {
	a  uint8
	x  uint8
	y  uint8
	p  uint8
	sp uint8
	pc uint16

	mem    Memory
	instrs [0x100]instr
	logger *log.Logger

	// cycles consumed by the instruction currently executing; reset on
	// every Tick.
	cycles uint8
	// tickCount counts executed instructions and never resets.
	tickCount uint64
	// maxTicks bounds Run for test and debug sessions. Zero means no
	// ceiling.
	maxTicks uint64

	addrMode     addrMode
	operandAddr  uint16
	operandValue uint8
	pageCrossed  bool
}

func isSameSign(a, b uint8) bool {
	return (a^b)&0x80 == 0
}

func isDiffPage(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

// NewCPU wires a CPU to its memory and seeds the program counter from the
// reset vector.
func NewCPU(mem Memory) *CPU {
	c := &CPU{
		mem:    mem,
		sp:     0xff,
		p:      flagResetValue,
		logger: log.Default(),
	}
	c.initInstructions()
	if mem != nil {
		c.pc = mem.Read16(resetVectorAddr)
	}
	return c
}

// SetLogger replaces the default destination for diagnostics.
func (c *CPU) SetLogger(l *log.Logger) {
	c.logger = l
}

// SetMaxTicks bounds Run to n executed instructions. Zero removes the
// ceiling.
func (c *CPU) SetMaxTicks(n uint64) {
	c.maxTicks = n
}

func (c *CPU) A() uint8          { return c.a }
func (c *CPU) X() uint8          { return c.x }
func (c *CPU) Y() uint8          { return c.y }
func (c *CPU) P() uint8          { return c.p }
func (c *CPU) SP() uint8         { return c.sp }
func (c *CPU) PC() uint16        { return c.pc }
func (c *CPU) Cycles() uint8     { return c.cycles }
func (c *CPU) TickCount() uint64 { return c.tickCount }

func (c CPU) read8(addr uint16) uint8 {
	return c.mem.Read8(addr)
}

func (c CPU) read16(addr uint16) uint16 {
	return c.mem.Read16(addr)
}

func (c *CPU) write8(addr uint16, data uint8) {
	c.mem.Write8(addr, data)
}

func (c CPU) getFlag(flag uint8) bool {
	return c.p&flag > 0
}

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.p |= flag
		return
	}
	c.p &= ^flag
}

// setFlagsZN is the single place Zero and Negative are derived from a
// result byte. Handlers never set them directly.
func (c *CPU) setFlagsZN(value uint8) {
	c.setFlag(flagZ, value == 0)
	c.setFlag(flagN, value&flagN > 0)
}

func (c *CPU) stackPop8() uint8 {
	c.sp++
	return c.read8(stackStartAddr | uint16(c.sp))
}

func (c *CPU) stackPop16() uint16 {
	lo := uint16(c.stackPop8())
	hi := uint16(c.stackPop8())
	return lo | hi<<8
}

func (c *CPU) stackPush8(data uint8) {
	c.write8(stackStartAddr|uint16(c.sp), data)
	c.sp--
}

func (c *CPU) stackPush16(data uint16) {
	lo := uint8(data & 0xff)
	hi := uint8(data >> 8)
	c.stackPush8(hi)
	c.stackPush8(lo)
}

// Reset returns the CPU to its power-on state and reloads the program
// counter from the reset vector.
func (c *CPU) Reset() {
	c.a = 0
	c.x = 0
	c.y = 0
	c.p = flagResetValue
	c.sp = 0xff
	c.pc = c.read16(resetVectorAddr)
	c.cycles = 0
	c.tickCount = 0
}

// IRQ pushes the program counter and status register, loads the program
// counter through the IRQ/BRK vector and masks further interrupts. Nothing
// in this core raises it automatically; the timing layer that would is
// external.
func (c *CPU) IRQ() {
	c.stackPush16(c.pc)
	c.stackPush8(c.p)
	c.pc = c.read16(irqVectorAddr)
	c.setFlag(flagI, true)
	c.cycles += 7
}

// Tick executes exactly one instruction and returns false when the opcode
// at the program counter was the canonical KIL encoding.
func (c *CPU) Tick() bool {
	c.tickCount++
	c.cycles = 0

	opcode := c.read8(c.pc)
	c.pc++
	if opcode == opcodeKIL {
		return false
	}

	ins := c.instrs[opcode]
	c.cycles += ins.cycles
	c.fetch(ins.mode)
	ins.fn()
	if c.pageCrossed && ins.pageCycle {
		c.cycles++
	}

	c.addrMode = 0
	c.operandAddr = 0
	c.operandValue = 0
	c.pageCrossed = false
	return true
}

// Run executes instructions until the next opcode is KIL or BRK, or until
// the tick ceiling is exceeded when one is set.
func (c *CPU) Run() {
	for {
		opcode := c.read8(c.pc)
		if opcode == opcodeKIL || opcode == opcodeBRK {
			return
		}
		c.Tick()
		if c.maxTicks > 0 && c.tickCount > c.maxTicks {
			return
		}
	}
}

// RunUntil executes instructions until the predicate holds. Useful for
// bounded, deterministic test runs.
func (c *CPU) RunUntil(predicate func(*CPU) bool) {
	for !predicate(c) {
		c.Tick()
	}
}

// StepInstruction single-steps for interactive debuggers. A BRK at the
// program counter is skipped and reported as a breakpoint instead of
// pushing an interrupt frame.
func (c *CPU) StepInstruction() StepResult {
	switch c.read8(c.pc) {
	case opcodeBRK:
		c.pc++
		return StepBreakpoint
	case opcodeKIL:
		return StepHalted
	}
	c.Tick()
	return StepExecuted
}

// fetch resolves the operand for the current instruction. For modes with a
// memory operand it leaves the effective address in operandAddr and the
// byte read through it in operandValue; pageCrossed is set when the
// resolved address left the base page.
func (c *CPU) fetch(mode addrMode) {
	c.addrMode = mode
	c.pageCrossed = false
	c.operandAddr = 0
	c.operandValue = 0

	switch mode {
	case addrModeIMM:
		c.operandAddr = c.pc
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZP:
		c.operandAddr = uint16(c.read8(c.pc))
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZPX:
		// The index is added to the zero-page byte only: $C0,X with
		// X=$60 resolves to $20, never $120.
		c.operandAddr = uint16(c.read8(c.pc) + c.x)
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeZPY:
		c.operandAddr = uint16(c.read8(c.pc) + c.y)
		c.pc++
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABS:
		c.operandAddr = c.read16(c.pc)
		c.pc += 2
		c.operandValue = c.read8(c.operandAddr)

	case addrModeABSX:
		baseAddr := c.read16(c.pc)
		c.pc += 2
		c.operandAddr = baseAddr + uint16(c.x)
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(baseAddr, c.operandAddr)

	case addrModeABSY:
		baseAddr := c.read16(c.pc)
		c.pc += 2
		c.operandAddr = baseAddr + uint16(c.y)
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(baseAddr, c.operandAddr)

	case addrModeIND:
		// JMP only. The pointer dereference goes through Read16 and so
		// inherits its page-wrap bug.
		addr := c.read16(c.pc)
		c.pc += 2
		c.operandAddr = c.read16(addr)
		c.operandValue = c.read8(c.operandAddr)

	case addrModeINDX:
		addr := uint16(c.read8(c.pc) + c.x)
		c.pc++
		c.operandAddr = c.read16(addr)
		c.operandValue = c.read8(c.operandAddr)

	case addrModeINDY:
		addr := uint16(c.read8(c.pc))
		c.pc++
		baseAddr := c.read16(addr)
		c.operandAddr = baseAddr + uint16(c.y)
		c.operandValue = c.read8(c.operandAddr)
		c.pageCrossed = isDiffPage(baseAddr, c.operandAddr)

	case addrModeREL:
		offset := uint16(c.read8(c.pc))
		c.pc++
		if offset&0x80 > 0 {
			offset |= 0xff00 // sign extend
		}
		// The branch target is relative to the address right after the
		// full two-byte instruction.
		c.operandAddr = c.pc + offset
		c.pageCrossed = isDiffPage(c.pc, c.operandAddr)

	case addrModeACC:
		c.operandValue = c.a

	case addrModeIMP:
		// Nothing to resolve.

	default:
		// Structurally impossible for any opcode in the table.
		c.logger.Panicf("unsupported addressing mode %d. PC: %04X", mode, c.pc)
	}
}
