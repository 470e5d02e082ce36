package nes

// Handlers for the documented opcodes. Every handler runs after fetch has
// resolved the operand, so they read operandAddr/operandValue and never
// touch the program counter except through jumps and branches.

// writeResult stores a rewritten operand either into the accumulator or
// back through the bus, depending on the addressing mode in flight.
func (c *CPU) writeResult(value uint8) {
	if c.addrMode == addrModeACC {
		c.a = value
		return
	}
	c.write8(c.operandAddr, value)
}

// addToA implements the shared 9-bit add used by ADC and SBC. Carry is
// taken from bit 8 of the widened sum; overflow fires only when the
// accumulator and operand share a sign that the result does not.
func (c *CPU) addToA(operand uint8) {
	r16 := uint16(c.a) + uint16(operand)
	if c.getFlag(flagC) {
		r16++
	}
	r8 := uint8(r16)
	c.setFlag(flagC, r16 > 0xff)
	c.setFlag(flagV, isSameSign(c.a, operand) && !isSameSign(c.a, r8))
	c.setFlagsZN(r8)
	c.a = r8
}

func (c *CPU) adc() {
	c.addToA(c.operandValue)
}

// sbc feeds the one's complement of the operand through the ADC path; the
// Carry flag supplies the +1 of two's-complement subtraction, which is why
// a subtraction chain must start with SEC.
func (c *CPU) sbc() {
	c.addToA(^c.operandValue)
}

func (c *CPU) and() {
	c.a &= c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) ora() {
	c.a |= c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) eor() {
	c.a ^= c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) asl() {
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	r := c.operandValue << 1
	c.setFlagsZN(r)
	c.writeResult(r)
}

func (c *CPU) lsr() {
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	r := c.operandValue >> 1
	c.setFlagsZN(r)
	c.writeResult(r)
}

func (c *CPU) rol() {
	r := c.operandValue << 1
	if c.getFlag(flagC) {
		r |= 0x1
	}
	c.setFlag(flagC, c.operandValue&0x80 > 0)
	c.setFlagsZN(r)
	c.writeResult(r)
}

func (c *CPU) ror() {
	r := c.operandValue >> 1
	if c.getFlag(flagC) {
		r |= 0x80
	}
	c.setFlag(flagC, c.operandValue&0x1 > 0)
	c.setFlagsZN(r)
	c.writeResult(r)
}

// branchIf redirects the program counter to the already-resolved relative
// target. Taking the branch costs one cycle, plus one more when the target
// sits on a different page than the instruction that follows.
func (c *CPU) branchIf(condition bool) {
	if !condition {
		return
	}
	c.cycles++
	if c.pageCrossed {
		c.cycles++
	}
	c.pc = c.operandAddr
}

func (c *CPU) bcc() { c.branchIf(!c.getFlag(flagC)) }
func (c *CPU) bcs() { c.branchIf(c.getFlag(flagC)) }
func (c *CPU) bne() { c.branchIf(!c.getFlag(flagZ)) }
func (c *CPU) beq() { c.branchIf(c.getFlag(flagZ)) }
func (c *CPU) bpl() { c.branchIf(!c.getFlag(flagN)) }
func (c *CPU) bmi() { c.branchIf(c.getFlag(flagN)) }
func (c *CPU) bvc() { c.branchIf(!c.getFlag(flagV)) }
func (c *CPU) bvs() { c.branchIf(c.getFlag(flagV)) }

func (c *CPU) bit() {
	m := c.a & c.operandValue
	c.setFlag(flagZ, m == 0)
	c.setFlag(flagN, c.operandValue&flagN > 0)
	c.setFlag(flagV, c.operandValue&flagV > 0)
}

func (c *CPU) brk() {
	c.pc++
	c.stackPush16(c.pc)
	c.stackPush8(c.p | flagB)
	c.setFlag(flagI, true)
	c.pc = c.read16(irqVectorAddr)
}

func (c *CPU) rti() {
	c.p = (c.stackPop8() | flagU) & ^flagB
	c.pc = c.stackPop16()
}

func (c *CPU) jmp() {
	c.pc = c.operandAddr
}

func (c *CPU) jsr() {
	// pc already sits past the operand; the 6502 pushes the address of
	// the last instruction byte.
	c.pc--
	c.stackPush16(c.pc)
	c.pc = c.operandAddr
}

func (c *CPU) rts() {
	c.pc = c.stackPop16()
	c.pc++
}

func (c *CPU) clc() { c.setFlag(flagC, false) }
func (c *CPU) sec() { c.setFlag(flagC, true) }
func (c *CPU) cld() { c.setFlag(flagD, false) }
func (c *CPU) sed() { c.setFlag(flagD, true) }
func (c *CPU) cli() { c.setFlag(flagI, false) }
func (c *CPU) sei() { c.setFlag(flagI, true) }
func (c *CPU) clv() { c.setFlag(flagV, false) }

func (c *CPU) cmp() {
	c.setFlag(flagC, c.a >= c.operandValue)
	c.setFlagsZN(c.a - c.operandValue)
}

func (c *CPU) cpx() {
	c.setFlag(flagC, c.x >= c.operandValue)
	c.setFlagsZN(c.x - c.operandValue)
}

func (c *CPU) cpy() {
	c.setFlag(flagC, c.y >= c.operandValue)
	c.setFlagsZN(c.y - c.operandValue)
}

func (c *CPU) dec() {
	r := c.operandValue - 1
	c.setFlagsZN(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) inc() {
	r := c.operandValue + 1
	c.setFlagsZN(r)
	c.write8(c.operandAddr, r)
}

func (c *CPU) dex() {
	c.x--
	c.setFlagsZN(c.x)
}

func (c *CPU) dey() {
	c.y--
	c.setFlagsZN(c.y)
}

func (c *CPU) inx() {
	c.x++
	c.setFlagsZN(c.x)
}

func (c *CPU) iny() {
	c.y++
	c.setFlagsZN(c.y)
}

func (c *CPU) lda() {
	c.a = c.operandValue
	c.setFlagsZN(c.a)
}

func (c *CPU) ldx() {
	c.x = c.operandValue
	c.setFlagsZN(c.x)
}

func (c *CPU) ldy() {
	c.y = c.operandValue
	c.setFlagsZN(c.y)
}

func (c *CPU) sta() {
	c.write8(c.operandAddr, c.a)
}

func (c *CPU) stx() {
	c.write8(c.operandAddr, c.x)
}

func (c *CPU) sty() {
	c.write8(c.operandAddr, c.y)
}

func (c *CPU) nop() {}

func (c *CPU) pha() {
	c.stackPush8(c.a)
}

func (c *CPU) php() {
	c.stackPush8(c.p | flagB)
}

func (c *CPU) pla() {
	c.a = c.stackPop8()
	c.setFlagsZN(c.a)
}

func (c *CPU) plp() {
	c.p = (c.stackPop8() | flagU) & ^flagB
}

func (c *CPU) tax() {
	c.x = c.a
	c.setFlagsZN(c.x)
}

func (c *CPU) tay() {
	c.y = c.a
	c.setFlagsZN(c.y)
}

func (c *CPU) tsx() {
	c.x = c.sp
	c.setFlagsZN(c.x)
}

func (c *CPU) txa() {
	c.a = c.x
	c.setFlagsZN(c.a)
}

func (c *CPU) txs() {
	c.sp = c.x
}

func (c *CPU) tya() {
	c.a = c.y
	c.setFlagsZN(c.a)
}
