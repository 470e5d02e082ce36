package nes

import "fmt"

// Disassemble renders the whole address space as one instruction per
// starting address. labels maps absolute addresses to human-readable names
// and may be nil; a labelled address gets its name prepended. The output is
// advisory only, data bytes decode as whatever instruction they resemble.
func (c *CPU) Disassemble(labels map[uint16]string) map[uint16]string {
	disasm := make(map[uint16]string, 0x10000)

	addr := uint32(0)
	for addr <= 0xffff {
		pc := uint16(addr)
		opcode := c.read8(pc)
		ins := c.instrs[opcode]

		pc++
		var text string
		skip := uint32(0)
		switch ins.mode {
		case addrModeIMM:
			text = fmt.Sprintf("%s #$%02X", ins.name, c.read8(pc))
			skip = 1
		case addrModeZP:
			text = fmt.Sprintf("%s $%02X", ins.name, c.read8(pc))
			skip = 1
		case addrModeZPX:
			text = fmt.Sprintf("%s $%02X,X", ins.name, c.read8(pc))
			skip = 1
		case addrModeZPY:
			text = fmt.Sprintf("%s $%02X,Y", ins.name, c.read8(pc))
			skip = 1
		case addrModeABS:
			text = fmt.Sprintf("%s $%04X", ins.name, c.read16(pc))
			skip = 2
		case addrModeABSX:
			text = fmt.Sprintf("%s $%04X,X", ins.name, c.read16(pc))
			skip = 2
		case addrModeABSY:
			text = fmt.Sprintf("%s $%04X,Y", ins.name, c.read16(pc))
			skip = 2
		case addrModeIND:
			text = fmt.Sprintf("%s ($%04X)", ins.name, c.read16(pc))
			skip = 2
		case addrModeINDX:
			text = fmt.Sprintf("%s ($%02X,X)", ins.name, c.read8(pc))
			skip = 1
		case addrModeINDY:
			text = fmt.Sprintf("%s ($%02X),Y", ins.name, c.read8(pc))
			skip = 1
		case addrModeREL:
			operand := uint16(c.read8(pc))
			if operand&0x80 > 0 {
				operand |= 0xff00 // sign extend
			}
			target := pc + 1 + operand
			if label, ok := labels[target]; ok {
				text = fmt.Sprintf("%s %s", ins.name, label)
			} else {
				text = fmt.Sprintf("%s $%04X", ins.name, target)
			}
			skip = 1
		case addrModeACC:
			text = fmt.Sprintf("%s A", ins.name)
		default:
			text = ins.name
		}

		if label, ok := labels[uint16(addr)]; ok {
			disasm[uint16(addr)] = fmt.Sprintf("$%04X <%s>: %s", addr, label, text)
		} else {
			disasm[uint16(addr)] = fmt.Sprintf("$%04X: %s", addr, text)
		}

		addr = addr + 1 + skip
	}

	return disasm
}
