package nes

import "fmt"

const (
	mmc1RAMSize  = 0x2000
	mmc1RAMMask  = 0x1fff
	mmc1BankSize = 0x4000
	mmc1BankMask = 0x3fff
)

// MMC1 is Nintendo's mapper 1 (SxROM boards). PRG ROM is banked in 16KB
// units through four internal 5-bit registers that games program one bit
// at a time through a serial shift register. An optional 8KB PRG RAM bank
// sits at 0x6000-0x7FFF.
//
// https://wiki.nesdev.com/w/index.php/MMC1
type MMC1 struct {
	ram      []uint8
	prgROM   []uint8
	lastBank uint8

	// Serial interface. A write with bit 7 set, or a write to a different
	// address than the in-progress sequence, resets it without committing.
	shiftReg     uint8
	shiftAddr    uint16
	shiftedCount uint8

	// Committed registers, each 5 bits.
	//
	// control:
	//   CPPMM
	//   |||++- nametable mirroring
	//   |++--- PRG bank mode (0,1: 32KB at 0x8000, low bank bit ignored;
	//   |                     2: first bank fixed at 0x8000, switch 0xC000;
	//   |                     3: last bank fixed at 0xC000, switch 0x8000)
	//   +----- CHR bank mode
	control  uint8
	chrBank0 uint8
	chrBank1 uint8
	prgBank  uint8
}

// NewMMC1 builds the mapper around a flat PRG ROM image. prgRAMSize comes
// from the ROM header and must be 0 (no RAM) or 0x2000.
func NewMMC1(prgROM []byte, prgRAMSize int) (*MMC1, error) {
	if len(prgROM) == 0 || len(prgROM)%mmc1BankSize != 0 {
		return nil, fmt.Errorf("prg rom size must be a multiple of 16KB, got %d", len(prgROM))
	}

	var ram []uint8
	switch prgRAMSize {
	case 0:
	case mmc1RAMSize:
		ram = make([]uint8, mmc1RAMSize)
	default:
		return nil, fmt.Errorf("prg ram size must be 0 or %d, got %d", mmc1RAMSize, prgRAMSize)
	}

	return &MMC1{
		ram:      ram,
		prgROM:   prgROM,
		lastBank: uint8(len(prgROM)/mmc1BankSize - 1),
	}, nil
}

func (m *MMC1) prgBankMode() uint8 {
	return (m.control >> 2) & 0b11
}

// readPRGBank indexes the flat ROM image. A bank outside the declared PRG
// size is a defect in the banking logic, not bad input, so it panics.
func (m *MMC1) readPRGBank(bank uint8, addr uint16) uint8 {
	offset := int(bank)*mmc1BankSize + int(addr&mmc1BankMask)
	if offset >= len(m.prgROM) {
		panic(fmt.Sprintf("prg bank %d out of range for %d-byte rom", bank, len(m.prgROM)))
	}
	return m.prgROM[offset]
}

func (m *MMC1) ReadCPU(addr uint16) (uint8, bool) {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		if m.ram == nil {
			return 0, false
		}
		return m.ram[addr&mmc1RAMMask], true

	case addr >= 0x8000 && addr < 0xc000:
		switch m.prgBankMode() {
		case 0, 1:
			return m.readPRGBank(m.prgBank&0b1110, addr), true
		case 2:
			return m.readPRGBank(0, addr), true
		default:
			return m.readPRGBank(m.prgBank&0b1111, addr), true
		}

	case addr >= 0xc000:
		switch m.prgBankMode() {
		case 0, 1:
			return m.readPRGBank(m.prgBank&0b1110|1, addr), true
		case 2:
			return m.readPRGBank(m.prgBank&0b1111, addr), true
		default:
			return m.readPRGBank(m.lastBank, addr), true
		}
	}
	return 0, false
}

func (m *MMC1) WriteCPU(addr uint16, data uint8) bool {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		if m.ram != nil {
			m.ram[addr&mmc1RAMMask] = data
		}
		return true

	case addr >= 0x8000:
		m.writeShiftReg(addr, data)
		return true
	}
	return false
}

// writeShiftReg feeds one bit of a serial register write. Games program
// the 5-bit registers low bit first:
//
//	LDA value
//	STA $9FFF   ; bit 0
//	LSR A
//	STA $9FFF   ; bit 1
//	...         ; fifth write commits
func (m *MMC1) writeShiftReg(addr uint16, data uint8) {
	if addr != m.shiftAddr {
		m.shiftReg = 0
		m.shiftedCount = 0
		m.shiftAddr = addr
	}

	if data&0x80 != 0 {
		m.shiftReg = 0
		m.shiftedCount = 0
		return
	}

	m.shiftReg = m.shiftReg>>1 | data&1<<4
	m.shiftedCount++
	if m.shiftedCount < 5 {
		return
	}

	switch {
	case addr < 0xa000:
		m.control = m.shiftReg
	case addr < 0xc000:
		m.chrBank0 = m.shiftReg
	case addr < 0xe000:
		m.chrBank1 = m.shiftReg
	default:
		m.prgBank = m.shiftReg
	}
	m.shiftReg = 0
	m.shiftedCount = 0
}
