package nes

import "fmt"

const (
	ramEndAddr     = 0x2000
	ppuRegEndAddr  = 0x4000
	mapperBaseAddr = 0x4020

	programBaseAddr = 0x8000
	maxProgramSize  = 0x8000
)

// Bus is the CPU-visible address space. It owns 64KB of backing memory
// and redirects mirrored regions before every access:
//
//	0x0000-0x1FFF  2KB internal RAM, mirrored every 0x800 bytes
//	0x2000-0x3FFF  8 PPU registers, mirrored every 8 bytes
//	0x4020-0xFFFF  offered to the cartridge mapper first
//
// Addresses the mapper declines fall through to the backing array, so a
// bare Bus with no mapper behaves as flat RAM.
type Bus struct {
	mem    [0x10000]uint8
	mapper Mapper
}

// NewBus creates a bus with the given mapper. mapper may be nil.
func NewBus(mapper Mapper) *Bus {
	return &Bus{mapper: mapper}
}

// mapAddr collapses mirrored regions to their canonical address.
func (b *Bus) mapAddr(addr uint16) uint16 {
	switch {
	case addr < ramEndAddr:
		return addr & 0x07ff
	case addr < ppuRegEndAddr:
		return 0x2000 + addr%8
	default:
		return addr
	}
}

func (b *Bus) Read8(addr uint16) uint8 {
	if b.mapper != nil && addr >= mapperBaseAddr {
		if data, ok := b.mapper.ReadCPU(addr); ok {
			return data
		}
	}
	return b.mem[b.mapAddr(addr)]
}

func (b *Bus) Write8(addr uint16, data uint8) {
	if b.mapper != nil && addr >= mapperBaseAddr {
		if b.mapper.WriteCPU(addr, data) {
			return
		}
	}
	b.mem[b.mapAddr(addr)] = data
}

// Read16 reads a little-endian word. The high byte is fetched with only
// the low byte of the address incremented, so a read at 0x02FF takes its
// high byte from 0x0200. The 6502 does this for every 16-bit fetch and
// code in the wild depends on it.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hiAddr := addr&0xff00 | (addr+1)&0x00ff
	hi := uint16(b.Read8(hiAddr))
	return hi<<8 | lo
}

// LoadProgram copies raw machine code into the 0x8000-0xFFFF window of the
// backing memory and points the reset vector at 0x8000. It is a convenience
// for running bare programs without a cartridge.
func (b *Bus) LoadProgram(program []byte) error {
	if len(program) > maxProgramSize {
		return fmt.Errorf("program is too large: %d bytes, max %d", len(program), maxProgramSize)
	}
	copy(b.mem[programBaseAddr:], program)
	b.mem[resetVectorAddr] = 0x00
	b.mem[resetVectorAddr+1] = 0x80
	return nil
}
