package nes

import "fmt"

// Mapper is cartridge hardware visible on the CPU bus. ReadCPU returns
// false when the address is not handled by the cartridge, in which case
// the bus serves it from its own memory. WriteCPU works the same way:
// a true return means the write was consumed (even if it landed in ROM
// and had no effect).
type Mapper interface {
	ReadCPU(addr uint16) (uint8, bool)
	WriteCPU(addr uint16, data uint8) bool
}

// newMapper builds the mapper a cartridge asks for.
func newMapper(id uint8, prgROM []byte, prgRAMSize int) (Mapper, error) {
	switch id {
	case 0:
		// NROM: a 16KB image is mirrored into both halves of the window.
		// The image carries its own interrupt vectors.
		if len(prgROM) == 0x4000 {
			doubled := make([]uint8, 2*len(prgROM))
			copy(doubled, prgROM)
			copy(doubled[len(prgROM):], prgROM)
			prgROM = doubled
		}
		return newSimpleROM(prgROM)
	case 1:
		return NewMMC1(prgROM, prgRAMSize)
	default:
		return nil, fmt.Errorf("unsupported mapper id %d", id)
	}
}
