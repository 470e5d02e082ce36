package nes

import "fmt"

// SimpleProgram is the trivial mapper: a fixed 32KB ROM image exposed at
// 0x8000-0xFFFF. Images shorter than 32KB are zero padded; the unused tail
// reads as 0x00 (KIL), so a program that runs off its own end halts.
type SimpleProgram struct {
	rom [0x8000]uint8
}

// NewSimpleProgram wraps a ROM image of at most 32KB and points the reset
// vector at 0x8000, the first byte of the image.
func NewSimpleProgram(image []byte) (*SimpleProgram, error) {
	m, err := newSimpleROM(image)
	if err != nil {
		return nil, err
	}
	m.rom[resetVectorAddr-programBaseAddr] = 0x00
	m.rom[resetVectorAddr-programBaseAddr+1] = 0x80
	return m, nil
}

// newSimpleROM wraps an image without touching the reset vector. Cartridge
// images carry their own.
func newSimpleROM(image []byte) (*SimpleProgram, error) {
	m := &SimpleProgram{}
	if len(image) > len(m.rom) {
		return nil, fmt.Errorf("program image is too large: %d bytes, max %d", len(image), len(m.rom))
	}
	copy(m.rom[:], image)
	return m, nil
}

func (m *SimpleProgram) ReadCPU(addr uint16) (uint8, bool) {
	if addr < programBaseAddr {
		return 0, false
	}
	return m.rom[addr&0x7fff], true
}

// WriteCPU swallows writes into the ROM window. The data is discarded.
func (m *SimpleProgram) WriteCPU(addr uint16, data uint8) bool {
	return addr >= programBaseAddr
}
