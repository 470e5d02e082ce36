package nes

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	inesMagic        = 0x1a53454e
	prgBankSizeBytes = 0x4000
	chrBankSizeBytes = 0x2000
	prgRAMSizeBytes  = 0x2000
)

// Cart is a decoded iNES image together with the mapper it asked for.
type Cart struct {
	prgMem []uint8
	chrMem []uint8

	prgBanks uint8
	chrBanks uint8
	mapperID uint8
	mirror   uint8 // 0: horizontal, 1: vertical

	mapper Mapper
}

// NewCartFromFile reads a .nes file and returns a Cart.
// Supported NES format: iNES
func NewCartFromFile(path string) (*Cart, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %s", err)
	}
	defer file.Close()

	return NewCartFromReader(file)
}

// NewCartFromReader decodes an iNES image from r.
func NewCartFromReader(r io.ReadSeeker) (*Cart, error) {
	var header struct {
		Magic      uint32
		PrgRomSize uint8
		ChrRomSize uint8
		Flags6     uint8
		Flags7     uint8
		Flags8     uint8
		Flags9     uint8
		Flags10    uint8
		_          [5]uint8 // unused
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("couldn't read the header: %s", err)
	}
	if header.Magic != inesMagic {
		return nil, fmt.Errorf("invalid header")
	}
	// the second bit of flags6 is the trainer flag
	if header.Flags6&0x4 != 0 {
		if _, err := r.Seek(512, io.SeekCurrent); err != nil {
			return nil, fmt.Errorf("couldn't skip the trainer: %s", err)
		}
	}

	// flag6 and flag7 contain part of the mapper ID in 4 high bits
	// flag6: lower 4 bits of mapper ID
	// flag7: upper 4 bits of mapper ID
	mapperID := (header.Flags7 & 0xf0) | (header.Flags6 >> 4)

	cart := &Cart{
		prgMem:   make([]uint8, int(header.PrgRomSize)*prgBankSizeBytes),
		chrMem:   make([]uint8, int(header.ChrRomSize)*chrBankSizeBytes),
		prgBanks: header.PrgRomSize,
		chrBanks: header.ChrRomSize,
		mapperID: mapperID,
		mirror:   header.Flags6 & 0x1,
	}

	if n, err := io.ReadFull(r, cart.prgMem); err != nil {
		return nil, fmt.Errorf("couldn't read PRG ROM: read %d of %d bytes: %s", n, len(cart.prgMem), err)
	}
	if n, err := io.ReadFull(r, cart.chrMem); err != nil {
		return nil, fmt.Errorf("couldn't read CHR ROM: read %d of %d bytes: %s", n, len(cart.chrMem), err)
	}

	// Flags 8 counts 8KB PRG RAM banks; bit 1 of flags 6 marks battery
	// backed RAM. Either way the MMC1 board carries a single 8KB chip.
	prgRAMSize := int(header.Flags8) * prgRAMSizeBytes
	if prgRAMSize == 0 && header.Flags6&0x2 != 0 {
		prgRAMSize = prgRAMSizeBytes
	}

	mapper, err := newMapper(mapperID, cart.prgMem, prgRAMSize)
	if err != nil {
		return nil, fmt.Errorf("couldn't create the mapper: %s", err)
	}
	cart.mapper = mapper

	return cart, nil
}

// Mapper returns the cartridge hardware to install on the bus.
func (c *Cart) Mapper() Mapper {
	return c.mapper
}

// MapperID reports the iNES mapper number from the header.
func (c *Cart) MapperID() uint8 {
	return c.mapperID
}

// PRGBanks reports the number of 16KB PRG ROM banks.
func (c *Cart) PRGBanks() uint8 {
	return c.prgBanks
}

// CHRBanks reports the number of 8KB CHR ROM banks.
func (c *Cart) CHRBanks() uint8 {
	return c.chrBanks
}
