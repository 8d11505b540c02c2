package mem

import "github.com/mikky-j/blazeboy/pkg/cart"

// Mode is the MBC1 banking mode selected by a 0x6000-0x7FFF write.
type Mode int

const (
	Simple Mode = iota
	Advanced
)

const (
	memorySize = 0x10000

	romBankSize = 0x4000
	ramBankSize = 0x2000

	romBankLowMask = 0x1F
	secondaryMask  = 0x03
)

// Bus is the CPU-visible 64 KiB address space, backed by a fixed RAM
// array plus a bank-switched cartridge image. Created empty or from a
// ROM image, mutated only by the CPU via Read/Write, destroyed with the
// emulator that owns it.
type Bus struct {
	data [memorySize]byte

	cart *cart.Cartridge

	romBank       uint8 // 5 bits, invariant: never 0 once selected
	secondaryBank uint8 // 2 bits: upper-window rom_bank bits 5-6 in both modes; also ram_bank and lower-window bank bits in Advanced
	ramAccess     bool
	mode          Mode
}

// New returns a bus with an empty cartridge and romBank defaulted to 1
// (bank 0 is never selectable into the upper window).
func New() *Bus {
	return &Bus{cart: cart.NewEmpty(), romBank: 1}
}

// NewFromROM validates and loads rom, returning a bus ready to run it.
func NewFromROM(rom []byte) (*Bus, error) {
	c, err := cart.NewCartridge(rom)
	if err != nil {
		return nil, err
	}
	return &Bus{cart: c, romBank: 1}, nil
}

// Cartridge exposes the loaded cartridge for inspection (header info,
// capability tags); it is not meant to be mutated directly.
func (b *Bus) Cartridge() *cart.Cartridge { return b.cart }

// Read returns the byte visible at addr, routed through the MBC1 bank
// translation described in SPEC_FULL.md §4.1.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return b.readLowerROM(addr)
	case addr < 0x8000:
		return b.readUpperROM(addr)
	case addr >= 0xA000 && addr < 0xC000:
		return b.readExternalRAM(addr)
	default:
		return b.data[addr]
	}
}

// Read16 composes a little-endian 16-bit value from (addr, addr+1),
// wrapping at the top of the address space.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := b.Read(addr)
	hi := b.Read(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// Write routes addr into either an MBC1 control command (0x0000-0x7FFF),
// external RAM (0xA000-0xBFFF), or a plain byte store elsewhere.
func (b *Bus) Write(addr uint16, v uint8) {
	switch {
	case addr < 0x2000:
		b.ramAccess = v&0x0F == 0x0A
	case addr < 0x4000:
		bank := v & romBankLowMask
		if bank == 0 {
			bank = 1
		}
		b.romBank = bank
	case addr < 0x6000:
		b.secondaryBank = v & secondaryMask
	case addr < 0x8000:
		if v&0x01 != 0 {
			b.mode = Advanced
		} else {
			b.mode = Simple
		}
	case addr >= 0xA000 && addr < 0xC000:
		b.writeExternalRAM(addr, v)
	default:
		b.data[addr] = v
	}
}

// readLowerROM services 0x0000-0x3FFF: fixed bank 0 in Simple mode, the
// secondary-bank-selected high bank in Advanced mode.
func (b *Bus) readLowerROM(addr uint16) uint8 {
	bank := uint32(0)
	if b.mode == Advanced {
		bank = uint32(b.secondaryBank) << 5
	}
	idx := bank*romBankSize + uint32(addr)
	return b.romByte(idx)
}

// readUpperROM services 0x4000-0x7FFF: the full 7-bit bank (secondary
// bits 5-6 plus the 5-bit bank register) in both modes.
func (b *Bus) readUpperROM(addr uint16) uint8 {
	bank := uint32(b.secondaryBank)<<5 | uint32(b.romBank)
	idx := bank*romBankSize + uint32(addr-0x4000)
	return b.romByte(idx)
}

func (b *Bus) romByte(idx uint32) uint8 {
	if int(idx) >= len(b.cart.ROM) {
		return 0xFF
	}
	return b.cart.ROM[idx]
}

// readExternalRAM services 0xA000-0xBFFF reads, gated by ramAccess.
// Disabled RAM reads as 0xFF, matching open-bus behavior on real
// hardware.
func (b *Bus) readExternalRAM(addr uint16) uint8 {
	if !b.ramAccess {
		return 0xFF
	}
	if b.cart.Header.Types.Has(cart.Mbc2) {
		idx := int(addr & 0xFF)
		if idx >= len(b.cart.RAM) {
			return 0xFF
		}
		return b.cart.RAM[idx] & 0x0F
	}
	if b.cart.Header.Types.Has(cart.Mbc1) {
		bank := uint32(0)
		if b.mode == Advanced {
			bank = uint32(b.secondaryBank)
		}
		idx := bank*ramBankSize + uint32(addr&0x1FFF)
		if int(idx) >= len(b.cart.RAM) {
			return 0xFF
		}
		return b.cart.RAM[idx]
	}
	return b.data[addr]
}

// writeExternalRAM services 0xA000-0xBFFF writes: MBC1 bank-addressed
// RAM, MBC2's 512-nibble RAM (low 4 bits only), or a plain byte store
// for cartridges without either tag.
func (b *Bus) writeExternalRAM(addr uint16, v uint8) {
	if !b.ramAccess {
		return
	}
	if b.cart.Header.Types.Has(cart.Mbc2) {
		idx := int(addr & 0xFF)
		if idx < len(b.cart.RAM) {
			b.cart.RAM[idx] = v & 0x0F
		}
		return
	}
	if b.cart.Header.Types.Has(cart.Mbc1) {
		bank := uint32(0)
		if b.mode == Advanced {
			bank = uint32(b.secondaryBank)
		}
		idx := bank*ramBankSize + uint32(addr&0x1FFF)
		if int(idx) < len(b.cart.RAM) {
			b.cart.RAM[idx] = v
		}
		return
	}
	b.data[addr] = v
}

// RomBank returns the currently selected ROM bank register (the
// upper-window bank, excluding secondary bits), for debugging.
func (b *Bus) RomBank() uint8 { return b.romBank }

// Mode returns the current banking mode, for debugging.
func (b *Bus) Mode() Mode { return b.mode }
