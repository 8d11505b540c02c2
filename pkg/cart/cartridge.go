package cart

// Cartridge owns the immutable ROM image and the mutable external RAM
// backing it. It is owned exclusively by mem.Bus once constructed.
type Cartridge struct {
	ROM    []byte
	RAM    []byte
	Header Header
}

// NewCartridge validates rom's header and allocates external RAM sized
// per the header's RAM-size field (at least large enough for MBC2's
// 512 half-bytes, stored one nibble per byte).
func NewCartridge(rom []byte) (*Cartridge, error) {
	h, err := ParseHeader(rom)
	if err != nil {
		return nil, err
	}

	ramSize := h.RAMSize
	if h.Types.Has(Mbc2) && ramSize < 512 {
		ramSize = 512
	}

	romCopy := make([]byte, len(rom))
	copy(romCopy, rom)

	return &Cartridge{
		ROM:    romCopy,
		RAM:    make([]byte, ramSize),
		Header: *h,
	}, nil
}

// NewEmpty returns a cartridge with no backing ROM image, for tests and
// for constructing a bare Memory before a ROM is loaded.
func NewEmpty() *Cartridge {
	return &Cartridge{
		ROM: make([]byte, 0x8000),
		RAM: make([]byte, 0x2000),
	}
}
