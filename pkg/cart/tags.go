package cart

// Type is a bitmask of cartridge capability tags. A single header byte
// can select several of these at once (e.g. MBC1+RAM+BATTERY).
type Type uint32

const (
	Rom Type = 1 << iota
	Mbc1
	Mbc2
	Mbc3
	Mbc5
	Mbc6
	Mbc7
	Ram
	Battery
	Timer
	Rumble
	Sensor
	MMM01
	Camera
	Tama5
	HuC1
	HuC3
)

// Has reports whether every tag in want is present in t.
func (t Type) Has(want Type) bool {
	return t&want == want
}

// cartridgeTypeTable maps the ROM header's cartridge-type byte (0x0147)
// to its capability tag set. Ported from original_source's
// load_catridge_type match arms; an unmapped byte is a header error.
var cartridgeTypeTable = map[byte]Type{
	0x00: Rom,
	0x01: Mbc1,
	0x02: Mbc1 | Ram,
	0x03: Mbc1 | Ram | Battery,
	0x05: Mbc2,
	0x06: Mbc2 | Battery,
	0x08: Rom | Ram,
	0x09: Rom | Ram | Battery,
	0x0B: MMM01,
	0x0C: MMM01 | Ram,
	0x0D: MMM01 | Ram | Battery,
	0x0F: Mbc3 | Timer | Battery,
	0x10: Mbc3 | Timer | Ram | Battery,
	0x11: Mbc3,
	0x12: Mbc3 | Ram,
	0x13: Mbc3 | Ram | Battery,
	0x19: Mbc5,
	0x1A: Mbc5 | Ram,
	0x1B: Mbc5 | Ram | Battery,
	0x1C: Mbc5 | Rumble,
	0x1D: Mbc5 | Rumble | Ram,
	0x1E: Mbc5 | Rumble | Ram | Battery,
	0x20: Mbc6,
	0x22: Mbc7 | Rumble | Ram | Battery | Sensor,
	0xFC: Camera,
	0xFD: Tama5,
	0xFE: HuC3,
	0xFF: HuC1 | Ram | Battery,
}

// typeFromByte resolves a header cartridge-type byte to its tag set.
func typeFromByte(b byte) (Type, bool) {
	t, ok := cartridgeTypeTable[b]
	return t, ok
}
