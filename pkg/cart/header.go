package cart

import (
	"errors"
	"fmt"
)

// Header-relevant offsets within the ROM image.
const (
	logoStart        = 0x0104
	logoEnd          = 0x0134 // exclusive
	titleStart       = 0x0134
	titleEnd         = 0x0144 // exclusive
	newLicenseeAddr  = 0x0144
	sgbFlagAddr      = 0x0146
	typeAddr         = 0x0147
	romSizeAddr      = 0x0148
	ramSizeAddr      = 0x0149
	destCodeAddr     = 0x014A
	oldLicenseeAddr  = 0x014B
	versionAddr      = 0x014C
	headerChecksum   = 0x014D
	globalChecksumHi = 0x014E
	headerMinLen     = globalChecksumHi + 2
)

// nintendoLogo is the fixed 48-byte logo every cartridge header carries
// at 0x0104-0x0133; a mismatch marks the image as corrupt or not a Game
// Boy ROM.
var nintendoLogo = [48]byte{
	0xCE, 0xED, 0x66, 0x66, 0xCC, 0x0D, 0x00, 0x0B, 0x03, 0x73, 0x00, 0x83, 0x00, 0x0C, 0x00,
	0x0D, 0x00, 0x08, 0x11, 0x1F, 0x88, 0x89, 0x00, 0x0E, 0xDC, 0xCC, 0x6E, 0xE6, 0xDD, 0xDD,
	0xD9, 0x99, 0xBB, 0xBB, 0x67, 0x63, 0x6E, 0x0E, 0xEC, 0xCC, 0xDD, 0xDC, 0x99, 0x9F, 0xBB,
	0xB9, 0x33, 0x3E,
}

var (
	ErrTooShort             = errors.New("cart: rom shorter than header")
	ErrLogoMismatch         = errors.New("cart: nintendo logo mismatch")
	ErrEmptyTitle           = errors.New("cart: title is all zero bytes")
	ErrUnknownCartridgeType = errors.New("cart: unrecognized cartridge-type byte")
	ErrUnknownRamSize       = errors.New("cart: unrecognized ram-size byte")
	ErrHeaderChecksum       = errors.New("cart: header checksum mismatch")
	ErrUnknownLicensee      = errors.New("cart: unrecognized licensee code")
)

// Header is the subset of ROM header fields the MBC and loader need.
type Header struct {
	Title          string
	Licensee       string
	SGB            bool
	Types          Type
	ROMSize        int // bytes
	RAMSize        int // bytes
	Japanese       bool
	Version        uint8
	GlobalChecksum uint16
}

// ramSizeTable maps the 0x0149 ram-size code to a byte count. Ported
// from original_source's get_ram.
var ramSizeTable = map[byte]int{
	0x00: 0,
	0x02: 8 * 1024,
	0x03: 32 * 1024,
	0x04: 128 * 1024,
	0x05: 64 * 1024,
}

// ParseHeader validates and decodes the cartridge header embedded in a
// raw ROM image. It does not copy rom; Cartridge construction does.
func ParseHeader(rom []byte) (*Header, error) {
	if len(rom) < headerMinLen {
		return nil, ErrTooShort
	}

	logo := rom[logoStart:logoEnd]
	for i, b := range nintendoLogo {
		if logo[i] != b {
			return nil, ErrLogoMismatch
		}
	}

	title := rom[titleStart:titleEnd]
	allZero := true
	for _, b := range title {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return nil, ErrEmptyTitle
	}

	types, ok := typeFromByte(rom[typeAddr])
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownCartridgeType, rom[typeAddr])
	}

	ramSize, ok := ramSizeTable[rom[ramSizeAddr]]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02X", ErrUnknownRamSize, rom[ramSizeAddr])
	}

	if err := verifyHeaderChecksum(rom); err != nil {
		return nil, err
	}

	licensee, err := resolveLicensee(rom)
	if err != nil {
		return nil, err
	}

	return &Header{
		Title:          trimTitle(title),
		Licensee:       licensee,
		SGB:            rom[sgbFlagAddr] == 0x03,
		Types:          types,
		ROMSize:        32 * 1024 << rom[romSizeAddr],
		RAMSize:        ramSize,
		Japanese:       rom[destCodeAddr] == 0x00,
		Version:        rom[versionAddr],
		GlobalChecksum: uint16(rom[globalChecksumHi])<<8 | uint16(rom[globalChecksumHi+1]),
	}, nil
}

// verifyHeaderChecksum recomputes the header checksum and compares it
// against the stored byte at 0x014D. original_source computes the same
// running sum but only tests it for non-zero; SPEC_FULL's Open Question
// resolution is the canonical equality comparison (see DESIGN.md).
func verifyHeaderChecksum(rom []byte) error {
	var x int32
	for i := titleStart; i <= versionAddr; i++ {
		x = x - int32(rom[i]) - 1
	}
	if uint8(x) != rom[headerChecksum] {
		return ErrHeaderChecksum
	}
	return nil
}

// resolveLicensee follows the new/old licensee split the original
// source implements: 0x014B == 0x33 routes through the two-character
// new-licensee table, anything else is a direct old-licensee lookup.
func resolveLicensee(rom []byte) (string, error) {
	if rom[oldLicenseeAddr] == 0x33 {
		name, ok := newLicenseeTable[rom[newLicenseeAddr]]
		if !ok {
			return "", fmt.Errorf("%w: new 0x%02X", ErrUnknownLicensee, rom[newLicenseeAddr])
		}
		return name, nil
	}
	name, ok := oldLicenseeTable[rom[oldLicenseeAddr]]
	if !ok {
		return "", fmt.Errorf("%w: old 0x%02X", ErrUnknownLicensee, rom[oldLicenseeAddr])
	}
	return name, nil
}

func trimTitle(title []byte) string {
	end := len(title)
	for end > 0 && title[end-1] == 0 {
		end--
	}
	return string(title[:end])
}
