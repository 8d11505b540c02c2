package mem

import "testing"

func newTestBus(romSize int) *Bus {
	b := New()
	b.cart.ROM = make([]byte, romSize)
	for i := range b.cart.ROM {
		// bank N, byte i within bank, for easy assertions
		b.cart.ROM[i] = byte(i / romBankSize)
	}
	return b
}

func TestPlainRAMRoundTrip(t *testing.T) {
	b := New()
	b.Write(0xC000, 0x42)
	if got := b.Read(0xC000); got != 0x42 {
		t.Fatalf("Read(0xC000) = 0x%02X, want 0x42", got)
	}
}

func TestRead16LittleEndian(t *testing.T) {
	b := New()
	b.Write(0xC000, 0x34)
	b.Write(0xC001, 0x12)
	if got := b.Read16(0xC000); got != 0x1234 {
		t.Fatalf("Read16 = 0x%04X, want 0x1234", got)
	}
}

func TestLowerROMFixedToBank0InSimpleMode(t *testing.T) {
	b := newTestBus(8 * romBankSize)
	if got := b.Read(0x0010); got != 0 {
		t.Fatalf("Read(0x0010) = %d, want bank 0", got)
	}
}

func TestUpperROMBankSelection(t *testing.T) {
	b := newTestBus(8 * romBankSize)
	b.Write(0x2000, 0x03) // select bank 3
	if got := b.Read(0x4000); got != 3 {
		t.Fatalf("Read(0x4000) after selecting bank 3 = %d, want 3", got)
	}
}

func TestBank0ForcedToBank1(t *testing.T) {
	b := newTestBus(8 * romBankSize)
	b.Write(0x2000, 0x00)
	if b.romBank != 1 {
		t.Fatalf("romBank after writing 0 = %d, want 1 (never selectable)", b.romBank)
	}
	if got := b.Read(0x4000); got != 1 {
		t.Fatalf("Read(0x4000) = %d, want bank 1", got)
	}
}

func TestAdvancedModeSecondaryBankAffectsLowerWindow(t *testing.T) {
	b := newTestBus(128 * romBankSize)
	b.Write(0x6000, 0x01) // advanced mode
	b.Write(0x4000, 0x02) // secondary bank = 2
	if got := b.Read(0x0000); got != 2<<5 {
		t.Fatalf("Read(0x0000) in advanced mode = %d, want %d", got, 2<<5)
	}
}

func TestRAMGatedByAccessFlag(t *testing.T) {
	b := newTestBus(2 * romBankSize)
	b.cart.RAM = make([]byte, ramBankSize)
	if got := b.Read(0xA000); got != 0xFF {
		t.Fatalf("Read(0xA000) with RAM disabled = 0x%02X, want 0xFF", got)
	}
	b.Write(0x0000, 0x0A) // enable RAM access
	b.Write(0xA000, 0x55)
	if got := b.Read(0xA000); got != 0x55 {
		t.Fatalf("Read(0xA000) after enabling RAM = 0x%02X, want 0x55", got)
	}
}

func TestRomBankNeverZeroInvariant(t *testing.T) {
	b := newTestBus(4 * romBankSize)
	for v := 0; v < 32; v++ {
		b.Write(0x2000, byte(v))
		if b.romBank == 0 {
			t.Fatalf("romBank became 0 after writing %d", v)
		}
	}
}
