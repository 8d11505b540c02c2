package cpu

import (
	"testing"

	"github.com/mikky-j/blazeboy/pkg/reg"
)

func TestExecSBCBorrowsCarryIn(t *testing.T) {
	c := newTestCPU()
	c.Reg.A = 0x00
	c.Reg.SetFlag(reg.FlagCarry, true)
	c.execSbc(0x00)
	if c.Reg.A != 0xFF {
		t.Fatalf("A = 0x%02X, want 0xFF", c.Reg.A)
	}
	if !c.Reg.Flag(reg.FlagCarry) || !c.Reg.Flag(reg.FlagHalfCarry) {
		t.Fatalf("flags = 0x%02X, want C=1 H=1", c.Reg.F)
	}
}

func TestExecANDAlwaysSetsHalfCarry(t *testing.T) {
	c := newTestCPU()
	c.Reg.A = 0xFF
	c.execAnd(0x00)
	if c.Reg.A != 0x00 || !c.Reg.Flag(reg.FlagZero) || !c.Reg.Flag(reg.FlagHalfCarry) || c.Reg.Flag(reg.FlagCarry) {
		t.Fatalf("AND 0: A=0x%02X F=0x%02X", c.Reg.A, c.Reg.F)
	}
}

func TestExecXORSelfClearsA(t *testing.T) {
	c := newTestCPU()
	c.Reg.A = 0x5A
	c.execXor(c.Reg.A)
	if c.Reg.A != 0 || !c.Reg.Flag(reg.FlagZero) {
		t.Fatalf("XOR A,A: A=0x%02X, want 0 with Z set", c.Reg.A)
	}
}

func TestExecSwapNibbles(t *testing.T) {
	c := newTestCPU()
	if got := c.execSwap(0xAB); got != 0xBA {
		t.Fatalf("SWAP(0xAB) = 0x%02X, want 0xBA", got)
	}
}

func TestExecSRAPreservesSignBit(t *testing.T) {
	c := newTestCPU()
	got := c.execSra(0x81)
	if got != 0xC0 {
		t.Fatalf("SRA(0x81) = 0x%02X, want 0xC0", got)
	}
	if !c.Reg.Flag(reg.FlagCarry) {
		t.Fatalf("SRA(0x81): carry should be old bit 0 (1)")
	}
}

func TestExecSRLClearsTopBit(t *testing.T) {
	c := newTestCPU()
	got := c.execSrl(0x81)
	if got != 0x40 {
		t.Fatalf("SRL(0x81) = 0x%02X, want 0x40", got)
	}
	if !c.Reg.Flag(reg.FlagCarry) {
		t.Fatalf("SRL(0x81): carry should be old bit 0 (1)")
	}
}

func TestExecCPLComplementsA(t *testing.T) {
	c := newTestCPU()
	c.Reg.A = 0x0F
	c.execCpl()
	if c.Reg.A != 0xF0 {
		t.Fatalf("CPL: A = 0x%02X, want 0xF0", c.Reg.A)
	}
	if !c.Reg.Flag(reg.FlagSubtraction) || !c.Reg.Flag(reg.FlagHalfCarry) {
		t.Fatalf("CPL should set N and H")
	}
}

func TestExecCCFTogglesCarryOnly(t *testing.T) {
	c := newTestCPU()
	c.Reg.SetFlag(reg.FlagZero, true)
	c.execCcf()
	if !c.Reg.Flag(reg.FlagCarry) {
		t.Fatalf("CCF from C=0 should set C=1")
	}
	if !c.Reg.Flag(reg.FlagZero) {
		t.Fatalf("CCF must not touch Z")
	}
	c.execCcf()
	if c.Reg.Flag(reg.FlagCarry) {
		t.Fatalf("CCF should toggle C back to 0")
	}
}

func TestAddSPSignedFlagsFromLowByteOnly(t *testing.T) {
	c := newTestCPU()
	c.Reg.SP = 0x00FF
	got := c.addSPSigned(1)
	if got != 0x0100 {
		t.Fatalf("SP+1 = 0x%04X, want 0x0100", got)
	}
	if !c.Reg.Flag(reg.FlagHalfCarry) || !c.Reg.Flag(reg.FlagCarry) {
		t.Fatalf("flags = 0x%02X, want H=1 C=1 (carry out of low byte)", c.Reg.F)
	}
	if c.Reg.Flag(reg.FlagZero) {
		t.Fatalf("ADD SP,r8 must always clear Z")
	}
}

func TestGet16Set16RoundTripThroughCPU(t *testing.T) {
	c := newTestCPU()
	for _, pair := range []reg.Register16{reg.BC, reg.DE, reg.HL, reg.SP} {
		c.Reg.Set16(pair, 0xBEEF)
		if got := c.Reg.Get16(pair); got != 0xBEEF {
			t.Fatalf("%v round trip = 0x%04X, want 0xBEEF", pair, got)
		}
	}
}

func TestMemoryByteRoundTripWithinRAM(t *testing.T) {
	c := newTestCPU()
	c.Bus.Write(0xC123, 0x99)
	if got := c.Bus.Read(0xC123); got != 0x99 {
		t.Fatalf("Read(0xC123) = 0x%02X, want 0x99", got)
	}
}
