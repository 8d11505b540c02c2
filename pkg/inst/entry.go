package inst

import "github.com/mikky-j/blazeboy/pkg/reg"

// Entry is one row of a decode table: the command category plus every
// operand detail the execute engine needs to carry it out, without
// re-deriving anything from the raw opcode byte (RST is the one
// exception — its target is cheap to recompute as opcode&0x38).
type Entry struct {
	Cmd Command

	Reg8    reg.Register8  // primary 8-bit register operand
	Reg8Src reg.Register8  // source register, for reg<-reg loads
	Reg16   reg.Register16 // 16-bit register or register-pair operand
	Cond    Cond           // branch condition, for conditional forms
	Dir     Dir            // which way a bidirectional family moves data
	HLStep  HLStep         // HL post-adjustment, for (HLI)/(HLD) families
	Bit     uint8          // bit index, for BIT/RES/SET

	UsesHL    bool // the 8-bit operand is (HL), not Reg8/Reg8Src
	UsesImm8  bool // instruction reads an immediate byte at PC+1
	UsesImm16 bool // instruction reads a little-endian word at PC+1..PC+2

	Length      int // bytes consumed, before any branch-taken override
	Cycles      int // T-states (branch-not-taken count for conditional forms)
	CyclesTaken int // T-states when a conditional branch is taken; 0 if not conditional
}
