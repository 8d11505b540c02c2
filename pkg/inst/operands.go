package inst

import "github.com/mikky-j/blazeboy/pkg/reg"

// Cond is a branch condition tested against the Z and C flags.
type Cond int

const (
	CondNone Cond = iota
	CondNZ
	CondZ
	CondNC
	CondC
)

// r8Table is the standard opcode-grid register ordering used by every
// primary opcode whose low 3 bits select an 8-bit operand, and by the
// CB table's low 3 bits. Index 6 is (HL) and is represented here by
// R8None — callers must check UsesHL before consulting Reg8.
var r8Table = [8]reg.Register8{reg.B, reg.C, reg.D, reg.E, reg.H, reg.L, reg.R8None, reg.A}

// rpTable is the rp[p] register-pair ordering (p = bits 5-4 of the
// opcode) used by 16-bit loads, INC/DEC rr, and ADD HL,rr.
var rpTable = [4]reg.Register16{reg.BC, reg.DE, reg.HL, reg.SP}

// rp2Table is the rp2[p] ordering used by PUSH/POP, which stores AF
// instead of SP in the fourth slot.
var rp2Table = [4]reg.Register16{reg.BC, reg.DE, reg.HL, reg.AF}

// condTable is the cc[y] ordering used by conditional JR/JP/CALL/RET.
var condTable = [4]Cond{CondNZ, CondZ, CondNC, CondC}

// reg8(index) resolves an r[z]-style 3-bit register code. isHL is true
// for index 6, which selects the (HL) memory operand instead.
func reg8(index uint8) (r reg.Register8, isHL bool) {
	if index == 6 {
		return reg.R8None, true
	}
	return r8Table[index], false
}
