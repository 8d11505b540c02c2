package inst

import "github.com/mikky-j/blazeboy/pkg/reg"

// Primary and CB are the two decode tables described in SPEC_FULL.md
// §4.3: deterministic, opcode-byte-indexed mappings to a Command plus
// its operands. Built once at init time from the opcode grid's
// (x,y,z)/(row,col) structure rather than hand-enumerated, per the
// generation approach SPEC_FULL.md's design notes recommend.
var (
	Primary [256]Entry
	CB      [256]Entry
)

func init() {
	Primary = buildPrimary()
	CB = buildCB()
}

// Decode resolves a primary opcode byte to its table entry. 0xCB is
// present in the table (CmdCBPrefix) but callers should special-case it
// before reaching execute — see cpu.Step.
func Decode(opcode uint8) Entry { return Primary[opcode] }

// DecodeCB resolves a CB-prefixed second byte to its table entry.
func DecodeCB(opcode uint8) Entry { return CB[opcode] }

var aluCmds = [8]Command{CmdADD, CmdADC, CmdSUB, CmdSBC, CmdAND, CmdXOR, CmdOR, CmdCP}
var accumCmds = [8]Command{CmdRLCA, CmdRRCA, CmdRLA, CmdRRA, CmdDAA, CmdCPL, CmdSCF, CmdCCF}

func buildPrimary() [256]Entry {
	var t [256]Entry
	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		x := opcode >> 6 & 0x3
		y := opcode >> 3 & 0x7
		z := opcode & 0x7
		p := y >> 1
		q := y & 1

		switch x {
		case 0:
			t[op] = decodeX0(z, y, p, q)
		case 1:
			t[op] = decodeX1(y, z)
		case 2:
			t[op] = decodeX2(y, z)
		case 3:
			t[op] = decodeX3(z, y, p, q)
		}
	}
	return t
}

func decodeX0(z, y, p, q uint8) Entry {
	switch z {
	case 0:
		switch {
		case y == 0:
			return Entry{Cmd: CmdNOP, Length: 1, Cycles: 4}
		case y == 1:
			return Entry{Cmd: CmdLDA16SP, UsesImm16: true, Length: 3, Cycles: 20}
		case y == 2:
			return Entry{Cmd: CmdStop, Length: 2, Cycles: 4}
		case y == 3:
			return Entry{Cmd: CmdJR, UsesImm8: true, Length: 2, Cycles: 12}
		default: // y = 4..7
			return Entry{Cmd: CmdJRCC, Cond: condTable[y-4], UsesImm8: true, Length: 2, Cycles: 8, CyclesTaken: 12}
		}
	case 1:
		if q == 0 {
			return Entry{Cmd: CmdLDRRNN, Reg16: rpTable[p], UsesImm16: true, Length: 3, Cycles: 12}
		}
		return Entry{Cmd: CmdADDHLRR, Reg16: rpTable[p], Length: 1, Cycles: 8}
	case 2:
		pair, step := indirectAccPair(p)
		dir := DirStore
		if q == 1 {
			dir = DirLoad
		}
		return Entry{Cmd: CmdLDIndA, Reg16: pair, HLStep: step, Dir: dir, Length: 1, Cycles: 8}
	case 3:
		if q == 0 {
			return Entry{Cmd: CmdINC16, Reg16: rpTable[p], Length: 1, Cycles: 8}
		}
		return Entry{Cmd: CmdDEC16, Reg16: rpTable[p], Length: 1, Cycles: 8}
	case 4:
		r, isHL := reg8(y)
		if isHL {
			return Entry{Cmd: CmdINC8, UsesHL: true, Length: 1, Cycles: 12}
		}
		return Entry{Cmd: CmdINC8, Reg8: r, Length: 1, Cycles: 4}
	case 5:
		r, isHL := reg8(y)
		if isHL {
			return Entry{Cmd: CmdDEC8, UsesHL: true, Length: 1, Cycles: 12}
		}
		return Entry{Cmd: CmdDEC8, Reg8: r, Length: 1, Cycles: 4}
	case 6:
		r, isHL := reg8(y)
		if isHL {
			return Entry{Cmd: CmdLDRN, UsesHL: true, UsesImm8: true, Length: 2, Cycles: 12}
		}
		return Entry{Cmd: CmdLDRN, Reg8: r, UsesImm8: true, Length: 2, Cycles: 8}
	default: // z == 7
		return Entry{Cmd: accumCmds[y], Length: 1, Cycles: 4}
	}
}

// indirectAccPair resolves the p index used by LD (BC/DE/HLI/HLD),A and
// its A<-(...) counterpart.
func indirectAccPair(p uint8) (reg.Register16, HLStep) {
	switch p {
	case 0:
		return reg.BC, HLStepNone
	case 1:
		return reg.DE, HLStepNone
	case 2:
		return reg.HL, HLStepInc
	default:
		return reg.HL, HLStepDec
	}
}

func decodeX1(y, z uint8) Entry {
	if y == 6 && z == 6 {
		return Entry{Cmd: CmdHalt, Length: 1, Cycles: 4}
	}
	dst, dstHL := reg8(y)
	src, srcHL := reg8(z)
	switch {
	case dstHL:
		return Entry{Cmd: CmdLDHLR, Reg8Src: src, Length: 1, Cycles: 8}
	case srcHL:
		return Entry{Cmd: CmdLDRHL, Reg8: dst, Length: 1, Cycles: 8}
	default:
		return Entry{Cmd: CmdLDRR, Reg8: dst, Reg8Src: src, Length: 1, Cycles: 4}
	}
}

func decodeX2(y, z uint8) Entry {
	src, isHL := reg8(z)
	if isHL {
		return Entry{Cmd: aluCmds[y], UsesHL: true, Length: 1, Cycles: 8}
	}
	return Entry{Cmd: aluCmds[y], Reg8: src, Length: 1, Cycles: 4}
}

func decodeX3(z, y, p, q uint8) Entry {
	switch z {
	case 0:
		switch {
		case y <= 3:
			return Entry{Cmd: CmdRETCC, Cond: condTable[y], Length: 1, Cycles: 8, CyclesTaken: 20}
		case y == 4:
			return Entry{Cmd: CmdLDHA8, Dir: DirStore, UsesImm8: true, Length: 2, Cycles: 12}
		case y == 5:
			return Entry{Cmd: CmdADDSPR8, UsesImm8: true, Length: 2, Cycles: 16}
		case y == 6:
			return Entry{Cmd: CmdLDHA8, Dir: DirLoad, UsesImm8: true, Length: 2, Cycles: 12}
		default: // y == 7
			return Entry{Cmd: CmdLDHLSPR8, UsesImm8: true, Length: 2, Cycles: 12}
		}
	case 1:
		if q == 0 {
			return Entry{Cmd: CmdPOP, Reg16: rp2Table[p], Length: 1, Cycles: 12}
		}
		switch p {
		case 0:
			return Entry{Cmd: CmdRET, Length: 1, Cycles: 16}
		case 1:
			return Entry{Cmd: CmdRETI, Length: 1, Cycles: 16}
		case 2:
			return Entry{Cmd: CmdJPHL, Length: 1, Cycles: 4}
		default:
			return Entry{Cmd: CmdLDSPHL, Length: 1, Cycles: 8}
		}
	case 2:
		switch {
		case y <= 3:
			return Entry{Cmd: CmdJPCC, Cond: condTable[y], UsesImm16: true, Length: 3, Cycles: 12, CyclesTaken: 16}
		case y == 4:
			return Entry{Cmd: CmdLDHC, Dir: DirStore, Length: 1, Cycles: 8}
		case y == 5:
			return Entry{Cmd: CmdLDA16A, Dir: DirStore, UsesImm16: true, Length: 3, Cycles: 16}
		case y == 6:
			return Entry{Cmd: CmdLDHC, Dir: DirLoad, Length: 1, Cycles: 8}
		default: // y == 7
			return Entry{Cmd: CmdLDA16A, Dir: DirLoad, UsesImm16: true, Length: 3, Cycles: 16}
		}
	case 3:
		switch y {
		case 0:
			return Entry{Cmd: CmdJPA16, UsesImm16: true, Length: 3, Cycles: 16}
		case 1:
			return Entry{Cmd: CmdCBPrefix, Length: 1, Cycles: 4}
		case 6:
			return Entry{Cmd: CmdDI, Length: 1, Cycles: 4}
		case 7:
			return Entry{Cmd: CmdEI, Length: 1, Cycles: 4}
		default: // 2,3,4,5: no such instruction on this CPU
			return Entry{Cmd: CmdNone, Length: 1, Cycles: 4}
		}
	case 4:
		if y <= 3 {
			return Entry{Cmd: CmdCALLCC, Cond: condTable[y], UsesImm16: true, Length: 3, Cycles: 12, CyclesTaken: 24}
		}
		return Entry{Cmd: CmdNone, Length: 1, Cycles: 4}
	case 5:
		if q == 0 {
			return Entry{Cmd: CmdPUSH, Reg16: rp2Table[p], Length: 1, Cycles: 16}
		}
		if p == 0 {
			return Entry{Cmd: CmdCALLA16, UsesImm16: true, Length: 3, Cycles: 24}
		}
		return Entry{Cmd: CmdNone, Length: 1, Cycles: 4}
	case 6:
		return Entry{Cmd: aluCmds[y], UsesImm8: true, Length: 2, Cycles: 8}
	default: // z == 7
		return Entry{Cmd: CmdRST, Length: 1, Cycles: 16}
	}
}

var cbRotateCmds = [8]Command{CmdRLC, CmdRRC, CmdRL, CmdRR, CmdSLA, CmdSRA, CmdSWAP, CmdSRL}

func buildCB() [256]Entry {
	var t [256]Entry
	for op := 0; op < 256; op++ {
		opcode := uint8(op)
		block := opcode >> 6 & 0x3
		bitOrOp := opcode >> 3 & 0x7
		r, isHL := reg8(opcode & 0x7)

		cycles := 8
		if isHL {
			cycles = 16
		}

		switch block {
		case 0:
			t[op] = Entry{Cmd: cbRotateCmds[bitOrOp], Reg8: r, UsesHL: isHL, Length: 2, Cycles: cycles}
		case 1:
			bitCycles := 8
			if isHL {
				bitCycles = 12
			}
			t[op] = Entry{Cmd: CmdBIT, Reg8: r, UsesHL: isHL, Bit: bitOrOp, Length: 2, Cycles: bitCycles}
		case 2:
			t[op] = Entry{Cmd: CmdRES, Reg8: r, UsesHL: isHL, Bit: bitOrOp, Length: 2, Cycles: cycles}
		default: // 3
			t[op] = Entry{Cmd: CmdSET, Reg8: r, UsesHL: isHL, Bit: bitOrOp, Length: 2, Cycles: cycles}
		}
	}
	return t
}
