package cpu

import (
	"github.com/mikky-j/blazeboy/pkg/inst"
	"github.com/mikky-j/blazeboy/pkg/reg"
)

// Step fetches, decodes and executes one instruction at PC, returning
// the number of T-cycles it took. It is the single entry point the
// driver calls in a loop; PC advancement for every non-branching
// instruction happens at the end of execute from Entry.Length, while branching
// instructions (JP/JR/CALL/RET/RST, and conditional forms that are
// taken) write PC themselves during execute and skip the Length-based
// advance.
func (c *CPU) Step() int {
	if c.pendingEI {
		c.pendingEI = false
		c.IME = true
	}

	if c.Halted {
		return 4
	}

	instrStart := c.Reg.PC
	opcode := c.fetch8()

	var e inst.Entry
	if opcode == 0xCB {
		cbOp := c.fetch8()
		e = inst.DecodeCB(cbOp)
	} else {
		e = inst.Decode(opcode)
	}

	return c.execute(e, instrStart, opcode)
}

// operand8 reads the 8-bit source operand an Entry names: a plain
// register, (HL), or an already-fetched immediate byte.
func (c *CPU) operand8(e inst.Entry, imm8 uint8) uint8 {
	switch {
	case e.UsesImm8:
		return imm8
	case e.UsesHL:
		return c.Bus.Read(c.Reg.Get16(reg.HL))
	default:
		return c.Reg.Get8(e.Reg8)
	}
}

// storeOperand8 writes back to whatever e.Reg8/UsesHL names.
func (c *CPU) storeOperand8(e inst.Entry, v uint8) {
	if e.UsesHL {
		c.Bus.Write(c.Reg.Get16(reg.HL), v)
		return
	}
	c.Reg.Set8(e.Reg8, v)
}

func (c *CPU) checkCond(cond inst.Cond) bool {
	switch cond {
	case inst.CondNZ:
		return !c.Reg.Flag(reg.FlagZero)
	case inst.CondZ:
		return c.Reg.Flag(reg.FlagZero)
	case inst.CondNC:
		return !c.Reg.Flag(reg.FlagCarry)
	case inst.CondC:
		return c.Reg.Flag(reg.FlagCarry)
	default:
		return true
	}
}

// push16 stores v at SP-1 (high byte) / SP-2 (low byte) and leaves SP
// at the new, lower address — the stack grows downward.
func (c *CPU) push16(v uint16) {
	c.Reg.SP -= 2
	c.Bus.Write(c.Reg.SP, uint8(v))
	c.Bus.Write(c.Reg.SP+1, uint8(v>>8))
}

func (c *CPU) pop16() uint16 {
	lo := c.Bus.Read(c.Reg.SP)
	hi := c.Bus.Read(c.Reg.SP + 1)
	c.Reg.SP += 2
	return uint16(hi)<<8 | uint16(lo)
}

// execute runs one decoded Entry and returns its T-cycle cost. instrStart
// is PC as it stood before the opcode byte(s) were fetched; opcode is
// the primary opcode byte (used only by RST to recover its target,
// since CB-prefixed entries never reach RST). By the time execute runs,
// PC already sits just past the opcode byte(s), which is exactly where
// any declared immediate operand lives.
func (c *CPU) execute(e inst.Entry, instrStart uint16, opcode uint8) int {
	nextPC := instrStart + uint16(e.Length)

	var imm8 uint8
	var imm16 uint16
	if e.UsesImm8 {
		imm8 = c.Bus.Read(c.Reg.PC)
	}
	if e.UsesImm16 {
		imm16 = c.Bus.Read16(c.Reg.PC)
	}

	switch e.Cmd {
	case inst.CmdNone, inst.CmdNOP:
		// fallthrough to the shared advance below

	case inst.CmdHalt:
		c.Halted = true

	case inst.CmdStop:
		c.Stopped = true

	case inst.CmdDI:
		c.IME = false
		c.pendingEI = false

	case inst.CmdEI:
		c.pendingEI = true

	case inst.CmdLDRR:
		c.Reg.Set8(e.Reg8, c.Reg.Get8(e.Reg8Src))

	case inst.CmdLDRHL:
		c.Reg.Set8(e.Reg8, c.Bus.Read(c.Reg.Get16(reg.HL)))

	case inst.CmdLDHLR:
		c.Bus.Write(c.Reg.Get16(reg.HL), c.Reg.Get8(e.Reg8Src))

	case inst.CmdLDRN:
		if e.UsesHL {
			c.Bus.Write(c.Reg.Get16(reg.HL), imm8)
		} else {
			c.Reg.Set8(e.Reg8, imm8)
		}

	case inst.CmdLDIndA:
		c.execLDIndA(e)

	case inst.CmdLDA16A:
		if e.Dir == inst.DirStore {
			c.Bus.Write(imm16, c.Reg.A)
		} else {
			c.Reg.A = c.Bus.Read(imm16)
		}

	case inst.CmdLDHA8:
		addr := 0xFF00 + uint16(imm8)
		if e.Dir == inst.DirStore {
			c.Bus.Write(addr, c.Reg.A)
		} else {
			c.Reg.A = c.Bus.Read(addr)
		}

	case inst.CmdLDHC:
		addr := 0xFF00 + uint16(c.Reg.C)
		if e.Dir == inst.DirStore {
			c.Bus.Write(addr, c.Reg.A)
		} else {
			c.Reg.A = c.Bus.Read(addr)
		}

	case inst.CmdLDRRNN:
		c.Reg.Set16(e.Reg16, imm16)

	case inst.CmdLDA16SP:
		c.Bus.Write(imm16, uint8(c.Reg.SP))
		c.Bus.Write(imm16+1, uint8(c.Reg.SP>>8))

	case inst.CmdLDSPHL:
		c.Reg.SP = c.Reg.Get16(reg.HL)

	case inst.CmdLDHLSPR8:
		c.Reg.Set16(reg.HL, c.addSPSigned(int8(imm8)))

	case inst.CmdADD:
		c.execAdd(c.operand8(e, imm8))
	case inst.CmdADC:
		c.execAdc(c.operand8(e, imm8))
	case inst.CmdSUB:
		c.execSub(c.operand8(e, imm8))
	case inst.CmdSBC:
		c.execSbc(c.operand8(e, imm8))
	case inst.CmdAND:
		c.execAnd(c.operand8(e, imm8))
	case inst.CmdXOR:
		c.execXor(c.operand8(e, imm8))
	case inst.CmdOR:
		c.execOr(c.operand8(e, imm8))
	case inst.CmdCP:
		c.execCp(c.operand8(e, imm8))

	case inst.CmdINC8:
		c.storeOperand8(e, c.execInc8(c.operand8(e, 0)))
	case inst.CmdDEC8:
		c.storeOperand8(e, c.execDec8(c.operand8(e, 0)))

	case inst.CmdINC16:
		c.Reg.Set16(e.Reg16, c.Reg.Get16(e.Reg16)+1)
	case inst.CmdDEC16:
		c.Reg.Set16(e.Reg16, c.Reg.Get16(e.Reg16)-1)
	case inst.CmdADDHLRR:
		c.execAddHL16(c.Reg.Get16(e.Reg16))
	case inst.CmdADDSPR8:
		c.Reg.SP = c.addSPSigned(int8(imm8))

	case inst.CmdRLCA:
		c.Reg.A = c.execRlc(c.Reg.A)
		c.Reg.SetFlag(reg.FlagZero, false)
	case inst.CmdRRCA:
		c.Reg.A = c.execRrc(c.Reg.A)
		c.Reg.SetFlag(reg.FlagZero, false)
	case inst.CmdRLA:
		c.Reg.A = c.execRl(c.Reg.A)
		c.Reg.SetFlag(reg.FlagZero, false)
	case inst.CmdRRA:
		c.Reg.A = c.execRr(c.Reg.A)
		c.Reg.SetFlag(reg.FlagZero, false)

	case inst.CmdDAA:
		c.execDaa()
	case inst.CmdCPL:
		c.execCpl()
	case inst.CmdSCF:
		c.execScf()
	case inst.CmdCCF:
		c.execCcf()

	case inst.CmdJR:
		c.Reg.PC = uint16(int32(nextPC) + int32(int8(imm8)))
		return e.Cycles

	case inst.CmdJRCC:
		if c.checkCond(e.Cond) {
			c.Reg.PC = uint16(int32(nextPC) + int32(int8(imm8)))
			return e.CyclesTaken
		}
		c.Reg.PC = nextPC
		return e.Cycles

	case inst.CmdJPA16:
		c.Reg.PC = imm16
		return e.Cycles

	case inst.CmdJPCC:
		if c.checkCond(e.Cond) {
			c.Reg.PC = imm16
			return e.CyclesTaken
		}
		c.Reg.PC = nextPC
		return e.Cycles

	case inst.CmdJPHL:
		c.Reg.PC = c.Reg.Get16(reg.HL)
		return e.Cycles

	case inst.CmdCALLA16:
		c.push16(nextPC)
		c.Reg.PC = imm16
		return e.Cycles

	case inst.CmdCALLCC:
		if c.checkCond(e.Cond) {
			c.push16(nextPC)
			c.Reg.PC = imm16
			return e.CyclesTaken
		}
		c.Reg.PC = nextPC
		return e.Cycles

	case inst.CmdRET:
		c.Reg.PC = c.pop16()
		return e.Cycles

	case inst.CmdRETCC:
		if c.checkCond(e.Cond) {
			c.Reg.PC = c.pop16()
			return e.CyclesTaken
		}
		c.Reg.PC = nextPC
		return e.Cycles

	case inst.CmdRETI:
		c.Reg.PC = c.pop16()
		c.IME = true
		return e.Cycles

	case inst.CmdPUSH:
		c.push16(c.Reg.Get16(e.Reg16))

	case inst.CmdPOP:
		c.Reg.Set16(e.Reg16, c.pop16())

	case inst.CmdRST:
		c.push16(nextPC)
		c.Reg.PC = uint16(opcode & 0x38)
		return e.Cycles

	case inst.CmdRLC:
		c.storeOperand8(e, c.execRlc(c.operand8(e, 0)))
	case inst.CmdRRC:
		c.storeOperand8(e, c.execRrc(c.operand8(e, 0)))
	case inst.CmdRL:
		c.storeOperand8(e, c.execRl(c.operand8(e, 0)))
	case inst.CmdRR:
		c.storeOperand8(e, c.execRr(c.operand8(e, 0)))
	case inst.CmdSLA:
		c.storeOperand8(e, c.execSla(c.operand8(e, 0)))
	case inst.CmdSRA:
		c.storeOperand8(e, c.execSra(c.operand8(e, 0)))
	case inst.CmdSWAP:
		c.storeOperand8(e, c.execSwap(c.operand8(e, 0)))
	case inst.CmdSRL:
		c.storeOperand8(e, c.execSrl(c.operand8(e, 0)))

	case inst.CmdBIT:
		c.execBit(c.operand8(e, 0), e.Bit)

	case inst.CmdRES:
		c.storeOperand8(e, c.operand8(e, 0)&^(1<<e.Bit))

	case inst.CmdSET:
		c.storeOperand8(e, c.operand8(e, 0)|(1<<e.Bit))
	}

	c.Reg.PC = nextPC
	return e.Cycles
}

// execLDIndA executes the (BC)/(DE)/(HLI)/(HLD) <-> A family, applying
// the post-transfer HL increment/decrement where the Entry names one.
func (c *CPU) execLDIndA(e inst.Entry) {
	addr := c.Reg.Get16(e.Reg16)
	if e.Dir == inst.DirStore {
		c.Bus.Write(addr, c.Reg.A)
	} else {
		c.Reg.A = c.Bus.Read(addr)
	}
	switch e.HLStep {
	case inst.HLStepInc:
		c.Reg.Set16(reg.HL, addr+1)
	case inst.HLStepDec:
		c.Reg.Set16(reg.HL, addr-1)
	}
}
