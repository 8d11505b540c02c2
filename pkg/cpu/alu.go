package cpu

import "github.com/mikky-j/blazeboy/pkg/reg"

// bsel picks between two flag values without a branch, the same helper
// the flag-heavy Z80 exec table used for its Sz53/parity lookups —
// kept here even though the GB's 4-flag model has no lookup tables to
// drive, since every ALU helper below still reads as a flat run of
// condition -> flag assignments.
func bsel(cond bool, a, b uint8) uint8 {
	if cond {
		return a
	}
	return b
}

func zeroFlag(v uint8) bool { return v == 0 }

// execAdd performs A = A + value, setting Z/N/H/C.
func (c *CPU) execAdd(value uint8) {
	a := c.Reg.A
	result := uint16(a) + uint16(value)
	c.Reg.A = uint8(result)
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(c.Reg.A)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: (a&0x0F)+(value&0x0F) > 0x0F},
		reg.FlagValue{Flag: reg.FlagCarry, Value: result > 0xFF},
	)
}

// execAdc performs A = A + value + carry.
func (c *CPU) execAdc(value uint8) {
	a := c.Reg.A
	carry := uint16(bsel(c.Reg.Flag(reg.FlagCarry), 1, 0))
	result := uint16(a) + uint16(value) + carry
	c.Reg.A = uint8(result)
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(c.Reg.A)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: (a&0x0F)+(value&0x0F)+uint8(carry) > 0x0F},
		reg.FlagValue{Flag: reg.FlagCarry, Value: result > 0xFF},
	)
}

// execSub performs A = A - value, setting Z/N/H/C.
func (c *CPU) execSub(value uint8) {
	a := c.Reg.A
	result := int16(a) - int16(value)
	c.Reg.A = uint8(result)
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(c.Reg.A)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: true},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: int16(a&0x0F)-int16(value&0x0F) < 0},
		reg.FlagValue{Flag: reg.FlagCarry, Value: result < 0},
	)
}

// execSbc performs A = A - value - carry.
func (c *CPU) execSbc(value uint8) {
	a := c.Reg.A
	carry := int16(bsel(c.Reg.Flag(reg.FlagCarry), 1, 0))
	result := int16(a) - int16(value) - carry
	c.Reg.A = uint8(result)
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(c.Reg.A)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: true},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: int16(a&0x0F)-int16(value&0x0F)-carry < 0},
		reg.FlagValue{Flag: reg.FlagCarry, Value: result < 0},
	)
}

func (c *CPU) execAnd(value uint8) {
	c.Reg.A &= value
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(c.Reg.A)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: true},
		reg.FlagValue{Flag: reg.FlagCarry, Value: false},
	)
}

func (c *CPU) execOr(value uint8) {
	c.Reg.A |= value
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(c.Reg.A)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: false},
		reg.FlagValue{Flag: reg.FlagCarry, Value: false},
	)
}

func (c *CPU) execXor(value uint8) {
	c.Reg.A ^= value
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(c.Reg.A)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: false},
		reg.FlagValue{Flag: reg.FlagCarry, Value: false},
	)
}

// execCp compares A against value without storing the result.
func (c *CPU) execCp(value uint8) {
	a := c.Reg.A
	c.execSub(value)
	c.Reg.A = a
}

// execInc8 increments a byte in place, leaving C untouched (as
// execDec8 does too).
func (c *CPU) execInc8(v uint8) uint8 {
	result := v + 1
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(result)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: v&0x0F == 0x0F},
	)
	return result
}

// execDec8 decrements a byte in place. Flags derive from the operand
// being decremented, not from A — the source this is grounded on
// mistakenly read A's post-op value for DEC r; that bug is not
// reproduced here.
func (c *CPU) execDec8(v uint8) uint8 {
	result := v - 1
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(result)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: true},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: v&0x0F == 0},
	)
	return result
}

// execDaa adjusts A after a preceding ADD/ADC/SUB/SBC so the result
// reads as packed BCD, per the standard DAA correction table.
func (c *CPU) execDaa() {
	a := c.Reg.A
	n := c.Reg.Flag(reg.FlagSubtraction)
	h := c.Reg.Flag(reg.FlagHalfCarry)
	carry := c.Reg.Flag(reg.FlagCarry)
	var adjust uint8
	newCarry := carry

	if n {
		if h {
			adjust += 0x06
		}
		if carry {
			adjust += 0x60
		}
		a -= adjust
	} else {
		if h || a&0x0F > 0x09 {
			adjust += 0x06
		}
		if carry || a > 0x99 {
			adjust += 0x60
			newCarry = true
		}
		a += adjust
	}

	c.Reg.A = a
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(a)},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: false},
		reg.FlagValue{Flag: reg.FlagCarry, Value: newCarry},
	)
}

func (c *CPU) execCpl() {
	c.Reg.A = ^c.Reg.A
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: true},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: true},
	)
}

func (c *CPU) execScf() {
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: false},
		reg.FlagValue{Flag: reg.FlagCarry, Value: true},
	)
}

func (c *CPU) execCcf() {
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: false},
		reg.FlagValue{Flag: reg.FlagCarry, Value: !c.Reg.Flag(reg.FlagCarry)},
	)
}

// execAddHL16 performs HL = HL + value, leaving Z untouched (the only
// 16-bit ALU op GB offers besides ADD SP,r8).
func (c *CPU) execAddHL16(value uint16) {
	hl := c.Reg.Get16(reg.HL)
	result := uint32(hl) + uint32(value)
	c.Reg.Set16(reg.HL, uint16(result))
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: (hl&0x0FFF)+(value&0x0FFF) > 0x0FFF},
		reg.FlagValue{Flag: reg.FlagCarry, Value: result > 0xFFFF},
	)
}

// addSPSigned implements the shared arithmetic behind ADD SP,r8 and LD
// HL,SP+r8: both sign-extend an immediate byte and set flags from the
// low-byte addition, never from the 16-bit result, matching real
// hardware's quirky (and always-false Z) flag behavior.
func (c *CPU) addSPSigned(offset int8) uint16 {
	sp := c.Reg.SP
	result := uint16(int32(sp) + int32(offset))
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: false},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: (sp&0x0F)+(uint16(uint8(offset))&0x0F) > 0x0F},
		reg.FlagValue{Flag: reg.FlagCarry, Value: (sp&0xFF)+uint16(uint8(offset)) > 0xFF},
	)
	return result
}

// CB-prefix rotate/shift helpers. Each returns the new byte value; the
// caller is responsible for storing it back into the register or (HL).
func (c *CPU) execRlc(v uint8) uint8 {
	carry := v&0x80 != 0
	result := v<<1 | bsel(carry, 1, 0)
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) execRrc(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v>>1 | bsel(carry, 0x80, 0)
	c.setShiftFlags(result, carry)
	return result
}

// execRl rotates left through the carry flag.
func (c *CPU) execRl(v uint8) uint8 {
	oldCarry := c.Reg.Flag(reg.FlagCarry)
	carry := v&0x80 != 0
	result := v<<1 | bsel(oldCarry, 1, 0)
	c.setShiftFlags(result, carry)
	return result
}

// execRr rotates right through the carry flag.
func (c *CPU) execRr(v uint8) uint8 {
	oldCarry := c.Reg.Flag(reg.FlagCarry)
	carry := v&0x01 != 0
	result := v>>1 | bsel(oldCarry, 0x80, 0)
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) execSla(v uint8) uint8 {
	carry := v&0x80 != 0
	result := v << 1
	c.setShiftFlags(result, carry)
	return result
}

// execSra shifts right, preserving bit 7 (arithmetic shift).
func (c *CPU) execSra(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v>>1 | v&0x80
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) execSrl(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v >> 1
	c.setShiftFlags(result, carry)
	return result
}

func (c *CPU) execSwap(v uint8) uint8 {
	result := v<<4 | v>>4
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(result)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: false},
		reg.FlagValue{Flag: reg.FlagCarry, Value: false},
	)
	return result
}

func (c *CPU) setShiftFlags(result uint8, carry bool) {
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: zeroFlag(result)},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: false},
		reg.FlagValue{Flag: reg.FlagCarry, Value: carry},
	)
}

func (c *CPU) execBit(v uint8, bit uint8) {
	c.Reg.SetFlags(
		reg.FlagValue{Flag: reg.FlagZero, Value: v&(1<<bit) == 0},
		reg.FlagValue{Flag: reg.FlagSubtraction, Value: false},
		reg.FlagValue{Flag: reg.FlagHalfCarry, Value: true},
	)
}
