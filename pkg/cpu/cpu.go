package cpu

import (
	"github.com/mikky-j/blazeboy/pkg/mem"
	"github.com/mikky-j/blazeboy/pkg/reg"
)

// CPU composes a register file and a memory bus and drives the
// fetch/decode/execute cycle. Besides those it carries only the HALT/STOP
// state and the interrupt enable, tracked here only as a flag flipped by
// DI/EI (interrupt dispatch itself is out of scope, per SPEC_FULL.md §non-goals).
type CPU struct {
	Reg *reg.File
	Bus *mem.Bus

	IME     bool // interrupt master enable, set/cleared by EI/DI
	Halted  bool
	Stopped bool

	pendingEI bool // EI's enable takes effect at the start of the next Step, not immediately
}

// New builds a CPU over the given bus with registers at their
// power-on values.
func New(bus *mem.Bus) *CPU {
	return &CPU{Reg: reg.NewFile(), Bus: bus}
}

func (c *CPU) fetch8() uint8 {
	v := c.Bus.Read(c.Reg.PC)
	c.Reg.PC++
	return v
}
