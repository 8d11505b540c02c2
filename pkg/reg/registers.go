package reg

// Register8 selects one of the eight 8-bit registers an operand can
// refer to. None is a harmless placeholder for unmapped decode slots;
// executors must ignore reads/writes targeting it.
type Register8 int

const (
	R8None Register8 = iota
	A
	B
	C
	D
	E
	F
	H
	L
)

// Register16 selects one of the 16-bit register-pair views, plus the
// dedicated SP/PC registers.
type Register16 int

const (
	R16None Register16 = iota
	AF
	BC
	DE
	HL
	SP
	PC
)
