package inst

// Command is the decoded instruction category. Operand registers,
// immediate usage, and branch condition live alongside it in Entry —
// Command alone identifies the semantic family, not the concrete
// operands (so ADD covers ADD A,r / ADD A,(HL) / ADD A,n alike).
type Command int

const (
	CmdNone Command = iota // decode miss or illegal opcode; treated as NOP

	CmdNOP
	CmdHalt
	CmdStop
	CmdDI
	CmdEI

	// 8-bit loads
	CmdLDRR   // reg <- reg
	CmdLDRHL  // reg <- (HL)
	CmdLDHLR  // (HL) <- reg
	CmdLDRN   // reg / (HL) <- imm8
	CmdLDIndA // (BC)/(DE)/(HL[+-]) <- A, or A <- (BC)/(DE)/(HL[+-]) depending on Dir
	CmdLDA16A // (a16) <- A, or A <- (a16) depending on Dir
	CmdLDHA8  // (0xFF00+a8) <- A, or A <- (0xFF00+a8) depending on Dir
	CmdLDHC   // (0xFF00+C) <- A, or A <- (0xFF00+C) depending on Dir

	// 16-bit loads
	CmdLDRRNN   // rp[p] <- imm16
	CmdLDA16SP  // (a16) <- SP
	CmdLDSPHL   // SP <- HL
	CmdLDHLSPR8 // HL <- SP + r8

	// ALU (8-bit), operand variant carried in Entry (reg/(HL)/imm8)
	CmdADD
	CmdADC
	CmdSUB
	CmdSBC
	CmdAND
	CmdXOR
	CmdOR
	CmdCP

	CmdINC8
	CmdDEC8
	CmdINC16
	CmdDEC16
	CmdADDHLRR
	CmdADDSPR8

	CmdRLCA
	CmdRRCA
	CmdRLA
	CmdRRA
	CmdDAA
	CmdCPL
	CmdSCF
	CmdCCF

	CmdJR
	CmdJRCC
	CmdJPA16
	CmdJPCC
	CmdJPHL
	CmdCALLA16
	CmdCALLCC
	CmdRET
	CmdRETCC
	CmdRETI
	CmdPUSH
	CmdPOP
	CmdRST

	CmdCBPrefix

	// CB-prefixed rotate/shift and bit ops
	CmdRLC
	CmdRRC
	CmdRL
	CmdRR
	CmdSLA
	CmdSRA
	CmdSWAP
	CmdSRL
	CmdBIT
	CmdRES
	CmdSET
)

// Dir distinguishes the two directions a bidirectional load family can
// take (e.g. (a16)<-A vs A<-(a16)), since both share one Command.
type Dir int

const (
	DirNone  Dir = iota
	DirStore     // register/accumulator -> memory
	DirLoad      // memory -> register/accumulator
)

// HLStep is the post-transfer adjustment to HL for the LD (HLI/HLD),A
// and LD A,(HLI/HLD) families.
type HLStep int

const (
	HLStepNone HLStep = iota
	HLStepInc
	HLStepDec
)
