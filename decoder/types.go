package decoder

// RegClass identifies the width and flavor of a register slot. Encoding 31
// in a GPR slot is ambiguous between SP and the zero register; the decoder
// resolves that ambiguity per spec.md §4, never the caller.
type RegClass int

const (
	ClassNone RegClass = iota
	GpX                // 64-bit general-purpose register, encodings 0..30
	GpW                // 32-bit general-purpose register
	Sp                  // stack pointer (encoding 31 only)
	Xzr                 // 64-bit zero register (encoding 31 only)
	Wzr                 // 32-bit zero register (encoding 31 only)
	VFull               // vector register referenced by name only
	VB                  // 8-bit SIMD/FP scalar view
	VH                  // 16-bit SIMD/FP scalar view
	VS                  // 32-bit SIMD/FP scalar view
	VD                  // 64-bit SIMD/FP scalar view
	VQ                  // 128-bit SIMD/FP scalar view
)

func (c RegClass) String() string {
	switch c {
	case ClassNone:
		return "none"
	case GpX:
		return "X"
	case GpW:
		return "W"
	case Sp:
		return "SP"
	case Xzr:
		return "XZR"
	case Wzr:
		return "WZR"
	case VFull:
		return "V"
	case VB:
		return "B"
	case VH:
		return "H"
	case VS:
		return "S"
	case VD:
		return "D"
	case VQ:
		return "Q"
	default:
		return "unknown"
	}
}

// AddrMode identifies how a load/store instruction's memory operand is
// formed.
type AddrMode int

const (
	AddrNone AddrMode = iota
	ImmUnsigned       // scaled unsigned immediate offset
	ImmSigned         // unscaled signed immediate offset
	PreIndex          // base updated before the access
	PostIndex         // base updated after the access
	RegOffset         // base + index register, no extend
	RegExtend         // base + extended/scaled index register
	Literal           // PC-relative literal pool load
)

func (a AddrMode) String() string {
	switch a {
	case AddrNone:
		return "none"
	case ImmUnsigned:
		return "imm-unsigned"
	case ImmSigned:
		return "imm-signed"
	case PreIndex:
		return "pre-index"
	case PostIndex:
		return "post-index"
	case RegOffset:
		return "reg-offset"
	case RegExtend:
		return "reg-extend"
	case Literal:
		return "literal"
	default:
		return "unknown"
	}
}

// ExtendKind is the register-extend/shift descriptor used by addressing
// modes and register-shifted data-processing instructions. Values 0..7
// map bit-exact onto the architectural "option" field; 8..11 are shift
// kinds reused for register-shifted ALU forms.
type ExtendKind int

const (
	UxtB ExtendKind = 0
	UxtH ExtendKind = 1
	UxtW ExtendKind = 2
	UxtX ExtendKind = 3
	SxtB ExtendKind = 4
	SxtH ExtendKind = 5
	SxtW ExtendKind = 6
	SxtX ExtendKind = 7
	Lsl  ExtendKind = 8
	Lsr  ExtendKind = 9
	Asr  ExtendKind = 10
	Ror  ExtendKind = 11
)

func (e ExtendKind) String() string {
	switch e {
	case UxtB:
		return "uxtb"
	case UxtH:
		return "uxth"
	case UxtW:
		return "uxtw"
	case UxtX:
		return "uxtx"
	case SxtB:
		return "sxtb"
	case SxtH:
		return "sxth"
	case SxtW:
		return "sxtw"
	case SxtX:
		return "sxtx"
	case Lsl:
		return "lsl"
	case Lsr:
		return "lsr"
	case Asr:
		return "asr"
	case Ror:
		return "ror"
	default:
		return "unknown"
	}
}

// Cond is an architectural 4-bit condition code, 0..15 in canonical order.
type Cond int

const (
	CondEQ Cond = 0
	CondNE Cond = 1
	CondCS Cond = 2
	CondCC Cond = 3
	CondMI Cond = 4
	CondPL Cond = 5
	CondVS Cond = 6
	CondVC Cond = 7
	CondHI Cond = 8
	CondLS Cond = 9
	CondGE Cond = 10
	CondLT Cond = 11
	CondGT Cond = 12
	CondLE Cond = 13
	CondAL Cond = 14
	CondNV Cond = 15
)

// condNames is the canonical index -> mnemonic suffix table, spec.md §3.5.
var condNames = [16]string{
	"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc",
	"hi", "ls", "ge", "lt", "gt", "le", "al", "nv",
}

func (c Cond) String() string {
	if c < 0 || int(c) >= len(condNames) {
		return "unknown"
	}
	return condNames[c]
}

// InstKind is the closed set of operation kinds the decoder can emit.
type InstKind int

const (
	UNKNOWN InstKind = iota

	LDR
	LDRB
	LDRH
	LDRSW
	LDRSB
	LDRSH
	STR
	STRB
	STRH
	LDP
	STP

	MOV
	MOVZ
	MOVN
	MOVK

	ADD
	SUB
	ADDS
	SUBS
	ADR
	ADRP

	B
	BL
	BR
	BLR
	RET
	ERET
	DRPS
	CBZ
	CBNZ
	TBZ
	TBNZ

	AND
	ORR
	EOR
	ANDS
	BIC
	ORN
	EON
	BICS
	LSL
	LSR
	ASR
	ROR

	CMP
	CMN
	TST
	MVN
	NEG

	MUL
	MADD
	MSUB
	MNEG
	SDIV
	UDIV

	CSEL
	CSINC
	CSINV
	CSNEG
	CSET
	CSETM
	CINC
	CINV
	CNEG

	CLZ
	CLS
	RBIT
	REV
	REV16
	REV32
	EXTR
	SBFM
	UBFM
	BFM

	LDXR
	LDAXR
	LDXP
	LDAXP
	STXR
	STLXR
	STXP
	STLXP
	LDAR
	STLR
	LDLAR
	STLLR
	LDADD
	LDCLR
	LDEOR
	LDSET
	LDSMAX
	LDSMIN
	LDUMAX
	LDUMIN
	SWP
	CAS

	NOP // also used for the hint family (yield/wfe/wfi/sev/sevl); Mnemonic carries the distinction
	MRS

	FMOV
	FADD
	FSUB
	FMUL
	FDIV
	FABS
	FNEG
	FSQRT
	FMADD
	FMSUB
	FNMADD
	FNMSUB
	FCMP
	FCMPE
	FCCMP
	FCCMPE
	FCSEL
	FCVT
	FCVTZS
	FCVTZU
	SCVTF
	UCVTF
	FRINT
	FMAX
	FMIN
	FMAXNM
	FMINNM
	FNMUL

	DUP
	CMGT
	CMEQ
	CMLT
	CMGE
	CMLE
	ABS
	SQABS
	SQNEG
	SUQADD
	USQADD
	FMULX
	FRECPS
	FRSQRTS
	FACGE
	FCMGT
	FCMEQ
	FCMLT
	FCMGE
	FCMLE
	FCVTNS
	FCVTNU
	FCVTPS
	FCVTPU
	FCVTMS
	FCVTMU
	FCVTAS
	FCVTAU

	kindCount
)

var instKindNames = map[InstKind]string{
	UNKNOWN: "unknown",
	LDR: "ldr", LDRB: "ldrb", LDRH: "ldrh", LDRSW: "ldrsw", LDRSB: "ldrsb", LDRSH: "ldrsh",
	STR: "str", STRB: "strb", STRH: "strh", LDP: "ldp", STP: "stp",
	MOV: "mov", MOVZ: "movz", MOVN: "movn", MOVK: "movk",
	ADD: "add", SUB: "sub", ADDS: "adds", SUBS: "subs", ADR: "adr", ADRP: "adrp",
	B: "b", BL: "bl", BR: "br", BLR: "blr", RET: "ret", ERET: "eret", DRPS: "drps",
	CBZ: "cbz", CBNZ: "cbnz", TBZ: "tbz", TBNZ: "tbnz",
	AND: "and", ORR: "orr", EOR: "eor", ANDS: "ands", BIC: "bic", ORN: "orn",
	EON: "eon", BICS: "bics", LSL: "lsl", LSR: "lsr", ASR: "asr", ROR: "ror",
	CMP: "cmp", CMN: "cmn", TST: "tst", MVN: "mvn", NEG: "neg",
	MUL: "mul", MADD: "madd", MSUB: "msub", MNEG: "mneg", SDIV: "sdiv", UDIV: "udiv",
	CSEL: "csel", CSINC: "csinc", CSINV: "csinv", CSNEG: "csneg",
	CSET: "cset", CSETM: "csetm", CINC: "cinc", CINV: "cinv", CNEG: "cneg",
	CLZ: "clz", CLS: "cls", RBIT: "rbit", REV: "rev", REV16: "rev16", REV32: "rev32", EXTR: "extr",
	SBFM: "sbfm", UBFM: "ubfm", BFM: "bfm",
	LDXR: "ldxr", LDAXR: "ldaxr", LDXP: "ldxp", LDAXP: "ldaxp",
	STXR: "stxr", STLXR: "stlxr", STXP: "stxp", STLXP: "stlxp",
	LDAR: "ldar", STLR: "stlr", LDLAR: "ldlar", STLLR: "stllr",
	LDADD: "ldadd", LDCLR: "ldclr", LDEOR: "ldeor", LDSET: "ldset",
	LDSMAX: "ldsmax", LDSMIN: "ldsmin", LDUMAX: "ldumax", LDUMIN: "ldumin",
	SWP: "swp", CAS: "cas",
	NOP: "nop", MRS: "mrs",
	FMOV: "fmov", FADD: "fadd", FSUB: "fsub", FMUL: "fmul", FDIV: "fdiv",
	FABS: "fabs", FNEG: "fneg", FSQRT: "fsqrt",
	FMADD: "fmadd", FMSUB: "fmsub", FNMADD: "fnmadd", FNMSUB: "fnmsub",
	FCMP: "fcmp", FCMPE: "fcmpe", FCCMP: "fccmp", FCCMPE: "fccmpe", FCSEL: "fcsel",
	FCVT: "fcvt", FCVTZS: "fcvtzs", FCVTZU: "fcvtzu", SCVTF: "scvtf", UCVTF: "ucvtf",
	FRINT: "frint", FMAX: "fmax", FMIN: "fmin", FMAXNM: "fmaxnm", FMINNM: "fminnm", FNMUL: "fnmul",
	DUP: "dup", CMGT: "cmgt", CMEQ: "cmeq", CMLT: "cmlt", CMGE: "cmge", CMLE: "cmle", ABS: "abs",
	SQABS: "sqabs", SQNEG: "sqneg", SUQADD: "suqadd", USQADD: "usqadd",
	FMULX: "fmulx", FRECPS: "frecps", FRSQRTS: "frsqrts", FACGE: "facge",
	FCMGT: "fcmgt", FCMEQ: "fcmeq", FCMLT: "fcmlt", FCMGE: "fcmge", FCMLE: "fcmle",
	FCVTNS: "fcvtns", FCVTNU: "fcvtnu", FCVTPS: "fcvtps", FCVTPU: "fcvtpu",
	FCVTMS: "fcvtms", FCVTMU: "fcvtmu", FCVTAS: "fcvtas", FCVTAU: "fcvtau",
}

func (k InstKind) String() string {
	if name, ok := instKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Instruction is the fully decoded, architecture-level description of one
// 32-bit AArch64 instruction word. It is created by the decoder and is
// read-only afterwards; every field has a deterministic default before
// decoding begins, and a category decoder only overwrites what is
// meaningful for the encoding it matched.
type Instruction struct {
	Raw     uint32
	Address uint64

	Kind     InstKind
	Mnemonic string // final mnemonic, <= 15 chars, including any composed suffixes (e.g. "casal", "ldxrb", "b.ne")

	Rd, Rn, Rm, Rt2, Ra uint8
	RdClass, RnClass, RmClass RegClass

	Imm    int64
	HasImm bool

	AddrMode     AddrMode
	Extend       ExtendKind
	ShiftAmount  uint8 // also bit-position for TBZ/TBNZ, immr for bitfield ops

	Cond Cond

	Is64Bit    bool
	SetFlags   bool
	IsAcquire  bool
	IsRelease  bool
}

// RegRef names one register slot used by a decoded instruction: its
// architectural encoding plus the class that resolves what it means.
type RegRef struct {
	Slot  string
	Reg   uint8
	Class RegClass
}

// blankInstruction returns an Instruction with every field at its
// deterministic zero value: Kind=UNKNOWN, Mnemonic="unknown", RdClass etc.
// = ClassNone, AddrMode=AddrNone. raw/address are stamped by Decode.
func blankInstruction(word uint32, address uint64) Instruction {
	return Instruction{
		Raw:      word,
		Address:  address,
		Kind:     UNKNOWN,
		Mnemonic: "unknown",
	}
}
