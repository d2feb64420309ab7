package decoder

// Floating-point and scalar-SIMD category decoder — spec.md §4.8.

// FPSIMDTable is the ordered row set for the FP/scalar-SIMD category.
var FPSIMDTable = Table{
	{Mask: 0x5F207C00, Value: 0x1E204000, Decoder: decodeFP1Source},
	{Mask: 0x5F200C00, Value: 0x1E200800, Decoder: decodeFP2Source},
	{Mask: 0x5F000000, Value: 0x1F000000, Decoder: decodeFP3Source},
	{Mask: 0x5F203C00, Value: 0x1E202000, Decoder: decodeFPCompare},
	{Mask: uint32(0x1F)<<24 | uint32(1)<<21 | uint32(0x3)<<10, Value: uint32(0x1E)<<24 | uint32(1)<<21 | uint32(0x1)<<10, Decoder: decodeFPCondCompare},
	{Mask: uint32(0x1F)<<24 | uint32(1)<<21 | uint32(0x3)<<10, Value: uint32(0x1E)<<24 | uint32(1)<<21 | uint32(0x3)<<10, Decoder: decodeFPCondSelect},
	{Mask: 0x5F20FC00, Value: 0x1E200000, Decoder: decodeFPIntConvert},
	{Mask: 0x5F201C00, Value: 0x1E201000, Decoder: decodeFPMoveImm},
	{Mask: 0xFFE0FC00, Value: 0x5E000400, Decoder: decodeScalarDupElement},
	{Mask: 0xDF200400, Value: 0x5E200400, Decoder: decodeScalar3Same},
	{Mask: 0xDF3E0C00, Value: 0x5E200800, Decoder: decodeScalar2RegMisc},
}

func fpClassFromFtype(ftype uint32) (RegClass, bool) {
	switch ftype {
	case 0:
		return VS, true
	case 1:
		return VD, true
	case 3:
		return VH, true
	default:
		return ClassNone, false
	}
}

// decodeFP1Source decodes FMOV/FABS/FNEG/FSQRT/FCVT/FRINTx (1-source).
func decodeFP1Source(word uint32, address uint64, inst *Instruction) bool {
	m := Bit(word, 31)
	s := Bit(word, 29)
	if m != 0 || s != 0 {
		return false
	}
	ftype := Bits(word, 22, 23)
	opcode := Bits(word, 15, 20)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	class, ok := fpClassFromFtype(ftype)
	if !ok {
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.RdClass = class
	inst.RnClass = class

	switch {
	case opcode == 0:
		inst.Kind, inst.Mnemonic = FMOV, "fmov"
	case opcode == 1:
		inst.Kind, inst.Mnemonic = FABS, "fabs"
	case opcode == 2:
		inst.Kind, inst.Mnemonic = FNEG, "fneg"
	case opcode == 3:
		inst.Kind, inst.Mnemonic = FSQRT, "fsqrt"
	case opcode >= 4 && opcode <= 7:
		destClasses := [4]RegClass{VS, VD, ClassNone, VH}
		dest := destClasses[opcode&0b11]
		if dest == ClassNone {
			return false
		}
		inst.Kind, inst.Mnemonic = FCVT, "fcvt"
		inst.RdClass = dest
	case opcode >= 8 && opcode <= 0xF:
		names := map[uint32]string{0x8: "frintn", 0x9: "frintp", 0xA: "frintm", 0xB: "frintz", 0xC: "frinta", 0xE: "frintx", 0xF: "frinti"}
		name, ok := names[opcode]
		if !ok {
			return false
		}
		inst.Kind, inst.Mnemonic = FRINT, name
	default:
		return false
	}
	return true
}

var fp2SourceOps = [9]string{"fmul", "fdiv", "fadd", "fsub", "fmax", "fmin", "fmaxnm", "fminnm", "fnmul"}
var fp2SourceKinds = [9]InstKind{FMUL, FDIV, FADD, FSUB, FMAX, FMIN, FMAXNM, FMINNM, FNMUL}

// decodeFP2Source decodes FMUL/FDIV/FADD/FSUB/FMAX/FMIN/FMAXNM/FMINNM/FNMUL.
func decodeFP2Source(word uint32, address uint64, inst *Instruction) bool {
	m := Bit(word, 31)
	s := Bit(word, 29)
	if m != 0 || s != 0 {
		return false
	}
	ftype := Bits(word, 22, 23)
	rm := Bits(word, 16, 20)
	opcode := Bits(word, 12, 15)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	class, ok := fpClassFromFtype(ftype)
	if !ok || opcode >= uint32(len(fp2SourceOps)) {
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.Rm = uint8(rm)
	inst.RdClass = class
	inst.RnClass = class
	inst.RmClass = class
	inst.Kind = fp2SourceKinds[opcode]
	inst.Mnemonic = fp2SourceOps[opcode]
	return true
}

var fp3SourceOps = [4]struct {
	kind InstKind
	name string
}{
	{FMADD, "fmadd"}, {FMSUB, "fmsub"}, {FNMADD, "fnmadd"}, {FNMSUB, "fnmsub"},
}

// decodeFP3Source decodes FMADD/FMSUB/FNMADD/FNMSUB.
func decodeFP3Source(word uint32, address uint64, inst *Instruction) bool {
	m := Bit(word, 31)
	s := Bit(word, 29)
	if m != 0 || s != 0 {
		return false
	}
	ftype := Bits(word, 22, 23)
	o1 := Bit(word, 21)
	rm := Bits(word, 16, 20)
	o0 := Bit(word, 15)
	ra := Bits(word, 10, 14)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	class, ok := fpClassFromFtype(ftype)
	if !ok {
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.Rm = uint8(rm)
	inst.Ra = uint8(ra)
	inst.RdClass = class
	inst.RnClass = class
	inst.RmClass = class

	op := fp3SourceOps[(o1<<1)|o0]
	inst.Kind, inst.Mnemonic = op.kind, op.name
	return true
}

// decodeFPCompare decodes FCMP/FCMPE (register and immediate-zero forms).
func decodeFPCompare(word uint32, address uint64, inst *Instruction) bool {
	m := Bit(word, 31)
	s := Bit(word, 29)
	if m != 0 || s != 0 {
		return false
	}
	ftype := Bits(word, 22, 23)
	rm := Bits(word, 16, 20)
	rn := Bits(word, 5, 9)
	opcode2 := Bits(word, 0, 4)

	class, ok := fpClassFromFtype(ftype)
	if !ok {
		return false
	}

	inst.Rn = uint8(rn)
	inst.RnClass = class

	switch opcode2 {
	case 0x00:
		inst.Kind, inst.Mnemonic = FCMP, "fcmp"
		inst.Rm = uint8(rm)
		inst.RmClass = class
	case 0x08:
		inst.Kind, inst.Mnemonic = FCMP, "fcmp"
		inst.Imm = 0
		inst.HasImm = true
	case 0x10:
		inst.Kind, inst.Mnemonic = FCMPE, "fcmpe"
		inst.Rm = uint8(rm)
		inst.RmClass = class
	case 0x18:
		inst.Kind, inst.Mnemonic = FCMPE, "fcmpe"
		inst.Imm = 0
		inst.HasImm = true
	default:
		return false
	}
	return true
}

// decodeFPCondCompare decodes FCCMP/FCCMPE.
func decodeFPCondCompare(word uint32, address uint64, inst *Instruction) bool {
	m := Bit(word, 31)
	s := Bit(word, 29)
	if m != 0 || s != 0 {
		return false
	}
	ftype := Bits(word, 22, 23)
	rm := Bits(word, 16, 20)
	cond := Bits(word, 12, 15)
	op := Bit(word, 4)
	rn := Bits(word, 5, 9)
	nzcv := Bits(word, 0, 3)

	class, ok := fpClassFromFtype(ftype)
	if !ok {
		return false
	}

	inst.Rn = uint8(rn)
	inst.Rm = uint8(rm)
	inst.RnClass = class
	inst.RmClass = class
	inst.Cond = Cond(cond)
	inst.Imm = int64(nzcv)
	inst.HasImm = true

	if op == 1 {
		inst.Kind, inst.Mnemonic = FCCMPE, "fccmpe"
	} else {
		inst.Kind, inst.Mnemonic = FCCMP, "fccmp"
	}
	return true
}

// decodeFPCondSelect decodes FCSEL.
func decodeFPCondSelect(word uint32, address uint64, inst *Instruction) bool {
	m := Bit(word, 31)
	s := Bit(word, 29)
	if m != 0 || s != 0 {
		return false
	}
	ftype := Bits(word, 22, 23)
	rm := Bits(word, 16, 20)
	cond := Bits(word, 12, 15)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	class, ok := fpClassFromFtype(ftype)
	if !ok {
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.Rm = uint8(rm)
	inst.RdClass = class
	inst.RnClass = class
	inst.RmClass = class
	inst.Cond = Cond(cond)
	inst.Kind, inst.Mnemonic = FCSEL, "fcsel"
	return true
}

type fpIntConvertOp struct {
	kind     InstKind
	mnemonic string
	gprIsSrc bool // true: GPR -> FP reads Rn as GPR; false: FP -> GPR (or FP -> FP) reads Rn as FP
}

// fpIntConvertTable is the (rmode<<3)|opcode lookup for the FP<->integer
// and FMOV GPR<->FP composite encoding.
var fpIntConvertTable = map[uint32]fpIntConvertOp{
	0x00: {FCVTNS, "fcvtns", false},
	0x01: {FCVTNU, "fcvtnu", false},
	0x02: {SCVTF, "scvtf", true},
	0x03: {UCVTF, "ucvtf", true},
	0x04: {FCVTAS, "fcvtas", false},
	0x05: {FCVTAU, "fcvtau", false},
	0x06: {FMOV, "fmov", true},
	0x07: {FMOV, "fmov", false},
	0x08: {FCVTPS, "fcvtps", false},
	0x09: {FCVTPU, "fcvtpu", false},
	0x10: {FCVTMS, "fcvtms", false},
	0x11: {FCVTMU, "fcvtmu", false},
	0x18: {FCVTZS, "fcvtzs", false},
	0x19: {FCVTZU, "fcvtzu", false},
}

// decodeFPIntConvert decodes FCVTZS/ZU, SCVTF/UCVTF, FMOV (GPR<->FP), and
// the rounding-mode FCVT variants.
func decodeFPIntConvert(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	s := Bit(word, 29)
	if s != 0 {
		return false
	}
	ftype := Bits(word, 22, 23)
	rmode := Bits(word, 19, 20)
	opcode := Bits(word, 16, 18)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	fpClass, ok := fpClassFromFtype(ftype)
	if !ok {
		return false
	}
	op, ok := fpIntConvertTable[(rmode<<3)|opcode]
	if !ok {
		return false
	}

	gprClassForSf := GpW
	is64 := sf == 1
	if is64 {
		gprClassForSf = GpX
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.Is64Bit = is64
	inst.Kind = op.kind
	inst.Mnemonic = op.mnemonic

	if op.gprIsSrc {
		inst.RnClass = gprClassForSf
		inst.RdClass = fpClass
	} else {
		inst.RnClass = fpClass
		inst.RdClass = gprClassForSf
	}
	return true
}

// decodeFPMoveImm decodes FMOV with an immediate operand.
func decodeFPMoveImm(word uint32, address uint64, inst *Instruction) bool {
	m := Bit(word, 31)
	s := Bit(word, 29)
	if m != 0 || s != 0 {
		return false
	}
	ftype := Bits(word, 22, 23)
	imm8 := Bits(word, 13, 20)
	imm5 := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	if imm5 != 0 {
		return false
	}
	class, ok := fpClassFromFtype(ftype)
	if !ok {
		return false
	}

	inst.Rd = uint8(rd)
	inst.RdClass = class
	inst.Imm = int64(imm8)
	inst.HasImm = true
	inst.Kind, inst.Mnemonic = FMOV, "fmov"
	return true
}

var dupElemClasses = [4]RegClass{VB, VH, VS, VD}

// decodeScalarDupElement decodes the scalar DUP (element) form.
func decodeScalarDupElement(word uint32, address uint64, inst *Instruction) bool {
	imm5 := Bits(word, 16, 20)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	var size int
	var index uint32
	switch {
	case imm5&0x1 != 0:
		size, index = 0, imm5>>1
	case imm5&0x2 != 0:
		size, index = 1, imm5>>2
	case imm5&0x4 != 0:
		size, index = 2, imm5>>3
	case imm5&0x8 != 0:
		size, index = 3, imm5>>4
	default:
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.RdClass = dupElemClasses[size]
	inst.RnClass = VFull
	inst.Imm = int64(index)
	inst.HasImm = true
	inst.Kind, inst.Mnemonic = DUP, "dup"
	return true
}

type scalar3SameOp struct {
	key  uint32
	kind InstKind
	name string
}

// scalar3SameOps is scanned in order, first match wins. Key 0x3D is
// listed twice on purpose: the architecture's scalar-3-same table maps
// it to both FACGE (U=1,opcode=0x1D) and FDIV (U=1,opcode=0x1D) in
// different sources; this keeps facge as the winner and fdiv unreachable
// at that key, per spec.md's note on the duplicate.
var scalar3SameOps = []scalar3SameOp{
	{0x1A, FADD, "fadd"},
	{0x1B, FMULX, "fmulx"},
	{0x1C, FCMEQ, "fcmeq"},
	{0x1E, FMAX, "fmax"},
	{0x1F, FRECPS, "frecps"},
	{0x21, ADD, "add"},
	{0x3D, FACGE, "facge"},
	{0x3D, FDIV, "fdiv"},
	{0x3A, FSUB, "fsub"},
	{0x3B, FMUL, "fmul"},
	{0x3C, FCMGE, "fcmge"},
	{0x3E, FMIN, "fmin"},
	{0x3F, FRSQRTS, "frsqrts"},
	{0x01, SUB, "sub"},
}

// decodeScalar3Same decodes the scalar three-same-operand family.
func decodeScalar3Same(word uint32, address uint64, inst *Instruction) bool {
	u := Bit(word, 29)
	size := Bits(word, 22, 23)
	rm := Bits(word, 16, 20)
	opcode := Bits(word, 11, 15)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	key := (u << 5) | opcode
	for _, op := range scalar3SameOps {
		if op.key != key {
			continue
		}
		class := simdMemClasses[size]
		inst.Rd = uint8(rd)
		inst.Rn = uint8(rn)
		inst.Rm = uint8(rm)
		inst.RdClass = class
		inst.RnClass = class
		inst.RmClass = class
		inst.Kind = op.kind
		inst.Mnemonic = op.name
		return true
	}
	return false
}

type scalar2RegMiscOp struct {
	kind InstKind
	name string
}

// scalar2RegMiscOps is the (U<<5)|opcode lookup for the scalar
// two-register-misc family.
var scalar2RegMiscOps = map[uint32]scalar2RegMiscOp{
	0x03: {SUQADD, "suqadd"},
	0x07: {SQABS, "sqabs"},
	0x08: {CMGT, "cmgt"},
	0x09: {CMEQ, "cmeq"},
	0x0A: {CMLT, "cmlt"},
	0x0B: {ABS, "abs"},
	0x0C: {FCMGT, "fcmgt"},
	0x0D: {FCMEQ, "fcmeq"},
	0x0E: {FCMLT, "fcmlt"},
	0x1A: {FCVTNS, "fcvtns"},
	0x1B: {FCVTMS, "fcvtms"},
	0x1C: {FCVTAS, "fcvtas"},
	0x1D: {SCVTF, "scvtf"},
	0x23: {USQADD, "usqadd"},
	0x27: {SQNEG, "sqneg"},
	0x28: {CMGE, "cmge"},
	0x29: {CMLE, "cmle"},
	0x2B: {NEG, "neg"},
	0x2C: {FCMGE, "fcmge"},
	0x2D: {FCMLE, "fcmle"},
	0x3A: {FCVTPU, "fcvtpu"},
	0x3B: {FCVTZU, "fcvtzu"},
	0x3D: {UCVTF, "ucvtf"},
}

// decodeScalar2RegMisc decodes the scalar two-register-miscellaneous family.
func decodeScalar2RegMisc(word uint32, address uint64, inst *Instruction) bool {
	u := Bit(word, 29)
	size := Bits(word, 22, 23)
	opcode := Bits(word, 12, 16)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	op, ok := scalar2RegMiscOps[(u<<5)|opcode]
	if !ok {
		return false
	}

	class := simdMemClasses[size]
	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.RdClass = class
	inst.RnClass = class
	inst.Kind = op.kind
	inst.Mnemonic = op.name
	return true
}
