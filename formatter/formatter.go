// Package formatter renders a decoded decoder.Instruction as AArch64
// assembly syntax. It never reinterprets bits the decoder already decided
// (register class, addressing mode, alias kind); it only chooses how to
// print what is already there.
package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/lookbusy1344/aarch64-disasm/decoder"
)

// Format renders one instruction. Unrecognized words come through with
// Kind == decoder.UNKNOWN; those are rendered as a raw .word directive so
// callers never have to special-case decode failure themselves.
func Format(inst decoder.Instruction) string {
	if inst.Kind == decoder.UNKNOWN {
		return fmt.Sprintf(".word 0x%08x", inst.Raw)
	}
	ops := operands(inst)
	if ops == "" {
		return inst.Mnemonic
	}
	return inst.Mnemonic + " " + ops
}

func regName(reg uint8, class decoder.RegClass) string {
	switch class {
	case decoder.GpX:
		return fmt.Sprintf("x%d", reg)
	case decoder.GpW:
		return fmt.Sprintf("w%d", reg)
	case decoder.Sp:
		return "sp"
	case decoder.Xzr:
		return "xzr"
	case decoder.Wzr:
		return "wzr"
	case decoder.VFull:
		return fmt.Sprintf("v%d", reg)
	case decoder.VB:
		return fmt.Sprintf("b%d", reg)
	case decoder.VH:
		return fmt.Sprintf("h%d", reg)
	case decoder.VS:
		return fmt.Sprintf("s%d", reg)
	case decoder.VD:
		return fmt.Sprintf("d%d", reg)
	case decoder.VQ:
		return fmt.Sprintf("q%d", reg)
	default:
		return "?"
	}
}

func branchTarget(inst decoder.Instruction) uint64 {
	return uint64(int64(inst.Address) + inst.Imm)
}

func shiftSuffix(inst decoder.Instruction) string {
	if inst.ShiftAmount == 0 {
		return ""
	}
	return fmt.Sprintf(", %s #%d", inst.Extend, inst.ShiftAmount)
}

func memOperand(inst decoder.Instruction) string {
	base := regName(inst.Rn, inst.RnClass)
	switch inst.AddrMode {
	case decoder.ImmUnsigned, decoder.ImmSigned:
		if inst.Imm == 0 {
			return fmt.Sprintf("[%s]", base)
		}
		return fmt.Sprintf("[%s, #%d]", base, inst.Imm)
	case decoder.PreIndex:
		return fmt.Sprintf("[%s, #%d]!", base, inst.Imm)
	case decoder.PostIndex:
		return fmt.Sprintf("[%s], #%d", base, inst.Imm)
	case decoder.RegOffset:
		return fmt.Sprintf("[%s, %s]", base, regName(inst.Rm, inst.RmClass))
	case decoder.RegExtend:
		idx := regName(inst.Rm, inst.RmClass)
		if inst.ShiftAmount != 0 {
			return fmt.Sprintf("[%s, %s, %s #%d]", base, idx, inst.Extend, inst.ShiftAmount)
		}
		return fmt.Sprintf("[%s, %s, %s]", base, idx, inst.Extend)
	default:
		return fmt.Sprintf("[%s]", base)
	}
}

var noOperandKinds = map[decoder.InstKind]bool{
	decoder.NOP: true, decoder.ERET: true, decoder.DRPS: true,
}

var regOnlyKinds = map[decoder.InstKind]bool{
	decoder.BR: true, decoder.BLR: true, decoder.RET: true,
}

var pairMemKinds = map[decoder.InstKind]bool{
	decoder.LDP: true, decoder.STP: true,
}

var exclusiveSingleKinds = map[decoder.InstKind]bool{
	decoder.LDXR: true, decoder.LDAXR: true, decoder.LDAR: true,
	decoder.STLR: true, decoder.LDLAR: true, decoder.STLLR: true,
}

var exclusiveStoreSingleKinds = map[decoder.InstKind]bool{
	decoder.STXR: true, decoder.STLXR: true,
}

var exclusivePairLoadKinds = map[decoder.InstKind]bool{
	decoder.LDXP: true, decoder.LDAXP: true,
}

var exclusivePairStoreKinds = map[decoder.InstKind]bool{
	decoder.STXP: true, decoder.STLXP: true,
}

var rmwKinds = map[decoder.InstKind]bool{
	decoder.LDADD: true, decoder.LDCLR: true, decoder.LDEOR: true, decoder.LDSET: true,
	decoder.LDSMAX: true, decoder.LDSMIN: true, decoder.LDUMAX: true, decoder.LDUMIN: true,
	decoder.SWP: true, decoder.CAS: true,
}

var simpleLoadStoreKinds = map[decoder.InstKind]bool{
	decoder.LDRB: true, decoder.LDRH: true, decoder.LDRSB: true, decoder.LDRSH: true,
	decoder.STRB: true, decoder.STRH: true, decoder.STR: true,
}

var condSetKinds = map[decoder.InstKind]bool{
	decoder.CSET: true, decoder.CSETM: true,
}

var condUnaryKinds = map[decoder.InstKind]bool{
	decoder.CINC: true, decoder.CINV: true, decoder.CNEG: true,
}

var condTernaryKinds = map[decoder.InstKind]bool{
	decoder.CSEL: true, decoder.CSINC: true, decoder.CSINV: true, decoder.CSNEG: true,
}

var fpCondTernaryKinds = map[decoder.InstKind]bool{
	decoder.FCSEL: true,
}

var fpCondCompareKinds = map[decoder.InstKind]bool{
	decoder.FCCMP: true, decoder.FCCMPE: true,
}

var fp2SourceKinds = map[decoder.InstKind]bool{
	decoder.FADD: true, decoder.FSUB: true, decoder.FMUL: true, decoder.FDIV: true,
	decoder.FMAX: true, decoder.FMIN: true, decoder.FMAXNM: true, decoder.FMINNM: true,
	decoder.FNMUL: true, decoder.FMULX: true, decoder.FRECPS: true, decoder.FRSQRTS: true,
	decoder.CMGT: true, decoder.CMEQ: true, decoder.CMLT: true, decoder.CMGE: true, decoder.CMLE: true,
	decoder.FACGE: true, decoder.FCMGT: true, decoder.FCMEQ: true, decoder.FCMLT: true,
	decoder.FCMGE: true, decoder.FCMLE: true, decoder.ADD: true, decoder.SUB: true,
}

var fp1SourceKinds = map[decoder.InstKind]bool{
	decoder.FABS: true, decoder.FNEG: true, decoder.FSQRT: true, decoder.FCVT: true,
	decoder.FRINT: true, decoder.ABS: true, decoder.SQABS: true, decoder.SQNEG: true,
	decoder.SUQADD: true, decoder.USQADD: true, decoder.NEG: true,
	decoder.FCVTNS: true, decoder.FCVTNU: true, decoder.FCVTPS: true, decoder.FCVTPU: true,
	decoder.FCVTMS: true, decoder.FCVTMU: true, decoder.FCVTAS: true, decoder.FCVTAU: true,
	decoder.FCVTZS: true, decoder.FCVTZU: true, decoder.SCVTF: true, decoder.UCVTF: true,
}

var fp3SourceKinds = map[decoder.InstKind]bool{
	decoder.FMADD: true, decoder.FMSUB: true, decoder.FNMADD: true, decoder.FNMSUB: true,
}

var moveWideKinds = map[decoder.InstKind]bool{
	decoder.MOVZ: true, decoder.MOVN: true, decoder.MOVK: true,
}

var bitfieldImmKinds = map[decoder.InstKind]bool{
	decoder.SBFM: true, decoder.UBFM: true, decoder.BFM: true,
}

func operands(inst decoder.Instruction) string {
	switch {
	case noOperandKinds[inst.Kind]:
		return ""
	case regOnlyKinds[inst.Kind]:
		if inst.Kind == decoder.RET && inst.Rn == 30 {
			return ""
		}
		return regName(inst.Rn, inst.RnClass)
	case inst.Kind == decoder.B || inst.Kind == decoder.BL:
		return fmt.Sprintf("0x%x", branchTarget(inst))
	case inst.Kind == decoder.CBZ || inst.Kind == decoder.CBNZ:
		return fmt.Sprintf("%s, 0x%x", regName(inst.Rd, inst.RdClass), branchTarget(inst))
	case inst.Kind == decoder.TBZ || inst.Kind == decoder.TBNZ:
		return fmt.Sprintf("%s, #%d, 0x%x", regName(inst.Rd, inst.RdClass), inst.ShiftAmount, branchTarget(inst))
	case inst.Kind == decoder.MRS:
		return fmt.Sprintf("%s, %s", regName(inst.Rd, inst.RdClass), sysRegName(int64(inst.Raw>>5)&0xFFFF))
	case inst.Kind == decoder.ADR || inst.Kind == decoder.ADRP:
		return fmt.Sprintf("%s, 0x%x", regName(inst.Rd, inst.RdClass), branchTarget(inst))
	case pairMemKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rt2, inst.RdClass), memOperand(inst))
	case inst.AddrMode == decoder.Literal:
		return fmt.Sprintf("%s, 0x%x", regName(inst.Rd, inst.RdClass), branchTarget(inst))
	case inst.Kind == decoder.LDR || simpleLoadStoreKinds[inst.Kind] || inst.Kind == decoder.LDRSW:
		return fmt.Sprintf("%s, %s", regName(inst.Rd, inst.RdClass), memOperand(inst))
	case exclusiveSingleKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s", regName(inst.Rd, inst.RdClass), memOperand(inst))
	case exclusiveStoreSingleKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, %s", regName(inst.Rm, inst.RmClass), regName(inst.Rd, inst.RdClass), memOperand(inst))
	case exclusivePairLoadKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rt2, inst.RdClass), memOperand(inst))
	case exclusivePairStoreKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, %s, %s", regName(inst.Rm, inst.RmClass), regName(inst.Rd, inst.RdClass), regName(inst.Rt2, inst.RdClass), memOperand(inst))
	case rmwKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, %s", regName(inst.Rm, inst.RmClass), regName(inst.Rd, inst.RdClass), memOperand(inst))
	case moveWideKinds[inst.Kind]:
		if inst.ShiftAmount == 0 {
			return fmt.Sprintf("%s, #%d", regName(inst.Rd, inst.RdClass), inst.Imm)
		}
		return fmt.Sprintf("%s, #%d, lsl #%d", regName(inst.Rd, inst.RdClass), inst.Imm, inst.ShiftAmount)
	case bitfieldImmKinds[inst.Kind]:
		imms := inst.Imm & 0x3F
		return fmt.Sprintf("%s, %s, #%d, #%d", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), inst.ShiftAmount, imms)
	case inst.Kind == decoder.EXTR:
		return fmt.Sprintf("%s, %s, %s, #%d", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass), inst.ShiftAmount)
	case inst.Kind == decoder.ROR:
		if inst.Rm == inst.Rn && inst.RmClass == inst.RnClass {
			return fmt.Sprintf("%s, %s, #%d", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), inst.ShiftAmount)
		}
		return fmt.Sprintf("%s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass))
	case inst.Kind == decoder.LSL || inst.Kind == decoder.LSR || inst.Kind == decoder.ASR:
		if inst.RmClass != decoder.ClassNone {
			return fmt.Sprintf("%s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass))
		}
		return fmt.Sprintf("%s, %s, #%d", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), inst.ShiftAmount)
	case inst.Kind == decoder.MOV:
		if inst.HasImm {
			return fmt.Sprintf("%s, #%s", regName(inst.Rd, inst.RdClass), logicalImmText(inst))
		}
		return fmt.Sprintf("%s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rm, inst.RmClass))
	case inst.Kind == decoder.MVN:
		return fmt.Sprintf("%s, %s%s", regName(inst.Rd, inst.RdClass), regName(inst.Rm, inst.RmClass), shiftSuffix(inst))
	case inst.Kind == decoder.NEG:
		return fmt.Sprintf("%s, %s%s", regName(inst.Rd, inst.RdClass), regName(inst.Rm, inst.RmClass), shiftSuffix(inst))
	case inst.Kind == decoder.CMP || inst.Kind == decoder.CMN:
		if inst.HasImm {
			return fmt.Sprintf("%s, #%d", regName(inst.Rn, inst.RnClass), inst.Imm)
		}
		return fmt.Sprintf("%s, %s%s", regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass), shiftSuffix(inst))
	case inst.Kind == decoder.TST:
		if inst.HasImm {
			return fmt.Sprintf("%s, #%s", regName(inst.Rn, inst.RnClass), logicalImmText(inst))
		}
		return fmt.Sprintf("%s, %s%s", regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass), shiftSuffix(inst))
	case inst.Kind == decoder.AND || inst.Kind == decoder.ORR || inst.Kind == decoder.EOR || inst.Kind == decoder.ANDS ||
		inst.Kind == decoder.BIC || inst.Kind == decoder.ORN || inst.Kind == decoder.EON || inst.Kind == decoder.BICS:
		if inst.HasImm {
			return fmt.Sprintf("%s, %s, #%s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), logicalImmText(inst))
		}
		return fmt.Sprintf("%s, %s, %s%s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass), shiftSuffix(inst))
	case inst.Kind == decoder.ADD || inst.Kind == decoder.SUB || inst.Kind == decoder.ADDS || inst.Kind == decoder.SUBS:
		if inst.HasImm {
			if inst.ShiftAmount != 0 {
				return fmt.Sprintf("%s, %s, #%d, lsl #%d", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), inst.Imm, inst.ShiftAmount)
			}
			return fmt.Sprintf("%s, %s, #%d", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), inst.Imm)
		}
		return fmt.Sprintf("%s, %s, %s%s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass), shiftSuffix(inst))
	case inst.Kind == decoder.UDIV || inst.Kind == decoder.SDIV || inst.Kind == decoder.MUL || inst.Kind == decoder.MNEG:
		return fmt.Sprintf("%s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass))
	case inst.Kind == decoder.MADD || inst.Kind == decoder.MSUB:
		return fmt.Sprintf("%s, %s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass), regName(inst.Ra, inst.RdClass))
	case inst.Kind == decoder.CLZ || inst.Kind == decoder.CLS || inst.Kind == decoder.RBIT ||
		inst.Kind == decoder.REV || inst.Kind == decoder.REV16 || inst.Kind == decoder.REV32:
		return fmt.Sprintf("%s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass))
	case condSetKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s", regName(inst.Rd, inst.RdClass), inst.Cond)
	case condUnaryKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), inst.Cond)
	case condTernaryKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass), inst.Cond)
	case fpCondTernaryKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass), inst.Cond)
	case fpCondCompareKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, #%d, %s", regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass), inst.Imm, inst.Cond)
	case inst.Kind == decoder.FCMP || inst.Kind == decoder.FCMPE:
		if inst.HasImm {
			return fmt.Sprintf("%s, #0.0", regName(inst.Rn, inst.RnClass))
		}
		return fmt.Sprintf("%s, %s", regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass))
	case inst.Kind == decoder.FMOV:
		return fpMovOperands(inst)
	case fp3SourceKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass), regName(inst.Ra, inst.RdClass))
	case fp2SourceKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), regName(inst.Rm, inst.RmClass))
	case fp1SourceKinds[inst.Kind]:
		return fmt.Sprintf("%s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass))
	case inst.Kind == decoder.DUP:
		return fmt.Sprintf("%s, %s.d[%d]", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass), inst.Imm)
	default:
		return genericOperands(inst)
	}
}

// genericOperands is the fallback for any kind not covered by a more
// specific case above: print whichever Rd/Rn/Rm/imm slots are populated.
func genericOperands(inst decoder.Instruction) string {
	var parts []string
	if inst.RdClass != decoder.ClassNone {
		parts = append(parts, regName(inst.Rd, inst.RdClass))
	}
	if inst.RnClass != decoder.ClassNone {
		parts = append(parts, regName(inst.Rn, inst.RnClass))
	}
	if inst.RmClass != decoder.ClassNone {
		parts = append(parts, regName(inst.Rm, inst.RmClass))
	}
	if inst.HasImm {
		parts = append(parts, fmt.Sprintf("#%d", inst.Imm))
	}
	return strings.Join(parts, ", ")
}

// fpMovOperands distinguishes FMOV's three shapes: FP<->FP, FP<->GPR, and
// FP<-immediate. The decoder leaves that distinction entirely in which
// class fields it populated.
func fpMovOperands(inst decoder.Instruction) string {
	if inst.RnClass == decoder.ClassNone {
		return fmt.Sprintf("%s, #%s", regName(inst.Rd, inst.RdClass), fpImmText(inst))
	}
	return fmt.Sprintf("%s, %s", regName(inst.Rd, inst.RdClass), regName(inst.Rn, inst.RnClass))
}

// sysRegName resolves an MRS specifier packed as op0:op1:CRn:CRm:op2 (the
// layout of bits 20..5 of the raw word) to a friendly name, falling back to
// the generic Sop0_op1_Cn_Cm_op2 form.
func sysRegName(packed int64) string {
	op0 := (packed >> 14) & 0x3
	op1 := (packed >> 11) & 0x7
	crn := (packed >> 7) & 0xF
	crm := (packed >> 3) & 0xF
	op2 := packed & 0x7

	key := [5]int64{op0, op1, crn, crm, op2}
	if name, ok := friendlySysRegs[key]; ok {
		return name
	}
	return fmt.Sprintf("s%d_%d_c%d_c%d_%d", op0, op1, crn, crm, op2)
}

var friendlySysRegs = map[[5]int64]string{
	{3, 3, 4, 2, 0}: "nzcv",
	{3, 3, 4, 4, 0}: "fpcr",
	{3, 3, 4, 4, 1}: "fpsr",
	{3, 3, 13, 0, 2}: "tpidr_el0",
	{3, 3, 14, 0, 0}: "cntfrq_el0",
	{3, 3, 14, 0, 2}: "cntvct_el0",
	{3, 0, 0, 0, 0}: "midr_el1",
	{3, 0, 0, 0, 5}: "mpidr_el1",
}

// logicalImmText expands the decoder's packed (immr<<6)|imms Imm, plus N
// riding in ShiftAmount (decoder/dataproc_imm.go), into the architectural
// replicated bitmask, spec.md §9 Open Question 3.
func logicalImmText(inst decoder.Instruction) string {
	n := uint32(inst.ShiftAmount)
	immr := uint32((inst.Imm >> 6) & 0x3F)
	imms := uint32(inst.Imm & 0x3F)
	mask, ok := decodeBitMasks(n, immr, imms, inst.Is64Bit)
	if !ok {
		return fmt.Sprintf("0x%x", uint64(inst.Imm))
	}
	return fmt.Sprintf("0x%x", mask)
}

// decodeBitMasks is the standard AArch64 logical-immediate expansion
// algorithm (DecodeBitMasks in the Arm Architecture Reference Manual).
func decodeBitMasks(n, immr, imms uint32, is64 bool) (uint64, bool) {
	width := 32
	if is64 {
		width = 64
	}
	combined := (n << 6) | (^imms & 0x3F)
	length := -1
	for i := 6; i >= 0; i-- {
		if combined&(1<<uint(i)) != 0 {
			length = i
			break
		}
	}
	if length < 0 {
		return 0, false
	}
	esize := 1 << uint(length)
	levels := uint32(esize - 1)
	s := imms & levels
	r := immr & levels
	if s == levels {
		return 0, false
	}

	var welem uint64
	if s+1 >= 64 {
		welem = ^uint64(0)
	} else {
		welem = (uint64(1) << (s + 1)) - 1
	}
	if r > 0 {
		fieldMask := (uint64(1) << uint(esize)) - 1
		welem = ((welem >> r) | (welem << (uint(esize) - uint(r)))) & fieldMask
	}

	var result uint64
	for i := 0; i < width/esize; i++ {
		result |= welem << uint(i*esize)
	}
	if !is64 {
		result &= 0xFFFFFFFF
	}
	return result, true
}

// fpImmText expands the decoder's raw 8-bit FMOV-immediate pattern
// (spec.md §9 Open Question 2) into its architectural floating-point value.
func fpImmText(inst decoder.Instruction) string {
	imm8 := uint32(inst.Imm) & 0xFF
	var e, f uint
	switch inst.RdClass {
	case decoder.VH:
		e, f = 5, 10
	case decoder.VS:
		e, f = 8, 23
	case decoder.VD:
		e, f = 11, 52
	default:
		return fmt.Sprintf("0x%x", imm8)
	}

	sign := (imm8 >> 7) & 1
	b := (imm8 >> 6) & 1
	cd := (imm8 >> 4) & 0x3
	frac4 := imm8 & 0xF

	replBits := e - 3
	var repl uint32
	if b == 1 {
		repl = (1 << replBits) - 1
	}
	notB := uint32(1) - b
	exp := (notB << (e - 1)) | (repl << 2) | cd
	bias := (1 << (e - 1)) - 1

	fracValue := uint64(frac4) << (f - 4)
	value := (1 + float64(fracValue)/float64(uint64(1)<<f)) * math.Pow(2, float64(int(exp)-bias))
	if sign == 1 {
		value = -value
	}
	return trimFloat(value)
}

func trimFloat(v float64) string {
	s := fmt.Sprintf("%g", v)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
