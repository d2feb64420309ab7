// Package helpers provides small, pure read-only queries over a decoded
// decoder.Instruction — spec.md §6 and SPEC_FULL.md §4.10. None of these
// add decoding logic; they only interpret fields the decoder already set.
package helpers

import "github.com/lookbusy1344/aarch64-disasm/decoder"

var branchTargetKinds = map[decoder.InstKind]bool{
	decoder.B: true, decoder.BL: true,
	decoder.CBZ: true, decoder.CBNZ: true,
	decoder.TBZ: true, decoder.TBNZ: true,
	decoder.ADR: true, decoder.ADRP: true,
}

// BranchTarget returns address+imm for the kinds that carry a PC-relative
// immediate, and false otherwise.
func BranchTarget(inst decoder.Instruction) (uint64, bool) {
	if !branchTargetKinds[inst.Kind] {
		return 0, false
	}
	return uint64(int64(inst.Address) + inst.Imm), true
}

var branchKinds = map[decoder.InstKind]bool{
	decoder.B: true, decoder.BL: true, decoder.BR: true, decoder.BLR: true,
	decoder.RET: true, decoder.ERET: true, decoder.DRPS: true,
	decoder.CBZ: true, decoder.CBNZ: true, decoder.TBZ: true, decoder.TBNZ: true,
}

// IsBranch reports whether kind transfers control flow.
func IsBranch(kind decoder.InstKind) bool {
	return branchKinds[kind]
}

var loadStoreKinds = map[decoder.InstKind]bool{
	decoder.LDR: true, decoder.LDRB: true, decoder.LDRH: true, decoder.LDRSW: true,
	decoder.LDRSB: true, decoder.LDRSH: true,
	decoder.STR: true, decoder.STRB: true, decoder.STRH: true,
	decoder.LDP: true, decoder.STP: true,
	decoder.LDXR: true, decoder.LDAXR: true, decoder.LDXP: true, decoder.LDAXP: true,
	decoder.STXR: true, decoder.STLXR: true, decoder.STXP: true, decoder.STLXP: true,
	decoder.LDAR: true, decoder.STLR: true, decoder.LDLAR: true, decoder.STLLR: true,
	decoder.LDADD: true, decoder.LDCLR: true, decoder.LDEOR: true, decoder.LDSET: true,
	decoder.LDSMAX: true, decoder.LDSMIN: true, decoder.LDUMAX: true, decoder.LDUMIN: true,
	decoder.SWP: true, decoder.CAS: true,
}

// IsLoadStore reports whether kind touches memory.
func IsLoadStore(kind decoder.InstKind) bool {
	return loadStoreKinds[kind]
}

// rt2Kinds and raKinds name the instruction kinds whose Rt2/Ra slots are
// meaningful; both share Rd's class (decoder/loadstore.go, dataproc_reg.go,
// fpsimd.go).
var rt2Kinds = map[decoder.InstKind]bool{
	decoder.LDP: true, decoder.STP: true,
	decoder.LDXP: true, decoder.LDAXP: true, decoder.STXP: true, decoder.STLXP: true,
}

var raKinds = map[decoder.InstKind]bool{
	decoder.MADD: true, decoder.MSUB: true,
	decoder.FMADD: true, decoder.FMSUB: true, decoder.FNMADD: true, decoder.FNMSUB: true,
}

// UsedRegisters returns every register slot the instruction populates with
// a real class, in Rd/Rn/Rm/Rt2/Ra order.
func UsedRegisters(inst decoder.Instruction) []decoder.RegRef {
	var refs []decoder.RegRef
	add := func(slot string, reg uint8, class decoder.RegClass) {
		if class != decoder.ClassNone {
			refs = append(refs, decoder.RegRef{Slot: slot, Reg: reg, Class: class})
		}
	}
	add("Rd", inst.Rd, inst.RdClass)
	add("Rn", inst.Rn, inst.RnClass)
	add("Rm", inst.Rm, inst.RmClass)
	if rt2Kinds[inst.Kind] {
		add("Rt2", inst.Rt2, inst.RdClass)
	}
	if raKinds[inst.Kind] {
		add("Ra", inst.Ra, inst.RdClass)
	}
	return refs
}

// ImmediateValue returns inst.Imm, inst.HasImm.
func ImmediateValue(inst decoder.Instruction) (int64, bool) {
	return inst.Imm, inst.HasImm
}
