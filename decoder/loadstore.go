package decoder

// Load/store category decoder — spec.md §4.7. Row order matters: the
// CAS row overlaps the broad load/store exclusive mask, so the exclusive
// decoder explicitly rejects that sub-pattern (o2=1, o1=1) and lets the
// engine fall through to the CAS row.

// LoadStoreTable is the ordered row set for the load/store category.
var LoadStoreTable = Table{
	{Mask: 0x3F000000, Value: 0x08000000, Decoder: decodeLoadStoreExclusive},
	{Mask: uint32(0x7F)<<23 | uint32(1)<<21 | uint32(0x1F)<<10, Value: uint32(0x11)<<23 | uint32(1)<<21 | uint32(0x1F)<<10, Decoder: decodeCAS},
	{Mask: 0x3B200C00, Value: 0x38200000, Decoder: decodeAtomicRMW},
	{Mask: 0x3A000000, Value: 0x28000000, Decoder: decodeLoadStorePair},
	{Mask: 0x3B000000, Value: 0x18000000, Decoder: decodeLoadLiteral},
	{Mask: 0x3B000000, Value: 0x39000000, Decoder: decodeLoadStoreUnsignedImm},
	{Mask: 0x3B200C00, Value: 0x38200800, Decoder: decodeLoadStoreRegOffset},
	{Mask: 0x3B200000, Value: 0x38000000, Decoder: decodeLoadStoreUnscaled},
}

// baseClass implements the base-register class rule shared by every
// memory encoding: Rn==31 means SP, otherwise a plain 64-bit GPR.
func baseClass(rn uint32) RegClass {
	if rn == 31 {
		return Sp
	}
	return GpX
}

func atomicSuffix(acquire, release bool) string {
	switch {
	case acquire && release:
		return "al"
	case acquire:
		return "a"
	case release:
		return "l"
	default:
		return ""
	}
}

func memSizeSuffix(size uint32) string {
	switch size {
	case 0:
		return "b"
	case 1:
		return "h"
	default:
		return ""
	}
}

// decodeLoadStoreExclusive decodes the exclusive-pair and ordered
// (LDAR/STLR) families.
func decodeLoadStoreExclusive(word uint32, address uint64, inst *Instruction) bool {
	size := Bits(word, 30, 31)
	o2 := Bit(word, 23)
	l := Bit(word, 22)
	o1 := Bit(word, 21)
	rs := Bits(word, 16, 20)
	o0 := Bit(word, 15)
	rt2 := Bits(word, 10, 14)
	rn := Bits(word, 5, 9)
	rt := Bits(word, 0, 4)

	inst.IsAcquire = o0 == 1
	inst.IsRelease = o1 == 1
	inst.Rn = uint8(rn)
	inst.RnClass = baseClass(rn)

	is64 := size == 3
	rdClass := GpW
	if is64 {
		rdClass = GpX
	}
	inst.Rd = uint8(rt)
	inst.RdClass = rdClass
	inst.Is64Bit = is64

	suffix := memSizeSuffix(size)

	if o2 == 0 {
		if l == 1 {
			if o1 == 0 {
				if o0 == 0 {
					inst.Kind = LDXR
				} else {
					inst.Kind = LDAXR
				}
			} else {
				inst.Rt2 = uint8(rt2)
				if o0 == 0 {
					inst.Kind = LDXP
				} else {
					inst.Kind = LDAXP
				}
			}
		} else {
			// Reserved: the status register may not alias the registers it
			// reports on (spec.md §9 Open Question 4).
			if rs == rt || rs == rn {
				return false
			}
			inst.Rm = uint8(rs)
			inst.RmClass = GpW
			if o1 == 0 {
				if o0 == 0 {
					inst.Kind = STXR
				} else {
					inst.Kind = STLXR
				}
			} else {
				if rs == rt2 {
					return false
				}
				inst.Rt2 = uint8(rt2)
				if o0 == 0 {
					inst.Kind = STXP
				} else {
					inst.Kind = STLXP
				}
			}
		}
	} else {
		if o1 == 1 {
			// This is actually a CAS encoding; defer to that row.
			return false
		}
		if rs != 31 || rt2 != 31 {
			return false
		}
		if l == 1 {
			if o0 == 1 {
				inst.Kind = LDAR
			} else {
				inst.Kind = LDLAR
			}
		} else {
			if o0 == 1 {
				inst.Kind = STLR
			} else {
				inst.Kind = STLLR
			}
		}
	}

	inst.Mnemonic = inst.Kind.String() + suffix
	return true
}

// decodeCAS decodes the compare-and-swap family.
func decodeCAS(word uint32, address uint64, inst *Instruction) bool {
	size := Bits(word, 30, 31)
	o1 := Bit(word, 22)
	rs := Bits(word, 16, 20)
	o0 := Bit(word, 15)
	rn := Bits(word, 5, 9)
	rt := Bits(word, 0, 4)

	is64 := size == 3
	rdClass := GpW
	if is64 {
		rdClass = GpX
	}

	inst.Kind = CAS
	inst.IsAcquire = o0 == 1
	inst.IsRelease = o1 == 1
	inst.Rd = uint8(rt)
	inst.RdClass = rdClass
	inst.Rm = uint8(rs)
	inst.RmClass = rdClass
	inst.Rn = uint8(rn)
	inst.RnClass = baseClass(rn)
	inst.Is64Bit = is64
	inst.Mnemonic = "cas" + atomicSuffix(inst.IsAcquire, inst.IsRelease) + memSizeSuffix(size)
	return true
}

var atomicRMWKinds = [8]InstKind{LDADD, LDCLR, LDEOR, LDSET, LDSMAX, LDSMIN, LDUMAX, LDUMIN}

// decodeAtomicRMW decodes the atomic memory-operation family (LDADD,
// LDCLR, ..., SWP).
func decodeAtomicRMW(word uint32, address uint64, inst *Instruction) bool {
	size := Bits(word, 30, 31)
	v := Bit(word, 26)
	a := Bit(word, 23)
	r := Bit(word, 22)
	rs := Bits(word, 16, 20)
	o3 := Bit(word, 15)
	opc := Bits(word, 12, 14)
	rn := Bits(word, 5, 9)
	rt := Bits(word, 0, 4)

	if v != 0 {
		return false
	}

	is64 := size == 3
	rdClass := GpW
	if is64 {
		rdClass = GpX
	}

	inst.IsAcquire = a == 1
	inst.IsRelease = r == 1
	inst.Rd = uint8(rt)
	inst.RdClass = rdClass
	inst.Rm = uint8(rs)
	inst.RmClass = rdClass
	inst.Rn = uint8(rn)
	inst.RnClass = baseClass(rn)
	inst.Is64Bit = is64

	base := "swp"
	if o3 == 0 {
		if opc >= uint32(len(atomicRMWKinds)) {
			return false
		}
		inst.Kind = atomicRMWKinds[opc]
		base = inst.Kind.String()
	} else {
		inst.Kind = SWP
	}

	inst.Mnemonic = base + atomicSuffix(inst.IsAcquire, inst.IsRelease) + memSizeSuffix(size)
	return true
}

var ldpStpAddrModes = [4]AddrMode{AddrNone, PostIndex, ImmSigned, PreIndex}

// decodeLoadStorePair decodes LDP/STP, including the signed-word and
// SIMD-pair variants.
func decodeLoadStorePair(word uint32, address uint64, inst *Instruction) bool {
	opc := Bits(word, 30, 31)
	v := Bit(word, 26)
	idx := Bits(word, 23, 24)
	l := Bit(word, 22)
	imm7 := Bits(word, 15, 21)
	rt2 := Bits(word, 10, 14)
	rn := Bits(word, 5, 9)
	rt := Bits(word, 0, 4)

	if idx == 0 {
		return false
	}

	var scale uint
	var rdClass RegClass
	mnemonic := "stp"
	if l == 1 {
		mnemonic = "ldp"
	}

	if v == 0 {
		switch opc {
		case 0:
			scale, rdClass = 2, GpW
		case 1:
			if l != 1 {
				return false
			}
			scale, rdClass = 2, GpX
			inst.Is64Bit = true
			mnemonic = "ldpsw"
		case 2:
			scale, rdClass = 3, GpX
			inst.Is64Bit = true
		default:
			return false
		}
	} else {
		switch opc {
		case 0:
			scale, rdClass = 2, VS
		case 1:
			scale, rdClass = 3, VD
		case 2:
			scale, rdClass = 4, VQ
		default:
			return false
		}
	}

	inst.Kind = LDP
	if l == 0 {
		inst.Kind = STP
	}
	inst.Mnemonic = mnemonic
	inst.Rd = uint8(rt)
	inst.Rt2 = uint8(rt2)
	inst.Rn = uint8(rn)
	inst.RdClass = rdClass
	inst.RnClass = baseClass(rn)
	inst.Imm = SignExtend(uint64(imm7), 7) << scale
	inst.HasImm = true
	inst.AddrMode = ldpStpAddrModes[idx]
	return true
}

// decodeLoadLiteral decodes LDR (literal) / LDRSW (literal).
func decodeLoadLiteral(word uint32, address uint64, inst *Instruction) bool {
	opc := Bits(word, 30, 31)
	v := Bit(word, 26)
	imm19 := Bits(word, 5, 23)
	rt := Bits(word, 0, 4)

	inst.Rd = uint8(rt)
	inst.Imm = SignExtend(uint64(imm19), 19) << 2
	inst.HasImm = true
	inst.AddrMode = Literal

	if v == 0 {
		switch opc {
		case 0:
			inst.Kind, inst.Mnemonic, inst.RdClass = LDR, "ldr", GpW
		case 1:
			inst.Kind, inst.Mnemonic, inst.RdClass = LDR, "ldr", GpX
			inst.Is64Bit = true
		case 2:
			inst.Kind, inst.Mnemonic, inst.RdClass = LDRSW, "ldrsw", GpX
			inst.Is64Bit = true
		default:
			return false
		}
	} else {
		switch opc {
		case 0:
			inst.Kind, inst.Mnemonic, inst.RdClass = LDR, "ldr", VS
		case 1:
			inst.Kind, inst.Mnemonic, inst.RdClass = LDR, "ldr", VD
		case 2:
			inst.Kind, inst.Mnemonic, inst.RdClass = LDR, "ldr", VQ
		default:
			return false
		}
	}
	return true
}

type gprMemOp struct {
	kind     InstKind
	mnemonic string
	class    RegClass
	is64     bool
}

// gprMemOpTable is the shared (size<<2)|opc lookup used by the
// unsigned-immediate, register-offset, and unscaled/indexed decoders for
// GPR loads and stores — spec.md §4.7.
var gprMemOpTable = map[uint32]gprMemOp{
	0x00: {STRB, "strb", GpW, false},
	0x01: {LDRB, "ldrb", GpW, false},
	0x02: {LDRSB, "ldrsb", GpX, true},
	0x03: {LDRSB, "ldrsb", GpW, false},
	0x04: {STRH, "strh", GpW, false},
	0x05: {LDRH, "ldrh", GpW, false},
	0x06: {LDRSH, "ldrsh", GpX, true},
	0x07: {LDRSH, "ldrsh", GpW, false},
	0x08: {STR, "str", GpW, false},
	0x09: {LDR, "ldr", GpW, false},
	0x0A: {LDRSW, "ldrsw", GpX, true},
	0x0C: {STR, "str", GpX, true},
	0x0D: {LDR, "ldr", GpX, true},
}

var simdMemClasses = [4]RegClass{VB, VH, VS, VD}

func applyGprMemOp(key uint32, inst *Instruction) bool {
	op, ok := gprMemOpTable[key]
	if !ok {
		return false
	}
	inst.Kind = op.kind
	inst.Mnemonic = op.mnemonic
	inst.RdClass = op.class
	inst.Is64Bit = op.is64
	return true
}

// decodeLoadStoreUnsignedImm decodes the scaled unsigned-immediate family.
func decodeLoadStoreUnsignedImm(word uint32, address uint64, inst *Instruction) bool {
	size := Bits(word, 30, 31)
	v := Bit(word, 26)
	opc := Bits(word, 22, 23)
	imm12 := Bits(word, 10, 21)
	rn := Bits(word, 5, 9)
	rt := Bits(word, 0, 4)

	inst.Rd = uint8(rt)
	inst.Rn = uint8(rn)
	inst.RnClass = baseClass(rn)
	inst.Imm = int64(imm12) << size
	inst.HasImm = true
	inst.AddrMode = ImmUnsigned

	if v == 0 {
		key := (size << 2) | opc
		if !applyGprMemOp(key, inst) {
			return false
		}
	} else {
		if opc > 1 {
			return false
		}
		inst.RdClass = simdMemClasses[size]
		if opc == 1 {
			inst.Kind, inst.Mnemonic = LDR, "ldr"
		} else {
			inst.Kind, inst.Mnemonic = STR, "str"
		}
	}
	return true
}

// decodeLoadStoreRegOffset decodes the register-offset (base + index,
// optionally extended/scaled) family.
func decodeLoadStoreRegOffset(word uint32, address uint64, inst *Instruction) bool {
	size := Bits(word, 30, 31)
	v := Bit(word, 26)
	opc := Bits(word, 22, 23)
	rm := Bits(word, 16, 20)
	option := Bits(word, 13, 15)
	s := Bit(word, 12)
	rn := Bits(word, 5, 9)
	rt := Bits(word, 0, 4)

	extend := ExtendKind(option)
	idxClass := GpW
	if extend == UxtX || extend == SxtX {
		idxClass = GpX
	}

	inst.Rd = uint8(rt)
	inst.Rn = uint8(rn)
	inst.RnClass = baseClass(rn)
	inst.Rm = uint8(rm)
	inst.RmClass = idxClass
	inst.Extend = extend
	if s == 1 {
		inst.ShiftAmount = uint8(size)
	}

	if extend == UxtX {
		inst.AddrMode = RegOffset
	} else {
		inst.AddrMode = RegExtend
	}

	if v == 0 {
		key := (size << 2) | opc
		if !applyGprMemOp(key, inst) {
			return false
		}
	} else {
		if opc > 1 {
			return false
		}
		inst.RdClass = simdMemClasses[size]
		if opc == 1 {
			inst.Kind, inst.Mnemonic = LDR, "ldr"
		} else {
			inst.Kind, inst.Mnemonic = STR, "str"
		}
	}
	return true
}

var unscaledIdxModes = [4]AddrMode{ImmSigned, PostIndex, AddrNone, PreIndex}

// toUnscaledMnemonic inserts the "u" that distinguishes the unscaled
// (STUR/LDUR family) form from its scaled/indexed sibling.
func toUnscaledMnemonic(base string) string {
	return base[:2] + "u" + base[2:]
}

// decodeLoadStoreUnscaled decodes the unscaled-immediate (STUR/LDUR) and
// pre/post-indexed family.
func decodeLoadStoreUnscaled(word uint32, address uint64, inst *Instruction) bool {
	size := Bits(word, 30, 31)
	v := Bit(word, 26)
	opc := Bits(word, 22, 23)
	imm9 := Bits(word, 12, 20)
	idx := Bits(word, 10, 11)
	rn := Bits(word, 5, 9)
	rt := Bits(word, 0, 4)

	if idx == 2 {
		return false
	}

	inst.Rd = uint8(rt)
	inst.Rn = uint8(rn)
	inst.RnClass = baseClass(rn)
	inst.Imm = SignExtend(uint64(imm9), 9)
	inst.HasImm = true
	inst.AddrMode = unscaledIdxModes[idx]

	if v == 0 {
		key := (size << 2) | opc
		if !applyGprMemOp(key, inst) {
			return false
		}
	} else {
		if opc > 1 {
			return false
		}
		inst.RdClass = simdMemClasses[size]
		if opc == 1 {
			inst.Kind, inst.Mnemonic = LDR, "ldr"
		} else {
			inst.Kind, inst.Mnemonic = STR, "str"
		}
	}

	if idx == 0 {
		inst.Mnemonic = toUnscaledMnemonic(inst.Mnemonic)
	}
	return true
}
