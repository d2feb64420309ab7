package decoder

// Data-processing-register category decoder — spec.md §4.6.

// DataProcRegTable is the ordered row set for the data-processing-register
// category.
var DataProcRegTable = Table{
	{Mask: 0x1F000000, Value: 0x0A000000, Decoder: decodeLogicalShiftedReg},
	{Mask: 0x1F200000, Value: 0x0B000000, Decoder: decodeAddSubShiftedReg},
	{Mask: 0x5FE00000, Value: uint32(1)<<30 | uint32(0xD6)<<21, Decoder: decodeDataProc1Source},
	{Mask: 0x5FE00000, Value: uint32(0xD6) << 21, Decoder: decodeDataProc2Source},
	{Mask: 0x1F000000, Value: 0x1B000000, Decoder: decodeDataProc3Source},
	{Mask: 0x1FE00000, Value: uint32(0xD4) << 21, Decoder: decodeCondSelect},
}

var shiftKinds2bit = [4]ExtendKind{Lsl, Lsr, Asr, Ror}

// decodeLogicalShiftedReg decodes AND/BIC/ORR/ORN/EOR/EON/ANDS/BICS
// (shifted register) with the MOV/MVN/TST aliases.
func decodeLogicalShiftedReg(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	opc := Bits(word, 29, 30)
	shift := Bits(word, 22, 23)
	n := Bit(word, 21)
	rm := Bits(word, 16, 20)
	imm6 := Bits(word, 10, 15)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.Rm = uint8(rm)
	inst.RdClass = gprClass(sf)
	inst.RnClass = gprClass(sf)
	inst.RmClass = gprClass(sf)
	inst.ShiftAmount = uint8(imm6)
	inst.Extend = shiftKinds2bit[shift]
	inst.Is64Bit = sf == 1

	opcode := (opc << 1) | n
	switch opcode {
	case 0:
		inst.Kind, inst.Mnemonic = AND, "and"
	case 1:
		inst.Kind, inst.Mnemonic = BIC, "bic"
	case 2:
		inst.Kind, inst.Mnemonic = ORR, "orr"
	case 3:
		inst.Kind, inst.Mnemonic = ORN, "orn"
	case 4:
		inst.Kind, inst.Mnemonic = EOR, "eor"
	case 5:
		inst.Kind, inst.Mnemonic = EON, "eon"
	case 6:
		inst.Kind, inst.Mnemonic = ANDS, "ands"
		inst.SetFlags = true
	case 7:
		inst.Kind, inst.Mnemonic = BICS, "bics"
		inst.SetFlags = true
	}

	if opcode == 2 && rn == 31 && imm6 == 0 && shift == 0 {
		inst.Kind, inst.Mnemonic = MOV, "mov"
	}
	if opcode == 3 && rn == 31 {
		inst.Kind, inst.Mnemonic = MVN, "mvn"
	}
	if opcode == 6 && rd == 31 {
		inst.Kind, inst.Mnemonic = TST, "tst"
		inst.RdClass = zeroRegClass(sf)
	}

	return true
}

var shiftKinds3way = [3]ExtendKind{Lsl, Lsr, Asr}

// decodeAddSubShiftedReg decodes ADD/SUB/ADDS/SUBS (shifted register) with
// the CMP/CMN/NEG aliases.
func decodeAddSubShiftedReg(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	op := Bit(word, 30)
	s := Bit(word, 29)
	shift := Bits(word, 22, 23)
	rm := Bits(word, 16, 20)
	imm6 := Bits(word, 10, 15)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	if shift == 3 {
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.Rm = uint8(rm)
	inst.RdClass = gprClass(sf)
	inst.RnClass = gprClass(sf)
	inst.RmClass = gprClass(sf)
	inst.ShiftAmount = uint8(imm6)
	inst.Extend = shiftKinds3way[shift]
	inst.Is64Bit = sf == 1
	inst.SetFlags = s == 1

	switch {
	case op == 0 && s == 0:
		inst.Kind, inst.Mnemonic = ADD, "add"
	case op == 0 && s == 1:
		inst.Kind, inst.Mnemonic = ADDS, "adds"
	case op == 1 && s == 0:
		inst.Kind, inst.Mnemonic = SUB, "sub"
	default:
		inst.Kind, inst.Mnemonic = SUBS, "subs"
	}

	isNeg := op == 1 && rn == 31 && s == 0
	switch {
	case s == 1 && rd == 31:
		if op == 1 {
			inst.Kind, inst.Mnemonic = CMP, "cmp"
		} else {
			inst.Kind, inst.Mnemonic = CMN, "cmn"
		}
		inst.RdClass = zeroRegClass(sf)
	case isNeg:
		inst.Kind, inst.Mnemonic = NEG, "neg"
	case s == 0:
		if rn == 31 {
			inst.RnClass = Sp
		}
		if rd == 31 {
			inst.RdClass = Sp
		}
	}

	return true
}

// decodeDataProc1Source decodes RBIT/REV16/REV/REV32/CLZ/CLS.
func decodeDataProc1Source(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	s := Bit(word, 29)
	opcode2 := Bits(word, 16, 20)
	opcode := Bits(word, 10, 15)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	if s != 0 || opcode2 != 0 {
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.RdClass = gprClass(sf)
	inst.RnClass = gprClass(sf)
	inst.Is64Bit = sf == 1

	switch opcode {
	case 0:
		inst.Kind, inst.Mnemonic = RBIT, "rbit"
	case 1:
		inst.Kind, inst.Mnemonic = REV16, "rev16"
	case 2:
		if sf == 0 {
			inst.Kind, inst.Mnemonic = REV, "rev"
		} else {
			inst.Kind, inst.Mnemonic = REV32, "rev32"
		}
	case 3:
		if sf != 1 {
			return false
		}
		inst.Kind, inst.Mnemonic = REV, "rev"
	case 4:
		inst.Kind, inst.Mnemonic = CLZ, "clz"
	case 5:
		inst.Kind, inst.Mnemonic = CLS, "cls"
	default:
		return false
	}
	return true
}

// decodeDataProc2Source decodes UDIV/SDIV/LSLV/LSRV/ASRV/RORV.
func decodeDataProc2Source(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	s := Bit(word, 29)
	rm := Bits(word, 16, 20)
	opcode := Bits(word, 10, 15)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	if s != 0 {
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.Rm = uint8(rm)
	inst.RdClass = gprClass(sf)
	inst.RnClass = gprClass(sf)
	inst.RmClass = gprClass(sf)
	inst.Is64Bit = sf == 1

	switch opcode {
	case 2:
		inst.Kind, inst.Mnemonic = UDIV, "udiv"
	case 3:
		inst.Kind, inst.Mnemonic = SDIV, "sdiv"
	case 8:
		inst.Kind, inst.Mnemonic = LSL, "lsl"
	case 9:
		inst.Kind, inst.Mnemonic = LSR, "lsr"
	case 10:
		inst.Kind, inst.Mnemonic = ASR, "asr"
	case 11:
		inst.Kind, inst.Mnemonic = ROR, "ror"
	default:
		return false
	}
	return true
}

// decodeDataProc3Source decodes MADD/MSUB with the MUL/MNEG aliases.
func decodeDataProc3Source(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	op54 := Bits(word, 29, 30)
	op31 := Bits(word, 21, 23)
	rm := Bits(word, 16, 20)
	o0 := Bit(word, 15)
	ra := Bits(word, 10, 14)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	if op54 != 0 {
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.Rm = uint8(rm)
	inst.Ra = uint8(ra)
	inst.RdClass = gprClass(sf)
	inst.RnClass = gprClass(sf)
	inst.RmClass = gprClass(sf)
	inst.Is64Bit = sf == 1

	opcode := (op31 << 1) | o0
	switch opcode {
	case 0:
		inst.Kind, inst.Mnemonic = MADD, "madd"
		if ra == 31 {
			inst.Kind, inst.Mnemonic = MUL, "mul"
		}
	case 1:
		inst.Kind, inst.Mnemonic = MSUB, "msub"
		if ra == 31 {
			inst.Kind, inst.Mnemonic = MNEG, "mneg"
		}
	default:
		return false
	}
	return true
}

// decodeCondSelect decodes CSEL/CSINC/CSINV/CSNEG with the
// CSET/CSETM/CINC/CINV/CNEG aliases.
func decodeCondSelect(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	op := Bit(word, 30)
	s := Bit(word, 29)
	rm := Bits(word, 16, 20)
	cond := Bits(word, 12, 15)
	op2 := Bits(word, 10, 11)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	if s != 0 || op2 > 1 {
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.Rm = uint8(rm)
	inst.RdClass = gprClass(sf)
	inst.RnClass = gprClass(sf)
	inst.RmClass = gprClass(sf)
	inst.Is64Bit = sf == 1
	inst.Cond = Cond(cond)

	notAlAndNv := cond != 14 && cond != 15
	opcode := (op << 1) | op2
	switch opcode {
	case 0:
		inst.Kind, inst.Mnemonic = CSEL, "csel"
	case 1:
		inst.Kind, inst.Mnemonic = CSINC, "csinc"
		switch {
		case rm == 31 && rn == 31:
			inst.Kind, inst.Mnemonic = CSET, "cset"
			inst.Cond = Cond(cond ^ 1)
		case rm == rn && notAlAndNv:
			inst.Kind, inst.Mnemonic = CINC, "cinc"
			inst.Cond = Cond(cond ^ 1)
		}
	case 2:
		inst.Kind, inst.Mnemonic = CSINV, "csinv"
		switch {
		case rm == 31 && rn == 31:
			inst.Kind, inst.Mnemonic = CSETM, "csetm"
			inst.Cond = Cond(cond ^ 1)
		case rm == rn && notAlAndNv:
			inst.Kind, inst.Mnemonic = CINV, "cinv"
			inst.Cond = Cond(cond ^ 1)
		}
	case 3:
		inst.Kind, inst.Mnemonic = CSNEG, "csneg"
		if rm == rn && notAlAndNv {
			inst.Kind, inst.Mnemonic = CNEG, "cneg"
			inst.Cond = Cond(cond ^ 1)
		}
	}
	return true
}
