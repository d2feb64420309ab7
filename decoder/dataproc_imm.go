package decoder

// Data-processing-immediate category decoder — spec.md §4.5.

// DataProcImmTable is the ordered row set for the data-processing-immediate
// category.
var DataProcImmTable = Table{
	{Mask: 0x1F000000, Value: 0x10000000, Decoder: decodeAdr},
	{Mask: 0x1F000000, Value: 0x11000000, Decoder: decodeAddSubImm},
	{Mask: 0x1F800000, Value: 0x12000000, Decoder: decodeLogicalImm},
	{Mask: 0x1F800000, Value: 0x12800000, Decoder: decodeMoveWide},
	{Mask: 0x1F800000, Value: 0x13000000, Decoder: decodeBitfield},
	{Mask: uint32(0x3)<<29 | uint32(0x3F)<<23 | uint32(1)<<21, Value: uint32(0b100111) << 23, Decoder: decodeExtr},
}

// decodeAdr decodes ADR / ADRP.
func decodeAdr(word uint32, address uint64, inst *Instruction) bool {
	op := Bit(word, 31)
	immlo := Bits(word, 29, 30)
	immhi := Bits(word, 5, 23)
	rd := Bits(word, 0, 4)

	imm21 := (immhi << 2) | immlo
	inst.Rd = uint8(rd)
	inst.RdClass = GpX
	inst.Is64Bit = true
	inst.HasImm = true

	if op == 0 {
		inst.Kind = ADR
		inst.Mnemonic = "adr"
		inst.Imm = SignExtend(uint64(imm21), 21)
	} else {
		inst.Kind = ADRP
		inst.Mnemonic = "adrp"
		inst.Imm = SignExtend(uint64(imm21), 21) << 12
	}
	return true
}

// decodeAddSubImm decodes ADD/SUB/ADDS/SUBS (immediate) with the
// CMP/CMN/MOV-SP aliases.
func decodeAddSubImm(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	op := Bit(word, 30)
	s := Bit(word, 29)
	shift := Bits(word, 22, 23)
	imm12 := Bits(word, 10, 21)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	if shift > 1 {
		return false
	}
	shiftAmount := uint8(0)
	if shift == 1 {
		shiftAmount = 12
	}

	inst.Rn = uint8(rn)
	inst.Rd = uint8(rd)
	inst.Imm = int64(imm12)
	inst.HasImm = true
	inst.ShiftAmount = shiftAmount
	inst.Is64Bit = sf == 1
	inst.SetFlags = s == 1
	inst.RnClass = gprClass(sf)
	inst.RdClass = gprClass(sf)

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

	switch {
	case s == 1 && rd == 31:
		if op == 1 {
			inst.Kind, inst.Mnemonic = CMP, "cmp"
		} else {
			inst.Kind, inst.Mnemonic = CMN, "cmn"
		}
		inst.RdClass = zeroRegClass(sf)
	case s == 0 && op == 0 && imm12 == 0 && shift == 0:
		inst.Kind, inst.Mnemonic = MOV, "mov"
		inst.HasImm = false
		inst.Rm = uint8(rn)
		inst.RmClass = spOrGpr(rn, sf)
		inst.RdClass = spOrGpr(rd, sf)
	case s == 0:
		inst.RnClass = spOrGpr(rn, sf)
		inst.RdClass = spOrGpr(rd, sf)
	}

	return true
}

// decodeLogicalImm decodes AND/ORR/EOR/ANDS (immediate) with the MOV/TST
// aliases.
func decodeLogicalImm(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	opc := Bits(word, 29, 30)
	n := Bit(word, 22)
	immr := Bits(word, 16, 21)
	imms := Bits(word, 10, 15)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	if sf == 0 && n != 0 {
		return false
	}

	inst.Rn = uint8(rn)
	inst.Rd = uint8(rd)
	inst.RnClass = gprClass(sf)
	inst.RdClass = gprClass(sf)
	inst.Imm = int64((immr << 6) | imms)
	inst.HasImm = true
	// N rides along in ShiftAmount, otherwise idle for this encoding; the
	// formatter needs it to find the replicated element size.
	inst.ShiftAmount = uint8(n)
	inst.Is64Bit = sf == 1

	switch opc {
	case 0:
		inst.Kind, inst.Mnemonic = AND, "and"
	case 1:
		inst.Kind, inst.Mnemonic = ORR, "orr"
	case 2:
		inst.Kind, inst.Mnemonic = EOR, "eor"
	case 3:
		inst.Kind, inst.Mnemonic = ANDS, "ands"
		inst.SetFlags = true
	}

	if opc == 1 && rn == 31 {
		inst.Kind, inst.Mnemonic = MOV, "mov"
		inst.RnClass = zeroRegClass(sf)
	}
	if opc == 3 && rd == 31 {
		inst.Kind, inst.Mnemonic = TST, "tst"
		inst.RdClass = zeroRegClass(sf)
	}

	return true
}

// decodeMoveWide decodes MOVZ/MOVN/MOVK.
func decodeMoveWide(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	opc := Bits(word, 29, 30)
	hw := Bits(word, 21, 22)
	imm16 := Bits(word, 5, 20)
	rd := Bits(word, 0, 4)

	if sf == 0 && hw >= 2 {
		return false
	}

	inst.Rd = uint8(rd)
	inst.RdClass = gprClass(sf)
	inst.Imm = int64(imm16)
	inst.HasImm = true
	inst.ShiftAmount = uint8(hw * 16)
	inst.Is64Bit = sf == 1

	switch opc {
	case 0:
		inst.Kind, inst.Mnemonic = MOVN, "movn"
	case 2:
		inst.Kind, inst.Mnemonic = MOVZ, "movz"
	case 3:
		inst.Kind, inst.Mnemonic = MOVK, "movk"
	default:
		return false
	}
	return true
}

// decodeBitfield decodes SBFM/BFM/UBFM with the LSL/LSR/ASR aliases.
func decodeBitfield(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	opc := Bits(word, 29, 30)
	n := Bit(word, 22)
	immr := Bits(word, 16, 21)
	imms := Bits(word, 10, 15)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	if n != sf {
		return false
	}

	msbLimit := uint32(31)
	if sf == 1 {
		msbLimit = 63
	}

	inst.Rn = uint8(rn)
	inst.Rd = uint8(rd)
	inst.RnClass = gprClass(sf)
	inst.RdClass = gprClass(sf)
	inst.ShiftAmount = uint8(immr)
	inst.Imm = int64((immr << 6) | imms)
	inst.HasImm = true
	inst.Is64Bit = sf == 1

	switch opc {
	case 0:
		if immr != 0 && imms == msbLimit {
			inst.Kind, inst.Mnemonic = ASR, "asr"
		} else {
			inst.Kind, inst.Mnemonic = SBFM, "sbfm"
		}
	case 1:
		inst.Kind, inst.Mnemonic = BFM, "bfm"
	case 2:
		switch {
		case imms == msbLimit:
			inst.Kind, inst.Mnemonic = LSR, "lsr"
		case immr == 0 && imms < msbLimit:
			inst.Kind, inst.Mnemonic = LSL, "lsl"
		default:
			inst.Kind, inst.Mnemonic = UBFM, "ubfm"
		}
	default:
		return false
	}
	return true
}

// decodeExtr decodes EXTR with the ROR alias.
func decodeExtr(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	n := Bit(word, 22)
	rm := Bits(word, 16, 20)
	imms := Bits(word, 10, 15)
	rn := Bits(word, 5, 9)
	rd := Bits(word, 0, 4)

	if sf != n {
		return false
	}
	if sf == 0 && imms >= 32 {
		return false
	}

	inst.Rd = uint8(rd)
	inst.Rn = uint8(rn)
	inst.Rm = uint8(rm)
	inst.RdClass = gprClass(sf)
	inst.RnClass = gprClass(sf)
	inst.RmClass = gprClass(sf)
	inst.ShiftAmount = uint8(imms)
	inst.Is64Bit = sf == 1
	inst.Kind, inst.Mnemonic = EXTR, "extr"

	if rn == rm {
		inst.Kind, inst.Mnemonic = ROR, "ror"
	}
	return true
}
