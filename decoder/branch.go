package decoder

// Branch / system category decoder — spec.md §4.4.
//
// Covers unconditional branch (immediate), conditional branch, compare
// and branch, test and branch, unconditional branch (register), and the
// hint/MRS subset of the system instruction class.

// BranchTable is the ordered row set for the branch/system category.
var BranchTable = Table{
	{Mask: 0x7C000000, Value: 0x14000000, Decoder: decodeBUncond},
	{Mask: 0xFF000010, Value: 0x54000000, Decoder: decodeBCond},
	{Mask: 0x7E000000, Value: 0x34000000, Decoder: decodeCompareBranch},
	{Mask: 0x7E000000, Value: 0x36000000, Decoder: decodeTestBranch},
	{Mask: 0xFE1F001F, Value: uint32(0b1101011)<<25 | uint32(0b11111)<<16, Decoder: decodeBranchRegister},
	{Mask: 0xFFC00000, Value: uint32(0b1101010100) << 22, Decoder: decodeSystem},
}

// decodeBUncond decodes B / BL (spec.md §4.4).
func decodeBUncond(word uint32, address uint64, inst *Instruction) bool {
	op := Bit(word, 31)
	imm26 := Bits(word, 0, 25)
	inst.Imm = SignExtend(uint64(imm26), 26) << 2
	inst.HasImm = true
	if op == 0 {
		inst.Kind = B
		inst.Mnemonic = "b"
	} else {
		inst.Kind = BL
		inst.Mnemonic = "bl"
	}
	return true
}

// decodeBCond decodes B.cond.
func decodeBCond(word uint32, address uint64, inst *Instruction) bool {
	imm19 := Bits(word, 5, 23)
	cond := Bits(word, 0, 3)
	inst.Imm = SignExtend(uint64(imm19), 19) << 2
	inst.HasImm = true
	inst.Cond = Cond(cond)
	inst.Kind = B
	inst.Mnemonic = "b." + inst.Cond.String()
	return true
}

// decodeCompareBranch decodes CBZ / CBNZ.
func decodeCompareBranch(word uint32, address uint64, inst *Instruction) bool {
	sf := Bit(word, 31)
	op := Bit(word, 24)
	imm19 := Bits(word, 5, 23)
	rt := Bits(word, 0, 4)

	inst.Rd = uint8(rt)
	inst.RdClass = gprClass(sf)
	inst.Imm = SignExtend(uint64(imm19), 19) << 2
	inst.HasImm = true
	inst.Is64Bit = sf == 1

	if op == 0 {
		inst.Kind = CBZ
		inst.Mnemonic = "cbz"
	} else {
		inst.Kind = CBNZ
		inst.Mnemonic = "cbnz"
	}
	return true
}

// decodeTestBranch decodes TBZ / TBNZ.
func decodeTestBranch(word uint32, address uint64, inst *Instruction) bool {
	b5 := Bit(word, 31)
	op := Bit(word, 24)
	b40 := Bits(word, 19, 23)
	imm14 := Bits(word, 5, 18)
	rt := Bits(word, 0, 4)

	bitPos := (b5 << 5) | b40
	inst.Rd = uint8(rt)
	if bitPos < 32 {
		inst.RdClass = GpW
	} else {
		inst.RdClass = GpX
		inst.Is64Bit = true
	}
	inst.ShiftAmount = uint8(bitPos)
	inst.Imm = SignExtend(uint64(imm14), 14) << 2
	inst.HasImm = true

	if op == 0 {
		inst.Kind = TBZ
		inst.Mnemonic = "tbz"
	} else {
		inst.Kind = TBNZ
		inst.Mnemonic = "tbnz"
	}
	return true
}

// decodeBranchRegister decodes BR/BLR/RET/ERET/DRPS.
func decodeBranchRegister(word uint32, address uint64, inst *Instruction) bool {
	opc := Bits(word, 21, 24)
	op3 := Bits(word, 10, 15)
	rn := Bits(word, 5, 9)

	if op3 != 0 {
		return false
	}

	inst.Rn = uint8(rn)
	inst.RnClass = GpX
	inst.Is64Bit = true

	switch opc {
	case 0:
		inst.Kind = BR
		inst.Mnemonic = "br"
	case 1:
		inst.Kind = BLR
		inst.Mnemonic = "blr"
	case 2:
		inst.Kind = RET
		inst.Mnemonic = "ret"
	case 4:
		if rn != 31 {
			return false
		}
		inst.Kind = ERET
		inst.Mnemonic = "eret"
	case 5:
		if rn != 31 {
			return false
		}
		inst.Kind = DRPS
		inst.Mnemonic = "drps"
	default:
		return false
	}
	return true
}

// hintMnemonics maps the op2 field of a NOP-class hint to its mnemonic,
// spec.md §4.4.
var hintMnemonics = [6]string{"nop", "yield", "wfe", "wfi", "sev", "sevl"}

// decodeSystem decodes the hint and MRS subset of the system instruction
// class.
func decodeSystem(word uint32, address uint64, inst *Instruction) bool {
	l := Bit(word, 21)
	op0 := Bits(word, 19, 20)
	op1 := Bits(word, 16, 18)
	crn := Bits(word, 12, 15)
	crm := Bits(word, 8, 11)
	op2 := Bits(word, 5, 7)
	rt := Bits(word, 0, 4)

	if l == 0 && op0 == 0 && op1 == 3 && crn == 2 && crm == 0 && rt == 31 {
		if op2 >= uint32(len(hintMnemonics)) {
			return false
		}
		inst.Kind = NOP
		inst.Mnemonic = hintMnemonics[op2]
		return true
	}

	if l == 1 && rt != 31 {
		inst.Kind = MRS
		inst.Mnemonic = "mrs"
		inst.Rd = uint8(rt)
		inst.RdClass = GpX
		inst.Is64Bit = true
		// Also pack the system-register specifier op0:op1:CRn:CRm:op2 into
		// Imm; the formatter re-extracts the same fields from Raw.
		inst.Imm = int64((op0 << 14) | (op1 << 11) | (crn << 7) | (crm << 3) | op2)
		inst.HasImm = true
		return true
	}

	return false
}

// gprClass picks GpX/GpW from an sf bit.
func gprClass(sf uint32) RegClass {
	if sf == 1 {
		return GpX
	}
	return GpW
}
