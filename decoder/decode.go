package decoder

// Top-level dispatch and entry point — spec.md §4.3 and §4.9.

func categoryDecoder(t Table) RowDecoder {
	return func(word uint32, address uint64, inst *Instruction) bool {
		return t.Decode(word, address, inst)
	}
}

// TopLevelTable routes on the coarse bits[28:25]-ish grouping spec.md §4.3
// describes before any category table is consulted.
var TopLevelTable = Table{
	{Mask: 0x1C000000, Value: 0x10000000, Decoder: categoryDecoder(DataProcImmTable)},
	{Mask: 0x1C000000, Value: 0x14000000, Decoder: categoryDecoder(BranchTable)},
	{Mask: 0x0A000000, Value: 0x08000000, Decoder: categoryDecoder(LoadStoreTable)},
	{Mask: 0x1C000000, Value: 0x18000000, Decoder: categoryDecoder(LoadStoreTable)},
	{Mask: 0x0E000000, Value: 0x0A000000, Decoder: categoryDecoder(DataProcRegTable)},
}

// fallbackTables is the fixed retry order spec.md §4.9 specifies for
// borderline cases the coarse top-level routing misses.
var fallbackTables = []Table{
	BranchTable,
	DataProcImmTable,
	DataProcRegTable,
	LoadStoreTable,
	FPSIMDTable,
}

// Decode decodes one 32-bit AArch64 instruction word fetched at address. It
// is pure: given the same inputs it always returns the same result, and it
// never panics on malformed input — an encoding nothing recognizes comes
// back with Kind == UNKNOWN and ok == false.
func Decode(word uint32, address uint64) (Instruction, bool) {
	inst := blankInstruction(word, address)

	if TopLevelTable.Decode(word, address, &inst) {
		return inst, inst.Kind != UNKNOWN
	}

	for _, t := range fallbackTables {
		if t.Decode(word, address, &inst) {
			break
		}
	}
	return inst, inst.Kind != UNKNOWN
}
