package decoder

// RowDecoder attempts to decode word (fetched at address) into inst. It
// returns true on success. A row whose mask/value matched but whose field
// constraints did not hold (a reserved encoding, an out-of-range shift,
// ...) returns false so the engine can keep scanning later rows.
type RowDecoder func(word uint32, address uint64, inst *Instruction) bool

// Row is one entry of a decode table: word matches the row when
// (word & Mask) == Value.
type Row struct {
	Mask    uint32
	Value   uint32
	Decoder RowDecoder
}

// Table is an ordered, immutable sequence of rows. Order matters: earlier
// rows are offered a match before later ones, which lets a broad mask
// cover an encoding family that individual decoders then refine by field
// constraints spec.md §4.2 relies on.
type Table []Row

// Decode walks the table in order and returns true on the first row whose
// mask/value matches and whose decoder accepts the word.
func (t Table) Decode(word uint32, address uint64, inst *Instruction) bool {
	for _, row := range t {
		if word&row.Mask != row.Value {
			continue
		}
		if row.Decoder(word, address, inst) {
			return true
		}
	}
	return false
}
