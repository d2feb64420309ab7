package decoder_test

import (
	"testing"

	"github.com/lookbusy1344/aarch64-disasm/decoder"
)

func TestDecode_EndToEndScenarios(t *testing.T) {
	tests := []struct {
		name    string
		word    uint32
		address uint64
		kind    decoder.InstKind
		check   func(t *testing.T, inst decoder.Instruction)
	}{
		{
			name:    "LDR unsigned offset",
			word:    0xF9400421,
			address: 0x1000,
			kind:    decoder.LDR,
			check: func(t *testing.T, inst decoder.Instruction) {
				if inst.Rd != 1 || inst.Rn != 1 {
					t.Fatalf("rd/rn = %d/%d, want 1/1", inst.Rd, inst.Rn)
				}
				if inst.RdClass != decoder.GpX || inst.RnClass != decoder.GpX {
					t.Fatalf("rd_class/rn_class = %s/%s, want X/X", inst.RdClass, inst.RnClass)
				}
				if inst.Imm != 8 {
					t.Fatalf("imm = %d, want 8", inst.Imm)
				}
				if inst.AddrMode != decoder.ImmUnsigned {
					t.Fatalf("addr_mode = %s, want imm-unsigned", inst.AddrMode)
				}
			},
		},
		{
			name:    "STP pre-index",
			word:    0xA9BF7BFD,
			address: 0x1000,
			kind:    decoder.STP,
			check: func(t *testing.T, inst decoder.Instruction) {
				if inst.Rd != 29 || inst.Rt2 != 30 || inst.Rn != 31 {
					t.Fatalf("rd/rt2/rn = %d/%d/%d, want 29/30/31", inst.Rd, inst.Rt2, inst.Rn)
				}
				if inst.RnClass != decoder.Sp {
					t.Fatalf("rn_class = %s, want SP", inst.RnClass)
				}
				if inst.RdClass != decoder.GpX {
					t.Fatalf("rd_class = %s, want X", inst.RdClass)
				}
				if inst.Imm != -16 {
					t.Fatalf("imm = %d, want -16", inst.Imm)
				}
				if inst.AddrMode != decoder.PreIndex {
					t.Fatalf("addr_mode = %s, want pre-index", inst.AddrMode)
				}
			},
		},
		{
			name:    "B",
			word:    0x14000010,
			address: 0x1000,
			kind:    decoder.B,
			check: func(t *testing.T, inst decoder.Instruction) {
				if inst.Imm != 0x40 {
					t.Fatalf("imm = 0x%x, want 0x40", inst.Imm)
				}
				if int64(inst.Address)+inst.Imm != 0x1040 {
					t.Fatalf("branch target = 0x%x, want 0x1040", int64(inst.Address)+inst.Imm)
				}
			},
		},
		{
			name:    "RET",
			word:    0xD65F03C0,
			address: 0x1000,
			kind:    decoder.RET,
			check: func(t *testing.T, inst decoder.Instruction) {
				if inst.Rn != 30 {
					t.Fatalf("rn = %d, want 30", inst.Rn)
				}
			},
		},
		{
			name:    "CSET rewritten from csinc",
			word:    0x9A9F07E0,
			address: 0x2000,
			kind:    decoder.CSET,
			check: func(t *testing.T, inst decoder.Instruction) {
				if inst.Rd != 0 || inst.RdClass != decoder.GpX {
					t.Fatalf("rd/rd_class = %d/%s, want 0/X", inst.Rd, inst.RdClass)
				}
				if inst.Cond != decoder.CondNE {
					t.Fatalf("cond = %s, want ne", inst.Cond)
				}
			},
		},
		{
			name:    "FCMP register",
			word:    0x1E202000,
			address: 0x3000,
			kind:    decoder.FCMP,
			check: func(t *testing.T, inst decoder.Instruction) {
				if inst.Rn != 0 || inst.Rm != 0 {
					t.Fatalf("rn/rm = %d/%d, want 0/0", inst.Rn, inst.Rm)
				}
				if inst.RnClass != decoder.VS || inst.RmClass != decoder.VS {
					t.Fatalf("rn_class/rm_class = %s/%s, want S/S", inst.RnClass, inst.RmClass)
				}
			},
		},
		{
			name:    "FMOV GPR<-D",
			word:    0x9E670000,
			address: 0x3000,
			kind:    decoder.FMOV,
			check: func(t *testing.T, inst decoder.Instruction) {
				if inst.Rd != 0 || inst.RdClass != decoder.GpX {
					t.Fatalf("rd/rd_class = %d/%s, want 0/X", inst.Rd, inst.RdClass)
				}
				if inst.Rn != 0 || inst.RnClass != decoder.VD {
					t.Fatalf("rn/rn_class = %d/%s, want 0/D", inst.Rn, inst.RnClass)
				}
			},
		},
		{
			name:    "CAS",
			word:    0xC8A07C20,
			address: 0x4000,
			kind:    decoder.CAS,
			check: func(t *testing.T, inst decoder.Instruction) {
				if inst.Rd != 0 || inst.Rm != 0 || inst.Rn != 1 {
					t.Fatalf("rd/rm/rn = %d/%d/%d, want 0/0/1", inst.Rd, inst.Rm, inst.Rn)
				}
				if inst.RdClass != decoder.GpX {
					t.Fatalf("rd_class = %s, want X", inst.RdClass)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, ok := decoder.Decode(tt.word, tt.address)
			if !ok {
				t.Fatalf("Decode(0x%08x) failed to recognize the word", tt.word)
			}
			if inst.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", inst.Kind, tt.kind)
			}
			tt.check(t, inst)
		})
	}
}

func TestDecode_UnrecognizedWordReportsFailure(t *testing.T) {
	// All-reserved word: doesn't match any top-level or fallback row.
	inst, ok := decoder.Decode(0x00000000, 0)
	if ok {
		t.Fatalf("Decode(0) = ok, want recognition failure (got kind %s)", inst.Kind)
	}
	if inst.Kind != decoder.UNKNOWN {
		t.Fatalf("kind = %s, want unknown", inst.Kind)
	}
}

func TestDecode_Purity(t *testing.T) {
	words := []uint32{0xF9400421, 0xA9BF7BFD, 0x14000010, 0xD65F03C0, 0x9A9F07E0, 0x1E202000, 0x9E670000, 0xC8A07C20}
	for _, w := range words {
		a, okA := decoder.Decode(w, 0x4000)
		b, okB := decoder.Decode(w, 0x4000)
		if okA != okB || a != b {
			t.Fatalf("Decode(0x%08x) not pure: %+v (ok=%v) vs %+v (ok=%v)", w, a, okA, b, okB)
		}
	}
}

func TestDecode_WidthInvariant(t *testing.T) {
	words := []uint32{0xF9400421, 0xA9BF7BFD, 0x9A9F07E0, 0x9E670000}
	for _, w := range words {
		inst, ok := decoder.Decode(w, 0)
		if !ok {
			t.Fatalf("Decode(0x%08x) failed", w)
		}
		switch inst.RdClass {
		case decoder.GpX, decoder.Sp, decoder.Xzr:
			if !inst.Is64Bit {
				t.Fatalf("word 0x%08x: rd_class=%s but is_64bit=false", w, inst.RdClass)
			}
		case decoder.GpW, decoder.Wzr:
			if inst.Is64Bit {
				t.Fatalf("word 0x%08x: rd_class=%s but is_64bit=true", w, inst.RdClass)
			}
		}
	}
}

func TestDecode_SignExtensionLaw(t *testing.T) {
	// B with a positive offset vs. the same word with the imm26 sign bit
	// set: flipping the sign bit of imm26 must flip the sign of the decoded
	// immediate.
	positive := uint32(0x14000010) // b #0x40
	negated := uint32(0x14000010) | (1 << 25)
	pos, ok := decoder.Decode(positive, 0)
	if !ok {
		t.Fatal("positive word not recognized")
	}
	neg, ok := decoder.Decode(negated, 0)
	if !ok {
		t.Fatal("negated word not recognized")
	}
	if pos.Imm <= 0 || neg.Imm >= 0 {
		t.Fatalf("sign extension law violated: pos.Imm=%d neg.Imm=%d", pos.Imm, neg.Imm)
	}
}

func TestDecode_AliasIdempotence(t *testing.T) {
	// CSET decodes to a canonical kind regardless of how many times the
	// same word is re-decoded.
	word := uint32(0x9A9F07E0)
	for i := 0; i < 3; i++ {
		inst, ok := decoder.Decode(word, 0)
		if !ok || inst.Kind != decoder.CSET {
			t.Fatalf("iteration %d: kind = %s (ok=%v), want cset", i, inst.Kind, ok)
		}
	}
}
