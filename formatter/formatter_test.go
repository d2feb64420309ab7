package formatter_test

import (
	"testing"

	"github.com/lookbusy1344/aarch64-disasm/decoder"
	"github.com/lookbusy1344/aarch64-disasm/formatter"
)

func TestFormat_EndToEndScenarios(t *testing.T) {
	tests := []struct {
		name    string
		word    uint32
		address uint64
		want    string
	}{
		{"ldr unsigned offset", 0xF9400421, 0x1000, "ldr x1, [x1, #8]"},
		{"stp pre-index", 0xA9BF7BFD, 0x1000, "stp x29, x30, [sp, #-16]!"},
		{"b", 0x14000010, 0x1000, "b 0x1040"},
		{"ret", 0xD65F03C0, 0x1000, "ret"},
		{"cset", 0x9A9F07E0, 0x2000, "cset x0, ne"},
		{"fcmp register", 0x1E202000, 0x3000, "fcmp s0, s0"},
		{"fmov gpr<-d", 0x9E670000, 0x3000, "fmov x0, d0"},
		{"cas", 0xC8A07C20, 0x4000, "cas x0, x0, [x1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, ok := decoder.Decode(tt.word, tt.address)
			if !ok {
				t.Fatalf("Decode(0x%08x) failed", tt.word)
			}
			got := formatter.Format(inst)
			if got != tt.want {
				t.Fatalf("Format = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat_UnknownWordRendersAsWordDirective(t *testing.T) {
	inst, ok := decoder.Decode(0x00000000, 0)
	if ok {
		t.Fatal("word unexpectedly recognized")
	}
	got := formatter.Format(inst)
	want := ".word 0x00000000"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormat_MovAliasRendersRegisterForm(t *testing.T) {
	// mov x0, x1 -> orr x0, xzr, x1
	inst, ok := decoder.Decode(0xAA0103E0, 0x1000)
	if !ok {
		t.Fatal("decode failed")
	}
	if inst.Kind != decoder.MOV {
		t.Fatalf("kind = %s, want mov", inst.Kind)
	}
	got := formatter.Format(inst)
	want := "mov x0, x1"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormat_MovzWithShift(t *testing.T) {
	// movz x0, #1, lsl #16
	inst, ok := decoder.Decode(0xD2A00020, 0x1000)
	if !ok {
		t.Fatal("decode failed")
	}
	got := formatter.Format(inst)
	want := "movz x0, #1, lsl #16"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormat_LogicalImmN1RotatedBitmask(t *testing.T) {
	// mov x0, #0x8000000000000000 (orr xzr-alias, N=1, immr=1, imms=0):
	// decodeBitMasks must rotate welem even at esize=64.
	inst, ok := decoder.Decode(0xB24103E0, 0x1000)
	if !ok {
		t.Fatal("decode failed")
	}
	if inst.Kind != decoder.MOV {
		t.Fatalf("kind = %s, want mov", inst.Kind)
	}
	got := formatter.Format(inst)
	want := "mov x0, #0x8000000000000000"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormat_FPMoveImmediate(t *testing.T) {
	// fmov d0, #1.0 (ftype=01 double, imm8=0x70)
	inst, ok := decoder.Decode(0x1E6E1000, 0x1000)
	if !ok {
		t.Fatal("decode failed")
	}
	got := formatter.Format(inst)
	want := "fmov d0, #1.0"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}

func TestFormat_Branch(t *testing.T) {
	inst, ok := decoder.Decode(0x14000010, 0x2000)
	if !ok {
		t.Fatal("decode failed")
	}
	got := formatter.Format(inst)
	want := "b 0x2040"
	if got != want {
		t.Fatalf("Format = %q, want %q", got, want)
	}
}
