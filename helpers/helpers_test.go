package helpers_test

import (
	"testing"

	"github.com/lookbusy1344/aarch64-disasm/decoder"
	"github.com/lookbusy1344/aarch64-disasm/helpers"
)

func TestBranchTarget(t *testing.T) {
	inst, ok := decoder.Decode(0x14000010, 0x1000) // b #0x40
	if !ok {
		t.Fatal("decode failed")
	}
	target, ok := helpers.BranchTarget(inst)
	if !ok {
		t.Fatal("BranchTarget reported no target for b")
	}
	if target != 0x1040 {
		t.Fatalf("target = 0x%x, want 0x1040", target)
	}

	ret, ok := decoder.Decode(0xD65F03C0, 0x1000) // ret
	if !ok {
		t.Fatal("decode failed")
	}
	if _, ok := helpers.BranchTarget(ret); ok {
		t.Fatal("BranchTarget should not resolve a register-indirect branch")
	}
}

func TestIsBranch(t *testing.T) {
	if !helpers.IsBranch(decoder.B) || !helpers.IsBranch(decoder.CBNZ) || !helpers.IsBranch(decoder.RET) {
		t.Fatal("expected b/cbnz/ret to be branches")
	}
	if helpers.IsBranch(decoder.ADD) {
		t.Fatal("add is not a branch")
	}
}

func TestIsLoadStore(t *testing.T) {
	if !helpers.IsLoadStore(decoder.LDR) || !helpers.IsLoadStore(decoder.STP) || !helpers.IsLoadStore(decoder.CAS) {
		t.Fatal("expected ldr/stp/cas to be load/store")
	}
	if helpers.IsLoadStore(decoder.B) {
		t.Fatal("b is not a load/store")
	}
}

func TestUsedRegisters(t *testing.T) {
	inst, ok := decoder.Decode(0xA9BF7BFD, 0x1000) // stp x29, x30, [sp, #-16]!
	if !ok {
		t.Fatal("decode failed")
	}
	refs := helpers.UsedRegisters(inst)
	want := []decoder.RegRef{
		{Slot: "Rd", Reg: 29, Class: decoder.GpX},
		{Slot: "Rn", Reg: 31, Class: decoder.Sp},
		{Slot: "Rt2", Reg: 30, Class: decoder.GpX},
	}
	if len(refs) != len(want) {
		t.Fatalf("got %d refs, want %d: %+v", len(refs), len(want), refs)
	}
	for i, w := range want {
		if refs[i] != w {
			t.Fatalf("ref[%d] = %+v, want %+v", i, refs[i], w)
		}
	}
}

func TestImmediateValue(t *testing.T) {
	inst, ok := decoder.Decode(0xF9400421, 0x1000) // ldr x1, [x1, #8]
	if !ok {
		t.Fatal("decode failed")
	}
	imm, ok := helpers.ImmediateValue(inst)
	if !ok || imm != 8 {
		t.Fatalf("ImmediateValue = %d, %v, want 8, true", imm, ok)
	}

	ret, ok := decoder.Decode(0xD65F03C0, 0x1000)
	if !ok {
		t.Fatal("decode failed")
	}
	if _, ok := helpers.ImmediateValue(ret); ok {
		t.Fatal("ret carries no immediate")
	}
}
