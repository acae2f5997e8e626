package pwg

import (
	"testing"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
)

func TestIsOpcodeSupportedR1CS(t *testing.T) {
	arithmetic := acir.ArithmeticOpcode(acir.NewConstant(field.Zero()))
	if !IsOpcodeSupported(R1CS, arithmetic) {
		t.Fatal("expected R1CS to support Arithmetic opcodes")
	}

	directive := acir.DirectiveOpcode(acir.Directive{Hint: "invert"})
	if IsOpcodeSupported(R1CS, directive) {
		t.Fatal("expected R1CS to reject non-Arithmetic opcodes")
	}

	block := acir.MemoryBlockOpcode(&acir.MemoryBlock{ID: 1})
	if IsOpcodeSupported(R1CS, block) {
		t.Fatal("expected R1CS to reject MemoryBlock opcodes")
	}
}

func TestIsOpcodeSupportedPLONK(t *testing.T) {
	block := acir.MemoryBlockOpcode(&acir.MemoryBlock{ID: 1})
	if IsOpcodeSupported(PLONKCSat, block) {
		t.Fatal("expected PLONK to reject MemoryBlock opcodes")
	}

	directive := acir.DirectiveOpcode(acir.Directive{Hint: "invert"})
	if !IsOpcodeSupported(PLONKCSat, directive) {
		t.Fatal("expected PLONK to support non-MemoryBlock opcodes")
	}

	blackbox := acir.BlackBoxOpcode(acir.BlackBoxCall{Kind: acir.BlackBoxAND})
	if !IsOpcodeSupported(PLONKCSat, blackbox) {
		t.Fatal("expected PLONK to support blackbox opcodes")
	}
}
