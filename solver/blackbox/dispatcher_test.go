package blackbox

import (
	"crypto/sha256"
	"testing"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
	"github.com/vocdoni/acvm-go/solver"
)

func TestSHA256DigestSplit(t *testing.T) {
	m := acir.NewMap()
	// single byte witness carrying 'a' (0x61)
	if err := m.Insert(1, field.FromUint64(uint64('a'))); err != nil {
		t.Fatal(err)
	}

	call := acir.BlackBoxCall{
		Kind:    acir.BlackBoxSHA256,
		Inputs:  []acir.FunctionInput{{Witness: 1, NumBits: 8}},
		Outputs: [2]acir.Witness{2, 3},
	}

	outcome, err := Solve(call, m, UnimplementedBackend{})
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != solver.Solved {
		t.Fatalf("expected Solved, got %v", outcome.Kind)
	}

	want := sha256.Sum256([]byte("a"))
	wantLo := field.FieldElementFromHalfDigest(want[0:16])
	wantHi := field.FieldElementFromHalfDigest(want[16:32])

	lo, _ := m.Get(2)
	hi, _ := m.Get(3)
	if !field.Equal(lo, wantLo) {
		t.Fatalf("low half mismatch: got %s want %s", field.ToBigInt(lo), field.ToBigInt(wantLo))
	}
	if !field.Equal(hi, wantHi) {
		t.Fatalf("high half mismatch: got %s want %s", field.ToBigInt(hi), field.ToBigInt(wantHi))
	}
}

func TestBlackBoxStallsOnMissingInput(t *testing.T) {
	m := acir.NewMap()
	call := acir.BlackBoxCall{
		Kind:   acir.BlackBoxAND,
		LHS:    acir.FunctionInput{Witness: 1, NumBits: 8},
		RHS:    acir.FunctionInput{Witness: 2, NumBits: 8},
		Output: 3,
	}
	outcome, err := Solve(call, m, UnimplementedBackend{})
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != solver.Stalled {
		t.Fatalf("expected Stalled, got %v", outcome.Kind)
	}
}

func TestBlackBoxAND(t *testing.T) {
	m := acir.NewMap()
	if err := m.Insert(1, field.FromUint64(0b1100)); err != nil {
		t.Fatal(err)
	}
	if err := m.Insert(2, field.FromUint64(0b1010)); err != nil {
		t.Fatal(err)
	}
	call := acir.BlackBoxCall{
		Kind:   acir.BlackBoxAND,
		LHS:    acir.FunctionInput{Witness: 1, NumBits: 8},
		RHS:    acir.FunctionInput{Witness: 2, NumBits: 8},
		Output: 3,
	}
	if _, err := Solve(call, m, UnimplementedBackend{}); err != nil {
		t.Fatal(err)
	}
	v, _ := m.Get(3)
	if !field.Equal(v, field.FromUint64(0b1000)) {
		t.Fatalf("expected 0b1000, got %s", field.ToBigInt(v))
	}
}
