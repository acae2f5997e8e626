package directive

import (
	"testing"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
	"github.com/vocdoni/acvm-go/solver"
)

func TestInvertHintZeroConvention(t *testing.T) {
	m := acir.NewMap()
	if err := m.Insert(1, field.Zero()); err != nil {
		t.Fatal(err)
	}
	d := acir.Directive{
		Hint:    "invert",
		Inputs:  []acir.Expression{acir.FromWitness(1)},
		Outputs: []acir.Witness{2},
	}
	outcome, err := Solve(d, m)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != solver.Solved {
		t.Fatalf("expected Solved, got %v", outcome.Kind)
	}
	v, _ := m.Get(2)
	if !field.IsZero(v) {
		t.Fatalf("expected inverse of zero to be zero, got %s", field.ToBigInt(v))
	}
}

func TestInvertHintNonZero(t *testing.T) {
	m := acir.NewMap()
	if err := m.Insert(1, field.FromUint64(5)); err != nil {
		t.Fatal(err)
	}
	d := acir.Directive{
		Hint:    "invert",
		Inputs:  []acir.Expression{acir.FromWitness(1)},
		Outputs: []acir.Witness{2},
	}
	if _, err := Solve(d, m); err != nil {
		t.Fatal(err)
	}
	v, _ := m.Get(2)
	product := field.Mul(v, field.FromUint64(5))
	if !field.Equal(product, field.One()) {
		t.Fatalf("expected inverse*5 == 1, got %s", field.ToBigInt(product))
	}
}

func TestDirectiveStallsOnUnknownInput(t *testing.T) {
	m := acir.NewMap()
	d := acir.Directive{
		Hint:    "invert",
		Inputs:  []acir.Expression{acir.FromWitness(1)},
		Outputs: []acir.Witness{2},
	}
	outcome, err := Solve(d, m)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != solver.Stalled {
		t.Fatalf("expected Stalled, got %v", outcome.Kind)
	}
}

func TestToLEBitsHint(t *testing.T) {
	m := acir.NewMap()
	if err := m.Insert(1, field.FromUint64(5)); err != nil { // 0b101
		t.Fatal(err)
	}
	d := acir.Directive{
		Hint:    "to_le_bits",
		Inputs:  []acir.Expression{acir.FromWitness(1)},
		Outputs: []acir.Witness{10, 11, 12},
	}
	if _, err := Solve(d, m); err != nil {
		t.Fatal(err)
	}
	bit0, _ := m.Get(10)
	bit1, _ := m.Get(11)
	bit2, _ := m.Get(12)
	if !field.Equal(bit0, field.FromUint64(1)) || !field.Equal(bit1, field.Zero()) || !field.Equal(bit2, field.FromUint64(1)) {
		t.Fatalf("expected bits [1,0,1], got [%s,%s,%s]",
			field.ToBigInt(bit0), field.ToBigInt(bit1), field.ToBigInt(bit2))
	}
}
