package arithmetic

import (
	"testing"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
	"github.com/vocdoni/acvm-go/solver"
)

// x + y - 10 = 0, with y already known, solves for x.
func TestSolveLinearChain(t *testing.T) {
	m := acir.NewMap()
	if err := m.Insert(2, field.FromUint64(4)); err != nil {
		t.Fatal(err)
	}

	e := acir.Expression{
		Constant: field.Neg(field.FromUint64(10)),
		Linear: []acir.Term{
			{Coefficient: field.One(), Witness: 1},
			{Coefficient: field.One(), Witness: 2},
		},
	}

	outcome, err := Solve(e, m)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != solver.Solved {
		t.Fatalf("expected Solved, got %v", outcome.Kind)
	}
	v, ok := m.Get(1)
	if !ok {
		t.Fatal("expected witness 1 to be assigned")
	}
	if !field.Equal(v, field.FromUint64(6)) {
		t.Fatalf("expected 6, got %s", field.ToBigInt(v))
	}
}

func TestSolveStallsWithTwoUnknowns(t *testing.T) {
	m := acir.NewMap()
	e := acir.Expression{
		Linear: []acir.Term{
			{Coefficient: field.One(), Witness: 1},
			{Coefficient: field.One(), Witness: 2},
		},
	}
	outcome, err := Solve(e, m)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != solver.Stalled {
		t.Fatalf("expected Stalled, got %v", outcome.Kind)
	}
	if _, ok := outcome.Reason.(solver.ExpressionHasTooManyUnknowns); !ok {
		t.Fatalf("expected ExpressionHasTooManyUnknowns, got %T", outcome.Reason)
	}
}

func TestSolveUnsatisfiedConstantConstraint(t *testing.T) {
	m := acir.NewMap()
	e := acir.Expression{Constant: field.One()}
	_, err := Solve(e, m)
	if err == nil {
		t.Fatal("expected unsatisfied constraint error")
	}
}

func TestSolveAlreadySatisfiedConstraint(t *testing.T) {
	m := acir.NewMap()
	e := acir.Expression{Constant: field.Zero()}
	outcome, err := Solve(e, m)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != solver.Solved {
		t.Fatalf("expected Solved, got %v", outcome.Kind)
	}
}
