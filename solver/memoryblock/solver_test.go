package memoryblock

import (
	"errors"
	"testing"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
	"github.com/vocdoni/acvm-go/solver"
)

func constExpr(v uint64) acir.Expression {
	return acir.Expression{Constant: field.FromUint64(v)}
}

func TestReadAfterWriteResolves(t *testing.T) {
	m := acir.NewMap()
	block := &acir.MemoryBlock{
		ID: 1,
		Trace: []acir.MemoryOp{
			{Index: constExpr(0), Value: constExpr(42), Kind: acir.MemWrite},
			{Index: constExpr(0), Value: acir.FromWitness(10), Kind: acir.MemRead},
		},
	}

	s := New()
	outcome, err := s.Solve(block, m)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != solver.Solved {
		t.Fatalf("expected Solved, got %v", outcome.Kind)
	}
	v, ok := m.Get(10)
	if !ok {
		t.Fatal("expected witness 10 to be assigned from memory read")
	}
	if !field.Equal(v, field.FromUint64(42)) {
		t.Fatalf("expected 42, got %s", field.ToBigInt(v))
	}
}

func TestReadBeforeWriteIsUnsatisfiedConstraint(t *testing.T) {
	m := acir.NewMap()
	block := &acir.MemoryBlock{
		ID: 2,
		Trace: []acir.MemoryOp{
			{Index: constExpr(0), Value: acir.FromWitness(10), Kind: acir.MemRead},
		},
	}

	s := New()
	_, err := s.Solve(block, m)
	if err == nil {
		t.Fatal("expected read-before-write error")
	}
	if !errors.Is(err, acir.ErrUnsatisfiedConstraint) {
		t.Fatalf("expected ErrUnsatisfiedConstraint, got %v", err)
	}
}

func TestTraceResumesAcrossRounds(t *testing.T) {
	m := acir.NewMap()
	block := &acir.MemoryBlock{
		ID: 3,
		Trace: []acir.MemoryOp{
			{Index: acir.FromWitness(20), Value: constExpr(7), Kind: acir.MemWrite},
			{Index: constExpr(0), Value: acir.FromWitness(30), Kind: acir.MemRead},
		},
	}

	s := New()
	// First round: the write's index isn't known yet, so nothing advances.
	outcome, err := s.Solve(block, m)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != solver.Stalled {
		t.Fatalf("expected Stalled on first round, got %v", outcome.Kind)
	}

	// Another opcode (not modeled here) resolves witness 20 to 0.
	if err := m.Insert(20, field.Zero()); err != nil {
		t.Fatal(err)
	}

	outcome, err = s.Solve(block, m)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Kind != solver.Solved {
		t.Fatalf("expected Solved on second round, got %v", outcome.Kind)
	}
	v, _ := m.Get(30)
	if !field.Equal(v, field.FromUint64(7)) {
		t.Fatalf("expected 7, got %s", field.ToBigInt(v))
	}
}
