package acir

import "github.com/vocdoni/acvm-go/field"

// Term is coeff*witness, the linear building block of an Expression.
// Grounded on the teacher's constraint.Term (constraint/term.go), adapted
// from a (coeffID, wireID) pair indexing into a shared coefficient table to
// a self-contained (coefficient, witness) pair — the ACIR expression model
// has no compiled calldata to compress against.
type Term struct {
	Coefficient field.Element
	Witness     Witness
}

// MulTerm is coeff*w1*w2, the quadratic building block of an Expression.
type MulTerm struct {
	Coefficient field.Element
	Witness1    Witness
	Witness2    Witness
}
