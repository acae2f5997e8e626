package acir

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vocdoni/acvm-go/field"
)

// Expression is c0 + sum(ai*wi) + sum(bj*wj*wk), normalized so that no term
// carries a zero coefficient and identical monomials are merged. Grounded on
// the teacher's R1C/LinearExpression shape (constraint/r1cs.go), generalized
// from three separate L/R/O linear combinations (the R1CS wire-triple
// encoding) into the single general-degree-2 polynomial ACIR expressions
// use.
type Expression struct {
	Constant  field.Element
	Linear    []Term
	Quadratic []MulTerm
}

// NewConstant returns the expression representing a constant value.
func NewConstant(c field.Element) Expression {
	return Expression{Constant: c}
}

// FromWitness returns the expression "1*w".
func FromWitness(w Witness) Expression {
	return Expression{Linear: []Term{{Coefficient: field.One(), Witness: w}}}
}

// Normalize sorts witness indices, merges identical monomials and drops
// zero-coefficient terms, in place. It is the invariant every other method
// on Expression assumes holds.
func (e *Expression) Normalize() {
	if len(e.Linear) > 1 {
		sort.Slice(e.Linear, func(i, j int) bool { return e.Linear[i].Witness < e.Linear[j].Witness })
		merged := e.Linear[:0]
		for _, t := range e.Linear {
			if n := len(merged); n > 0 && merged[n-1].Witness == t.Witness {
				merged[n-1].Coefficient = field.Add(merged[n-1].Coefficient, t.Coefficient)
			} else {
				merged = append(merged, t)
			}
		}
		e.Linear = merged
	}
	filtered := e.Linear[:0]
	for _, t := range e.Linear {
		if !field.IsZero(t.Coefficient) {
			filtered = append(filtered, t)
		}
	}
	e.Linear = filtered

	for i, t := range e.Quadratic {
		if t.Witness1 > t.Witness2 {
			e.Quadratic[i].Witness1, e.Quadratic[i].Witness2 = t.Witness2, t.Witness1
		}
	}
	if len(e.Quadratic) > 1 {
		sort.Slice(e.Quadratic, func(i, j int) bool {
			a, b := e.Quadratic[i], e.Quadratic[j]
			if a.Witness1 != b.Witness1 {
				return a.Witness1 < b.Witness1
			}
			return a.Witness2 < b.Witness2
		})
		mergedQ := e.Quadratic[:0]
		for _, t := range e.Quadratic {
			if n := len(mergedQ); n > 0 && mergedQ[n-1].Witness1 == t.Witness1 && mergedQ[n-1].Witness2 == t.Witness2 {
				mergedQ[n-1].Coefficient = field.Add(mergedQ[n-1].Coefficient, t.Coefficient)
			} else {
				mergedQ = append(mergedQ, t)
			}
		}
		e.Quadratic = mergedQ
	}
	filteredQ := e.Quadratic[:0]
	for _, t := range e.Quadratic {
		if !field.IsZero(t.Coefficient) {
			filteredQ = append(filteredQ, t)
		}
	}
	e.Quadratic = filteredQ
}

// Evaluate substitutes every witness known in m and collapses the result to
// a normalized, possibly shorter, expression. A quadratic term with exactly
// one known operand folds into a linear term on the other; a quadratic term
// with both operands known folds into the constant.
func Evaluate(e Expression, m *Map) Expression {
	out := Expression{Constant: e.Constant}
	out.Linear = make([]Term, 0, len(e.Linear))
	for _, t := range e.Linear {
		if v, ok := m.Get(t.Witness); ok {
			out.Constant = field.Add(out.Constant, field.Mul(t.Coefficient, v))
			continue
		}
		out.Linear = append(out.Linear, t)
	}

	out.Quadratic = make([]MulTerm, 0, len(e.Quadratic))
	for _, t := range e.Quadratic {
		v1, ok1 := m.Get(t.Witness1)
		v2, ok2 := m.Get(t.Witness2)
		switch {
		case ok1 && ok2:
			out.Constant = field.Add(out.Constant, field.Mul(t.Coefficient, field.Mul(v1, v2)))
		case ok1 && !ok2:
			out.Linear = append(out.Linear, Term{Coefficient: field.Mul(t.Coefficient, v1), Witness: t.Witness2})
		case !ok1 && ok2:
			out.Linear = append(out.Linear, Term{Coefficient: field.Mul(t.Coefficient, v2), Witness: t.Witness1})
		default:
			out.Quadratic = append(out.Quadratic, t)
		}
	}
	out.Normalize()
	return out
}

// AsConstant reports whether e (already evaluated) is fully constant, and
// if so returns its value.
func (e Expression) AsConstant() (field.Element, bool) {
	if len(e.Linear) == 0 && len(e.Quadratic) == 0 {
		return e.Constant, true
	}
	return field.Element{}, false
}

// AnyWitness returns an arbitrary free (unknown) witness referenced by e,
// for naming in MissingAssignment stall reasons. Ported from the original
// any_witness_from_expression helper (acvm/src/pwg/mod.rs's get_value).
func (e Expression) AnyWitness() (Witness, bool) {
	if len(e.Linear) > 0 {
		return e.Linear[0].Witness, true
	}
	if len(e.Quadratic) > 0 {
		return e.Quadratic[0].Witness1, true
	}
	return 0, false
}

func (e Expression) String() string {
	var sb strings.Builder
	sb.WriteString(field.ToBigInt(e.Constant).String())
	for _, t := range e.Linear {
		fmt.Fprintf(&sb, " + %s*%s", field.ToBigInt(t.Coefficient).String(), t.Witness)
	}
	for _, t := range e.Quadratic {
		fmt.Fprintf(&sb, " + %s*%s*%s", field.ToBigInt(t.Coefficient).String(), t.Witness1, t.Witness2)
	}
	return sb.String()
}
