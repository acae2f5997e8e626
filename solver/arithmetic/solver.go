// Package arithmetic solves a single Arithmetic opcode (a normalized
// polynomial constraint) against the current witness map. Grounded on the
// teacher's solveR1C (constraint/solver.go): substitute every known
// witness, and if exactly one unknown remains in an otherwise-linear
// expression, solve for it; any more leaves the opcode stalled for a later
// round.
package arithmetic

import (
	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
	"github.com/vocdoni/acvm-go/solver"
)

// Solve attempts to resolve e against m, inserting a new witness assignment
// into m when the expression reduces to exactly one unknown.
func Solve(e acir.Expression, m *acir.Map) (solver.Outcome, error) {
	evaluated := acir.Evaluate(e, m)

	if c, ok := evaluated.AsConstant(); ok {
		if !field.IsZero(c) {
			return solver.Outcome{}, acir.ErrUnsatisfiedConstraint
		}
		return solver.SolvedOutcome(), nil
	}

	if len(evaluated.Quadratic) == 0 && len(evaluated.Linear) == 1 {
		t := evaluated.Linear[0]
		// t.Coefficient * w + constant = 0  =>  w = -constant / coefficient
		value := field.Mul(field.Neg(evaluated.Constant), field.Invert(t.Coefficient))
		if err := m.Insert(t.Witness, value); err != nil {
			return solver.Outcome{}, err
		}
		return solver.SolvedOutcome(), nil
	}

	return solver.StalledOutcome(solver.ExpressionHasTooManyUnknowns{Expression: evaluated}), nil
}
