package directive

import (
	"fmt"
	"math/big"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
	"github.com/vocdoni/acvm-go/solver"
)

// Solve evaluates d.Inputs against m; if every input is fully known, it
// invokes the registered hint and assigns d.Outputs from the result. If any
// input is still unknown, the directive stalls rather than failing —
// hints are expected to run once their inputs settle, same as any other
// opcode kind.
func Solve(d acir.Directive, m *acir.Map) (solver.Outcome, error) {
	fn, ok := Lookup(d.Hint)
	if !ok {
		return solver.Outcome{}, fmt.Errorf("unregistered hint: %q", d.Hint)
	}

	bigInputs := make([]*big.Int, len(d.Inputs))
	for i, e := range d.Inputs {
		evaluated := acir.Evaluate(e, m)
		c, ok := evaluated.AsConstant()
		if !ok {
			w, _ := evaluated.AnyWitness()
			return solver.StalledOutcome(solver.MissingAssignment{Witness: w}), nil
		}
		bigInputs[i] = field.ToBigInt(c)
	}

	outputs := make([]*big.Int, len(d.Outputs))
	if err := fn(field.Modulus(), bigInputs, outputs); err != nil {
		return solver.Outcome{}, fmt.Errorf("hint %q failed: %w", d.Hint, err)
	}

	for i, w := range d.Outputs {
		if outputs[i] == nil {
			return solver.Outcome{}, fmt.Errorf("hint %q did not assign output %d", d.Hint, i)
		}
		if err := m.Insert(w, field.FromBigInt(outputs[i])); err != nil {
			return solver.Outcome{}, err
		}
	}
	return solver.SolvedOutcome(), nil
}
