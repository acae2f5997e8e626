package acir

// Directive is an unconstrained witness-assignment hint: a named hint
// function, evaluated against a list of input expressions, whose outputs
// are assigned directly into the witness map without generating any
// constraint. Generalized from a single hard-coded "invert" hint into a
// registry-addressed call, grounded on the teacher's hintsolver package
// (HintID-keyed function registry) — see solver/directive.
type Directive struct {
	// Hint names the registered hint function to invoke.
	Hint string

	// Inputs are evaluated against the witness map and converted to
	// big.Int before being passed to the hint function.
	Inputs []Expression

	// Outputs receive the hint function's big.Int results, converted back
	// to field elements.
	Outputs []Witness
}
