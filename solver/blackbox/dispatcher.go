package blackbox

import (
	"math/big"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
	"github.com/vocdoni/acvm-go/solver"
)

// Solve dispatches a single BlackBox opcode, either to built-in logic or to
// backend for the functions that depend on the proving system's curve.
// Every function's inputs must already be assigned; if any is missing, the
// call stalls rather than failing, same as any other opcode kind.
func Solve(call acir.BlackBoxCall, m *acir.Map, backend Backend) (solver.Outcome, error) {
	if missing, ok := firstMissingInput(call, m); ok {
		return solver.StalledOutcome(solver.MissingAssignment{Witness: missing}), nil
	}

	switch call.Kind {
	case acir.BlackBoxAND:
		return solveBitwise(call, m, func(a, b uint64) uint64 { return a & b })
	case acir.BlackBoxXOR:
		return solveBitwise(call, m, func(a, b uint64) uint64 { return a ^ b })
	case acir.BlackBoxRANGE:
		return solveRange(call, m)

	case acir.BlackBoxSHA256:
		lo, hi, err := sha256Digest(call.Inputs, m)
		if err != nil {
			return solver.Outcome{}, err
		}
		return insertDigest(call.Outputs, lo, hi, m)

	case acir.BlackBoxBlake2s:
		lo, hi, err := blake2sDigest(call.Inputs, m)
		if err != nil {
			return solver.Outcome{}, err
		}
		return insertDigest(call.Outputs, lo, hi, m)

	case acir.BlackBoxKeccak256:
		lo, hi, err := keccak256Digest(call.Inputs, m)
		if err != nil {
			return solver.Outcome{}, err
		}
		return insertDigest(call.Outputs, lo, hi, m)

	case acir.BlackBoxKeccak256VariableLength:
		if call.VarMessageSize == nil {
			return solver.Outcome{}, solver.BlackBoxFunctionFailed{Name: "Keccak256VariableLength", Reason: "missing message size input"}
		}
		lo, hi, err := keccak256VariableLengthDigest(call.Inputs, *call.VarMessageSize, m)
		if err != nil {
			return solver.Outcome{}, err
		}
		return insertDigest(call.Outputs, lo, hi, m)

	case acir.BlackBoxHashToField128:
		v, err := hashToField128(call.Inputs, m)
		if err != nil {
			return solver.Outcome{}, err
		}
		if err := m.Insert(call.HashOutput, v); err != nil {
			return solver.Outcome{}, err
		}
		return solver.SolvedOutcome(), nil

	case acir.BlackBoxSchnorrVerify:
		return solveSchnorrVerify(call, m, backend)

	case acir.BlackBoxPedersen:
		return solvePedersen(call, m, backend)

	case acir.BlackBoxEcdsaSecp256k1:
		ok, err := verifyEcdsaSecp256k1Prehashed(
			call.PublicKeyX, call.PublicKeyY,
			call.Signature, call.HashedMessage, m)
		if err != nil {
			return solver.Outcome{}, err
		}
		if err := m.Insert(call.VerifyOutput, field.FromUint64(boolUint(ok))); err != nil {
			return solver.Outcome{}, err
		}
		return solver.SolvedOutcome(), nil

	case acir.BlackBoxFixedBaseScalarMul:
		return solveFixedBaseScalarMul(call, m, backend)

	case acir.BlackBoxRecursiveAggregation:
		// The spec treats recursive proof verification as out of scope
		// for a bare PWG: accept unconditionally, same as the original
		// implementation's no-op handling.
		return solver.SolvedOutcome(), nil

	default:
		return solver.Outcome{}, solver.UnsupportedBlackBoxFunc{Name: call.Kind.String()}
	}
}

func firstMissingInput(call acir.BlackBoxCall, m *acir.Map) (acir.Witness, bool) {
	for _, in := range call.FunctionInputs() {
		if !m.Has(in.Witness) {
			return in.Witness, true
		}
	}
	return 0, false
}

func insertDigest(outputs [2]acir.Witness, lo, hi field.Element, m *acir.Map) (solver.Outcome, error) {
	if err := m.Insert(outputs[0], lo); err != nil {
		return solver.Outcome{}, err
	}
	if err := m.Insert(outputs[1], hi); err != nil {
		return solver.Outcome{}, err
	}
	return solver.SolvedOutcome(), nil
}

func boolUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

func solveBitwise(call acir.BlackBoxCall, m *acir.Map, op func(a, b uint64) uint64) (solver.Outcome, error) {
	lv, _ := m.Get(call.LHS.Witness)
	rv, _ := m.Get(call.RHS.Witness)
	result := op(field.ToBigInt(lv).Uint64(), field.ToBigInt(rv).Uint64())
	if err := m.Insert(call.Output, field.FromUint64(result)); err != nil {
		return solver.Outcome{}, err
	}
	return solver.SolvedOutcome(), nil
}

func solveRange(call acir.BlackBoxCall, m *acir.Map) (solver.Outcome, error) {
	v, _ := m.Get(call.Input.Witness)
	bits := field.ToBigInt(v).BitLen()
	if uint32(bits) > call.Input.NumBits {
		return solver.Outcome{}, solver.BlackBoxFunctionFailed{Name: "RANGE", Reason: "value exceeds declared bit width"}
	}
	return solver.SolvedOutcome(), nil
}

func solveSchnorrVerify(call acir.BlackBoxCall, m *acir.Map, backend Backend) (solver.Outcome, error) {
	x, _ := m.Get(call.PublicKeyX.Witness)
	y, _ := m.Get(call.PublicKeyY.Witness)
	s, _ := m.Get(call.SignatureS.Witness)
	e, _ := m.Get(call.SignatureE.Witness)
	msg, err := gatherMessage(call.Message, m)
	if err != nil {
		return solver.Outcome{}, err
	}
	ok, err := backend.SchnorrVerify(field.ToBigInt(x), field.ToBigInt(y), field.ToBigInt(s), field.ToBigInt(e), msg)
	if err != nil {
		return solver.Outcome{}, solver.BlackBoxFunctionFailed{Name: "SchnorrVerify", Reason: err.Error()}
	}
	if err := m.Insert(call.VerifyOutput, field.FromUint64(boolUint(ok))); err != nil {
		return solver.Outcome{}, err
	}
	return solver.SolvedOutcome(), nil
}

func solvePedersen(call acir.BlackBoxCall, m *acir.Map, backend Backend) (solver.Outcome, error) {
	vals := make([]*big.Int, 0, len(call.Inputs))
	for _, in := range call.Inputs {
		v, _ := m.Get(in.Witness)
		vals = append(vals, field.ToBigInt(v))
	}
	x, y, err := backend.Pedersen(vals, call.DomainSeparator)
	if err != nil {
		return solver.Outcome{}, solver.BlackBoxFunctionFailed{Name: "Pedersen", Reason: err.Error()}
	}
	if err := m.Insert(call.PedersenOutputs[0], field.FromBigInt(x)); err != nil {
		return solver.Outcome{}, err
	}
	if err := m.Insert(call.PedersenOutputs[1], field.FromBigInt(y)); err != nil {
		return solver.Outcome{}, err
	}
	return solver.SolvedOutcome(), nil
}

func solveFixedBaseScalarMul(call acir.BlackBoxCall, m *acir.Map, backend Backend) (solver.Outcome, error) {
	scalar, _ := m.Get(call.ScalarInput.Witness)
	x, y, err := backend.FixedBaseScalarMul(field.ToBigInt(scalar))
	if err != nil {
		return solver.Outcome{}, solver.BlackBoxFunctionFailed{Name: "FixedBaseScalarMul", Reason: err.Error()}
	}
	if err := m.Insert(call.ScalarMulOutputs[0], field.FromBigInt(x)); err != nil {
		return solver.Outcome{}, err
	}
	if err := m.Insert(call.ScalarMulOutputs[1], field.FromBigInt(y)); err != nil {
		return solver.Outcome{}, err
	}
	return solver.SolvedOutcome(), nil
}
