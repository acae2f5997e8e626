package blackbox

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
)

// verifyEcdsaSecp256k1Prehashed is a built-in (no Backend involved, unlike
// SchnorrVerify/Pedersen): secp256k1 and its ECDSA verification algorithm
// are fixed regardless of the proving system, so this can run directly
// against stdlib crypto/ecdsa over btcec's curve implementation.
func verifyEcdsaSecp256k1Prehashed(pubX, pubY acir.FunctionInput, sig [64]acir.FunctionInput, hashed []acir.FunctionInput, m *acir.Map) (bool, error) {
	xv, ok := m.Get(pubX.Witness)
	if !ok {
		return false, unsatisfiedMissing(pubX.Witness)
	}
	yv, ok := m.Get(pubY.Witness)
	if !ok {
		return false, unsatisfiedMissing(pubY.Witness)
	}
	x := field.ToBigInt(xv)
	y := field.ToBigInt(yv)
	sigBytes, err := assembleBytes(sig[:], m)
	if err != nil {
		return false, err
	}
	hashBytes, err := assembleBytes(hashed, m)
	if err != nil {
		return false, err
	}
	if len(sigBytes) != 64 {
		return false, nil
	}

	curve := btcec.S256()
	if !curve.IsOnCurve(x, y) {
		return false, nil
	}

	pub := &ecdsa.PublicKey{
		Curve: curve,
		X:     x,
		Y:     y,
	}
	r := new(big.Int).SetBytes(sigBytes[:32])
	s := new(big.Int).SetBytes(sigBytes[32:])

	return ecdsa.Verify(pub, hashBytes, r, s), nil
}

// assembleBytes builds a byte string with exactly one byte per input, in
// declaration order: the least-significant byte of each input's value.
// Signature components and hashed messages are given one witness per byte,
// and the assembled sequence is read as a big-endian byte string. Any
// higher-order bytes of an input are ignored.
func assembleBytes(inputs []acir.FunctionInput, m *acir.Map) ([]byte, error) {
	out := make([]byte, 0, len(inputs))
	for _, in := range inputs {
		v, ok := m.Get(in.Witness)
		if !ok {
			return nil, unsatisfiedMissing(in.Witness)
		}
		le := field.TruncateToBytes(v, in.NumBits)
		if len(le) == 0 {
			le = []byte{0}
		}
		out = append(out, le[0])
	}
	return out, nil
}
