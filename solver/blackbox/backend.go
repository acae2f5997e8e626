// Package blackbox dispatches BlackBox opcodes to either built-in logic
// (bitwise AND/XOR, RANGE, the hash family, secp256k1 ECDSA) or a
// caller-supplied Backend for the functions that require a proving-system-
// specific implementation (SchnorrVerify, Pedersen, FixedBaseScalarMul).
// Grounded on original_source's acvm/src/pwg/blackbox/mod.rs dispatch table.
package blackbox

import "math/big"

// Backend implements the blackbox functions whose result depends on the
// proving system's chosen curve and commitment scheme, and so cannot be
// built in.
type Backend interface {
	// SchnorrVerify reports whether signature (s, e) over message verifies
	// against public key (x, y).
	SchnorrVerify(pubX, pubY, sigS, sigE *big.Int, message []byte) (bool, error)

	// Pedersen commits to inputs under the given domain separator,
	// returning the resulting curve point's affine coordinates.
	Pedersen(inputs []*big.Int, domainSeparator uint32) (x, y *big.Int, err error)

	// FixedBaseScalarMul multiplies the curve's fixed base point by
	// scalar, returning the resulting affine coordinates.
	FixedBaseScalarMul(scalar *big.Int) (x, y *big.Int, err error)
}

// UnimplementedBackend satisfies Backend by rejecting every call,
// appropriate for callers whose circuits never exercise the
// backend-dependent blackbox functions.
type UnimplementedBackend struct{}

func (UnimplementedBackend) SchnorrVerify(_, _, _, _ *big.Int, _ []byte) (bool, error) {
	return false, errUnimplemented("SchnorrVerify")
}

func (UnimplementedBackend) Pedersen(_ []*big.Int, _ uint32) (*big.Int, *big.Int, error) {
	return nil, nil, errUnimplemented("Pedersen")
}

func (UnimplementedBackend) FixedBaseScalarMul(_ *big.Int) (*big.Int, *big.Int, error) {
	return nil, nil, errUnimplemented("FixedBaseScalarMul")
}

type unimplementedError string

func (e unimplementedError) Error() string {
	return "backend does not implement " + string(e)
}

func errUnimplemented(name string) error {
	return unimplementedError(name)
}
