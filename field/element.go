// Package field wraps the scalar field arithmetic assumed available by the
// rest of the solver. It is a thin layer over gnark-crypto's bn254 scalar
// field, in the same spirit as the teacher constraint package's field
// engine (byte-reinterpret casts over a fixed-size element), generalized
// into the handful of operations the opcode solvers need: arithmetic,
// inversion (with zero mapping to zero), big.Int and byte-string
// conversions.
package field

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Element is a field element. The zero value is the additive identity.
type Element = fr.Element

// Zero returns the additive identity.
func Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func One() Element {
	return fr.One()
}

// FromUint64 builds an element from a small unsigned integer.
func FromUint64(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// FromBigInt reduces a big.Int modulo the field and returns the element.
func FromBigInt(v *big.Int) Element {
	var e Element
	e.SetBigInt(v)
	return e
}

// Add returns a+b.
func Add(a, b Element) Element {
	var r Element
	r.Add(&a, &b)
	return r
}

// Sub returns a-b.
func Sub(a, b Element) Element {
	var r Element
	r.Sub(&a, &b)
	return r
}

// Mul returns a*b.
func Mul(a, b Element) Element {
	var r Element
	r.Mul(&a, &b)
	return r
}

// Neg returns -a.
func Neg(a Element) Element {
	var r Element
	r.Neg(&a)
	return r
}

// Equal reports whether a and b represent the same residue.
func Equal(a, b Element) bool {
	return a.Equal(&b)
}

// IsZero reports whether a is the additive identity.
func IsZero(a Element) bool {
	return a.IsZero()
}

// Invert computes 1/a. By convention (Design Note: field inversion), the
// inverse of zero is defined to be zero rather than an error — the
// surrounding circuit is responsible for constraining the zero case, per
// the directive solver's invert hint.
func Invert(a Element) Element {
	if a.IsZero() {
		return Element{}
	}
	var r Element
	r.Inverse(&a)
	return r
}

// ToBigInt returns the regular (non-Montgomery) big.Int representation.
func ToBigInt(a Element) *big.Int {
	r := new(big.Int)
	a.BigInt(r)
	return r
}

// BytesBE returns the element's canonical big-endian 32-byte encoding.
func BytesBE(a Element) [32]byte {
	return a.Bytes()
}

// FromBytesBE decodes a canonical big-endian byte string into an element,
// reducing modulo the field if the bytes represent a value >= the modulus.
func FromBytesBE(b []byte) Element {
	var e Element
	e.SetBytes(b)
	return e
}

// TruncateToBytes returns the little-endian encoding of the least
// significant ceil(bits/8) bytes of a's regular integer representation.
// This implements the byte-truncation law used by every hash blackbox:
// truncate_to_bytes(value, b) = little-endian bytes of the least
// significant ceil(b/8) bytes of the field value.
func TruncateToBytes(a Element, bits uint32) []byte {
	nbBytes := (int(bits) + 7) / 8
	v := ToBigInt(a)
	be := v.Bytes() // big-endian, no leading zero padding
	out := make([]byte, nbBytes)
	// copy the least significant nbBytes of be into out, big-endian-aligned
	n := len(be)
	if n > nbBytes {
		be = be[n-nbBytes:]
		n = nbBytes
	}
	copy(out[nbBytes-n:], be)
	// now out holds the value big-endian in a nbBytes buffer; convert to
	// little-endian as the law requires.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// FieldElementFromHalfDigest reconstructs the field element half of a hash
// digest split, per the split law: for a 256-bit digest d, the two 128-bit
// halves are big-endian byte strings.
func FieldElementFromHalfDigest(half []byte) Element {
	return FromBytesBE(half)
}

// Modulus returns the scalar field modulus.
func Modulus() *big.Int {
	return fr.Modulus()
}
