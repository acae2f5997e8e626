// Package vm implements the unconstrained register VM: a small
// non-deterministic machine that executes auxiliary bytecode whose outputs
// feed back into the witness map, including the foreign-call suspension
// protocol. Grounded on original_source's brillig_vm/src/lib.rs, rewritten
// in the teacher's idiom (explicit status transitions, no panics on
// caller-reachable paths, field.Element instead of a bespoke scalar type).
package vm

import (
	"math/big"

	"github.com/vocdoni/acvm-go/field"
)

// maxBits bounds the modulo-2^bits truncation used by the integer view and
// by BinaryIntOp.
const maxBits = 128

// Value is a field element together with a 128-bit integer view. The two
// views are kept in sync lazily: arithmetic on registers always reads and
// writes through this type, which knows how to convert losslessly within
// 128 bits and truncate-modulo otherwise.
type Value struct {
	f field.Element
}

// FromField wraps a field element as a Value.
func FromField(f field.Element) Value {
	return Value{f: f}
}

// FromUint64 builds a Value from a small unsigned integer.
func FromUint64(v uint64) Value {
	return Value{f: field.FromUint64(v)}
}

// FromUint128 builds a Value from a 128-bit-or-smaller unsigned integer,
// reducing modulo the field (lossless, since the field is far larger than
// 128 bits).
func FromUint128(v *big.Int) Value {
	return Value{f: field.FromBigInt(v)}
}

// Field returns the field-element view.
func (v Value) Field() field.Element {
	return v.f
}

// ToUint128 returns the 128-bit integer view: v's regular integer
// representation reduced modulo 2^128. The conversion is lossless for
// values that started out within 128 bits and truncates (modulo 2^128)
// otherwise.
func (v Value) ToUint128() *big.Int {
	i := field.ToBigInt(v.f)
	mod := new(big.Int).Lsh(big.NewInt(1), maxBits)
	return i.Mod(i, mod)
}

// ToUint64 is a convenience accessor used by pointer and size conversions;
// it truncates modulo 2^64 the same way ToUint128 truncates modulo 2^128.
func (v Value) ToUint64() uint64 {
	return v.ToUint128().Uint64()
}

// ToIndex converts v to a non-negative memory/register index. Per the
// memory model, there is no bounds checking other than this conversion
// succeeding; callers must still cap the result against an
// implementation-defined maximum.
func (v Value) ToIndex() int {
	u := v.ToUint128()
	if !u.IsUint64() {
		return int(^uint(0) >> 1) // saturate; will be rejected by the memory cap
	}
	return int(u.Uint64())
}

// IsZero reports whether v is the field zero element.
func (v Value) IsZero() bool {
	return field.IsZero(v.f)
}

// Equal reports whether two values carry the same field element.
func (v Value) Equal(o Value) bool {
	return field.Equal(v.f, o.f)
}

func boolValue(b bool) Value {
	if b {
		return FromUint64(1)
	}
	return FromUint64(0)
}
