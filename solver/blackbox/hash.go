package blackbox

import (
	"crypto/sha256"

	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
)

// gatherMessage applies the byte-truncation law to each input in order and
// concatenates the results: truncate_to_bytes(value, bits) is the
// little-endian byte string of the least-significant ceil(bits/8) bytes of
// value, and inputs are laid out byte-for-byte in declaration order.
func gatherMessage(inputs []acir.FunctionInput, m *acir.Map) ([]byte, error) {
	var msg []byte
	for _, in := range inputs {
		v, ok := m.Get(in.Witness)
		if !ok {
			return nil, unsatisfiedMissing(in.Witness)
		}
		msg = append(msg, field.TruncateToBytes(v, in.NumBits)...)
	}
	return msg, nil
}

// splitDigest applies the digest-split law: a 256-bit digest splits into
// two big-endian 128-bit halves, each reinterpreted as a field element.
func splitDigest(digest []byte) (lo, hi field.Element) {
	lo = field.FieldElementFromHalfDigest(digest[0:16])
	hi = field.FieldElementFromHalfDigest(digest[16:32])
	return lo, hi
}

func sha256Digest(inputs []acir.FunctionInput, m *acir.Map) (field.Element, field.Element, error) {
	msg, err := gatherMessage(inputs, m)
	if err != nil {
		return field.Element{}, field.Element{}, err
	}
	sum := sha256.Sum256(msg)
	lo, hi := splitDigest(sum[:])
	return lo, hi, nil
}

func blake2sDigest(inputs []acir.FunctionInput, m *acir.Map) (field.Element, field.Element, error) {
	msg, err := gatherMessage(inputs, m)
	if err != nil {
		return field.Element{}, field.Element{}, err
	}
	sum := blake2s.Sum256(msg)
	lo, hi := splitDigest(sum[:])
	return lo, hi, nil
}

func keccak256Digest(inputs []acir.FunctionInput, m *acir.Map) (field.Element, field.Element, error) {
	msg, err := gatherMessage(inputs, m)
	if err != nil {
		return field.Element{}, field.Element{}, err
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	sum := h.Sum(nil)
	lo, hi := splitDigest(sum)
	return lo, hi, nil
}

func keccak256VariableLengthDigest(inputs []acir.FunctionInput, varLen acir.FunctionInput, m *acir.Map) (field.Element, field.Element, error) {
	msg, err := gatherMessage(inputs, m)
	if err != nil {
		return field.Element{}, field.Element{}, err
	}
	lenVal, ok := m.Get(varLen.Witness)
	if !ok {
		return field.Element{}, field.Element{}, unsatisfiedMissing(varLen.Witness)
	}
	n := field.ToBigInt(lenVal)
	if n.IsUint64() && n.Uint64() < uint64(len(msg)) {
		msg = msg[:n.Uint64()]
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	sum := h.Sum(nil)
	lo, hi := splitDigest(sum)
	return lo, hi, nil
}

// hashToField128 hashes inputs with Keccak256 and reduces the digest to a
// single field element of effective 128-bit security, rather than splitting
// it into two halves.
func hashToField128(inputs []acir.FunctionInput, m *acir.Map) (field.Element, error) {
	msg, err := gatherMessage(inputs, m)
	if err != nil {
		return field.Element{}, err
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(msg)
	sum := h.Sum(nil)
	return field.FieldElementFromHalfDigest(sum[16:32]), nil
}

func unsatisfiedMissing(w acir.Witness) error {
	return &missingInputError{witness: w}
}

type missingInputError struct {
	witness acir.Witness
}

func (e *missingInputError) Error() string {
	return "blackbox call missing input assignment for " + e.witness.String()
}
