package directive

import "math/big"

func init() {
	Register("invert", invertHint)
	Register("to_le_bits", toLEBitsHint)
	Register("ith_bit", ithBitHint)
	Register("n_trits", nTritsHint)
	Register("nnaf", nnafHint)
	Register("decompose", decomposeHint)
	Register("count", countHint)
	Register("mux_indicators", muxIndicatorsHint)
	Register("map_indicators", mapIndicatorsHint)
	Register("step_output", stepOutputHint)
}

// invertHint computes the modular inverse of inputs[0], following the
// teacher's zero-input convention: inverting zero yields zero rather than
// failing, so callers that only ever read the inverse behind a
// "is-zero" selector never observe an error.
func invertHint(q *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	if inputs[0].Sign() == 0 {
		outputs[0] = big.NewInt(0)
		return nil
	}
	outputs[0] = new(big.Int).ModInverse(inputs[0], q)
	return nil
}

// toLEBitsHint decomposes inputs[0] into len(outputs) little-endian bits.
func toLEBitsHint(q *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	v := inputs[0]
	for i := range outputs {
		outputs[i] = new(big.Int).And(new(big.Int).Rsh(v, uint(i)), big.NewInt(1))
	}
	return nil
}

// ithBitHint extracts bit number inputs[1] of inputs[0].
func ithBitHint(q *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	i, err := mustUint(inputs[1], "ith_bit")
	if err != nil {
		return err
	}
	outputs[0] = new(big.Int).And(new(big.Int).Rsh(inputs[0], i), big.NewInt(1))
	return nil
}

// nTritsHint decomposes inputs[0] into len(outputs) little-endian base-3
// digits.
func nTritsHint(q *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	v := new(big.Int).Set(inputs[0])
	three := big.NewInt(3)
	for i := range outputs {
		digit := new(big.Int)
		v.DivMod(v, three, digit)
		outputs[i] = digit
	}
	return nil
}

// nnafHint decomposes inputs[0] into len(outputs) non-adjacent-form digits
// in {-1, 0, 1}, least-significant first.
func nnafHint(q *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	v := new(big.Int).Set(inputs[0])
	zero := big.NewInt(0)
	two := big.NewInt(2)
	for i := range outputs {
		if v.Bit(0) == 0 {
			outputs[i] = big.NewInt(0)
		} else {
			mod4 := new(big.Int).And(v, big.NewInt(3))
			if mod4.Cmp(big.NewInt(3)) == 0 {
				outputs[i] = big.NewInt(-1)
				v.Add(v, big.NewInt(1))
			} else {
				outputs[i] = big.NewInt(1)
				v.Sub(v, big.NewInt(1))
			}
		}
		v.Div(v, two)
	}
	if v.Cmp(zero) != 0 {
		// Remaining magnitude didn't fit in the requested digit count;
		// leave it folded into the most significant digit rather than
		// silently dropping it.
		// The leftover v carries weight 2^n and the last digit weight
		// 2^(n-1), so the digit absorbs 2*v.
		outputs[len(outputs)-1] = new(big.Int).Add(outputs[len(outputs)-1], new(big.Int).Lsh(v, 1))
	}
	return nil
}

// decomposeHint splits inputs[0] into len(outputs) limbs of inputs[1] bits
// each, little-endian.
func decomposeHint(q *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	limbBits, err := mustUint(inputs[1], "decompose")
	if err != nil {
		return err
	}
	v := new(big.Int).Set(inputs[0])
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), limbBits), big.NewInt(1))
	for i := range outputs {
		outputs[i] = new(big.Int).And(v, mask)
		v.Rsh(v, limbBits)
	}
	return nil
}

// countHint counts the number of set bits among inputs.
func countHint(q *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	count := 0
	for _, in := range inputs {
		count += popcount(in)
	}
	outputs[0] = big.NewInt(int64(count))
	return nil
}

func popcount(v *big.Int) int {
	n := 0
	for _, w := range v.Bits() {
		for w != 0 {
			n++
			w &= w - 1
		}
	}
	return n
}

// muxIndicatorsHint returns len(outputs) indicator bits, all zero except
// outputs[inputs[0]] which is one — the selector multiplexer's one-hot
// encoding of an index.
func muxIndicatorsHint(q *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	sel, err := mustUint(inputs[0], "mux_indicators")
	if err != nil {
		return err
	}
	for i := range outputs {
		if uint(i) == sel {
			outputs[i] = big.NewInt(1)
		} else {
			outputs[i] = big.NewInt(0)
		}
	}
	return nil
}

// mapIndicatorsHint returns, for each input key, an indicator of whether it
// equals inputs[0] (the lookup key), the same one-hot shape as
// muxIndicatorsHint but over arbitrary key values rather than a dense index
// range.
func mapIndicatorsHint(q *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	key := inputs[0]
	keys := inputs[1:]
	for i := range outputs {
		if i < len(keys) && keys[i].Cmp(key) == 0 {
			outputs[i] = big.NewInt(1)
		} else {
			outputs[i] = big.NewInt(0)
		}
	}
	return nil
}

// stepOutputHint selects inputs[1+sel] where sel = inputs[0], the
// multiplexer's selected-value companion to muxIndicatorsHint.
func stepOutputHint(q *big.Int, inputs []*big.Int, outputs []*big.Int) error {
	sel, err := mustUint(inputs[0], "step_output")
	if err != nil {
		return err
	}
	choices := inputs[1:]
	if int(sel) >= len(choices) {
		outputs[0] = big.NewInt(0)
		return nil
	}
	outputs[0] = new(big.Int).Set(choices[sel])
	return nil
}
