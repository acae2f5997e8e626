// Package directive solves Directive opcodes: named hint functions that
// assign witnesses without generating a constraint. Grounded on the
// teacher's hintsolver package (a global HintID -> HintFn registry) and its
// concrete hints under hints/math/bits, hints/rangecheck and hints/selector,
// generalized from gnark's circuit-compile-time hint IDs to ACIR's
// string-named hints.
package directive

import (
	"fmt"
	"math/big"
	"sync"
)

// Fn is a hint function: it receives the field modulus and the evaluated
// big.Int inputs, and must populate outputs (pre-sized to the opcode's
// Outputs length) in place.
type Fn func(modulus *big.Int, inputs []*big.Int, outputs []*big.Int) error

var (
	mu       sync.RWMutex
	registry = make(map[string]Fn)
)

// Register adds a hint function under name, overwriting any previous
// registration. Called from init() by built-in hints, and callable directly
// by callers wiring in custom hints.
func Register(name string, fn Fn) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = fn
}

// Lookup returns the hint function registered under name.
func Lookup(name string) (Fn, bool) {
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := registry[name]
	return fn, ok
}

func mustUint(v *big.Int, what string) (uint, error) {
	if !v.IsUint64() {
		return 0, fmt.Errorf("%s: value out of range: %s", what, v)
	}
	return uint(v.Uint64()), nil
}
