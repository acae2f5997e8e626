package pwg

import "github.com/vocdoni/acvm-go/acir"

// Language names a proving system's opcode support, used to decide whether
// a circuit needs blackbox functions to be expanded to arithmetic gates
// before it can be solved by that system.
type Language uint8

const (
	// R1CS supports only Arithmetic opcodes; every blackbox call and
	// every other opcode kind must be compiled away before reaching a
	// R1CS-targeting session.
	R1CS Language = iota
	// PLONKCSat supports every opcode kind except MemoryBlock, blackbox
	// functions included. No fan-in width is checked.
	PLONKCSat
)

// IsOpcodeSupported reports whether lang's proving system can consume op
// directly, mirroring the deprecated default_is_opcode_supported predicate:
// R1CS accepts only Arithmetic opcodes, everything else (including every
// blackbox function) must be compiled away first; PLONK accepts everything
// except MemoryBlock.
//
// Deprecated: this predicate describes a circuit-compilation concern that a
// bare PWG does not itself enforce; solving proceeds regardless of what it
// reports. Kept for callers building a compiler front-end on top of this
// package.
func IsOpcodeSupported(lang Language, op acir.Opcode) bool {
	switch lang {
	case R1CS:
		return op.Kind == acir.OpcodeArithmetic
	case PLONKCSat:
		return op.Kind != acir.OpcodeMemoryBlock
	default:
		return false
	}
}
