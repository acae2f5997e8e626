package acir

import (
	"fmt"

	"github.com/vocdoni/acvm-go/vm"
)

// OpcodeKind discriminates the five opcode shapes a circuit can mix in its
// opcode list.
type OpcodeKind uint8

const (
	OpcodeArithmetic OpcodeKind = iota
	OpcodeBlackBox
	OpcodeDirective
	OpcodeMemoryBlock
	OpcodeBytecode
)

func (k OpcodeKind) String() string {
	switch k {
	case OpcodeArithmetic:
		return "Arithmetic"
	case OpcodeBlackBox:
		return "BlackBox"
	case OpcodeDirective:
		return "Directive"
	case OpcodeMemoryBlock:
		return "MemoryBlock"
	case OpcodeBytecode:
		return "Bytecode"
	default:
		return "Unknown"
	}
}

// Opcode is one entry of a circuit's opcode list: a tagged union over the
// five opcode kinds the solve loop dispatches on. Only the field matching
// Kind is meaningful, following the same per-kind struct convention as
// BlackBoxCall.
type Opcode struct {
	Kind OpcodeKind

	Arithmetic  Expression
	BlackBox    BlackBoxCall
	Directive   Directive
	MemoryBlock *MemoryBlock
	Bytecode    *BytecodeOpcode
}

// ArithmeticOpcode wraps a polynomial constraint expression as an Opcode.
func ArithmeticOpcode(e Expression) Opcode {
	return Opcode{Kind: OpcodeArithmetic, Arithmetic: e}
}

// BlackBoxOpcode wraps a blackbox function call as an Opcode.
func BlackBoxOpcode(c BlackBoxCall) Opcode {
	return Opcode{Kind: OpcodeBlackBox, BlackBox: c}
}

// DirectiveOpcode wraps a hint invocation as an Opcode.
func DirectiveOpcode(d Directive) Opcode {
	return Opcode{Kind: OpcodeDirective, Directive: d}
}

// MemoryBlockOpcode wraps a persistent ROM/RAM block as an Opcode.
func MemoryBlockOpcode(b *MemoryBlock) Opcode {
	return Opcode{Kind: OpcodeMemoryBlock, MemoryBlock: b}
}

// NewBytecodeOpcode wraps an unconstrained-VM program as an Opcode, by
// reference to a BytecodeOpcode value so the same Opcode can carry the
// *vm.VM instance that survives suspension across solve-loop rounds.
func NewBytecodeOpcode(b *BytecodeOpcode) Opcode {
	return Opcode{Kind: OpcodeBytecode, Bytecode: b}
}

// BytecodeOpcode is the unconstrained-VM opcode: a program together with the
// register/witness wiring that feeds it inputs and reads back outputs, plus
// the lazily-constructed VM instance that keeps the machine's internal state
// (registers, memory, program counter, call stack, foreign-call results)
// alive across rounds while the opcode is suspended awaiting a foreign call.
type BytecodeOpcode struct {
	// Program is the instruction sequence the VM executes.
	Program []vm.Op

	// Inputs feed witness-map values into the VM's initial registers, in
	// order.
	Inputs []Expression

	// Outputs receive the VM's final register values, in order, once the
	// program finishes.
	Outputs []Witness

	// machine is created on first solve and kept across rounds; nil means
	// the opcode has not started executing yet.
	machine *vm.VM
}

// MissingInputError reports that a BytecodeOpcode's Inputs[N] expression
// isn't yet resolvable to a constant. Unlike ErrUnsatisfiedConstraint, this
// is not a failure: the opcode should stall and be retried once the
// witness it names is assigned by some other opcode.
type MissingInputError struct {
	Witness Witness
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("acir: bytecode input witness %s not yet assigned", e.Witness)
}

// Machine returns the opcode's persisted VM instance, constructing it (and
// evaluating Inputs against m) on first use. Returns a *MissingInputError
// if an input isn't yet constant; callers should treat that as a stall, not
// a fatal error.
func (b *BytecodeOpcode) Machine(m *Map) (*vm.VM, error) {
	if b.machine != nil {
		return b.machine, nil
	}
	inputs := make([]vm.Value, len(b.Inputs))
	for i, e := range b.Inputs {
		evaluated := Evaluate(e, m)
		c, ok := evaluated.AsConstant()
		if !ok {
			w, _ := evaluated.AnyWitness()
			return nil, &MissingInputError{Witness: w}
		}
		inputs[i] = vm.FromField(c)
	}
	b.machine = vm.New(b.Program, inputs)
	return b.machine, nil
}

// Reset clears the persisted machine, forcing re-evaluation of Inputs on the
// next Machine call. Used when a caller wants to re-run a bytecode opcode
// from scratch.
func (b *BytecodeOpcode) Reset() {
	b.machine = nil
}
