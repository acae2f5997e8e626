package vm

import (
	"math/big"

	"github.com/vocdoni/acvm-go/field"
)

// VM executes a single bytecode program against its own registers and
// memory. A VM value is meant to be created once per BytecodeOpcode and
// persisted across solve-loop rounds: suspending on a foreign call leaves
// Registers, Memory, PC and CallStack exactly as they were, so a later Run,
// after PushForeignCallResult, picks up where execution left off.
type VM struct {
	Registers *Registers
	Memory    *Memory

	PC        int
	CallStack []int

	ForeignCallCounter int
	ForeignCallResults []ForeignCallResult

	Bytecode []Op

	status Status
}

// New constructs a VM ready to execute program against the given initial
// register values; memory starts empty.
func New(program []Op, inputs []Value) *VM {
	return &VM{
		Registers: Load(inputs),
		Memory:    NewMemory(nil),
		Bytecode:  program,
		status:    inProgress(),
	}
}

// Status returns the VM's current run-state.
func (m *VM) Status() Status {
	return m.status
}

// PushForeignCallResult resumes a VM suspended on ForeignCallWait by
// supplying the resolved result for the pending call.
func (m *VM) PushForeignCallResult(result ForeignCallResult) {
	m.ForeignCallResults = append(m.ForeignCallResults, result)
	m.status = inProgress()
}

// Run executes opcodes until the VM finishes, fails, or suspends awaiting a
// foreign call.
func (m *VM) Run() Status {
	for m.status.Kind == StatusInProgress {
		m.step()
	}
	return m.status
}

func (m *VM) step() {
	if m.PC < 0 || m.PC >= len(m.Bytecode) {
		m.status = finished()
		return
	}
	m.processOpcode(m.Bytecode[m.PC])
}

func (m *VM) processOpcode(op Op) {
	switch op.Kind {
	case OpConst:
		m.Registers.Set(op.Dst, op.Value)
		m.advance()

	case OpMov:
		m.Registers.Set(op.Dst, m.Registers.Get(op.Src))
		m.advance()

	case OpBinaryField:
		m.processBinaryField(op)

	case OpBinaryInt:
		m.processBinaryInt(op)

	case OpLoad:
		ptr := m.Registers.Get(op.SourcePointer).ToIndex()
		m.Registers.Set(op.Dst, m.Memory.Read(ptr))
		m.advance()

	case OpStore:
		ptr := m.Registers.Get(op.DestinationPointer).ToIndex()
		m.Memory.Write(ptr, m.Registers.Get(op.Src))
		m.advance()

	case OpJump:
		m.PC = op.Location

	case OpJumpIf:
		if !m.Registers.Get(op.Condition).IsZero() {
			m.PC = op.Location
		} else {
			m.advance()
		}

	case OpJumpIfNot:
		if m.Registers.Get(op.Condition).IsZero() {
			m.PC = op.Location
		} else {
			m.advance()
		}

	case OpCall:
		m.CallStack = append(m.CallStack, m.PC+1)
		m.PC = op.Location

	case OpReturn:
		if len(m.CallStack) == 0 {
			m.status = failure("return with empty call stack")
			return
		}
		ret := m.CallStack[len(m.CallStack)-1]
		m.CallStack = m.CallStack[:len(m.CallStack)-1]
		m.PC = ret

	case OpStop:
		m.status = finished()

	case OpTrap:
		m.status = failure(op.Message)

	case OpForeignCall:
		m.processForeignCall(op)

	default:
		m.status = failure("unknown opcode")
	}
}

func (m *VM) advance() {
	m.PC++
}

func (m *VM) processBinaryField(op Op) {
	lhs := m.Registers.Get(op.LHS).Field()
	rhs := m.Registers.Get(op.RHS).Field()
	var result Value
	switch op.FieldOp {
	case FieldAdd:
		result = FromField(field.Add(lhs, rhs))
	case FieldSub:
		result = FromField(field.Sub(lhs, rhs))
	case FieldMul:
		result = FromField(field.Mul(lhs, rhs))
	case FieldDiv:
		result = FromField(field.Mul(lhs, field.Invert(rhs)))
	case FieldEquals:
		result = boolValue(field.Equal(lhs, rhs))
	default:
		m.status = failure("unknown BinaryFieldOp")
		return
	}
	m.Registers.Set(op.Dst, result)
	m.advance()
}

func (m *VM) processBinaryInt(op Op) {
	bits := op.Bits
	if bits == 0 || bits > maxBits {
		bits = maxBits
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(bits))

	lhs := new(big.Int).Mod(m.Registers.Get(op.LHS).ToUint128(), mod)
	rhs := new(big.Int).Mod(m.Registers.Get(op.RHS).ToUint128(), mod)

	switch op.IntOp {
	case IntEquals:
		m.Registers.Set(op.Dst, boolValue(lhs.Cmp(rhs) == 0))
	case IntLessThan:
		m.Registers.Set(op.Dst, boolValue(lhs.Cmp(rhs) < 0))
	case IntLessThanEquals:
		m.Registers.Set(op.Dst, boolValue(lhs.Cmp(rhs) <= 0))
	case IntAdd:
		m.Registers.Set(op.Dst, truncatedInt(new(big.Int).Add(lhs, rhs), mod))
	case IntSub:
		r := new(big.Int).Sub(lhs, rhs)
		r.Mod(r, mod)
		m.Registers.Set(op.Dst, truncatedInt(r, mod))
	case IntMul:
		m.Registers.Set(op.Dst, truncatedInt(new(big.Int).Mul(lhs, rhs), mod))
	case IntDiv:
		if rhs.Sign() == 0 {
			m.status = failure("division by zero")
			return
		}
		m.Registers.Set(op.Dst, truncatedInt(new(big.Int).Div(lhs, rhs), mod))
	case IntAnd:
		m.Registers.Set(op.Dst, truncatedInt(new(big.Int).And(lhs, rhs), mod))
	case IntOr:
		m.Registers.Set(op.Dst, truncatedInt(new(big.Int).Or(lhs, rhs), mod))
	case IntXor:
		m.Registers.Set(op.Dst, truncatedInt(new(big.Int).Xor(lhs, rhs), mod))
	case IntShl:
		m.Registers.Set(op.Dst, truncatedInt(new(big.Int).Lsh(lhs, uint(rhs.Uint64())), mod))
	case IntShr:
		m.Registers.Set(op.Dst, truncatedInt(new(big.Int).Rsh(lhs, uint(rhs.Uint64())), mod))
	default:
		m.status = failure("unknown BinaryIntOp")
		return
	}
	m.advance()
}

func truncatedInt(v, mod *big.Int) Value {
	v = new(big.Int).Mod(v, mod)
	return FromUint128(v)
}

func (m *VM) processForeignCall(op Op) {
	inputs := make([]ForeignCallOutput, 0, len(op.Inputs))
	for _, in := range op.Inputs {
		inputs = append(inputs, m.readSource(in))
	}

	if m.ForeignCallCounter >= len(m.ForeignCallResults) {
		m.status = foreignCallWait(op.Function, inputs)
		return
	}

	result := m.ForeignCallResults[m.ForeignCallCounter]
	if len(result.Values) != len(op.Destinations) {
		m.status = failure("foreign call result arity mismatch")
		return
	}
	for i, dest := range op.Destinations {
		if !m.writeDestination(dest, result.Values[i]) {
			return
		}
	}
	m.ForeignCallCounter++
	m.advance()
}

func (m *VM) readSource(src RegisterOrMemory) ForeignCallOutput {
	switch src.Kind {
	case KindRegister:
		return SingleOutput(m.Registers.Get(src.Register))
	case KindHeapArray:
		ptr := m.Registers.Get(src.Pointer).ToIndex()
		return ArrayOutput(m.Memory.ReadSlice(ptr, src.Size))
	case KindHeapVector:
		ptr := m.Registers.Get(src.Pointer).ToIndex()
		size := m.Registers.Get(src.SizeRegister).ToIndex()
		return ArrayOutput(m.Memory.ReadSlice(ptr, size))
	default:
		return SingleOutput(Value{})
	}
}

func (m *VM) writeDestination(dest RegisterOrMemory, out ForeignCallOutput) bool {
	switch dest.Kind {
	case KindRegister:
		if out.Kind != OutputSingle {
			m.status = failure("foreign call result shape mismatch: expected single value")
			return false
		}
		m.Registers.Set(dest.Register, out.Single)
		return true
	case KindHeapArray:
		if out.Kind != OutputArray || len(out.Array) != dest.Size {
			m.status = failure("foreign call result shape mismatch: expected fixed array")
			return false
		}
		ptr := m.Registers.Get(dest.Pointer).ToIndex()
		m.Memory.WriteSlice(ptr, out.Array)
		return true
	case KindHeapVector:
		if out.Kind != OutputArray {
			m.status = failure("foreign call result shape mismatch: expected vector")
			return false
		}
		ptr := m.Registers.Get(dest.Pointer).ToIndex()
		m.Memory.WriteSlice(ptr, out.Array)
		m.Registers.Set(dest.SizeRegister, FromUint64(uint64(len(out.Array))))
		return true
	default:
		m.status = failure("unknown destination kind")
		return false
	}
}
