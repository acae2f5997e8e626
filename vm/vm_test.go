package vm

import "testing"

func TestAddSingleStep(t *testing.T) {
	prog := []Op{
		{Kind: OpBinaryField, FieldOp: FieldAdd, LHS: 0, RHS: 1, Dst: 2},
		{Kind: OpStop},
	}
	m := New(prog, []Value{FromUint64(3), FromUint64(4)})
	status := m.Run()
	if status.Kind != StatusFinished {
		t.Fatalf("expected Finished, got %v", status)
	}
	got := m.Registers.Get(2)
	if got.ToUint64() != 7 {
		t.Fatalf("expected 7, got %d", got.ToUint64())
	}
}

func TestJumpIfOpcode(t *testing.T) {
	prog := []Op{
		{Kind: OpJumpIf, Condition: 0, Location: 3},
		{Kind: OpConst, Dst: 1, Value: FromUint64(99)},
		{Kind: OpStop},
		{Kind: OpConst, Dst: 1, Value: FromUint64(1)},
		{Kind: OpStop},
	}
	m := New(prog, []Value{FromUint64(1)})
	status := m.Run()
	if status.Kind != StatusFinished {
		t.Fatalf("expected Finished, got %v", status)
	}
	if m.Registers.Get(1).ToUint64() != 1 {
		t.Fatalf("expected jump taken, register 1 == 1, got %d", m.Registers.Get(1).ToUint64())
	}
}

func TestStoreLoadOpcode(t *testing.T) {
	prog := []Op{
		{Kind: OpConst, Dst: 0, Value: FromUint64(0)},    // pointer
		{Kind: OpConst, Dst: 1, Value: FromUint64(123)},  // value
		{Kind: OpStore, DestinationPointer: 0, Src: 1},
		{Kind: OpLoad, SourcePointer: 0, Dst: 2},
		{Kind: OpStop},
	}
	m := New(prog, nil)
	status := m.Run()
	if status.Kind != StatusFinished {
		t.Fatalf("expected Finished, got %v", status)
	}
	if m.Registers.Get(2).ToUint64() != 123 {
		t.Fatalf("expected 123, got %d", m.Registers.Get(2).ToUint64())
	}
}

func TestCallAndReturn(t *testing.T) {
	prog := []Op{
		{Kind: OpCall, Location: 3},
		{Kind: OpConst, Dst: 0, Value: FromUint64(1)},
		{Kind: OpStop},
		{Kind: OpConst, Dst: 0, Value: FromUint64(2)},
		{Kind: OpReturn},
	}
	m := New(prog, nil)
	status := m.Run()
	if status.Kind != StatusFinished {
		t.Fatalf("expected Finished, got %v", status)
	}
	if m.Registers.Get(0).ToUint64() != 1 {
		t.Fatalf("expected register 0 == 1 after call returns and falls through, got %d",
			m.Registers.Get(0).ToUint64())
	}
}

// TestForeignCallRoundtrip models a "double" foreign function: the VM
// suspends requesting it, the caller resolves it, and execution resumes
// with the doubled value written back.
func TestForeignCallRoundtrip(t *testing.T) {
	prog := []Op{
		{
			Kind:         OpForeignCall,
			Function:     "double",
			Inputs:       []RegisterOrMemory{{Kind: KindRegister, Register: 0}},
			Destinations: []RegisterOrMemory{{Kind: KindRegister, Register: 1}},
		},
		{Kind: OpStop},
	}
	m := New(prog, []Value{FromUint64(21)})

	status := m.Run()
	if status.Kind != StatusForeignCallWait {
		t.Fatalf("expected ForeignCallWait, got %v", status)
	}
	if status.Function != "double" {
		t.Fatalf("expected function 'double', got %q", status.Function)
	}
	if len(status.Inputs) != 1 || status.Inputs[0].Single.ToUint64() != 21 {
		t.Fatalf("expected input [21], got %v", status.Inputs)
	}

	m.PushForeignCallResult(ForeignCallResult{
		Values: []ForeignCallOutput{SingleOutput(FromUint64(42))},
	})

	status = m.Run()
	if status.Kind != StatusFinished {
		t.Fatalf("expected Finished after resume, got %v", status)
	}
	if m.Registers.Get(1).ToUint64() != 42 {
		t.Fatalf("expected register 1 == 42, got %d", m.Registers.Get(1).ToUint64())
	}
}

func TestForeignCallResultArityMismatchFails(t *testing.T) {
	prog := []Op{
		{
			Kind:         OpForeignCall,
			Function:     "double",
			Inputs:       []RegisterOrMemory{{Kind: KindRegister, Register: 0}},
			Destinations: []RegisterOrMemory{{Kind: KindRegister, Register: 1}},
		},
		{Kind: OpStop},
	}
	m := New(prog, []Value{FromUint64(21)})
	m.Run()
	m.PushForeignCallResult(ForeignCallResult{Values: []ForeignCallOutput{}})

	status := m.Run()
	if status.Kind != StatusFailure {
		t.Fatalf("expected Failure on arity mismatch, got %v", status)
	}
}

func TestTrapOpcode(t *testing.T) {
	prog := []Op{
		{Kind: OpTrap, Message: "assertion failed"},
	}
	m := New(prog, nil)
	status := m.Run()
	if status.Kind != StatusFailure {
		t.Fatalf("expected Failure, got %v", status)
	}
	if status.Message != "assertion failed" {
		t.Fatalf("expected message 'assertion failed', got %q", status.Message)
	}
}
