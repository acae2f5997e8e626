package pwg

import "github.com/vocdoni/acvm-go/vm"

// PendingForeignCall describes a bytecode opcode suspended awaiting a
// foreign call: the function name it wants to invoke and its resolved
// input values. The caller is expected to execute the named function out
// of band and push the result back with ResolveForeignCall.
type PendingForeignCall struct {
	Function string
	Inputs   []vm.ForeignCallOutput

	opcodeIndex int
}
