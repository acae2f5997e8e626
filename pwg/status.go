package pwg

import "github.com/vocdoni/acvm-go/solver"

// StatusKind discriminates the outcome of a Solve() or Finalize() call.
type StatusKind uint8

const (
	// StatusSolved means every opcode resolved; the witness map is
	// complete and Finalize can be called.
	StatusSolved StatusKind = iota
	// StatusInProgress is returned mid-round only internally; callers
	// never observe it as a terminal Solve() result.
	StatusInProgress
	// StatusStalled means a full round made no progress on any
	// remaining opcode: the circuit's witnesses cannot be derived
	// further without more information. Solve returns it together with
	// a solver.OpcodeNotSolvable error.
	StatusStalled
	// StatusForeignCallWait means a bytecode opcode suspended awaiting
	// a foreign call; call PendingForeignCall and ResolveForeignCall,
	// then Solve again to resume.
	StatusForeignCallWait
)

// Status reports what happened on the most recent Solve() call.
type Status struct {
	Kind   StatusKind
	Reason solver.StallReason // set when Kind == StatusStalled
}

func (s Status) String() string {
	switch s.Kind {
	case StatusSolved:
		return "Solved"
	case StatusInProgress:
		return "InProgress"
	case StatusStalled:
		return "Stalled(" + s.Reason.Error() + ")"
	case StatusForeignCallWait:
		return "ForeignCallWait"
	default:
		return "Unknown"
	}
}
