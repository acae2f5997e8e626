// Package solver defines the shared outcome and error vocabulary every
// per-opcode solver (arithmetic, memory-block, directive, blackbox) reports
// back to the pwg round loop. Grounded on original_source's
// acvm/src/pwg/mod.rs OpcodeResolution/OpcodeNotSolvable/OpcodeResolutionError
// enums, rewritten as Go interfaces and typed errors since Go has no closed
// sum types.
package solver

import "fmt"

// StallReason explains why an opcode could not make progress this round.
// Implementations: MissingAssignment, ExpressionHasTooManyUnknowns.
type StallReason interface {
	error
	stallReason()
}

// MissingAssignment names a witness the opcode needed but that has no
// assignment yet.
type MissingAssignment struct {
	Witness fmt.Stringer
}

func (m MissingAssignment) Error() string {
	return fmt.Sprintf("missing assignment for witness %s", m.Witness)
}
func (MissingAssignment) stallReason() {}

// ExpressionHasTooManyUnknowns reports that an arithmetic expression has
// more than one free witness and so cannot be solved by substitution alone.
type ExpressionHasTooManyUnknowns struct {
	Expression fmt.Stringer
}

func (e ExpressionHasTooManyUnknowns) Error() string {
	return fmt.Sprintf("expression has too many unknowns: %s", e.Expression)
}
func (ExpressionHasTooManyUnknowns) stallReason() {}

// OutcomeKind discriminates what happened when a solver attempted an
// opcode this round.
type OutcomeKind uint8

const (
	// Solved means the opcode is fully resolved and can be dropped from
	// the remaining list.
	Solved OutcomeKind = iota
	// Stalled means the opcode could not progress this round but may be
	// retryable after other opcodes assign more witnesses.
	Stalled
	// InProgress means the opcode made partial progress (e.g. a
	// memory-block trace partially replayed) and should be retried next
	// round without being treated as a stall for fixpoint-detection
	// purposes.
	InProgress
	// Suspended means the opcode is a bytecode opcode that has
	// suspended awaiting a foreign call.
	Suspended
)

// Outcome is what a per-opcode solver reports back to the round loop.
type Outcome struct {
	Kind   OutcomeKind
	Reason StallReason // set when Kind == Stalled
}

func SolvedOutcome() Outcome                  { return Outcome{Kind: Solved} }
func InProgressOutcome() Outcome              { return Outcome{Kind: InProgress} }
func SuspendedOutcome() Outcome               { return Outcome{Kind: Suspended} }
func StalledOutcome(reason StallReason) Outcome {
	return Outcome{Kind: Stalled, Reason: reason}
}

// OpcodeNotSolvable wraps a StallReason as an error. The pwg round loop
// returns it when a full round makes no progress, carrying the first stall
// reason seen in that round.
type OpcodeNotSolvable struct {
	Reason StallReason
}

func (e OpcodeNotSolvable) Error() string {
	return fmt.Sprintf("opcode not solvable: %s", e.Reason)
}
func (e OpcodeNotSolvable) Unwrap() error { return e.Reason }

// UnsupportedBlackBoxFunc reports that the active backend does not
// implement a requested blackbox function.
type UnsupportedBlackBoxFunc struct {
	Name string
}

func (e UnsupportedBlackBoxFunc) Error() string {
	return fmt.Sprintf("unsupported blackbox function: %s", e.Name)
}

// BlackBoxFunctionFailed reports that a blackbox function's own
// preconditions were violated (e.g. a signature that doesn't parse).
type BlackBoxFunctionFailed struct {
	Name   string
	Reason string
}

func (e BlackBoxFunctionFailed) Error() string {
	return fmt.Sprintf("blackbox function %s failed: %s", e.Name, e.Reason)
}

// BytecodeFailed reports that an unconstrained-VM program reached a Trap or
// otherwise terminated in failure, or returned a malformed foreign-call
// response.
type BytecodeFailed struct {
	Message string
}

func (e BytecodeFailed) Error() string {
	return fmt.Sprintf("bytecode opcode failed: %s", e.Message)
}
