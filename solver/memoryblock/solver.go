// Package memoryblock solves a MemoryBlock opcode: a persistent ROM/RAM
// array addressed by BlockID, with an ordered read/write trace that is
// replayed incrementally across solve-loop rounds. Grounded on the
// teacher's append-only R1C solving style (constraint/solver.go) applied to
// original_source's Block/MemoryOpSolver equivalent implied by its
// memory-block handling in acvm/src/pwg/mod.rs.
package memoryblock

import (
	"fmt"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/field"
	"github.com/vocdoni/acvm-go/solver"
	"github.com/vocdoni/acvm-go/solver/arithmetic"
)

// Solver holds one memory block's persistent contents and trace-replay
// cursor. A Solver must be reused across rounds for the same BlockID; it is
// not safe to reconstruct from scratch, since "next" tracks how far the
// trace has been replayed.
type Solver struct {
	contents map[uint64]field.Element
	next     int
}

// New returns a fresh solver for a memory block, with an empty array.
func New() *Solver {
	return &Solver{contents: make(map[uint64]field.Element)}
}

// Solve replays as much of block.Trace as can be resolved against m,
// advancing past each index that evaluates to a concrete non-negative
// integer and whose read/write can be completed. The cursor only advances
// past entries it fully resolves, so a later round can resume exactly
// where this one left off.
func (s *Solver) Solve(block *acir.MemoryBlock, m *acir.Map) (solver.Outcome, error) {
	start := s.next
	for s.next < len(block.Trace) {
		op := block.Trace[s.next]

		idxExpr := acir.Evaluate(op.Index, m)
		idxConst, ok := idxExpr.AsConstant()
		if !ok {
			return s.partialOutcome(start, solver.StalledOutcome(
				solver.ExpressionHasTooManyUnknowns{Expression: idxExpr})), nil
		}
		idx := field.ToBigInt(idxConst)
		if !idx.IsUint64() {
			return solver.Outcome{}, fmt.Errorf("memory block %d: index out of range: %s", block.ID, idx)
		}
		index := idx.Uint64()

		switch op.Kind {
		case acir.MemRead:
			value, known := s.contents[index]
			if !known {
				return solver.Outcome{}, fmt.Errorf("%w: read before write at index %d in block %d",
					acir.ErrUnsatisfiedConstraint, index, block.ID)
			}
			// Derive an equality constraint between the trace's value
			// expression and the array's recorded contents; this both
			// checks consistency and can assign an unknown witness.
			diff := op.Value
			diff.Constant = field.Sub(diff.Constant, value)
			outcome, err := arithmetic.Solve(diff, m)
			if err != nil {
				return solver.Outcome{}, err
			}
			if outcome.Kind == solver.Stalled {
				return s.partialOutcome(start, outcome), nil
			}

		case acir.MemWrite:
			valExpr := acir.Evaluate(op.Value, m)
			valConst, ok := valExpr.AsConstant()
			if !ok {
				return s.partialOutcome(start, solver.StalledOutcome(
					solver.ExpressionHasTooManyUnknowns{Expression: valExpr})), nil
			}
			s.contents[index] = valConst

		default:
			return solver.Outcome{}, fmt.Errorf("memory block %d: unknown trace op kind", block.ID)
		}

		s.next++
	}

	if s.next == len(block.Trace) {
		return solver.SolvedOutcome(), nil
	}
	return solver.InProgressOutcome(), nil
}

// partialOutcome reports InProgress if the cursor advanced at all this
// round (so the stall-detection loop doesn't treat it as a dead end), or
// the given stalled outcome if it made no progress at all.
func (s *Solver) partialOutcome(start int, stalled solver.Outcome) solver.Outcome {
	if s.next > start {
		return solver.InProgressOutcome()
	}
	return stalled
}
