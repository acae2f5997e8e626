// Package pwg drives the partial witness generator's round-based solve
// loop: repeatedly attempt every remaining opcode, retire the ones that
// resolve, and stop when either everything has resolved, the opcode list
// reaches a fixpoint with no solvable opcode left, or a bytecode opcode
// suspends awaiting a foreign call. Grounded on original_source's
// acvm/src/pwg/mod.rs ACVM::solve(), rewritten in the teacher's idiom
// (explicit Option-configured Session instead of a builder struct with
// public fields, errors.Is-friendly typed errors instead of an enum).
package pwg

import (
	"errors"
	"fmt"

	"github.com/vocdoni/acvm-go/acir"
	"github.com/vocdoni/acvm-go/solver"
	"github.com/vocdoni/acvm-go/solver/arithmetic"
	"github.com/vocdoni/acvm-go/solver/blackbox"
	"github.com/vocdoni/acvm-go/solver/directive"
	"github.com/vocdoni/acvm-go/solver/memoryblock"
	"github.com/vocdoni/acvm-go/vm"
)

// Session holds the state of one in-progress witness solve: the opcodes
// still to be resolved, one persistent solver per memory block (so a
// block's read/write trace replays incrementally across rounds), and the
// witness map being filled in.
type Session struct {
	remaining []acir.Opcode
	blocks    map[acir.BlockID]*memoryblock.Solver
	witness   *acir.Map

	pending *PendingForeignCall

	cfg config
}

// New constructs a Session over circuit's opcode list, seeded with
// initialWitness.
func New(circuit []acir.Opcode, initialWitness *acir.Map, opts ...Option) *Session {
	remaining := make([]acir.Opcode, len(circuit))
	copy(remaining, circuit)

	w := initialWitness
	if w == nil {
		w = acir.NewMap()
	}

	return &Session{
		remaining: remaining,
		blocks:    make(map[acir.BlockID]*memoryblock.Solver),
		witness:   w,
		cfg:       newConfig(opts),
	}
}

// Witness returns the session's witness map. While Solve is still in
// progress this reflects a partial assignment; once it returns
// StatusSolved, every witness referenced by the circuit is assigned.
func (s *Session) Witness() *acir.Map {
	return s.witness
}

// PendingForeignCall returns the suspended foreign call's function name and
// resolved inputs, or nil if no call is pending.
func (s *Session) PendingForeignCall() *PendingForeignCall {
	return s.pending
}

// ResolveForeignCall supplies the result for the currently pending foreign
// call and clears the suspension, so the next Solve() call resumes that
// opcode's VM from where it left off.
func (s *Session) ResolveForeignCall(result vm.ForeignCallResult) error {
	if s.pending == nil {
		return fmt.Errorf("pwg: no foreign call is pending")
	}
	idx := s.pending.opcodeIndex
	op := s.remaining[idx]
	if op.Kind != acir.OpcodeBytecode {
		return fmt.Errorf("pwg: pending opcode index %d is not a bytecode opcode", idx)
	}
	machine, err := op.Bytecode.Machine(s.witness)
	if err != nil {
		return err
	}
	machine.PushForeignCallResult(result)
	s.pending = nil
	return nil
}

// Solve drives the round loop until it solves every opcode, detects a
// fixpoint with no further progress possible, or a bytecode opcode
// suspends awaiting a foreign call. A fixpoint is reported as StatusStalled
// together with a solver.OpcodeNotSolvable error carrying the round's first
// stall reason.
func (s *Session) Solve() (Status, error) {
	if s.pending != nil {
		return Status{}, fmt.Errorf("pwg: a foreign call is pending; call ResolveForeignCall first")
	}

	for {
		if len(s.remaining) == 0 {
			return Status{Kind: StatusSolved}, nil
		}
		s.cfg.logger.Debug().Int("remaining", len(s.remaining)).Msg("round start")

		progressed := false
		var firstStall solver.StallReason
		next := s.remaining[:0]

		for i := 0; i < len(s.remaining); i++ {
			op := s.remaining[i]
			outcome, err := s.solveOne(op, i)
			if err != nil {
				s.cfg.logger.Error().Err(err).Str("kind", op.Kind.String()).Msg("opcode failed")
				return Status{}, err
			}

			switch outcome.Kind {
			case solver.Solved:
				progressed = true
				s.logOpcode(op, "solved")
				continue

			case solver.InProgress:
				progressed = true
				next = append(next, op)
				continue

			case solver.Suspended:
				// s.pending was populated by solveOne; stop the round
				// immediately and surface the suspension, preserving
				// every opcode (including this one) for resumption. The
				// pending index is this opcode's position in the compacted
				// list, which is what ResolveForeignCall looks up.
				s.logOpcode(op, "suspended")
				s.pending.opcodeIndex = len(next)
				next = append(next, s.remaining[i:]...)
				s.remaining = next
				return Status{Kind: StatusForeignCallWait}, nil

			case solver.Stalled:
				s.cfg.logger.Debug().Str("kind", op.Kind.String()).Str("reason", outcome.Reason.Error()).Msg("stalled")
				if firstStall == nil {
					firstStall = outcome.Reason
				}
				next = append(next, op)
				continue
			}
		}

		s.remaining = next

		if len(s.remaining) == 0 {
			return Status{Kind: StatusSolved}, nil
		}
		if !progressed {
			err := solver.OpcodeNotSolvable{Reason: firstStall}
			s.cfg.logger.Error().Err(err).Msg("round made no progress")
			return Status{Kind: StatusStalled, Reason: firstStall}, err
		}
	}
}

func (s *Session) solveOne(op acir.Opcode, index int) (solver.Outcome, error) {
	switch op.Kind {
	case acir.OpcodeArithmetic:
		return arithmetic.Solve(op.Arithmetic, s.witness)

	case acir.OpcodeBlackBox:
		return blackbox.Solve(op.BlackBox, s.witness, s.cfg.backend)

	case acir.OpcodeDirective:
		return directive.Solve(op.Directive, s.witness)

	case acir.OpcodeMemoryBlock:
		blk := s.blockSolver(op.MemoryBlock.ID)
		return blk.Solve(op.MemoryBlock, s.witness)

	case acir.OpcodeBytecode:
		return s.solveBytecode(op.Bytecode, index)

	default:
		return solver.Outcome{}, fmt.Errorf("pwg: unknown opcode kind %s", op.Kind)
	}
}

func (s *Session) blockSolver(id acir.BlockID) *memoryblock.Solver {
	blk, ok := s.blocks[id]
	if !ok {
		blk = memoryblock.New()
		s.blocks[id] = blk
	}
	return blk
}

func (s *Session) solveBytecode(b *acir.BytecodeOpcode, index int) (solver.Outcome, error) {
	machine, err := b.Machine(s.witness)
	if err != nil {
		var missing *acir.MissingInputError
		if errors.As(err, &missing) {
			return solver.StalledOutcome(solver.MissingAssignment{Witness: missing.Witness}), nil
		}
		return solver.Outcome{}, err
	}

	status := machine.Run()
	switch status.Kind {
	case vm.StatusFinished:
		for i, w := range b.Outputs {
			v := machine.Registers.Get(vm.RegisterIndex(i))
			if err := s.witness.Insert(w, v.Field()); err != nil {
				return solver.Outcome{}, err
			}
		}
		return solver.SolvedOutcome(), nil

	case vm.StatusFailure:
		return solver.Outcome{}, solver.BytecodeFailed{Message: status.Message}

	case vm.StatusForeignCallWait:
		s.pending = &PendingForeignCall{
			Function:    status.Function,
			Inputs:      status.Inputs,
			opcodeIndex: index,
		}
		return solver.SuspendedOutcome(), nil

	default:
		return solver.Outcome{}, fmt.Errorf("pwg: bytecode opcode left in unexpected status %s", status)
	}
}

func (s *Session) logOpcode(op acir.Opcode, event string) {
	s.cfg.logger.Debug().Str("kind", op.Kind.String()).Msg(event)
}

// Finalize returns the completed witness map. It fails if the session has
// not reached StatusSolved, or if a foreign call is still pending.
func (s *Session) Finalize() (*acir.Map, error) {
	if s.pending != nil {
		return nil, fmt.Errorf("pwg: cannot finalize: a foreign call is pending")
	}
	if len(s.remaining) != 0 {
		return nil, fmt.Errorf("pwg: cannot finalize: %d opcodes remain unsolved", len(s.remaining))
	}
	return s.witness, nil
}
