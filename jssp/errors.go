package jssp

import "errors"

// Sentinel errors for the jssp package. Callers use errors.Is to branch;
// sentinels are wrapped with %w at call sites that add positional context.
var (
	// ErrCyclicOrientation indicates that precedence arcs plus a chosen
	// machine-conflict orientation form a cycle: the orientation does not
	// correspond to any feasible schedule. Construction-time invariant
	// violations like this are programmer errors — they should not occur
	// from valid code paths — and are returned rather than panicked so
	// callers at the boundary (tests, CLI) can report them cleanly.
	ErrCyclicOrientation = errors.New("jssp: precedence and machine orientation form a cycle")

	// ErrDuplicateMachinePredecessor indicates an orientation in which some
	// operation has more than one machine-predecessor, violating the
	// "each machine's conflict edges form a simple path" invariant.
	ErrDuplicateMachinePredecessor = errors.New("jssp: operation has more than one machine-predecessor")

	// ErrOverlapUndetermined indicates that two positive-duration operations
	// share a release time on the same machine while deriving an orientation
	// from a schedule: the schedule does not determine a machine ordering.
	ErrOverlapUndetermined = errors.New("jssp: schedule does not determine a machine ordering")
)
