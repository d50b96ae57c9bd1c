package jssp

import (
	"fmt"
	"sort"

	"github.com/nvollmar/jssp-heuristics/instance"
)

// opOrdering compares a and b for machine-sequencing purposes: earlier
// release time wins; on a release tie, a zero-duration operation goes
// before a positive-duration one; if both are zero-duration, ties break by
// operation id; if both are positive-duration with an equal release, the
// two operations genuinely overlap and neither can be ordered before the
// other — this is reported as 0. For two distinct operations 0 therefore
// means exactly this overlap case, which OrientationFromSchedule reports as
// ErrOverlapUndetermined.
//
// Returns -1 (a before b), 0 (tie/overlap), or 1 (a after b).
func opOrdering(a, b instance.OpID, release []uint32, durations []uint32) int {
	ra, rb := release[a], release[b]
	switch {
	case ra < rb:
		return -1
	case ra > rb:
		return 1
	}

	da, db := durations[a], durations[b]
	switch {
	case da == 0 && db != 0:
		return -1
	case da != 0 && db == 0:
		return 1
	case da == 0 && db == 0:
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	default:
		return 0
	}
}

// OrientationFromSchedule converts a start-time schedule into an
// orientation of machine-conflict edges: for each machine, sort its
// operations by start time (see opOrdering for the tie-breaking rule) and
// emit consecutive pairs as edges. Returns ErrOverlapUndetermined if two
// positive-duration operations share a release time on the same machine —
// the schedule does not determine which goes first.
//
// Complexity: O(J*M*log(J)).
func OrientationFromSchedule(inst instance.Instance, sol instance.Solution) ([]Edge, error) {
	byMachine := make([][]instance.OpID, inst.NMachines)
	for id := 0; id < inst.NOps(); id++ {
		m := inst.Machines[id]
		byMachine[m] = append(byMachine[m], id)
	}

	var edges []Edge
	for m, ops := range byMachine {
		sort.SliceStable(ops, func(i, k int) bool {
			return opOrdering(ops[i], ops[k], sol.Start, inst.Durations) < 0
		})

		for i := 1; i < len(ops); i++ {
			if opOrdering(ops[i-1], ops[i], sol.Start, inst.Durations) == 0 {
				return nil, fmt.Errorf(
					"jssp: machine %d: operations %d and %d both release at %d with positive duration: %w",
					m, ops[i-1], ops[i], sol.Start[ops[i-1]], ErrOverlapUndetermined,
				)
			}
			edges = append(edges, Edge{From: ops[i-1], To: ops[i]})
		}
	}

	return edges, nil
}

// StateFromSolution builds a State by deriving an orientation from sol and
// constructing the disjunctive graph over it.
//
// Complexity: O(J*M*log(J)).
func StateFromSolution(inst instance.Instance, sol instance.Solution) (*State, error) {
	edges, err := OrientationFromSchedule(inst, sol)
	if err != nil {
		return nil, err
	}
	return Construct(inst, edges)
}
