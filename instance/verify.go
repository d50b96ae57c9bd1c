package instance

import (
	"fmt"
	"sort"
)

// Verify checks the three §6 predicates against sol and returns a
// descriptive error satisfying errors.Is(err, ErrInfeasible) on the first
// violation found, or nil if sol is feasible for inst.
//
//  1. Job precedence: for every job, operation o+1 starts at or after
//     operation o's end.
//  2. Machine exclusivity: no two operations on the same machine overlap;
//     intervals [s,s+d) must be disjoint, except that zero-length
//     operations may share an endpoint with a neighboring interval.
//  3. Non-negative start times (structurally guaranteed by the uint32
//     Solution.Start type, checked here for documentation parity with §6).
//
// Unlike the reference implementation this check is NOT narrowed by an
// "other_job != job && other_op != op" double-difference filter — that
// filter silently skips same-job/different-op and same-machine/different-job
// comparisons that happen to share one coordinate, which under-checks
// overlaps. This implementation sorts each machine's operations by start
// time (zero-length operations first on a tie) and compares every
// neighboring pair, which detects an overlap between any two operations on
// the machine, per the §6 contract.
//
// Complexity: O(J*M*log(J)) — a per-machine sort dominates the per-job scan.
func Verify(inst Instance, sol Solution) error {
	if len(sol.Start) != inst.NOps() {
		return fmt.Errorf("instance: solution has %d start times, want %d: %w", len(sol.Start), inst.NOps(), ErrInfeasible)
	}

	if err := verifyPrecedence(inst, sol); err != nil {
		return err
	}
	if err := verifyMachineExclusivity(inst, sol); err != nil {
		return err
	}
	return nil
}

func verifyPrecedence(inst Instance, sol Solution) error {
	for j := 0; j < inst.NJobs; j++ {
		for o := 1; o < inst.NMachines; o++ {
			prevID := inst.OpToID(Op{Job: j, Pos: o - 1})
			curID := inst.OpToID(Op{Job: j, Pos: o})
			prevEnd := sol.Start[prevID] + inst.Durations[prevID]
			if sol.Start[curID] < prevEnd {
				return fmt.Errorf(
					"instance: precedence violation in job %d: op %d ends at %d but op %d starts at %d: %w",
					j, o-1, prevEnd, o, sol.Start[curID], ErrInfeasible,
				)
			}
		}
	}
	return nil
}

func verifyMachineExclusivity(inst Instance, sol Solution) error {
	byMachine := make([][]OpID, inst.NMachines)
	for id := 0; id < inst.NOps(); id++ {
		m := inst.Machines[id]
		byMachine[m] = append(byMachine[m], id)
	}

	for m, ids := range byMachine {
		sort.Slice(ids, func(i, k int) bool {
			si, sk := sol.Start[ids[i]], sol.Start[ids[k]]
			if si != sk {
				return si < sk
			}
			return inst.Durations[ids[i]] < inst.Durations[ids[k]]
		})

		for i := 1; i < len(ids); i++ {
			prev, cur := ids[i-1], ids[i]
			prevEnd := sol.Start[prev] + inst.Durations[prev]
			if prevEnd > sol.Start[cur] {
				return fmt.Errorf(
					"instance: overlap on machine %d: op %d [%d,%d) overlaps op %d [%d,%d): %w",
					m, prev, sol.Start[prev], prevEnd, cur, sol.Start[cur], sol.Start[cur]+inst.Durations[cur], ErrInfeasible,
				)
			}
		}
	}
	return nil
}
