package jssp

import (
	"github.com/nvollmar/jssp-heuristics/instance"
	"github.com/nvollmar/jssp-heuristics/rng"
)

// GenerateRandomSolution produces a feasible schedule by repeatedly picking
// a uniformly random ready operation (one whose job-predecessor, if any,
// has already been scheduled) and placing it at the earliest time its job
// and machine are both free. The distribution over feasible schedules is
// not required to be uniform.
//
// Complexity: O(J*M) expected (ready list removal is O(1) via swap-pop).
func GenerateRandomSolution(inst instance.Instance, src *rng.Source) instance.Solution {
	start := make([]uint32, inst.NOps())
	machineNextRelease := make([]uint32, inst.NMachines)
	jobNextRelease := make([]uint32, inst.NJobs)

	ready := make([]instance.OpID, 0, inst.NJobs)
	for j := 0; j < inst.NJobs; j++ {
		ready = append(ready, inst.OpToID(instance.Op{Job: j, Pos: 0}))
	}

	for len(ready) > 0 {
		idx := src.IntN(len(ready))
		chosen := ready[idx]
		ready[idx] = ready[len(ready)-1]
		ready = ready[:len(ready)-1]

		op := inst.OpFromID(chosen)
		m := inst.Machines[chosen]
		release := maxU32(jobNextRelease[op.Job], machineNextRelease[m])
		finish := release + inst.Durations[chosen]

		start[chosen] = release
		machineNextRelease[m] = finish
		jobNextRelease[op.Job] = finish

		if op.Pos < inst.NMachines-1 {
			ready = append(ready, inst.OpToID(instance.Op{Job: op.Job, Pos: op.Pos + 1}))
		}
	}

	return instance.Solution{Start: start}
}
