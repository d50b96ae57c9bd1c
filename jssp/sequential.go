package jssp

import "github.com/nvollmar/jssp-heuristics/instance"

// FindSolutionSequential is the trivial worst-case baseline: every
// operation runs back-to-back on a single timeline, in job-major order.
//
// Complexity: O(J*M).
func FindSolutionSequential(inst instance.Instance) instance.Solution {
	start := make([]uint32, inst.NOps())

	var clock uint32
	for j := 0; j < inst.NJobs; j++ {
		for o := 0; o < inst.NMachines; o++ {
			id := inst.OpToID(instance.Op{Job: j, Pos: o})
			start[id] = clock
			clock += inst.Durations[id]
		}
	}

	return instance.Solution{Start: start}
}
