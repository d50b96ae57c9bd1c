package jssp

import "github.com/nvollmar/jssp-heuristics/instance"

// ChooseFunc picks the index (into candidates) of the operation a priority
// rule selects among the operations tied for earliest availability on the
// bottleneck machine.
type ChooseFunc func(inst instance.Instance, candidates []instance.OpID) int

// FindSolution runs the shared Giffler-Thompson-style non-delay dispatch
// loop: repeatedly find the ready operation with the earliest completion
// time, restrict to ready operations on its machine that could still start
// no later than that completion, and let chooseNext break the tie.
//
// Complexity: O(J*M) dispatch steps, each O(|ready|) to scan candidates.
func FindSolution(inst instance.Instance, chooseNext ChooseFunc) instance.Solution {
	start := make([]uint32, inst.NOps())
	machineNextRelease := make([]uint32, inst.NMachines)
	jobNextRelease := make([]uint32, inst.NJobs)

	ready := make([]instance.OpID, 0, inst.NJobs)
	for j := 0; j < inst.NJobs; j++ {
		ready = append(ready, inst.OpToID(instance.Op{Job: j, Pos: 0}))
	}

	for len(ready) > 0 {
		earliestOp, earliestCompletion := earliestCompletionCandidate(inst, ready, jobNextRelease, machineNextRelease)
		targetMachine := inst.Machines[earliestOp]

		candidates := make([]instance.OpID, 0, len(ready))
		for _, op := range ready {
			if inst.Machines[op] != targetMachine {
				continue
			}
			j := inst.OpFromID(op).Job
			if jobNextRelease[j] <= earliestCompletion {
				candidates = append(candidates, op)
			}
		}

		chosenIdx := chooseNext(inst, candidates)
		chosen := candidates[chosenIdx]

		opCoord := inst.OpFromID(chosen)
		m := inst.Machines[chosen]
		release := maxU32(jobNextRelease[opCoord.Job], machineNextRelease[m])
		finish := release + inst.Durations[chosen]

		start[chosen] = release
		machineNextRelease[m] = finish
		jobNextRelease[opCoord.Job] = finish

		ready = removeOp(ready, chosen)
		if opCoord.Pos < inst.NMachines-1 {
			ready = append(ready, inst.OpToID(instance.Op{Job: opCoord.Job, Pos: opCoord.Pos + 1}))
		}
	}

	return instance.Solution{Start: start}
}

func earliestCompletionCandidate(inst instance.Instance, ready []instance.OpID, jobNextRelease, machineNextRelease []uint32) (instance.OpID, uint32) {
	best := ready[0]
	bestCompletion := completionOf(inst, best, jobNextRelease, machineNextRelease)
	for _, op := range ready[1:] {
		completion := completionOf(inst, op, jobNextRelease, machineNextRelease)
		if completion < bestCompletion || (completion == bestCompletion && op < best) {
			best, bestCompletion = op, completion
		}
	}
	return best, bestCompletion
}

func completionOf(inst instance.Instance, op instance.OpID, jobNextRelease, machineNextRelease []uint32) uint32 {
	j := inst.OpFromID(op).Job
	m := inst.Machines[op]
	return maxU32(jobNextRelease[j], machineNextRelease[m]) + inst.Durations[op]
}

// removeOp returns ready with the first occurrence of op removed,
// preserving the relative order of the remaining elements.
func removeOp(ready []instance.OpID, op instance.OpID) []instance.OpID {
	for i, v := range ready {
		if v == op {
			return append(ready[:i:i], ready[i+1:]...)
		}
	}
	return ready
}

func workRemaining(inst instance.Instance, job, pos int) uint32 {
	var total uint32
	for o := pos; o < inst.NMachines; o++ {
		total += inst.Durations[inst.OpToID(instance.Op{Job: job, Pos: o})]
	}
	return total
}

// argBest picks the index into candidates whose key tuple is smallest
// (maximize=false) or largest (maximize=true) under lexicographic order.
func argBest(candidates []instance.OpID, maximize bool, key func(instance.OpID) [3]int64) int {
	best := 0
	bestKey := key(candidates[0])
	for i := 1; i < len(candidates); i++ {
		k := key(candidates[i])
		less := lexLess(k, bestKey)
		if maximize {
			less = lexLess(bestKey, k)
		}
		if less {
			best, bestKey = i, k
		}
	}
	return best
}

func lexLess(a, b [3]int64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// FindSolutionSPS is the "shortest processing sequence" dispatcher:
// minimize (operation position, job id).
func FindSolutionSPS(inst instance.Instance) instance.Solution {
	return FindSolution(inst, func(inst instance.Instance, candidates []instance.OpID) int {
		return argBest(candidates, false, func(op instance.OpID) [3]int64 {
			c := inst.OpFromID(op)
			return [3]int64{int64(c.Pos), int64(c.Job), 0}
		})
	})
}

// FindSolutionLPS maximizes (operation position, job id).
func FindSolutionLPS(inst instance.Instance) instance.Solution {
	return FindSolution(inst, func(inst instance.Instance, candidates []instance.OpID) int {
		return argBest(candidates, true, func(op instance.OpID) [3]int64 {
			c := inst.OpFromID(op)
			return [3]int64{int64(c.Pos), int64(c.Job), 0}
		})
	})
}

// FindSolutionSPT "shortest processing time": minimize (duration, job id,
// operation position).
func FindSolutionSPT(inst instance.Instance) instance.Solution {
	return FindSolution(inst, func(inst instance.Instance, candidates []instance.OpID) int {
		return argBest(candidates, false, func(op instance.OpID) [3]int64 {
			c := inst.OpFromID(op)
			return [3]int64{int64(inst.Durations[op]), int64(c.Job), int64(c.Pos)}
		})
	})
}

// FindSolutionLPT "longest processing time": maximize (duration, job id,
// operation position).
func FindSolutionLPT(inst instance.Instance) instance.Solution {
	return FindSolution(inst, func(inst instance.Instance, candidates []instance.OpID) int {
		return argBest(candidates, true, func(op instance.OpID) [3]int64 {
			c := inst.OpFromID(op)
			return [3]int64{int64(inst.Durations[op]), int64(c.Job), int64(c.Pos)}
		})
	})
}

// FindSolutionLWRM "least work remaining": minimize (remaining work in the
// job from this operation onward, job id, operation position).
func FindSolutionLWRM(inst instance.Instance) instance.Solution {
	return FindSolution(inst, func(inst instance.Instance, candidates []instance.OpID) int {
		return argBest(candidates, false, func(op instance.OpID) [3]int64 {
			c := inst.OpFromID(op)
			return [3]int64{int64(workRemaining(inst, c.Job, c.Pos)), int64(c.Job), int64(c.Pos)}
		})
	})
}

// FindSolutionMWRM "most work remaining": maximize the same key as LWRM.
func FindSolutionMWRM(inst instance.Instance) instance.Solution {
	return FindSolution(inst, func(inst instance.Instance, candidates []instance.OpID) int {
		return argBest(candidates, true, func(op instance.OpID) [3]int64 {
			c := inst.OpFromID(op)
			return [3]int64{int64(workRemaining(inst, c.Job, c.Pos)), int64(c.Job), int64(c.Pos)}
		})
	})
}
