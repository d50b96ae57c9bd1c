package instance_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvollmar/jssp-heuristics/instance"
)

// threeByThree mirrors the canonical end-to-end scenario instance: 3 jobs,
// 3 machines.
func threeByThree() instance.Instance {
	inst := instance.Instance{
		NJobs:     3,
		NMachines: 3,
		Machines:  []int{0, 1, 2, 0, 2, 1, 1, 2, 0},
		Durations: []uint32{3, 2, 2, 2, 1, 4, 4, 3, 1},
	}
	return inst
}

// TestVerify_TrivialFeasible covers scenario 1: J=1, M=1, duration=5.
func TestVerify_TrivialFeasible(t *testing.T) {
	inst := instance.Instance{NJobs: 1, NMachines: 1, Machines: []int{0}, Durations: []uint32{5}}
	sol := instance.Solution{Start: []uint32{0}}
	require.NoError(t, instance.Verify(inst, sol))
	require.Equal(t, uint32(5), instance.Cmax(inst, sol))
}

// TestVerify_PrecedenceViolation starts a job's second operation before its
// first has finished.
func TestVerify_PrecedenceViolation(t *testing.T) {
	inst := instance.Instance{
		NJobs: 1, NMachines: 2,
		Machines:  []int{0, 1},
		Durations: []uint32{5, 1},
	}
	sol := instance.Solution{Start: []uint32{0, 4}}
	err := instance.Verify(inst, sol)
	require.ErrorIs(t, err, instance.ErrInfeasible)
}

// TestVerify_MachineOverlap schedules two different jobs' operations on the
// same machine at overlapping times.
func TestVerify_MachineOverlap(t *testing.T) {
	inst := instance.Instance{
		NJobs: 2, NMachines: 1,
		Machines:  []int{0, 0},
		Durations: []uint32{3, 4},
	}
	sol := instance.Solution{Start: []uint32{0, 2}}
	err := instance.Verify(inst, sol)
	require.ErrorIs(t, err, instance.ErrInfeasible)
}

// TestVerify_SharedEndpointZeroDurationAllowed checks that a zero-length
// operation may share an endpoint with a neighboring interval on the same
// machine without being flagged as an overlap.
func TestVerify_SharedEndpointZeroDurationAllowed(t *testing.T) {
	inst := instance.Instance{
		NJobs: 2, NMachines: 1,
		Machines:  []int{0, 0},
		Durations: []uint32{3, 0},
	}
	sol := instance.Solution{Start: []uint32{0, 3}}
	require.NoError(t, instance.Verify(inst, sol))
}

// TestVerify_TwoJobsOneMachine covers scenario 2: both feasible orderings
// reach Cmax=7.
func TestVerify_TwoJobsOneMachine(t *testing.T) {
	inst := instance.Instance{
		NJobs: 2, NMachines: 1,
		Machines:  []int{0, 0},
		Durations: []uint32{3, 4},
	}

	solA := instance.Solution{Start: []uint32{0, 3}}
	require.NoError(t, instance.Verify(inst, solA))
	require.Equal(t, uint32(7), instance.Cmax(inst, solA))

	solB := instance.Solution{Start: []uint32{4, 0}}
	require.NoError(t, instance.Verify(inst, solB))
	require.Equal(t, uint32(7), instance.Cmax(inst, solB))
}

// TestVerify_SequentialThreeByThree covers the "sequential" baseline from
// scenario 3: every operation runs back-to-back on a single timeline, giving
// Cmax equal to the sum of all durations.
func TestVerify_SequentialThreeByThree(t *testing.T) {
	inst := threeByThree()

	var sol instance.Solution
	sol.Start = make([]uint32, inst.NOps())
	var clock uint32
	for id := 0; id < inst.NOps(); id++ {
		sol.Start[id] = clock
		clock += inst.Durations[id]
	}

	require.NoError(t, instance.Verify(inst, sol))
	require.Equal(t, uint32(22), instance.Cmax(inst, sol))
}

// TestVerify_WrongLength rejects a Solution whose Start slice doesn't match
// the instance's operation count.
func TestVerify_WrongLength(t *testing.T) {
	inst := threeByThree()
	sol := instance.Solution{Start: []uint32{0, 1, 2}}
	require.ErrorIs(t, instance.Verify(inst, sol), instance.ErrInfeasible)
}

// TestWrite_Format checks the exact stdout contract: a Cmax line followed by
// one start-time line per job.
func TestWrite_Format(t *testing.T) {
	inst := instance.Instance{
		NJobs: 2, NMachines: 2,
		Machines:  []int{0, 1, 1, 0},
		Durations: []uint32{3, 2, 1, 4},
	}
	sol := instance.Solution{Start: []uint32{0, 3, 0, 1}}

	var buf bytes.Buffer
	require.NoError(t, instance.Write(&buf, inst, sol))
	require.Equal(t, "5\n0 3\n0 1\n", buf.String())
}
