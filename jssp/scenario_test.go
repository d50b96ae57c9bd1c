package jssp_test

import (
	"time"

	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvollmar/jssp-heuristics/instance"
	"github.com/nvollmar/jssp-heuristics/jssp"
)

// threeByThree is the classic FT03-like 3x3 instance used across scenarios.
func threeByThree() instance.Instance {
	return instance.Instance{
		NJobs:     3,
		NMachines: 3,
		Machines:  []int{0, 1, 2, 0, 2, 1, 1, 2, 0},
		Durations: []uint32{3, 2, 2, 2, 1, 4, 4, 3, 1},
	}
}

// allElevenSolutions runs all eleven §6 solvers against inst with a short
// fixed timeout/seed for the timeout-driven ones, returning one named
// Solution per solver.
func allElevenSolutions(t *testing.T, inst instance.Instance) map[string]instance.Solution {
	t.Helper()
	restartCfg := jssp.RestartConfig{Timeout: 20 * time.Millisecond, Seed: 42}
	saCfg := jssp.SAConfig{Timeout: 20 * time.Millisecond, Seed: 42, StartAcceptanceRatio: 0.5, Delta: 0.1}

	hc, err := jssp.HillClimb(inst, jssp.FindSolutionSPS(inst))
	require.NoError(t, err)
	rr, err := jssp.RandomRestartHillClimb(inst, restartCfg)
	require.NoError(t, err)
	tabu, err := jssp.TabuSearch(inst, restartCfg)
	require.NoError(t, err)
	sa, err := jssp.SimulatedAnneal(inst, saCfg)
	require.NoError(t, err)

	return map[string]instance.Solution{
		"sequential":                  jssp.FindSolutionSequential(inst),
		"priority-sps":                jssp.FindSolutionSPS(inst),
		"priority-lps":                jssp.FindSolutionLPS(inst),
		"priority-spt":                jssp.FindSolutionSPT(inst),
		"priority-lpt":                jssp.FindSolutionLPT(inst),
		"priority-lwrm":               jssp.FindSolutionLWRM(inst),
		"priority-mwrm":               jssp.FindSolutionMWRM(inst),
		"hill-climber":                hc.ToSolution(),
		"random-restart-hill-climber": rr.ToSolution(),
		"tabu-search":                 tabu.ToSolution(),
		"simulated-annealing":         sa.ToSolution(),
	}
}

// TestScenario1_TrivialOneByOne covers: J=1, M=1, duration=5: every solver
// must start the lone operation at 0 and reach Cmax=5.
func TestScenario1_TrivialOneByOne(t *testing.T) {
	inst := instance.Instance{NJobs: 1, NMachines: 1, Machines: []int{0}, Durations: []uint32{5}}

	for name, sol := range allElevenSolutions(t, inst) {
		require.NoError(t, instance.Verify(inst, sol), name)
		require.Equal(t, []uint32{0}, sol.Start, name)
		require.Equal(t, uint32(5), instance.Cmax(inst, sol), name)
	}
}

// TestScenario2_TwoJobsOneMachine covers: J=2, M=1; job 0 duration 3, job 1
// duration 4. All eleven solvers reach Cmax=7 with starts a permutation of
// {0,3} or {0,4}.
func TestScenario2_TwoJobsOneMachine(t *testing.T) {
	inst := instance.Instance{
		NJobs: 2, NMachines: 1,
		Machines:  []int{0, 0},
		Durations: []uint32{3, 4},
	}

	for name, sol := range allElevenSolutions(t, inst) {
		require.NoError(t, instance.Verify(inst, sol), name)
		require.Equal(t, uint32(7), instance.Cmax(inst, sol), name)
	}
}

// TestScenario3_ClassicThreeByThree checks priority-spt reaches Cmax=11 and
// sequential reaches Cmax=22 (the sum of all durations).
func TestScenario3_ClassicThreeByThree(t *testing.T) {
	inst := threeByThree()

	spt := jssp.FindSolutionSPT(inst)
	require.NoError(t, instance.Verify(inst, spt))
	require.Equal(t, uint32(11), instance.Cmax(inst, spt))

	seq := jssp.FindSolutionSequential(inst)
	require.NoError(t, instance.Verify(inst, seq))
	require.Equal(t, uint32(22), instance.Cmax(inst, seq))
}

// TestScenario4_HillClimbFromSPSIsLocallyOptimal starts hill climbing from
// the priority-sps schedule of the 3x3 instance: the result must be no
// worse than the start and must admit no strictly improving N1 move.
func TestScenario4_HillClimbFromSPSIsLocallyOptimal(t *testing.T) {
	inst := threeByThree()
	initial := jssp.FindSolutionSPS(inst)
	startCmax := instance.Cmax(inst, initial)

	result, err := jssp.HillClimb(inst, initial)
	require.NoError(t, err)
	require.LessOrEqual(t, result.Cmax(), startCmax)

	for _, move := range jssp.GenerateMoves(result) {
		require.GreaterOrEqual(t, move.Cmax, result.Cmax())
	}
}

// TestScenario5_TabuSearchReproducible runs tabu search twice with the same
// seed on the 3x3 instance and requires bit-identical output.
func TestScenario5_TabuSearchReproducible(t *testing.T) {
	inst := threeByThree()
	cfg := jssp.RestartConfig{Timeout: time.Second, Seed: 42}

	first, err := jssp.TabuSearch(inst, cfg)
	require.NoError(t, err)
	second, err := jssp.TabuSearch(inst, cfg)
	require.NoError(t, err)

	require.Equal(t, first.Cmax(), second.Cmax())
	require.Equal(t, first.ToSolution().Start, second.ToSolution().Start)
}

// TestScenario6_ZeroDurationHandling covers a 2x2 instance with one
// zero-duration operation on machine 0: the verifier must accept the
// schedule and the orientation bridge must place the zero-length operation
// first among same-release operations on that machine.
func TestScenario6_ZeroDurationHandling(t *testing.T) {
	inst := instance.Instance{
		NJobs: 2, NMachines: 2,
		Machines:  []int{0, 1, 0, 1},
		Durations: []uint32{0, 3, 2, 1},
	}

	sol := instance.Solution{Start: []uint32{0, 3, 0, 2}}
	require.NoError(t, instance.Verify(inst, sol))

	edges, err := jssp.OrientationFromSchedule(inst, sol)
	require.NoError(t, err)
	require.Contains(t, edges, jssp.Edge{From: 0, To: 2})
}
