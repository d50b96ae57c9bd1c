package instance_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nvollmar/jssp-heuristics/instance"
)

// TestParse_TrivialOneByOne parses the smallest possible instance: one job,
// one machine, one operation.
func TestParse_TrivialOneByOne(t *testing.T) {
	inst, err := instance.Parse(strings.NewReader("1 1\n0 5\n"))
	require.NoError(t, err)
	require.Equal(t, 1, inst.NJobs)
	require.Equal(t, 1, inst.NMachines)
	require.Equal(t, []uint32{5}, inst.Durations)
	require.Equal(t, []int{0}, inst.Machines)
}

// TestParse_ThreeByThree checks row-major OpID layout across a square instance.
func TestParse_ThreeByThree(t *testing.T) {
	const text = "3 3\n" +
		"0 3 1 2 2 2\n" +
		"0 2 2 1 1 4\n" +
		"1 4 2 3 0 1\n"
	inst, err := instance.Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, 3, inst.NJobs)
	require.Equal(t, 3, inst.NMachines)

	job1op1 := inst.OpToID(instance.Op{Job: 1, Pos: 1})
	require.Equal(t, 2, inst.Machines[job1op1])
	require.Equal(t, uint32(1), inst.Durations[job1op1])
}

// TestParse_RejectsBadPrelude covers a prelude line with a non-integer token.
func TestParse_RejectsBadPrelude(t *testing.T) {
	_, err := instance.Parse(strings.NewReader("not-a-number 1\n"))
	require.ErrorIs(t, err, instance.ErrParse)
}

// TestParse_RejectsMissingRow covers a truncated job list.
func TestParse_RejectsMissingRow(t *testing.T) {
	_, err := instance.Parse(strings.NewReader("2 1\n0 5\n"))
	require.ErrorIs(t, err, instance.ErrParse)
}

// TestParse_RejectsWrongFieldCount covers a row with too few operation fields.
func TestParse_RejectsWrongFieldCount(t *testing.T) {
	_, err := instance.Parse(strings.NewReader("1 2\n0 5\n"))
	require.ErrorIs(t, err, instance.ErrParse)
}

// TestParse_RejectsMachineOutOfRange covers an out-of-bounds machine index.
func TestParse_RejectsMachineOutOfRange(t *testing.T) {
	_, err := instance.Parse(strings.NewReader("1 1\n1 5\n"))
	require.ErrorIs(t, err, instance.ErrParse)
}

// TestOpIDRoundTrip checks OpFromID(OpToID(op)) == op and the inverse for
// every coordinate in a handful of shapes.
func TestOpIDRoundTrip(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {2, 3}, {5, 5}, {7, 1}, {1, 9}} {
		inst := instance.Instance{NJobs: shape[0], NMachines: shape[1]}
		for _, op := range inst.Ops() {
			id := inst.OpToID(op)
			require.Equal(t, op, inst.OpFromID(id))
		}
		for _, id := range inst.OpIDs() {
			op := inst.OpFromID(id)
			require.Equal(t, id, inst.OpToID(op))
		}
	}
}
