package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Cmax returns the makespan of sol: the latest operation end time over the
// whole instance.
//
// Complexity: O(J*M).
func Cmax(inst Instance, sol Solution) uint32 {
	var cmax uint32
	for id := 0; id < inst.NOps(); id++ {
		end := sol.Start[id] + inst.Durations[id]
		if end > cmax {
			cmax = end
		}
	}
	return cmax
}

// Write renders sol in the §6 stdout contract:
//
//	Line 1:        Cmax
//	Lines 2..J+1:  job j's M start times, in operation order, space-separated
//
// Write does not flush an internal buffer beyond what bufio.Writer requires;
// callers passing an *os.File get line-buffered-free output via a final
// explicit Flush.
//
// Complexity: O(J*M).
func Write(w io.Writer, inst Instance, sol Solution) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, Cmax(inst, sol)); err != nil {
		return err
	}

	buf := make([]byte, 0, 32)
	for j := 0; j < inst.NJobs; j++ {
		for o := 0; o < inst.NMachines; o++ {
			if o > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			id := inst.OpToID(Op{Job: j, Pos: o})
			buf = strconv.AppendUint(buf[:0], uint64(sol.Start[id]), 10)
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
