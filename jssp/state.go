package jssp

import "github.com/nvollmar/jssp-heuristics/instance"

// State is the disjunctive graph for one instance under one orientation of
// its machine-conflict edges: the fixed intra-job precedence arcs plus that
// orientation fully determine release times, tails, path times, and Cmax.
//
// A State is immutable once constructed. ApplySwap returns a new State.
type State struct {
	Inst instance.Instance

	OrientedConflictEdges []Edge
	PrecedenceEdges       []Edge

	// Pre/Succ arrays are indexed by OpID; noOp marks "no such neighbor".
	PreJob      []instance.OpID
	SuccJob     []instance.OpID
	PreMachine  []instance.OpID
	SuccMachine []instance.OpID

	ReleaseTimes []uint32
	TailTimes    []uint32
	PathTimes    []uint32
	CmaxVal      uint32
}

// Construct builds a State from inst and an orientation of its
// machine-conflict edges. It fails with ErrDuplicateMachinePredecessor if
// some operation has more than one machine-predecessor, or
// ErrCyclicOrientation if precedence plus the orientation is cyclic.
//
// Complexity: O(J*M).
func Construct(inst instance.Instance, orientedConflictEdges []Edge) (*State, error) {
	precedenceEdges := precedenceEdgesOf(inst)

	preJob, succJob, err := preSuccFromEdges(inst.NOps(), precedenceEdges)
	if err != nil {
		return nil, err
	}
	preMachine, succMachine, err := preSuccFromEdges(inst.NOps(), orientedConflictEdges)
	if err != nil {
		return nil, err
	}

	release, err := releaseTimes(inst, preJob, succJob, preMachine, succMachine)
	if err != nil {
		return nil, err
	}
	tail := tailTimes(inst, preJob, succJob, preMachine, succMachine)

	path := make([]uint32, inst.NOps())
	var cmax uint32
	for id := range path {
		path[id] = release[id] + tail[id]
		if path[id] > cmax {
			cmax = path[id]
		}
	}

	return &State{
		Inst:                  inst,
		OrientedConflictEdges: orientedConflictEdges,
		PrecedenceEdges:       precedenceEdges,
		PreJob:                preJob,
		SuccJob:               succJob,
		PreMachine:            preMachine,
		SuccMachine:           succMachine,
		ReleaseTimes:          release,
		TailTimes:             tail,
		PathTimes:             path,
		CmaxVal:               cmax,
	}, nil
}

// precedenceEdgesOf returns the fixed J*(M-1) intra-job arcs of inst.
func precedenceEdgesOf(inst instance.Instance) []Edge {
	edges := make([]Edge, 0, inst.NJobs*(inst.NMachines-1))
	for j := 0; j < inst.NJobs; j++ {
		for o := 1; o < inst.NMachines; o++ {
			op := inst.OpToID(instance.Op{Job: j, Pos: o})
			pre := inst.OpToID(instance.Op{Job: j, Pos: o - 1})
			edges = append(edges, Edge{From: pre, To: op})
		}
	}
	return edges
}

// preSuccFromEdges builds the predecessor/successor arrays implied by
// edges, where each edge (v,w) means v immediately precedes w. Fails if any
// operation would receive more than one predecessor or more than one
// successor (the conflict-edge set must form disjoint simple paths).
func preSuccFromEdges(n int, edges []Edge) ([]instance.OpID, []instance.OpID, error) {
	pre := make([]instance.OpID, n)
	succ := make([]instance.OpID, n)
	for i := range pre {
		pre[i] = noOp
		succ[i] = noOp
	}

	for _, e := range edges {
		if pre[e.To] != noOp || succ[e.From] != noOp {
			return nil, nil, ErrDuplicateMachinePredecessor
		}
		pre[e.To] = e.From
		succ[e.From] = e.To
	}
	return pre, succ, nil
}

// releaseTimes computes the longest-path-from-source length for every
// operation. A node is enqueued only once both its job- and
// machine-predecessors are known, which yields a topologically correct
// labeling in one pass without revisiting. A cycle is detected if any node
// remains unlabeled once the queue drains.
func releaseTimes(inst instance.Instance, preJob, succJob, preMachine, succMachine []instance.OpID) ([]uint32, error) {
	n := inst.NOps()
	release := make([]uint32, n)
	labelled := make([]bool, n)
	labelledCount := 0

	queue := make([]instance.OpID, 0, n)
	for op := 0; op < n; op++ {
		if preJob[op] == noOp && preMachine[op] == noOp {
			queue = append(queue, op)
		}
	}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		var preJobEnd, preMachineEnd uint32
		if p := preJob[node]; p != noOp {
			preJobEnd = release[p] + inst.Durations[p]
		}
		if p := preMachine[node]; p != noOp {
			preMachineEnd = release[p] + inst.Durations[p]
		}
		r := preJobEnd
		if preMachineEnd > r {
			r = preMachineEnd
		}
		release[node] = r
		labelled[node] = true
		labelledCount++

		if s := succJob[node]; s != noOp {
			if pm := preMachine[s]; pm == noOp || labelled[pm] {
				queue = append(queue, s)
			}
		}
		if s := succMachine[node]; s != noOp {
			if pj := preJob[s]; pj == noOp || labelled[pj] {
				queue = append(queue, s)
			}
		}
	}

	if labelledCount != n {
		return nil, ErrCyclicOrientation
	}
	return release, nil
}

// tailTimes computes, for every operation, its own duration plus the
// longest path to any sink. Mirrors releaseTimes with direction reversed.
func tailTimes(inst instance.Instance, preJob, succJob, preMachine, succMachine []instance.OpID) []uint32 {
	n := inst.NOps()
	tail := make([]uint32, n)
	labelled := make([]bool, n)

	queue := make([]instance.OpID, 0, n)
	for op := 0; op < n; op++ {
		if succJob[op] == noOp && succMachine[op] == noOp {
			queue = append(queue, op)
		}
	}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		var succJobTail, succMachineTail uint32
		if s := succJob[node]; s != noOp {
			succJobTail = tail[s]
		}
		if s := succMachine[node]; s != noOp {
			succMachineTail = tail[s]
		}
		t := succJobTail
		if succMachineTail > t {
			t = succMachineTail
		}
		t += inst.Durations[node]
		tail[node] = t
		labelled[node] = true

		if p := preJob[node]; p != noOp {
			if sm := succMachine[p]; sm == noOp || labelled[sm] {
				queue = append(queue, p)
			}
		}
		if p := preMachine[node]; p != noOp {
			if sj := succJob[p]; sj == noOp || labelled[sj] {
				queue = append(queue, p)
			}
		}
	}

	return tail
}

// Cmax returns the makespan of the state.
//
// Complexity: O(1).
func (s *State) Cmax() uint32 {
	return s.CmaxVal
}

// ToSolution returns the schedule this state induces: ReleaseTimes used
// verbatim as start times.
//
// Complexity: O(J*M).
func (s *State) ToSolution() instance.Solution {
	start := make([]uint32, len(s.ReleaseTimes))
	copy(start, s.ReleaseTimes)
	return instance.Solution{Start: start}
}

// IsCritical reports whether id lies on some longest (critical) path.
//
// Complexity: O(1).
func (s *State) IsCritical(id instance.OpID) bool {
	return s.PathTimes[id] == s.CmaxVal
}

// end returns release_times[id]+duration[id], the earliest time id frees
// its machine/job chain.
func (s *State) end(id instance.OpID) uint32 {
	return s.ReleaseTimes[id] + s.Inst.Durations[id]
}

// timesAfterSwap computes the four incremental quantities needed by
// CmaxAfterSwap and ApplySwap, per the formulas in §4.2: a missing
// neighbor contributes 0.
func (s *State) timesAfterSwap(a, b instance.OpID) (aNewRelease, aNewTail, bNewRelease, bNewTail uint32) {
	var preMachineAEnd, preJobBEnd, preJobAEnd uint32
	if p := s.PreMachine[a]; p != noOp {
		preMachineAEnd = s.end(p)
	}
	if p := s.PreJob[b]; p != noOp {
		preJobBEnd = s.end(p)
	}
	if p := s.PreJob[a]; p != noOp {
		preJobAEnd = s.end(p)
	}

	var succMachineBTail, succJobATail, succJobBTail uint32
	if n := s.SuccMachine[b]; n != noOp {
		succMachineBTail = s.TailTimes[n]
	}
	if n := s.SuccJob[a]; n != noOp {
		succJobATail = s.TailTimes[n]
	}
	if n := s.SuccJob[b]; n != noOp {
		succJobBTail = s.TailTimes[n]
	}

	bNewRelease = maxU32(preMachineAEnd, preJobBEnd)
	bNewEnd := bNewRelease + s.Inst.Durations[b]
	aNewRelease = maxU32(bNewEnd, preJobAEnd)
	aNewTail = maxU32(succMachineBTail, succJobATail) + s.Inst.Durations[a]
	bNewTail = maxU32(aNewTail, succJobBTail) + s.Inst.Durations[b]
	return
}

// CmaxAfterSwap is an O(1) estimator for the Cmax that applying swap (a,b)
// would produce. It is exact when the critical path passes through a or b,
// and a valid lower bound on the true post-swap Cmax otherwise.
//
// Complexity: O(1).
func (s *State) CmaxAfterSwap(a, b instance.OpID) uint32 {
	aNewRelease, aNewTail, bNewRelease, bNewTail := s.timesAfterSwap(a, b)
	return maxU32(bNewRelease+bNewTail, aNewRelease+aNewTail)
}

// ApplySwap reverses the machine edge (a,b) — a precondition is that (a,b)
// is an edge of OrientedConflictEdges — and returns the resulting State
// with heads, tails, paths, and Cmax fully recomputed.
//
// Complexity: O(J*M).
func (s *State) ApplySwap(a, b instance.OpID) (*State, error) {
	newEdges := make([]Edge, len(s.OrientedConflictEdges))
	for i, e := range s.OrientedConflictEdges {
		switch {
		case e.From == a && e.To == b:
			newEdges[i] = Edge{From: b, To: a}
		case e.To == a:
			newEdges[i] = Edge{From: e.From, To: b}
		case e.From == b:
			newEdges[i] = Edge{From: a, To: e.To}
		default:
			newEdges[i] = e
		}
	}

	preMachineNew := append([]instance.OpID(nil), s.PreMachine...)
	succMachineNew := append([]instance.OpID(nil), s.SuccMachine...)

	if p := s.PreMachine[a]; p != noOp {
		succMachineNew[p] = b
	}
	if n := s.SuccMachine[b]; n != noOp {
		preMachineNew[n] = a
	}
	preMachineNew[a] = b
	succMachineNew[a] = s.SuccMachine[b]
	preMachineNew[b] = s.PreMachine[a]
	succMachineNew[b] = a

	release, err := releaseTimes(s.Inst, s.PreJob, s.SuccJob, preMachineNew, succMachineNew)
	if err != nil {
		return nil, err
	}
	tail := tailTimes(s.Inst, s.PreJob, s.SuccJob, preMachineNew, succMachineNew)

	path := make([]uint32, s.Inst.NOps())
	var cmax uint32
	for id := range path {
		path[id] = release[id] + tail[id]
		if path[id] > cmax {
			cmax = path[id]
		}
	}

	return &State{
		Inst:                  s.Inst,
		OrientedConflictEdges: newEdges,
		PrecedenceEdges:       s.PrecedenceEdges,
		PreJob:                s.PreJob,
		SuccJob:               s.SuccJob,
		PreMachine:            preMachineNew,
		SuccMachine:           succMachineNew,
		ReleaseTimes:          release,
		TailTimes:             tail,
		PathTimes:             path,
		CmaxVal:               cmax,
	}, nil
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}
