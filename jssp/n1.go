package jssp

import (
	"sort"

	"github.com/nvollmar/jssp-heuristics/instance"
)

// GenerateMoves enumerates the N1 neighborhood (Van Laarhoven / Taillard):
// machine-adjacent pairs (a,b) where (a,b) is an oriented machine edge and
// both a and b lie on some critical path.
//
// The critical arc set is built by a BFS that starts from every critical
// sink (no job- and no machine-successor) and, at each node, follows one
// critical predecessor — the one opOrdering places later — so the trace
// does not branch into two arcs feeding the same node from different sides,
// which would introduce non-critical edges into the candidate set. When
// opOrdering ties the two critical predecessors, both are followed.
//
// Moves are returned in ascending (a,b) order for deterministic iteration.
//
// Complexity: O(J*M) for the trace, O(J*M*log(J*M)) to sort candidates.
func GenerateMoves(s *State) []EvaluatedMove {
	n := s.Inst.NOps()

	criticalArcs := make(map[Edge]struct{})
	queue := make([]instance.OpID, 0, n)
	for op := 0; op < n; op++ {
		if s.IsCritical(op) && s.SuccJob[op] == noOp && s.SuccMachine[op] == noOp {
			queue = append(queue, op)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		criticalPreJob := noOp
		if p := s.PreJob[current]; p != noOp && s.IsCritical(p) {
			criticalPreJob = p
		}
		criticalPreMachine := noOp
		if p := s.PreMachine[current]; p != noOp && s.IsCritical(p) {
			criticalPreMachine = p
		}

		var nexts []instance.OpID
		switch {
		case criticalPreJob != noOp && criticalPreMachine != noOp:
			switch opOrdering(criticalPreJob, criticalPreMachine, s.ReleaseTimes, s.Inst.Durations) {
			case -1:
				nexts = append(nexts, criticalPreMachine)
			case 1:
				nexts = append(nexts, criticalPreJob)
			default:
				nexts = append(nexts, criticalPreJob, criticalPreMachine)
			}
		case criticalPreJob != noOp:
			nexts = append(nexts, criticalPreJob)
		case criticalPreMachine != noOp:
			nexts = append(nexts, criticalPreMachine)
		}

		for _, next := range nexts {
			criticalArcs[Edge{From: next, To: current}] = struct{}{}
			queue = append(queue, next)
		}
	}

	orientedSet := make(map[Edge]struct{}, len(s.OrientedConflictEdges))
	for _, e := range s.OrientedConflictEdges {
		orientedSet[e] = struct{}{}
	}

	sortedArcs := make([]Edge, 0, len(criticalArcs))
	for e := range criticalArcs {
		sortedArcs = append(sortedArcs, e)
	}
	sort.Slice(sortedArcs, func(i, k int) bool {
		if sortedArcs[i].From != sortedArcs[k].From {
			return sortedArcs[i].From < sortedArcs[k].From
		}
		return sortedArcs[i].To < sortedArcs[k].To
	})

	moves := make([]EvaluatedMove, 0, len(sortedArcs))
	for _, e := range sortedArcs {
		a, b := e.From, e.To
		if s.Inst.Machines[a] != s.Inst.Machines[b] {
			continue
		}
		if _, ok := orientedSet[e]; !ok {
			continue
		}
		moves = append(moves, EvaluatedMove{Swap: SwapMove{A: a, B: b}, Cmax: s.CmaxAfterSwap(a, b)})
	}
	return moves
}

// FindMove scans the N1 neighborhood of s in iteration order, calling
// accept(best, candidate) for each; when it returns true, candidate
// becomes the new best. SearchFirst returns on the first acceptance;
// SearchExhaustive scans every candidate. Returns nil if the neighborhood
// is empty or nothing was accepted (e.g. a degenerate single-machine
// instance).
//
// Complexity: O(len(moves)) accept-function calls.
func FindMove(s *State, accept AcceptFunc, method SearchMethod) *EvaluatedMove {
	moves := GenerateMoves(s)

	var best *EvaluatedMove
	for _, candidate := range moves {
		if accept(best, candidate) {
			c := candidate
			best = &c
			if method == SearchFirst {
				break
			}
		}
	}
	return best
}
