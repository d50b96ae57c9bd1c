package jssp

import "github.com/nvollmar/jssp-heuristics/instance"

// HillClimb builds a state from initial's induced orientation, then greedily
// applies the exhaustively-best N1 move as long as it strictly improves
// Cmax, stopping at the first local optimum.
//
// Complexity: O(iterations * J*M) where iterations is until local optimality.
func HillClimb(inst instance.Instance, initial instance.Solution) (*State, error) {
	current, err := StateFromSolution(inst, initial)
	if err != nil {
		return nil, err
	}

	for {
		move := FindMove(current, func(best *EvaluatedMove, candidate EvaluatedMove) bool {
			return best == nil || candidate.Cmax < best.Cmax
		}, SearchExhaustive)

		if move == nil || move.Cmax >= current.Cmax() {
			return current, nil
		}

		next, err := current.ApplySwap(move.Swap.A, move.Swap.B)
		if err != nil {
			return nil, err
		}
		current = next
	}
}
