package jssp

import (
	"math"
	"time"

	"github.com/nvollmar/jssp-heuristics/instance"
	"github.com/nvollmar/jssp-heuristics/rng"
)

// TabuSearch runs N1 search with a tabu list sized per Taillard's formula, an
// aspiration criterion (a move better than the global best is always
// eligible), and a push-back penalty that discourages repeatedly swapping
// the same operation back into place. Whenever no move is found (the
// neighborhood is empty, typically on single-machine degenerate instances)
// the whole tabu state is reset from a fresh random schedule drawn from its
// own derived sub-stream. Runs until cfg.Timeout elapses.
//
// Complexity: O(iterations * J*M) amortized.
func TabuSearch(inst instance.Instance, cfg RestartConfig) (*State, error) {
	log := cfg.logger()
	src := rng.New(cfg.Seed)

	var resets uint64
	current, err := StateFromSolution(inst, GenerateRandomSolution(inst, rng.DeriveSource(src, resets)))
	if err != nil {
		return nil, err
	}
	resets++
	best := current

	n := float32(inst.NJobs)
	m := float32(inst.NMachines)
	tabuDuration := int32((n+m/2)*exp32(-n/(5*m)) + (n*m/2)*exp32(-5*m/n))

	lastSwap := make([]int32, inst.NOps())
	pushBack := make([]int32, inst.NOps())
	resetTabuState := func() {
		for i := range lastSwap {
			lastSwap[i] = math.MinInt32
			pushBack[i] = 0
		}
	}
	resetTabuState()
	var totalPushBack int32
	var maxDelta uint32

	start := time.Now()
	var iteration int32
	for time.Since(start) < cfg.Timeout {
		penaltyFactor := 0.5 * float32(maxDelta) * sqrt32(n*m)

		move := FindMove(current, func(b *EvaluatedMove, candidate EvaluatedMove) bool {
			a := candidate.Swap.A
			tabuUntil := lastSwap[a] + tabuDuration
			if iteration < tabuUntil && candidate.Cmax >= best.Cmax() {
				return false
			}

			if b == nil {
				return true
			}
			var candidatePenalty, currentPenalty float32
			if totalPushBack > 0 {
				candidatePenalty = penaltyFactor * float32(pushBack[candidate.Swap.B]) / float32(totalPushBack)
				currentPenalty = penaltyFactor * float32(pushBack[b.Swap.B]) / float32(totalPushBack)
			}
			return float32(candidate.Cmax)+candidatePenalty < float32(b.Cmax)+currentPenalty
		}, SearchExhaustive)

		if move != nil {
			a, bOp := move.Swap.A, move.Swap.B
			delta := saturatingSubU32(move.Cmax, current.Cmax())
			if delta > maxDelta {
				maxDelta = delta
			}

			next, err := current.ApplySwap(a, bOp)
			if err != nil {
				return nil, err
			}
			current = next
			lastSwap[bOp] = iteration
			pushBack[bOp]++
			totalPushBack++
			log.Debug("applied move (%d,%d) to %d (iteration %d)", a, bOp, current.Cmax(), iteration)
		} else {
			log.Debug("did not find move, resetting (iteration %d)", iteration)
			current, err = StateFromSolution(inst, GenerateRandomSolution(inst, rng.DeriveSource(src, resets)))
			if err != nil {
				return nil, err
			}
			resets++
			resetTabuState()
			totalPushBack = 0
			maxDelta = 0
		}

		if current.Cmax() < best.Cmax() {
			best = current
			log.Debug("improved best to %d (iteration %d)", best.Cmax(), iteration)
		}
		iteration++
	}

	log.Info("stopping due to timeout at %d (iteration %d)", best.Cmax(), iteration)
	return best, nil
}

func saturatingSubU32(a, b uint32) uint32 {
	if a <= b {
		return 0
	}
	return a - b
}

func exp32(x float32) float32 { return float32(math.Exp(float64(x))) }
func sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }
