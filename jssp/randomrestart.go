package jssp

import (
	"time"

	"github.com/nvollmar/jssp-heuristics/instance"
	"github.com/nvollmar/jssp-heuristics/jssplog"
	"github.com/nvollmar/jssp-heuristics/rng"
)

// RestartConfig configures RandomRestartHillClimb and TabuSearch.
type RestartConfig struct {
	Timeout time.Duration
	Seed    uint64
	Logger  jssplog.Logger
}

func (c RestartConfig) logger() jssplog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return jssplog.Null{}
}

// RandomRestartHillClimb hill-climbs from a random schedule; whenever no
// improving N1 move exists, it discards the current state and starts over
// from a fresh random schedule drawn from its own derived sub-stream,
// tracking the best state seen across restarts. Runs until cfg.Timeout
// elapses.
//
// Complexity: O(restarts * J*M) amortized.
func RandomRestartHillClimb(inst instance.Instance, cfg RestartConfig) (*State, error) {
	log := cfg.logger()
	src := rng.New(cfg.Seed)

	var restarts uint64
	current, err := StateFromSolution(inst, GenerateRandomSolution(inst, rng.DeriveSource(src, restarts)))
	if err != nil {
		return nil, err
	}
	restarts++
	best := current

	start := time.Now()
	iteration := 0
	for time.Since(start) < cfg.Timeout {
		move := FindMove(current, func(b *EvaluatedMove, candidate EvaluatedMove) bool {
			return b == nil || candidate.Cmax < b.Cmax
		}, SearchExhaustive)

		if move != nil && move.Cmax < current.Cmax() {
			next, err := current.ApplySwap(move.Swap.A, move.Swap.B)
			if err != nil {
				return nil, err
			}
			current = next
			log.Debug("improved to %d (iteration %d)", current.Cmax(), iteration)
		} else {
			current, err = StateFromSolution(inst, GenerateRandomSolution(inst, rng.DeriveSource(src, restarts)))
			if err != nil {
				return nil, err
			}
			restarts++
		}

		if current.Cmax() < best.Cmax() {
			best = current
			log.Debug("new global best %d (iteration %d)", best.Cmax(), iteration)
		}
		iteration++
	}

	log.Info("stopping due to timeout at %d (iteration %d)", best.Cmax(), iteration)
	return best, nil
}
