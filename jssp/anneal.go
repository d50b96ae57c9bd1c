package jssp

import (
	"math"
	"time"

	"github.com/nvollmar/jssp-heuristics/instance"
	"github.com/nvollmar/jssp-heuristics/jssplog"
	"github.com/nvollmar/jssp-heuristics/rng"
)

// SAConfig configures SimulatedAnneal.
type SAConfig struct {
	Timeout              time.Duration
	Seed                 uint64
	StartAcceptanceRatio float64
	Delta                float64
	Logger               jssplog.Logger
}

func (c SAConfig) logger() jssplog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return jssplog.Null{}
}

// SimulatedAnneal repeatedly runs an inner annealing pass to timeout,
// keeping the best state across passes. Each inner pass draws its own
// initial temperature estimate and cools after each temperature level via
// T <- T / (1 + T*ln(1+Delta)/(3*sigma)), where sigma is the population
// variance of the Cmax values accepted at that level;
// it stops early if that variance hits zero (the chain has settled).
//
// Complexity: O(passes * equilibrium_iterations * J*M) amortized.
func SimulatedAnneal(inst instance.Instance, cfg SAConfig) (*State, error) {
	log := cfg.logger()
	src := rng.New(cfg.Seed)

	var passes uint64
	best, err := StateFromSolution(inst, GenerateRandomSolution(inst, rng.DeriveSource(src, passes)))
	if err != nil {
		return nil, err
	}
	passes++

	start := time.Now()
	globalIteration := 0
	for time.Since(start) < cfg.Timeout {
		improved, err := runAnnealingPass(inst, rng.DeriveSource(src, passes), &globalIteration, start, cfg, log)
		if err != nil {
			return nil, err
		}
		passes++
		if improved.Cmax() < best.Cmax() {
			best = improved
			log.Debug("improved global best to %d (pass %d)", best.Cmax(), globalIteration)
		}
		globalIteration++
	}

	log.Info("stopping due to timeout at %d (pass %d)", best.Cmax(), globalIteration)
	return best, nil
}

func runAnnealingPass(inst instance.Instance, src *rng.Source, globalIteration *int, start time.Time, cfg SAConfig, log jssplog.Logger) (*State, error) {
	current, err := StateFromSolution(inst, GenerateRandomSolution(inst, src))
	if err != nil {
		return nil, err
	}
	currentNeighborhood := GenerateMoves(current)
	best := current

	equilibriumIterations := inst.NOps() - inst.NMachines
	if equilibriumIterations < 1 {
		equilibriumIterations = 1
	}

	temperature, err := estimateInitialTemperature(inst, src, cfg.StartAcceptanceRatio)
	if err != nil {
		return nil, err
	}
	log.Debug("starting pass with cmax %d, temp %g, iterations %d", current.Cmax(), temperature, equilibriumIterations)

	for time.Since(start) < cfg.Timeout {
		acceptedMoveCosts := []uint32{current.Cmax()}

		for inner := 0; inner < equilibriumIterations; inner++ {
			if time.Since(start) >= cfg.Timeout {
				break
			}

			move, ok := chooseRandomMove(currentNeighborhood, src)
			if !ok {
				log.Debug("did not find move, aborting pass (iteration %d)", *globalIteration)
				break
			}

			costDelta := float64(move.Cmax) - float64(current.Cmax())
			acceptanceThreshold := 1.0
			if costDelta > 0 {
				acceptanceThreshold = math.Min(1.0, math.Exp(-costDelta/temperature))
			}

			if src.Float64() < acceptanceThreshold {
				next, err := current.ApplySwap(move.Swap.A, move.Swap.B)
				if err != nil {
					return nil, err
				}
				current = next
				currentNeighborhood = GenerateMoves(current)
				acceptedMoveCosts = append(acceptedMoveCosts, current.Cmax())
			}
		}

		if current.Cmax() < best.Cmax() {
			best = current
			log.Debug("improved local best to %d (iteration %d, temp %g)", best.Cmax(), *globalIteration, temperature)
		}

		sigma := math.Abs(populationVariance(acceptedMoveCosts))
		if sigma == 0 {
			log.Debug("stopping pass, no variation at temp %g, best %d", temperature, best.Cmax())
			return best, nil
		}
		temperature = temperature / (1 + temperature*math.Log(1+cfg.Delta)/(3*sigma))

		*globalIteration++
	}

	return best, nil
}

// chooseRandomMove picks a uniformly random move from moves, reporting
// false if moves is empty.
func chooseRandomMove(moves []EvaluatedMove, src *rng.Source) (EvaluatedMove, bool) {
	if len(moves) == 0 {
		return EvaluatedMove{}, false
	}
	return moves[src.IntN(len(moves))], true
}

// populationVariance returns the population variance (sum of squared
// deviations from the mean, divided by count) of values — the historical
// name "std_dev" in the source this is derived from notwithstanding,
// the cooling schedule consumes this quantity directly as sigma.
func populationVariance(values []uint32) float64 {
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	mean := sum / float64(len(values))

	var sumSquaredDelta float64
	for _, v := range values {
		d := float64(v) - mean
		sumSquaredDelta += d * d
	}
	return sumSquaredDelta / float64(len(values))
}

// estimateInitialTemperature implements the Aarts/van Laarhoven estimate:
// sample 30 independent random states, draw one random N1 move from each,
// partition the resulting Cmax deltas into improving and worsening, and
// solve for the temperature at which the configured start acceptance ratio
// of worsening moves would be accepted.
func estimateInitialTemperature(inst instance.Instance, src *rng.Source, startAcceptanceRatio float64) (float64, error) {
	const trials = 30

	var deltas []float64
	for i := 0; i < trials; i++ {
		state, err := StateFromSolution(inst, GenerateRandomSolution(inst, src))
		if err != nil {
			return 0, err
		}
		moves := GenerateMoves(state)
		chosen, ok := chooseRandomMove(moves, src)
		if !ok {
			continue
		}
		deltas = append(deltas, float64(int64(chosen.Cmax)-int64(state.Cmax())))
	}

	var improvingCount, worseningCount float64
	var worseningSum float64
	for _, d := range deltas {
		if d <= 0 {
			improvingCount++
		} else {
			worseningCount++
			worseningSum += d
		}
	}

	avgPositiveDelta := worseningSum / worseningCount
	x0 := startAcceptanceRatio
	m1, m2 := improvingCount, worseningCount

	return avgPositiveDelta / math.Log(m2/(m2*x0-(1-x0)*m1)), nil
}
