package pool

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
)

// GenerateConfig drives synthetic pool generation. Values are drawn as whole
// numbers from ValueRange inclusive; cost is the value scaled by a uniform
// factor from CostFactorRange, rounded down.
type GenerateConfig struct {
	Count           int
	ValueRange      [2]float64
	CostFactorRange [2]float64
}

// Generate produces a pool of Count random players under the default role
// requirements. The same rng seed reproduces the same pool exactly.
func Generate(cfg GenerateConfig, rng *rand.Rand) (*Pool, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("%w: player count must be positive, got %d", ErrConfiguration, cfg.Count)
	}
	if cfg.ValueRange[0] <= 0 || cfg.ValueRange[1] < cfg.ValueRange[0] {
		return nil, fmt.Errorf("%w: bad value range %v", ErrConfiguration, cfg.ValueRange)
	}
	if cfg.CostFactorRange[0] <= 0 || cfg.CostFactorRange[1] < cfg.CostFactorRange[0] {
		return nil, fmt.Errorf("%w: bad cost factor range %v", ErrConfiguration, cfg.CostFactorRange)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrConfiguration)
	}

	lo := int(cfg.ValueRange[0])
	hi := int(cfg.ValueRange[1])
	players := make([]Player, cfg.Count)
	for i := range players {
		value := float64(lo + rng.Intn(hi-lo+1))
		factor := uniform(rng, cfg.CostFactorRange[0], cfg.CostFactorRange[1])
		players[i] = Player{
			Value: value,
			Cost:  math.Floor(value * factor),
			Role:  Roles[rng.Intn(len(Roles))],
		}
	}
	return New(players, DefaultRequirements())
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
