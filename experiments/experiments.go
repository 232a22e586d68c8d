// Package experiments wires full simulation runs and sweeps them across
// seeds, persisting the round records and final results as CSV.
package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/spinonoir/online-bidding-fantasy/auction"
	"github.com/spinonoir/online-bidding-fantasy/bandit"
	"github.com/spinonoir/online-bidding-fantasy/config"
	"github.com/spinonoir/online-bidding-fantasy/pool"
	"github.com/spinonoir/online-bidding-fantasy/strategy"
)

// RunOnce builds a pool, the four strategies and a fresh UCB1 bandit from
// the config, then runs one complete simulation with the given seed.
func RunOnce(cfg *config.Config, seed uint64, collector auction.Collector) (auction.Results, error) {
	rng := rand.New(rand.NewSource(seed))

	p, err := pool.Generate(pool.GenerateConfig{
		Count:           cfg.Pool.Count,
		ValueRange:      cfg.Pool.ValueRange,
		CostFactorRange: cfg.Pool.CostFactorRange,
	}, rng)
	if err != nil {
		return auction.Results{}, fmt.Errorf("generate pool: %w", err)
	}

	strategies, err := buildStrategies(cfg, p, rng)
	if err != nil {
		return auction.Results{}, err
	}

	b, err := bandit.NewUCB1(len(strategies))
	if err != nil {
		return auction.Results{}, err
	}

	options := []auction.Option{auction.WithCollector(collector)}
	if cfg.Rounds > 0 {
		options = append(options, auction.WithRounds(cfg.Rounds))
	}
	sim, err := auction.New(b, p, strategies, rng, options...)
	if err != nil {
		return auction.Results{}, err
	}
	return sim.Run()
}

func buildStrategies(cfg *config.Config, p *pool.Pool, rng *rand.Rand) ([]strategy.Strategy, error) {
	eg, err := strategy.NewEpsilonGreedy(p, cfg.Budget,
		cfg.Strategies.Epsilon, cfg.Strategies.ExploitationFactor, rng)
	if err != nil {
		return nil, err
	}
	re, err := strategy.NewReactive(p, cfg.Budget, cfg.Strategies.InitialBidFactor)
	if err != nil {
		return nil, err
	}
	vb, err := strategy.NewValueBased(p, cfg.Budget)
	if err != nil {
		return nil, err
	}
	lp, err := strategy.NewCompositionLP(p, cfg.Budget)
	if err != nil {
		return nil, err
	}
	return []strategy.Strategy{eg, re, vb, lp}, nil
}

// RunSeedSweep runs one simulation per seed and writes each run's records
// and results under the configured output directory.
func RunSeedSweep(cfg *config.Config, seeds []uint64) error {
	log.Info().Msgf("starting seed sweep over %d seeds...", len(seeds))

	for i, seed := range seeds {
		log.Info().Msgf("starting run %d of %d with seed %d...", i+1, len(seeds), seed)

		recorder := auction.NewRecorder()
		results, err := RunOnce(cfg, seed, recorder)
		if err != nil {
			return fmt.Errorf("run with seed %d: %w", seed, err)
		}

		writer, err := auction.NewWriter(cfg.Output.Dir)
		if err != nil {
			return err
		}
		if err := writer.WriteRoundRecords(recorder.Records()); err != nil {
			return err
		}
		if err := writer.WriteResults(results); err != nil {
			return err
		}

		log.Info().Msgf("completed run %d of %d, output in %s", i+1, len(seeds), writer.Dir())
	}

	log.Info().Msgf("completed seed sweep")
	return nil
}
