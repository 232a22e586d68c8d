package main

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/spinonoir/online-bidding-fantasy/auction"
	"github.com/spinonoir/online-bidding-fantasy/config"
	"github.com/spinonoir/online-bidding-fantasy/experiments"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	seed := flag.Uint64("seed", 0, "Random seed (overrides config)")
	rounds := flag.Int("rounds", 0, "Number of auction rounds (overrides config)")
	sweep := flag.String("sweep", "", "Comma-separated seeds to sweep instead of a single run")
	debug := flag.Bool("debug", false, "Enable per-round debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *rounds > 0 {
		cfg.Rounds = *rounds
	}

	if *sweep != "" {
		seeds, err := parseSeeds(*sweep)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to parse sweep seeds")
		}
		if err := experiments.RunSeedSweep(cfg, seeds); err != nil {
			log.Fatal().Err(err).Msg("seed sweep failed")
		}
		return
	}

	log.Info().Uint64("seed", cfg.Seed).Msg("starting simulation")

	recorder := auction.NewRecorder()
	results, err := experiments.RunOnce(cfg, cfg.Seed, recorder)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	for i, s := range results.Strategies {
		log.Info().
			Int("arm", i).
			Str("strategy", s.Name).
			Ints("acquired", s.Acquired).
			Float64("remaining_budget", s.Budget).
			Int("pulls", results.Arms[i].Count).
			Float64("mean_reward", results.Arms[i].MeanReward).
			Msg("final strategy state")
	}

	writer, err := auction.NewWriter(cfg.Output.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create output writer")
	}
	if err := writer.WriteRoundRecords(recorder.Records()); err != nil {
		log.Fatal().Err(err).Msg("failed to write round records")
	}
	if err := writer.WriteResults(results); err != nil {
		log.Fatal().Err(err).Msg("failed to write results")
	}
	log.Info().Str("dir", writer.Dir()).Msg("simulation complete")
}

func parseSeeds(s string) ([]uint64, error) {
	parts := strings.Split(s, ",")
	seeds := make([]uint64, 0, len(parts))
	for _, part := range parts {
		seed, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}
