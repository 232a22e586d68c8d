// Package config loads simulation settings from a YAML file with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Seed   uint64  `yaml:"seed"`
	Rounds int     `yaml:"rounds"` // 0 means one round per player
	Budget float64 `yaml:"budget"`
	Pool   struct {
		Count           int        `yaml:"count"`
		ValueRange      [2]float64 `yaml:"value_range"`
		CostFactorRange [2]float64 `yaml:"cost_factor_range"`
	} `yaml:"pool"`
	Strategies struct {
		Epsilon            float64 `yaml:"epsilon"`
		ExploitationFactor float64 `yaml:"exploitation_factor"`
		InitialBidFactor   float64 `yaml:"initial_bid_factor"`
	} `yaml:"strategies"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

func defaults() *Config {
	cfg := &Config{
		Seed:   1,
		Budget: 1000,
	}
	cfg.Pool.Count = 100
	cfg.Pool.ValueRange = [2]float64{80, 150}
	cfg.Pool.CostFactorRange = [2]float64{0.6, 0.9}
	cfg.Strategies.Epsilon = 0.1
	cfg.Strategies.ExploitationFactor = 0.8
	cfg.Strategies.InitialBidFactor = 1.0
	cfg.Output.Dir = "results"
	return cfg
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("SIM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse SIM_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("SIM_ROUNDS"); v != "" {
		rounds, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse SIM_ROUNDS: %w", err)
		}
		cfg.Rounds = rounds
	}
	if v := os.Getenv("SIM_BUDGET"); v != "" {
		budget, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("parse SIM_BUDGET: %w", err)
		}
		cfg.Budget = budget
	}
	if v := os.Getenv("SIM_OUTPUT_DIR"); v != "" {
		cfg.Output.Dir = v
	}

	return cfg, nil
}
