// Package auction runs the repeated single-item auction: each round the
// bandit picks a strategy, the strategy bids on the next player in pool
// order, and winning (strictly outbidding the synthetic competitive bid)
// feeds reward 1 back to the bandit and the player to the roster.
package auction

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/spinonoir/online-bidding-fantasy/bandit"
	"github.com/spinonoir/online-bidding-fantasy/pool"
	"github.com/spinonoir/online-bidding-fantasy/strategy"
)

// ErrRoundsExceedPool reports a simulation asked to run more rounds than
// there are players to auction. The run aborts before the first round.
var ErrRoundsExceedPool = errors.New("rounds exceed pool length")

// CompetitiveBidFn produces the synthetic market bid for a player value.
type CompetitiveBidFn func(rng *rand.Rand, value float64) float64

// DefaultCompetitiveBid draws uniformly from 70% to 120% of player value.
func DefaultCompetitiveBid(rng *rand.Rand, value float64) float64 {
	return value * (0.7 + 0.5*rng.Float64())
}

type Option func(s *Simulator)

// WithRounds overrides the round count, which defaults to the pool length.
func WithRounds(rounds int) Option {
	return func(s *Simulator) {
		if rounds > 0 {
			s.rounds = rounds
		}
	}
}

// WithCompetitiveBidFn replaces the competitive bid draw, letting tests pin
// exact market bids.
func WithCompetitiveBidFn(fn CompetitiveBidFn) Option {
	return func(s *Simulator) {
		if fn != nil {
			s.compete = fn
		}
	}
}

// WithCollector routes per-round records to a collector.
func WithCollector(c Collector) Option {
	return func(s *Simulator) {
		if c != nil {
			s.collector = c
		}
	}
}

// Simulator owns one simulation run. All state mutation happens inside Run,
// strictly sequentially; the rng is the single source of non-determinism.
type Simulator struct {
	bandit     *bandit.UCB1
	pool       *pool.Pool
	strategies []strategy.Strategy
	rng        *rand.Rand
	rounds     int
	compete    CompetitiveBidFn
	collector  Collector
}

func New(b *bandit.UCB1, p *pool.Pool, strategies []strategy.Strategy, rng *rand.Rand, options ...Option) (*Simulator, error) {
	if b == nil || p == nil || rng == nil {
		return nil, fmt.Errorf("%w: simulator needs a bandit, a pool and a random source", pool.ErrConfiguration)
	}
	if len(strategies) == 0 {
		return nil, fmt.Errorf("%w: no strategies registered", pool.ErrConfiguration)
	}
	if b.Arms() != len(strategies) {
		return nil, fmt.Errorf("%w: bandit has %d arms for %d strategies", pool.ErrConfiguration, b.Arms(), len(strategies))
	}

	s := &Simulator{
		bandit:     b,
		pool:       p,
		strategies: strategies,
		rng:        rng,
		rounds:     p.Len(),
		compete:    DefaultCompetitiveBid,
		collector:  dummyCollector{},
	}
	for _, option := range options {
		option(s)
	}
	return s, nil
}

// StrategyResult is a strategy's final roster state.
type StrategyResult struct {
	Name     string
	Acquired []int
	Budget   float64
}

// ArmResult is an arm's final bandit statistics.
type ArmResult struct {
	Count      int
	MeanReward float64
}

type Results struct {
	Strategies []StrategyResult
	Arms       []ArmResult
}

// Run executes the round loop and returns the final per-strategy and
// per-arm state. Any error aborts the whole run with no partial results.
func (s *Simulator) Run() (Results, error) {
	if s.rounds > s.pool.Len() {
		return Results{}, fmt.Errorf("%w: %d rounds over %d players", ErrRoundsExceedPool, s.rounds, s.pool.Len())
	}

	for i := 0; i < s.rounds; i++ {
		player := s.pool.Player(i)
		competitive := s.compete(s.rng, player.Value)

		arm := s.bandit.SelectArm()
		bid := s.strategies[arm].ComputeBid(i)

		// Strict inequality: a tie loses.
		reward := 0.0
		if bid > competitive {
			reward = 1.0
		}
		s.bandit.Update(arm, reward)
		if reward == 1.0 {
			s.strategies[arm].Roster().Acquire(i, player.Cost)
		}

		s.collector.AddRound(RoundRecord{
			Round:          i,
			PlayerIndex:    i,
			Arm:            arm,
			Bid:            bid,
			CompetitiveBid: competitive,
			Reward:         reward,
		})
		log.Debug().
			Int("round", i).
			Str("strategy", s.strategies[arm].Name()).
			Float64("bid", bid).
			Float64("competitive", competitive).
			Float64("reward", reward).
			Msg("round complete")
	}

	return s.results(), nil
}

func (s *Simulator) results() Results {
	results := Results{
		Strategies: make([]StrategyResult, len(s.strategies)),
		Arms:       make([]ArmResult, s.bandit.Arms()),
	}
	for i, st := range s.strategies {
		roster := st.Roster()
		acquired := make([]int, len(roster.Acquired))
		copy(acquired, roster.Acquired)
		results.Strategies[i] = StrategyResult{
			Name:     st.Name(),
			Acquired: acquired,
			Budget:   roster.Budget,
		}
	}
	counts := s.bandit.Counts()
	means := s.bandit.Means()
	for i := range results.Arms {
		results.Arms[i] = ArmResult{Count: counts[i], MeanReward: means[i]}
	}
	return results
}
