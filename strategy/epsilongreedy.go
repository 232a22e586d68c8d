package strategy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/spinonoir/online-bidding-fantasy/pool"
)

// EpsilonGreedy bids value * exploitationFactor most of the time and, with
// probability epsilon, explores with a uniform bid in [0, value).
type EpsilonGreedy struct {
	core
	epsilon            float64
	exploitationFactor float64
	rng                *rand.Rand
}

func NewEpsilonGreedy(p *pool.Pool, budget, epsilon, exploitationFactor float64, rng *rand.Rand) (*EpsilonGreedy, error) {
	c, err := newCore(p, budget)
	if err != nil {
		return nil, err
	}
	if epsilon < 0 || epsilon > 1 {
		return nil, fmt.Errorf("%w: epsilon must be in [0,1], got %v", pool.ErrConfiguration, epsilon)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil random source", pool.ErrConfiguration)
	}
	return &EpsilonGreedy{
		core:               c,
		epsilon:            epsilon,
		exploitationFactor: exploitationFactor,
		rng:                rng,
	}, nil
}

func (s *EpsilonGreedy) Name() string { return "epsilon-greedy" }

func (s *EpsilonGreedy) ComputeBid(playerIndex int) float64 {
	if !s.CanAcquire(playerIndex) {
		return 0
	}
	value := s.pool.Player(playerIndex).Value
	if s.rng.Float64() < s.epsilon {
		return value * s.rng.Float64()
	}
	return value * s.exploitationFactor
}
