package strategy

import (
	"github.com/spinonoir/online-bidding-fantasy/pool"
)

// ValueBased always bids 80% of a player's value.
type ValueBased struct {
	core
}

func NewValueBased(p *pool.Pool, budget float64) (*ValueBased, error) {
	c, err := newCore(p, budget)
	if err != nil {
		return nil, err
	}
	return &ValueBased{core: c}, nil
}

func (s *ValueBased) Name() string { return "value-based" }

func (s *ValueBased) ComputeBid(playerIndex int) float64 {
	if !s.CanAcquire(playerIndex) {
		return 0
	}
	return 0.8 * s.pool.Player(playerIndex).Value
}

// CompositionLP always bids 90% of a player's value. Despite the name it
// runs no optimizer; the constant multiplier is the contract.
type CompositionLP struct {
	core
}

func NewCompositionLP(p *pool.Pool, budget float64) (*CompositionLP, error) {
	c, err := newCore(p, budget)
	if err != nil {
		return nil, err
	}
	return &CompositionLP{core: c}, nil
}

func (s *CompositionLP) Name() string { return "composition-lp" }

func (s *CompositionLP) ComputeBid(playerIndex int) float64 {
	if !s.CanAcquire(playerIndex) {
		return 0
	}
	return 0.9 * s.pool.Player(playerIndex).Value
}
