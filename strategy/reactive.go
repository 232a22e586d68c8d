package strategy

import (
	"github.com/spinonoir/online-bidding-fantasy/pool"
)

// Reactive anchors its first bid at value * initialBidFactor, then tracks the
// running average of its own past bids: each later bid is
// value * (avgBid/value + 0.05). Every computed non-zero bid enters the
// history, won or lost; a bid gated to 0 by a full role is not recorded.
type Reactive struct {
	core
	initialBidFactor float64
	bidSum           float64
	bidCount         int
}

func NewReactive(p *pool.Pool, budget, initialBidFactor float64) (*Reactive, error) {
	c, err := newCore(p, budget)
	if err != nil {
		return nil, err
	}
	return &Reactive{core: c, initialBidFactor: initialBidFactor}, nil
}

func (s *Reactive) Name() string { return "reactive" }

func (s *Reactive) ComputeBid(playerIndex int) float64 {
	if !s.CanAcquire(playerIndex) {
		return 0
	}
	value := s.pool.Player(playerIndex).Value

	var bid float64
	if s.bidCount == 0 {
		bid = value * s.initialBidFactor
	} else {
		avg := s.bidSum / float64(s.bidCount)
		bid = value * (avg/value + 0.05)
	}

	s.bidSum += bid
	s.bidCount++
	return bid
}
