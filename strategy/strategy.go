// Package strategy implements the bidding strategies that compete as bandit
// arms. Every variant shares one constructor contract: the player pool, the
// initial budget, then variant-specific parameters.
package strategy

import (
	"fmt"

	"github.com/spinonoir/online-bidding-fantasy/pool"
)

// Strategy computes bids for players, gated by roster composition. A variant
// mutates nothing outside its own state; EpsilonGreedy additionally consumes
// randomness and Reactive records its own bid history.
type Strategy interface {
	Name() string
	// CanAcquire reports whether the roster still has a slot open for the
	// player's role.
	CanAcquire(playerIndex int) bool
	// ComputeBid returns the bid amount for a player, or 0 when the
	// player's role slots are already full.
	ComputeBid(playerIndex int) float64
	Roster() *Roster
}

// Roster holds a strategy's acquisition state. Acquired preserves
// acquisition order. Budget is deliberately unchecked: an acquisition always
// goes through and may drive it negative.
type Roster struct {
	Acquired []int
	Budget   float64
}

// Acquire records a won player and pays its cost.
func (r *Roster) Acquire(playerIndex int, cost float64) {
	r.Acquired = append(r.Acquired, playerIndex)
	r.Budget -= cost
}

// core carries the state every variant needs: the pool it bids on and its
// roster. Variants own their parameters themselves.
type core struct {
	pool   *pool.Pool
	roster *Roster
}

func newCore(p *pool.Pool, budget float64) (core, error) {
	if p == nil {
		return core{}, fmt.Errorf("%w: nil player pool", pool.ErrConfiguration)
	}
	if budget <= 0 {
		return core{}, fmt.Errorf("%w: initial budget must be positive, got %v", pool.ErrConfiguration, budget)
	}
	return core{pool: p, roster: &Roster{Budget: budget}}, nil
}

func (c *core) CanAcquire(playerIndex int) bool {
	role := c.pool.Player(playerIndex).Role
	count := 0
	for _, i := range c.roster.Acquired {
		if c.pool.Player(i).Role == role {
			count++
		}
	}
	return count < c.pool.Requirement(role)
}

func (c *core) Roster() *Roster {
	return c.roster
}
