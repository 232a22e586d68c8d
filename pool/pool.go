package pool

import (
	"errors"
	"fmt"
)

// ErrConfiguration covers every way a pool or its generation config can be
// malformed: non-positive counts, bad ranges, invalid player records.
var ErrConfiguration = errors.New("invalid configuration")

type Role string

const (
	Forward    Role = "forward"
	Midfielder Role = "midfielder"
	Defender   Role = "defender"
	Goalkeeper Role = "goalkeeper"
)

// Roles lists every role a player record may carry, in draw order.
var Roles = []Role{Forward, Midfielder, Defender, Goalkeeper}

// Requirements caps how many players of each role a single roster may hold.
type Requirements map[Role]int

func DefaultRequirements() Requirements {
	return Requirements{
		Forward:    3,
		Midfielder: 4,
		Defender:   3,
		Goalkeeper: 1,
	}
}

// Player is an immutable auction lot, identified by its index in the pool.
type Player struct {
	Value float64
	Cost  float64
	Role  Role
}

// Pool is the ordered sequence of players up for auction plus the roster
// composition rules in force. Players are never mutated after construction.
type Pool struct {
	players []Player
	reqs    Requirements
}

func New(players []Player, reqs Requirements) (*Pool, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("%w: pool must contain at least one player", ErrConfiguration)
	}
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: no role requirements", ErrConfiguration)
	}
	for i, p := range players {
		if p.Value <= 0 {
			return nil, fmt.Errorf("%w: player %d has non-positive value %v", ErrConfiguration, i, p.Value)
		}
		if p.Cost <= 0 {
			return nil, fmt.Errorf("%w: player %d has non-positive cost %v", ErrConfiguration, i, p.Cost)
		}
		if _, ok := reqs[p.Role]; !ok {
			return nil, fmt.Errorf("%w: player %d has unknown role %q", ErrConfiguration, i, p.Role)
		}
	}

	ps := make([]Player, len(players))
	copy(ps, players)
	rs := make(Requirements, len(reqs))
	for role, slots := range reqs {
		rs[role] = slots
	}
	return &Pool{players: ps, reqs: rs}, nil
}

func (p *Pool) Len() int {
	return len(p.players)
}

func (p *Pool) Player(i int) Player {
	return p.players[i]
}

// Requirement returns the slot cap for a role. Roles are validated at
// construction so a lookup never misses for a player drawn from this pool.
func (p *Pool) Requirement(r Role) int {
	return p.reqs[r]
}
