// Package bandit implements UCB1 arm selection over the registered bidding
// strategies.
package bandit

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoArms reports a selector built without any arms to choose from.
var ErrNoArms = errors.New("need at least one arm")

// UCB1 tracks a pull count and running mean reward per arm. Selection forces
// one pull of every arm first, then maximizes the confidence-adjusted score
// mean + sqrt(2*ln(total)/count), breaking ties by lowest arm index.
type UCB1 struct {
	counts []int
	means  []float64
}

func NewUCB1(arms int) (*UCB1, error) {
	if arms <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrNoArms, arms)
	}
	return &UCB1{
		counts: make([]int, arms),
		means:  make([]float64, arms),
	}, nil
}

func (b *UCB1) Arms() int {
	return len(b.counts)
}

// SelectArm returns the arm to play next. Any arm never pulled wins
// immediately, lowest index first, so the exploration phase visits every arm
// exactly once before scores are compared.
func (b *UCB1) SelectArm() int {
	total := 0
	for i, c := range b.counts {
		if c == 0 {
			return i
		}
		total += c
	}

	normalizer := 2 * math.Log(float64(total))
	best := 0
	bestScore := math.Inf(-1)
	for i := range b.counts {
		if score := ucb(b.means[i], b.counts[i], normalizer); score > bestScore {
			best = i
			bestScore = score
		}
	}
	return best
}

// Update records a reward for an arm using the incremental average, which
// matches a full recomputation of the mean to within floating-point
// tolerance.
func (b *UCB1) Update(arm int, reward float64) {
	if arm < 0 || arm >= len(b.counts) {
		panic(fmt.Sprintf("arm index %d out of range [0,%d)", arm, len(b.counts)))
	}
	b.counts[arm]++
	b.means[arm] += (reward - b.means[arm]) / float64(b.counts[arm])
}

// Counts returns a copy of the per-arm pull counts.
func (b *UCB1) Counts() []int {
	out := make([]int, len(b.counts))
	copy(out, b.counts)
	return out
}

// Means returns a copy of the per-arm mean rewards.
func (b *UCB1) Means() []float64 {
	out := make([]float64, len(b.means))
	copy(out, b.means)
	return out
}

func ucb(mean float64, count int, normalizer float64) float64 {
	if count == 0 {
		panic("cannot score an arm with 0 pulls")
	}
	return mean + math.Sqrt(normalizer/float64(count))
}
