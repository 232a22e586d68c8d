package bandit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewUCB1(t *testing.T) {
	t.Run("creating a fresh selector", func(t *testing.T) {
		b, err := NewUCB1(4)

		require.NoError(t, err)
		require.Equal(t, 4, b.Arms())
		require.Equal(t, []int{0, 0, 0, 0}, b.Counts())
		require.Equal(t, []float64{0, 0, 0, 0}, b.Means())
	})

	t.Run("rejecting a non-positive arm count", func(t *testing.T) {
		_, err := NewUCB1(0)

		require.ErrorIs(t, err, ErrNoArms)
	})
}

func TestSelectArm(t *testing.T) {
	t.Run("exploring every arm once in ascending order", func(t *testing.T) {
		b, err := NewUCB1(4)
		require.NoError(t, err)

		for want := 0; want < 4; want++ {
			got := b.SelectArm()
			require.Equal(t, want, got, "Fresh arms should be explored lowest index first")
			b.Update(got, 1)
		}
	})

	t.Run("maximizing the confidence-adjusted score after exploration", func(t *testing.T) {
		b, err := NewUCB1(2)
		require.NoError(t, err)
		b.Update(0, 0)
		b.Update(1, 1)

		require.Equal(t, 1, b.SelectArm(), "Equal counts should make the higher mean win")
	})

	t.Run("favoring an undersampled arm despite a lower mean", func(t *testing.T) {
		b, err := NewUCB1(2)
		require.NoError(t, err)
		// Arm 0: high mean, heavily sampled. Arm 1: low mean, sampled once.
		for i := 0; i < 100; i++ {
			b.Update(0, 0.6)
		}
		b.Update(1, 0.3)

		ucb0 := 0.6 + math.Sqrt(2*math.Log(101)/100)
		ucb1 := 0.3 + math.Sqrt(2*math.Log(101)/1)
		require.Greater(t, ucb1, ucb0)
		require.Equal(t, 1, b.SelectArm(), "The exploration bonus should outweigh the mean gap")
	})

	t.Run("breaking score ties by lowest arm index", func(t *testing.T) {
		b, err := NewUCB1(3)
		require.NoError(t, err)
		b.Update(0, 1)
		b.Update(1, 0)
		b.Update(2, 1)

		require.Equal(t, []float64{1, 0, 1}, b.Means())
		require.Equal(t, 0, b.SelectArm(), "Arms 0 and 2 tie; the lower index wins")
	})
}

func TestUpdate(t *testing.T) {
	t.Run("matching a full recomputation of the mean", func(t *testing.T) {
		b, err := NewUCB1(3)
		require.NoError(t, err)
		rng := rand.New(rand.NewSource(11))

		history := make([][]float64, 3)
		for i := 0; i < 3000; i++ {
			arm := rng.Intn(3)
			reward := float64(rng.Intn(2))
			b.Update(arm, reward)
			history[arm] = append(history[arm], reward)
		}

		means := b.Means()
		counts := b.Counts()
		total := 0
		for arm := 0; arm < 3; arm++ {
			require.Equal(t, len(history[arm]), counts[arm])
			total += counts[arm]

			sum := 0.0
			for _, r := range history[arm] {
				sum += r
			}
			require.InDelta(t, sum/float64(len(history[arm])), means[arm], 1e-9,
				"Incremental mean should match recomputing from the full history")
		}
		require.Equal(t, 3000, total, "Arm counts should sum to the number of updates")
	})

	t.Run("panics on an out-of-range arm", func(t *testing.T) {
		b, err := NewUCB1(3)
		require.NoError(t, err)

		require.Panics(t, func() {
			b.Update(3, 1)
		}, "Should panic on an arm index past the last arm")
		require.Panics(t, func() {
			b.Update(-1, 1)
		}, "Should panic on a negative arm index")
	})
}
