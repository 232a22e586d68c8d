package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNew(t *testing.T) {
	t.Run("building a valid pool", func(t *testing.T) {
		players := []Player{
			{Value: 100, Cost: 70, Role: Forward},
			{Value: 90, Cost: 60, Role: Goalkeeper},
		}

		p, err := New(players, DefaultRequirements())

		require.NoError(t, err)
		require.Equal(t, 2, p.Len())
		require.Equal(t, players[0], p.Player(0))
		require.Equal(t, 3, p.Requirement(Forward), "Should expose the forward slot cap")
		require.Equal(t, 1, p.Requirement(Goalkeeper), "Should expose the goalkeeper slot cap")
	})

	t.Run("rejecting an empty pool", func(t *testing.T) {
		_, err := New(nil, DefaultRequirements())

		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("rejecting a non-positive player value", func(t *testing.T) {
		players := []Player{{Value: 0, Cost: 70, Role: Forward}}

		_, err := New(players, DefaultRequirements())

		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("rejecting a non-positive player cost", func(t *testing.T) {
		players := []Player{{Value: 100, Cost: -1, Role: Forward}}

		_, err := New(players, DefaultRequirements())

		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("rejecting an unknown role", func(t *testing.T) {
		players := []Player{{Value: 100, Cost: 70, Role: "coach"}}

		_, err := New(players, DefaultRequirements())

		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("copying the input slice", func(t *testing.T) {
		players := []Player{{Value: 100, Cost: 70, Role: Forward}}
		p, err := New(players, DefaultRequirements())
		require.NoError(t, err)

		players[0].Value = 1

		require.Equal(t, 100.0, p.Player(0).Value, "Pool should not see later mutations of the input")
	})
}

func TestGenerate(t *testing.T) {
	cfg := GenerateConfig{
		Count:           100,
		ValueRange:      [2]float64{80, 150},
		CostFactorRange: [2]float64{0.6, 0.9},
	}

	t.Run("generating players within the configured ranges", func(t *testing.T) {
		p, err := Generate(cfg, rand.New(rand.NewSource(7)))

		require.NoError(t, err)
		require.Equal(t, 100, p.Len())
		for i := 0; i < p.Len(); i++ {
			player := p.Player(i)
			require.GreaterOrEqual(t, player.Value, 80.0)
			require.LessOrEqual(t, player.Value, 150.0)
			require.GreaterOrEqual(t, player.Cost, 0.6*player.Value-1,
				"Cost should be at least the low factor, minus rounding")
			require.LessOrEqual(t, player.Cost, 0.9*player.Value)
			require.Contains(t, Roles, player.Role)
		}
	})

	t.Run("reproducing the same pool from the same seed", func(t *testing.T) {
		p1, err := Generate(cfg, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		p2, err := Generate(cfg, rand.New(rand.NewSource(42)))
		require.NoError(t, err)

		require.Equal(t, p1.Len(), p2.Len())
		for i := 0; i < p1.Len(); i++ {
			require.Equal(t, p1.Player(i), p2.Player(i), "Same seed should reproduce the same players")
		}
	})

	t.Run("rejecting a non-positive count", func(t *testing.T) {
		bad := cfg
		bad.Count = 0

		_, err := Generate(bad, rand.New(rand.NewSource(7)))

		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("rejecting an inverted value range", func(t *testing.T) {
		bad := cfg
		bad.ValueRange = [2]float64{150, 80}

		_, err := Generate(bad, rand.New(rand.NewSource(7)))

		require.ErrorIs(t, err, ErrConfiguration)
	})

	t.Run("rejecting a nil random source", func(t *testing.T) {
		_, err := Generate(cfg, nil)

		require.ErrorIs(t, err, ErrConfiguration)
	})
}
