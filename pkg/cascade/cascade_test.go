package cascade

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequence returns the given values in order, ignoring the requested sides.
func sequence(values ...int64) RollFunc {
	i := 0
	return func(*big.Int) *big.Int {
		v := values[i]
		i++
		return big.NewInt(v)
	}
}

func TestPlaySingleBubble(t *testing.T) {
	g := Play(sequence(1, 4))

	assert.Equal(t, 1, g.PrimeRoll)
	assert.Empty(t, g.Steps)
	assert.Equal(t, "6", g.Sides.String())
	assert.Equal(t, "4", g.Result.String())
	assert.False(t, g.Fumbled())
}

func TestPlayMultipliesSides(t *testing.T) {
	g := Play(sequence(4, 3, 10, 100, 1))

	require.Len(t, g.Steps, 3)
	assert.Equal(t, "18", g.Steps[0].Sides.String())
	assert.Equal(t, "180", g.Steps[1].Sides.String())
	assert.Equal(t, "18000", g.Sides.String())
	assert.Equal(t, 3, g.Steps[0].Remaining)
	assert.True(t, g.Steps[2].Last())
	assert.True(t, g.Fumbled())
}

func TestPlayInvariants(t *testing.T) {
	for range 200 {
		g := Play(CryptoRoll)

		require.GreaterOrEqual(t, g.PrimeRoll, 1)
		require.LessOrEqual(t, g.PrimeRoll, PrimeSides)
		require.Len(t, g.Steps, g.PrimeRoll-1)

		product := big.NewInt(InitialSides)
		for _, s := range g.Steps {
			require.Equal(t, 1, s.Multiplier.Sign())
			require.LessOrEqual(t, s.Multiplier.Cmp(s.OldSides), 0)
			product.Mul(product, s.Multiplier)
			require.Zero(t, product.Cmp(s.Sides))
		}
		require.Zero(t, product.Cmp(g.Sides))
		require.Equal(t, 1, g.Result.Sign())
		require.LessOrEqual(t, g.Result.Cmp(g.Sides), 0)
	}
}

func TestStepText(t *testing.T) {
	g := Play(sequence(3, 6, 36, 1000))

	assert.Equal(t, "🎲 **1ST CASCADER**", StepFieldName(g.Steps[0]))
	assert.Equal(t, "The **1st** cascader is pressed for a resulting multiplier of **6**. The remaining 2 dice now have **6** * **6** = **36** sides each.",
		StepFieldValue(g.Steps[0]))
	assert.Equal(t, "The **2nd** cascader is pressed for a resulting multiplier of **36**. The final remaining die now has **36** * **36** = **1,296** sides!",
		StepFieldValue(g.Steps[1]))

	second := StepEmbed(g, g.Steps[1])
	require.Len(t, second.Fields, 2)
	assert.Equal(t, StepFieldName(g.Steps[0]), second.Fields[0].Name)
	assert.Equal(t, StepFieldName(g.Steps[1]), second.Fields[1].Name)

	final := FinalEmbed(g)
	require.Len(t, final.Fields, 3)
	assert.Contains(t, final.Fields[2].Value, "**1,296 HIT POINTS IN DAMAGE**")

	result := ResultEmbed(g)
	require.Len(t, result.Fields, 3)
	assert.Equal(t, "The **DOOMSDAY CASCADER** rolls a 1,000!", result.Fields[2].Value)
	assert.Contains(t, PrimeEmbed(g).Description, "**three**")
}
