package trait

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/artmint/domain"
)

func TestScoreOf(t *testing.T) {
	cases := map[int]int{
		100: 0,
		45:  6,
		40:  6,
		35:  7,
		25:  8,
		15:  9,
		10:  9,
		7:   9,
		5:   10,
		3:   10,
		1:   10,
	}
	for weight, want := range cases {
		assert.Equal(t, want, ScoreOf(Option{Weight: weight}), "weight %d", weight)
	}
}

func TestScoreOfMonotonic(t *testing.T) {
	prev := ScoreOf(Option{Weight: 1})
	for w := 2; w <= 100; w++ {
		cur := ScoreOf(Option{Weight: w})
		require.LessOrEqual(t, cur, prev, "weight %d", w)
		prev = cur
	}
}

func TestAggregateScore(t *testing.T) {
	c := Default()

	rarest := Selection{
		"background": "Golden",
		"eyes":       "Diamond",
		"accessory":  "Magic Aura",
		"expression": "Mysterious",
	}
	require.Equal(t, 39, c.AggregateScore(rarest))

	require.Equal(t, 0, c.AggregateScore(Selection{}))
	require.Equal(t, 0, c.AggregateScore(nil))

	// unknown categories, unknown values, empty values and the reserved key are ignored
	noisy := Selection{
		"eyes":           "Laser",
		"hair":           "Long",
		"background":     "Plaid",
		"accessory":      "",
		ReservedScoreKey: "99",
	}
	require.Equal(t, 9, c.AggregateScore(noisy))
}

func TestBreakdown(t *testing.T) {
	c := Default()
	res := c.Breakdown(Selection{
		"expression": "Happy",
		"eyes":       "Laser",
		"hair":       "Long",
	})
	require.Equal(t, []TraitScore{
		{Category: "eyes", Value: "Laser", Tier: TierEpic, Weight: 7, Score: 9},
		{Category: "expression", Value: "Happy", Tier: TierCommon, Weight: 40, Score: 6},
	}, res)
	require.Empty(t, c.Breakdown(nil))
}

func TestScoreTier(t *testing.T) {
	cases := map[int]Tier{
		0:  TierCommon,
		10: TierCommon,
		11: TierUncommon,
		15: TierUncommon,
		16: TierRare,
		20: TierRare,
		21: TierEpic,
		30: TierEpic,
		31: TierLegendary,
		39: TierLegendary,
	}
	for score, want := range cases {
		assert.Equal(t, want, ScoreTier(score), "score %d", score)
	}
}

func TestSelectionValidate(t *testing.T) {
	c := Default()
	require.NoError(t, Selection{"eyes": "Laser", "accessory": ""}.Validate(c))
	require.ErrorIs(t, Selection{}.Validate(c), domain.ErrBadParamInput)
	require.ErrorIs(t, Selection{"accessory": ""}.Validate(c), domain.ErrBadParamInput)
	require.ErrorIs(t, Selection{"eyes": "Sleepy"}.Validate(c), domain.ErrBadParamInput)
	require.ErrorIs(t, Selection{"hair": "Long"}.Validate(c), domain.ErrBadParamInput)
}
