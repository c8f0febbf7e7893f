package trait

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fixedRand []float64

func (f *fixedRand) Float64() float64 {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

func TestGenerateRandomFixedDraws(t *testing.T) {
	c := Default()
	r := fixedRand{0.41, 0, 0.999, 0.75}
	sel := c.GenerateRandom(&r)
	require.Equal(t, Selection{
		"background": "Sunset",
		"eyes":       "Normal",
		"accessory":  "Magic Aura",
		"expression": "Surprised",
	}, sel)
}

func TestGenerateRandomCoversEveryCategory(t *testing.T) {
	c := Default()
	r := NewRand(42)
	for i := 0; i < 100; i++ {
		sel := c.GenerateRandom(r)
		require.Len(t, sel, 4)
		for category, value := range sel {
			_, ok := c.Lookup(category, value)
			require.True(t, ok, "%s=%s", category, value)
		}
	}
	require.Len(t, c.GenerateRandom(nil), 4)
}

func TestGenerateRandomDistribution(t *testing.T) {
	if testing.Short() {
		t.Skip("skip distribution test in short mode")
	}
	c := Default()
	r := NewRand(7)
	const n = 20000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		counts[c.GenerateRandom(r)["background"]]++
	}
	for _, opt := range c.Options("background") {
		got := float64(counts[opt.Name]) / n * 100
		require.InDelta(t, float64(opt.Weight), got, 2, opt.Name)
	}
}
