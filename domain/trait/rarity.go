package trait

import "math"

// ScoreOf buckets an option by its weight: round((100 - weight) / 10).
// Rarer options score higher, a 100% option scores 0.
func ScoreOf(o Option) int {
	return int(math.Round(float64(100-o.Weight) / 10))
}

// AggregateScore sums ScoreOf over the matched values of a selection.
// Unknown categories, unknown values, empty values and the reserved score key
// contribute nothing, so a form selection and a decoded record with the same
// values score the same.
func (c *Catalog) AggregateScore(s Selection) int {
	total := 0
	for category, value := range s {
		if value == "" || category == ReservedScoreKey {
			continue
		}
		if opt, ok := c.Lookup(category, value); ok {
			total += ScoreOf(opt)
		}
	}
	return total
}

// TraitScore is the contribution of one matched trait.
type TraitScore struct {
	Category string `json:"category"`
	Value    string `json:"value"`
	Tier     Tier   `json:"rarity"`
	Weight   int    `json:"percentage"`
	Score    int    `json:"score"`
}

// Breakdown lists the matched traits of a selection in catalog order.
func (c *Catalog) Breakdown(s Selection) []TraitScore {
	res := []TraitScore{}
	for _, cat := range c.categories {
		value := s[cat.name]
		if value == "" {
			continue
		}
		opt, ok := c.Lookup(cat.name, value)
		if !ok {
			continue
		}
		res = append(res, TraitScore{
			Category: cat.name,
			Value:    value,
			Tier:     opt.Tier,
			Weight:   opt.Weight,
			Score:    ScoreOf(opt),
		})
	}
	return res
}

// ScoreTier labels an aggregate score for display. The thresholds are
// independent from the option tiers.
func ScoreTier(score int) Tier {
	switch {
	case score > 30:
		return TierLegendary
	case score > 20:
		return TierEpic
	case score > 15:
		return TierRare
	case score > 10:
		return TierUncommon
	default:
		return TierCommon
	}
}
