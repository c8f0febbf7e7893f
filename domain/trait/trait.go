package trait

import (
	"github.com/x-xyz/artmint/domain"
	"golang.org/x/xerrors"
)

// ReservedScoreKey is the attribute key holding the score written at mint time.
const ReservedScoreKey = "rarity_score"

type Tier string

const (
	TierCommon    Tier = "Common"
	TierUncommon  Tier = "Uncommon"
	TierRare      Tier = "Rare"
	TierEpic      Tier = "Epic"
	TierLegendary Tier = "Legendary"
)

// Tiers lists every tier from the most to the least common.
var Tiers = []Tier{TierCommon, TierUncommon, TierRare, TierEpic, TierLegendary}

func (t Tier) IsValid() bool {
	for _, v := range Tiers {
		if v == t {
			return true
		}
	}
	return false
}

// Option is one selectable value of a category. Weight is the intended
// population percentage and the probability mass used by GenerateRandom.
type Option struct {
	Name   string `json:"name" mapstructure:"name"`
	Tier   Tier   `json:"rarity" mapstructure:"rarity"`
	Weight int    `json:"percentage" mapstructure:"percentage"`
}

// CategoryDef is the configuration form of a category.
type CategoryDef struct {
	Name    string   `json:"name" mapstructure:"name"`
	Options []Option `json:"options" mapstructure:"options"`
}

// Selection maps a category name to the chosen option name. Empty values mean
// unselected.
type Selection map[string]string

// Validate checks the mint form rules: at least one category is selected and
// every selected value is an option of a known category.
func (s Selection) Validate(c *Catalog) error {
	selected := 0
	for category, value := range s {
		if value == "" {
			continue
		}
		if _, ok := c.Lookup(category, value); !ok {
			return xerrors.Errorf("unknown trait %s=%q: %w", category, value, domain.ErrBadParamInput)
		}
		selected++
	}
	if selected == 0 {
		return xerrors.Errorf("please select at least one trait: %w", domain.ErrBadParamInput)
	}
	return nil
}

// Clone returns a copy that is safe to modify.
func (s Selection) Clone() Selection {
	res := make(Selection, len(s))
	for k, v := range s {
		res[k] = v
	}
	return res
}
