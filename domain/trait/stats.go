package trait

// Stats summarizes the catalog for the collection page.
type Stats struct {
	Categories       int          `json:"categories"`
	TotalTraits      int          `json:"totalTraits"`
	Combinations     int64        `json:"combinations"`
	TierDistribution map[Tier]int `json:"rarityDistribution"`
}

func (c *Catalog) Stats() Stats {
	s := Stats{
		Categories:       len(c.categories),
		Combinations:     1,
		TierDistribution: make(map[Tier]int, len(Tiers)),
	}
	for _, t := range Tiers {
		s.TierDistribution[t] = 0
	}
	for _, cat := range c.categories {
		s.TotalTraits += len(cat.options)
		s.Combinations *= int64(len(cat.options))
		for _, opt := range cat.options {
			s.TierDistribution[opt.Tier]++
		}
	}
	return s
}
