package trait

var defaultCatalog = MustNewCatalog([]CategoryDef{
	{
		Name: "background",
		Options: []Option{
			{Name: "Blue Sky", Tier: TierCommon, Weight: 40},
			{Name: "Sunset", Tier: TierUncommon, Weight: 25},
			{Name: "Galaxy", Tier: TierRare, Weight: 15},
			{Name: "Rainbow", Tier: TierEpic, Weight: 10},
			{Name: "Golden", Tier: TierLegendary, Weight: 10},
		},
	},
	{
		Name: "eyes",
		Options: []Option{
			{Name: "Normal", Tier: TierCommon, Weight: 45},
			{Name: "Big Eyes", Tier: TierUncommon, Weight: 30},
			{Name: "Glowing", Tier: TierRare, Weight: 15},
			{Name: "Laser", Tier: TierEpic, Weight: 7},
			{Name: "Diamond", Tier: TierLegendary, Weight: 3},
		},
	},
	{
		Name: "accessory",
		Options: []Option{
			{Name: "None", Tier: TierCommon, Weight: 35},
			{Name: "Hat", Tier: TierCommon, Weight: 25},
			{Name: "Glasses", Tier: TierUncommon, Weight: 20},
			{Name: "Crown", Tier: TierRare, Weight: 12},
			{Name: "Halo", Tier: TierEpic, Weight: 5},
			{Name: "Magic Aura", Tier: TierLegendary, Weight: 3},
		},
	},
	{
		Name: "expression",
		Options: []Option{
			{Name: "Happy", Tier: TierCommon, Weight: 40},
			{Name: "Cool", Tier: TierCommon, Weight: 30},
			{Name: "Surprised", Tier: TierUncommon, Weight: 15},
			{Name: "Angry", Tier: TierRare, Weight: 10},
			{Name: "Mysterious", Tier: TierEpic, Weight: 5},
		},
	},
})

// Default returns the collection's built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}
