package trait

import (
	"errors"

	"golang.org/x/xerrors"
)

var ErrInvalidCatalog = errors.New("invalid trait catalog")

type category struct {
	name    string
	options []Option
	// cumulative[i] is the sum of the weights of options[0..i]
	cumulative []int
	byName     map[string]int
}

// Catalog is the immutable set of trait categories. It has no mutating
// methods and is safe for concurrent use.
type Catalog struct {
	categories []category
	index      map[string]int
}

// NewCatalog validates the definitions and freezes them into a Catalog.
func NewCatalog(defs []CategoryDef) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, xerrors.Errorf("no categories: %w", ErrInvalidCatalog)
	}
	c := &Catalog{
		categories: make([]category, 0, len(defs)),
		index:      make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		if def.Name == "" {
			return nil, xerrors.Errorf("empty category name: %w", ErrInvalidCatalog)
		}
		if def.Name == ReservedScoreKey {
			return nil, xerrors.Errorf("category name %q is reserved: %w", def.Name, ErrInvalidCatalog)
		}
		if _, dup := c.index[def.Name]; dup {
			return nil, xerrors.Errorf("duplicated category %q: %w", def.Name, ErrInvalidCatalog)
		}
		if len(def.Options) == 0 {
			return nil, xerrors.Errorf("category %q has no options: %w", def.Name, ErrInvalidCatalog)
		}
		cat := category{
			name:       def.Name,
			options:    make([]Option, len(def.Options)),
			cumulative: make([]int, len(def.Options)),
			byName:     make(map[string]int, len(def.Options)),
		}
		sum := 0
		for i, opt := range def.Options {
			if opt.Name == "" {
				return nil, xerrors.Errorf("category %q has an unnamed option: %w", def.Name, ErrInvalidCatalog)
			}
			if _, dup := cat.byName[opt.Name]; dup {
				return nil, xerrors.Errorf("duplicated option %q in %q: %w", opt.Name, def.Name, ErrInvalidCatalog)
			}
			if opt.Weight < 1 || opt.Weight > 100 {
				return nil, xerrors.Errorf("option %q weight %d out of 1..100: %w", opt.Name, opt.Weight, ErrInvalidCatalog)
			}
			if !opt.Tier.IsValid() {
				return nil, xerrors.Errorf("option %q has unknown tier %q: %w", opt.Name, opt.Tier, ErrInvalidCatalog)
			}
			sum += opt.Weight
			cat.options[i] = opt
			cat.cumulative[i] = sum
			cat.byName[opt.Name] = i
		}
		c.index[def.Name] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c, nil
}

// MustNewCatalog is NewCatalog for static definitions.
func MustNewCatalog(defs []CategoryDef) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns the category names in catalog order.
func (c *Catalog) Categories() []string {
	res := make([]string, len(c.categories))
	for i, cat := range c.categories {
		res[i] = cat.name
	}
	return res
}

// Has reports whether the category exists.
func (c *Catalog) Has(category string) bool {
	_, ok := c.index[category]
	return ok
}

// Options returns a copy of the options of a category, nil if unknown.
func (c *Catalog) Options(category string) []Option {
	idx, ok := c.index[category]
	if !ok {
		return nil
	}
	res := make([]Option, len(c.categories[idx].options))
	copy(res, c.categories[idx].options)
	return res
}

// Definitions returns the catalog in its configuration form.
func (c *Catalog) Definitions() []CategoryDef {
	res := make([]CategoryDef, len(c.categories))
	for i, cat := range c.categories {
		res[i] = CategoryDef{Name: cat.name, Options: c.Options(cat.name)}
	}
	return res
}

// Lookup finds an option by exact name. Unknown categories and values are
// reported with ok == false.
func (c *Catalog) Lookup(category, value string) (Option, bool) {
	idx, ok := c.index[category]
	if !ok {
		return Option{}, false
	}
	cat := &c.categories[idx]
	i, ok := cat.byName[value]
	if !ok {
		return Option{}, false
	}
	return cat.options[i], true
}

// Pick walks the cumulative weights of a category and returns the first option
// whose cumulative weight is >= draw. A draw past the total weight falls back
// to the first option.
func (c *Catalog) Pick(category string, draw float64) (Option, bool) {
	idx, ok := c.index[category]
	if !ok {
		return Option{}, false
	}
	cat := &c.categories[idx]
	for i, cum := range cat.cumulative {
		if draw <= float64(cum) {
			return cat.options[i], true
		}
	}
	return cat.options[0], true
}
