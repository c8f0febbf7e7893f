package attribute_parser

import (
	"github.com/tidwall/gjson"

	"github.com/x-xyz/artmint/domain/trait"
)

type fieldDecorator struct {
	categories map[string]struct{}
}

// NewFieldDecorator overrides traits with same-named string fields stored
// directly on the record, for every given category.
func NewFieldDecorator(categories []string) Decorator {
	d := &fieldDecorator{categories: make(map[string]struct{}, len(categories))}
	for _, c := range categories {
		d.categories[c] = struct{}{}
	}
	return d
}

func (d *fieldDecorator) Decorate(record gjson.Result, traits trait.Selection) trait.Selection {
	if traits == nil {
		traits = trait.Selection{}
	}
	record.ForEach(func(key, value gjson.Result) bool {
		if _, ok := d.categories[key.String()]; !ok {
			return true
		}
		if value.Type == gjson.String && value.String() != "" {
			traits[key.String()] = value.String()
		}
		return true
	})
	return traits
}
