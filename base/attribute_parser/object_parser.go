package attribute_parser

import (
	"github.com/tidwall/gjson"

	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/trait"
)

type objectParser struct{}

// NewObjectParser reads attributes stored as a plain object of scalars.
func NewObjectParser() AttributeParser {
	return &objectParser{}
}

func (p *objectParser) Name() string {
	return "Object Parser"
}

func (p *objectParser) Parse(record gjson.Result) (trait.Selection, error) {
	attrs := record.Get(attributesKey)
	if !attrs.IsObject() || isVecMap(attrs) {
		return nil, domain.ErrNotFound
	}
	res := trait.Selection{}
	attrs.ForEach(func(key, value gjson.Result) bool {
		if key.String() == "" {
			return true
		}
		if v, ok := scalar(value); ok {
			res[key.String()] = v
		}
		return true
	})
	if len(res) == 0 {
		return nil, domain.ErrNotFound
	}
	return res, nil
}
