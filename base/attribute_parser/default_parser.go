package attribute_parser

import (
	"github.com/tidwall/gjson"

	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/trait"
)

type defaultParser struct {
	parsers []AttributeParser
}

func NewDefaultParser() AttributeParser {
	return &defaultParser{
		parsers: []AttributeParser{
			// contents before fields: a VecMap with contents never has a fields list
			NewVecMapContentsParser(),
			NewVecMapFieldsParser(),
			NewObjectParser(),
		},
	}
}

func (p *defaultParser) Name() string {
	return "Default Parser"
}

func (p *defaultParser) Parse(record gjson.Result) (trait.Selection, error) {
	for _, parser := range p.parsers {
		if res, err := parser.Parse(record); err == nil {
			return res, nil
		}
	}
	return nil, domain.ErrNotFound
}
