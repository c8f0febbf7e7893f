package attribute_parser

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/trait"
)

const vecMapTypeTag = "VecMap"

func isVecMap(attrs gjson.Result) bool {
	return strings.Contains(attrs.Get("type").String(), vecMapTypeTag)
}

func collectPairs(entries gjson.Result) trait.Selection {
	res := trait.Selection{}
	entries.ForEach(func(_, entry gjson.Result) bool {
		if key, value, ok := entryPair(entry); ok {
			res[key] = value
		}
		return true
	})
	return res
}

type vecMapContentsParser struct{}

// NewVecMapContentsParser reads the VecMap layout Sui full nodes return:
// attributes.fields.contents is a list of entries.
func NewVecMapContentsParser() AttributeParser {
	return &vecMapContentsParser{}
}

func (p *vecMapContentsParser) Name() string {
	return "VecMap Contents Parser"
}

func (p *vecMapContentsParser) Parse(record gjson.Result) (trait.Selection, error) {
	attrs := record.Get(attributesKey)
	if !isVecMap(attrs) {
		return nil, domain.ErrNotFound
	}
	contents := attrs.Get("fields.contents")
	if !contents.IsArray() {
		return nil, domain.ErrNotFound
	}
	res := collectPairs(contents)
	if len(res) == 0 {
		return nil, domain.ErrNotFound
	}
	return res, nil
}

type vecMapFieldsParser struct{}

// NewVecMapFieldsParser reads a VecMap whose fields are the entry list itself.
func NewVecMapFieldsParser() AttributeParser {
	return &vecMapFieldsParser{}
}

func (p *vecMapFieldsParser) Name() string {
	return "VecMap Fields Parser"
}

func (p *vecMapFieldsParser) Parse(record gjson.Result) (trait.Selection, error) {
	attrs := record.Get(attributesKey)
	if !isVecMap(attrs) {
		return nil, domain.ErrNotFound
	}
	fields := attrs.Get("fields")
	if !fields.IsArray() {
		return nil, domain.ErrNotFound
	}
	res := collectPairs(fields)
	if len(res) == 0 {
		return nil, domain.ErrNotFound
	}
	return res, nil
}
