package attribute_parser

import (
	"regexp"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/nft"
	"github.com/x-xyz/artmint/domain/trait"
)

// Decoder turns a raw on-chain record into traits and a rarity score.
// Decode never fails: unreadable input decodes to no traits and score 0.
type Decoder interface {
	Decode(raw []byte) nft.Decoded
}

type decoder struct {
	catalog   *trait.Catalog
	parser    AttributeParser
	decorator Decorator
}

func NewDecoder(catalog *trait.Catalog) Decoder {
	return &decoder{
		catalog:   catalog,
		parser:    NewDefaultParser(),
		decorator: NewFieldDecorator(catalog.Categories()),
	}
}

var storedScorePattern = regexp.MustCompile(`^[0-9]+$`)

func (d *decoder) Decode(raw []byte) nft.Decoded {
	res := nft.Decoded{Traits: trait.Selection{}}
	doc := gjson.ParseBytes(raw)
	if gjson.ValidBytes(raw) {
		res.ObjectId = domain.ObjectId(objectId(doc))
		res.Traits = d.parseStructure(doc)
	}
	if len(res.Traits) == 0 {
		res.Traits = d.parseText(raw)
		res.TextFallback = true
	}
	d.score(&res)
	return res
}

func (d *decoder) parseStructure(doc gjson.Result) (traits trait.Selection) {
	defer func() {
		if r := recover(); r != nil {
			traits = nil
		}
	}()
	root := recordRoot(doc)
	traits, err := d.parser.Parse(root)
	if err != nil {
		traits = trait.Selection{}
	}
	return d.decorator.Decorate(root, traits)
}

func (d *decoder) parseText(raw []byte) (traits trait.Selection) {
	defer func() {
		if r := recover(); r != nil {
			traits = trait.Selection{}
		}
	}()
	return parseText(raw)
}

// score adopts a stored score written as a plain decimal integer and
// recomputes it otherwise. The reserved key never stays among the traits.
func (d *decoder) score(res *nft.Decoded) {
	stored, ok := res.Traits[trait.ReservedScoreKey]
	delete(res.Traits, trait.ReservedScoreKey)
	if ok && storedScorePattern.MatchString(stored) {
		if v, err := strconv.Atoi(stored); err == nil {
			res.RarityScore = v
			res.ScoreSource = nft.ScoreSourceStored
			return
		}
	}
	res.RarityScore = d.catalog.AggregateScore(res.Traits)
	res.ScoreSource = nft.ScoreSourceComputed
}
