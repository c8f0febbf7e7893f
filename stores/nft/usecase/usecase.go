package usecase

import (
	"encoding/json"
	"sort"

	"github.com/tidwall/gjson"
	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	"github.com/x-xyz/artmint/base/attribute_parser"
	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/log"
	"github.com/x-xyz/artmint/base/metrics"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/nft"
	"github.com/x-xyz/artmint/domain/trait"
	"github.com/x-xyz/artmint/service/cache"
	"github.com/x-xyz/artmint/service/sui"
)

const (
	defaultPageSize = 20
	decodeWorkers   = 8

	defaultName        = "Unnamed NFT"
	defaultDescription = "No description"
)

type UsecaseCfg struct {
	Network domain.Network
	Client  sui.Client
	// Cache holds raw objects
	Cache   cache.Service
	Catalog *trait.Catalog
	Decoder attribute_parser.Decoder
}

type impl struct {
	network domain.Network
	client  sui.Client
	cache   cache.Service
	catalog *trait.Catalog
	decoder attribute_parser.Decoder
	met     metrics.Service
}

func New(cfg *UsecaseCfg) nft.Usecase {
	decoder := cfg.Decoder
	if decoder == nil {
		decoder = attribute_parser.NewDecoder(cfg.Catalog)
	}
	return &impl{
		network: cfg.Network,
		client:  cfg.Client,
		cache:   cfg.Cache,
		catalog: cfg.Catalog,
		decoder: decoder,
		met:     metrics.New("nft"),
	}
}

func (im *impl) Get(c ctx.Ctx, id domain.ObjectId) (*nft.Item, error) {
	normalized, ok := id.Normalize()
	if !ok {
		return nil, xerrors.Errorf("object id %q: %w", id, domain.ErrInvalidObjectId)
	}
	id = normalized

	raw := json.RawMessage{}
	err := im.cache.GetByFunc(c, id.String(), &raw, func() (interface{}, error) {
		return im.client.GetObject(c, id)
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "objectId": id}).Error("GetObject failed")
		return nil, err
	}
	return im.toItem(c, raw), nil
}

func (im *impl) Invalidate(c ctx.Ctx, id domain.ObjectId) error {
	normalized, ok := id.Normalize()
	if !ok {
		return xerrors.Errorf("object id %q: %w", id, domain.ErrInvalidObjectId)
	}
	if err := im.cache.Del(c, normalized.String()); err != nil {
		c.WithFields(log.Fields{"err": err, "objectId": normalized}).Warn("cache.Del failed")
		return err
	}
	return nil
}

func (im *impl) ListOwned(c ctx.Ctx, owner domain.Address, cursor string, limit int) (*nft.Page, error) {
	normalized, ok := owner.Normalize()
	if !ok {
		return nil, xerrors.Errorf("owner %q: %w", owner, domain.ErrInvalidAddress)
	}
	owner = normalized
	if limit <= 0 {
		limit = defaultPageSize
	}

	page, err := im.client.GetOwnedObjects(c, owner, im.network.Target(nft.StructName), cursor, limit)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "owner": owner}).Error("client.GetOwnedObjects failed")
		return nil, err
	}

	res := &nft.Page{
		Items:       im.decodeBatch(c, page.Data),
		HasNextPage: page.HasNextPage,
	}
	if page.NextCursor != nil {
		res.NextCursor = *page.NextCursor
	}
	return res, nil
}

func (im *impl) DecodeRaw(c ctx.Ctx, raw json.RawMessage) (*nft.Item, error) {
	if len(raw) == 0 {
		return nil, xerrors.Errorf("empty record: %w", domain.ErrBadParamInput)
	}
	return im.toItem(c, raw), nil
}

type decodeResult struct {
	idx  int
	item *nft.Item
}

// decodeBatch decodes records on a bounded worker batch, keeping their order.
func (im *impl) decodeBatch(c ctx.Ctx, records []json.RawMessage) []nft.Item {
	items := make([]nft.Item, len(records))
	if len(records) == 0 {
		return items
	}

	b := goroutines.NewBatch(decodeWorkers, goroutines.WithBatchSize(len(records)))
	defer b.Close()
	for i := range records {
		idx := i
		b.Queue(func() (interface{}, error) {
			return decodeResult{idx, im.toItem(c, records[idx])}, nil
		})
	}
	b.QueueComplete()

	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("decode result failed")
			continue
		}
		r := ret.Value().(decodeResult)
		items[r.idx] = *r.item
	}
	return items
}

func (im *impl) toItem(c ctx.Ctx, raw json.RawMessage) *nft.Item {
	decoded := im.decoder.Decode(raw)
	if decoded.TextFallback {
		im.met.BumpSum("decode.fallback", 1)
		c.WithField("objectId", decoded.ObjectId).Warn("no structured attributes, traits read from text")
	}

	fields := attribute_parser.Fields(raw)
	display := gjson.GetBytes(raw, "data.display.data")
	item := &nft.Item{
		ObjectId:    decoded.ObjectId,
		Name:        text(defaultName, fields.Get("name"), display.Get("name")),
		Description: text(defaultDescription, fields.Get("description"), display.Get("description")),
		ImageUrl:    text("", fields.Get("image_url"), fields.Get("url"), display.Get("image_url")),
		Creator:     domain.Address(text("", fields.Get("creator"), display.Get("creator"))),
		Traits:      im.traits(decoded.Traits),
		TraitCount:  len(decoded.Traits),
		RarityScore: decoded.RarityScore,
		ScoreTier:   trait.ScoreTier(decoded.RarityScore),
		ScoreSource: decoded.ScoreSource,
	}
	return item
}

// traits lists catalog categories in catalog order, then the others by name.
func (im *impl) traits(s trait.Selection) []nft.Trait {
	res := make([]nft.Trait, 0, len(s))
	seen := map[string]bool{}
	for _, category := range im.catalog.Categories() {
		value, ok := s[category]
		if !ok {
			continue
		}
		seen[category] = true
		t := nft.Trait{Category: category, Value: value}
		if opt, ok := im.catalog.Lookup(category, value); ok {
			t.Tier = opt.Tier
			t.Weight = opt.Weight
			t.Known = true
		}
		res = append(res, t)
	}

	others := []string{}
	for category := range s {
		if !seen[category] {
			others = append(others, category)
		}
	}
	sort.Strings(others)
	for _, category := range others {
		res = append(res, nft.Trait{Category: category, Value: s[category]})
	}
	return res
}

func text(fallback string, candidates ...gjson.Result) string {
	for _, r := range candidates {
		if r.Type == gjson.String && r.String() != "" {
			return r.String()
		}
	}
	return fallback
}
