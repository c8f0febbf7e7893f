package usecase

import (
	"encoding/json"

	"github.com/tidwall/gjson"
	"golang.org/x/xerrors"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/log"
	"github.com/x-xyz/artmint/base/mist"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/collection"
	"github.com/x-xyz/artmint/domain/keys"
	"github.com/x-xyz/artmint/domain/trait"
	"github.com/x-xyz/artmint/service/cache"
	"github.com/x-xyz/artmint/service/sui"
)

// field candidates, first existing one wins
var (
	nameFields        = []string{"name"}
	descriptionFields = []string{"description"}
	creatorFields     = []string{"creator", "owner"}
	totalSupplyFields = []string{"total_supply", "minted", "totalSupply"}
	maxSupplyFields   = []string{"max_supply", "maxSupply"}
	mintPriceFields   = []string{"mint_price", "mintPrice", "price"}
	isActiveFields    = []string{"is_active", "isActive", "active"}
)

type UsecaseCfg struct {
	Network domain.Network
	Client  sui.Client
	Cache   cache.Service
	Catalog *trait.Catalog
}

type impl struct {
	network domain.Network
	client  sui.Client
	cache   cache.Service
	catalog *trait.Catalog
}

func New(cfg *UsecaseCfg) collection.Usecase {
	return &impl{
		network: cfg.Network,
		client:  cfg.Client,
		cache:   cfg.Cache,
		catalog: cfg.Catalog,
	}
}

func (im *impl) key() string {
	return keys.RedisKey(im.network.Name, im.network.CollectionId.String())
}

func (im *impl) Get(c ctx.Ctx) (*collection.Info, error) {
	info := &collection.Info{}
	err := im.cache.GetByFunc(c, im.key(), info, func() (interface{}, error) {
		raw, err := im.client.GetObject(c, im.network.CollectionId)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "collectionId": im.network.CollectionId}).Error("client.GetObject failed")
			return nil, err
		}
		return im.parse(raw)
	})
	if err != nil {
		return nil, err
	}
	// stats follow the running catalog, never the cached copy
	info.TraitStats = im.catalog.Stats()
	return info, nil
}

func (im *impl) Invalidate(c ctx.Ctx) error {
	if err := im.cache.Del(c, im.key()); err != nil {
		c.WithField("err", err).Warn("cache.Del failed")
		return err
	}
	return nil
}

func (im *impl) parse(raw json.RawMessage) (*collection.Info, error) {
	if !gjson.ValidBytes(raw) {
		return nil, xerrors.Errorf("collection object: %w", domain.ErrInvalidJsonFormat)
	}
	doc := gjson.ParseBytes(raw)
	fields := doc.Get("data.content.fields")
	if !fields.IsObject() {
		return nil, xerrors.Errorf("collection %s has no move fields: %w", im.network.CollectionId, domain.ErrNotFound)
	}

	info := &collection.Info{
		Id:          domain.ObjectId(doc.Get("data.objectId").String()),
		Network:     im.network.Name,
		Name:        first(fields, nameFields).String(),
		Description: first(fields, descriptionFields).String(),
		Creator:     domain.Address(first(fields, creatorFields).String()),
	}
	if info.Id == "" {
		info.Id = im.network.CollectionId
	}

	var err error
	if info.TotalSupply, err = u64(first(fields, totalSupplyFields)); err != nil {
		return nil, xerrors.Errorf("total supply: %w", err)
	}
	if info.MaxSupply, err = u64(first(fields, maxSupplyFields)); err != nil {
		return nil, xerrors.Errorf("max supply: %w", err)
	}
	if info.MintPrice, err = u64(first(fields, mintPriceFields)); err != nil {
		return nil, xerrors.Errorf("mint price: %w", err)
	}
	info.MintPriceSui = mist.Format(info.MintPrice)

	if active := first(fields, isActiveFields); active.Exists() {
		info.IsActive = active.Bool()
	} else {
		info.IsActive = !info.SoldOut()
	}
	if info.MaxSupply > info.TotalSupply {
		info.Remaining = info.MaxSupply - info.TotalSupply
	}
	return info, nil
}

func first(fields gjson.Result, names []string) gjson.Result {
	for _, n := range names {
		if r := fields.Get(n); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}

// u64 reads a move u64, which the full node encodes as a string.
// A missing field reads as zero.
func u64(r gjson.Result) (uint64, error) {
	switch r.Type {
	case gjson.Null:
		return 0, nil
	case gjson.Number:
		return mist.Parse(r.Raw)
	case gjson.String:
		return mist.Parse(r.Str)
	}
	return 0, xerrors.Errorf("unexpected %s: %w", r.Type, domain.ErrInvalidNumberFormat)
}
