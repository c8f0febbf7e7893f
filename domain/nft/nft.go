package nft

import (
	"encoding/json"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/trait"
)

// StructName is the Move struct of the collection's tokens.
const StructName = "SimpleNFT"

type ScoreSource string

const (
	// ScoreSourceStored means the score was read from the reserved attribute.
	ScoreSourceStored ScoreSource = "stored"
	// ScoreSourceComputed means the score was recomputed from the traits.
	ScoreSourceComputed ScoreSource = "computed"
)

// Decoded is the best effort reading of an on-chain record.
type Decoded struct {
	ObjectId    domain.ObjectId `json:"objectId"`
	Traits      trait.Selection `json:"traits"`
	RarityScore int             `json:"rarityScore"`
	ScoreSource ScoreSource     `json:"scoreSource"`
	// TextFallback is set when no structural parser matched and the traits
	// were scraped from the serialized record.
	TextFallback bool `json:"-"`
}

type Trait struct {
	Category string     `json:"category"`
	Value    string     `json:"value"`
	Tier     trait.Tier `json:"rarity,omitempty"`
	Weight   int        `json:"percentage,omitempty"`
	Known    bool       `json:"known"`
}

// Item is the gallery view of one token.
type Item struct {
	ObjectId    domain.ObjectId `json:"objectId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	ImageUrl    string          `json:"imageUrl"`
	Creator     domain.Address  `json:"creator,omitempty"`
	Traits      []Trait         `json:"traits"`
	TraitCount  int             `json:"traitCount"`
	RarityScore int             `json:"rarityScore"`
	ScoreTier   trait.Tier      `json:"scoreTier"`
	ScoreSource ScoreSource     `json:"scoreSource"`
}

type Page struct {
	Items       []Item `json:"items"`
	NextCursor  string `json:"nextCursor,omitempty"`
	HasNextPage bool   `json:"hasNextPage"`
}

type Usecase interface {
	Get(c ctx.Ctx, id domain.ObjectId) (*Item, error)
	ListOwned(c ctx.Ctx, owner domain.Address, cursor string, limit int) (*Page, error)
	DecodeRaw(c ctx.Ctx, raw json.RawMessage) (*Item, error)
	// Invalidate drops the cached object, after its attributes changed
	Invalidate(c ctx.Ctx, id domain.ObjectId) error
}
