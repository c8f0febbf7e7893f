package collection

import (
	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/trait"
)

// Info is the on-chain collection object with its trait statistics.
type Info struct {
	Id           domain.ObjectId `json:"id"`
	Network      string          `json:"network"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Creator      domain.Address  `json:"creator"`
	TotalSupply  uint64          `json:"totalSupply"`
	MaxSupply    uint64          `json:"maxSupply"`
	MintPrice    uint64          `json:"mintPrice"`
	MintPriceSui string          `json:"mintPriceSui"`
	IsActive     bool            `json:"isActive"`
	Remaining    uint64          `json:"remaining"`
	TraitStats   trait.Stats     `json:"traitStats"`
}

// SoldOut reports whether every token has been minted.
func (i *Info) SoldOut() bool {
	return i.MaxSupply > 0 && i.TotalSupply >= i.MaxSupply
}

type Usecase interface {
	Get(c ctx.Ctx) (*Info, error)
	// Invalidate drops the cached info, after a mint changed the supply
	Invalidate(c ctx.Ctx) error
}
