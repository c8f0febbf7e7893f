package mint

import (
	"strconv"
	"time"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/trait"
)

const (
	MintFunction         = "mint_nft"
	AddAttributeFunction = "add_attribute"
)

type Status string

const (
	// StatusPendingSplit waits for the wallet to split the mint price off a coin
	StatusPendingSplit Status = "pending_split"
	// StatusPendingMint waits for the wallet to execute the mint transaction
	StatusPendingMint Status = "pending_mint"
	// StatusMinted waits for the wallet to execute the attribute transaction
	StatusMinted    Status = "minted"
	StatusCompleted Status = "completed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingSplit, StatusPendingMint, StatusMinted, StatusCompleted:
		return true
	}
	return false
}

// Form is what the client submits to start a mint. The image is uploaded by
// the client beforehand.
type Form struct {
	Sender      domain.Address  `json:"sender" validate:"required,suiaddr"`
	Name        string          `json:"name" validate:"required,min=3"`
	Description string          `json:"description" validate:"required,min=10"`
	ImageUrl    string          `json:"imageUrl" validate:"required"`
	Traits      trait.Selection `json:"traits" validate:"required"`
}

// AttributeWrite is one add_attribute call. Key and Value are sent as their
// UTF-8 bytes.
type AttributeWrite struct {
	Key   string `json:"key" bson:"key"`
	Value string `json:"value" bson:"value"`
}

func (w AttributeWrite) KeyBytes() []byte {
	return []byte(w.Key)
}

func (w AttributeWrite) ValueBytes() []byte {
	return []byte(w.Value)
}

// AttributeWrites lists the writes of a minted token: one per non-empty
// category in catalog order, then the score under the reserved key.
func AttributeWrites(c *trait.Catalog, s trait.Selection, score int) []AttributeWrite {
	res := []AttributeWrite{}
	for _, category := range c.Categories() {
		if value := s[category]; value != "" {
			res = append(res, AttributeWrite{Key: category, Value: value})
		}
	}
	return append(res, AttributeWrite{Key: trait.ReservedScoreKey, Value: strconv.Itoa(score)})
}

// Session tracks one mint across its wallet signed transactions. A split
// transaction comes first when the wallet holds no coin worth exactly the
// mint price.
type Session struct {
	Id           string           `json:"id" bson:"_id"`
	Network      string           `json:"network" bson:"network"`
	Sender       domain.Address   `json:"sender" bson:"sender"`
	Name         string           `json:"name" bson:"name"`
	Description  string           `json:"description" bson:"description"`
	ImageUrl     string           `json:"imageUrl" bson:"imageUrl"`
	Traits       trait.Selection  `json:"traits" bson:"traits"`
	RarityScore  int              `json:"rarityScore" bson:"rarityScore"`
	ScoreTier    trait.Tier       `json:"scoreTier" bson:"scoreTier"`
	MintPrice    uint64           `json:"mintPrice" bson:"mintPrice"`
	// GasCoin pays the gas of the mint, never the price
	GasCoin      domain.ObjectId  `json:"gasCoin" bson:"gasCoin"`
	SplitTx      string           `json:"splitTx,omitempty" bson:"splitTx,omitempty"`
	SplitDigest  domain.TxDigest  `json:"splitDigest,omitempty" bson:"splitDigest,omitempty"`
	PaymentCoin  domain.ObjectId  `json:"paymentCoin,omitempty" bson:"paymentCoin,omitempty"`
	MintTx       string           `json:"mintTx,omitempty" bson:"mintTx,omitempty"`
	MintDigest   domain.TxDigest  `json:"mintDigest,omitempty" bson:"mintDigest,omitempty"`
	NftId        domain.ObjectId  `json:"nftId,omitempty" bson:"nftId,omitempty"`
	Attributes   []AttributeWrite `json:"attributes,omitempty" bson:"attributes,omitempty"`
	AttributesTx string           `json:"attributesTx,omitempty" bson:"attributesTx,omitempty"`
	// AttributesDigest is the digest of the executed attribute transaction
	AttributesDigest domain.TxDigest `json:"attributesDigest,omitempty" bson:"attributesDigest,omitempty"`
	Status           Status          `json:"status" bson:"status"`
	CreatedAt        time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// SessionPatch holds the fields a status transition sets.
type SessionPatch struct {
	Status           Status           `bson:"status,omitempty"`
	SplitDigest      domain.TxDigest  `bson:"splitDigest,omitempty"`
	PaymentCoin      domain.ObjectId  `bson:"paymentCoin,omitempty"`
	MintTx           string           `bson:"mintTx,omitempty"`
	MintDigest       domain.TxDigest  `bson:"mintDigest,omitempty"`
	NftId            domain.ObjectId  `bson:"nftId,omitempty"`
	Attributes       []AttributeWrite `bson:"attributes,omitempty"`
	AttributesTx     string           `bson:"attributesTx,omitempty"`
	AttributesDigest domain.TxDigest  `bson:"attributesDigest,omitempty"`
	UpdatedAt        *time.Time       `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Sender *domain.Address
	Status *Status
	Offset int
	Limit  int
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithSender(sender domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		normalized, ok := sender.Normalize()
		if !ok {
			return domain.ErrInvalidAddress
		}
		options.Sender = &normalized
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithPagination(offset, limit int) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = offset
		options.Limit = limit
		return nil
	}
}

type Repo interface {
	Insert(c ctx.Ctx, s *Session) error
	FindOne(c ctx.Ctx, id string) (*Session, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Session, error)
	// FindByDigest returns the session that recorded digest at any stage
	FindByDigest(c ctx.Ctx, digest domain.TxDigest) (*Session, error)
	// Transit applies patch only while the session is still in status from.
	// It returns domain.ErrMintStatus when the session moved on, or when a
	// digest of patch is already recorded by another session.
	Transit(c ctx.Ctx, id string, from Status, patch *SessionPatch) error
}

type Usecase interface {
	// Prepare validates the form and builds the unsigned split or mint transaction
	Prepare(c ctx.Ctx, form *Form) (*Session, error)
	// ConfirmSplit reads the coin the split created and builds the mint transaction
	ConfirmSplit(c ctx.Ctx, id string, digest domain.TxDigest) (*Session, error)
	// ConfirmMint reads the executed mint and builds the attribute transaction
	ConfirmMint(c ctx.Ctx, id string, digest domain.TxDigest) (*Session, error)
	// ConfirmAttributes completes the session once the attributes are written
	ConfirmAttributes(c ctx.Ctx, id string, digest domain.TxDigest) (*Session, error)
	Get(c ctx.Ctx, id string) (*Session, error)
	FindAll(c ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Session, error)
}

// Announcer publishes completed mints
type Announcer interface {
	Announce(c ctx.Ctx, s *Session) error
}
