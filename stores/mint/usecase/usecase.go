package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/log"
	"github.com/x-xyz/artmint/base/metrics"
	"github.com/x-xyz/artmint/base/mist"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/collection"
	"github.com/x-xyz/artmint/domain/mint"
	"github.com/x-xyz/artmint/domain/nft"
	"github.com/x-xyz/artmint/domain/trait"
	"github.com/x-xyz/artmint/service/sui"
)

const (
	defaultGasBudget   = 50_000_000
	defaultWaitTimeout = 60 * time.Second
	// coin pages read while looking for payment and gas coins
	maxCoinPages = 10
)

var timeNow = time.Now

type UsecaseCfg struct {
	Network    domain.Network
	Repo       mint.Repo
	Client     sui.Client
	Collection collection.Usecase
	Nft        nft.Usecase
	Catalog    *trait.Catalog
	Validator  *validator.Validate
	// Announcer is optional
	Announcer   mint.Announcer
	GasBudget   uint64
	WaitTimeout time.Duration
}

type impl struct {
	network     domain.Network
	repo        mint.Repo
	client      sui.Client
	collection  collection.Usecase
	nft         nft.Usecase
	catalog     *trait.Catalog
	validate    *validator.Validate
	announcer   mint.Announcer
	gasBudget   uint64
	waitTimeout time.Duration
	met         metrics.Service
}

func New(cfg *UsecaseCfg) mint.Usecase {
	im := &impl{
		network:     cfg.Network,
		repo:        cfg.Repo,
		client:      cfg.Client,
		collection:  cfg.Collection,
		nft:         cfg.Nft,
		catalog:     cfg.Catalog,
		validate:    cfg.Validator,
		announcer:   cfg.Announcer,
		gasBudget:   cfg.GasBudget,
		waitTimeout: cfg.WaitTimeout,
		met:         metrics.New("mint"),
	}
	if im.gasBudget == 0 {
		im.gasBudget = defaultGasBudget
	}
	if im.waitTimeout <= 0 {
		im.waitTimeout = defaultWaitTimeout
	}
	return im
}

func (im *impl) validateForm(form *mint.Form) error {
	if err := im.validate.Struct(form); err != nil {
		return err
	}
	if strings.TrimSpace(form.Name) == "" {
		return xerrors.Errorf("name is blank: %w", domain.ErrBadParamInput)
	}
	if strings.TrimSpace(form.Description) == "" {
		return xerrors.Errorf("description is blank: %w", domain.ErrBadParamInput)
	}
	return form.Traits.Validate(im.catalog)
}

func (im *impl) Prepare(c ctx.Ctx, form *mint.Form) (*mint.Session, error) {
	if err := im.validateForm(form); err != nil {
		c.WithField("err", err).Info("invalid mint form")
		return nil, err
	}
	sender, _ := form.Sender.Normalize()

	info, err := im.collection.Get(c)
	if err != nil {
		c.WithField("err", err).Error("collection.Get failed")
		return nil, err
	}
	if !info.IsActive || info.SoldOut() {
		return nil, xerrors.Errorf("%s: %w", info.Name, domain.ErrCollectionClosed)
	}

	coins, err := im.suiCoins(c, sender)
	if err != nil {
		return nil, err
	}

	traits := form.Traits.Clone()
	score := im.catalog.AggregateScore(traits)
	now := timeNow()
	s := &mint.Session{
		Id:          uuid.NewString(),
		Network:     im.network.Name,
		Sender:      sender,
		Name:        form.Name,
		Description: form.Description,
		ImageUrl:    form.ImageUrl,
		Traits:      traits,
		RarityScore: score,
		ScoreTier:   trait.ScoreTier(score),
		MintPrice:   info.MintPrice,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if payment, gas, ok := exactPayment(coins, info.MintPrice, im.gasBudget); ok {
		tx, err := im.mintTx(c, s, payment, gas)
		if err != nil {
			return nil, err
		}
		s.PaymentCoin = payment
		s.GasCoin = gas
		s.MintTx = tx.TxBytes
		s.Status = mint.StatusPendingMint
	} else {
		source, ok := splitSource(coins, info.MintPrice)
		if !ok {
			return nil, xerrors.Errorf("Insufficient SUI balance. Need %s SUI: %w", mist.Format(info.MintPrice), domain.ErrInsufficientBalance)
		}
		// pays the price back to the sender as a new coin, source pays the gas
		tx, err := im.client.PaySui(c, sender, []domain.ObjectId{source}, []domain.Address{sender}, []uint64{info.MintPrice}, im.gasBudget)
		if err != nil {
			c.WithField("err", err).Error("client.PaySui failed")
			return nil, err
		}
		s.GasCoin = source
		s.SplitTx = tx.TxBytes
		s.Status = mint.StatusPendingSplit
	}

	if err := im.repo.Insert(c, s); err != nil {
		c.WithField("err", err).Error("repo.Insert failed")
		return nil, err
	}

	im.met.BumpSum("stage", 1, "status", string(s.Status))
	return s, nil
}

func (im *impl) mintTx(c ctx.Ctx, s *mint.Session, payment, gas domain.ObjectId) (*sui.TransactionBytes, error) {
	tx, err := im.client.MoveCall(c, s.Sender, sui.MoveCall{
		PackageObjectId: im.network.PackageId,
		Module:          domain.MoveModule,
		Function:        mint.MintFunction,
		TypeArguments:   []string{},
		Arguments: []interface{}{
			im.network.CollectionId,
			s.Name,
			s.Description,
			s.ImageUrl,
			payment,
			domain.ClockObjectId,
		},
	}, gas, im.gasBudget)
	if err != nil {
		c.WithField("err", err).Error("client.MoveCall failed")
		return nil, err
	}
	return tx, nil
}

type ownedCoin struct {
	id      domain.ObjectId
	balance uint64
}

// suiCoins lists the SUI coins of owner with a readable balance, in node order.
func (im *impl) suiCoins(c ctx.Ctx, owner domain.Address) ([]ownedCoin, error) {
	res := []ownedCoin{}
	cursor := ""
	for i := 0; i < maxCoinPages; i++ {
		page, err := im.client.GetCoins(c, owner, domain.SuiCoinType, cursor)
		if err != nil {
			c.WithField("err", err).Error("client.GetCoins failed")
			return nil, err
		}
		for _, coin := range page.Data {
			balance, err := mist.Parse(coin.Balance)
			if err != nil {
				c.WithFields(log.Fields{"err": err, "coin": coin.CoinObjectId}).Warn("unreadable coin balance")
				continue
			}
			res = append(res, ownedCoin{id: coin.CoinObjectId, balance: balance})
		}
		if !page.HasNextPage || page.NextCursor == nil {
			break
		}
		cursor = *page.NextCursor
	}
	return res, nil
}

// exactPayment finds a coin worth exactly price, and the richest other coin
// covering the gas budget.
func exactPayment(coins []ownedCoin, price, gasBudget uint64) (payment, gas domain.ObjectId, ok bool) {
	paymentIdx := -1
	for i, coin := range coins {
		if coin.balance == price {
			paymentIdx = i
			break
		}
	}
	if paymentIdx < 0 {
		return "", "", false
	}
	gasIdx := -1
	for i, coin := range coins {
		if i == paymentIdx || coin.balance < gasBudget {
			continue
		}
		if gasIdx < 0 || coin.balance > coins[gasIdx].balance {
			gasIdx = i
		}
	}
	if gasIdx < 0 {
		return "", "", false
	}
	return coins[paymentIdx].id, coins[gasIdx].id, true
}

// splitSource returns the first coin holding strictly more than price.
func splitSource(coins []ownedCoin, price uint64) (domain.ObjectId, bool) {
	for _, coin := range coins {
		if coin.balance > price {
			return coin.id, true
		}
	}
	return "", false
}

// digestUnused rejects a digest another session already recorded.
func (im *impl) digestUnused(c ctx.Ctx, digest domain.TxDigest) error {
	other, err := im.repo.FindByDigest(c, digest)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindByDigest failed")
		return err
	}
	return xerrors.Errorf("digest %s already confirms session %s: %w", digest, other.Id, domain.ErrMintStatus)
}

func (im *impl) ConfirmSplit(c ctx.Ctx, id string, digest domain.TxDigest) (*mint.Session, error) {
	s, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if s.Status != mint.StatusPendingSplit {
		return nil, xerrors.Errorf("session %s is %s: %w", id, s.Status, domain.ErrMintStatus)
	}
	if err := im.digestUnused(c, digest); err != nil {
		return nil, err
	}

	block, err := im.client.WaitForTransaction(c, digest, im.waitTimeout)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "digest": digest}).Error("client.WaitForTransaction failed")
		return nil, err
	}
	created, ok := block.CreatedObject(domain.SuiCoinObjectType)
	if !ok {
		return nil, xerrors.Errorf("tx %s: %w", digest, domain.ErrCreatedObjectAbsent)
	}
	if created.Sender != "" && !created.Sender.Equals(s.Sender) {
		return nil, xerrors.Errorf("tx %s was sent by %s: %w", digest, created.Sender, domain.ErrBadParamInput)
	}

	tx, err := im.mintTx(c, s, created.ObjectId, s.GasCoin)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	patch := &mint.SessionPatch{
		Status:      mint.StatusPendingMint,
		SplitDigest: digest,
		PaymentCoin: created.ObjectId,
		MintTx:      tx.TxBytes,
		UpdatedAt:   &now,
	}
	if err := im.repo.Transit(c, id, mint.StatusPendingSplit, patch); err != nil {
		c.WithField("err", err).Error("repo.Transit failed")
		return nil, err
	}

	s.Status = patch.Status
	s.SplitDigest = digest
	s.PaymentCoin = patch.PaymentCoin
	s.MintTx = patch.MintTx
	s.UpdatedAt = now
	im.met.BumpSum("stage", 1, "status", string(s.Status))
	return s, nil
}

func (im *impl) ConfirmMint(c ctx.Ctx, id string, digest domain.TxDigest) (*mint.Session, error) {
	s, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if s.Status != mint.StatusPendingMint {
		return nil, xerrors.Errorf("session %s is %s: %w", id, s.Status, domain.ErrMintStatus)
	}
	if err := im.digestUnused(c, digest); err != nil {
		return nil, err
	}

	block, err := im.client.WaitForTransaction(c, digest, im.waitTimeout)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "digest": digest}).Error("client.WaitForTransaction failed")
		return nil, err
	}
	created, ok := block.CreatedObject(nft.StructName)
	if !ok {
		return nil, xerrors.Errorf("tx %s: %w", digest, domain.ErrCreatedObjectAbsent)
	}
	if created.Sender != "" && !created.Sender.Equals(s.Sender) {
		return nil, xerrors.Errorf("tx %s was sent by %s: %w", digest, created.Sender, domain.ErrBadParamInput)
	}

	writes := mint.AttributeWrites(im.catalog, s.Traits, s.RarityScore)
	calls := make([]sui.MoveCall, 0, len(writes))
	for _, w := range writes {
		calls = append(calls, sui.MoveCall{
			PackageObjectId: im.network.PackageId,
			Module:          domain.MoveModule,
			Function:        mint.AddAttributeFunction,
			TypeArguments:   []string{},
			Arguments:       []interface{}{created.ObjectId, sui.BytesArg(w.KeyBytes()), sui.BytesArg(w.ValueBytes())},
		})
	}
	tx, err := im.client.BatchMoveCall(c, s.Sender, calls, im.gasBudget)
	if err != nil {
		c.WithField("err", err).Error("client.BatchMoveCall failed")
		return nil, err
	}

	now := timeNow()
	patch := &mint.SessionPatch{
		Status:       mint.StatusMinted,
		MintDigest:   block.Digest,
		NftId:        created.ObjectId,
		Attributes:   writes,
		AttributesTx: tx.TxBytes,
		UpdatedAt:    &now,
	}
	if patch.MintDigest == "" {
		patch.MintDigest = digest
	}
	if err := im.repo.Transit(c, id, mint.StatusPendingMint, patch); err != nil {
		c.WithField("err", err).Error("repo.Transit failed")
		return nil, err
	}

	// the supply moved
	if err := im.collection.Invalidate(c); err != nil {
		c.WithField("err", err).Warn("collection.Invalidate failed")
	}

	s.Status = patch.Status
	s.MintDigest = patch.MintDigest
	s.NftId = patch.NftId
	s.Attributes = patch.Attributes
	s.AttributesTx = patch.AttributesTx
	s.UpdatedAt = now
	im.met.BumpSum("stage", 1, "status", string(s.Status))
	return s, nil
}

func (im *impl) ConfirmAttributes(c ctx.Ctx, id string, digest domain.TxDigest) (*mint.Session, error) {
	s, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if s.Status != mint.StatusMinted {
		return nil, xerrors.Errorf("session %s is %s: %w", id, s.Status, domain.ErrMintStatus)
	}
	if err := im.digestUnused(c, digest); err != nil {
		return nil, err
	}

	if _, err := im.client.WaitForTransaction(c, digest, im.waitTimeout); err != nil {
		c.WithFields(log.Fields{"err": err, "digest": digest}).Error("client.WaitForTransaction failed")
		return nil, err
	}

	now := timeNow()
	patch := &mint.SessionPatch{
		Status:           mint.StatusCompleted,
		AttributesDigest: digest,
		UpdatedAt:        &now,
	}
	if err := im.repo.Transit(c, id, mint.StatusMinted, patch); err != nil {
		c.WithField("err", err).Error("repo.Transit failed")
		return nil, err
	}

	s.Status = patch.Status
	s.AttributesDigest = digest
	s.UpdatedAt = now
	im.met.BumpSum("stage", 1, "status", string(s.Status))

	// the cached object still has no attributes
	if err := im.nft.Invalidate(c, s.NftId); err != nil {
		c.WithField("err", err).Warn("nft.Invalidate failed")
	}

	if im.announcer != nil {
		if err := im.announcer.Announce(c, s); err != nil {
			c.WithField("err", err).Warn("announcer.Announce failed")
		}
	}
	return s, nil
}

func (im *impl) Get(c ctx.Ctx, id string) (*mint.Session, error) {
	s, err := im.repo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...mint.FindAllOptionsFunc) ([]*mint.Session, error) {
	res, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return res, nil
}
