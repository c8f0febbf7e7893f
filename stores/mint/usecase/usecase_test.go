package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/artmint/base/ctx"
	bValidator "github.com/x-xyz/artmint/base/validator"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/collection"
	collectionMocks "github.com/x-xyz/artmint/domain/collection/mocks"
	"github.com/x-xyz/artmint/domain/mint"
	mintMocks "github.com/x-xyz/artmint/domain/mint/mocks"
	nftMocks "github.com/x-xyz/artmint/domain/nft/mocks"
	"github.com/x-xyz/artmint/domain/trait"
	"github.com/x-xyz/artmint/service/sui"
	suiMocks "github.com/x-xyz/artmint/service/sui/mocks"
)

var mockCtx = ctx.Background()

const (
	sender    = domain.Address("0x00000000000000000000000000000000000000000000000000000000000000ab")
	coinA     = domain.ObjectId("0x0c1")
	coinB     = domain.ObjectId("0x0c2")
	coinC     = domain.ObjectId("0x0c3")
	nftId     = domain.ObjectId("0x0a1")
	price     = uint64(10000000)
	gas       = uint64(1000)
	mintHash  = domain.TxDigest("mintDigest")
	splitHash = domain.TxDigest("splitDigest")
	attrHash  = domain.TxDigest("attrDigest")
)

type fakeAnnouncer struct {
	mock.Mock
}

func (f *fakeAnnouncer) Announce(c ctx.Ctx, s *mint.Session) error {
	return f.Called(s.Id).Error(0)
}

type usecaseSuite struct {
	suite.Suite
	net        domain.Network
	client     *suiMocks.Client
	repo       *mintMocks.Repo
	collection *collectionMocks.Usecase
	nft        *nftMocks.Usecase
	announcer  *fakeAnnouncer
	im         mint.Usecase
	now        time.Time
}

func TestMintUsecase(t *testing.T) {
	suite.Run(t, new(usecaseSuite))
}

func (s *usecaseSuite) SetupTest() {
	s.net = domain.DefaultNetworks["testnet"]
	s.client = &suiMocks.Client{}
	s.repo = &mintMocks.Repo{}
	s.collection = &collectionMocks.Usecase{}
	s.nft = &nftMocks.Usecase{}
	s.announcer = &fakeAnnouncer{}
	s.now = time.Unix(1700000000, 0)
	timeNow = func() time.Time { return s.now }

	s.im = New(&UsecaseCfg{
		Network:    s.net,
		Repo:       s.repo,
		Client:     s.client,
		Collection: s.collection,
		Nft:        s.nft,
		Catalog:    trait.Default(),
		Validator:  bValidator.New(),
		Announcer:  s.announcer,
		GasBudget:  gas,
	})
}

func (s *usecaseSuite) TearDownTest() {
	timeNow = time.Now
	s.client.AssertExpectations(s.T())
	s.repo.AssertExpectations(s.T())
	s.collection.AssertExpectations(s.T())
	s.nft.AssertExpectations(s.T())
	s.announcer.AssertExpectations(s.T())
}

func form() *mint.Form {
	return &mint.Form{
		Sender:      "0xAB",
		Name:        "Dusk",
		Description: "A quiet evening sky",
		ImageUrl:    "https://gateway.example/ipfs/cid",
		Traits: trait.Selection{
			"background": "Galaxy",
			"eyes":       "Laser",
			"accessory":  "None",
			"expression": "",
		},
	}
}

func activeCollection() *collection.Info {
	return &collection.Info{Name: "Trait Art", MintPrice: price, MaxSupply: 100, TotalSupply: 3, IsActive: true}
}

func (s *usecaseSuite) mintCall(payment domain.ObjectId) sui.MoveCall {
	return sui.MoveCall{
		PackageObjectId: s.net.PackageId,
		Module:          "simple_art_nft",
		Function:        "mint_nft",
		TypeArguments:   []string{},
		Arguments: []interface{}{
			s.net.CollectionId,
			"Dusk",
			"A quiet evening sky",
			"https://gateway.example/ipfs/cid",
			payment,
			domain.ObjectId("0x6"),
		},
	}
}

func (s *usecaseSuite) TestPrepareExactCoin() {
	req := s.Require()
	next := "page2"
	s.collection.On("Get", mock.Anything).Return(activeCollection(), nil).Once()
	s.client.On("GetCoins", mock.Anything, sender, domain.SuiCoinType, "").Return(&sui.CoinPage{
		Data: []sui.Coin{
			{CoinObjectId: coinA, Balance: "10000000"},
			{CoinObjectId: "0xdust", Balance: "10"},
		},
		NextCursor:  &next,
		HasNextPage: true,
	}, nil).Once()
	s.client.On("GetCoins", mock.Anything, sender, domain.SuiCoinType, next).Return(&sui.CoinPage{
		Data: []sui.Coin{
			{CoinObjectId: "0xbad", Balance: "lots"},
			{CoinObjectId: coinB, Balance: "20000000"},
		},
	}, nil).Once()
	// the exact coin pays, the richest other coin pays the gas
	s.client.On("MoveCall", mock.Anything, sender, s.mintCall(coinA), coinB, gas).
		Return(&sui.TransactionBytes{TxBytes: "mintBytes"}, nil).Once()
	s.repo.On("Insert", mock.Anything, mock.AnythingOfType("*mint.Session")).Return(nil).Once()

	sess, err := s.im.Prepare(mockCtx, form())
	req.NoError(err)
	req.NotEmpty(sess.Id)
	req.Equal(sender, sess.Sender)
	req.Equal(mint.StatusPendingMint, sess.Status)
	req.Equal("mintBytes", sess.MintTx)
	req.Empty(sess.SplitTx)
	req.Equal(coinA, sess.PaymentCoin)
	req.Equal(coinB, sess.GasCoin)
	req.Equal(price, sess.MintPrice)
	// Galaxy 9 + Laser 9 + None 7
	req.Equal(25, sess.RarityScore)
	req.Equal(trait.TierEpic, sess.ScoreTier)
	req.Equal("testnet", sess.Network)
	req.Equal(s.now, sess.CreatedAt)
}

func (s *usecaseSuite) TestPrepareSingleCoinSplitsFirst() {
	req := s.Require()
	s.collection.On("Get", mock.Anything).Return(activeCollection(), nil).Once()
	s.client.On("GetCoins", mock.Anything, sender, domain.SuiCoinType, "").Return(&sui.CoinPage{
		Data: []sui.Coin{{CoinObjectId: coinA, Balance: "100000000000"}},
	}, nil).Once()
	s.client.On("PaySui", mock.Anything, sender, []domain.ObjectId{coinA}, []domain.Address{sender}, []uint64{price}, gas).
		Return(&sui.TransactionBytes{TxBytes: "splitBytes"}, nil).Once()
	s.repo.On("Insert", mock.Anything, mock.MatchedBy(func(sess *mint.Session) bool {
		return sess.Status == mint.StatusPendingSplit && sess.GasCoin == coinA
	})).Return(nil).Once()

	sess, err := s.im.Prepare(mockCtx, form())
	req.NoError(err)
	req.Equal(mint.StatusPendingSplit, sess.Status)
	req.Equal("splitBytes", sess.SplitTx)
	req.Equal(coinA, sess.GasCoin)
	// nothing pays the whole coin
	req.Empty(sess.PaymentCoin)
	req.Empty(sess.MintTx)
	s.client.AssertNotCalled(s.T(), "MoveCall", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *usecaseSuite) TestPrepareInvalidForm() {
	req := s.Require()
	tests := []struct {
		name   string
		modify func(f *mint.Form)
	}{
		{"short name", func(f *mint.Form) { f.Name = "ab" }},
		{"blank name", func(f *mint.Form) { f.Name = "    " }},
		{"short description", func(f *mint.Form) { f.Description = "too short" }},
		{"blank description", func(f *mint.Form) { f.Description = "           " }},
		{"no image", func(f *mint.Form) { f.ImageUrl = "" }},
		{"bad sender", func(f *mint.Form) { f.Sender = "alice" }},
		{"no traits", func(f *mint.Form) { f.Traits = nil }},
		{"only empty traits", func(f *mint.Form) { f.Traits = trait.Selection{"background": ""} }},
		{"unknown option", func(f *mint.Form) { f.Traits["eyes"] = "Sleepy" }},
		{"unknown category", func(f *mint.Form) { f.Traits["hat"] = "Cap" }},
	}
	for _, tt := range tests {
		f := form()
		tt.modify(f)
		_, err := s.im.Prepare(mockCtx, f)
		req.Error(err, tt.name)

		var verr validator.ValidationErrors
		req.True(errors.As(err, &verr) || errors.Is(err, domain.ErrBadParamInput), tt.name)
	}
}

func (s *usecaseSuite) TestPrepareClosedCollection() {
	req := s.Require()
	info := activeCollection()
	info.TotalSupply = info.MaxSupply
	s.collection.On("Get", mock.Anything).Return(info, nil).Once()

	_, err := s.im.Prepare(mockCtx, form())
	req.ErrorIs(err, domain.ErrCollectionClosed)
}

func (s *usecaseSuite) TestPrepareInsufficientBalance() {
	req := s.Require()
	tests := []struct {
		name  string
		coins []sui.Coin
	}{
		{"too poor", []sui.Coin{{CoinObjectId: coinA, Balance: "5"}}},
		// nothing left for the gas
		{"single coin worth the price", []sui.Coin{{CoinObjectId: coinA, Balance: "10000000"}}},
		{"coin worth the price and dust", []sui.Coin{
			{CoinObjectId: coinA, Balance: "10000000"},
			{CoinObjectId: coinB, Balance: "10"},
		}},
		{"no coins", []sui.Coin{}},
	}
	for _, tt := range tests {
		s.collection.On("Get", mock.Anything).Return(activeCollection(), nil).Once()
		s.client.On("GetCoins", mock.Anything, sender, domain.SuiCoinType, "").
			Return(&sui.CoinPage{Data: tt.coins}, nil).Once()

		_, err := s.im.Prepare(mockCtx, form())
		req.ErrorIs(err, domain.ErrInsufficientBalance, tt.name)
		req.Contains(err.Error(), "Insufficient SUI balance. Need 0.01 SUI", tt.name)
	}
}

func splitSession() *mint.Session {
	sess := pendingSession()
	sess.Description = "A quiet evening sky"
	sess.ImageUrl = "https://gateway.example/ipfs/cid"
	sess.Status = mint.StatusPendingSplit
	sess.GasCoin = coinA
	sess.SplitTx = "splitBytes"
	return sess
}

func (s *usecaseSuite) TestConfirmSplit() {
	req := s.Require()
	s.repo.On("FindOne", mock.Anything, "s1").Return(splitSession(), nil).Once()
	s.repo.On("FindByDigest", mock.Anything, splitHash).Return(nil, domain.ErrNotFound).Once()
	s.client.On("WaitForTransaction", mock.Anything, splitHash, defaultWaitTimeout).Return(&sui.TransactionBlock{
		Digest:  splitHash,
		Effects: &sui.TransactionEffects{Status: sui.ExecutionStatus{Status: "success"}},
		ObjectChanges: []sui.ObjectChange{
			{Type: "mutated", Sender: sender, ObjectType: domain.SuiCoinObjectType, ObjectId: coinA},
			{Type: "created", Sender: sender, ObjectType: domain.SuiCoinObjectType, ObjectId: coinC},
		},
	}, nil).Once()
	s.client.On("MoveCall", mock.Anything, sender, s.mintCall(coinC), coinA, gas).
		Return(&sui.TransactionBytes{TxBytes: "mintBytes"}, nil).Once()
	s.repo.On("Transit", mock.Anything, "s1", mint.StatusPendingSplit, mock.MatchedBy(func(p *mint.SessionPatch) bool {
		return p.Status == mint.StatusPendingMint && p.SplitDigest == splitHash && p.PaymentCoin == coinC && p.MintTx == "mintBytes"
	})).Return(nil).Once()

	sess, err := s.im.ConfirmSplit(mockCtx, "s1", splitHash)
	req.NoError(err)
	req.Equal(mint.StatusPendingMint, sess.Status)
	req.Equal(coinC, sess.PaymentCoin)
	req.Equal(coinA, sess.GasCoin)
	req.Equal("mintBytes", sess.MintTx)
}

func (s *usecaseSuite) TestConfirmSplitFailures() {
	req := s.Require()

	s.repo.On("FindOne", mock.Anything, "minting").Return(pendingSession(), nil).Once()
	_, err := s.im.ConfirmSplit(mockCtx, "minting", splitHash)
	req.ErrorIs(err, domain.ErrMintStatus)

	s.repo.On("FindOne", mock.Anything, "s1").Return(splitSession(), nil).Times(3)

	s.repo.On("FindByDigest", mock.Anything, domain.TxDigest("reused")).Return(&mint.Session{Id: "s0"}, nil).Once()
	_, err = s.im.ConfirmSplit(mockCtx, "s1", "reused")
	req.ErrorIs(err, domain.ErrMintStatus)

	s.repo.On("FindByDigest", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	s.client.On("WaitForTransaction", mock.Anything, domain.TxDigest("nocoin"), mock.Anything).
		Return(&sui.TransactionBlock{ObjectChanges: []sui.ObjectChange{
			{Type: "mutated", ObjectType: domain.SuiCoinObjectType, ObjectId: coinA},
		}}, nil).Once()
	_, err = s.im.ConfirmSplit(mockCtx, "s1", "nocoin")
	req.ErrorIs(err, domain.ErrCreatedObjectAbsent)

	s.client.On("WaitForTransaction", mock.Anything, domain.TxDigest("stranger"), mock.Anything).
		Return(&sui.TransactionBlock{ObjectChanges: []sui.ObjectChange{
			{Type: "created", Sender: "0x0ff", ObjectType: domain.SuiCoinObjectType, ObjectId: coinC},
		}}, nil).Once()
	_, err = s.im.ConfirmSplit(mockCtx, "s1", "stranger")
	req.ErrorIs(err, domain.ErrBadParamInput)
}

func pendingSession() *mint.Session {
	f := form()
	return &mint.Session{
		Id:          "s1",
		Network:     "testnet",
		Sender:      sender,
		Name:        f.Name,
		Traits:      f.Traits,
		RarityScore: 25,
		Status:      mint.StatusPendingMint,
	}
}

func (s *usecaseSuite) TestConfirmMint() {
	req := s.Require()
	s.repo.On("FindOne", mock.Anything, "s1").Return(pendingSession(), nil).Once()
	s.repo.On("FindByDigest", mock.Anything, mintHash).Return(nil, domain.ErrNotFound).Once()
	s.client.On("WaitForTransaction", mock.Anything, mintHash, defaultWaitTimeout).Return(&sui.TransactionBlock{
		Digest:  mintHash,
		Effects: &sui.TransactionEffects{Status: sui.ExecutionStatus{Status: "success"}},
		ObjectChanges: []sui.ObjectChange{
			{Type: "mutated", ObjectType: "0x2::coin::Coin<0x2::sui::SUI>", ObjectId: coinB},
			{Type: "created", Sender: sender, ObjectType: s.net.Target("SimpleNFT"), ObjectId: nftId},
		},
	}, nil).Once()

	var calls []sui.MoveCall
	s.client.On("BatchMoveCall", mock.Anything, sender, mock.Anything, uint64(1000)).
		Run(func(args mock.Arguments) { calls = args.Get(2).([]sui.MoveCall) }).
		Return(&sui.TransactionBytes{TxBytes: "attrBytes"}, nil).Once()
	s.repo.On("Transit", mock.Anything, "s1", mint.StatusPendingMint, mock.MatchedBy(func(p *mint.SessionPatch) bool {
		return p.Status == mint.StatusMinted && p.NftId == nftId && p.MintDigest == mintHash && p.AttributesTx == "attrBytes"
	})).Return(nil).Once()
	s.collection.On("Invalidate", mock.Anything).Return(nil).Once()

	sess, err := s.im.ConfirmMint(mockCtx, "s1", mintHash)
	req.NoError(err)
	req.Equal(mint.StatusMinted, sess.Status)
	req.Equal(nftId, sess.NftId)
	req.Equal([]mint.AttributeWrite{
		{Key: "background", Value: "Galaxy"},
		{Key: "eyes", Value: "Laser"},
		{Key: "accessory", Value: "None"},
		{Key: "rarity_score", Value: "25"},
	}, sess.Attributes)

	req.Len(calls, 4)
	for _, call := range calls {
		req.Equal("add_attribute", call.Function)
		req.Equal(s.net.PackageId, call.PackageObjectId)
		req.Equal(nftId, call.Arguments[0])
	}
	req.Equal(sui.BytesArg("rarity_score"), calls[3].Arguments[1])
	req.Equal(sui.BytesArg("25"), calls[3].Arguments[2])
}

func (s *usecaseSuite) TestConfirmMintOutOfOrder() {
	req := s.Require()
	sess := pendingSession()
	sess.Status = mint.StatusMinted
	s.repo.On("FindOne", mock.Anything, "s1").Return(sess, nil).Once()

	_, err := s.im.ConfirmMint(mockCtx, "s1", mintHash)
	req.ErrorIs(err, domain.ErrMintStatus)
}

func (s *usecaseSuite) TestConfirmMintFailures() {
	req := s.Require()

	s.repo.On("FindOne", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()
	_, err := s.im.ConfirmMint(mockCtx, "missing", mintHash)
	req.ErrorIs(err, domain.ErrNotFound)

	s.repo.On("FindOne", mock.Anything, "s1").Return(pendingSession(), nil).Times(3)
	s.repo.On("FindByDigest", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound).Times(3)

	s.client.On("WaitForTransaction", mock.Anything, domain.TxDigest("failed"), mock.Anything).
		Return(&sui.TransactionBlock{}, domain.ErrTxFailed).Once()
	_, err = s.im.ConfirmMint(mockCtx, "s1", "failed")
	req.ErrorIs(err, domain.ErrTxFailed)

	s.client.On("WaitForTransaction", mock.Anything, domain.TxDigest("nothing"), mock.Anything).
		Return(&sui.TransactionBlock{Digest: "nothing"}, nil).Once()
	_, err = s.im.ConfirmMint(mockCtx, "s1", "nothing")
	req.ErrorIs(err, domain.ErrCreatedObjectAbsent)

	s.client.On("WaitForTransaction", mock.Anything, domain.TxDigest("stranger"), mock.Anything).
		Return(&sui.TransactionBlock{ObjectChanges: []sui.ObjectChange{
			{Type: "created", Sender: "0x0ff", ObjectType: "pkg::simple_art_nft::SimpleNFT", ObjectId: nftId},
		}}, nil).Once()
	_, err = s.im.ConfirmMint(mockCtx, "s1", "stranger")
	req.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *usecaseSuite) TestConfirmMintDigestReused() {
	req := s.Require()
	s.repo.On("FindOne", mock.Anything, "s2").Return(pendingSession(), nil).Once()
	// s1 was confirmed with the same transaction
	s.repo.On("FindByDigest", mock.Anything, mintHash).Return(&mint.Session{Id: "s1", MintDigest: mintHash}, nil).Once()

	_, err := s.im.ConfirmMint(mockCtx, "s2", mintHash)
	req.ErrorIs(err, domain.ErrMintStatus)
	s.client.AssertNotCalled(s.T(), "BatchMoveCall", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *usecaseSuite) TestConfirmAttributes() {
	req := s.Require()
	sess := pendingSession()
	sess.Status = mint.StatusMinted
	sess.NftId = nftId
	s.repo.On("FindOne", mock.Anything, "s1").Return(sess, nil).Once()
	s.repo.On("FindByDigest", mock.Anything, attrHash).Return(nil, domain.ErrNotFound).Once()
	s.client.On("WaitForTransaction", mock.Anything, attrHash, defaultWaitTimeout).
		Return(&sui.TransactionBlock{Digest: attrHash}, nil).Once()
	s.repo.On("Transit", mock.Anything, "s1", mint.StatusMinted, mock.MatchedBy(func(p *mint.SessionPatch) bool {
		return p.Status == mint.StatusCompleted && p.AttributesDigest == attrHash
	})).Return(nil).Once()
	// the cached token is stale once its attributes are written
	s.nft.On("Invalidate", mock.Anything, nftId).Return(nil).Once()
	// announcing is best effort
	s.announcer.On("Announce", "s1").Return(errors.New("discord down")).Once()

	res, err := s.im.ConfirmAttributes(mockCtx, "s1", attrHash)
	req.NoError(err)
	req.Equal(mint.StatusCompleted, res.Status)
	req.Equal(attrHash, res.AttributesDigest)
}

func (s *usecaseSuite) TestConfirmAttributesOutOfOrder() {
	req := s.Require()
	s.repo.On("FindOne", mock.Anything, "s1").Return(pendingSession(), nil).Once()

	_, err := s.im.ConfirmAttributes(mockCtx, "s1", attrHash)
	req.ErrorIs(err, domain.ErrMintStatus)
}

func (s *usecaseSuite) TestConfirmAttributesLostRace() {
	req := s.Require()
	sess := pendingSession()
	sess.Status = mint.StatusMinted
	s.repo.On("FindOne", mock.Anything, "s1").Return(sess, nil).Once()
	s.repo.On("FindByDigest", mock.Anything, attrHash).Return(nil, domain.ErrNotFound).Once()
	s.client.On("WaitForTransaction", mock.Anything, attrHash, mock.Anything).
		Return(&sui.TransactionBlock{Digest: attrHash}, nil).Once()
	s.repo.On("Transit", mock.Anything, "s1", mint.StatusMinted, mock.Anything).Return(domain.ErrMintStatus).Once()

	_, err := s.im.ConfirmAttributes(mockCtx, "s1", attrHash)
	req.ErrorIs(err, domain.ErrMintStatus)
}

func (s *usecaseSuite) TestGetAndFindAll() {
	req := s.Require()
	s.repo.On("FindOne", mock.Anything, "s1").Return(pendingSession(), nil).Once()
	sess, err := s.im.Get(mockCtx, "s1")
	req.NoError(err)
	req.Equal("s1", sess.Id)

	s.repo.On("FindAll", mock.Anything, mock.Anything).Return([]*mint.Session{sess}, nil).Once()
	res, err := s.im.FindAll(mockCtx, mint.WithSender(sender))
	req.NoError(err)
	req.Len(res, 1)
}
