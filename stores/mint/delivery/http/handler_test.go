package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/mint"
	"github.com/x-xyz/artmint/domain/mint/mocks"
)

type handlerSuite struct {
	suite.Suite
	e  *echo.Echo
	us *mocks.Usecase
	h  *handler
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	// reserves a param slot for the contexts below
	s.e.GET("/mints/:id", func(echo.Context) error { return nil })
	s.us = &mocks.Usecase{}
	s.h = &handler{s.us}
}

func (s *handlerSuite) TearDownTest() {
	s.us.AssertExpectations(s.T())
}

func (s *handlerSuite) newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.Set("ctx", ctx.Background())
	return c, rec
}

func (s *handlerSuite) TestPrepare() {
	req := s.Require()
	s.us.On("Prepare", mock.Anything, mock.MatchedBy(func(f *mint.Form) bool {
		return f.Name == "Dusk" && f.Traits["eyes"] == "Laser" && f.Sender == "0xab"
	})).Return(&mint.Session{Id: "s1", MintTx: "bytes", Status: mint.StatusPendingMint}, nil).Once()

	c, rec := s.newContext(http.MethodPost, "/mints",
		`{"sender":"0xab","name":"Dusk","description":"A quiet evening sky","imageUrl":"u","traits":{"eyes":"Laser"}}`)
	req.NoError(s.h.prepare(c))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"mintTx":"bytes"`)
	req.Contains(rec.Body.String(), `"status":"pending_mint"`)
}

func (s *handlerSuite) TestPrepareErrors() {
	req := s.Require()

	c, rec := s.newContext(http.MethodPost, "/mints", `{"name":`)
	req.NoError(s.h.prepare(c))
	req.Equal(http.StatusBadRequest, rec.Code)

	s.us.On("Prepare", mock.Anything, mock.Anything).Return(nil, domain.ErrInsufficientBalance).Once()
	c, rec = s.newContext(http.MethodPost, "/mints", `{"name":"Dusk"}`)
	req.NoError(s.h.prepare(c))
	req.Equal(http.StatusPaymentRequired, rec.Code)
	req.Contains(rec.Body.String(), `"status":"fail"`)
}

func (s *handlerSuite) TestFindAll() {
	req := s.Require()
	s.us.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*mint.Session{{Id: "s1"}}, nil).Once()

	c, rec := s.newContext(http.MethodGet, "/mints?sender=0xab&status=minted&limit=10", "")
	req.NoError(s.h.findAll(c))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"id":"s1"`)

	c, rec = s.newContext(http.MethodGet, "/mints?status=burned", "")
	req.NoError(s.h.findAll(c))
	req.Equal(http.StatusBadRequest, rec.Code)

	c, rec = s.newContext(http.MethodGet, "/mints?limit=1000", "")
	req.NoError(s.h.findAll(c))
	req.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestGet() {
	req := s.Require()
	s.us.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound).Once()

	c, rec := s.newContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")
	req.NoError(s.h.get(c))
	req.Equal(http.StatusNotFound, rec.Code)
}

func (s *handlerSuite) TestConfirmSplit() {
	req := s.Require()
	s.us.On("ConfirmSplit", mock.Anything, "s1", domain.TxDigest("d0")).
		Return(&mint.Session{Id: "s1", Status: mint.StatusPendingMint, PaymentCoin: "0xc3", MintTx: "mint"}, nil).Once()

	c, rec := s.newContext(http.MethodPost, "/", `{"digest":"d0"}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")
	req.NoError(s.h.confirmSplit(c))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"mintTx":"mint"`)
	req.Contains(rec.Body.String(), `"paymentCoin":"0xc3"`)

	s.us.On("ConfirmSplit", mock.Anything, "s1", domain.TxDigest("used")).
		Return(nil, domain.ErrMintStatus).Once()
	c, rec = s.newContext(http.MethodPost, "/", `{"digest":"used"}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")
	req.NoError(s.h.confirmSplit(c))
	req.Equal(http.StatusConflict, rec.Code)
}

func (s *handlerSuite) TestConfirmMint() {
	req := s.Require()
	s.us.On("ConfirmMint", mock.Anything, "s1", domain.TxDigest("d1")).
		Return(&mint.Session{Id: "s1", Status: mint.StatusMinted, AttributesTx: "attr"}, nil).Once()

	c, rec := s.newContext(http.MethodPost, "/", `{"digest":"d1"}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")
	req.NoError(s.h.confirmMint(c))
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"attributesTx":"attr"`)

	c, rec = s.newContext(http.MethodPost, "/", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")
	req.NoError(s.h.confirmMint(c))
	req.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestConfirmAttributes() {
	req := s.Require()
	s.us.On("ConfirmAttributes", mock.Anything, "s1", domain.TxDigest("d2")).
		Return(nil, domain.ErrMintStatus).Once()

	c, rec := s.newContext(http.MethodPost, "/", `{"digest":"d2"}`)
	c.SetParamNames("id")
	c.SetParamValues("s1")
	req.NoError(s.h.confirmAttributes(c))
	req.Equal(http.StatusConflict, rec.Code)
}
