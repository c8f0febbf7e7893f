package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/nft"
	"github.com/x-xyz/artmint/domain/nft/mocks"
)

type handlerSuite struct {
	suite.Suite
	e  *echo.Echo
	us *mocks.Usecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.us = &mocks.Usecase{}
	New(s.e, s.us)
}

func (s *handlerSuite) TearDownTest() {
	s.us.AssertExpectations(s.T())
}

func (s *handlerSuite) serve(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestGet() {
	req := s.Require()
	s.us.On("Get", mock.Anything, domain.ObjectId("0xa1")).Return(&nft.Item{
		ObjectId:    "0xa1",
		Name:        "Dusk",
		RarityScore: 18,
	}, nil).Once()

	rec := s.serve(http.MethodGet, "/nfts/0xa1", "")
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"name":"Dusk"`)
	req.Contains(rec.Body.String(), `"rarityScore":18`)
}

func (s *handlerSuite) TestGetErrors() {
	req := s.Require()

	rec := s.serve(http.MethodGet, "/nfts/not-an-id", "")
	req.Equal(http.StatusBadRequest, rec.Code)

	s.us.On("Get", mock.Anything, domain.ObjectId("0xa2")).Return(nil, domain.ErrNotFound).Once()
	rec = s.serve(http.MethodGet, "/nfts/0xa2", "")
	req.Equal(http.StatusNotFound, rec.Code)
}

func (s *handlerSuite) TestDecode() {
	req := s.Require()
	body := `{"data":{"content":{"fields":{"name":"Dusk"}}}}`
	s.us.On("DecodeRaw", mock.Anything, json.RawMessage(body)).
		Return(&nft.Item{Name: "Dusk", ScoreSource: nft.ScoreSourceComputed}, nil).Once()

	rec := s.serve(http.MethodPost, "/nfts/decode", body)
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"name":"Dusk"`)

	s.us.On("DecodeRaw", mock.Anything, json.RawMessage("")).Return(nil, domain.ErrBadParamInput).Once()
	rec = s.serve(http.MethodPost, "/nfts/decode", "")
	req.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestListOwned() {
	req := s.Require()
	owner := domain.Address("0xab")
	s.us.On("ListOwned", mock.Anything, owner, "c1", 5).Return(&nft.Page{
		Items:       []nft.Item{{ObjectId: "0x1"}},
		NextCursor:  "c2",
		HasNextPage: true,
	}, nil).Once()

	rec := s.serve(http.MethodGet, "/accounts/0xab/nfts?cursor=c1&limit=5", "")
	req.Equal(http.StatusOK, rec.Code)
	req.Contains(rec.Body.String(), `"nextCursor":"c2"`)

	rec = s.serve(http.MethodGet, "/accounts/0xab/nfts?limit=many", "")
	req.Equal(http.StatusBadRequest, rec.Code)

	rec = s.serve(http.MethodGet, "/accounts/bob/nfts", "")
	req.Equal(http.StatusBadRequest, rec.Code)
}
