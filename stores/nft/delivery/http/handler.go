package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/delivery"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/nft"
	"github.com/x-xyz/artmint/middleware"
)

// maxRecordSize bounds the body of a decode request
const maxRecordSize = 1 << 20

type handler struct {
	nft nft.Usecase
}

func New(e *echo.Echo, nft nft.Usecase) {
	h := &handler{nft}

	e.GET("/nfts/:objectId", h.get, middleware.IsValidObjectId("objectId"))

	e.POST("/nfts/decode", h.decode)

	e.GET("/accounts/:address/nfts", h.listOwned, middleware.IsValidAddress("address"))
}

// get
//
//	@Summary		Get an NFT
//	@Description	Decoded traits, rarity score and display fields of one token
//	@Tags			nfts
//	@Produce		json
//	@Param			objectId	path		string	true	"object id"	example(0xa1)
//	@Success		200			{object}	nft.Item
//	@Failure		400
//	@Failure		404
//	@Failure		502
//	@Router			/nfts/{objectId} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	item, err := h.nft.Get(ctx, domain.ObjectId(c.Param("objectId")))
	if err != nil {
		ctx.WithField("err", err).Error("nft.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, item)
}

// decode
//
//	@Summary		Decode a raw record
//	@Description	Decode an object response the client fetched from a full node
//	@Tags			nfts
//	@Accept			json
//	@Produce		json
//	@Success		200	{object}	nft.Item
//	@Failure		400
//	@Router			/nfts/decode [post]
func (h *handler) decode(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxRecordSize))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	item, err := h.nft.DecodeRaw(ctx, json.RawMessage(body))
	if err != nil {
		ctx.WithField("err", err).Error("nft.DecodeRaw failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, item)
}

// listOwned
//
//	@Summary		List owned NFTs
//	@Description	Tokens of the collection held by an account, in full node order
//	@Tags			nfts
//	@Produce		json
//	@Param			address	path		string	true	"owner address"
//	@Param			cursor	query		string	false	"cursor from the previous page"
//	@Param			limit	query		int		false	"page size, at most 50"	example(20)
//	@Success		200		{object}	nft.Page
//	@Failure		400
//	@Failure		502
//	@Router			/accounts/{address}/nfts [get]
func (h *handler) listOwned(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Cursor string `query:"cursor"`
		Limit  int    `query:"limit"`
	}

	p := params{}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	page, err := h.nft.ListOwned(ctx, domain.Address(c.Param("address")), p.Cursor, p.Limit)
	if err != nil {
		ctx.WithField("err", err).Error("nft.ListOwned failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, page)
}
