package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/delivery"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/mint"
)

const maxPageSize = 100

type handler struct {
	mint mint.Usecase
}

func New(e *echo.Echo, mint mint.Usecase) {
	h := &handler{mint}

	e.POST("/mints", h.prepare)
	e.GET("/mints", h.findAll)
	e.GET("/mints/:id", h.get)
	e.POST("/mints/:id/split", h.confirmSplit)
	e.POST("/mints/:id/minted", h.confirmMint)
	e.POST("/mints/:id/attributes", h.confirmAttributes)
}

// ConfirmReq carries the digest of a transaction the wallet executed.
type ConfirmReq struct {
	Digest domain.TxDigest `json:"digest"`
}

// prepare
//
//	@Summary		Start a mint
//	@Description	Validates the form and returns the unsigned mint transaction, or the split transaction that makes a coin worth the mint price
//	@Tags			mints
//	@Accept			json
//	@Produce		json
//	@Param			body	body		mint.Form	true	"mint form"
//	@Success		200		{object}	mint.Session
//	@Failure		400
//	@Failure		402
//	@Failure		409
//	@Failure		502
//	@Router			/mints [post]
func (h *handler) prepare(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	form := mint.Form{}
	if err := c.Bind(&form); err != nil {
		ctx.WithField("err", err).Info("Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidJsonFormat)
	}

	s, err := h.mint.Prepare(ctx, &form)
	if err != nil {
		ctx.WithField("err", err).Error("mint.Prepare failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, s)
}

// findAll
//
//	@Summary		List mint sessions
//	@Tags			mints
//	@Produce		json
//	@Param			sender	query		string	false	"minter address"
//	@Param			status	query		string	false	"pending_split, pending_mint, minted or completed"
//	@Param			offset	query		int		false	"offset"	example(0)
//	@Param			limit	query		int		false	"limit"		example(20)
//	@Success		200		{array}		mint.Session
//	@Failure		400
//	@Router			/mints [get]
func (h *handler) findAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Sender string `query:"sender"`
		Status string `query:"status"`
		Offset int    `query:"offset"`
		Limit  int    `query:"limit"`
	}

	p := params{}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Offset < 0 || p.Limit < 0 || p.Limit > maxPageSize {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	opts := []mint.FindAllOptionsFunc{mint.WithPagination(p.Offset, p.Limit)}
	if p.Sender != "" {
		opts = append(opts, mint.WithSender(domain.Address(p.Sender)))
	}
	if p.Status != "" {
		status := mint.Status(p.Status)
		if !status.IsValid() {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		opts = append(opts, mint.WithStatus(status))
	}

	res, err := h.mint.FindAll(ctx, opts...)
	if err != nil {
		ctx.WithField("err", err).Error("mint.FindAll failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary		Get a mint session
//	@Tags			mints
//	@Produce		json
//	@Param			id	path		string	true	"session id"
//	@Success		200	{object}	mint.Session
//	@Failure		404
//	@Router			/mints/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	s, err := h.mint.Get(ctx, c.Param("id"))
	if err != nil {
		ctx.WithField("err", err).Error("mint.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, s)
}

// confirmSplit
//
//	@Summary		Confirm the split transaction
//	@Description	Reads the coin worth the mint price and returns the unsigned mint transaction
//	@Tags			mints
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"session id"
//	@Param			body	body		ConfirmReq	true	"executed split digest"
//	@Success		200		{object}	mint.Session
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Failure		422
//	@Failure		504
//	@Router			/mints/{id}/split [post]
func (h *handler) confirmSplit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req, err := bindConfirm(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	s, err := h.mint.ConfirmSplit(ctx, c.Param("id"), req.Digest)
	if err != nil {
		ctx.WithField("err", err).Error("mint.ConfirmSplit failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, s)
}

// confirmMint
//
//	@Summary		Confirm the mint transaction
//	@Description	Reads the created token and returns the unsigned attribute transaction
//	@Tags			mints
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"session id"
//	@Param			body	body		ConfirmReq	true	"executed mint digest"
//	@Success		200		{object}	mint.Session
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Failure		422
//	@Failure		504
//	@Router			/mints/{id}/minted [post]
func (h *handler) confirmMint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req, err := bindConfirm(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	s, err := h.mint.ConfirmMint(ctx, c.Param("id"), req.Digest)
	if err != nil {
		ctx.WithField("err", err).Error("mint.ConfirmMint failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, s)
}

// confirmAttributes
//
//	@Summary		Confirm the attribute transaction
//	@Tags			mints
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"session id"
//	@Param			body	body		ConfirmReq	true	"executed attribute digest"
//	@Success		200		{object}	mint.Session
//	@Failure		400
//	@Failure		404
//	@Failure		409
//	@Failure		504
//	@Router			/mints/{id}/attributes [post]
func (h *handler) confirmAttributes(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req, err := bindConfirm(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	s, err := h.mint.ConfirmAttributes(ctx, c.Param("id"), req.Digest)
	if err != nil {
		ctx.WithField("err", err).Error("mint.ConfirmAttributes failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, s)
}

func bindConfirm(c echo.Context) (*ConfirmReq, error) {
	req := ConfirmReq{}
	if err := c.Bind(&req); err != nil {
		return nil, domain.ErrInvalidJsonFormat
	}
	if req.Digest == "" {
		return nil, domain.ErrBadParamInput
	}
	return &req, nil
}
