package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/delivery"
	"github.com/x-xyz/artmint/domain/collection"
)

type handler struct {
	collection collection.Usecase
}

func New(e *echo.Echo, collection collection.Usecase) {
	h := &handler{collection}

	e.GET("/collection", h.get)
}

// get
//
//	@Summary		Get collection info
//	@Description	Supply, mint price and trait statistics of the configured collection
//	@Tags			collection
//	@Produce		json
//	@Success		200	{object}	collection.Info
//	@Failure		404
//	@Failure		502
//	@Router			/collection [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	info, err := h.collection.Get(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("collection.Get failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, info)
}
