package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/delivery"
	hcdomain "github.com/x-xyz/artmint/domain/healthcheck"
)

// Status is the body of a healthy response
type Status struct {
	Healthy string `json:"healthy"`
	Network string `json:"network"`
}

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
	network     string
}

// New registers GET /health
func New(e *echo.Echo, us hcdomain.HealthCheckUsecase, network string) {
	handler := &healthCheckHandler{
		healthCheck: us,
		network:     network,
	}
	e.GET("/health", handler.check)
}

// check
//
//	@Summary	Health check
//	@Description	Pings mongo, redis and the full node, skipping the unconfigured ones
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	Status
//	@Failure	503
//	@Router		/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(ctx); err != nil {
		ctx.WithField("err", err).Error("healthCheck.Check failed")
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, Status{Healthy: "ok", Network: h.network})
}
