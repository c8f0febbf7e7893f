package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/artmint/base/ctx"
	"github.com/x-xyz/artmint/base/delivery"
	"github.com/x-xyz/artmint/domain"
	"github.com/x-xyz/artmint/domain/trait"
	"github.com/x-xyz/artmint/middleware"
)

type handler struct {
	catalog *trait.Catalog
	rand    trait.Rand
}

// CatalogResp is the catalog with its statistics.
type CatalogResp struct {
	Categories []trait.CategoryDef `json:"categories"`
	Stats      trait.Stats         `json:"stats"`
}

// ScoreReq carries a selection to score.
type ScoreReq struct {
	Traits trait.Selection `json:"traits"`
}

// ScoreResp is the score of a selection with the contribution of each trait.
type ScoreResp struct {
	Traits    trait.Selection    `json:"traits,omitempty"`
	Score     int                `json:"score"`
	Tier      trait.Tier         `json:"tier"`
	Breakdown []trait.TraitScore `json:"breakdown"`
}

// New registers the trait routes. A nil r uses a process wide source.
func New(e *echo.Echo, catalog *trait.Catalog, r trait.Rand) {
	h := &handler{catalog, r}

	g := e.Group("/traits")

	g.GET("", h.getCatalog, middleware.CacheHttp(time.Minute))

	g.GET("/random", h.random)

	g.POST("/score", h.score)

	g.GET("/:category/:value", h.lookup)
}

// getCatalog
//
//	@Summary		Get the trait catalog
//	@Description	Categories in display order with their options and statistics
//	@Tags			traits
//	@Produce		json
//	@Success		200	{object}	CatalogResp
//	@Router			/traits [get]
func (h *handler) getCatalog(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, CatalogResp{
		Categories: h.catalog.Definitions(),
		Stats:      h.catalog.Stats(),
	})
}

// random
//
//	@Summary		Draw random traits
//	@Description	One weighted draw per category, scored
//	@Tags			traits
//	@Produce		json
//	@Success		200	{object}	ScoreResp
//	@Router			/traits/random [get]
func (h *handler) random(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.toScoreResp(h.catalog.GenerateRandom(h.rand), true))
}

// lookup
//
//	@Summary		Look up a trait option
//	@Tags			traits
//	@Produce		json
//	@Param			category	path		string	true	"category"	example(background)
//	@Param			value		path		string	true	"option"	example(Galaxy)
//	@Success		200			{object}	trait.Option
//	@Failure		404
//	@Router			/traits/{category}/{value} [get]
func (h *handler) lookup(c echo.Context) error {
	opt, ok := h.catalog.Lookup(c.Param("category"), c.Param("value"))
	if !ok {
		return delivery.MakeJsonResp(c, http.StatusNotFound,
			xerrors.Errorf("trait %s=%q: %w", c.Param("category"), c.Param("value"), domain.ErrNotFound))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, opt)
}

// score
//
//	@Summary		Score a selection
//	@Description	Aggregate rarity score, its tier and the contribution of each matched trait
//	@Tags			traits
//	@Accept			json
//	@Produce		json
//	@Param			body	body		ScoreReq	true	"selection"
//	@Success		200		{object}	ScoreResp
//	@Failure		400
//	@Router			/traits/score [post]
func (h *handler) score(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := ScoreReq{}
	if err := c.Bind(&req); err != nil {
		ctx.WithField("err", err).Warn("Bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, xerrors.Errorf("%v: %w", err, domain.ErrInvalidJsonFormat))
	}

	return delivery.MakeJsonResp(c, http.StatusOK, h.toScoreResp(req.Traits, false))
}

func (h *handler) toScoreResp(s trait.Selection, withTraits bool) ScoreResp {
	score := h.catalog.AggregateScore(s)
	res := ScoreResp{
		Score:     score,
		Tier:      trait.ScoreTier(score),
		Breakdown: h.catalog.Breakdown(s),
	}
	if withTraits {
		res.Traits = s
	}
	return res
}
