package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/artmint/base/ctx"
)

func TestAddContext(t *testing.T) {
	req := require.New(t)
	e := echo.New()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(r, rec)
	c.Response().Header().Set(echo.HeaderXRequestID, "req-1")

	m := InitMiddleware("testnet")
	h := m.AddContext()(func(c echo.Context) error {
		cont, ok := c.Get("ctx").(ctx.Ctx)
		req.True(ok)
		req.Equal("testnet", cont.Value("network"))
		return c.NoContent(http.StatusNoContent)
	})
	req.NoError(h(c))
	req.Equal(http.StatusNoContent, rec.Code)
}

func TestIdValidators(t *testing.T) {
	e := echo.New()
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/:address/:objectId", ok)

	tests := []struct {
		name   string
		mw     echo.MiddlewareFunc
		value  string
		status int
	}{
		{"short address", IsValidAddress("address"), "0x6", http.StatusOK},
		{"bad address", IsValidAddress("address"), "alice", http.StatusBadRequest},
		{"object id", IsValidObjectId("objectId"), "0xd2e1eb923476e5c7d0c232489db35dad9d68c5a046156e044f2e1cc16424a5ae", http.StatusOK},
		{"too long object id", IsValidObjectId("objectId"), "0x1d2e1eb923476e5c7d0c232489db35dad9d68c5a046156e044f2e1cc16424a5ae", http.StatusBadRequest},
		{"bad object id", IsValidObjectId("objectId"), "0xzz", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			c.SetParamNames("address", "objectId")
			c.SetParamValues(tt.value, tt.value)
			require.NoError(t, tt.mw(ok)(c))
			require.Equal(t, tt.status, rec.Code)
		})
	}
}
