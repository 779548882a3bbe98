package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter()
	e := echo.New()

	handler := rl.Middleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	do := func(ip string) error {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		return handler(e.NewContext(req, rec))
	}

	t.Run("Allows within burst", func(t *testing.T) {
		for i := 0; i < burstFrontend; i++ {
			require.NoError(t, do("10.0.0.1"))
		}
	})

	t.Run("Rejects over burst", func(t *testing.T) {
		err := do("10.0.0.1")

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusTooManyRequests, httpErr.Code)
	})

	t.Run("Separate budget per IP", func(t *testing.T) {
		assert.NoError(t, do("10.0.0.2"))
	})
}
