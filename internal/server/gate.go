package server

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// KeyHeader carries the shared secret on API requests. Browser form
// requests may pass the same value as the "key" form or query parameter.
const KeyHeader = "X-Claimcheck-Key"

// Gate returns middleware enforcing the shared-secret gate. With no secret
// configured the gate fails open, matching the demo's development mode.
func Gate(log zerolog.Logger, secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return next(c)
			}

			presented := c.Request().Header.Get(KeyHeader)
			if presented == "" {
				presented = c.FormValue("key")
			}
			if presented == "" {
				presented = c.QueryParam("key")
			}

			if subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
				log.Warn().
					Str("remote_ip", c.RealIP()).
					Str("path", c.Request().URL.Path).
					Msg("gate rejected request")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing access key")
			}
			return next(c)
		}
	}
}
