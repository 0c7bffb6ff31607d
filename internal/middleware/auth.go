package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKeyHeader carries the key for write endpoints.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth validates the X-API-Key header against key.
// Used for write endpoints. Returns 401 if authentication fails.
func APIKeyAuth(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "API key not configured")
			}

			got := c.Request().Header.Get(APIKeyHeader)
			if got == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing API key")
			}

			if !ValidateAPIKey(key, got) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid API key")
			}

			return next(c)
		}
	}
}

// ValidateAPIKey checks got against the configured key using constant-time
// comparison. An empty configured key never matches.
func ValidateAPIKey(key, got string) bool {
	if key == "" {
		return false
	}
	return constantEqual(key, got)
}

// constantEqual provides constant-time string equality to avoid timing attacks.
func constantEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
