package middleware

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	mwecho "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/achuth-0908/scgateway/internal/version"
)

const (
	RequestIDHeader = echo.HeaderXRequestID
	VersionHeader   = "X-Scgateway-Version"
)

type requestIDKey struct{}

// RequestID reuses the caller's X-Request-ID or assigns a new UUID, echoes it
// in the response and stores it in the request context.
func RequestID() echo.MiddlewareFunc {
	return mwecho.RequestIDWithConfig(mwecho.RequestIDConfig{
		Generator:    uuid.NewString,
		TargetHeader: RequestIDHeader,
		RequestIDHandler: func(c echo.Context, id string) {
			ctx := context.WithValue(c.Request().Context(), requestIDKey{}, id)
			c.SetRequest(c.Request().WithContext(ctx))
		},
	})
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Logger attaches base, tagged with the request ID, to the request context
// so handlers can use zerolog.Ctx. Must run after RequestID.
func Logger(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			l := base.With().Str("request_id", GetRequestID(ctx)).Logger()
			c.SetRequest(c.Request().WithContext(l.WithContext(ctx)))
			return next(c)
		}
	}
}

// Version stamps every response with the build version.
func Version() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(VersionHeader, version.Version)
			return next(c)
		}
	}
}
