package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"account-service/app/port"
)

// AccessGuard authenticates requests to the profile endpoints by resolving
// the bearer credential against the identity provider.
type AccessGuard struct {
	identity port.IdentityGateway
	logger   *slog.Logger
}

// NewAccessGuard creates a new access guard
func NewAccessGuard(identity port.IdentityGateway, logger *slog.Logger) *AccessGuard {
	return &AccessGuard{
		identity: identity,
		logger:   logger,
	}
}

// RequireAuth rejects requests without a resolvable session token. On
// success the caller's id and email are stored in the request context as
// "user_id" and "user_email".
func (g *AccessGuard) RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			token := g.extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			identity, err := g.identity.Authenticate(ctx, token)
			if err != nil {
				g.logger.Warn("session token rejected", "error", err, "ip", c.RealIP())
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set("user_id", identity.ID.String())
			c.Set("user_email", identity.Email)

			return next(c)
		}
	}
}

// extractToken reads the session token from the Authorization header,
// accepting both "Bearer token" and raw token forms, with X-Session-Token
// as a fallback for API clients.
func (g *AccessGuard) extractToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if auth != "" {
		if strings.HasPrefix(auth, "Bearer ") {
			return strings.TrimPrefix(auth, "Bearer ")
		}
		return auth
	}

	return c.Request().Header.Get("X-Session-Token")
}
