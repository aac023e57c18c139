// Package auth holds the bearer-token middleware protecting the patient
// record API. Tokens are HS256 JWTs signed with the shared AUTH_SECRET;
// when no secret is configured the API runs open, which is only acceptable
// in development.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type contextKey string

// SubjectKey carries the authenticated subject on the request context.
const SubjectKey contextKey = "auth_subject"

type Claims struct {
	jwt.RegisteredClaims
}

// JWTConfig configures the bearer middleware.
type JWTConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

// JWTMiddleware validates the Authorization bearer token on every request.
// The subject claim is exposed both on the echo context (for the audit and
// rate limit middleware) and on the request context.
func JWTMiddleware(cfg JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization format")
			}

			claims := &Claims{}
			opts := []jwt.ParserOption{
				jwt.WithValidMethods([]string{"HS256"}),
			}
			if cfg.Issuer != "" {
				opts = append(opts, jwt.WithIssuer(cfg.Issuer))
			}
			if cfg.Audience != "" {
				opts = append(opts, jwt.WithAudience(cfg.Audience))
			}

			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(cfg.Secret), nil
			}, opts...)
			if err != nil || !token.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("auth_subject", claims.Subject)
			ctx := context.WithValue(c.Request().Context(), SubjectKey, claims.Subject)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// DevAuthMiddleware tags every request with a fixed development subject and
// never rejects. Used when AUTH_SECRET is unset.
func DevAuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("auth_subject", "dev-user")
			ctx := context.WithValue(c.Request().Context(), SubjectKey, "dev-user")
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// SubjectFromContext returns the authenticated subject, or "" when the
// request was not authenticated.
func SubjectFromContext(ctx context.Context) string {
	if sub, ok := ctx.Value(SubjectKey).(string); ok {
		return sub
	}
	return ""
}
