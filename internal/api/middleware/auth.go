package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys under which the Auth middleware exposes verified claims.
const (
	ContextUsername = "username"
	ContextRoles    = "roles"
)

// Config carries the verification parameters for the access guard. All
// values are immutable process-wide state, safely shared across requests.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
}

// accessClaims mirrors the claim set the token issuer signs.
type accessClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Auth validates the bearer token and injects the verified claims into the
// request context. Every failure mode — missing header, wrong scheme, bad
// signature, expired token, wrong issuer or audience — rejects with the same
// 401 so the response does not reveal which check failed.
func Auth(cfg Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := &accessClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(cfg.Secret), nil
			},
				jwt.WithIssuer(cfg.Issuer),
				jwt.WithAudience(cfg.Audience),
				jwt.WithExpirationRequired(),
			)
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextUsername, claims.Subject)
			c.Set(ContextRoles, claims.Roles)

			return next(c)
		}
	}
}
