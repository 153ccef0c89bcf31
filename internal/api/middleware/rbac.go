package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nzwalks/walks-api/internal/core/domain"
)

// RequireRoles enforces role-based access control: the caller's verified
// claim set must intersect the required set. A token that is valid but holds
// none of the required roles is rejected with 403, never 401. Missing claims
// mean the Auth middleware did not run or did not admit the request.
func RequireRoles(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := c.Get(ContextRoles).([]string)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if !domain.RolesIntersect(roles, required) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
