package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/nzwalks/walks-api/internal/api/middleware"
)

// actor returns the authenticated username injected by the Auth middleware,
// or "" when the route is open to anonymous callers.
func actor(c echo.Context) string {
	username, _ := c.Get(middleware.ContextUsername).(string)
	return username
}
