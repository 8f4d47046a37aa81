package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CORS applies the permissive policy the marketing site relies on and
// answers preflight requests itself with 200 and an empty body. Echo's
// built-in CORS middleware replies 204 to preflights, which the existing
// site contract does not accept.
func CORS() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderAccessControlAllowOrigin, "*")
			h.Set(echo.HeaderAccessControlAllowHeaders, echo.HeaderContentType)
			h.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, DELETE, OPTIONS")

			if c.Request().Method == http.MethodOptions {
				return c.NoContent(http.StatusOK)
			}
			return next(c)
		}
	}
}
