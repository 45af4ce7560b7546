package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAdmin lets the request through only when Auth marked the caller as
// an admin.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if admin, _ := c.Get(ContextKeyAdmin).(bool); !admin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "admin privileges required"})
			}
			return next(c)
		}
	}
}
