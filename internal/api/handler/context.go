package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/theater-demo/theater-api/internal/api/middleware"
)

// requestedBy returns the username the auth middleware stored, or "" for an
// anonymous caller. It only feeds the audit trail.
func requestedBy(c echo.Context) string {
	username, _ := c.Get(middleware.ContextKeyUsername).(string)
	return username
}

// callerIsAdmin reports whether the request carried a valid admin token.
func callerIsAdmin(c echo.Context) bool {
	admin, _ := c.Get(middleware.ContextKeyAdmin).(bool)
	return admin
}

// currentUserID fails fast when the route was reached without an identity.
func currentUserID(c echo.Context) (string, error) {
	id, _ := c.Get(middleware.ContextKeyUserID).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// bindAndValidate decodes the body into req and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.Validate(req)
}
