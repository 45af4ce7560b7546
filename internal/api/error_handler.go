package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/theater-demo/theater-api/internal/api/metrics"
	"github.com/theater-demo/theater-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		metrics.ValidationRejectionsTotal.WithLabelValues(verr.Field).Inc()
		return http.StatusUnprocessableEntity, verr.Error()
	}

	switch {
	case errors.Is(err, domain.ErrProductionNotFound),
		errors.Is(err, domain.ErrActorNotFound),
		errors.Is(err, domain.ErrRoleNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, notFoundMessage(err)
	case errors.Is(err, domain.ErrProductionExists),
		errors.Is(err, domain.ErrActorExists),
		errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, existsMessage(err)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func notFoundMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductionNotFound):
		return "production not found"
	case errors.Is(err, domain.ErrActorNotFound):
		return "actor not found"
	case errors.Is(err, domain.ErrRoleNotFound):
		return "role not found"
	default:
		return "user not found"
	}
}

func existsMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductionExists):
		return "a production with this title already exists"
	case errors.Is(err, domain.ErrActorExists):
		return "an actor with this name already exists"
	default:
		return "user already exists"
	}
}
