package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/theater-demo/theater-api/internal/core/domain"
)

func TestHTTPErrorHandler_Mapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"validation", &domain.ValidationError{Field: "image", Err: domain.ErrInvalidImage}, http.StatusUnprocessableEntity, "image: "},
		{"production not found", fmt.Errorf("load: %w", domain.ErrProductionNotFound), http.StatusNotFound, "production not found"},
		{"actor not found", domain.ErrActorNotFound, http.StatusNotFound, "actor not found"},
		{"role not found", domain.ErrRoleNotFound, http.StatusNotFound, "role not found"},
		{"production exists", fmt.Errorf("create production: %w", domain.ErrProductionExists), http.StatusConflict, "title already exists"},
		{"user exists", domain.ErrUserExists, http.StatusConflict, "user already exists"},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"echo error", echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest, "invalid payload"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			NewHTTPErrorHandler(zerolog.Nop())(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if !strings.Contains(body.Error, tc.msg) {
				t.Fatalf("expected message containing %q, got %q", tc.msg, body.Error)
			}
		})
	}
}

func TestHTTPErrorHandler_HidesUnexpectedErrors(t *testing.T) {
	var logs bytes.Buffer
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/productions", nil), rec)

	NewHTTPErrorHandler(zerolog.New(&logs))(errors.New("mongo: connection reset"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal cause leaked: %s", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "connection reset") {
		t.Fatalf("expected cause to be logged, got %s", logs.String())
	}
}

func TestHTTPErrorHandler_SkipsCommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	NewHTTPErrorHandler(zerolog.Nop())(domain.ErrActorNotFound, c)

	if rec.Code != http.StatusOK || rec.Body.String() != "done" {
		t.Fatalf("committed response was overwritten: %d %q", rec.Code, rec.Body.String())
	}
}
