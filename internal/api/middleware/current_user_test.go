package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func runCurrentUser(t *testing.T, header string, buf *bytes.Buffer) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/productions", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	log := zerolog.New(buf).Level(zerolog.DebugLevel)
	called := false
	handler := CurrentUser("secret", log)(func(c echo.Context) error {
		called = true
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("CurrentUser must always call next")
	}
	return c
}

func TestCurrentUser_WithToken(t *testing.T) {
	var buf bytes.Buffer
	c := runCurrentUser(t, "Bearer "+signToken(t, "secret", validClaims()), &buf)

	if c.Get(ContextKeyUsername) != "alice" {
		t.Fatalf("expected identity on context")
	}
	if !strings.Contains(buf.String(), `"username":"alice"`) {
		t.Fatalf("expected identity in log, got %s", buf.String())
	}
}

func TestCurrentUser_Anonymous(t *testing.T) {
	var buf bytes.Buffer
	c := runCurrentUser(t, "", &buf)
	if c.Get(ContextKeyUserID) != nil {
		t.Fatalf("expected no identity")
	}
	if !strings.Contains(buf.String(), "anonymous request") {
		t.Fatalf("expected anonymous log entry, got %s", buf.String())
	}
}

func TestCurrentUser_BadTokenIsIgnored(t *testing.T) {
	var buf bytes.Buffer
	c := runCurrentUser(t, "Bearer junk", &buf)
	if c.Get(ContextKeyUserID) != nil {
		t.Fatalf("bad token must not set identity")
	}
}
