package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Context keys set by Auth and CurrentUser.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyAdmin    = "admin"
)

var (
	errMissingHeader = errors.New("missing authorization header")
	errBadHeader     = errors.New("invalid authorization header")
	errBadToken      = errors.New("invalid token")
)

// Auth validates the bearer token and injects its claims into the context.
// Requests without a valid token are rejected with 401.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := bearerClaims(c.Request().Header.Get(echo.HeaderAuthorization), jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			setIdentity(c, claims)
			return next(c)
		}
	}
}

func bearerClaims(header, secret string) (jwt.MapClaims, error) {
	if header == "" {
		return nil, errMissingHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, errBadHeader
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, errBadToken
	}
	if sub, _ := claims["sub"].(string); sub == "" {
		return nil, errBadToken
	}
	return claims, nil
}

func setIdentity(c echo.Context, claims jwt.MapClaims) {
	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	admin, _ := claims["admin"].(bool)

	c.Set(ContextKeyUserID, sub)
	c.Set(ContextKeyUsername, username)
	c.Set(ContextKeyAdmin, admin)
}
