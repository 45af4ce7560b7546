package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// CurrentUser resolves the caller's identity before every request when a
// bearer token is present. It logs who is calling and never rejects; routes
// that need an identity still go through Auth.
func CurrentUser(jwtSecret string, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				log.Debug().Str("path", c.Request().URL.Path).Msg("anonymous request")
				return next(c)
			}

			claims, err := bearerClaims(header, jwtSecret)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Request().URL.Path).Msg("ignoring unusable credentials")
				return next(c)
			}

			setIdentity(c, claims)
			log.Debug().
				Str("user_id", c.Get(ContextKeyUserID).(string)).
				Str("username", c.Get(ContextKeyUsername).(string)).
				Str("path", c.Request().URL.Path).
				Msg("current user")
			return next(c)
		}
	}
}
