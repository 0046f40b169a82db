package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accountly/account-system/internal/token"
)

// Guest gates the unauthenticated-only area: a caller holding a valid session
// with an identity is redirected to the application root instead of seeing the
// guarded content. Callers without a session pass through unchanged. The
// decision is made fresh on every request.
func Guest(issuer *token.Issuer, appPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sess, err := issuer.Parse(cookie.Value)
			if err != nil || sess.UserID == "" {
				// Expired or malformed cookie: treat as unauthenticated.
				return next(c)
			}

			return c.Redirect(http.StatusSeeOther, appPath)
		}
	}
}
