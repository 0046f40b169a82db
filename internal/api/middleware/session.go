package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/accountly/account-system/internal/token"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session_token"

// ContextUserID is the echo context key holding the authenticated user ID.
const ContextUserID = "user_id"

// Session validates the session token and injects the caller's identity into
// the request context. The token is read from the Authorization bearer header
// or, failing that, from the session cookie.
func Session(issuer *token.Issuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := tokenFromRequest(c)
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session token")
			}

			sess, err := issuer.Parse(raw)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}
			if sess.UserID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "session has no identity")
			}

			c.Set(ContextUserID, sess.UserID)
			return next(c)
		}
	}
}

func tokenFromRequest(c echo.Context) string {
	header := c.Request().Header.Get("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}
