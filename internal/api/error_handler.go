package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accountly/account-system/internal/core/domain"
	"github.com/accountly/account-system/internal/token"
)

// Error kinds surfaced by the procedure layer. Exactly three kinds cover
// every business outcome; authentication failure is handled separately and
// collapses to UNAUTHORIZED.
const (
	CodeInternal     = "INTERNAL_SERVER_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their error kind and HTTP status.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"code": "...", "error": "..."}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, code, msg := resolveError(err, log, c)
		_ = c.JSON(status, errorResponse{Code: code, Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, codeForStatus(he.Code), fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic kinds.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, CodeNotFound, "No user with the given ID was found."
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, CodeBadRequest, "Email is already in use."
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, CodeBadRequest, "Username is already in use."
	case errors.Is(err, domain.ErrInvalidRole):
		return http.StatusBadRequest, CodeBadRequest, "Role must be one of USER, ADMIN, BANNED."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, CodeUnauthorized, "invalid credentials"
	case errors.Is(err, token.ErrInvalidToken):
		return http.StatusUnauthorized, CodeUnauthorized, "invalid session token"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, CodeInternal, "internal server error"
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusInternalServerError:
		return CodeInternal
	default:
		return CodeBadRequest
	}
}
