package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/accountly/account-system/internal/core/domain"
	"github.com/accountly/account-system/internal/token"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/rpc/user.getUser", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec.Code, resp
}

func TestErrorHandler_Taxonomy(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", domain.ErrUserNotFound, http.StatusNotFound, CodeNotFound},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, CodeBadRequest},
		{"username taken", domain.ErrUsernameTaken, http.StatusBadRequest, CodeBadRequest},
		{"invalid role", domain.ErrInvalidRole, http.StatusBadRequest, CodeBadRequest},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, CodeUnauthorized},
		{"invalid token", token.ErrInvalidToken, http.StatusUnauthorized, CodeUnauthorized},
		{"wrapped gateway failure", errors.New("connection refused"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := renderError(t, tc.err)
			if status != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, status)
			}
			if resp.Code != tc.code {
				t.Fatalf("expected code %s, got %s", tc.code, resp.Code)
			}
		})
	}
}

func TestErrorHandler_ConstraintMessages(t *testing.T) {
	_, emailResp := renderError(t, domain.ErrEmailTaken)
	if emailResp.Error != "Email is already in use." {
		t.Fatalf("unexpected message: %q", emailResp.Error)
	}

	_, nameResp := renderError(t, domain.ErrUsernameTaken)
	if nameResp.Error != "Username is already in use." {
		t.Fatalf("unexpected message: %q", nameResp.Error)
	}
}

func TestErrorHandler_InternalHidesCause(t *testing.T) {
	_, resp := renderError(t, errors.New("password column corrupted"))
	if resp.Error != "internal server error" {
		t.Fatalf("internal cause leaked to caller: %q", resp.Error)
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	status, resp := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "value is required"))
	if status != http.StatusBadRequest || resp.Code != CodeBadRequest {
		t.Fatalf("unexpected mapping: %d %s", status, resp.Code)
	}
	if resp.Error != "value is required" {
		t.Fatalf("unexpected message: %q", resp.Error)
	}
}
