package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/accountly/account-system/internal/api/metrics"
	"github.com/accountly/account-system/internal/api/middleware"
	"github.com/accountly/account-system/internal/core/ports"
)

// AuthHandler handles credential sign-in and sign-out. On success the session
// token is returned in the body and mirrored into an HttpOnly cookie so both
// API clients and browsers can carry it.
type AuthHandler struct {
	authService ports.AuthService
	tokenTTL    time.Duration
}

func NewAuthHandler(authService ports.AuthService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, tokenTTL: tokenTTL}
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type signInResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type sessionResponse struct {
	UserID string `json:"user_id"`
}

// SignIn authenticates a user and mints a session token.
//
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  signInResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	raw, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    raw,
		Path:     "/",
		MaxAge:   int(h.tokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, signInResponse{Token: raw, User: toUserResponse(user)})
}

// SignOut clears the session cookie. The token itself stays valid until
// expiry; there is no server-side revocation.
//
// @Summary      Sign out
// @Tags         auth
// @Success      204  "cookie cleared"
// @Router       /auth/signout [post]
func (h *AuthHandler) SignOut(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.NoContent(http.StatusNoContent)
}

// Session returns the identity of the current caller. Requires the session
// middleware.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return c.JSON(http.StatusOK, sessionResponse{UserID: userID})
}

// SignInPage is the guest-only placeholder behind the route guard; actual page
// rendering lives outside this service.
func (h *AuthHandler) SignInPage(c echo.Context) error {
	return c.HTML(http.StatusOK, "<!doctype html><title>Sign in</title><h1>Sign in</h1>")
}
