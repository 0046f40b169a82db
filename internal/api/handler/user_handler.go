package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/accountly/account-system/internal/api/metrics"
	"github.com/accountly/account-system/internal/core/domain"
	"github.com/accountly/account-system/internal/core/ports"
)

// UserHandler exposes the user procedures over JSON-over-HTTP. Each procedure
// validates its input shape, calls the service, and leaves error translation
// to the central error handler.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// GetUser handles POST /rpc/user.getUser.
//
// @Summary      Fetch a single user by ID, email, or name
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      getUserRequest  true  "Lookup kind and value"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /rpc/user.getUser [post]
func (h *UserHandler) GetUser(c echo.Context) error {
	var req getUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	metrics.UserLookupsTotal.WithLabelValues(req.GetType).Inc()

	user, err := h.service.GetUser(c.Request().Context(), ports.LookupKind(req.GetType), req.Value)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetAllUsers handles POST /rpc/user.getAllUsers.
//
// @Summary      List every user
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      500  {object}  errorResponse
// @Router       /rpc/user.getAllUsers [post]
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.service.GetAllUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponses(users))
}

// UpdateUser handles POST /rpc/user.updateUser.
//
// @Summary      Apply a partial update to a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      updateUserRequest  true  "User ID and the fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /rpc/user.updateUser [post]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpdateUserInput{
		UserID:   req.UserID,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Image:    req.Image,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		in.Role = &role
	}

	user, err := h.service.UpdateUser(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.UserUpdatesTotal.Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// RegisterUser handles POST /rpc/user.registerUser.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerUserRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /rpc/user.registerUser [post]
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.RegisterUser(c.Request().Context(), ports.RegisterUserInput{
		Email:    req.Email,
		Username: req.Username,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		switch err {
		case domain.ErrEmailTaken, domain.ErrUsernameTaken:
			metrics.RegistrationsTotal.WithLabelValues("rejected").Inc()
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, toUserResponse(user))
}
