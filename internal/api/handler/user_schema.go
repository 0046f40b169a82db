package handler

import (
	"time"

	"github.com/accountly/account-system/internal/core/domain"
)

// errorResponse documents the error envelope rendered by the API error
// handler; referenced from the swagger annotations.
type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// --- Request types ---

type getUserRequest struct {
	GetType string `json:"getType" validate:"required,oneof=ID EMAIL NAME"`
	Value   string `json:"value"   validate:"required"`
}

type updateUserRequest struct {
	UserID   string  `json:"userId"             validate:"required"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=1"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1"`
	Image    *string `json:"image,omitempty"`
	Role     *string `json:"role,omitempty"     validate:"omitempty,oneof=USER ADMIN BANNED"`
}

type registerUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Username string `json:"username" validate:"required"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Response types ---

// userResponse is the transport representation of a user. The credential
// value is intentionally absent from the JSON contract.
type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Image     string    `json:"image,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserResponses(users []domain.User) []userResponse {
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out
}
