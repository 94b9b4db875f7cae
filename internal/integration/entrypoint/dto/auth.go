package dto

import (
	"github.com/property-manager/backend/internal/application/usecase/auth"
)

// LoginRequest represents the login request body.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ToLoginResponse converts a login output to a response DTO.
func ToLoginResponse(out *auth.LoginOutput) *LoginResponse {
	return &LoginResponse{
		Token: out.Token,
		User:  toUserResponseFromAuth(out.User),
	}
}

func toUserResponseFromAuth(out *auth.UserOutput) *UserResponse {
	if out == nil {
		return nil
	}
	return &UserResponse{
		ID:          out.ID,
		Username:    out.Username,
		Role:        string(out.Role),
		CreatedBy:   out.CreatedBy,
		CreatedAt:   out.CreatedAt,
		PropertyIDs: out.PropertyIDs,
	}
}

// ToCurrentUserResponse converts the current-user output to a response DTO.
func ToCurrentUserResponse(out *auth.CurrentUserOutput) *UserResponse {
	return toUserResponseFromAuth(out.User)
}
