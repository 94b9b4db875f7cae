package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/usecase/user"
)

// CreateUserRequest represents the request to create a user account.
type CreateUserRequest struct {
	Username    string      `json:"username" binding:"required"`
	Password    string      `json:"password" binding:"required"`
	Role        string      `json:"role" binding:"required"`
	PropertyIDs []uuid.UUID `json:"property_ids"`
}

// UpdateUserRequest represents the request to update a user account. Empty
// password keeps the current one.
type UpdateUserRequest struct {
	Password    string      `json:"password"`
	Role        string      `json:"role" binding:"required"`
	PropertyIDs []uuid.UUID `json:"property_ids"`
}

// UserResponse represents a user account in API responses.
type UserResponse struct {
	ID          uuid.UUID   `json:"id"`
	Username    string      `json:"username"`
	Role        string      `json:"role"`
	CreatedBy   *uuid.UUID  `json:"created_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	PropertyIDs []uuid.UUID `json:"property_ids"`
}

// ToUserResponse converts a user output to a response DTO.
func ToUserResponse(out *user.UserOutput) *UserResponse {
	return &UserResponse{
		ID:          out.ID,
		Username:    out.Username,
		Role:        string(out.Role),
		CreatedBy:   out.CreatedBy,
		CreatedAt:   out.CreatedAt,
		PropertyIDs: out.PropertyIDs,
	}
}

// ToUserListResponse converts a list of user outputs to response DTOs.
func ToUserListResponse(outs []*user.UserOutput) []*UserResponse {
	responses := make([]*UserResponse, len(outs))
	for i, out := range outs {
		responses[i] = ToUserResponse(out)
	}
	return responses
}
