// Package auth contains authentication-related use cases.
package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// UserOutput represents user data returned to the caller. The password hash
// never leaves the use case layer.
type UserOutput struct {
	ID          uuid.UUID
	Username    string
	Role        entity.Role
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	PropertyIDs []uuid.UUID
}

func newUserOutput(user *entity.User) *UserOutput {
	return &UserOutput{
		ID:          user.ID,
		Username:    user.Username,
		Role:        user.Role,
		CreatedBy:   user.CreatedBy,
		CreatedAt:   user.CreatedAt,
		PropertyIDs: user.PropertyIDs,
	}
}
