// Package user contains user-management use cases.
//
// The role matrix: admins manage every account; managers see and manage
// only the plain-user accounts they created, and may only hand out access
// to properties they can access themselves; plain users manage nobody.
package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// UserOutput represents user data returned to the caller.
type UserOutput struct {
	ID          uuid.UUID
	Username    string
	Role        entity.Role
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	PropertyIDs []uuid.UUID
}

func newUserOutput(u *entity.User) *UserOutput {
	return &UserOutput{
		ID:          u.ID,
		Username:    u.Username,
		Role:        u.Role,
		CreatedBy:   u.CreatedBy,
		CreatedAt:   u.CreatedAt,
		PropertyIDs: u.PropertyIDs,
	}
}

// managedBy reports whether actor may manage the target account.
func managedBy(actor, target *entity.User) bool {
	if actor.IsAdmin() {
		return true
	}
	if actor.Role != entity.RoleManager {
		return false
	}
	return target.Role == entity.RoleUser && target.CreatedBy != nil && *target.CreatedBy == actor.ID
}
