package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role determines what a user may see and change.
type Role string

const (
	// RoleAdmin has full access to every property and user.
	RoleAdmin Role = "admin"
	// RoleManager manages the properties assigned to them and may create
	// plain users.
	RoleManager Role = "manager"
	// RoleUser has read/write access to assigned properties only.
	RoleUser Role = "user"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleManager || r == RoleUser
}

// User represents an account in the system. PropertyIDs holds the
// properties assigned to the user; admins have implicit access to all.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         Role
	CreatedBy    *uuid.UUID
	CreatedAt    time.Time
	PropertyIDs  []uuid.UUID
}

// NewUser creates a new User entity.
func NewUser(username, passwordHash string, role Role, createdBy *uuid.UUID) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedBy:    createdBy,
		CreatedAt:    time.Now().UTC(),
	}
}

// IsAdmin reports whether the user has the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanAccessProperty reports whether the user may read and write records of
// the given property. Admins can access everything; other roles only the
// properties assigned to them.
func (u *User) CanAccessProperty(propertyID uuid.UUID) bool {
	if u.IsAdmin() {
		return true
	}
	for _, id := range u.PropertyIDs {
		if id == propertyID {
			return true
		}
	}
	return false
}
