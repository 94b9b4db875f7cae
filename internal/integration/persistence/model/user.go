package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// UserModel represents the users table in the database. Property
// assignments live in the user_properties join table.
type UserModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Username     string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	Role         string     `gorm:"type:varchar(20);not null"`
	CreatedBy    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time  `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Properties []*PropertyModel `gorm:"many2many:user_properties;joinForeignKey:user_id;joinReferences:property_id"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	user := &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         entity.Role(m.Role),
		CreatedBy:    m.CreatedBy,
		CreatedAt:    m.CreatedAt,
	}
	for _, p := range m.Properties {
		user.PropertyIDs = append(user.PropertyIDs, p.ID)
	}
	return user
}

// UserFromEntity creates a UserModel from a domain User entity. The
// property assignments are not mapped here; the repository replaces the
// association explicitly.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedBy:    user.CreatedBy,
		CreatedAt:    user.CreatedAt,
	}
}
