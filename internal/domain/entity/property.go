// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Property represents a managed property. It is the root aggregate that
// owns meter readings, tariffs, expenses and recurring costs; deleting a
// property cascades to all of them.
type Property struct {
	ID          uuid.UUID
	Name        string
	Address     string
	Description string
	CreatedAt   time.Time
}

// NewProperty creates a new Property entity.
func NewProperty(name, address, description string) *Property {
	return &Property{
		ID:          uuid.New(),
		Name:        name,
		Address:     address,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
