// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ContactRepository defines the interface for contact persistence operations.
type ContactRepository interface {
	// Create creates a new contact in the database.
	Create(ctx context.Context, contact *entity.Contact) error

	// FindByID retrieves a contact by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// FindAll retrieves contacts ordered by name. A non-empty search term
	// filters by case-insensitive match on name or company.
	FindAll(ctx context.Context, search string) ([]*entity.Contact, error)

	// Update updates an existing contact in the database.
	Update(ctx context.Context, contact *entity.Contact) error

	// Delete removes a contact from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
