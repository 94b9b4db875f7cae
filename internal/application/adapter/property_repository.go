// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// PropertyRepository defines the interface for property persistence operations.
type PropertyRepository interface {
	// Create creates a new property in the database.
	Create(ctx context.Context, property *entity.Property) error

	// FindByID retrieves a property by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)

	// FindAll retrieves all properties ordered by name.
	FindAll(ctx context.Context) ([]*entity.Property, error)

	// FindByIDs retrieves the properties with the given IDs, ordered by name.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Property, error)

	// Update updates an existing property in the database.
	Update(ctx context.Context, property *entity.Property) error

	// Delete removes a property and its dependent records from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
