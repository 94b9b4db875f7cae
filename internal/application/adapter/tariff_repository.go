// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// TariffRepository defines the interface for tariff persistence operations.
type TariffRepository interface {
	// Create creates a new tariff in the database.
	Create(ctx context.Context, tariff *entity.Tariff) error

	// FindByID retrieves a tariff by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tariff, error)

	// FindByProperty retrieves all tariffs of a property ordered by type and
	// valid_from descending.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Tariff, error)

	// Update updates an existing tariff in the database.
	Update(ctx context.Context, tariff *entity.Tariff) error

	// Delete removes a tariff from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
