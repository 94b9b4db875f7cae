// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// RecurringCostRepository defines the interface for recurring cost
// persistence operations.
type RecurringCostRepository interface {
	// Create creates a new recurring cost in the database.
	Create(ctx context.Context, cost *entity.RecurringCost) error

	// FindByID retrieves a recurring cost by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringCost, error)

	// FindByProperty retrieves all recurring costs of a property ordered by
	// start date descending.
	FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.RecurringCost, error)

	// Update updates an existing recurring cost in the database.
	Update(ctx context.Context, cost *entity.RecurringCost) error

	// Delete removes a recurring cost from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearContact nulls the contact reference on all recurring costs that
	// point to the given contact. Used when a contact is deleted.
	ClearContact(ctx context.Context, contactID uuid.UUID) error
}
