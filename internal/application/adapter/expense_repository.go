// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses. Date bounds
// apply to the invoice date, inclusive on both ends.
type ExpenseFilter struct {
	PropertyID uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Category   string
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves expenses matching the filter, ordered by
	// invoice date descending.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// ClearContact nulls the contact reference on all expenses that point to
	// the given contact. Used when a contact is deleted.
	ClearContact(ctx context.Context, contactID uuid.UUID) error
}
