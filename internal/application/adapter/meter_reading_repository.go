// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// MeterReadingFilter defines filter options for listing meter readings.
type MeterReadingFilter struct {
	PropertyID uuid.UUID
	MeterType  *entity.MeterType
	StartDate  *time.Time
	EndDate    *time.Time
}

// MeterReadingRepository defines the interface for meter reading persistence
// operations. Listings are always ordered by reading date ascending; the
// calculation engine depends on that ordering.
type MeterReadingRepository interface {
	// Create creates a new meter reading in the database.
	Create(ctx context.Context, reading *entity.MeterReading) error

	// FindByID retrieves a meter reading by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MeterReading, error)

	// FindByFilter retrieves meter readings matching the filter, ordered by
	// reading date ascending.
	FindByFilter(ctx context.Context, filter MeterReadingFilter) ([]*entity.MeterReading, error)

	// Update updates an existing meter reading in the database.
	Update(ctx context.Context, reading *entity.MeterReading) error

	// Delete removes a meter reading from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
