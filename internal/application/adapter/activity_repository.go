// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ActivityFilter defines filter options for listing activity entries.
type ActivityFilter struct {
	UserID     *uuid.UUID
	Action     *entity.ActivityAction
	EntityType string
	Limit      int
	Offset     int
}

// ActivityRepository defines the interface for activity log persistence
// operations.
type ActivityRepository interface {
	// Create appends an activity entry.
	Create(ctx context.Context, entry *entity.ActivityEntry) error

	// FindByFilter retrieves entries matching the filter newest first,
	// along with the total count before limit/offset.
	FindByFilter(ctx context.Context, filter ActivityFilter) ([]*entity.ActivityEntry, int64, error)
}
