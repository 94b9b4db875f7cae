// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/domain/entity"
)

// AttachmentRepository defines the interface for file attachment persistence
// operations.
type AttachmentRepository interface {
	// Create creates a new attachment record in the database.
	Create(ctx context.Context, attachment *entity.FileAttachment) error

	// FindByID retrieves an attachment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.FileAttachment, error)

	// FindByOwner retrieves all attachments of an owning record ordered by
	// upload time.
	FindByOwner(ctx context.Context, ownerType entity.AttachmentOwner, ownerID uuid.UUID) ([]*entity.FileAttachment, error)

	// CountByOwners returns the number of attachments per owning record ID.
	// IDs without attachments are absent from the map.
	CountByOwners(ctx context.Context, ownerType entity.AttachmentOwner, ownerIDs []uuid.UUID) (map[uuid.UUID]int64, error)

	// Delete removes an attachment record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
