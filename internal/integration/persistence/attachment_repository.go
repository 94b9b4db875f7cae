package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/domain/entity"
	"github.com/property-manager/backend/internal/integration/persistence/model"
)

// attachmentRepository implements the adapter.AttachmentRepository interface.
type attachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository creates a new attachment repository instance.
func NewAttachmentRepository(db *gorm.DB) adapter.AttachmentRepository {
	return &attachmentRepository{
		db: db,
	}
}

// Create creates a new attachment record in the database.
func (r *attachmentRepository) Create(ctx context.Context, attachment *entity.FileAttachment) error {
	attachmentModel := model.FileAttachmentFromEntity(attachment)
	return r.db.WithContext(ctx).Create(attachmentModel).Error
}

// FindByID retrieves an attachment by its ID.
func (r *attachmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.FileAttachment, error) {
	var attachmentModel model.FileAttachmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&attachmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return attachmentModel.ToEntity(), nil
}

// FindByOwner retrieves all attachments of an owning record ordered by
// upload time.
func (r *attachmentRepository) FindByOwner(ctx context.Context, ownerType entity.AttachmentOwner, ownerID uuid.UUID) ([]*entity.FileAttachment, error) {
	var attachmentModels []model.FileAttachmentModel
	result := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", string(ownerType), ownerID).
		Order("uploaded_at ASC").
		Find(&attachmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	attachments := make([]*entity.FileAttachment, len(attachmentModels))
	for i, am := range attachmentModels {
		attachments[i] = am.ToEntity()
	}
	return attachments, nil
}

// CountByOwners returns the number of attachments per owning record ID.
func (r *attachmentRepository) CountByOwners(ctx context.Context, ownerType entity.AttachmentOwner, ownerIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(ownerIDs))
	if len(ownerIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		OwnerID uuid.UUID `gorm:"column:owner_id"`
		Count   int64     `gorm:"column:count"`
	}
	result := r.db.WithContext(ctx).
		Model(&model.FileAttachmentModel{}).
		Select("owner_id, COUNT(*) as count").
		Where("owner_type = ? AND owner_id IN ?", string(ownerType), ownerIDs).
		Group("owner_id").
		Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, row := range rows {
		counts[row.OwnerID] = row.Count
	}
	return counts, nil
}

// Delete removes an attachment record from the database.
func (r *attachmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FileAttachmentModel{}, "id = ?", id).Error
}
