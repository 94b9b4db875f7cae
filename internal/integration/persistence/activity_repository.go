package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/domain/entity"
	"github.com/property-manager/backend/internal/integration/persistence/model"
)

// activityRepository implements the adapter.ActivityRepository interface.
type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository instance.
func NewActivityRepository(db *gorm.DB) adapter.ActivityRepository {
	return &activityRepository{
		db: db,
	}
}

// Create appends an activity entry.
func (r *activityRepository) Create(ctx context.Context, entry *entity.ActivityEntry) error {
	entryModel := model.ActivityEntryFromEntity(entry)
	return r.db.WithContext(ctx).Create(entryModel).Error
}

// FindByFilter retrieves entries matching the filter newest first, along
// with the total count before limit/offset.
func (r *activityRepository) FindByFilter(ctx context.Context, filter adapter.ActivityFilter) ([]*entity.ActivityEntry, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.ActivityEntryModel{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Action != nil {
		query = query.Where("action = ?", string(*filter.Action))
	}
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entryModels []model.ActivityEntryModel
	result := query.
		Order("timestamp DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&entryModels)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	entries := make([]*entity.ActivityEntry, len(entryModels))
	for i, em := range entryModels {
		entries[i] = em.ToEntity()
	}
	return entries, total, nil
}
