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

// meterReadingRepository implements the adapter.MeterReadingRepository interface.
type meterReadingRepository struct {
	db *gorm.DB
}

// NewMeterReadingRepository creates a new meter reading repository instance.
func NewMeterReadingRepository(db *gorm.DB) adapter.MeterReadingRepository {
	return &meterReadingRepository{
		db: db,
	}
}

// Create creates a new meter reading in the database.
func (r *meterReadingRepository) Create(ctx context.Context, reading *entity.MeterReading) error {
	readingModel := model.MeterReadingFromEntity(reading)
	return r.db.WithContext(ctx).Create(readingModel).Error
}

// FindByID retrieves a meter reading by its ID.
func (r *meterReadingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MeterReading, error) {
	var readingModel model.MeterReadingModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&readingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return readingModel.ToEntity(), nil
}

// FindByFilter retrieves meter readings matching the filter, ordered by
// reading date ascending. The calculation engine depends on that ordering.
func (r *meterReadingRepository) FindByFilter(ctx context.Context, filter adapter.MeterReadingFilter) ([]*entity.MeterReading, error) {
	query := r.db.WithContext(ctx).Where("property_id = ?", filter.PropertyID)

	if filter.MeterType != nil {
		query = query.Where("meter_type = ?", string(*filter.MeterType))
	}
	if filter.StartDate != nil {
		query = query.Where("reading_date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("reading_date <= ?", filter.EndDate)
	}

	var readingModels []model.MeterReadingModel
	result := query.Order("reading_date ASC").Find(&readingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	readings := make([]*entity.MeterReading, len(readingModels))
	for i, rm := range readingModels {
		readings[i] = rm.ToEntity()
	}
	return readings, nil
}

// Update updates an existing meter reading in the database.
func (r *meterReadingRepository) Update(ctx context.Context, reading *entity.MeterReading) error {
	readingModel := model.MeterReadingFromEntity(reading)
	return r.db.WithContext(ctx).Save(readingModel).Error
}

// Delete removes a meter reading from the database.
func (r *meterReadingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MeterReadingModel{}, "id = ?", id).Error
}
