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

// tariffRepository implements the adapter.TariffRepository interface.
type tariffRepository struct {
	db *gorm.DB
}

// NewTariffRepository creates a new tariff repository instance.
func NewTariffRepository(db *gorm.DB) adapter.TariffRepository {
	return &tariffRepository{
		db: db,
	}
}

// Create creates a new tariff in the database.
func (r *tariffRepository) Create(ctx context.Context, tariff *entity.Tariff) error {
	tariffModel := model.TariffFromEntity(tariff)
	return r.db.WithContext(ctx).Create(tariffModel).Error
}

// FindByID retrieves a tariff by its ID.
func (r *tariffRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tariff, error) {
	var tariffModel model.TariffModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&tariffModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tariffModel.ToEntity(), nil
}

// FindByProperty retrieves all tariffs of a property ordered by type and
// valid_from descending.
func (r *tariffRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.Tariff, error) {
	var tariffModels []model.TariffModel
	result := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("tariff_type ASC, valid_from DESC").
		Find(&tariffModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tariffs := make([]*entity.Tariff, len(tariffModels))
	for i, tm := range tariffModels {
		tariffs[i] = tm.ToEntity()
	}
	return tariffs, nil
}

// Update updates an existing tariff in the database.
func (r *tariffRepository) Update(ctx context.Context, tariff *entity.Tariff) error {
	tariffModel := model.TariffFromEntity(tariff)
	return r.db.WithContext(ctx).Save(tariffModel).Error
}

// Delete removes a tariff from the database.
func (r *tariffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TariffModel{}, "id = ?", id).Error
}
