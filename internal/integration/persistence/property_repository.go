// Package persistence implements repository interfaces for database operations.
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

// propertyRepository implements the adapter.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository instance.
func NewPropertyRepository(db *gorm.DB) adapter.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// Create creates a new property in the database.
func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyModel := model.PropertyFromEntity(property)
	return r.db.WithContext(ctx).Create(propertyModel).Error
}

// FindByID retrieves a property by its ID.
func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	var propertyModel model.PropertyModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&propertyModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return propertyModel.ToEntity(), nil
}

// FindAll retrieves all properties ordered by name.
func (r *propertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	var propertyModels []model.PropertyModel
	result := r.db.WithContext(ctx).Order("name ASC").Find(&propertyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	properties := make([]*entity.Property, len(propertyModels))
	for i, pm := range propertyModels {
		properties[i] = pm.ToEntity()
	}
	return properties, nil
}

// FindByIDs retrieves the properties with the given IDs, ordered by name.
func (r *propertyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Property, error) {
	if len(ids) == 0 {
		return []*entity.Property{}, nil
	}

	var propertyModels []model.PropertyModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&propertyModels)
	if result.Error != nil {
		return nil, result.Error
	}

	properties := make([]*entity.Property, len(propertyModels))
	for i, pm := range propertyModels {
		properties[i] = pm.ToEntity()
	}
	return properties, nil
}

// Update updates an existing property in the database.
func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	propertyModel := model.PropertyFromEntity(property)
	return r.db.WithContext(ctx).Save(propertyModel).Error
}

// Delete removes a property and all its dependent records from the database.
func (r *propertyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expenseIDs := tx.Model(&model.ExpenseModel{}).Select("id").Where("property_id = ?", id)
		if err := tx.Where("owner_type = ? AND owner_id IN (?)", string(entity.AttachmentOwnerExpense), expenseIDs).
			Delete(&model.FileAttachmentModel{}).Error; err != nil {
			return err
		}

		costIDs := tx.Model(&model.RecurringCostModel{}).Select("id").Where("property_id = ?", id)
		if err := tx.Where("owner_type = ? AND owner_id IN (?)", string(entity.AttachmentOwnerRecurringCost), costIDs).
			Delete(&model.FileAttachmentModel{}).Error; err != nil {
			return err
		}

		for _, m := range []interface{}{
			&model.MeterReadingModel{},
			&model.TariffModel{},
			&model.ExpenseModel{},
			&model.RecurringCostModel{},
		} {
			if err := tx.Where("property_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}

		if err := tx.Exec("DELETE FROM user_properties WHERE property_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&model.PropertyModel{}, "id = ?", id).Error
	})
}
