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

// recurringCostRepository implements the adapter.RecurringCostRepository interface.
type recurringCostRepository struct {
	db *gorm.DB
}

// NewRecurringCostRepository creates a new recurring cost repository instance.
func NewRecurringCostRepository(db *gorm.DB) adapter.RecurringCostRepository {
	return &recurringCostRepository{
		db: db,
	}
}

// Create creates a new recurring cost in the database.
func (r *recurringCostRepository) Create(ctx context.Context, cost *entity.RecurringCost) error {
	costModel := model.RecurringCostFromEntity(cost)
	return r.db.WithContext(ctx).Create(costModel).Error
}

// FindByID retrieves a recurring cost by its ID.
func (r *recurringCostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringCost, error) {
	var costModel model.RecurringCostModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&costModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return costModel.ToEntity(), nil
}

// FindByProperty retrieves all recurring costs of a property ordered by
// start date descending.
func (r *recurringCostRepository) FindByProperty(ctx context.Context, propertyID uuid.UUID) ([]*entity.RecurringCost, error) {
	var costModels []model.RecurringCostModel
	result := r.db.WithContext(ctx).
		Where("property_id = ?", propertyID).
		Order("start_date DESC").
		Find(&costModels)
	if result.Error != nil {
		return nil, result.Error
	}

	costs := make([]*entity.RecurringCost, len(costModels))
	for i, cm := range costModels {
		costs[i] = cm.ToEntity()
	}
	return costs, nil
}

// Update updates an existing recurring cost in the database.
func (r *recurringCostRepository) Update(ctx context.Context, cost *entity.RecurringCost) error {
	costModel := model.RecurringCostFromEntity(cost)
	return r.db.WithContext(ctx).Save(costModel).Error
}

// Delete removes a recurring cost from the database.
func (r *recurringCostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.RecurringCostModel{}, "id = ?", id).Error
}

// ClearContact nulls the contact reference on all recurring costs pointing
// to the given contact.
func (r *recurringCostRepository) ClearContact(ctx context.Context, contactID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.RecurringCostModel{}).
		Where("contact_id = ?", contactID).
		Update("contact_id", nil).Error
}
