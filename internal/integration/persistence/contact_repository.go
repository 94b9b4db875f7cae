package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/domain/entity"
	"github.com/property-manager/backend/internal/integration/persistence/model"
)

// contactRepository implements the adapter.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository instance.
func NewContactRepository(db *gorm.DB) adapter.ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// Create creates a new contact in the database.
func (r *contactRepository) Create(ctx context.Context, contact *entity.Contact) error {
	contactModel := model.ContactFromEntity(contact)
	return r.db.WithContext(ctx).Create(contactModel).Error
}

// FindByID retrieves a contact by its ID.
func (r *contactRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error) {
	var contactModel model.ContactModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&contactModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return contactModel.ToEntity(), nil
}

// FindAll retrieves contacts ordered by name. A non-empty search term
// filters by case-insensitive match on name or company.
func (r *contactRepository) FindAll(ctx context.Context, search string) ([]*entity.Contact, error) {
	query := r.db.WithContext(ctx).Model(&model.ContactModel{})

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(company) LIKE ?", pattern, pattern)
	}

	var contactModels []model.ContactModel
	result := query.Order("name ASC").Find(&contactModels)
	if result.Error != nil {
		return nil, result.Error
	}

	contacts := make([]*entity.Contact, len(contactModels))
	for i, cm := range contactModels {
		contacts[i] = cm.ToEntity()
	}
	return contacts, nil
}

// Update updates an existing contact in the database.
func (r *contactRepository) Update(ctx context.Context, contact *entity.Contact) error {
	contactModel := model.ContactFromEntity(contact)
	return r.db.WithContext(ctx).Save(contactModel).Error
}

// Delete removes a contact from the database.
func (r *contactRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ContactModel{}, "id = ?", id).Error
}
