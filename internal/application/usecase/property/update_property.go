package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// UpdatePropertyInput represents the input for property updates.
type UpdatePropertyInput struct {
	UserID      uuid.UUID
	PropertyID  uuid.UUID
	Name        string
	Address     string
	Description string
	IPAddress   string
}

// UpdatePropertyOutput represents the output of property updates.
type UpdatePropertyOutput struct {
	Property *PropertyOutput
}

// UpdatePropertyUseCase handles property updates. Any user with access to
// the property may update it.
type UpdatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
	access       *access.Service
	recorder     *activity.Recorder
}

// NewUpdatePropertyUseCase creates a new UpdatePropertyUseCase instance.
func NewUpdatePropertyUseCase(propertyRepo adapter.PropertyRepository, accessService *access.Service, recorder *activity.Recorder) *UpdatePropertyUseCase {
	return &UpdatePropertyUseCase{propertyRepo: propertyRepo, access: accessService, recorder: recorder}
}

// Execute performs the update.
func (uc *UpdatePropertyUseCase) Execute(ctx context.Context, input UpdatePropertyInput) (*UpdatePropertyOutput, error) {
	user, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	property, err := uc.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if property == nil {
		return nil, domainerror.ErrPropertyNotFound
	}

	property.Name = input.Name
	property.Address = input.Address
	property.Description = input.Description

	if err := uc.propertyRepo.Update(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionUpdate, "property", &property.ID, property.Name, input.IPAddress)

	return &UpdatePropertyOutput{Property: newPropertyOutput(property)}, nil
}
