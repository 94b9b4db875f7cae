package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// GetPropertyInput represents the input for fetching one property.
type GetPropertyInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
}

// GetPropertyOutput represents the output of fetching one property.
type GetPropertyOutput struct {
	Property *PropertyOutput
}

// GetPropertyUseCase fetches a single property with an access check.
type GetPropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
	access       *access.Service
}

// NewGetPropertyUseCase creates a new GetPropertyUseCase instance.
func NewGetPropertyUseCase(propertyRepo adapter.PropertyRepository, accessService *access.Service) *GetPropertyUseCase {
	return &GetPropertyUseCase{propertyRepo: propertyRepo, access: accessService}
}

// Execute performs the fetch.
func (uc *GetPropertyUseCase) Execute(ctx context.Context, input GetPropertyInput) (*GetPropertyOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	property, err := uc.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load property: %w", err)
	}
	if property == nil {
		return nil, domainerror.ErrPropertyNotFound
	}
	return &GetPropertyOutput{Property: newPropertyOutput(property)}, nil
}
