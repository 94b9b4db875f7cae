package property

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/entity"
)

// ListPropertiesInput represents the input for listing properties.
type ListPropertiesInput struct {
	UserID uuid.UUID
}

// ListPropertiesOutput represents the output of listing properties.
type ListPropertiesOutput struct {
	Properties []*PropertyOutput
}

// ListPropertiesUseCase lists the properties visible to the user: all of
// them for admins, assigned ones for everyone else.
type ListPropertiesUseCase struct {
	propertyRepo adapter.PropertyRepository
	access       *access.Service
}

// NewListPropertiesUseCase creates a new ListPropertiesUseCase instance.
func NewListPropertiesUseCase(propertyRepo adapter.PropertyRepository, accessService *access.Service) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{propertyRepo: propertyRepo, access: accessService}
}

// Execute performs the listing.
func (uc *ListPropertiesUseCase) Execute(ctx context.Context, input ListPropertiesInput) (*ListPropertiesOutput, error) {
	user, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	var properties []*entity.Property
	if user.IsAdmin() {
		properties, err = uc.propertyRepo.FindAll(ctx)
	} else if len(user.PropertyIDs) > 0 {
		properties, err = uc.propertyRepo.FindByIDs(ctx, user.PropertyIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	output := &ListPropertiesOutput{Properties: make([]*PropertyOutput, 0, len(properties))}
	for _, p := range properties {
		output.Properties = append(output.Properties, newPropertyOutput(p))
	}
	return output, nil
}
