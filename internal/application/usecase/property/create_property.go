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

// CreatePropertyInput represents the input for property creation.
type CreatePropertyInput struct {
	UserID      uuid.UUID
	Name        string
	Address     string
	Description string
	IPAddress   string
}

// CreatePropertyOutput represents the output of property creation.
type CreatePropertyOutput struct {
	Property *PropertyOutput
}

// CreatePropertyUseCase handles property creation. Admins and managers may
// create properties; a manager is automatically assigned to the property
// they create so it shows up in their own listings.
type CreatePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
	userRepo     adapter.UserRepository
	access       *access.Service
	recorder     *activity.Recorder
}

// NewCreatePropertyUseCase creates a new CreatePropertyUseCase instance.
func NewCreatePropertyUseCase(
	propertyRepo adapter.PropertyRepository,
	userRepo adapter.UserRepository,
	accessService *access.Service,
	recorder *activity.Recorder,
) *CreatePropertyUseCase {
	return &CreatePropertyUseCase{
		propertyRepo: propertyRepo,
		userRepo:     userRepo,
		access:       accessService,
		recorder:     recorder,
	}
}

// Execute performs the property creation.
func (uc *CreatePropertyUseCase) Execute(ctx context.Context, input CreatePropertyInput) (*CreatePropertyOutput, error) {
	user, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role == entity.RoleUser {
		return nil, domainerror.ErrInsufficientRole
	}

	property := entity.NewProperty(input.Name, input.Address, input.Description)
	if err := uc.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	if user.Role == entity.RoleManager {
		user.PropertyIDs = append(user.PropertyIDs, property.ID)
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to assign property to manager: %w", err)
		}
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionCreate, "property", &property.ID, property.Name, input.IPAddress)

	return &CreatePropertyOutput{Property: newPropertyOutput(property)}, nil
}
