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

// DeletePropertyInput represents the input for property deletion.
type DeletePropertyInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	IPAddress  string
}

// DeletePropertyUseCase handles property deletion. Admin only; deletion
// cascades to readings, tariffs, expenses and recurring costs.
type DeletePropertyUseCase struct {
	propertyRepo adapter.PropertyRepository
	access       *access.Service
	recorder     *activity.Recorder
}

// NewDeletePropertyUseCase creates a new DeletePropertyUseCase instance.
func NewDeletePropertyUseCase(propertyRepo adapter.PropertyRepository, accessService *access.Service, recorder *activity.Recorder) *DeletePropertyUseCase {
	return &DeletePropertyUseCase{propertyRepo: propertyRepo, access: accessService, recorder: recorder}
}

// Execute performs the deletion.
func (uc *DeletePropertyUseCase) Execute(ctx context.Context, input DeletePropertyInput) error {
	user, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return err
	}
	if !user.IsAdmin() {
		return domainerror.ErrInsufficientRole
	}

	property, err := uc.propertyRepo.FindByID(ctx, input.PropertyID)
	if err != nil {
		return fmt.Errorf("failed to load property: %w", err)
	}
	if property == nil {
		return domainerror.ErrPropertyNotFound
	}

	if err := uc.propertyRepo.Delete(ctx, input.PropertyID); err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionDelete, "property", &input.PropertyID, property.Name, input.IPAddress)
	return nil
}
