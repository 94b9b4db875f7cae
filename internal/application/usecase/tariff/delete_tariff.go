package tariff

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

// DeleteTariffInput represents the input for tariff deletion.
type DeleteTariffInput struct {
	UserID    uuid.UUID
	TariffID  uuid.UUID
	IPAddress string
}

// DeleteTariffUseCase handles tariff deletion.
type DeleteTariffUseCase struct {
	tariffRepo adapter.TariffRepository
	access     *access.Service
	recorder   *activity.Recorder
}

// NewDeleteTariffUseCase creates a new DeleteTariffUseCase instance.
func NewDeleteTariffUseCase(tariffRepo adapter.TariffRepository, accessService *access.Service, recorder *activity.Recorder) *DeleteTariffUseCase {
	return &DeleteTariffUseCase{tariffRepo: tariffRepo, access: accessService, recorder: recorder}
}

// Execute performs the deletion.
func (uc *DeleteTariffUseCase) Execute(ctx context.Context, input DeleteTariffInput) error {
	tariff, err := uc.tariffRepo.FindByID(ctx, input.TariffID)
	if err != nil {
		return fmt.Errorf("failed to load tariff: %w", err)
	}
	if tariff == nil {
		return domainerror.ErrTariffNotFound
	}

	user, err := uc.access.RequireProperty(ctx, input.UserID, tariff.PropertyID)
	if err != nil {
		return err
	}

	if err := uc.tariffRepo.Delete(ctx, input.TariffID); err != nil {
		return fmt.Errorf("failed to delete tariff: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionDelete, "tariff", &input.TariffID, string(tariff.TariffType), input.IPAddress)
	return nil
}
