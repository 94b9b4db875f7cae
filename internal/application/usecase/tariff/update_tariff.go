package tariff

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// UpdateTariffInput represents the input for tariff updates.
type UpdateTariffInput struct {
	UserID          uuid.UUID
	TariffID        uuid.UUID
	TariffType      string
	PricePerUnit    decimal.Decimal
	BaseCostMonthly decimal.Decimal
	ValidFrom       time.Time
	ValidTo         *time.Time
	IPAddress       string
}

// UpdateTariffOutput represents the output of tariff updates.
type UpdateTariffOutput struct {
	Tariff *TariffOutput
}

// UpdateTariffUseCase handles tariff updates.
type UpdateTariffUseCase struct {
	tariffRepo adapter.TariffRepository
	access     *access.Service
	recorder   *activity.Recorder
}

// NewUpdateTariffUseCase creates a new UpdateTariffUseCase instance.
func NewUpdateTariffUseCase(tariffRepo adapter.TariffRepository, accessService *access.Service, recorder *activity.Recorder) *UpdateTariffUseCase {
	return &UpdateTariffUseCase{tariffRepo: tariffRepo, access: accessService, recorder: recorder}
}

// Execute performs the update.
func (uc *UpdateTariffUseCase) Execute(ctx context.Context, input UpdateTariffInput) (*UpdateTariffOutput, error) {
	tariff, err := uc.tariffRepo.FindByID(ctx, input.TariffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tariff: %w", err)
	}
	if tariff == nil {
		return nil, domainerror.ErrTariffNotFound
	}

	user, err := uc.access.RequireProperty(ctx, input.UserID, tariff.PropertyID)
	if err != nil {
		return nil, err
	}

	tariffType := entity.TariffType(input.TariffType)
	if !entity.ValidTariffType(tariffType) {
		return nil, domainerror.ErrInvalidTariffType
	}

	tariff.TariffType = tariffType
	tariff.PricePerUnit = input.PricePerUnit
	tariff.BaseCostMonthly = input.BaseCostMonthly
	tariff.ValidFrom = input.ValidFrom
	tariff.ValidTo = input.ValidTo

	if err := uc.tariffRepo.Update(ctx, tariff); err != nil {
		return nil, fmt.Errorf("failed to update tariff: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionUpdate, "tariff", &tariff.ID, string(tariffType), input.IPAddress)

	return &UpdateTariffOutput{Tariff: newTariffOutput(tariff)}, nil
}
