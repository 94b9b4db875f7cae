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

// CreateTariffInput represents the input for tariff creation.
type CreateTariffInput struct {
	UserID          uuid.UUID
	PropertyID      uuid.UUID
	TariffType      string
	PricePerUnit    decimal.Decimal
	BaseCostMonthly decimal.Decimal
	ValidFrom       time.Time
	ValidTo         *time.Time
	IPAddress       string
}

// CreateTariffOutput represents the output of tariff creation.
type CreateTariffOutput struct {
	Tariff *TariffOutput
}

// CreateTariffUseCase handles tariff creation.
type CreateTariffUseCase struct {
	tariffRepo adapter.TariffRepository
	access     *access.Service
	recorder   *activity.Recorder
}

// NewCreateTariffUseCase creates a new CreateTariffUseCase instance.
func NewCreateTariffUseCase(tariffRepo adapter.TariffRepository, accessService *access.Service, recorder *activity.Recorder) *CreateTariffUseCase {
	return &CreateTariffUseCase{tariffRepo: tariffRepo, access: accessService, recorder: recorder}
}

// Execute performs the creation.
func (uc *CreateTariffUseCase) Execute(ctx context.Context, input CreateTariffInput) (*CreateTariffOutput, error) {
	user, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	tariffType := entity.TariffType(input.TariffType)
	if !entity.ValidTariffType(tariffType) {
		return nil, domainerror.ErrInvalidTariffType
	}

	tariff := entity.NewTariff(input.PropertyID, tariffType, input.PricePerUnit, input.BaseCostMonthly, input.ValidFrom, input.ValidTo)
	if err := uc.tariffRepo.Create(ctx, tariff); err != nil {
		return nil, fmt.Errorf("failed to create tariff: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionCreate, "tariff", &tariff.ID, string(tariffType), input.IPAddress)

	return &CreateTariffOutput{Tariff: newTariffOutput(tariff)}, nil
}
