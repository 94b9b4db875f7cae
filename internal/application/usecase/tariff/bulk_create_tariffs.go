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
)

// BulkTariffItem is one tariff in a bulk creation request.
type BulkTariffItem struct {
	TariffType      string
	PricePerUnit    decimal.Decimal
	BaseCostMonthly decimal.Decimal
}

// BulkCreateTariffsInput represents the input for bulk tariff creation. All
// items share one validity window.
type BulkCreateTariffsInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	ValidFrom  time.Time
	ValidTo    *time.Time
	Items      []BulkTariffItem
	IPAddress  string
}

// BulkCreateTariffsOutput represents the output of bulk tariff creation.
// Items with an unknown tariff type are skipped and counted, not failed.
type BulkCreateTariffsOutput struct {
	Tariffs []*TariffOutput
	Skipped int
}

// BulkCreateTariffsUseCase creates several tariffs sharing a validity
// window, typically after a utility price change.
type BulkCreateTariffsUseCase struct {
	tariffRepo adapter.TariffRepository
	access     *access.Service
	recorder   *activity.Recorder
}

// NewBulkCreateTariffsUseCase creates a new BulkCreateTariffsUseCase instance.
func NewBulkCreateTariffsUseCase(tariffRepo adapter.TariffRepository, accessService *access.Service, recorder *activity.Recorder) *BulkCreateTariffsUseCase {
	return &BulkCreateTariffsUseCase{tariffRepo: tariffRepo, access: accessService, recorder: recorder}
}

// Execute performs the bulk creation.
func (uc *BulkCreateTariffsUseCase) Execute(ctx context.Context, input BulkCreateTariffsInput) (*BulkCreateTariffsOutput, error) {
	user, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	output := &BulkCreateTariffsOutput{Tariffs: make([]*TariffOutput, 0, len(input.Items))}
	for _, item := range input.Items {
		tariffType := entity.TariffType(item.TariffType)
		if !entity.ValidTariffType(tariffType) {
			output.Skipped++
			continue
		}

		tariff := entity.NewTariff(input.PropertyID, tariffType, item.PricePerUnit, item.BaseCostMonthly, input.ValidFrom, input.ValidTo)
		if err := uc.tariffRepo.Create(ctx, tariff); err != nil {
			return nil, fmt.Errorf("failed to create tariff: %w", err)
		}
		output.Tariffs = append(output.Tariffs, newTariffOutput(tariff))
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionCreate, "tariff", nil,
		fmt.Sprintf("bulk created %d tariffs", len(output.Tariffs)), input.IPAddress)

	return output, nil
}
