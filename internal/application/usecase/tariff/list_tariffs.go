package tariff

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// ListTariffsInput represents the input for listing tariffs.
type ListTariffsInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	TariffType string
}

// ListTariffsOutput represents the output of listing tariffs.
type ListTariffsOutput struct {
	Tariffs []*TariffOutput
}

// ListTariffsUseCase lists the tariffs of a property, optionally filtered
// by type.
type ListTariffsUseCase struct {
	tariffRepo adapter.TariffRepository
	access     *access.Service
}

// NewListTariffsUseCase creates a new ListTariffsUseCase instance.
func NewListTariffsUseCase(tariffRepo adapter.TariffRepository, accessService *access.Service) *ListTariffsUseCase {
	return &ListTariffsUseCase{tariffRepo: tariffRepo, access: accessService}
}

// Execute performs the listing.
func (uc *ListTariffsUseCase) Execute(ctx context.Context, input ListTariffsInput) (*ListTariffsOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	if input.TariffType != "" && !entity.ValidTariffType(entity.TariffType(input.TariffType)) {
		return nil, domainerror.ErrInvalidTariffType
	}

	tariffs, err := uc.tariffRepo.FindByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tariffs: %w", err)
	}

	output := &ListTariffsOutput{Tariffs: make([]*TariffOutput, 0, len(tariffs))}
	for _, t := range tariffs {
		if input.TariffType != "" && t.TariffType != entity.TariffType(input.TariffType) {
			continue
		}
		output.Tariffs = append(output.Tariffs, newTariffOutput(t))
	}
	return output, nil
}
