// Package tariff contains tariff-related use cases.
package tariff

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// TariffOutput represents tariff data returned to the caller.
type TariffOutput struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	TariffType      entity.TariffType
	PricePerUnit    decimal.Decimal
	BaseCostMonthly decimal.Decimal
	ValidFrom       time.Time
	ValidTo         *time.Time
}

func newTariffOutput(t *entity.Tariff) *TariffOutput {
	return &TariffOutput{
		ID:              t.ID,
		PropertyID:      t.PropertyID,
		TariffType:      t.TariffType,
		PricePerUnit:    t.PricePerUnit,
		BaseCostMonthly: t.BaseCostMonthly,
		ValidFrom:       t.ValidFrom,
		ValidTo:         t.ValidTo,
	}
}
