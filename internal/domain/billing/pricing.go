package billing

import (
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// CostBreakdown is the priced consumption for one tariff type over a period.
type CostBreakdown struct {
	TariffType      entity.TariffType
	Consumption     decimal.Decimal
	PricePerUnit    decimal.Decimal
	UsageCost       decimal.Decimal
	BaseCostMonthly decimal.Decimal
	BaseCostTotal   decimal.Decimal
	TotalCost       decimal.Decimal
	Months          int
}

// ResolveTariff selects the tariff of the given type whose validity window
// intersects the period. When several qualify, the one with the latest
// valid_from wins, regardless of input order; on an exact valid_from tie
// the first one encountered is kept. Returns nil when none apply.
func ResolveTariff(tariffs []*entity.Tariff, tariffType entity.TariffType, period Period) *entity.Tariff {
	var best *entity.Tariff
	for _, t := range tariffs {
		if t.TariffType != tariffType {
			continue
		}
		if t.ValidFrom.After(period.End) {
			continue
		}
		if t.ValidTo != nil && t.ValidTo.Before(period.Start) {
			continue
		}
		if best == nil || t.ValidFrom.After(best.ValidFrom) {
			best = t
		}
	}
	return best
}

// Price resolves the applicable tariff of the given type and prices the
// quantity with it. Returns nil when no tariff applies.
func Price(tariffs []*entity.Tariff, tariffType entity.TariffType, quantity decimal.Decimal, period Period) *CostBreakdown {
	return PriceConsumption(ResolveTariff(tariffs, tariffType, period), quantity, period)
}

// PriceConsumption applies a tariff to a consumed quantity over a period.
// The base fee is charged per spanned month. Intermediates are unrounded;
// every reported figure is rounded to 2 decimals.
//
// For wastewater tariffs the caller passes the water quantity: wastewater
// has no meter of its own and is billed on water throughput.
func PriceConsumption(tariff *entity.Tariff, quantity decimal.Decimal, period Period) *CostBreakdown {
	if tariff == nil {
		return nil
	}

	months := MonthsSpanned(period.Start, period.End)
	usage := quantity.Mul(tariff.PricePerUnit)
	base := tariff.BaseCostMonthly.Mul(decimal.NewFromInt(int64(months)))

	return &CostBreakdown{
		TariffType:      tariff.TariffType,
		Consumption:     quantity.Round(2),
		PricePerUnit:    tariff.PricePerUnit,
		UsageCost:       usage.Round(2),
		BaseCostMonthly: tariff.BaseCostMonthly,
		BaseCostTotal:   base.Round(2),
		TotalCost:       usage.Add(base).Round(2),
		Months:          months,
	}
}
