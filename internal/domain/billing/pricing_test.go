package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

func tariff(tt entity.TariffType, price, base string, validFrom time.Time, validTo *time.Time) *entity.Tariff {
	return &entity.Tariff{
		ID:              uuid.New(),
		TariffType:      tt,
		PricePerUnit:    decimal.RequireFromString(price),
		BaseCostMonthly: decimal.RequireFromString(base),
		ValidFrom:       validFrom,
		ValidTo:         validTo,
	}
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := Date(year, month, day)
	return &d
}

func TestResolveTariff(t *testing.T) {
	period := Period{Start: Date(2024, time.January, 1), End: Date(2024, time.December, 31)}

	t.Run("latest valid_from wins regardless of input order", func(t *testing.T) {
		older := tariff(entity.TariffTypeWater, "2.00", "5.00", Date(2023, time.January, 1), nil)
		newer := tariff(entity.TariffTypeWater, "2.50", "6.00", Date(2024, time.March, 1), nil)

		orderings := [][]*entity.Tariff{
			{older, newer},
			{newer, older},
		}
		for _, tariffs := range orderings {
			got := ResolveTariff(tariffs, entity.TariffTypeWater, period)
			if got != newer {
				t.Errorf("resolved %+v, want the tariff valid from 2024-03-01", got)
			}
		}
	})

	t.Run("expired tariffs are excluded", func(t *testing.T) {
		expired := tariff(entity.TariffTypeWater, "1.50", "4.00", Date(2022, time.January, 1), datePtr(2023, time.December, 31))
		got := ResolveTariff([]*entity.Tariff{expired}, entity.TariffTypeWater, period)
		if got != nil {
			t.Errorf("resolved expired tariff %+v, want nil", got)
		}
	})

	t.Run("future tariffs are excluded", func(t *testing.T) {
		future := tariff(entity.TariffTypeWater, "3.00", "7.00", Date(2025, time.June, 1), nil)
		got := ResolveTariff([]*entity.Tariff{future}, entity.TariffTypeWater, period)
		if got != nil {
			t.Errorf("resolved future tariff %+v, want nil", got)
		}
	})

	t.Run("validity touching the period boundary qualifies", func(t *testing.T) {
		endsAtStart := tariff(entity.TariffTypeWater, "2.00", "5.00", Date(2023, time.June, 1), datePtr(2024, time.January, 1))
		startsAtEnd := tariff(entity.TariffTypeWater, "2.20", "5.50", Date(2024, time.December, 31), nil)

		got := ResolveTariff([]*entity.Tariff{endsAtStart, startsAtEnd}, entity.TariffTypeWater, period)
		if got != startsAtEnd {
			t.Errorf("resolved %+v, want the tariff valid from 2024-12-31", got)
		}
	})

	t.Run("other tariff types are ignored", func(t *testing.T) {
		water := tariff(entity.TariffTypeWater, "2.00", "5.00", Date(2023, time.January, 1), nil)
		got := ResolveTariff([]*entity.Tariff{water}, entity.TariffTypeWastewater, period)
		if got != nil {
			t.Errorf("resolved %+v for wastewater, want nil", got)
		}
	})
}

func TestPriceConsumption(t *testing.T) {
	t.Run("wastewater billed on water quantity", func(t *testing.T) {
		// Wastewater has no meter; the caller passes the water consumption.
		ww := tariff(entity.TariffTypeWastewater, "2.00", "5.00", Date(2023, time.January, 1), nil)
		period := Period{Start: Date(2024, time.January, 1), End: Date(2024, time.January, 31)}

		got := PriceConsumption(ww, decimal.RequireFromString("100"), period)
		if got == nil {
			t.Fatal("expected a breakdown, got nil")
		}
		if got.Months != 1 {
			t.Errorf("Months = %d, want 1", got.Months)
		}
		if want := "200"; !got.UsageCost.Equal(decimal.RequireFromString(want)) {
			t.Errorf("UsageCost = %s, want %s", got.UsageCost, want)
		}
		if want := "5"; !got.BaseCostTotal.Equal(decimal.RequireFromString(want)) {
			t.Errorf("BaseCostTotal = %s, want %s", got.BaseCostTotal, want)
		}
		if want := "205"; !got.TotalCost.Equal(decimal.RequireFromString(want)) {
			t.Errorf("TotalCost = %s, want %s", got.TotalCost, want)
		}
	})

	t.Run("base fee multiplies by spanned months", func(t *testing.T) {
		el := tariff(entity.TariffTypeElectricityDay, "0.30", "12.50", Date(2023, time.January, 1), nil)
		period := Period{Start: Date(2024, time.January, 1), End: Date(2024, time.December, 31)}

		got := PriceConsumption(el, decimal.RequireFromString("1000"), period)
		if got.Months != 11 {
			t.Errorf("Months = %d, want 11", got.Months)
		}
		if want := "137.5"; !got.BaseCostTotal.Equal(decimal.RequireFromString(want)) {
			t.Errorf("BaseCostTotal = %s, want %s", got.BaseCostTotal, want)
		}
		if want := "437.5"; !got.TotalCost.Equal(decimal.RequireFromString(want)) {
			t.Errorf("TotalCost = %s, want %s", got.TotalCost, want)
		}
	})

	t.Run("sum runs on unrounded intermediates", func(t *testing.T) {
		// usage = 5*0.201 = 1.005 and base = 1.005: summed unrounded the
		// total is 2.01, while rounding each part first would give 2.02.
		tr := tariff(entity.TariffTypeWater, "0.201", "1.005", Date(2023, time.January, 1), nil)
		period := Period{Start: Date(2024, time.March, 1), End: Date(2024, time.March, 31)}

		got := PriceConsumption(tr, decimal.RequireFromString("5"), period)
		if want := "2.01"; !got.TotalCost.Equal(decimal.RequireFromString(want)) {
			t.Errorf("TotalCost = %s, want %s", got.TotalCost, want)
		}
	})

	t.Run("nil tariff yields nil breakdown", func(t *testing.T) {
		period := Period{Start: Date(2024, time.January, 1), End: Date(2024, time.December, 31)}
		if got := PriceConsumption(nil, decimal.NewFromInt(10), period); got != nil {
			t.Errorf("PriceConsumption(nil) = %+v, want nil", got)
		}
	})
}
