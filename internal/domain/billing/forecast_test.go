package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

func TestForecast(t *testing.T) {
	t.Run("extrapolates run rate to year end", func(t *testing.T) {
		readings := []*entity.MeterReading{
			reading("1000", 2024, time.January, 1),
			reading("1500", 2024, time.June, 1),
		}

		got := Forecast(readings, 2024)
		if got == nil {
			t.Fatal("expected a result, got nil")
		}
		if want := "500"; !got.ActualConsumption.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ActualConsumption = %s, want %s", got.ActualConsumption, want)
		}
		if got.ActualDays != 152 {
			t.Errorf("ActualDays = %d, want 152", got.ActualDays)
		}
		if got.RemainingDays != 213 {
			t.Errorf("RemainingDays = %d, want 213", got.RemainingDays)
		}
		if want := "3.2895"; got.DailyAvg.String() != want {
			t.Errorf("DailyAvg = %s, want %s", got.DailyAvg, want)
		}
		// 500/152*213 projected with the unrounded run rate.
		if want := "700.66"; got.ForecastedAdditional.String() != want {
			t.Errorf("ForecastedAdditional = %s, want %s", got.ForecastedAdditional, want)
		}
		if want := "1200.66"; got.TotalForecast.String() != want {
			t.Errorf("TotalForecast = %s, want %s", got.TotalForecast, want)
		}
		if !got.LastReadingDate.Equal(Date(2024, time.June, 1)) {
			t.Errorf("LastReadingDate = %s, want 2024-06-01", got.LastReadingDate)
		}
	})

	t.Run("insufficient readings yield nil", func(t *testing.T) {
		if got := Forecast(nil, 2024); got != nil {
			t.Errorf("Forecast(nil) = %+v, want nil", got)
		}
		one := []*entity.MeterReading{reading("1000", 2024, time.January, 1)}
		if got := Forecast(one, 2024); got != nil {
			t.Errorf("Forecast(one) = %+v, want nil", got)
		}
	})

	t.Run("zero-day window yields nil", func(t *testing.T) {
		readings := []*entity.MeterReading{
			reading("1000", 2024, time.June, 1),
			reading("1050", 2024, time.June, 1),
		}
		if got := Forecast(readings, 2024); got != nil {
			t.Errorf("Forecast(same day) = %+v, want nil", got)
		}
	})

	t.Run("last reading past year end clamps remaining days to zero", func(t *testing.T) {
		readings := []*entity.MeterReading{
			reading("1000", 2024, time.November, 1),
			reading("1100", 2025, time.January, 15),
		}

		got := Forecast(readings, 2024)
		if got == nil {
			t.Fatal("expected a result, got nil")
		}
		if got.RemainingDays != 0 {
			t.Errorf("RemainingDays = %d, want 0", got.RemainingDays)
		}
		if !got.ForecastedAdditional.IsZero() {
			t.Errorf("ForecastedAdditional = %s, want 0", got.ForecastedAdditional)
		}
		if !got.TotalForecast.Equal(got.ActualConsumption) {
			t.Errorf("TotalForecast = %s, want ActualConsumption %s", got.TotalForecast, got.ActualConsumption)
		}
	})

	t.Run("repeated calls are byte-identical", func(t *testing.T) {
		readings := []*entity.MeterReading{
			reading("1000", 2024, time.January, 1),
			reading("1500", 2024, time.June, 1),
		}
		a := Forecast(readings, 2024)
		b := Forecast(readings, 2024)
		if a.TotalForecast.String() != b.TotalForecast.String() ||
			a.ForecastedAdditional.String() != b.ForecastedAdditional.String() ||
			a.DailyAvg.String() != b.DailyAvg.String() {
			t.Errorf("repeated forecasts differ: %+v vs %+v", a, b)
		}
	})
}
