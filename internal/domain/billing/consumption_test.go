package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

func reading(value string, year int, month time.Month, day int) *entity.MeterReading {
	return &entity.MeterReading{
		ID:           uuid.New(),
		MeterType:    entity.MeterTypeWater,
		ReadingValue: decimal.RequireFromString(value),
		ReadingDate:  Date(year, month, day),
	}
}

func TestComputeConsumption(t *testing.T) {
	t.Run("derives total, days and daily average", func(t *testing.T) {
		readings := []*entity.MeterReading{
			reading("100", 2024, time.January, 1),
			reading("150", 2024, time.February, 1),
		}

		got := ComputeConsumption(readings)
		if got == nil {
			t.Fatal("expected a result, got nil")
		}
		if want := "50"; !got.Total.Equal(decimal.RequireFromString(want)) {
			t.Errorf("Total = %s, want %s", got.Total, want)
		}
		if got.Days != 31 {
			t.Errorf("Days = %d, want 31", got.Days)
		}
		if want := "1.6129"; got.DailyAvg.String() != want {
			t.Errorf("DailyAvg = %s, want %s", got.DailyAvg, want)
		}
		if got.FirstReading != readings[0] || got.LastReading != readings[1] {
			t.Error("result does not reference the boundary readings")
		}
	})

	t.Run("fewer than two readings yields nil", func(t *testing.T) {
		if got := ComputeConsumption(nil); got != nil {
			t.Errorf("ComputeConsumption(nil) = %+v, want nil", got)
		}
		one := []*entity.MeterReading{reading("100", 2024, time.March, 1)}
		if got := ComputeConsumption(one); got != nil {
			t.Errorf("ComputeConsumption(one) = %+v, want nil", got)
		}
	})

	t.Run("same-day pair has zero days and zero average", func(t *testing.T) {
		readings := []*entity.MeterReading{
			reading("100", 2024, time.May, 10),
			reading("130", 2024, time.May, 10),
		}

		got := ComputeConsumption(readings)
		if got == nil {
			t.Fatal("expected a result, got nil")
		}
		if got.Days != 0 {
			t.Errorf("Days = %d, want 0", got.Days)
		}
		if !got.DailyAvg.IsZero() {
			t.Errorf("DailyAvg = %s, want 0", got.DailyAvg)
		}
		if want := "30"; !got.Total.Equal(decimal.RequireFromString(want)) {
			t.Errorf("Total = %s, want %s", got.Total, want)
		}
	})

	t.Run("counter reset reports negative consumption as-is", func(t *testing.T) {
		readings := []*entity.MeterReading{
			reading("500", 2024, time.January, 1),
			reading("20", 2024, time.January, 11),
		}

		got := ComputeConsumption(readings)
		if got == nil {
			t.Fatal("expected a result, got nil")
		}
		if want := "-480"; !got.Total.Equal(decimal.RequireFromString(want)) {
			t.Errorf("Total = %s, want %s", got.Total, want)
		}
		if want := "-48"; !got.DailyAvg.Equal(decimal.RequireFromString(want)) {
			t.Errorf("DailyAvg = %s, want %s", got.DailyAvg, want)
		}
	})

	t.Run("interior readings do not affect the result", func(t *testing.T) {
		readings := []*entity.MeterReading{
			reading("100", 2024, time.January, 1),
			reading("9999", 2024, time.January, 15),
			reading("150", 2024, time.February, 1),
		}

		got := ComputeConsumption(readings)
		if got == nil {
			t.Fatal("expected a result, got nil")
		}
		if want := "50"; !got.Total.Equal(decimal.RequireFromString(want)) {
			t.Errorf("Total = %s, want %s", got.Total, want)
		}
	})
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		name string
		a, b time.Time
		want int
	}{
		{"same day", Date(2024, time.June, 1), Date(2024, time.June, 1), 0},
		{"month apart", Date(2024, time.January, 1), Date(2024, time.February, 1), 31},
		{"leap february", Date(2024, time.February, 1), Date(2024, time.March, 1), 29},
		{"mid-year to year end", Date(2024, time.June, 1), Date(2024, time.December, 31), 213},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.a, tc.b); got != tc.want {
				t.Errorf("DaysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}
