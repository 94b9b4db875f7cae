package billing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ForecastResult is a linear year-end projection for one meter type.
type ForecastResult struct {
	Year                 int
	MeterType            entity.MeterType
	ActualConsumption    decimal.Decimal
	ActualDays           int
	DailyAvg             decimal.Decimal
	ForecastedAdditional decimal.Decimal
	TotalForecast        decimal.Decimal
	RemainingDays        int
	LastReadingDate      time.Time
}

// Forecast projects consumption to the end of the given year from readings
// of one property and meter type, sorted ascending by reading date. The run
// rate between the first and last reading is extrapolated linearly over the
// days left until December 31. Returns nil when fewer than two readings
// exist or when the observed window has zero days.
func Forecast(readings []*entity.MeterReading, year int) *ForecastResult {
	if len(readings) < 2 {
		return nil
	}

	first := readings[0]
	last := readings[len(readings)-1]

	actual := last.ReadingValue.Sub(first.ReadingValue)
	actualDays := DaysBetween(first.ReadingDate, last.ReadingDate)
	if actualDays <= 0 {
		return nil
	}

	// Intermediates stay unrounded; only the reported figures are rounded.
	dailyAvg := actual.Div(decimal.NewFromInt(int64(actualDays)))

	yearEnd := Date(year, time.December, 31)
	remainingDays := DaysBetween(last.ReadingDate, yearEnd)
	if remainingDays < 0 {
		remainingDays = 0
	}

	additional := dailyAvg.Mul(decimal.NewFromInt(int64(remainingDays)))

	return &ForecastResult{
		Year:                 year,
		MeterType:            last.MeterType,
		ActualConsumption:    actual.Round(2),
		ActualDays:           actualDays,
		DailyAvg:             dailyAvg.Round(4),
		ForecastedAdditional: additional.Round(2),
		TotalForecast:        actual.Add(additional).Round(2),
		RemainingDays:        remainingDays,
		LastReadingDate:      last.ReadingDate,
	}
}
