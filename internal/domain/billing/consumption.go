package billing

import (
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// Consumption is the derived usage between the first and last reading of a
// window.
type Consumption struct {
	// Total is last minus first reading value, rounded to 2 decimals. It
	// can be negative when a counter was reset or rolled over; the engine
	// reports that as-is instead of guessing a correction.
	Total decimal.Decimal
	// Days is the whole number of days between the first and last reading.
	Days int
	// DailyAvg is Total/Days rounded to 4 decimals, or zero for a same-day
	// pair.
	DailyAvg decimal.Decimal
	// FirstReading and LastReading reference the readings the figures were
	// derived from.
	FirstReading *entity.MeterReading
	LastReading  *entity.MeterReading
}

// ComputeConsumption derives consumption from readings of one property and
// meter type, sorted ascending by reading date. Fewer than two readings is
// not an error but an absence of data: the result is nil.
func ComputeConsumption(readings []*entity.MeterReading) *Consumption {
	if len(readings) < 2 {
		return nil
	}

	first := readings[0]
	last := readings[len(readings)-1]

	total := last.ReadingValue.Sub(first.ReadingValue)
	days := DaysBetween(first.ReadingDate, last.ReadingDate)

	dailyAvg := decimal.Zero
	if days > 0 {
		dailyAvg = total.Div(decimal.NewFromInt(int64(days))).Round(4)
	}

	return &Consumption{
		Total:        total.Round(2),
		Days:         days,
		DailyAvg:     dailyAvg,
		FirstReading: first,
		LastReading:  last,
	}
}
