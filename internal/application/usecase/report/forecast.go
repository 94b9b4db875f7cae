package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/billing"
	"github.com/property-manager/backend/internal/domain/entity"
)

// ForecastReportInput represents the input for the forecast report. A zero
// year means the current year.
type ForecastReportInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Year       int
}

// ForecastOutput represents the projection for one meter type.
type ForecastOutput struct {
	Year                 int
	ActualConsumption    decimal.Decimal
	ActualDays           int
	DailyAvg             decimal.Decimal
	ForecastedAdditional decimal.Decimal
	TotalForecast        decimal.Decimal
	RemainingDays        int
	LastReadingDate      time.Time
}

// ForecastReportOutput represents the output of the forecast report. Meter
// types with insufficient data are absent.
type ForecastReportOutput struct {
	Year     int
	PerMeter map[entity.MeterType]*ForecastOutput
}

// ForecastReportUseCase projects consumption to year end per meter type,
// using the readings taken up to today (or the full year when it lies in
// the past).
type ForecastReportUseCase struct {
	readingRepo adapter.MeterReadingRepository
	access      *access.Service
	now         func() time.Time
}

// NewForecastReportUseCase creates a new ForecastReportUseCase instance.
func NewForecastReportUseCase(readingRepo adapter.MeterReadingRepository, accessService *access.Service) *ForecastReportUseCase {
	return &ForecastReportUseCase{
		readingRepo: readingRepo,
		access:      accessService,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the report.
func (uc *ForecastReportUseCase) Execute(ctx context.Context, input ForecastReportInput) (*ForecastReportOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	now := uc.now()
	year := resolveYear(input.Year, now)

	windowStart := billing.Date(year, time.January, 1)
	windowEnd := billing.Date(year, time.December, 31)
	if today := billing.Date(now.Year(), now.Month(), now.Day()); today.Before(windowEnd) {
		windowEnd = today
	}

	output := &ForecastReportOutput{
		Year:     year,
		PerMeter: make(map[entity.MeterType]*ForecastOutput),
	}
	for _, mt := range entity.MeterTypes {
		readings, err := uc.readingRepo.FindByFilter(ctx, adapter.MeterReadingFilter{
			PropertyID: input.PropertyID,
			MeterType:  &mt,
			StartDate:  &windowStart,
			EndDate:    &windowEnd,
		})
		if err != nil {
			return nil, err
		}
		if fc := billing.Forecast(readings, year); fc != nil {
			output.PerMeter[mt] = &ForecastOutput{
				Year:                 fc.Year,
				ActualConsumption:    fc.ActualConsumption,
				ActualDays:           fc.ActualDays,
				DailyAvg:             fc.DailyAvg,
				ForecastedAdditional: fc.ForecastedAdditional,
				TotalForecast:        fc.TotalForecast,
				RemainingDays:        fc.RemainingDays,
				LastReadingDate:      fc.LastReadingDate,
			}
		}
	}
	return output, nil
}
