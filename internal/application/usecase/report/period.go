package report

import (
	"time"

	"github.com/property-manager/backend/internal/domain/billing"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// resolvePeriod applies the default report window (January 1 of the current
// year through today) and validates the result.
func resolvePeriod(start, end *time.Time, now time.Time) (billing.Period, error) {
	period := billing.Period{
		Start: billing.Date(now.Year(), time.January, 1),
		End:   billing.Date(now.Year(), now.Month(), now.Day()),
	}
	if start != nil {
		period.Start = *start
	}
	if end != nil {
		period.End = *end
	}
	if err := period.Validate(); err != nil {
		return billing.Period{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriod,
			"period end must not be before period start",
			err,
		)
	}
	return period, nil
}

// resolveYear falls back to the current year.
func resolveYear(year int, now time.Time) int {
	if year <= 0 {
		return now.Year()
	}
	return year
}
