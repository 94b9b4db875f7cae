// Package billing implements the consumption and cost calculation engine.
//
// Everything in this package is a pure function over already-loaded
// entities: no I/O, no shared state, safe for concurrent use. Insufficient
// data is reported as a nil result, never as an error; only a malformed
// period is rejected.
package billing

import (
	"time"

	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// Period is an inclusive calendar date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// Validate rejects periods that end before they start.
func (p Period) Validate() error {
	if p.End.Before(p.Start) {
		return domainerror.ErrInvalidPeriod
	}
	return nil
}

// YearPeriod returns the full calendar year as a period.
func YearPeriod(year int) Period {
	return Period{
		Start: Date(year, time.January, 1),
		End:   Date(year, time.December, 31),
	}
}

// Date builds a calendar date at UTC midnight. All engine arithmetic
// assumes reading and validity dates are stored this way.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
