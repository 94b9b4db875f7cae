package billing

import "time"

// The two month-counting policies below are intentionally different and
// must not be unified: tariff pricing counts spanned month boundaries while
// recurring-cost proration counts the partial months on both ends.
// Changing either would silently alter historical report totals.

// MonthsSpanned counts calendar month boundaries crossed between start and
// end, with a floor of one month. A period inside a single month counts as
// one; Jan 15 to Feb 15 also counts as one. Used for tariff base fees.
func MonthsSpanned(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 1 {
		return 1
	}
	return months
}

// MonthsInclusive counts the calendar months touched by the range,
// inclusive on both ends, with a floor of one month. Jan 15 to Feb 15
// counts as two. Used for recurring-cost proration.
func MonthsInclusive(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1
	if months < 1 {
		return 1
	}
	return months
}
