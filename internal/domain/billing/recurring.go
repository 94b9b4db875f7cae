package billing

import (
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// RecurringLine is one recurring cost prorated over a report period.
type RecurringLine struct {
	Cost   *entity.RecurringCost
	Months int
	Total  decimal.Decimal
}

// RecurringTotal prorates the recurring costs active in the period. Each
// cost is charged its monthly amount for every month it touches within the
// period, inclusive on both ends. The grand total is summed unrounded and
// rounded once at the end.
func RecurringTotal(costs []*entity.RecurringCost, period Period) (decimal.Decimal, []RecurringLine) {
	total := decimal.Zero
	lines := make([]RecurringLine, 0, len(costs))

	for _, c := range costs {
		if !c.ActiveIn(period.Start, period.End) {
			continue
		}

		effStart := period.Start
		if c.StartDate.After(effStart) {
			effStart = c.StartDate
		}
		effEnd := period.End
		if c.EndDate != nil && c.EndDate.Before(effEnd) {
			effEnd = *c.EndDate
		}

		months := MonthsInclusive(effStart, effEnd)
		amount := c.MonthlyAmount.Mul(decimal.NewFromInt(int64(months)))
		total = total.Add(amount)

		lines = append(lines, RecurringLine{
			Cost:   c,
			Months: months,
			Total:  amount.Round(2),
		})
	}

	return total.Round(2), lines
}
