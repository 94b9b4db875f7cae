package billing

import (
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ExpensesTotal sums the gross amounts of the given expenses. The sum runs
// unrounded and is rounded once at the end.
func ExpensesTotal(expenses []*entity.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.GrossAmount)
	}
	return total.Round(2)
}
