package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/billing"
)

// MonthlyComparisonInput represents the input for the monthly comparison.
type MonthlyComparisonInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Year       int
}

// MonthOutput represents recurring and one-time costs of one month.
type MonthOutput struct {
	Month          int
	RecurringCosts decimal.Decimal
	Expenses       decimal.Decimal
	Total          decimal.Decimal
}

// MonthlyComparisonOutput represents the output of the monthly comparison.
type MonthlyComparisonOutput struct {
	Year   int
	Months []*MonthOutput
}

// MonthlyComparisonUseCase breaks recurring and one-time costs down by
// month.
type MonthlyComparisonUseCase struct {
	expenseRepo adapter.ExpenseRepository
	costRepo    adapter.RecurringCostRepository
	access      *access.Service
	now         func() time.Time
}

// NewMonthlyComparisonUseCase creates a new MonthlyComparisonUseCase instance.
func NewMonthlyComparisonUseCase(
	expenseRepo adapter.ExpenseRepository,
	costRepo adapter.RecurringCostRepository,
	accessService *access.Service,
) *MonthlyComparisonUseCase {
	return &MonthlyComparisonUseCase{
		expenseRepo: expenseRepo,
		costRepo:    costRepo,
		access:      accessService,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// monthWindow is the comparison window for one month. Every month runs from
// its first day through the first day of the next month; December alone
// ends on its own last day. Historical statements were produced with these
// windows, so they stay.
func monthWindow(year, month int) billing.Period {
	start := billing.Date(year, time.Month(month), 1)
	if month == 12 {
		return billing.Period{Start: start, End: billing.Date(year, time.December, 31)}
	}
	return billing.Period{Start: start, End: billing.Date(year, time.Month(month+1), 1)}
}

// Execute performs the report.
func (uc *MonthlyComparisonUseCase) Execute(ctx context.Context, input MonthlyComparisonInput) (*MonthlyComparisonOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}

	year := resolveYear(input.Year, uc.now())

	costs, err := uc.costRepo.FindByProperty(ctx, input.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring costs: %w", err)
	}

	output := &MonthlyComparisonOutput{Year: year, Months: make([]*MonthOutput, 0, 12)}
	for m := 1; m <= 12; m++ {
		window := monthWindow(year, m)

		recurringTotal, _ := billing.RecurringTotal(costs, window)

		expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
			PropertyID: input.PropertyID,
			StartDate:  &window.Start,
			EndDate:    &window.End,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list expenses: %w", err)
		}
		expensesTotal := billing.ExpensesTotal(expenses)

		output.Months = append(output.Months, &MonthOutput{
			Month:          m,
			RecurringCosts: recurringTotal,
			Expenses:       expensesTotal,
			Total:          recurringTotal.Add(expensesTotal).Round(2),
		})
	}
	return output, nil
}
