package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

func recurring(monthly string, start time.Time, end *time.Time) *entity.RecurringCost {
	c := &entity.RecurringCost{
		ID:            uuid.New(),
		Description:   "building insurance",
		MonthlyAmount: decimal.RequireFromString(monthly),
		VATRate:       entity.DefaultVATRate,
		StartDate:     start,
		EndDate:       end,
	}
	c.RecalculateAmounts()
	return c
}

func TestRecurringTotal(t *testing.T) {
	year := Period{Start: Date(2024, time.January, 1), End: Date(2024, time.December, 31)}

	t.Run("open-ended cost covers every month of the period", func(t *testing.T) {
		costs := []*entity.RecurringCost{recurring("120", Date(2023, time.June, 1), nil)}

		total, lines := RecurringTotal(costs, year)
		if len(lines) != 1 {
			t.Fatalf("lines = %d, want 1", len(lines))
		}
		if lines[0].Months != 12 {
			t.Errorf("Months = %d, want 12", lines[0].Months)
		}
		if want := "1440"; !total.Equal(decimal.RequireFromString(want)) {
			t.Errorf("total = %s, want %s", total, want)
		}
	})

	t.Run("cost starting mid-period is prorated from its start", func(t *testing.T) {
		costs := []*entity.RecurringCost{recurring("100", Date(2024, time.October, 15), nil)}

		total, lines := RecurringTotal(costs, year)
		// Oct 15 to Dec 31 touches Oct, Nov and Dec.
		if lines[0].Months != 3 {
			t.Errorf("Months = %d, want 3", lines[0].Months)
		}
		if want := "300"; !total.Equal(decimal.RequireFromString(want)) {
			t.Errorf("total = %s, want %s", total, want)
		}
	})

	t.Run("cost ending mid-period is prorated to its end", func(t *testing.T) {
		costs := []*entity.RecurringCost{recurring("80", Date(2023, time.January, 1), datePtr(2024, time.March, 10))}

		total, lines := RecurringTotal(costs, year)
		if lines[0].Months != 3 {
			t.Errorf("Months = %d, want 3", lines[0].Months)
		}
		if want := "240"; !total.Equal(decimal.RequireFromString(want)) {
			t.Errorf("total = %s, want %s", total, want)
		}
	})

	t.Run("inactive costs are skipped", func(t *testing.T) {
		costs := []*entity.RecurringCost{
			recurring("50", Date(2025, time.January, 1), nil),                            // starts after period
			recurring("60", Date(2022, time.January, 1), datePtr(2023, time.June, 30)),  // ended before period
			recurring("70", Date(2024, time.May, 1), datePtr(2024, time.May, 31)),       // one month inside
		}

		total, lines := RecurringTotal(costs, year)
		if len(lines) != 1 {
			t.Fatalf("lines = %d, want 1", len(lines))
		}
		if want := "70"; !total.Equal(decimal.RequireFromString(want)) {
			t.Errorf("total = %s, want %s", total, want)
		}
	})

	t.Run("grand total rounds once at the end", func(t *testing.T) {
		costs := []*entity.RecurringCost{
			recurring("33.335", Date(2024, time.March, 1), datePtr(2024, time.March, 31)),
			recurring("33.335", Date(2024, time.March, 1), datePtr(2024, time.March, 31)),
		}

		total, _ := RecurringTotal(costs, year)
		// 33.335 + 33.335 = 66.67; rounding each line first would give 66.68.
		if want := "66.67"; !total.Equal(decimal.RequireFromString(want)) {
			t.Errorf("total = %s, want %s", total, want)
		}
	})
}

func TestExpensesTotal(t *testing.T) {
	e1 := entity.NewExpense(uuid.New(), nil, "roofer", Date(2024, time.April, 2), "R-100", decimal.RequireFromString("100"), entity.DefaultVATRate, "roof repair", "maintenance")
	e2 := entity.NewExpense(uuid.New(), nil, "chimney sweep", Date(2024, time.May, 7), "C-17", decimal.RequireFromString("50.50"), entity.DefaultVATRate, "annual sweep", "maintenance")

	total := ExpensesTotal([]*entity.Expense{e1, e2})
	// gross(100) = 119.00, gross(50.50) = 60.10 (vat 9.60)
	if want := "179.1"; !total.Equal(decimal.RequireFromString(want)) {
		t.Errorf("total = %s, want %s", total, want)
	}

	if got := ExpensesTotal(nil); !got.IsZero() {
		t.Errorf("ExpensesTotal(nil) = %s, want 0", got)
	}
}
