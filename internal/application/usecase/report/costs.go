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
	"github.com/property-manager/backend/internal/domain/entity"
)

// CostsReportInput represents the input for the cost report.
type CostsReportInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Start      *time.Time
	End        *time.Time
}

// CostsReportOutput represents the output of the cost report. Wastewater
// appears under its own tariff type, priced on the water quantity.
type CostsReportOutput struct {
	Period           PeriodOutput
	ConsumptionCosts map[entity.TariffType]*CostOutput
	RecurringTotal   decimal.Decimal
	RecurringDetails []*RecurringDetail
	ExpensesTotal    decimal.Decimal
	ExpenseDetails   []*ExpenseDetail
	GrandTotal       decimal.Decimal
}

// CostsReportUseCase prices consumption per meter type and adds recurring
// and one-time costs over a period.
type CostsReportUseCase struct {
	readingRepo adapter.MeterReadingRepository
	tariffRepo  adapter.TariffRepository
	expenseRepo adapter.ExpenseRepository
	costRepo    adapter.RecurringCostRepository
	access      *access.Service
	now         func() time.Time
}

// NewCostsReportUseCase creates a new CostsReportUseCase instance.
func NewCostsReportUseCase(
	readingRepo adapter.MeterReadingRepository,
	tariffRepo adapter.TariffRepository,
	expenseRepo adapter.ExpenseRepository,
	costRepo adapter.RecurringCostRepository,
	accessService *access.Service,
) *CostsReportUseCase {
	return &CostsReportUseCase{
		readingRepo: readingRepo,
		tariffRepo:  tariffRepo,
		expenseRepo: expenseRepo,
		costRepo:    costRepo,
		access:      accessService,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the report.
func (uc *CostsReportUseCase) Execute(ctx context.Context, input CostsReportInput) (*CostsReportOutput, error) {
	if _, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID); err != nil {
		return nil, err
	}
	period, err := resolvePeriod(input.Start, input.End, uc.now())
	if err != nil {
		return nil, err
	}

	costs, _, err := uc.consumptionCosts(ctx, input.PropertyID, period)
	if err != nil {
		return nil, err
	}

	recurringTotal, recurringDetails, err := uc.recurring(ctx, input.PropertyID, period)
	if err != nil {
		return nil, err
	}
	expensesTotal, expenseDetails, err := uc.expenses(ctx, input.PropertyID, period)
	if err != nil {
		return nil, err
	}

	usageTotal := decimal.Zero
	for _, c := range costs {
		usageTotal = usageTotal.Add(c.TotalCost)
	}

	return &CostsReportOutput{
		Period:           PeriodOutput{Start: period.Start, End: period.End},
		ConsumptionCosts: costs,
		RecurringTotal:   recurringTotal,
		RecurringDetails: recurringDetails,
		ExpensesTotal:    expensesTotal,
		ExpenseDetails:   expenseDetails,
		GrandTotal:       usageTotal.Add(recurringTotal).Add(expensesTotal).Round(2),
	}, nil
}

// consumptionCosts prices each metered type and derives the wastewater
// position from the water quantity. The returned consumption map feeds the
// annual report.
func (uc *CostsReportUseCase) consumptionCosts(ctx context.Context, propertyID uuid.UUID, period billing.Period) (map[entity.TariffType]*CostOutput, map[entity.MeterType]*billing.Consumption, error) {
	tariffs, err := uc.tariffRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list tariffs: %w", err)
	}

	costs := make(map[entity.TariffType]*CostOutput)
	consumptions := make(map[entity.MeterType]*billing.Consumption)
	for _, mt := range entity.MeterTypes {
		cons, err := consumptionFor(ctx, uc.readingRepo, propertyID, mt, period)
		if err != nil {
			return nil, nil, err
		}
		if cons == nil {
			continue
		}
		consumptions[mt] = cons
		if breakdown := billing.Price(tariffs, entity.TariffType(mt), cons.Total, period); breakdown != nil {
			costs[entity.TariffType(mt)] = newCostOutput(breakdown)
		}
	}

	// Wastewater has no meter: it is billed on the water throughput.
	if water := consumptions[entity.MeterTypeWater]; water != nil {
		if breakdown := billing.Price(tariffs, entity.TariffTypeWastewater, water.Total, period); breakdown != nil {
			costs[entity.TariffTypeWastewater] = newCostOutput(breakdown)
		}
	}
	return costs, consumptions, nil
}

func (uc *CostsReportUseCase) recurring(ctx context.Context, propertyID uuid.UUID, period billing.Period) (decimal.Decimal, []*RecurringDetail, error) {
	costs, err := uc.costRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to list recurring costs: %w", err)
	}
	total, lines := billing.RecurringTotal(costs, period)
	return total, newRecurringDetails(lines), nil
}

func (uc *CostsReportUseCase) expenses(ctx context.Context, propertyID uuid.UUID, period billing.Period) (decimal.Decimal, []*ExpenseDetail, error) {
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		PropertyID: propertyID,
		StartDate:  &period.Start,
		EndDate:    &period.End,
	})
	if err != nil {
		return decimal.Zero, nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	details := make([]*ExpenseDetail, 0, len(expenses))
	for _, e := range expenses {
		details = append(details, newExpenseDetail(e))
	}
	return billing.ExpensesTotal(expenses), details, nil
}
