package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/domain/billing"
	"github.com/property-manager/backend/internal/domain/entity"
)

// DashboardInput represents the input for the dashboard report.
type DashboardInput struct {
	UserID uuid.UUID
}

// DashboardProperty is the per-property summary on the dashboard.
type DashboardProperty struct {
	ID                   uuid.UUID
	Name                 string
	Address              string
	Description          string
	ReadingsCount        int
	ExpensesCount        int
	ActiveRecurringCosts int
	LatestReadingDate    *time.Time
}

// DashboardOutput represents the output of the dashboard report.
type DashboardOutput struct {
	Properties []*DashboardProperty
}

// DashboardUseCase summarizes every property visible to the user: record
// counts, active recurring costs and the latest reading date. No pricing.
type DashboardUseCase struct {
	propertyRepo adapter.PropertyRepository
	readingRepo  adapter.MeterReadingRepository
	expenseRepo  adapter.ExpenseRepository
	costRepo     adapter.RecurringCostRepository
	access       *access.Service
	now          func() time.Time
}

// NewDashboardUseCase creates a new DashboardUseCase instance.
func NewDashboardUseCase(
	propertyRepo adapter.PropertyRepository,
	readingRepo adapter.MeterReadingRepository,
	expenseRepo adapter.ExpenseRepository,
	costRepo adapter.RecurringCostRepository,
	accessService *access.Service,
) *DashboardUseCase {
	return &DashboardUseCase{
		propertyRepo: propertyRepo,
		readingRepo:  readingRepo,
		expenseRepo:  expenseRepo,
		costRepo:     costRepo,
		access:       accessService,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the report.
func (uc *DashboardUseCase) Execute(ctx context.Context, input DashboardInput) (*DashboardOutput, error) {
	user, err := uc.access.User(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	var properties []*entity.Property
	if user.IsAdmin() {
		properties, err = uc.propertyRepo.FindAll(ctx)
	} else if len(user.PropertyIDs) > 0 {
		properties, err = uc.propertyRepo.FindByIDs(ctx, user.PropertyIDs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}

	// Compare against the calendar date: a cost ending today is still
	// active.
	now := uc.now()
	today := billing.Date(now.Year(), now.Month(), now.Day())
	output := &DashboardOutput{Properties: make([]*DashboardProperty, 0, len(properties))}
	for _, p := range properties {
		summary, err := uc.summarize(ctx, p, today)
		if err != nil {
			return nil, err
		}
		output.Properties = append(output.Properties, summary)
	}
	return output, nil
}

func (uc *DashboardUseCase) summarize(ctx context.Context, p *entity.Property, today time.Time) (*DashboardProperty, error) {
	readings, err := uc.readingRepo.FindByFilter(ctx, adapter.MeterReadingFilter{PropertyID: p.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list readings: %w", err)
	}
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{PropertyID: p.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	costs, err := uc.costRepo.FindByProperty(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring costs: %w", err)
	}

	summary := &DashboardProperty{
		ID:            p.ID,
		Name:          p.Name,
		Address:       p.Address,
		Description:   p.Description,
		ReadingsCount: len(readings),
		ExpensesCount: len(expenses),
	}
	for _, c := range costs {
		if c.EndDate == nil || !c.EndDate.Before(today) {
			summary.ActiveRecurringCosts++
		}
	}
	if len(readings) > 0 {
		// Readings come back oldest first.
		latest := readings[len(readings)-1].ReadingDate
		summary.LatestReadingDate = &latest
	}
	return summary, nil
}
