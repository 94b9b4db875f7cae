package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/billing"
	"github.com/property-manager/backend/internal/domain/entity"
)

// AnnualReportInput represents the input for the annual statement.
type AnnualReportInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Year       int
	IPAddress  string
}

// AnnualReportOutput represents the annual statement: consumption, priced
// costs, recurring and one-time costs over the full calendar year. Expense
// lines carry their attachment metadata so the statement can reference the
// underlying invoices.
type AnnualReportOutput struct {
	Year             int
	PropertyID       uuid.UUID
	Consumption      map[entity.MeterType]*ConsumptionOutput
	Costs            map[entity.TariffType]*CostOutput
	RecurringTotal   decimal.Decimal
	RecurringDetails []*RecurringDetail
	ExpensesTotal    decimal.Decimal
	ExpenseDetails   []*ExpenseDetail
	GrandTotal       decimal.Decimal
}

// AnnualReportUseCase assembles the annual statement and records a view
// activity for it.
type AnnualReportUseCase struct {
	costs          *CostsReportUseCase
	attachmentRepo adapter.AttachmentRepository
	access         *access.Service
	recorder       *activity.Recorder
	now            func() time.Time
}

// NewAnnualReportUseCase creates a new AnnualReportUseCase instance.
func NewAnnualReportUseCase(
	costs *CostsReportUseCase,
	attachmentRepo adapter.AttachmentRepository,
	accessService *access.Service,
	recorder *activity.Recorder,
) *AnnualReportUseCase {
	return &AnnualReportUseCase{
		costs:          costs,
		attachmentRepo: attachmentRepo,
		access:         accessService,
		recorder:       recorder,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the report.
func (uc *AnnualReportUseCase) Execute(ctx context.Context, input AnnualReportInput) (*AnnualReportOutput, error) {
	user, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}

	year := resolveYear(input.Year, uc.now())
	period := billing.YearPeriod(year)

	costs, consumptions, err := uc.costs.consumptionCosts(ctx, input.PropertyID, period)
	if err != nil {
		return nil, err
	}
	recurringTotal, recurringDetails, err := uc.costs.recurring(ctx, input.PropertyID, period)
	if err != nil {
		return nil, err
	}
	expensesTotal, expenseDetails, err := uc.costs.expenses(ctx, input.PropertyID, period)
	if err != nil {
		return nil, err
	}
	if err := uc.attachExpenseDocuments(ctx, expenseDetails); err != nil {
		return nil, err
	}

	usageTotal := decimal.Zero
	for _, c := range costs {
		usageTotal = usageTotal.Add(c.TotalCost)
	}

	output := &AnnualReportOutput{
		Year:             year,
		PropertyID:       input.PropertyID,
		Consumption:      make(map[entity.MeterType]*ConsumptionOutput, len(consumptions)),
		Costs:            costs,
		RecurringTotal:   recurringTotal,
		RecurringDetails: recurringDetails,
		ExpensesTotal:    expensesTotal,
		ExpenseDetails:   expenseDetails,
		GrandTotal:       usageTotal.Add(recurringTotal).Add(expensesTotal).Round(2),
	}
	for mt, cons := range consumptions {
		output.Consumption[mt] = newConsumptionOutput(cons)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionView, "report", &input.PropertyID,
		fmt.Sprintf("annual statement %d", year), input.IPAddress)

	return output, nil
}

func (uc *AnnualReportUseCase) attachExpenseDocuments(ctx context.Context, details []*ExpenseDetail) error {
	for _, d := range details {
		attachments, err := uc.attachmentRepo.FindByOwner(ctx, entity.AttachmentOwnerExpense, d.ID)
		if err != nil {
			return fmt.Errorf("failed to list attachments: %w", err)
		}
		d.AttachmentCount = int64(len(attachments))
		for _, a := range attachments {
			d.Attachments = append(d.Attachments, &AttachmentDetail{
				ID:               a.ID,
				OriginalFilename: a.OriginalFilename,
				StoredFilename:   a.StoredFilename,
				FileType:         a.FileType,
				UploadedAt:       a.UploadedAt,
			})
		}
	}
	return nil
}
