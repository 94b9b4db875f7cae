package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/property-manager/backend/internal/application/adapter"
	"github.com/property-manager/backend/internal/application/usecase/access"
	"github.com/property-manager/backend/internal/application/usecase/activity"
	"github.com/property-manager/backend/internal/domain/billing"
	"github.com/property-manager/backend/internal/domain/entity"
	domainerror "github.com/property-manager/backend/internal/domain/error"
)

// Export types accepted by the CSV export.
const (
	ExportTypeExpenses  = "expenses"
	ExportTypeMeters    = "meters"
	ExportTypeRecurring = "recurring"
)

const csvDateLayout = "2006-01-02"

// ExportCSVInput represents the input for the CSV export.
type ExportCSVInput struct {
	UserID     uuid.UUID
	PropertyID uuid.UUID
	Type       string
	Start      *time.Time
	End        *time.Time
	IPAddress  string
}

// ExportCSVOutput represents the output of the CSV export.
type ExportCSVOutput struct {
	Filename string
	Content  []byte
}

// ExportCSVUseCase renders expenses, meter readings or recurring costs as
// semicolon-separated CSV. The German column headers match the statements
// the files are imported into and must stay as they are.
type ExportCSVUseCase struct {
	readingRepo adapter.MeterReadingRepository
	expenseRepo adapter.ExpenseRepository
	costRepo    adapter.RecurringCostRepository
	access      *access.Service
	recorder    *activity.Recorder
	now         func() time.Time
}

// NewExportCSVUseCase creates a new ExportCSVUseCase instance.
func NewExportCSVUseCase(
	readingRepo adapter.MeterReadingRepository,
	expenseRepo adapter.ExpenseRepository,
	costRepo adapter.RecurringCostRepository,
	accessService *access.Service,
	recorder *activity.Recorder,
) *ExportCSVUseCase {
	return &ExportCSVUseCase{
		readingRepo: readingRepo,
		expenseRepo: expenseRepo,
		costRepo:    costRepo,
		access:      accessService,
		recorder:    recorder,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Execute performs the export.
func (uc *ExportCSVUseCase) Execute(ctx context.Context, input ExportCSVInput) (*ExportCSVOutput, error) {
	user, err := uc.access.RequireProperty(ctx, input.UserID, input.PropertyID)
	if err != nil {
		return nil, err
	}
	period, err := resolvePeriod(input.Start, input.End, uc.now())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	switch input.Type {
	case ExportTypeExpenses:
		err = uc.writeExpenses(ctx, w, input.PropertyID, period)
	case ExportTypeMeters:
		err = uc.writeReadings(ctx, w, input.PropertyID, period)
	case ExportTypeRecurring:
		err = uc.writeRecurringCosts(ctx, w, input.PropertyID)
	default:
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeUnknownExportType,
			fmt.Sprintf("unknown export type %q", input.Type),
			domainerror.ErrUnknownExportType,
		)
	}
	if err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}

	uc.recorder.Record(ctx, user, entity.ActivityActionExport, "report", &input.PropertyID,
		fmt.Sprintf("csv export: %s", input.Type), input.IPAddress)

	return &ExportCSVOutput{
		Filename: fmt.Sprintf("report_%s_%s.csv", input.Type, input.PropertyID),
		Content:  buf.Bytes(),
	}, nil
}

func (uc *ExportCSVUseCase) writeExpenses(ctx context.Context, w *csv.Writer, propertyID uuid.UUID, period billing.Period) error {
	if err := w.Write([]string{"Datum", "Rechnungsersteller", "Rechnungsnr.", "Beschreibung", "Kategorie", "Netto", "USt %", "USt", "Brutto"}); err != nil {
		return err
	}
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		PropertyID: propertyID,
		StartDate:  &period.Start,
		EndDate:    &period.End,
	})
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}
	// Export ascending by invoice date regardless of listing order.
	for i := len(expenses) - 1; i >= 0; i-- {
		e := expenses[i]
		if err := w.Write([]string{
			e.InvoiceDate.Format(csvDateLayout),
			e.Vendor,
			e.InvoiceNumber,
			e.Description,
			e.Category,
			e.NetAmount.String(),
			e.VATRate.String(),
			e.VATAmount.String(),
			e.GrossAmount.String(),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ExportCSVUseCase) writeReadings(ctx context.Context, w *csv.Writer, propertyID uuid.UUID, period billing.Period) error {
	if err := w.Write([]string{"Datum", "Zählertyp", "Wert", "Notizen"}); err != nil {
		return err
	}
	readings, err := uc.readingRepo.FindByFilter(ctx, adapter.MeterReadingFilter{
		PropertyID: propertyID,
		StartDate:  &period.Start,
		EndDate:    &period.End,
	})
	if err != nil {
		return fmt.Errorf("failed to list readings: %w", err)
	}
	for _, r := range readings {
		if err := w.Write([]string{
			r.ReadingDate.Format(csvDateLayout),
			string(r.MeterType),
			r.ReadingValue.String(),
			r.Notes,
		}); err != nil {
			return err
		}
	}
	return nil
}

// writeRecurringCosts exports every recurring cost of the property; the
// period deliberately does not apply here.
func (uc *ExportCSVUseCase) writeRecurringCosts(ctx context.Context, w *csv.Writer, propertyID uuid.UUID) error {
	if err := w.Write([]string{"Beschreibung", "Anbieter", "Monatlich", "USt %", "Netto", "Brutto", "Start", "Ende", "Kategorie"}); err != nil {
		return err
	}
	costs, err := uc.costRepo.FindByProperty(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("failed to list recurring costs: %w", err)
	}
	for _, c := range costs {
		end := ""
		if c.EndDate != nil {
			end = c.EndDate.Format(csvDateLayout)
		}
		if err := w.Write([]string{
			c.Description,
			c.Vendor,
			c.MonthlyAmount.String(),
			c.VATRate.String(),
			c.NetAmount.String(),
			c.GrossAmount.String(),
			c.StartDate.Format(csvDateLayout),
			end,
			c.Category,
		}); err != nil {
			return err
		}
	}
	return nil
}
