// Package report contains the reporting use cases that orchestrate the
// billing engine over repository data.
package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/billing"
	"github.com/property-manager/backend/internal/domain/entity"
)

// PeriodOutput echoes the resolved report period.
type PeriodOutput struct {
	Start time.Time
	End   time.Time
}

// ConsumptionOutput represents derived consumption for one meter type.
type ConsumptionOutput struct {
	Total            decimal.Decimal
	Days             int
	DailyAvg         decimal.Decimal
	FirstReadingDate time.Time
	LastReadingDate  time.Time
	FirstValue       decimal.Decimal
	LastValue        decimal.Decimal
}

func newConsumptionOutput(c *billing.Consumption) *ConsumptionOutput {
	return &ConsumptionOutput{
		Total:            c.Total,
		Days:             c.Days,
		DailyAvg:         c.DailyAvg,
		FirstReadingDate: c.FirstReading.ReadingDate,
		LastReadingDate:  c.LastReading.ReadingDate,
		FirstValue:       c.FirstReading.ReadingValue,
		LastValue:        c.LastReading.ReadingValue,
	}
}

// CostOutput represents a priced consumption for one tariff type.
type CostOutput struct {
	TariffType      entity.TariffType
	Consumption     decimal.Decimal
	PricePerUnit    decimal.Decimal
	UsageCost       decimal.Decimal
	BaseCostMonthly decimal.Decimal
	BaseCostTotal   decimal.Decimal
	TotalCost       decimal.Decimal
	Months          int
}

func newCostOutput(b *billing.CostBreakdown) *CostOutput {
	return &CostOutput{
		TariffType:      b.TariffType,
		Consumption:     b.Consumption,
		PricePerUnit:    b.PricePerUnit,
		UsageCost:       b.UsageCost,
		BaseCostMonthly: b.BaseCostMonthly,
		BaseCostTotal:   b.BaseCostTotal,
		TotalCost:       b.TotalCost,
		Months:          b.Months,
	}
}

// RecurringDetail represents one prorated recurring cost line.
type RecurringDetail struct {
	ID            uuid.UUID
	Description   string
	Vendor        string
	MonthlyAmount decimal.Decimal
	Months        int
	Total         decimal.Decimal
}

func newRecurringDetails(lines []billing.RecurringLine) []*RecurringDetail {
	details := make([]*RecurringDetail, 0, len(lines))
	for _, l := range lines {
		details = append(details, &RecurringDetail{
			ID:            l.Cost.ID,
			Description:   l.Cost.Description,
			Vendor:        l.Cost.Vendor,
			MonthlyAmount: l.Cost.MonthlyAmount,
			Months:        l.Months,
			Total:         l.Total,
		})
	}
	return details
}

// ExpenseDetail represents one expense line in a report.
type ExpenseDetail struct {
	ID              uuid.UUID
	Vendor          string
	InvoiceDate     time.Time
	InvoiceNumber   string
	NetAmount       decimal.Decimal
	VATRate         decimal.Decimal
	VATAmount       decimal.Decimal
	GrossAmount     decimal.Decimal
	Description     string
	Category        string
	AttachmentCount int64
	Attachments     []*AttachmentDetail
}

// AttachmentDetail represents attachment metadata joined onto an expense
// line in the annual report.
type AttachmentDetail struct {
	ID               uuid.UUID
	OriginalFilename string
	StoredFilename   string
	FileType         entity.AttachmentFileType
	UploadedAt       time.Time
}

func newExpenseDetail(e *entity.Expense) *ExpenseDetail {
	return &ExpenseDetail{
		ID:            e.ID,
		Vendor:        e.Vendor,
		InvoiceDate:   e.InvoiceDate,
		InvoiceNumber: e.InvoiceNumber,
		NetAmount:     e.NetAmount,
		VATRate:       e.VATRate,
		VATAmount:     e.VATAmount,
		GrossAmount:   e.GrossAmount,
		Description:   e.Description,
		Category:      e.Category,
	}
}
