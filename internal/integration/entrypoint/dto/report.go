package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/usecase/report"
	"github.com/property-manager/backend/internal/domain/entity"
)

// PeriodResponse represents the resolved reporting period.
type PeriodResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ConsumptionResponse represents derived consumption for one meter type.
type ConsumptionResponse struct {
	Total            decimal.Decimal `json:"total"`
	Days             int             `json:"days"`
	DailyAvg         decimal.Decimal `json:"daily_avg"`
	FirstReadingDate string          `json:"first_reading_date"`
	LastReadingDate  string          `json:"last_reading_date"`
	FirstValue       decimal.Decimal `json:"first_value"`
	LastValue        decimal.Decimal `json:"last_value"`
}

// CostResponse represents priced consumption for one tariff type.
type CostResponse struct {
	TariffType      string          `json:"tariff_type"`
	Consumption     decimal.Decimal `json:"consumption"`
	PricePerUnit    decimal.Decimal `json:"price_per_unit"`
	UsageCost       decimal.Decimal `json:"usage_cost"`
	BaseCostMonthly decimal.Decimal `json:"base_cost_monthly"`
	BaseCostTotal   decimal.Decimal `json:"base_cost_total"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	Months          int             `json:"months"`
}

// RecurringDetailResponse represents one recurring cost inside a report.
type RecurringDetailResponse struct {
	ID            uuid.UUID       `json:"id"`
	Description   string          `json:"description"`
	Vendor        string          `json:"vendor,omitempty"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	Months        int             `json:"months"`
	Total         decimal.Decimal `json:"total"`
}

// ExpenseDetailResponse represents one expense inside a report.
type ExpenseDetailResponse struct {
	ID              uuid.UUID                   `json:"id"`
	Vendor          string                      `json:"vendor"`
	InvoiceDate     string                      `json:"invoice_date"`
	InvoiceNumber   string                      `json:"invoice_number,omitempty"`
	NetAmount       decimal.Decimal             `json:"net_amount"`
	VATRate         decimal.Decimal             `json:"vat_rate"`
	VATAmount       decimal.Decimal             `json:"vat_amount"`
	GrossAmount     decimal.Decimal             `json:"gross_amount"`
	Description     string                      `json:"description,omitempty"`
	Category        string                      `json:"category,omitempty"`
	AttachmentCount int64                       `json:"attachment_count"`
	Attachments     []*AttachmentDetailResponse `json:"attachments,omitempty"`
}

// AttachmentDetailResponse represents one attachment inside a report.
type AttachmentDetailResponse struct {
	ID               uuid.UUID `json:"id"`
	OriginalFilename string    `json:"original_filename"`
	StoredFilename   string    `json:"stored_filename"`
	FileType         string    `json:"file_type"`
	UploadedAt       string    `json:"uploaded_at"`
}

// ConsumptionReportResponse represents the consumption report.
type ConsumptionReportResponse struct {
	Period      PeriodResponse                  `json:"period"`
	Consumption map[string]*ConsumptionResponse `json:"consumption"`
}

// CostsReportResponse represents the costs report.
type CostsReportResponse struct {
	Period           PeriodResponse             `json:"period"`
	ConsumptionCosts map[string]*CostResponse   `json:"consumption_costs"`
	RecurringTotal   decimal.Decimal            `json:"recurring_total"`
	RecurringDetails []*RecurringDetailResponse `json:"recurring_details"`
	ExpensesTotal    decimal.Decimal            `json:"expenses_total"`
	ExpenseDetails   []*ExpenseDetailResponse   `json:"expense_details"`
	GrandTotal       decimal.Decimal            `json:"grand_total"`
}

// AnnualReportResponse represents the annual statement.
type AnnualReportResponse struct {
	Year             int                             `json:"year"`
	PropertyID       uuid.UUID                       `json:"property_id"`
	Consumption      map[string]*ConsumptionResponse `json:"consumption"`
	Costs            map[string]*CostResponse        `json:"costs"`
	RecurringTotal   decimal.Decimal                 `json:"recurring_total"`
	RecurringDetails []*RecurringDetailResponse      `json:"recurring_details"`
	ExpensesTotal    decimal.Decimal                 `json:"expenses_total"`
	ExpenseDetails   []*ExpenseDetailResponse        `json:"expense_details"`
	GrandTotal       decimal.Decimal                 `json:"grand_total"`
}

// MonthResponse represents one month of the monthly comparison.
type MonthResponse struct {
	Month          int             `json:"month"`
	RecurringCosts decimal.Decimal `json:"recurring_costs"`
	Expenses       decimal.Decimal `json:"expenses"`
	Total          decimal.Decimal `json:"total"`
}

// MonthlyComparisonResponse represents the month-by-month cost breakdown.
type MonthlyComparisonResponse struct {
	Year   int              `json:"year"`
	Months []*MonthResponse `json:"months"`
}

// ForecastResponse represents the year-end projection for one meter type.
type ForecastResponse struct {
	Year                 int             `json:"year"`
	ActualConsumption    decimal.Decimal `json:"actual_consumption"`
	ActualDays           int             `json:"actual_days"`
	DailyAvg             decimal.Decimal `json:"daily_avg"`
	ForecastedAdditional decimal.Decimal `json:"forecasted_additional"`
	TotalForecast        decimal.Decimal `json:"total_forecast"`
	RemainingDays        int             `json:"remaining_days"`
	LastReadingDate      string          `json:"last_reading_date"`
}

// ForecastReportResponse represents the forecast report.
type ForecastReportResponse struct {
	Year     int                          `json:"year"`
	PerMeter map[string]*ForecastResponse `json:"per_meter"`
}

// DashboardPropertyResponse represents one property summary on the
// dashboard.
type DashboardPropertyResponse struct {
	ID                   uuid.UUID `json:"id"`
	Name                 string    `json:"name"`
	Address              string    `json:"address"`
	Description          string    `json:"description"`
	ReadingsCount        int       `json:"readings_count"`
	ExpensesCount        int       `json:"expenses_count"`
	ActiveRecurringCosts int       `json:"active_recurring_costs"`
	LatestReadingDate    *string   `json:"latest_reading_date,omitempty"`
}

// DashboardResponse represents the dashboard.
type DashboardResponse struct {
	Properties []*DashboardPropertyResponse `json:"properties"`
}

func toPeriodResponse(p report.PeriodOutput) PeriodResponse {
	return PeriodResponse{
		StartDate: FormatDate(p.Start),
		EndDate:   FormatDate(p.End),
	}
}

func toConsumptionResponses(in map[entity.MeterType]*report.ConsumptionOutput) map[string]*ConsumptionResponse {
	out := make(map[string]*ConsumptionResponse, len(in))
	for meterType, c := range in {
		out[string(meterType)] = &ConsumptionResponse{
			Total:            c.Total,
			Days:             c.Days,
			DailyAvg:         c.DailyAvg,
			FirstReadingDate: FormatDate(c.FirstReadingDate),
			LastReadingDate:  FormatDate(c.LastReadingDate),
			FirstValue:       c.FirstValue,
			LastValue:        c.LastValue,
		}
	}
	return out
}

func toCostResponses(in map[entity.TariffType]*report.CostOutput) map[string]*CostResponse {
	out := make(map[string]*CostResponse, len(in))
	for tariffType, c := range in {
		out[string(tariffType)] = &CostResponse{
			TariffType:      string(c.TariffType),
			Consumption:     c.Consumption,
			PricePerUnit:    c.PricePerUnit,
			UsageCost:       c.UsageCost,
			BaseCostMonthly: c.BaseCostMonthly,
			BaseCostTotal:   c.BaseCostTotal,
			TotalCost:       c.TotalCost,
			Months:          c.Months,
		}
	}
	return out
}

func toRecurringDetailResponses(in []*report.RecurringDetail) []*RecurringDetailResponse {
	out := make([]*RecurringDetailResponse, len(in))
	for i, d := range in {
		out[i] = &RecurringDetailResponse{
			ID:            d.ID,
			Description:   d.Description,
			Vendor:        d.Vendor,
			MonthlyAmount: d.MonthlyAmount,
			Months:        d.Months,
			Total:         d.Total,
		}
	}
	return out
}

func toExpenseDetailResponses(in []*report.ExpenseDetail) []*ExpenseDetailResponse {
	out := make([]*ExpenseDetailResponse, len(in))
	for i, d := range in {
		var attachments []*AttachmentDetailResponse
		for _, a := range d.Attachments {
			attachments = append(attachments, &AttachmentDetailResponse{
				ID:               a.ID,
				OriginalFilename: a.OriginalFilename,
				StoredFilename:   a.StoredFilename,
				FileType:         string(a.FileType),
				UploadedAt:       FormatDate(a.UploadedAt),
			})
		}
		out[i] = &ExpenseDetailResponse{
			ID:              d.ID,
			Vendor:          d.Vendor,
			InvoiceDate:     FormatDate(d.InvoiceDate),
			InvoiceNumber:   d.InvoiceNumber,
			NetAmount:       d.NetAmount,
			VATRate:         d.VATRate,
			VATAmount:       d.VATAmount,
			GrossAmount:     d.GrossAmount,
			Description:     d.Description,
			Category:        d.Category,
			AttachmentCount: d.AttachmentCount,
			Attachments:     attachments,
		}
	}
	return out
}

// ToConsumptionReportResponse converts a consumption report output to a
// response DTO.
func ToConsumptionReportResponse(out *report.ConsumptionReportOutput) *ConsumptionReportResponse {
	return &ConsumptionReportResponse{
		Period:      toPeriodResponse(out.Period),
		Consumption: toConsumptionResponses(out.PerMeter),
	}
}

// ToCostsReportResponse converts a costs report output to a response DTO.
func ToCostsReportResponse(out *report.CostsReportOutput) *CostsReportResponse {
	return &CostsReportResponse{
		Period:           toPeriodResponse(out.Period),
		ConsumptionCosts: toCostResponses(out.ConsumptionCosts),
		RecurringTotal:   out.RecurringTotal,
		RecurringDetails: toRecurringDetailResponses(out.RecurringDetails),
		ExpensesTotal:    out.ExpensesTotal,
		ExpenseDetails:   toExpenseDetailResponses(out.ExpenseDetails),
		GrandTotal:       out.GrandTotal,
	}
}

// ToAnnualReportResponse converts an annual report output to a response DTO.
func ToAnnualReportResponse(out *report.AnnualReportOutput) *AnnualReportResponse {
	return &AnnualReportResponse{
		Year:             out.Year,
		PropertyID:       out.PropertyID,
		Consumption:      toConsumptionResponses(out.Consumption),
		Costs:            toCostResponses(out.Costs),
		RecurringTotal:   out.RecurringTotal,
		RecurringDetails: toRecurringDetailResponses(out.RecurringDetails),
		ExpensesTotal:    out.ExpensesTotal,
		ExpenseDetails:   toExpenseDetailResponses(out.ExpenseDetails),
		GrandTotal:       out.GrandTotal,
	}
}

// ToMonthlyComparisonResponse converts a monthly comparison output to a
// response DTO.
func ToMonthlyComparisonResponse(out *report.MonthlyComparisonOutput) *MonthlyComparisonResponse {
	months := make([]*MonthResponse, len(out.Months))
	for i, m := range out.Months {
		months[i] = &MonthResponse{
			Month:          m.Month,
			RecurringCosts: m.RecurringCosts,
			Expenses:       m.Expenses,
			Total:          m.Total,
		}
	}
	return &MonthlyComparisonResponse{
		Year:   out.Year,
		Months: months,
	}
}

// ToForecastReportResponse converts a forecast report output to a response
// DTO.
func ToForecastReportResponse(out *report.ForecastReportOutput) *ForecastReportResponse {
	perMeter := make(map[string]*ForecastResponse, len(out.PerMeter))
	for meterType, f := range out.PerMeter {
		perMeter[string(meterType)] = &ForecastResponse{
			Year:                 f.Year,
			ActualConsumption:    f.ActualConsumption,
			ActualDays:           f.ActualDays,
			DailyAvg:             f.DailyAvg,
			ForecastedAdditional: f.ForecastedAdditional,
			TotalForecast:        f.TotalForecast,
			RemainingDays:        f.RemainingDays,
			LastReadingDate:      FormatDate(f.LastReadingDate),
		}
	}
	return &ForecastReportResponse{
		Year:     out.Year,
		PerMeter: perMeter,
	}
}

// ToDashboardResponse converts a dashboard output to a response DTO.
func ToDashboardResponse(out *report.DashboardOutput) *DashboardResponse {
	properties := make([]*DashboardPropertyResponse, len(out.Properties))
	for i, p := range out.Properties {
		properties[i] = &DashboardPropertyResponse{
			ID:                   p.ID,
			Name:                 p.Name,
			Address:              p.Address,
			Description:          p.Description,
			ReadingsCount:        p.ReadingsCount,
			ExpensesCount:        p.ExpensesCount,
			ActiveRecurringCosts: p.ActiveRecurringCosts,
			LatestReadingDate:    FormatDatePtr(p.LatestReadingDate),
		}
	}
	return &DashboardResponse{Properties: properties}
}
