package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/usecase/recurringcost"
)

// CreateRecurringCostRequest represents the JSON request to create a
// recurring cost. Requests with attachments arrive as multipart forms
// instead and are parsed field by field in the controller.
type CreateRecurringCostRequest struct {
	ContactID     *uuid.UUID `json:"contact_id"`
	Description   string     `json:"description" binding:"required"`
	Vendor        string     `json:"vendor"`
	MonthlyAmount string     `json:"monthly_amount" binding:"required"`
	VATRate       *string    `json:"vat_rate"`
	StartDate     string     `json:"start_date" binding:"required"`
	EndDate       *string    `json:"end_date"`
	Category      string     `json:"category"`
}

// UpdateRecurringCostRequest represents the request to update a recurring
// cost.
type UpdateRecurringCostRequest struct {
	ContactID     *uuid.UUID `json:"contact_id"`
	Description   string     `json:"description" binding:"required"`
	Vendor        string     `json:"vendor"`
	MonthlyAmount string     `json:"monthly_amount" binding:"required"`
	VATRate       *string    `json:"vat_rate"`
	StartDate     string     `json:"start_date" binding:"required"`
	EndDate       *string    `json:"end_date"`
	Category      string     `json:"category"`
}

// RecurringCostResponse represents a recurring cost in API responses.
type RecurringCostResponse struct {
	ID            uuid.UUID       `json:"id"`
	PropertyID    uuid.UUID       `json:"property_id"`
	ContactID     *uuid.UUID      `json:"contact_id,omitempty"`
	Description   string          `json:"description"`
	Vendor        string          `json:"vendor,omitempty"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	VATRate       decimal.Decimal `json:"vat_rate"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	StartDate     string          `json:"start_date"`
	EndDate       *string         `json:"end_date,omitempty"`
	Category      string          `json:"category,omitempty"`
}

// ScanContractResponse represents the fields extracted from a scanned
// contract.
type ScanContractResponse struct {
	Vendor        string `json:"vendor"`
	Description   string `json:"description"`
	MonthlyAmount string `json:"monthly_amount"`
	VATRate       string `json:"vat_rate"`
	StartDate     string `json:"start_date"`
	Category      string `json:"category"`
}

// ToRecurringCostResponse converts a recurring cost output to a response DTO.
func ToRecurringCostResponse(out *recurringcost.RecurringCostOutput) *RecurringCostResponse {
	return &RecurringCostResponse{
		ID:            out.ID,
		PropertyID:    out.PropertyID,
		ContactID:     out.ContactID,
		Description:   out.Description,
		Vendor:        out.Vendor,
		MonthlyAmount: out.MonthlyAmount,
		VATRate:       out.VATRate,
		NetAmount:     out.NetAmount,
		GrossAmount:   out.GrossAmount,
		StartDate:     FormatDate(out.StartDate),
		EndDate:       FormatDatePtr(out.EndDate),
		Category:      out.Category,
	}
}

// ToRecurringCostListResponse converts a list of recurring cost outputs to
// response DTOs.
func ToRecurringCostListResponse(outs []*recurringcost.RecurringCostOutput) []*RecurringCostResponse {
	responses := make([]*RecurringCostResponse, len(outs))
	for i, out := range outs {
		responses[i] = ToRecurringCostResponse(out)
	}
	return responses
}

// ToScanContractResponse converts a contract scan output to a response DTO.
func ToScanContractResponse(out *recurringcost.ScanContractOutput) *ScanContractResponse {
	return &ScanContractResponse{
		Vendor:        out.Vendor,
		Description:   out.Description,
		MonthlyAmount: out.MonthlyAmount,
		VATRate:       out.VATRate,
		StartDate:     out.StartDate,
		Category:      out.Category,
	}
}
