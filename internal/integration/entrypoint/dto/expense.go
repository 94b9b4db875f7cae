package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the JSON request to create an expense.
// Expenses with attachments arrive as multipart forms instead and are
// parsed field by field in the controller.
type CreateExpenseRequest struct {
	ContactID     *uuid.UUID `json:"contact_id"`
	Vendor        string     `json:"vendor" binding:"required"`
	InvoiceDate   string     `json:"invoice_date" binding:"required"`
	InvoiceNumber string     `json:"invoice_number"`
	NetAmount     string     `json:"net_amount" binding:"required"`
	VATRate       *string    `json:"vat_rate"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
}

// UpdateExpenseRequest represents the request to update an expense.
type UpdateExpenseRequest struct {
	ContactID     *uuid.UUID `json:"contact_id"`
	Vendor        string     `json:"vendor" binding:"required"`
	InvoiceDate   string     `json:"invoice_date" binding:"required"`
	InvoiceNumber string     `json:"invoice_number"`
	NetAmount     string     `json:"net_amount" binding:"required"`
	VATRate       *string    `json:"vat_rate"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID              uuid.UUID       `json:"id"`
	PropertyID      uuid.UUID       `json:"property_id"`
	ContactID       *uuid.UUID      `json:"contact_id,omitempty"`
	Vendor          string          `json:"vendor"`
	InvoiceDate     string          `json:"invoice_date"`
	InvoiceNumber   string          `json:"invoice_number,omitempty"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	VATRate         decimal.Decimal `json:"vat_rate"`
	VATAmount       decimal.Decimal `json:"vat_amount"`
	GrossAmount     decimal.Decimal `json:"gross_amount"`
	Description     string          `json:"description,omitempty"`
	Category        string          `json:"category,omitempty"`
	AttachmentCount int64           `json:"attachment_count"`
}

// ScanInvoiceResponse represents the fields extracted from a scanned
// invoice. Amount fields stay strings: the caller reviews them before
// anything is persisted.
type ScanInvoiceResponse struct {
	Vendor        string     `json:"vendor"`
	InvoiceDate   string     `json:"invoice_date"`
	InvoiceNumber string     `json:"invoice_number"`
	NetAmount     string     `json:"net_amount"`
	VATRate       string     `json:"vat_rate"`
	GrossAmount   string     `json:"gross_amount"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	ContactID     *uuid.UUID `json:"contact_id,omitempty"`
}

// ToExpenseResponse converts an expense output to a response DTO.
func ToExpenseResponse(out *expense.ExpenseOutput) *ExpenseResponse {
	return &ExpenseResponse{
		ID:              out.ID,
		PropertyID:      out.PropertyID,
		ContactID:       out.ContactID,
		Vendor:          out.Vendor,
		InvoiceDate:     FormatDate(out.InvoiceDate),
		InvoiceNumber:   out.InvoiceNumber,
		NetAmount:       out.NetAmount,
		VATRate:         out.VATRate,
		VATAmount:       out.VATAmount,
		GrossAmount:     out.GrossAmount,
		Description:     out.Description,
		Category:        out.Category,
		AttachmentCount: out.AttachmentCount,
	}
}

// ToExpenseListResponse converts a list of expense outputs to response DTOs.
func ToExpenseListResponse(outs []*expense.ExpenseOutput) []*ExpenseResponse {
	responses := make([]*ExpenseResponse, len(outs))
	for i, out := range outs {
		responses[i] = ToExpenseResponse(out)
	}
	return responses
}

// ToScanInvoiceResponse converts an invoice scan output to a response DTO.
func ToScanInvoiceResponse(out *expense.ScanInvoiceOutput) *ScanInvoiceResponse {
	return &ScanInvoiceResponse{
		Vendor:        out.Vendor,
		InvoiceDate:   out.InvoiceDate,
		InvoiceNumber: out.InvoiceNumber,
		NetAmount:     out.NetAmount,
		VATRate:       out.VATRate,
		GrossAmount:   out.GrossAmount,
		Description:   out.Description,
		Category:      out.Category,
		ContactID:     out.ContactID,
	}
}
