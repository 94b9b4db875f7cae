// Package expense contains expense-related use cases.
package expense

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ExpenseOutput represents expense data returned to the caller.
type ExpenseOutput struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	ContactID       *uuid.UUID
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
}

func newExpenseOutput(e *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:            e.ID,
		PropertyID:    e.PropertyID,
		ContactID:     e.ContactID,
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
