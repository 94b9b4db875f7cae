package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultVATRate is the VAT rate applied when none is given.
var DefaultVATRate = decimal.NewFromInt(19)

var oneHundred = decimal.NewFromInt(100)

// Expense represents a one-time cost with a net amount and derived VAT and
// gross amounts. It is counted in a period iff its invoice date falls within
// the period, inclusive on both ends.
type Expense struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	ContactID     *uuid.UUID
	Vendor        string
	InvoiceDate   time.Time
	InvoiceNumber string
	NetAmount     decimal.Decimal
	VATRate       decimal.Decimal
	VATAmount     decimal.Decimal
	GrossAmount   decimal.Decimal
	Description   string
	Category      string
}

// NewExpense creates a new Expense entity with derived VAT fields.
func NewExpense(propertyID uuid.UUID, contactID *uuid.UUID, vendor string, invoiceDate time.Time, invoiceNumber string, net, vatRate decimal.Decimal, description, category string) *Expense {
	e := &Expense{
		ID:            uuid.New(),
		PropertyID:    propertyID,
		ContactID:     contactID,
		Vendor:        vendor,
		InvoiceDate:   invoiceDate,
		InvoiceNumber: invoiceNumber,
		NetAmount:     net,
		VATRate:       vatRate,
		Description:   description,
		Category:      category,
	}
	e.RecalculateAmounts()
	return e
}

// RecalculateAmounts derives vat_amount = round(net*rate/100, 2) and
// gross_amount = round(net+vat, 2) from the current net amount and rate.
// Call after changing NetAmount or VATRate.
func (e *Expense) RecalculateAmounts() {
	e.VATAmount = e.NetAmount.Mul(e.VATRate).Div(oneHundred).Round(2)
	e.GrossAmount = e.NetAmount.Add(e.VATAmount).Round(2)
}
