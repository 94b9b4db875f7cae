package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecurringCost represents a monthly charge active between StartDate and
// EndDate (open-ended when EndDate is nil). MonthlyAmount is gross; the net
// amount is derived by backing the VAT out of it.
type RecurringCost struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	ContactID     *uuid.UUID
	Description   string
	Vendor        string
	MonthlyAmount decimal.Decimal
	VATRate       decimal.Decimal
	NetAmount     decimal.Decimal
	GrossAmount   decimal.Decimal
	StartDate     time.Time
	EndDate       *time.Time
	Category      string
}

// NewRecurringCost creates a new RecurringCost entity with derived amounts.
func NewRecurringCost(propertyID uuid.UUID, contactID *uuid.UUID, description, vendor string, monthly, vatRate decimal.Decimal, startDate time.Time, endDate *time.Time, category string) *RecurringCost {
	c := &RecurringCost{
		ID:            uuid.New(),
		PropertyID:    propertyID,
		ContactID:     contactID,
		Description:   description,
		Vendor:        vendor,
		MonthlyAmount: monthly,
		VATRate:       vatRate,
		StartDate:     startDate,
		EndDate:       endDate,
		Category:      category,
	}
	c.RecalculateAmounts()
	return c
}

// RecalculateAmounts derives net_amount = round(monthly / (1+rate/100), 2).
// The gross amount is the monthly amount itself.
func (c *RecurringCost) RecalculateAmounts() {
	divisor := decimal.NewFromInt(1).Add(c.VATRate.Div(oneHundred))
	c.NetAmount = c.MonthlyAmount.Div(divisor).Round(2)
	c.GrossAmount = c.MonthlyAmount
}

// ActiveIn reports whether the cost is active anywhere inside the period:
// start_date <= period end and (no end_date or end_date >= period start).
func (c *RecurringCost) ActiveIn(periodStart, periodEnd time.Time) bool {
	if c.StartDate.After(periodEnd) {
		return false
	}
	return c.EndDate == nil || !c.EndDate.Before(periodStart)
}
