// Package recurringcost contains recurring-cost use cases.
package recurringcost

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// RecurringCostOutput represents recurring cost data returned to the caller.
type RecurringCostOutput struct {
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

func newRecurringCostOutput(c *entity.RecurringCost) *RecurringCostOutput {
	return &RecurringCostOutput{
		ID:            c.ID,
		PropertyID:    c.PropertyID,
		ContactID:     c.ContactID,
		Description:   c.Description,
		Vendor:        c.Vendor,
		MonthlyAmount: c.MonthlyAmount,
		VATRate:       c.VATRate,
		NetAmount:     c.NetAmount,
		GrossAmount:   c.GrossAmount,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		Category:      c.Category,
	}
}
