package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// RecurringCostModel represents the recurring_costs table in the database.
type RecurringCostModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PropertyID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ContactID     *uuid.UUID      `gorm:"type:uuid;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Vendor        string          `gorm:"type:varchar(255)"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	VATRate       decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	NetAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	GrossAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       *time.Time      `gorm:"type:date"`
	Category      string          `gorm:"type:varchar(100);index"`
}

// TableName returns the table name for the RecurringCostModel.
func (RecurringCostModel) TableName() string {
	return "recurring_costs"
}

// ToEntity converts a RecurringCostModel to a domain RecurringCost entity.
func (m *RecurringCostModel) ToEntity() *entity.RecurringCost {
	return &entity.RecurringCost{
		ID:            m.ID,
		PropertyID:    m.PropertyID,
		ContactID:     m.ContactID,
		Description:   m.Description,
		Vendor:        m.Vendor,
		MonthlyAmount: m.MonthlyAmount,
		VATRate:       m.VATRate,
		NetAmount:     m.NetAmount,
		GrossAmount:   m.GrossAmount,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Category:      m.Category,
	}
}

// RecurringCostFromEntity creates a RecurringCostModel from a domain RecurringCost entity.
func RecurringCostFromEntity(cost *entity.RecurringCost) *RecurringCostModel {
	return &RecurringCostModel{
		ID:            cost.ID,
		PropertyID:    cost.PropertyID,
		ContactID:     cost.ContactID,
		Description:   cost.Description,
		Vendor:        cost.Vendor,
		MonthlyAmount: cost.MonthlyAmount,
		VATRate:       cost.VATRate,
		NetAmount:     cost.NetAmount,
		GrossAmount:   cost.GrossAmount,
		StartDate:     cost.StartDate,
		EndDate:       cost.EndDate,
		Category:      cost.Category,
	}
}
