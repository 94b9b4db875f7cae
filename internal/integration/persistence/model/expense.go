package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PropertyID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ContactID     *uuid.UUID      `gorm:"type:uuid;index"`
	Vendor        string          `gorm:"type:varchar(255);not null"`
	InvoiceDate   time.Time       `gorm:"type:date;not null;index"`
	InvoiceNumber string          `gorm:"type:varchar(100)"`
	NetAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	VATRate       decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	VATAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	GrossAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Description   string          `gorm:"type:text"`
	Category      string          `gorm:"type:varchar(100);index"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:            m.ID,
		PropertyID:    m.PropertyID,
		ContactID:     m.ContactID,
		Vendor:        m.Vendor,
		InvoiceDate:   m.InvoiceDate,
		InvoiceNumber: m.InvoiceNumber,
		NetAmount:     m.NetAmount,
		VATRate:       m.VATRate,
		VATAmount:     m.VATAmount,
		GrossAmount:   m.GrossAmount,
		Description:   m.Description,
		Category:      m.Category,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:            expense.ID,
		PropertyID:    expense.PropertyID,
		ContactID:     expense.ContactID,
		Vendor:        expense.Vendor,
		InvoiceDate:   expense.InvoiceDate,
		InvoiceNumber: expense.InvoiceNumber,
		NetAmount:     expense.NetAmount,
		VATRate:       expense.VATRate,
		VATAmount:     expense.VATAmount,
		GrossAmount:   expense.GrossAmount,
		Description:   expense.Description,
		Category:      expense.Category,
	}
}
