package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// TariffModel represents the tariffs table in the database.
type TariffModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PropertyID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	TariffType      string          `gorm:"type:varchar(30);not null;index"`
	PricePerUnit    decimal.Decimal `gorm:"type:decimal(10,4);not null"`
	BaseCostMonthly decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	ValidFrom       time.Time       `gorm:"type:date;not null"`
	ValidTo         *time.Time      `gorm:"type:date"`
}

// TableName returns the table name for the TariffModel.
func (TariffModel) TableName() string {
	return "tariffs"
}

// ToEntity converts a TariffModel to a domain Tariff entity.
func (m *TariffModel) ToEntity() *entity.Tariff {
	return &entity.Tariff{
		ID:              m.ID,
		PropertyID:      m.PropertyID,
		TariffType:      entity.TariffType(m.TariffType),
		PricePerUnit:    m.PricePerUnit,
		BaseCostMonthly: m.BaseCostMonthly,
		ValidFrom:       m.ValidFrom,
		ValidTo:         m.ValidTo,
	}
}

// TariffFromEntity creates a TariffModel from a domain Tariff entity.
func TariffFromEntity(tariff *entity.Tariff) *TariffModel {
	return &TariffModel{
		ID:              tariff.ID,
		PropertyID:      tariff.PropertyID,
		TariffType:      string(tariff.TariffType),
		PricePerUnit:    tariff.PricePerUnit,
		BaseCostMonthly: tariff.BaseCostMonthly,
		ValidFrom:       tariff.ValidFrom,
		ValidTo:         tariff.ValidTo,
	}
}
