package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TariffType represents a pricing category. It is a superset of the meter
// types: wastewater has no meter of its own and is billed against water
// consumption.
type TariffType string

const (
	TariffTypeWater            TariffType = "water"
	TariffTypeWastewater       TariffType = "wastewater"
	TariffTypeElectricityDay   TariffType = "electricity_day"
	TariffTypeElectricityNight TariffType = "electricity_night"
)

// ValidTariffType reports whether t is a known tariff type.
func ValidTariffType(t TariffType) bool {
	switch t {
	case TariffTypeWater, TariffTypeWastewater, TariffTypeElectricityDay, TariffTypeElectricityNight:
		return true
	}
	return false
}

// Tariff represents a linear price (per unit plus monthly base fee) that
// applies during a validity interval. ValidTo == nil means open-ended.
type Tariff struct {
	ID              uuid.UUID
	PropertyID      uuid.UUID
	TariffType      TariffType
	PricePerUnit    decimal.Decimal
	BaseCostMonthly decimal.Decimal
	ValidFrom       time.Time
	ValidTo         *time.Time
}

// NewTariff creates a new Tariff entity.
func NewTariff(propertyID uuid.UUID, tariffType TariffType, pricePerUnit, baseCostMonthly decimal.Decimal, validFrom time.Time, validTo *time.Time) *Tariff {
	return &Tariff{
		ID:              uuid.New(),
		PropertyID:      propertyID,
		TariffType:      tariffType,
		PricePerUnit:    pricePerUnit,
		BaseCostMonthly: baseCostMonthly,
		ValidFrom:       validFrom,
		ValidTo:         validTo,
	}
}
