package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MeterType represents the category of utility a meter measures.
type MeterType string

const (
	MeterTypeWater            MeterType = "water"
	MeterTypeElectricityDay   MeterType = "electricity_day"
	MeterTypeElectricityNight MeterType = "electricity_night"
)

// MeterTypes lists all valid meter types in report order.
var MeterTypes = []MeterType{MeterTypeWater, MeterTypeElectricityDay, MeterTypeElectricityNight}

// ValidMeterType reports whether t is a known meter type.
func ValidMeterType(t MeterType) bool {
	switch t {
	case MeterTypeWater, MeterTypeElectricityDay, MeterTypeElectricityNight:
		return true
	}
	return false
}

// MeterReading represents a cumulative counter reading taken on a calendar
// date. Values are expected to be monotonically non-decreasing but this is
// not enforced; a counter reset shows up as negative consumption downstream.
type MeterReading struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	MeterType     MeterType
	ReadingValue  decimal.Decimal
	ReadingDate   time.Time // date only, no time component
	Notes         string
	PhotoFilename string
}

// NewMeterReading creates a new MeterReading entity.
func NewMeterReading(propertyID uuid.UUID, meterType MeterType, value decimal.Decimal, date time.Time, notes string) *MeterReading {
	return &MeterReading{
		ID:           uuid.New(),
		PropertyID:   propertyID,
		MeterType:    meterType,
		ReadingValue: value,
		ReadingDate:  date,
		Notes:        notes,
	}
}
