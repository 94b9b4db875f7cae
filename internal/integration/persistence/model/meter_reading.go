package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// MeterReadingModel represents the meter_readings table in the database.
type MeterReadingModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PropertyID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	MeterType     string          `gorm:"type:varchar(30);not null;index"`
	ReadingValue  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ReadingDate   time.Time       `gorm:"type:date;not null;index"`
	Notes         string          `gorm:"type:text"`
	PhotoFilename string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for the MeterReadingModel.
func (MeterReadingModel) TableName() string {
	return "meter_readings"
}

// ToEntity converts a MeterReadingModel to a domain MeterReading entity.
func (m *MeterReadingModel) ToEntity() *entity.MeterReading {
	return &entity.MeterReading{
		ID:            m.ID,
		PropertyID:    m.PropertyID,
		MeterType:     entity.MeterType(m.MeterType),
		ReadingValue:  m.ReadingValue,
		ReadingDate:   m.ReadingDate,
		Notes:         m.Notes,
		PhotoFilename: m.PhotoFilename,
	}
}

// MeterReadingFromEntity creates a MeterReadingModel from a domain MeterReading entity.
func MeterReadingFromEntity(reading *entity.MeterReading) *MeterReadingModel {
	return &MeterReadingModel{
		ID:            reading.ID,
		PropertyID:    reading.PropertyID,
		MeterType:     string(reading.MeterType),
		ReadingValue:  reading.ReadingValue,
		ReadingDate:   reading.ReadingDate,
		Notes:         reading.Notes,
		PhotoFilename: reading.PhotoFilename,
	}
}
