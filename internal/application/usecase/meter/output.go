// Package meter contains meter-reading use cases.
package meter

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/domain/entity"
)

// ReadingOutput represents meter reading data returned to the caller.
type ReadingOutput struct {
	ID            uuid.UUID
	PropertyID    uuid.UUID
	MeterType     entity.MeterType
	ReadingValue  decimal.Decimal
	ReadingDate   time.Time
	Notes         string
	PhotoFilename string
}

func newReadingOutput(r *entity.MeterReading) *ReadingOutput {
	return &ReadingOutput{
		ID:            r.ID,
		PropertyID:    r.PropertyID,
		MeterType:     r.MeterType,
		ReadingValue:  r.ReadingValue,
		ReadingDate:   r.ReadingDate,
		Notes:         r.Notes,
		PhotoFilename: r.PhotoFilename,
	}
}
