package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/property-manager/backend/internal/application/usecase/meter"
)

// CreateReadingRequest represents the JSON request to record a meter
// reading. Readings with a photo arrive as multipart forms instead and are
// parsed field by field in the controller.
type CreateReadingRequest struct {
	MeterType    string `json:"meter_type" binding:"required"`
	ReadingValue string `json:"reading_value" binding:"required"`
	ReadingDate  string `json:"reading_date" binding:"required"`
	Notes        string `json:"notes"`
}

// UpdateReadingRequest represents the request to update a meter reading.
type UpdateReadingRequest struct {
	MeterType    string `json:"meter_type" binding:"required"`
	ReadingValue string `json:"reading_value" binding:"required"`
	ReadingDate  string `json:"reading_date" binding:"required"`
	Notes        string `json:"notes"`
}

// ReadingResponse represents a meter reading in API responses.
type ReadingResponse struct {
	ID            uuid.UUID       `json:"id"`
	PropertyID    uuid.UUID       `json:"property_id"`
	MeterType     string          `json:"meter_type"`
	ReadingValue  decimal.Decimal `json:"reading_value"`
	ReadingDate   string          `json:"reading_date"`
	Notes         string          `json:"notes,omitempty"`
	PhotoFilename string          `json:"photo_filename,omitempty"`
}

// ScanMeterResponse represents the fields read off a meter photo.
type ScanMeterResponse struct {
	MeterType    string `json:"meter_type"`
	ReadingValue string `json:"reading_value"`
	Date         string `json:"date"`
}

// ToReadingResponse converts a reading output to a response DTO.
func ToReadingResponse(out *meter.ReadingOutput) *ReadingResponse {
	return &ReadingResponse{
		ID:            out.ID,
		PropertyID:    out.PropertyID,
		MeterType:     string(out.MeterType),
		ReadingValue:  out.ReadingValue,
		ReadingDate:   FormatDate(out.ReadingDate),
		Notes:         out.Notes,
		PhotoFilename: out.PhotoFilename,
	}
}

// ToReadingListResponse converts a list of reading outputs to response DTOs.
func ToReadingListResponse(outs []*meter.ReadingOutput) []*ReadingResponse {
	responses := make([]*ReadingResponse, len(outs))
	for i, out := range outs {
		responses[i] = ToReadingResponse(out)
	}
	return responses
}

// ToScanMeterResponse converts a meter scan output to a response DTO.
func ToScanMeterResponse(out *meter.ScanMeterOutput) *ScanMeterResponse {
	return &ScanMeterResponse{
		MeterType:    out.MeterType,
		ReadingValue: out.ReadingValue,
		Date:         out.Date,
	}
}
